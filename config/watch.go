package config

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// LoaderFunc produces the configuration a Watcher reports after a change.
type LoaderFunc func() (*Config, error)

// Watcher reloads configuration whenever one of its files changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	load     LoaderFunc
	debounce time.Duration
	logger   *logrus.Entry
	onReload func(*Config, error)
}

// NewWatcher watches files and calls load once per burst of changes to any
// of them. Parent directories are watched rather than the files themselves
// so editors that save by rename, and files created later, are still seen.
// Directories that do not exist are skipped; it is an error if none remain.
// onReload receives the result of load.
func NewWatcher(files []string, load LoaderFunc, debounce time.Duration, logger *logrus.Entry, onReload func(*Config, error)) (*Watcher, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]bool, len(files)),
		load:     load,
		debounce: debounce,
		logger:   logger,
		onReload: onReload,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			logger.WithError(err).WithField("path", abs).Debug("Not watching config file")
			continue
		}
		w.files[abs] = true
	}
	if len(w.files) == 0 {
		watcher.Close()
		return nil, fmt.Errorf("no watchable config files in %v", files)
	}
	return w, nil
}

// WatchFile reloads the single file at path with Load.
func WatchFile(path string, debounce time.Duration, logger *logrus.Entry, onReload func(*Config, error)) (*Watcher, error) {
	return NewWatcher([]string{path}, func() (*Config, error) { return Load(path) }, debounce, logger, onReload)
}

// WatchLayers watches the global config and the project config found from
// startDir, and reloads the merged result the way LoadFrom builds it.
func WatchLayers(startDir string, debounce time.Duration, logger *logrus.Entry, onReload func(*Config, error)) (*Watcher, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	var files []string
	if global := getXDGConfigPath(); global != "" {
		files = append(files, global)
	}
	if project, err := FindConfigFile(startDir); err == nil {
		files = append(files, project)
	}

	load := func() (*Config, error) { return LoadFromWithLogger(startDir, logger.Logger) }
	return NewWatcher(files, load, debounce, logger, onReload)
}

// Files returns the watched files in order.
func (w *Watcher) Files() []string {
	return slices.Sorted(maps.Keys(w.files))
}

// Start blocks until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Info("Config changed, reloading")
			cfg, err := w.load()
			if w.onReload != nil {
				w.onReload(cfg, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
