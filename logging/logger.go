// Package logging builds logrus loggers for navcoord components. Levels,
// format and sinks come from the `logging` section of navcoord.yml and the
// NAVCOORD_LOG_* environment variables.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/grovetools/navcoord/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	mu    sync.Mutex
	cache = map[string]*logrus.Entry{}
)

// Option adjusts the configuration a logger is built from.
type Option func(*Config)

// WithLevel overrides the configured level. NAVCOORD_LOG_LEVEL still wins.
func WithLevel(level logrus.Level) Option {
	return func(c *Config) { c.Level = level.String() }
}

// NewLogger returns the logger for component, creating it on first use from
// the project's configuration. Passing options always builds a fresh logger,
// which replaces the cached one.
func NewLogger(component string, opts ...Option) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if entry, ok := cache[component]; ok && len(opts) == 0 {
		return entry
	}
	cfg := loadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	entry := New(component, cfg)
	cache[component] = entry
	return entry
}

// Reset forgets every cached logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func loadConfig() Config {
	var cfg Config
	navCfg, err := config.LoadDefault()
	if err != nil {
		return cfg
	}
	if err := navCfg.UnmarshalExtension("logging", &cfg); err != nil {
		logrus.Warnf("Ignoring invalid 'logging' config: %v", err)
	}
	return cfg
}

// New builds an uncached logger for component from cfg. Its entries carry a
// "component" field. Sinks are chosen from the final level, so a debug level
// always reaches the terminal sink unless Stderr is "never".
func New(component string, cfg Config) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(levelFor(cfg))
	logger.SetReportCaller(cfg.ReportCaller || os.Getenv("NAVCOORD_LOG_CALLER") == "true")
	logger.SetFormatter(formatterFor(cfg.Format))

	var sinks []io.Writer
	if path := filePathFor(component, cfg); path != "" {
		if f, err := openLogFile(path); err != nil {
			logger.Warnf("Logging to file disabled: %v", err)
		} else {
			sinks = append(sinks, f)
		}
	}
	if wantStderr(cfg.Format.Stderr, logger.GetLevel()) {
		sinks = append(sinks, TerminalOutput())
	}

	switch len(sinks) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(sinks[0])
	default:
		logger.SetOutput(io.MultiWriter(sinks...))
	}

	return logger.WithField("component", component)
}

// levelFor prefers NAVCOORD_LOG_LEVEL over cfg.Level. Unparseable levels
// fall back to info.
func levelFor(cfg Config) logrus.Level {
	name := cfg.Level
	if env := os.Getenv("NAVCOORD_LOG_LEVEL"); env != "" {
		name = env
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatterFor(format FormatConfig) logrus.Formatter {
	switch format.Preset {
	case PresetJSON:
		return &logrus.JSONFormatter{}
	case PresetSimple:
		return &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	default:
		return &TextFormatter{Config: format}
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// filePathFor returns the log file for component, or "" when the file sink
// is off.
func filePathFor(component string, cfg Config) string {
	if !cfg.File.Enabled {
		return ""
	}
	if cfg.File.Path != "" {
		return expandPath(cfg.File.Path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	name := fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02"))
	return filepath.Join(cwd, ".navcoord", "logs", name)
}

func wantStderr(mode StderrMode, level logrus.Level) bool {
	switch mode {
	case StderrAlways:
		return true
	case StderrNever:
		return false
	}
	if os.Getenv("NAVCOORD_DEBUG") == "1" || level >= logrus.DebugLevel {
		return true
	}
	fd := os.Stderr.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func expandPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
