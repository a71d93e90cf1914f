// Package state persists navigation snapshots: the selected tab and the route
// path of every area, stored by name so they survive restarts.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/grovetools/navcoord/errors"
	"gopkg.in/yaml.v3"
)

// DefaultRelPath is where snapshots are stored relative to the working
// directory when no path is configured.
const DefaultRelPath = ".navcoord/state.yml"

// Snapshot is the persisted form of a navigation state.
type Snapshot struct {
	ID          string              `yaml:"id,omitempty" json:"id,omitempty"`
	SavedAt     time.Time           `yaml:"saved_at,omitempty" json:"saved_at,omitempty"`
	SelectedTab string              `yaml:"selected_tab,omitempty" json:"selected_tab,omitempty"`
	Stacks      map[string][]string `yaml:"stacks,omitempty" json:"stacks,omitempty"`
}

// IsEmpty reports whether the snapshot carries no navigation state.
func (s Snapshot) IsEmpty() bool {
	return s.SelectedTab == "" && len(s.Stacks) == 0
}

// Store reads and writes a snapshot file.
type Store struct {
	path string
}

// NewStore returns a store backed by path. An empty path resolves to
// DefaultRelPath under the current working directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get current directory: %w", err)
		}
		path = filepath.Join(cwd, DefaultRelPath)
	}
	return &Store{path: expandPath(path)}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, errors.Wrap(err, errors.ErrCodeSnapshotIO, "read snapshot").
			WithDetail("path", s.path)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.SnapshotInvalid(s.path, err)
	}
	return snap, nil
}

// Save writes snap, assigning an ID and timestamp when they are unset. It
// returns the snapshot as written.
func (s *Store) Save(snap Snapshot) (Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC().Truncate(time.Second)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return snap, errors.Wrap(err, errors.ErrCodeSnapshotIO, "create snapshot directory").
			WithDetail("path", s.path)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return snap, fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return snap, errors.Wrap(err, errors.ErrCodeSnapshotIO, "write snapshot").
			WithDetail("path", s.path)
	}
	return snap, nil
}

// Clear removes the snapshot file. Clearing a missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrCodeSnapshotIO, "remove snapshot").
			WithDetail("path", s.path)
	}
	return nil
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
