package navtea

import (
	"github.com/grovetools/navcoord/coordinator"
	"github.com/grovetools/navcoord/state"
)

// SnapshotSaver returns a save func for WithAutosave that captures tabs and
// bindings into store.
func SnapshotSaver[T comparable](store *state.Store, tabs *coordinator.TabCoordinator[T], tabCodec state.Codec[T], bindings ...state.Binding) func() error {
	return func() error {
		snap, err := state.Capture(tabs, tabCodec, bindings...)
		if err != nil {
			return err
		}
		_, err = store.Save(snap)
		return err
	}
}
