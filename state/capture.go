package state

import (
	"fmt"

	"github.com/grovetools/navcoord/coordinator"
	"github.com/grovetools/navcoord/route"
)

// Binding ties one area's route stack to the name it is stored under.
type Binding interface {
	Key() string
	Encode() ([]string, error)
	// Prepare decodes names without touching the stack and returns a func that
	// applies the decoded path.
	Prepare(names []string) (apply func(), err error)
}

type stackBinding[R comparable] struct {
	key   string
	stack *route.Stack[R]
	codec Codec[R]
}

// Bind returns a Binding for stack under key.
func Bind[R comparable](key string, stack *route.Stack[R], codec Codec[R]) Binding {
	return &stackBinding[R]{key: key, stack: stack, codec: codec}
}

func (b *stackBinding[R]) Key() string { return b.key }

func (b *stackBinding[R]) Encode() ([]string, error) {
	routes := b.stack.Routes()
	names := make([]string, 0, len(routes))
	for _, r := range routes {
		name, err := b.codec.Encode(r)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (b *stackBinding[R]) Prepare(names []string) (func(), error) {
	routes := make([]R, 0, len(names))
	for _, name := range names {
		r, err := b.codec.Decode(name)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return func() { b.stack.Replace(routes...) }, nil
}

// Capture encodes the selected tab of tabs and the path of every binding.
func Capture[T comparable](tabs *coordinator.TabCoordinator[T], tabCodec Codec[T], bindings ...Binding) (Snapshot, error) {
	tab, err := tabCodec.Encode(tabs.SelectedTab())
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{SelectedTab: tab, Stacks: make(map[string][]string, len(bindings))}
	for _, b := range bindings {
		names, err := b.Encode()
		if err != nil {
			return Snapshot{}, fmt.Errorf("encode %s: %w", b.Key(), err)
		}
		snap.Stacks[b.Key()] = names
	}
	return snap, nil
}

// Restore applies snap to tabs and bindings. Everything is decoded before
// anything is applied, so a bad snapshot leaves the navigation state as it
// was. Areas missing from the snapshot are left untouched; an empty
// SelectedTab keeps the current tab.
func Restore[T comparable](snap Snapshot, tabs *coordinator.TabCoordinator[T], tabCodec Codec[T], bindings ...Binding) error {
	var (
		selected T
		hasTab   bool
	)
	if snap.SelectedTab != "" {
		t, err := tabCodec.Decode(snap.SelectedTab)
		if err != nil {
			return err
		}
		selected, hasTab = t, true
	}

	applies := make([]func(), 0, len(bindings))
	for _, b := range bindings {
		names, ok := snap.Stacks[b.Key()]
		if !ok {
			continue
		}
		apply, err := b.Prepare(names)
		if err != nil {
			return fmt.Errorf("restore %s: %w", b.Key(), err)
		}
		applies = append(applies, apply)
	}

	for _, apply := range applies {
		apply()
	}
	if hasTab {
		tabs.SwitchTab(selected)
	}
	return nil
}
