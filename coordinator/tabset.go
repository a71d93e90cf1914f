package coordinator

import (
	"fmt"

	"github.com/grovetools/navcoord/observe"
)

// TabAttacher is implemented by areas that want a back-reference to the tab
// coordinator they are registered with. ScreenCoordinator implements it.
type TabAttacher[T comparable] interface {
	AttachTabs(*TabCoordinator[T])
}

// TabSet is a TabCoordinator that owns one area per tab, kept in registration
// order. A is typically a screen coordinator or a host-side wrapper around one.
type TabSet[T comparable, A any] struct {
	*TabCoordinator[T]
	order      []T
	areas      map[T]A
	registered observe.Publisher[Registration[T, A]]
}

// Registration is published when an area joins a TabSet.
type Registration[T comparable, A any] struct {
	Tab  T
	Area A
}

// NewTabSet creates an empty set whose selected tab is initial. initial must be
// registered before the set is rendered.
func NewTabSet[T comparable, A any](initial T) *TabSet[T, A] {
	return &TabSet[T, A]{
		TabCoordinator: NewTabCoordinator(initial),
		areas:          make(map[T]A),
	}
}

// Register adds area for tab and attaches the back-reference when the area
// supports it. Registering the same tab twice panics; that is a wiring bug.
func (s *TabSet[T, A]) Register(tab T, area A) *TabSet[T, A] {
	if _, exists := s.areas[tab]; exists {
		panic(fmt.Sprintf("coordinator: tab %v registered twice", tab))
	}
	s.order = append(s.order, tab)
	s.areas[tab] = area
	if a, ok := any(area).(TabAttacher[T]); ok {
		a.AttachTabs(s.TabCoordinator)
	}
	s.registered.Publish(Registration[T, A]{Tab: tab, Area: area})
	return s
}

// OnRegister calls fn for every area registered from now on.
func (s *TabSet[T, A]) OnRegister(fn func(Registration[T, A])) (cancel func()) {
	return s.registered.Subscribe(fn)
}

// Order returns the registered tabs in registration order.
func (s *TabSet[T, A]) Order() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered tabs.
func (s *TabSet[T, A]) Len() int { return len(s.order) }

// Area returns the area registered for tab.
func (s *TabSet[T, A]) Area(tab T) (A, bool) {
	a, ok := s.areas[tab]
	return a, ok
}

// Active returns the area of the selected tab.
func (s *TabSet[T, A]) Active() (A, bool) {
	return s.Area(s.SelectedTab())
}

// Areas returns all areas in registration order.
func (s *TabSet[T, A]) Areas() []A {
	out := make([]A, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.areas[t])
	}
	return out
}

// Index returns the position of tab in registration order, or -1.
func (s *TabSet[T, A]) Index(tab T) int {
	for i, t := range s.order {
		if t == tab {
			return i
		}
	}
	return -1
}

// Next selects the tab after the current one, wrapping around.
func (s *TabSet[T, A]) Next() { s.step(1) }

// Prev selects the tab before the current one, wrapping around.
func (s *TabSet[T, A]) Prev() { s.step(-1) }

// SelectIndex selects the i-th registered tab. Out of range indexes are ignored.
func (s *TabSet[T, A]) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.order) {
		return false
	}
	s.SwitchTab(s.order[i])
	return true
}

func (s *TabSet[T, A]) step(delta int) {
	n := len(s.order)
	if n == 0 {
		return
	}
	i := s.Index(s.SelectedTab())
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	s.SwitchTab(s.order[i])
}
