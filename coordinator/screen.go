package coordinator

import (
	"weak"

	"github.com/grovetools/navcoord/route"
)

// Navigator is the route stack contract shared by route.Stack and
// ScreenCoordinator.
type Navigator[R comparable] interface {
	Navigate(r R)
	Pop() bool
	RemoveLast(k int) int
}

var (
	_ Navigator[int] = (*route.Stack[int])(nil)
	_ Navigator[int] = (*ScreenCoordinator[int, int, string])(nil)
)

// Builder maps a route to renderable content. Build must be pure and total over
// R: implementations switch over every route value and return a placeholder
// rather than failing.
type Builder[R comparable, C any] interface {
	Build(route R) C
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc[R comparable, C any] func(route R) C

// Build calls f(route).
func (f BuilderFunc[R, C]) Build(route R) C { return f(route) }

// ScreenCoordinator owns the route stack of one navigable area.
type ScreenCoordinator[R comparable, T comparable, C any] struct {
	stack   *route.Stack[R]
	builder Builder[R, C]
	tabs    weak.Pointer[TabCoordinator[T]]
}

// NewScreenCoordinator creates a coordinator with an empty stack. tabs may be
// nil and attached later with AttachTabs.
func NewScreenCoordinator[R comparable, T comparable, C any](builder Builder[R, C], tabs *TabCoordinator[T]) *ScreenCoordinator[R, T, C] {
	sc := &ScreenCoordinator[R, T, C]{
		stack:   route.NewStack[R](),
		builder: builder,
	}
	sc.AttachTabs(tabs)
	return sc
}

// Navigate pushes r onto the owned stack.
func (sc *ScreenCoordinator[R, T, C]) Navigate(r R) { sc.stack.Navigate(r) }

// Pop removes the top route; no-op when the stack is empty.
func (sc *ScreenCoordinator[R, T, C]) Pop() bool { return sc.stack.Pop() }

// RemoveLast removes up to k routes from the top.
func (sc *ScreenCoordinator[R, T, C]) RemoveLast(k int) int { return sc.stack.RemoveLast(k) }

// Path returns a copy of the current route path, bottom to top.
func (sc *ScreenCoordinator[R, T, C]) Path() []R { return sc.stack.Routes() }

// Stack exposes the owned stack for observation and the less common mutations
// (PopTo, Replace, Reset).
func (sc *ScreenCoordinator[R, T, C]) Stack() *route.Stack[R] { return sc.stack }

// Build maps r to content. A coordinator without a builder returns the zero C.
func (sc *ScreenCoordinator[R, T, C]) Build(r R) C {
	if sc.builder == nil {
		var zero C
		return zero
	}
	return sc.builder.Build(r)
}

// Current builds the top route. ok is false when the stack is empty, in which
// case the host shows the area's root screen.
func (sc *ScreenCoordinator[R, T, C]) Current() (content C, ok bool) {
	top, ok := sc.stack.Top()
	if !ok {
		return content, false
	}
	return sc.Build(top), true
}

// AttachTabs sets the non-owning back-reference. Passing nil detaches.
func (sc *ScreenCoordinator[R, T, C]) AttachTabs(tabs *TabCoordinator[T]) {
	if tabs == nil {
		sc.tabs = weak.Pointer[TabCoordinator[T]]{}
		return
	}
	sc.tabs = weak.Make(tabs)
}

// Tabs returns the attached tab coordinator, or nil when none is attached or it
// has been collected.
func (sc *ScreenCoordinator[R, T, C]) Tabs() *TabCoordinator[T] {
	return sc.tabs.Value()
}

// SwitchTab asks the attached tab coordinator to switch to tab. It reports
// false when no tab coordinator is reachable.
func (sc *ScreenCoordinator[R, T, C]) SwitchTab(tab T) bool {
	tc := sc.Tabs()
	if tc == nil {
		return false
	}
	tc.SwitchTab(tab)
	return true
}
