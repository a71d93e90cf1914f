// Package route implements the ordered back-stack of route values owned by a
// screen coordinator.
//
// A Stack is a plain sequence editor: Navigate appends, Pop and RemoveLast trim
// from the end, and nothing ever fails. Popping an empty stack does nothing and
// removing more routes than exist clears the stack.
package route

import (
	"slices"

	"github.com/grovetools/navcoord/observe"
)

// Op identifies the mutation that produced a Change.
type Op string

const (
	OpNavigate   Op = "navigate"
	OpPop        Op = "pop"
	OpRemoveLast Op = "remove_last"
	OpReplace    Op = "replace"
)

// Change describes one effective mutation of a Stack.
type Change[R comparable] struct {
	Op      Op
	Pushed  []R // routes appended, bottom to top
	Removed []R // routes removed, in the order they sat on the stack
	Routes  []R // full path after the change, bottom to top
}

// Stack is an ordered, mutable sequence of routes. The last element is the
// currently displayed screen. The zero value is an empty, usable stack.
//
// Stack is meant to be driven from a single goroutine (the UI event loop).
type Stack[R comparable] struct {
	routes  []R
	changes observe.Publisher[Change[R]]
}

// NewStack returns a stack seeded with routes, bottom first.
func NewStack[R comparable](routes ...R) *Stack[R] {
	s := &Stack[R]{}
	if len(routes) > 0 {
		s.routes = append(s.routes, routes...)
	}
	return s
}

// Navigate pushes r; it becomes the new top.
func (s *Stack[R]) Navigate(r R) {
	s.routes = append(s.routes, r)
	s.publish(OpNavigate, []R{r}, nil)
}

// Pop removes the top route. It reports whether anything was removed; popping
// an empty stack is a no-op.
func (s *Stack[R]) Pop() bool {
	if len(s.routes) == 0 {
		return false
	}
	removed := s.trim(1)
	s.publish(OpPop, nil, removed)
	return true
}

// RemoveLast removes the top k routes and returns how many were removed. If k
// exceeds the stack length the stack is cleared. A k of zero or less leaves the
// stack untouched.
func (s *Stack[R]) RemoveLast(k int) int {
	if k <= 0 || len(s.routes) == 0 {
		return 0
	}
	if k > len(s.routes) {
		k = len(s.routes)
	}
	removed := s.trim(k)
	s.publish(OpRemoveLast, nil, removed)
	return k
}

// PopTo removes every route above the last occurrence of r, leaving r on top.
// It returns false, without mutating, when r is not on the stack.
func (s *Stack[R]) PopTo(r R) bool {
	for i := len(s.routes) - 1; i >= 0; i-- {
		if s.routes[i] == r {
			s.RemoveLast(len(s.routes) - 1 - i)
			return true
		}
	}
	return false
}

// Reset clears the stack.
func (s *Stack[R]) Reset() {
	s.RemoveLast(len(s.routes))
}

// Replace swaps the whole path for routes. Replacing a path with an equal
// one is a no-op.
func (s *Stack[R]) Replace(routes ...R) {
	if slices.Equal(routes, s.routes) {
		return
	}
	removed := s.routes
	s.routes = append([]R(nil), routes...)
	s.publish(OpReplace, clone(routes), removed)
}

// Len returns the number of routes on the stack.
func (s *Stack[R]) Len() int { return len(s.routes) }

// IsEmpty reports whether the stack holds no routes.
func (s *Stack[R]) IsEmpty() bool { return len(s.routes) == 0 }

// Top returns the current route.
func (s *Stack[R]) Top() (R, bool) {
	if len(s.routes) == 0 {
		var zero R
		return zero, false
	}
	return s.routes[len(s.routes)-1], true
}

// Routes returns a copy of the path, bottom to top.
func (s *Stack[R]) Routes() []R { return clone(s.routes) }

// Contains reports whether r is anywhere on the stack.
func (s *Stack[R]) Contains(r R) bool {
	for _, v := range s.routes {
		if v == r {
			return true
		}
	}
	return false
}

// Subscribe registers fn to be called synchronously after every effective
// mutation. No-op calls (popping an empty stack, RemoveLast(0)) publish nothing.
func (s *Stack[R]) Subscribe(fn func(Change[R])) (cancel func()) {
	return s.changes.Subscribe(fn)
}

func (s *Stack[R]) trim(k int) []R {
	n := len(s.routes) - k
	removed := clone(s.routes[n:])
	var zero R
	for i := n; i < len(s.routes); i++ {
		s.routes[i] = zero
	}
	s.routes = s.routes[:n]
	return removed
}

func (s *Stack[R]) publish(op Op, pushed, removed []R) {
	if s.changes.Len() == 0 {
		return
	}
	s.changes.Publish(Change[R]{
		Op:      op,
		Pushed:  pushed,
		Removed: removed,
		Routes:  clone(s.routes),
	})
}

func clone[R any](in []R) []R {
	if len(in) == 0 {
		return []R{}
	}
	out := make([]R, len(in))
	copy(out, in)
	return out
}
