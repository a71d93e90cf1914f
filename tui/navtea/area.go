package navtea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/coordinator"
	"github.com/grovetools/navcoord/route"
)

// Area is one tab's navigable region as seen by the Model.
type Area interface {
	// Title labels the area's root in the breadcrumb.
	Title() string
	// Screen returns the screen for the top route, or the root screen when
	// the stack is empty.
	Screen() Screen
	// Crumbs returns the area title followed by a label per route.
	Crumbs() []string
	Depth() int
	Pop() bool
	RemoveLast(k int) int
	// Handle applies area-specific messages such as NavigateMsg for the
	// area's route type. handled is false for messages it does not know.
	Handle(msg tea.Msg) (cmd tea.Cmd, handled bool)
	// Observe calls fn with a short description after every stack change.
	Observe(fn func(desc string)) (cancel func())
}

// StackArea adapts a ScreenCoordinator building Screens to Area.
type StackArea[R comparable, T comparable] struct {
	title string
	sc    *coordinator.ScreenCoordinator[R, T, Screen]
	root  Screen
	label func(R) string
}

var _ Area = (*StackArea[string, string])(nil)

// NewArea wraps sc. root is shown while the stack is empty. Routes are
// labelled by the built screen's Title, or fmt.Sprint(route).
func NewArea[R comparable, T comparable](title string, sc *coordinator.ScreenCoordinator[R, T, Screen], root Screen) *StackArea[R, T] {
	return &StackArea[R, T]{title: title, sc: sc, root: root}
}

// WithLabels overrides how routes are labelled in the breadcrumb.
func (a *StackArea[R, T]) WithLabels(label func(R) string) *StackArea[R, T] {
	a.label = label
	return a
}

// Coordinator returns the wrapped screen coordinator.
func (a *StackArea[R, T]) Coordinator() *coordinator.ScreenCoordinator[R, T, Screen] {
	return a.sc
}

// AttachTabs forwards the back-reference so TabSet.Register wires it.
func (a *StackArea[R, T]) AttachTabs(tabs *coordinator.TabCoordinator[T]) {
	a.sc.AttachTabs(tabs)
}

func (a *StackArea[R, T]) Title() string { return a.title }

func (a *StackArea[R, T]) Screen() Screen {
	if s, ok := a.sc.Current(); ok && s != nil {
		return s
	}
	if a.root == nil {
		return Placeholder(a.title)
	}
	return a.root
}

func (a *StackArea[R, T]) Crumbs() []string {
	path := a.sc.Path()
	crumbs := make([]string, 0, len(path)+1)
	crumbs = append(crumbs, a.title)
	for _, r := range path {
		crumbs = append(crumbs, a.labelFor(r))
	}
	return crumbs
}

func (a *StackArea[R, T]) labelFor(r R) string {
	if a.label != nil {
		return a.label(r)
	}
	return screenTitle(a.sc.Build(r), r)
}

func (a *StackArea[R, T]) Depth() int { return a.sc.Stack().Len() }

func (a *StackArea[R, T]) Pop() bool { return a.sc.Pop() }

func (a *StackArea[R, T]) RemoveLast(k int) int { return a.sc.RemoveLast(k) }

func (a *StackArea[R, T]) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case NavigateMsg[R]:
		a.sc.Navigate(msg.Route)
		return nil, true
	}
	return nil, false
}

func (a *StackArea[R, T]) Observe(fn func(desc string)) (cancel func()) {
	return a.sc.Stack().Subscribe(func(c route.Change[R]) {
		fn(a.describe(c))
	})
}

func (a *StackArea[R, T]) describe(c route.Change[R]) string {
	labels := make([]string, 0, len(c.Routes))
	for _, r := range c.Routes {
		labels = append(labels, a.labelFor(r))
	}
	path := strings.Join(labels, "/")
	if path == "" {
		path = "root"
	}
	return fmt.Sprintf("%s: %s -> %s", a.title, c.Op, path)
}
