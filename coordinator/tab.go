package coordinator

import "github.com/grovetools/navcoord/observe"

// TabChange is published every time SwitchTab is called.
type TabChange[T comparable] struct {
	From T
	To   T
}

// TabCoordinator holds the currently active tab.
type TabCoordinator[T comparable] struct {
	selected T
	changes  observe.Publisher[TabChange[T]]
}

// NewTabCoordinator creates a coordinator with initial selected. There is no
// default tab.
func NewTabCoordinator[T comparable](initial T) *TabCoordinator[T] {
	return &TabCoordinator[T]{selected: initial}
}

// SelectedTab returns the active tab.
func (c *TabCoordinator[T]) SelectedTab() T {
	return c.selected
}

// SwitchTab replaces the selected tab unconditionally and notifies subscribers,
// even when to equals the current value.
func (c *TabCoordinator[T]) SwitchTab(to T) {
	from := c.selected
	c.selected = to
	c.changes.Publish(TabChange[T]{From: from, To: to})
}

// Subscribe registers fn for tab changes.
func (c *TabCoordinator[T]) Subscribe(fn func(TabChange[T])) (cancel func()) {
	return c.changes.Subscribe(fn)
}
