package coordinator

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoute int

const (
	routeFirst testRoute = iota
	routeSecond
)

type testTab string

const (
	tabHome    testTab = "home"
	tabProfile testTab = "profile"
)

func buildText(r testRoute) string {
	switch r {
	case routeFirst:
		return "First"
	case routeSecond:
		return "Second"
	default:
		return "?"
	}
}

func newTestCoordinator() *ScreenCoordinator[testRoute, testTab, string] {
	return NewScreenCoordinator[testRoute, testTab, string](BuilderFunc[testRoute, string](buildText), nil)
}

func TestNavigateAppendsRoute(t *testing.T) {
	c := newTestCoordinator()
	assert.Equal(t, 0, c.Stack().Len())

	c.Navigate(routeFirst)
	assert.Equal(t, 1, c.Stack().Len())
}

func TestPopRemovesLastRoute(t *testing.T) {
	c := newTestCoordinator()
	c.Navigate(routeFirst)
	c.Navigate(routeSecond)
	assert.Equal(t, 2, c.Stack().Len())

	c.Pop()
	assert.Equal(t, []testRoute{routeFirst}, c.Path())
}

func TestRemoveLast(t *testing.T) {
	c := newTestCoordinator()
	c.Navigate(routeFirst)
	c.Navigate(routeSecond)
	c.Navigate(routeFirst)

	c.RemoveLast(2)
	assert.Equal(t, []testRoute{routeFirst}, c.Path())
}

func TestRemoveLastMoreThanCount(t *testing.T) {
	c := newTestCoordinator()
	c.Navigate(routeFirst)

	c.RemoveLast(5)
	assert.Equal(t, 0, c.Stack().Len())
}

func TestBuildAndCurrent(t *testing.T) {
	c := newTestCoordinator()
	_, ok := c.Current()
	assert.False(t, ok)

	c.Navigate(routeSecond)
	content, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Second", content)
	assert.Equal(t, "First", c.Build(routeFirst))

	var bare ScreenCoordinator[testRoute, testTab, string]
	assert.Equal(t, "", bare.Build(routeFirst))
}

func TestSwitchTab(t *testing.T) {
	tabs := NewTabCoordinator(tabHome)
	assert.Equal(t, tabHome, tabs.SelectedTab())

	var changes []TabChange[testTab]
	tabs.Subscribe(func(c TabChange[testTab]) { changes = append(changes, c) })

	tabs.SwitchTab(tabProfile)
	tabs.SwitchTab(tabProfile)
	assert.Equal(t, tabProfile, tabs.SelectedTab())

	require.Len(t, changes, 2, "every call notifies observers")
	assert.Equal(t, TabChange[testTab]{From: tabHome, To: tabProfile}, changes[0])
	assert.Equal(t, TabChange[testTab]{From: tabProfile, To: tabProfile}, changes[1])
}

func TestScreenCoordinatorSwitchesThroughBackReference(t *testing.T) {
	c := newTestCoordinator()
	assert.Nil(t, c.Tabs())
	assert.False(t, c.SwitchTab(tabProfile))

	tabs := NewTabCoordinator(tabHome)
	c.AttachTabs(tabs)
	require.Same(t, tabs, c.Tabs())
	assert.True(t, c.SwitchTab(tabProfile))
	assert.Equal(t, tabProfile, tabs.SelectedTab())

	c.AttachTabs(nil)
	assert.Nil(t, c.Tabs())
}

func TestBackReferenceDoesNotOwnTabCoordinator(t *testing.T) {
	c := newTestCoordinator()
	func() {
		tabs := NewTabCoordinator(tabHome)
		tabs.Subscribe(func(TabChange[testTab]) {})
		c.AttachTabs(tabs)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return c.Tabs() == nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, c.SwitchTab(tabProfile))
}

func TestTabSetComposition(t *testing.T) {
	home := newTestCoordinator()
	profile := newTestCoordinator()

	set := NewTabSet[testTab, *ScreenCoordinator[testRoute, testTab, string]](tabHome).
		Register(tabHome, home).
		Register(tabProfile, profile)

	assert.Equal(t, []testTab{tabHome, tabProfile}, set.Order())
	assert.Equal(t, 2, set.Len())
	require.Same(t, set.TabCoordinator, home.Tabs())
	require.Same(t, set.TabCoordinator, profile.Tabs())

	active, ok := set.Active()
	require.True(t, ok)
	assert.Same(t, home, active)

	// A screen in the home area can move the whole app to the profile tab.
	home.SwitchTab(tabProfile)
	active, _ = set.Active()
	assert.Same(t, profile, active)

	assert.Equal(t, []*ScreenCoordinator[testRoute, testTab, string]{home, profile}, set.Areas())
}

func TestTabSetCycling(t *testing.T) {
	set := NewTabSet[testTab, int](tabHome).
		Register(tabHome, 1).
		Register(tabProfile, 2).
		Register("search", 3)

	set.Next()
	assert.Equal(t, tabProfile, set.SelectedTab())
	set.Next()
	set.Next()
	assert.Equal(t, tabHome, set.SelectedTab())
	set.Prev()
	assert.Equal(t, testTab("search"), set.SelectedTab())

	assert.True(t, set.SelectIndex(1))
	assert.Equal(t, tabProfile, set.SelectedTab())
	assert.False(t, set.SelectIndex(3))
	assert.False(t, set.SelectIndex(-1))
	assert.Equal(t, -1, set.Index("missing"))
}

func TestTabSetRejectsDuplicateTabs(t *testing.T) {
	set := NewTabSet[testTab, int](tabHome).Register(tabHome, 1)
	assert.Panics(t, func() { set.Register(tabHome, 2) })
}

func TestTabSetWithUnregisteredSelection(t *testing.T) {
	set := NewTabSet[testTab, int]("missing").Register(tabHome, 1)
	_, ok := set.Active()
	assert.False(t, ok)

	set.Next()
	assert.Equal(t, tabHome, set.SelectedTab(), "cycling from an unknown tab lands on the first one")

	empty := NewTabSet[testTab, int](tabHome)
	empty.Next()
	assert.Equal(t, tabHome, empty.SelectedTab())
}

func TestTabSetOnRegister(t *testing.T) {
	set := NewTabSet[testTab, string](tabHome).Register(tabHome, "home-area")

	var got []Registration[testTab, string]
	cancel := set.OnRegister(func(r Registration[testTab, string]) { got = append(got, r) })

	set.Register(tabProfile, "profile-area")
	cancel()
	set.Register(testTab("extra"), "extra-area")

	assert.Equal(t, []Registration[testTab, string]{{Tab: tabProfile, Area: "profile-area"}}, got)
	assert.Equal(t, 3, set.Len())
}
