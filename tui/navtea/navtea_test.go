package navtea

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/config"
	"github.com/grovetools/navcoord/coordinator"
	"github.com/grovetools/navcoord/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tab int

const (
	tabHome tab = iota
	tabProfile
)

func (t tab) String() string {
	if t == tabProfile {
		return "Profile"
	}
	return "Home"
}

type textScreen struct {
	title string
	keys  *[]string
}

func (s textScreen) View(width, height int) string { return "screen:" + s.title }

func (s textScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if s.keys != nil {
		*s.keys = append(*s.keys, msg.String())
	}
	if msg.String() == "n" {
		return Navigate("child")
	}
	return nil
}

func (s textScreen) Title() string { return s.title }

type fixture struct {
	tabs    *coordinator.TabSet[tab, Area]
	home    *StackArea[string, tab]
	profile *StackArea[string, tab]
	keys    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	build := coordinator.BuilderFunc[string, Screen](func(r string) Screen {
		return textScreen{title: r, keys: &f.keys}
	})
	f.home = NewArea("Home", coordinator.NewScreenCoordinator[string, tab, Screen](build, nil), textScreen{title: "home-root", keys: &f.keys})
	f.profile = NewArea("Profile", coordinator.NewScreenCoordinator[string, tab, Screen](build, nil), textScreen{title: "profile-root", keys: &f.keys})
	f.tabs = coordinator.NewTabSet[tab, Area](tabHome).
		Register(tabHome, f.home).
		Register(tabProfile, f.profile)
	return f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model[tab], msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestRegisterAttachesBackReference(t *testing.T) {
	f := newFixture(t)
	assert.Same(t, f.tabs.TabCoordinator, f.home.Coordinator().Tabs())
	assert.Same(t, f.tabs.TabCoordinator, f.profile.Coordinator().Tabs())
}

func TestNavigateMessageTargetsActiveArea(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	send(m, NavigateMsg[string]{Route: "settings"})
	assert.Equal(t, []string{"settings"}, f.home.Coordinator().Path())
	assert.Empty(t, f.profile.Coordinator().Path())
	assert.Equal(t, uint64(1), m.Revision())
	assert.Contains(t, m.Status(), "Home: navigate -> settings")

	// A route of another type is not for these areas.
	send(m, NavigateMsg[int]{Route: 3})
	assert.Equal(t, 1, f.home.Depth())
}

func TestBackKeyPops(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	f.home.Coordinator().Navigate("a")
	f.home.Coordinator().Navigate("b")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"a"}, f.home.Coordinator().Path())

	// Popping an empty stack changes nothing and notifies nobody.
	send(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, f.home.Coordinator().Path())
	assert.Equal(t, uint64(4), m.Revision())
}

func TestRemoveLastMessage(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	for _, r := range []string{"a", "b", "c", "d"} {
		f.home.Coordinator().Navigate(r)
	}

	send(m, RemoveLastMsg{K: 2})
	assert.Equal(t, []string{"a", "b"}, f.home.Coordinator().Path())

	send(m, RemoveLastMsg{K: 0}, RemoveLastMsg{K: -1})
	assert.Equal(t, []string{"a", "b"}, f.home.Coordinator().Path())

	send(m, RemoveLastMsg{K: 10})
	assert.Empty(t, f.home.Coordinator().Path())

	send(m, PopMsg{})
	assert.Empty(t, f.home.Coordinator().Path())
}

func TestTabKeys(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabProfile, f.tabs.SelectedTab())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabHome, f.tabs.SelectedTab(), "next wraps around")

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabProfile, f.tabs.SelectedTab())

	send(m, runes("1"))
	assert.Equal(t, tabHome, f.tabs.SelectedTab())

	send(m, runes("9"))
	assert.Equal(t, tabHome, f.tabs.SelectedTab(), "out of range jump is ignored")
	assert.Equal(t, "tab: Profile -> Home", m.Status())
}

func TestSwitchTabKeepsStacks(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	f.home.Coordinator().Navigate("settings")

	send(m, SwitchTabMsg[tab]{Tab: tabProfile})
	send(m, NavigateMsg[string]{Route: "details"})
	send(m, SwitchTabMsg[tab]{Tab: tabHome})

	assert.Equal(t, []string{"settings"}, f.home.Coordinator().Path())
	assert.Equal(t, []string{"details"}, f.profile.Coordinator().Path())
}

func TestSwitchTabRepeatedPublishes(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	send(m, SwitchTabMsg[tab]{Tab: tabHome}, SwitchTabMsg[tab]{Tab: tabHome})
	assert.Equal(t, tabHome, f.tabs.SelectedTab())
	assert.Equal(t, uint64(2), m.Revision())
}

func TestUnhandledKeysReachScreen(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	cmd := send(m, runes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"x"}, f.keys)

	// Screens navigate by returning commands.
	cmd = send(m, runes("n"))
	require.NotNil(t, cmd)
	send(m, cmd())
	assert.Equal(t, []string{"child"}, f.home.Coordinator().Path())

	// The top screen now receives keys.
	send(m, runes("y"))
	assert.Equal(t, []string{"x", "n", "y"}, f.keys)
}

func TestQuitClosesSubscriptions(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	f.home.Coordinator().Navigate("after-quit")
	assert.Equal(t, uint64(0), m.Revision())
}

func TestViewRendersTabsBreadcrumbAndScreen(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 20})

	out := m.View()
	assert.Contains(t, out, "1 Home")
	assert.Contains(t, out, "2 Profile")
	assert.Contains(t, out, "screen:home-root")

	f.home.Coordinator().Navigate("settings")
	out = m.View()
	assert.Contains(t, out, "screen:settings")
	assert.Contains(t, out, "Home")
	assert.Equal(t, []string{"Home", "settings"}, f.home.Crumbs())
}

func TestViewUnregisteredTab(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	send(m, tea.WindowSizeMsg{Width: 80, Height: 10})

	send(m, SwitchTabMsg[tab]{Tab: tab(7)})
	assert.Contains(t, m.View(), "no area for tab")
}

func TestHelpToggle(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)
	send(m, tea.WindowSizeMsg{Width: 160, Height: 80})

	send(m, runes("?"))
	assert.Contains(t, m.View(), "jump to tab")

	// While help is open keys do not navigate.
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabHome, f.tabs.SelectedTab())

	send(m, runes("?"))
	assert.Contains(t, m.View(), "screen:home-root")
}

func TestConfigReload(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs)

	send(m, ConfigReloadedMsg{Config: &config.Config{TUI: &config.TUIConfig{
		Theme:  "terminal",
		Preset: config.PresetVim,
		Keybindings: &config.KeybindingsConfig{
			Navigation: config.KeybindingSectionConfig{"back": {"b"}},
		},
	}}})
	assert.Equal(t, "config reloaded", m.Status())

	f.home.Coordinator().Navigate("a")
	send(m, runes("b"))
	assert.Empty(t, f.home.Coordinator().Path())
}

func TestAutosave(t *testing.T) {
	f := newFixture(t)
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.yml"))
	require.NoError(t, err)

	names := map[string]string{"settings": "settings", "details": "details"}
	tabCodec := state.NewTabCodec(map[tab]string{tabHome: "home", tabProfile: "profile"})
	save := SnapshotSaver(store, f.tabs.TabCoordinator, tabCodec,
		state.Bind("home", f.home.Coordinator().Stack(), state.NewRouteCodec("home", names)),
		state.Bind("profile", f.profile.Coordinator().Stack(), state.NewRouteCodec("profile", names)),
	)
	m := New(f.tabs, WithAutosave[tab](save))

	send(m, NavigateMsg[string]{Route: "settings"}, SwitchTabMsg[tab]{Tab: tabProfile})

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "profile", snap.SelectedTab)
	assert.Equal(t, []string{"settings"}, snap.Stacks["home"])
	assert.Empty(t, snap.Stacks["profile"])
}

func TestAutosaveFailureIsReported(t *testing.T) {
	f := newFixture(t)
	m := New(f.tabs, WithAutosave[tab](func() error { return errors.New("disk full") }))

	send(m, NavigateMsg[string]{Route: "settings"})
	assert.Equal(t, "autosave failed: disk full", m.Status())
	assert.Equal(t, []string{"settings"}, f.home.Coordinator().Path())
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder("coming soon")
	assert.Contains(t, p.View(40, 3), "coming soon")
	assert.Nil(t, p.HandleKey(runes("x")))
}

func TestAreaRegisteredAfterNewIsObserved(t *testing.T) {
	build := coordinator.BuilderFunc[string, Screen](func(r string) Screen { return textScreen{title: r} })
	home := NewArea("Home", coordinator.NewScreenCoordinator[string, tab, Screen](build, nil), textScreen{title: "home-root"})
	tabs := coordinator.NewTabSet[tab, Area](tabHome).Register(tabHome, home)

	saves := 0
	m := New(tabs, WithAutosave[tab](func() error { saves++; return nil }))

	profile := NewArea("Profile", coordinator.NewScreenCoordinator[string, tab, Screen](build, nil), textScreen{title: "profile-root"})
	tabs.Register(tabProfile, profile)
	assert.Same(t, tabs.TabCoordinator, profile.Coordinator().Tabs())

	profile.Coordinator().Navigate("details")
	assert.Equal(t, uint64(1), m.Revision())
	assert.Equal(t, 1, saves)

	m.Close()
	late := NewArea("Late", coordinator.NewScreenCoordinator[string, tab, Screen](build, nil), textScreen{title: "late-root"})
	tabs.Register(tab(2), late)
	late.Coordinator().Navigate("x")
	assert.Equal(t, uint64(1), m.Revision(), "closed model ignores later areas")
}
