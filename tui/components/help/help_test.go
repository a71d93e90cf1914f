package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortViewListsEnabledBindings(t *testing.T) {
	m := New(keymap.NewBase())
	out := m.View()

	assert.Contains(t, out, "back")
	assert.Contains(t, out, "next tab")
	assert.Contains(t, out, "quit")

	km := keymap.NewBase()
	km.Back.SetEnabled(false)
	m = New(km)
	assert.NotContains(t, m.View(), "back")
}

func TestToggleFullView(t *testing.T) {
	m := New(keymap.NewBase())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 160, Height: 80})

	m.Toggle()
	require.True(t, m.ShowAll)
	out := m.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, keymap.SectionNavigation)
	assert.Contains(t, out, keymap.SectionSystem)
	assert.Contains(t, out, "jump to tab")

	// esc closes, and the keys are not passed on
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowAll)
	assert.Nil(t, cmd)
}

func TestFullViewIncludesExtraSections(t *testing.T) {
	m := New(keymap.NewBase())
	m.SetSize(160, 80)
	m.SetExtra(keymap.NewSection("Home", key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open settings"))))
	m.Toggle()

	out := m.View()
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "open settings")
}

func TestHelpKeyClosesFullView(t *testing.T) {
	m := New(keymap.NewBase())
	m.SetSize(80, 30)
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, m.ShowAll)
}

func TestNilKeys(t *testing.T) {
	m := New(nil)
	assert.Equal(t, "", m.View())
}

func TestFullViewScrollsWhenTooTall(t *testing.T) {
	m := New(keymap.NewBase())
	m.SetSize(100, 14)
	m.Toggle()

	out := m.View()
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, m.ShowAll, "scroll keys keep the overlay open")
}
