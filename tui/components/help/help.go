// Package help renders a one-line key summary and a full, sectioned help
// overlay for any keymap that exposes its bindings.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/grovetools/navcoord/tui/theme"
	"github.com/grovetools/navcoord/tui/utils/scrollbar"
)

const (
	marginY    = 4
	marginX    = 4
	gutter     = 4
	maxColumns = 3
)

// ShortKeyMap is implemented by keymaps that can be summarized on one line.
type ShortKeyMap interface {
	ShortHelp() []key.Binding
}

// Model is an embeddable help component.
type Model struct {
	Keys    ShortKeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	// Title heads the full view. Defaults to "Help".
	Title string
	// Extra sections follow the keymap's own, e.g. the active screen's keys.
	Extra []keymap.Section

	viewport viewport.Model
}

func New(keys ShortKeyMap) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{Keys: keys, Theme: theme.DefaultTheme, viewport: vp}
}

// Update resizes the component and, while the full view is open, consumes
// every key: help, quit and esc close it and anything else scrolls.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.refresh()
		}
	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.helpKey(), m.quitKey()) {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if m.ShowAll {
		content := m.viewport.View()
		if m.viewport.TotalLineCount() > m.viewport.Height {
			content = scrollbar.Overlay(&m.viewport, m.Theme.Muted)
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}
	if m.Keys == nil {
		return ""
	}

	var pairs []string
	for _, b := range m.Keys.ShortHelp() {
		if h := b.Help(); b.Enabled() && h.Key != "" && h.Desc != "" {
			pairs = append(pairs, m.Theme.Highlight.Render(h.Key)+" "+m.Theme.Muted.Render(h.Desc))
		}
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// Toggle opens or closes the full view. Opening re-renders the sections and
// scrolls to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.refresh()
		m.viewport.GotoTop()
	}
}

func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetExtra replaces the sections appended after the keymap's own.
func (m *Model) SetExtra(sections ...keymap.Section) {
	m.Extra = sections
}

func (m *Model) refresh() {
	content := m.render()
	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(m.Height-marginY, 1)
}

// render lays the section boxes out in one column when they fit the height,
// otherwise in the widest column count (up to maxColumns) that fits the width.
func (m *Model) render() string {
	var boxes []string
	for _, s := range m.sections() {
		if box := m.box(s); box != "" {
			boxes = append(boxes, box)
		}
	}
	if len(boxes) == 0 {
		return ""
	}

	layout := lipgloss.JoinVertical(lipgloss.Left, boxes...)
	if lipgloss.Height(layout) > m.Height-marginY {
		for n := min(len(boxes), maxColumns); n > 1; n-- {
			if cols := columns(boxes, n); lipgloss.Width(cols) <= m.Width-marginX {
				layout = cols
				break
			}
		}
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}
	heading := m.Theme.Title.
		Width(lipgloss.Width(layout)).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(title)
	return lipgloss.JoinVertical(lipgloss.Center, heading, layout)
}

func (m *Model) sections() []keymap.Section {
	var sections []keymap.Section
	if k, ok := m.Keys.(keymap.SectionedKeyMap); ok {
		sections = k.Sections()
	}
	return append(sections, m.Extra...)
}

// box renders one section as a bordered key/description table, or "" when
// nothing in it has help text.
func (m *Model) box(s keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)
	descStyle := m.Theme.Muted.Italic(true)

	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(int, int) lipgloss.Style { return lipgloss.NewStyle().Padding(0, 1) })
	rows := 0
	for _, b := range s.FilterEnabled() {
		if h := b.Help(); h.Key != "" && h.Desc != "" {
			t.Row(keyStyle.Render(h.Key), descStyle.Render(h.Desc))
			rows++
		}
	}
	if rows == 0 {
		return ""
	}

	icon := s.Icon
	if icon == "" {
		icon = sectionIcon(s.Name)
	}
	title := lipgloss.NewStyle().Foreground(m.Theme.Colors.Orange).Italic(true).Render(icon + " " + s.Name)
	return m.Theme.Box.
		MarginBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, t.String()))
}

// columns packs boxes into n columns, adding each box to the currently
// shortest one.
func columns(boxes []string, n int) string {
	cols := make([][]string, n)
	heights := make([]int, n)
	for _, b := range boxes {
		i := 0
		for j := range heights {
			if heights[j] < heights[i] {
				i = j
			}
		}
		cols[i] = append(cols[i], b)
		heights[i] += lipgloss.Height(b)
	}

	parts := make([]string, 0, 2*n)
	for _, c := range cols {
		if len(c) == 0 {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, strings.Repeat(" ", gutter))
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, c...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.Icons.Navigation
	case keymap.SectionView:
		return theme.Icons.View
	case keymap.SectionSystem:
		return theme.Icons.System
	default:
		return theme.Icons.Sparkle
	}
}

// helpKey and quitKey fall back to "?" and "q" for keymaps that do not
// expose their own.
func (m *Model) helpKey() key.Binding {
	if k, ok := m.Keys.(interface{ GetHelp() key.Binding }); ok {
		return k.GetHelp()
	}
	return key.NewBinding(key.WithKeys("?"))
}

func (m *Model) quitKey() key.Binding {
	if k, ok := m.Keys.(interface{ GetQuit() key.Binding }); ok {
		return k.GetQuit()
	}
	return key.NewBinding(key.WithKeys("q"))
}
