package navtea

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/grovetools/navcoord/tui/theme"
)

// Update handles messages and updates the model accordingly.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case SwitchTabMsg[T]:
		m.tabs.SwitchTab(msg.Tab)
		return m, nil

	case PopMsg:
		if area, ok := m.activeArea(); ok {
			area.Pop()
		}
		return m, nil

	case RemoveLastMsg:
		if area, ok := m.activeArea(); ok {
			area.RemoveLast(msg.K)
		}
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.keys = keymap.FromConfig(msg.Config)
			m.help.Keys = m.keys
			if msg.Config.TUI != nil && msg.Config.TUI.Theme != "" {
				m.theme = theme.NewThemeWithName(msg.Config.TUI.Theme)
				m.help.Theme = m.theme
			}
			m.status = "config reloaded"
		}
		return m, nil
	}

	// Route-typed messages belong to the active area
	if area, ok := m.activeArea(); ok {
		if cmd, handled := area.Handle(msg); handled {
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.help.ShowAll {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.SetExtra(m.screenHelp()...)
		m.help.Toggle()
		return nil

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		return nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		return nil

	case key.Matches(msg, m.keys.JumpTab):
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			m.tabs.SelectIndex(int(r[0] - '1'))
		}
		return nil

	case key.Matches(msg, m.keys.Back):
		if area, ok := m.activeArea(); ok {
			area.Pop()
		}
		return nil
	}

	if area, ok := m.activeArea(); ok {
		return area.Screen().HandleKey(msg)
	}
	return nil
}

func (m *Model[T]) screenHelp() []keymap.Section {
	area, ok := m.activeArea()
	if !ok {
		return nil
	}
	if hp, ok := area.Screen().(HelpProvider); ok {
		return []keymap.Section{hp.HelpSection()}
	}
	return nil
}
