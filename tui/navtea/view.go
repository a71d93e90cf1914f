package navtea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navcoord/tui/theme"
)

// View renders the tab bar, breadcrumb, active screen, status and help.
func (m *Model[T]) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	header := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderBreadcrumb())
	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.StatusBar.Render(m.status),
		m.help.View(),
	)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if area, ok := m.activeArea(); ok {
		body = area.Screen().View(m.width, bodyHeight)
	} else {
		body = Placeholder(fmt.Sprintf("no area for tab %s", m.tabLabel(m.tabs.SelectedTab()))).View(m.width, bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model[T]) renderTabs() string {
	selected := m.tabs.SelectedTab()
	rendered := make([]string, 0, m.tabs.Len())
	for i, tab := range m.tabs.Order() {
		label := fmt.Sprintf("%d %s", i+1, m.tabLabel(tab))
		if tab == selected {
			rendered = append(rendered, m.theme.TabActive.Render(label))
		} else {
			rendered = append(rendered, m.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model[T]) renderBreadcrumb() string {
	area, ok := m.activeArea()
	if !ok {
		return ""
	}
	crumbs := area.Crumbs()
	parts := make([]string, 0, len(crumbs)*2)
	for i, c := range crumbs {
		if i == len(crumbs)-1 {
			parts = append(parts, m.theme.Highlight.Render(c))
			break
		}
		parts = append(parts, m.theme.Muted.Render(c), m.theme.Muted.Render(theme.Icons.Arrow))
	}
	return strings.Join(parts, " ")
}
