// Package navtea hosts navigation coordinators in a Bubble Tea program.
//
// A Model observes a coordinator.TabSet whose areas are screen coordinators
// and re-renders after every change. Screens mutate navigation state either
// directly through their coordinator or by returning the commands in this
// package (Navigate, Pop, RemoveLast, SwitchTab).
package navtea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/grovetools/navcoord/tui/theme"
)

// Screen is the content a coordinator builds for a route.
type Screen interface {
	View(width, height int) string
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// Titled screens name themselves in the breadcrumb.
type Titled interface {
	Title() string
}

// HelpProvider screens add their own bindings to the full help view.
type HelpProvider interface {
	HelpSection() keymap.Section
}

type placeholder struct {
	text string
}

// Placeholder returns a screen that only shows text. Builders return it for
// routes that have no content yet.
func Placeholder(text string) Screen {
	return placeholder{text: text}
}

func (p placeholder) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.DefaultTheme.Placeholder.Render(p.text))
}

func (p placeholder) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (p placeholder) Title() string { return p.text }

// screenTitle returns the breadcrumb label for s, falling back to fallback.
func screenTitle(s Screen, fallback any) string {
	if t, ok := s.(Titled); ok && t.Title() != "" {
		return t.Title()
	}
	return fmt.Sprint(fallback)
}
