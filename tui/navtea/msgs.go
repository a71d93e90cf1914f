package navtea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/config"
)

// SwitchTabMsg asks the model to select Tab.
type SwitchTabMsg[T comparable] struct {
	Tab T
}

// NavigateMsg pushes Route onto the active area. Areas whose route type is
// not R ignore it.
type NavigateMsg[R comparable] struct {
	Route R
}

// PopMsg pops the active area's stack.
type PopMsg struct{}

// RemoveLastMsg removes the top K routes of the active area's stack.
type RemoveLastMsg struct {
	K int
}

// ConfigReloadedMsg carries a freshly loaded configuration. The model
// rebuilds its keymap and theme from it.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// SwitchTab returns a command that selects tab.
func SwitchTab[T comparable](tab T) tea.Cmd {
	return func() tea.Msg { return SwitchTabMsg[T]{Tab: tab} }
}

// Navigate returns a command that pushes r onto the active area.
func Navigate[R comparable](r R) tea.Cmd {
	return func() tea.Msg { return NavigateMsg[R]{Route: r} }
}

// Pop returns a command that pops the active area.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// RemoveLast returns a command that removes the top k routes of the active area.
func RemoveLast(k int) tea.Cmd {
	return func() tea.Msg { return RemoveLastMsg{K: k} }
}
