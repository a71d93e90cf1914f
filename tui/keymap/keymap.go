package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/navcoord/config"
)

// Base contains the keybindings understood by the navigation host.
type Base struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding // pops the active stack

	// View
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding // 1..9 selects the tab at that position

	// System
	Help key.Binding
	Quit key.Binding
}

// NewBase creates a new Base keymap with the default (vim) preset.
func NewBase() Base {
	return DefaultVim()
}

// DefaultVim returns the vim-style keymap.
func DefaultVim() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "L"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "H"),
			key.WithHelp("S-tab", "prev tab"),
		),
		JumpTab: jumpTab(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultArrows returns a keymap without letter navigation, for users who
// want every printable key left to the screens.
func DefaultArrows() Base {
	km := DefaultVim()
	km.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	)
	km.Back = key.NewBinding(
		key.WithKeys("esc", "left"),
		key.WithHelp("esc/←", "back"),
	)
	km.NextTab = key.NewBinding(
		key.WithKeys("tab", "ctrl+right"),
		key.WithHelp("tab", "next tab"),
	)
	km.PrevTab = key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+left"),
		key.WithHelp("S-tab", "prev tab"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("C-c", "quit"),
	)
	return km
}

func jumpTab() key.Binding {
	return key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump to tab"),
	)
}

// ForPreset returns the keymap for a preset name. Unknown names use vim.
func ForPreset(preset string) Base {
	switch preset {
	case config.PresetArrows:
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// FromConfig builds the keymap from the tui section of cfg: the preset is
// chosen first and then each keybinding section is overlaid on top of it.
func FromConfig(cfg *config.Config) Base {
	if cfg == nil || cfg.TUI == nil {
		return NewBase()
	}
	km := ForPreset(cfg.TUI.Preset)
	for _, section := range cfg.TUI.Keybindings.Sections() {
		ApplyOverrides(&km, section)
	}
	return km
}

// ShortHelp returns the bindings shown on the one-line help bar.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns bindings grouped by column, for bubbles/help.
func (k Base) FullHelp() [][]key.Binding {
	sections := k.Sections()
	groups := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		groups = append(groups, s.Bindings)
	}
	return groups
}

// Sections returns grouped sections of all key bindings for the full help view.
func (k Base) Sections() []Section {
	return []Section{
		NavigationSection(k.Up, k.Down, k.Confirm, k.Back),
		ViewSection(k.NextTab, k.PrevTab, k.JumpTab),
		SystemSection(k.Help, k.Quit),
	}
}

// GetHelp and GetQuit let components locate the toggle keys without knowing
// the concrete keymap type.
func (k Base) GetHelp() key.Binding { return k.Help }

func (k Base) GetQuit() key.Binding { return k.Quit }
