package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/navcoord/config"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NextTab", "next_tab"},
		{"JumpTab", "jump_tab"},
		{"HTTPServer", "h_t_t_p_server"},
		{"Up", "up"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := camelToSnake(tt.input); result != tt.expected {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// screenKeyMap extends Base the way a screen with its own actions would.
type screenKeyMap struct {
	Base
	OpenSettings key.Binding
	unexported   key.Binding
	NotABinding  string
}

func TestApplyOverridesEmbedded(t *testing.T) {
	km := screenKeyMap{
		Base: NewBase(),
		OpenSettings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		unexported:  key.NewBinding(key.WithKeys("u")),
		NotABinding: "unchanged",
	}

	ApplyOverrides(&km, config.KeybindingSectionConfig{
		"open_settings": {"S"},
		"next_tab":      {"n"},
		"unexported":    {"x"},
		"not_a_binding": {"x"},
	})

	if keys := km.OpenSettings.Keys(); len(keys) != 1 || keys[0] != "S" {
		t.Errorf("OpenSettings keys = %v", keys)
	}
	if desc := km.OpenSettings.Help().Desc; desc != "settings" {
		t.Errorf("OpenSettings desc = %q", desc)
	}
	if keys := km.NextTab.Keys(); len(keys) != 1 || keys[0] != "n" {
		t.Errorf("embedded NextTab keys = %v", keys)
	}
	if keys := km.unexported.Keys(); keys[0] != "u" {
		t.Errorf("unexported field changed: %v", keys)
	}
	if km.NotABinding != "unchanged" {
		t.Errorf("non-binding field changed: %q", km.NotABinding)
	}
}

func TestApplyOverridesIgnoresBadInput(t *testing.T) {
	km := NewBase()

	// Not a pointer, nil pointer and empty overrides are all no-ops.
	ApplyOverrides(km, config.KeybindingSectionConfig{"up": {"w"}})
	ApplyOverrides((*Base)(nil), config.KeybindingSectionConfig{"up": {"w"}})
	ApplyOverrides(&km, nil)
	ApplyOverrides(&km, config.KeybindingSectionConfig{"up": {}})

	if keys := km.Up.Keys(); keys[0] != "k" {
		t.Errorf("Up changed unexpectedly: %v", keys)
	}
}
