package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Keymap presets understood by tui/keymap.
const (
	PresetVim    = "vim"
	PresetArrows = "arrows"
)

// KeybindingSectionConfig defines keybindings for a specific section (navigation, view, system).
// Keys are action names (e.g., "back", "next_tab", "quit"), values are lists of key combinations.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig defines the structure for custom keybindings.
type KeybindingsConfig struct {
	Navigation KeybindingSectionConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" jsonschema:"description=Navigation keybindings (up, down, confirm, back)"`
	View       KeybindingSectionConfig `yaml:"view,omitempty" toml:"view,omitempty" jsonschema:"description=View keybindings (next_tab, prev_tab)"`
	System     KeybindingSectionConfig `yaml:"system,omitempty" toml:"system,omitempty" jsonschema:"description=System keybindings (quit, help)"`
}

// Sections returns the configured sections in a fixed order.
func (k *KeybindingsConfig) Sections() []KeybindingSectionConfig {
	if k == nil {
		return nil
	}
	return []KeybindingSectionConfig{k.Navigation, k.View, k.System}
}

// TUIConfig holds appearance and input settings for the Bubble Tea host.
type TUIConfig struct {
	Theme       string             `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme (kanagawa, gruvbox, terminal)"`
	Preset      string             `yaml:"preset,omitempty" toml:"preset,omitempty" jsonschema:"description=Base keymap preset,enum=vim,enum=arrows"`
	Icons       string             `yaml:"icons,omitempty" toml:"icons,omitempty" jsonschema:"description=Icon set,enum=nerd,enum=ascii"`
	Keybindings *KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" jsonschema:"description=Keybinding overrides by section"`
}

// StateConfig controls navigation snapshot persistence.
type StateConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" toml:"enabled,omitempty" jsonschema:"description=Save the navigation state on every change and restore it on start"`
	Path    string `yaml:"path,omitempty" toml:"path,omitempty" jsonschema:"description=Snapshot file (default: .navcoord/state.yml)"`
}

// IsEnabled reports whether persistence is switched on.
func (s *StateConfig) IsEnabled() bool {
	return s != nil && s.Enabled != nil && *s.Enabled
}

// Config is the navcoord configuration file.
type Config struct {
	Version string       `yaml:"version,omitempty" toml:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	TUI     *TUIConfig   `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=TUI appearance and behavior settings"`
	State   *StateConfig `yaml:"state,omitempty" toml:"state,omitempty" jsonschema:"description=Navigation snapshot persistence"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys decoded into typed fields.
var knownKeys = map[string]bool{"version": true, "tui": true, "state": true}

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.Preset == "" {
		c.TUI.Preset = PresetVim
	}
	if c.State == nil {
		c.State = &StateConfig{}
	}
}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.TUI != nil {
		switch c.TUI.Preset {
		case "", PresetVim, PresetArrows:
		default:
			return fmt.Errorf("tui.preset must be %q or %q, got %q", PresetVim, PresetArrows, c.TUI.Preset)
		}
		if kb := c.TUI.Keybindings; kb != nil {
			for _, section := range kb.Sections() {
				for action, keys := range section {
					if len(keys) == 0 {
						return fmt.Errorf("keybinding %q has no keys", action)
					}
				}
			}
		}
	}
	return nil
}

// UnmarshalExtension decodes the top-level key into target using yaml tags.
// A missing key leaves target untouched.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// MarshalYAML renders the config with extensions inlined, for `config show`.
func (c Config) MarshalYAML() (interface{}, error) {
	out := make(map[string]interface{}, len(c.Extensions)+3)
	for k, v := range c.Extensions {
		out[k] = v
	}
	out["version"] = c.Version
	if c.TUI != nil {
		out["tui"] = c.TUI
	}
	if c.State != nil {
		out["state"] = c.State
	}
	return out, nil
}

var _ yaml.Marshaler = Config{}
