package config

// mergeConfigs merges override configuration into base. Keybinding sections
// merge per action; everything else is replaced when set in override.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	if override.TUI != nil {
		merged := TUIConfig{}
		if base.TUI != nil {
			merged = *base.TUI
		}
		if override.TUI.Theme != "" {
			merged.Theme = override.TUI.Theme
		}
		if override.TUI.Preset != "" {
			merged.Preset = override.TUI.Preset
		}
		if override.TUI.Icons != "" {
			merged.Icons = override.TUI.Icons
		}
		merged.Keybindings = mergeKeybindings(merged.Keybindings, override.TUI.Keybindings)
		result.TUI = &merged
	}

	if override.State != nil {
		merged := StateConfig{}
		if base.State != nil {
			merged = *base.State
		}
		if override.State.Enabled != nil {
			merged.Enabled = override.State.Enabled
		}
		if override.State.Path != "" {
			merged.Path = override.State.Path
		}
		result.State = &merged
	}

	if len(override.Extensions) > 0 {
		ext := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			ext[k] = v
		}
		for k, v := range override.Extensions {
			ext[k] = v
		}
		result.Extensions = ext
	}

	return &result
}

func mergeKeybindings(base, override *KeybindingsConfig) *KeybindingsConfig {
	if override == nil {
		return base
	}
	if base == nil {
		copied := *override
		return &copied
	}
	return &KeybindingsConfig{
		Navigation: mergeSection(base.Navigation, override.Navigation),
		View:       mergeSection(base.View, override.View),
		System:     mergeSection(base.System, override.System),
	}
}

func mergeSection(base, override KeybindingSectionConfig) KeybindingSectionConfig {
	if len(override) == 0 {
		return base
	}
	out := make(KeybindingSectionConfig, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
