package theme

import (
	"os"

	"github.com/grovetools/navcoord/config"
)

// IconSet is the glyph table used by the tab bar, breadcrumb and help.
type IconSet struct {
	Arrow      string
	Bullet     string
	Tab        string
	Back       string
	Navigation string
	View       string
	System     string
	Sparkle    string
	Save       string
}

var nerdIcons = IconSet{
	Arrow:      "\U000F0054", // md-arrow_right (U+F0054)
	Bullet:     "\uF444",     // oct-dot_fill (U+F444)
	Tab:        "\U000F04E9", // md-tab (U+F04E9)
	Back:       "\U000F004D", // md-arrow_left (U+F004D)
	Navigation: "\U000F0E79", // md-arrow_up_down_bold (U+F0E79)
	View:       "\U000F056E", // md-view_dashboard (U+F056E)
	System:     "\uF013",     // fa-gear (U+F013)
	Sparkle:    "\uF51C",     // oct-sparkle_fill (U+F51C)
	Save:       "\U000F0249", // md-floppy (U+F0249)
}

var asciiIcons = IconSet{
	Arrow:      "→",
	Bullet:     "•",
	Tab:        "▪",
	Back:       "←",
	Navigation: "↕",
	View:       "▣",
	System:     "⚙",
	Sparkle:    "*",
	Save:       "[S]",
}

// Icons is the active icon set, chosen once at startup.
var Icons = selectIcons()

// IconsFor returns the icon set named by mode ("ascii" or anything else for
// Nerd Font glyphs).
func IconsFor(mode string) IconSet {
	if mode == "ascii" {
		return asciiIcons
	}
	return nerdIcons
}

func selectIcons() IconSet {
	// Environment wins over the config file
	if mode := os.Getenv("NAVCOORD_ICONS"); mode != "" {
		return IconsFor(mode)
	}
	cfg, err := config.LoadDefault()
	if err == nil && cfg.TUI != nil {
		return IconsFor(cfg.TUI.Icons)
	}
	return nerdIcons
}
