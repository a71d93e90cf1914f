// Package tui holds terminal setup shared by navcoord programs. The host model
// lives in tui/navtea; styling and keys live in tui/theme and tui/keymap.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a color profile when the environment asks for one.
// CLICOLOR_FORCE=1 or COLORTERM=truecolor select true color and NO_COLOR
// selects ASCII. Otherwise lipgloss keeps the detected profile. Call it once
// before starting the program.
func InitializeTUI() {
	if profile, ok := forcedProfile(); ok {
		lipgloss.SetColorProfile(profile)
	}
}

func forcedProfile() (termenv.Profile, bool) {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii, true
	case os.Getenv("CLICOLOR_FORCE") == "1", os.Getenv("COLORTERM") == "truecolor":
		return termenv.TrueColor, true
	}
	return termenv.Ascii, false
}
