package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navcoord/config"
)

const defaultThemeName = "kanagawa"

// palette holds one light/dark pair per color slot.
type palette struct {
	green, yellow, red, orange, cyan, blue, violet [2]string
	lightText, mutedText, border                   [2]string
	selectedBackground, subtleBackground           [2]string
}

// Kanagawa Wave (light) / Dragon (dark)
var kanagawa = palette{
	green:              [2]string{"#4E7C5A", "#98BB6C"},
	yellow:             [2]string{"#A68A64", "#FF9E3B"},
	red:                [2]string{"#C34043", "#FF5D62"},
	orange:             [2]string{"#CC6B4E", "#FFA066"},
	cyan:               [2]string{"#5B8BBE", "#7E9CD8"},
	blue:               [2]string{"#4F7CAC", "#7FB4CA"},
	violet:             [2]string{"#674D7A", "#957FB8"},
	lightText:          [2]string{"#2B2F42", "#DCD7BA"},
	mutedText:          [2]string{"#6C7086", "#727169"},
	border:             [2]string{"#B5BDC5", "#363646"},
	selectedBackground: [2]string{"#E2E6F3", "#223249"},
	subtleBackground:   [2]string{"#F7F7FB", "#1F1F28"},
}

var gruvbox = palette{
	green:              [2]string{"#98971A", "#B8BB26"},
	yellow:             [2]string{"#D79921", "#FABD2F"},
	red:                [2]string{"#CC241D", "#FB4934"},
	orange:             [2]string{"#D65D0E", "#FE8019"},
	cyan:               [2]string{"#458588", "#83A598"},
	blue:               [2]string{"#076678", "#458588"},
	violet:             [2]string{"#8F3F71", "#B16286"},
	lightText:          [2]string{"#3C3836", "#EBDBB2"},
	mutedText:          [2]string{"#928374", "#BDAE93"},
	border:             [2]string{"#D5C4A1", "#504945"},
	selectedBackground: [2]string{"#F2E5BC", "#32302F"},
	subtleBackground:   [2]string{"#FBF1C7", "#282828"},
}

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles shared by the TUI and CLI.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	Box         lipgloss.Style
	Placeholder lipgloss.Style
	Highlight   lipgloss.Style
	Accent      lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": func() Colors { return kanagawa.colors() },
	"gruvbox":  func() Colors { return gruvbox.colors() },
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is the theme selected by NAVCOORD_THEME or tui.theme.
var DefaultTheme = NewThemeWithName(getThemeName())

// NewThemeWithName constructs a theme from a palette name. Unknown names
// fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

// Names lists the registered palettes.
func Names() []string {
	return []string{"gruvbox", "kanagawa", "terminal"}
}

// RenderHeader renders a header with the default styling.
func RenderHeader(title string) string {
	return DefaultTheme.Header.Render(title)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText).
			Padding(0, 2).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Background(colors.SubtleBackground).
			Foreground(colors.MutedText).
			Padding(0, 2),

		StatusBar: lipgloss.NewStyle().
			Foreground(colors.MutedText),
	}
}

func (p palette) colors() Colors {
	c := func(pair [2]string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: pair[0], Dark: pair[1]}
	}
	return Colors{
		Green:              c(p.green),
		Yellow:             c(p.yellow),
		Red:                c(p.red),
		Orange:             c(p.orange),
		Cyan:               c(p.cyan),
		Blue:               c(p.blue),
		Violet:             c(p.violet),
		LightText:          c(p.lightText),
		MutedText:          c(p.mutedText),
		Border:             c(p.border),
		SelectedBackground: c(p.selectedBackground),
		SubtleBackground:   c(p.subtleBackground),
	}
}

// ANSI-friendly palette
func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Blue:               lipgloss.Color("4"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("NAVCOORD_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil || cfg.TUI == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.TUI.Theme); theme != "" {
		return theme
	}
	return defaultThemeName
}
