package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navcoord/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	helpMaxWidth = 72
	helpMinWidth = 40
)

var exampleMarkers = []string{"\nExamples:\n", "\nExample:\n", "\nEXAMPLES:\n"}

// helpWidth is the usable help width: the terminal width clamped to
// [helpMinWidth, helpMaxWidth], or helpMaxWidth when stdout is not a terminal.
func helpWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return helpMaxWidth
	}
	return min(max(width, helpMinWidth), helpMaxWidth)
}

// wrapText greedily wraps each paragraph of text to width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = helpMaxWidth
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(paragraph) <= width || len(words) == 0 {
			lines = append(lines, paragraph)
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				lines = append(lines, current)
				current = word
				continue
			}
			current += " " + word
		}
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

// parseDescription splits a Long description at its examples marker.
func parseDescription(long string) (description, examples string) {
	for _, marker := range exampleMarkers {
		if before, after, ok := strings.Cut(long, marker); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return long, ""
}

// SetStyledHelp installs the themed help function on cmd.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		newHelpWriter(c.OutOrStdout(), theme.DefaultTheme, helpWidth()).command(c)
	})
}

// ApplyStyledHelpRecursive installs styled help on cmd and every subcommand.
// Call it after the command tree is complete.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	SetStyledHelp(cmd)
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

type helpWriter struct {
	w       io.Writer
	t       *theme.Theme
	width   int
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	root    lipgloss.Style
}

func newHelpWriter(w io.Writer, t *theme.Theme, width int) *helpWriter {
	return &helpWriter{
		w:       w,
		t:       t,
		width:   width - 2,
		heading: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		name:    lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
		root:    lipgloss.NewStyle().Foreground(t.Colors.Cyan),
	}
}

func (h *helpWriter) line(format string, args ...any) {
	fmt.Fprintf(h.w, " "+format+"\n", args...)
}

func (h *helpWriter) section(title string) {
	fmt.Fprintln(h.w)
	h.line("%s", h.heading.Render(title))
}

func (h *helpWriter) paragraph(text string, style lipgloss.Style) {
	for _, l := range strings.Split(wrapText(text, h.width), "\n") {
		h.line("%s", style.Render(l))
	}
}

func (h *helpWriter) command(cmd *cobra.Command) {
	h.line("%s", h.t.Title.Render(strings.ToUpper(cmd.CommandPath())))

	description, examples := parseDescription(cmd.Long)
	if cmd.Short != "" {
		h.paragraph(cmd.Short, lipgloss.NewStyle().Italic(true))
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(h.w)
		h.paragraph(description, lipgloss.NewStyle())
	}

	h.usage(cmd)
	h.subcommands(cmd)
	h.flags("FLAGS", cmd.LocalFlags())
	if cmd.HasParent() {
		h.flags("GLOBAL FLAGS", cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		examples = cmd.Example
	}
	h.examples(cmd.Root().Name(), examples)

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(h.w)
		h.line("Use \"%s [command] --help\" for more information.", cmd.CommandPath())
	}
}

func (h *helpWriter) usage(cmd *cobra.Command) {
	if !cmd.Runnable() && !cmd.HasSubCommands() {
		return
	}
	h.section("USAGE")
	if cmd.Runnable() {
		h.line("%s", cmd.UseLine())
	}
	if cmd.HasSubCommands() {
		h.line("%s [command]", cmd.CommandPath())
	}
}

func (h *helpWriter) subcommands(cmd *cobra.Command) {
	var subs []*cobra.Command
	pad := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			subs = append(subs, sub)
			pad = max(pad, len(sub.Name()))
		}
	}
	if len(subs) == 0 {
		return
	}
	h.section("COMMANDS")
	for _, sub := range subs {
		h.line("%s%s  %s", h.name.Render(sub.Name()), strings.Repeat(" ", pad-len(sub.Name())), sub.Short)
	}
}

func (h *helpWriter) flags(title string, set *pflag.FlagSet) {
	var visible []*pflag.Flag
	pad := 0
	set.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		visible = append(visible, f)
		pad = max(pad, len(formatFlagName(f)))
	})
	if len(visible) == 0 {
		return
	}

	h.section(title)
	for _, f := range visible {
		name := formatFlagName(f)
		usage := f.Usage
		switch f.DefValue {
		case "", "false", "[]", "0":
		default:
			usage += h.t.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		h.line("%s%s  %s", h.flag.Render(name), strings.Repeat(" ", pad-len(name)), usage)
	}
}

// examples prints comment lines muted and colors the program name, the
// subcommand and flags of command lines.
func (h *helpWriter) examples(rootName, text string) {
	if text == "" {
		return
	}
	h.section("EXAMPLES")
	for _, raw := range strings.Split(text, "\n") {
		l := strings.TrimSpace(raw)
		switch {
		case l == "":
			fmt.Fprintln(h.w)
		case strings.HasPrefix(l, "#"):
			h.line("%s", h.t.Muted.Render(l))
		default:
			h.line("  %s", h.exampleLine(rootName, l))
		}
	}
}

func (h *helpWriter) exampleLine(rootName, l string) string {
	fields := strings.Fields(l)
	for i, f := range fields {
		switch {
		case i == 0 && f == rootName:
			fields[i] = h.root.Render(f)
		case strings.HasPrefix(f, "-"):
			fields[i] = h.flag.Render(f)
		case i == 1:
			fields[i] = h.name.Render(f)
		}
	}
	return strings.Join(fields, " ")
}

// formatFlagName renders "-v, --verbose", or "    --json" when the flag has
// no shorthand so long names line up.
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}
