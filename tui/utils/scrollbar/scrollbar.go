// Package scrollbar draws a one-column scrollbar beside a viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	thumbChar = "█"
	trackChar = "░"
)

// Track returns one cell per row for a bar of the given height. total is the
// content line count, visible the rows shown and percent the scroll position
// in [0, 1]. Short content yields a blank track.
func Track(total, visible, height int, percent float64) []string {
	if height <= 0 {
		return nil
	}
	cells := make([]string, height)
	if total <= visible {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumb := max(1, height*visible/total)
	percent = min(max(percent, 0), 1)
	start := int(float64(height-thumb)*percent + 0.5)

	for i := range cells {
		if i >= start && i < start+thumb {
			cells[i] = thumbChar
		} else {
			cells[i] = trackChar
		}
	}
	return cells
}

// Overlay returns the viewport content with a styled scrollbar appended to
// every line.
func Overlay(vp *viewport.Model, style lipgloss.Style) string {
	lines := strings.Split(vp.View(), "\n")
	bar := Track(vp.TotalLineCount(), vp.Height, len(lines), vp.ScrollPercent())
	for i := range lines {
		lines[i] += style.Render(bar[i])
	}
	return strings.Join(lines, "\n")
}
