package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/vector-risk/internal/core"
)

// styleCache maps a 24-bit color to its lipgloss style.
// Only touched from the Bubble Tea update loop.
var styleCache = map[string]lipgloss.Style{}

// styleFor returns the foreground style for a cell color.
func styleFor(c core.RGBA) lipgloss.Style {
	hex := hexColor(c)
	if s, ok := styleCache[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	styleCache[hex] = s
	return s
}

// hexColor formats the opaque part of a color as #rrggbb.
func hexColor(c core.RGBA) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Blank cells are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color
			blank := cell.Rune == ' '

			// Collect consecutive cells with same color, or consecutive blanks
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if blank != (cell.Rune == ' ') || (!blank && cell.Color != startColor) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
