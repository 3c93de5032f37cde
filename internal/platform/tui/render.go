package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// defaultANSI maps palette colors to their default ANSI 256-color codes.
var defaultANSI = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorGray:    "245",
}

// StyleTable maps palette colors to lipgloss styles.
type StyleTable map[core.Color]lipgloss.Style

// NewStyleTable builds the style table from the default palette with any
// theme overrides from the host configuration applied on top.
func NewStyleTable(theme map[string]string) StyleTable {
	table := make(StyleTable, len(defaultANSI)+1)
	for _, c := range core.Palette() {
		code := defaultANSI[c]
		if override, ok := theme[c.Name()]; ok && override != "" {
			code = override
		}
		if code == "" {
			table[c] = lipgloss.NewStyle()
			continue
		}
		table[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return table
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of adjacent cells with the same color are batched to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen, styles StyleTable) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
