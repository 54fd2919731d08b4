package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quantum-othello/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorFrame:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlackPiece: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorWhitePiece: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorCursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorAccent:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorSuccess:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
