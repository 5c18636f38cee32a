package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringtrap/internal/core"
)

// Palette colors shared by the board, menu and history screens.
const (
	colorRing    = lipgloss.Color("#2e7bff")
	colorInner   = lipgloss.Color("#5a8fd6")
	colorBall    = lipgloss.Color("#ffd166")
	colorEscaped = lipgloss.Color("#9bffb2")
	colorAccent  = lipgloss.Color("#ff8c42")
	colorHUD     = lipgloss.Color("252")
	colorDim     = lipgloss.Color("241")
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRing:      lipgloss.NewStyle().Foreground(colorRing).Bold(true),
	core.ColorRingInner: lipgloss.NewStyle().Foreground(colorInner),
	core.ColorBall:      lipgloss.NewStyle().Foreground(colorBall).Bold(true),
	core.ColorEscaped:   lipgloss.NewStyle().Foreground(colorEscaped).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(colorHUD),
	core.ColorAccent:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(colorDim),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
