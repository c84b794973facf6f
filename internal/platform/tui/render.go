package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// Renderer turns a Screen into a styled string for one theme.
type Renderer struct {
	styles map[int]lipgloss.Style
}

// NewRenderer prepares the cell styles for a theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{styles: theme.cellStyles()}
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (r *Renderer) Render(s *core.Screen) string {
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

			style, ok := r.styles[int(startColor)]
			if !ok {
				style = r.styles[int(core.ColorDefault)]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default theme.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(DefaultTheme()).Render(s)
}
