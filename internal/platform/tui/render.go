package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

// ScreenRenderer turns Screen buffers into styled strings for one output.
// SSH sessions each get their own so color detection follows the client.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
	faint  lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// process default.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		styles: make(map[core.Color]lipgloss.Style),
		plain:  r.NewStyle(),
		faint:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for _, c := range core.Colors() {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return sr
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
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

			style, ok := sr.styles[startColor]
			if !ok {
				style = sr.plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Faint renders secondary text such as the help bar.
func (sr *ScreenRenderer) Faint(text string) string {
	return sr.faint.Render(text)
}
