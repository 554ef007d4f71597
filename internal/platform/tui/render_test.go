package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leap-arcade/internal/core"
)

func TestScreenRendererPlainOutput(t *testing.T) {
	screen := core.NewScreen(12, 3)
	screen.DrawText(0, 0, "Steps: 3/10")
	screen.SetColored(2, 1, '█', core.ColorGreen)
	screen.SetColored(3, 1, '█', core.ColorGreen)
	screen.SetColored(5, 1, '●', core.ColorYellow)
	screen.DrawTextColored(0, 2, "paused", core.ColorGray)

	// A renderer without a terminal has no color profile, so styling is a
	// no-op and runs must join back into the plain buffer.
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
	if got, want := sr.Render(screen), screen.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestScreenRendererUnknownColor(t *testing.T) {
	screen := core.NewScreen(3, 1)
	screen.SetColored(0, 0, 'x', core.Color(250))

	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
	if got := sr.Render(screen); got != "x  " {
		t.Errorf("Render() = %q", got)
	}
}
