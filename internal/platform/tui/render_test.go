package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/breakout-lab/internal/core"
)

func asciiPainter() *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPainter(r)
}

func TestPainterRendersRows(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPink)
	s.DrawTextColored(2, 0, "cd", core.ColorSteel)
	s.DrawText(0, 1, "wxyz")

	got := asciiPainter().Render(s)
	if got != "abcd\nwxyz" {
		t.Errorf("Render = %q, want %q", got, "abcd\nwxyz")
	}
}

func TestPainterCoversPalette(t *testing.T) {
	p := asciiPainter()
	for c := core.ColorRed; c <= core.ColorSteel; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawTextColored(0, 0, "SCORE", core.ColorBrightWhite)

	if got := RenderScreen(s); !strings.Contains(stripANSI(got), "SCORE") {
		t.Errorf("RenderScreen lost text: %q", got)
	}
}

// stripANSI drops CSI sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
