package breaklab

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/breakout-lab/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	HUDSeparator = '─'
)

// damageGlyphs shade a brick by hits left: index 0 is one hit left.
var damageGlyphs = []rune{'░', '▒', '▓', '█'}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderBricks(dst)
	g.renderPowerUps(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score and lives on row 0 and the lab line on row 1.
func (g *Game) renderHUD(dst *core.Screen) {
	s := &g.snap

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %05d", s.Score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, hearts(s.Lives, g.cfg.Gameplay.Lives), core.ColorBrightRed)

	toggles := fmt.Sprintf("LAB:%s TIMER:%s", onOff(g.labMode), onOff(g.showCountdown))
	labColor := core.ColorGray
	if g.labMode {
		labColor = core.ColorBrightMagenta
	}
	dst.DrawTextColored(dst.Width()-core.TextWidth(toggles)-1, 0, toggles, labColor)

	switch {
	case s.Indicator != nil:
		dst.DrawTextCenteredColored(1, "MUTATION ACTIVE: "+s.Indicator.Label, s.Indicator.Color)
	case s.Countdown != nil:
		dst.DrawTextCenteredColored(1, fmt.Sprintf("NEXT MUTATION IN %.1fs", s.Countdown.Seconds()), core.ColorMagenta)
	default:
		dst.DrawHLine(0, 1, dst.Width(), HUDSeparator)
		if effects := g.effectsText(); effects != "" {
			dst.DrawTextColored(1, 1, effects, core.ColorYellow)
		}
	}
}

func (g *Game) effectsText() string {
	var parts []string
	if g.snap.ExpandActive {
		parts = append(parts, "EXPAND")
	}
	if g.snap.SlowActive {
		parts = append(parts, "SLOW")
	}
	if g.snap.Inverted {
		parts = append(parts, "INVERTED")
	}
	return strings.Join(parts, " ")
}

func hearts(lives, total int) string {
	total = max(total, lives)
	return strings.Repeat(string(HeartFull), lives) + strings.Repeat(string(HeartEmpty), total-lives)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// renderField draws the playfield border. It flickers while a glitch is up.
func (g *Game) renderField(dst *core.Screen) {
	c := core.ColorDarkGray
	if g.snap.Glitch {
		if g.snap.Tick%4 < 2 {
			c = core.ColorBrightMagenta
		} else {
			c = core.ColorBrightCyan
		}
	}
	dst.DrawBoxColored(g.field, c)
}

// renderBricks fills each live brick, shaded by remaining hits.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.snap.Bricks {
		b := &g.snap.Bricks[i]
		if !b.Live() {
			continue
		}
		spec := b.Type.Spec()
		glyph := damageGlyphs[min(b.HitsLeft, len(damageGlyphs))-1]
		if b.Type == BrickPower {
			glyph = '◆'
		}
		r := g.view.CellRect(b.X, b.Y, b.W, b.H)
		// Leave a gap column so neighbours stay distinguishable.
		if r.W > 2 {
			r.W--
		}
		dst.DrawRectColored(r, glyph, spec.Color)

		if label := brickLabel(b); core.TextWidth(label) <= r.W {
			x := r.X + (r.W-core.TextWidth(label))/2
			dst.DrawTextColored(x, r.Y+r.H/2, label, core.ColorBrightWhite)
		}
	}
}

// brickLabel is the type label, with hits left for multi-hit types.
func brickLabel(b *Brick) string {
	spec := b.Type.Spec()
	if spec.Hits > 1 {
		return fmt.Sprintf("%s:%d", spec.Label, b.HitsLeft)
	}
	return spec.Label
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	for i := range g.snap.PowerUps {
		p := &g.snap.PowerUps[i]
		spec := p.Type.Spec()
		x, y := g.view.CellX(p.X), g.view.CellY(p.Y+p.Size/2)
		if g.view.Cells.Contains(x, y) {
			dst.SetColored(x, y, spec.Glyph, spec.Color)
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	p := &g.snap.Paddle
	r := g.view.CellRect(p.X, p.Y, p.Width, p.Height)
	c := core.ColorBrightWhite
	if g.snap.Inverted {
		c = core.ColorBrightYellow
	}
	dst.DrawHLineColored(r.X, r.Y, r.W, PaddleChar, c)
}

func (g *Game) renderBalls(dst *core.Screen) {
	for i := range g.snap.Balls {
		b := &g.snap.Balls[i]
		x, y := g.view.CellX(b.X), g.view.CellY(b.Y)
		if g.view.Cells.Contains(x, y) {
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
		}
	}
}

// renderOverlay draws match state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := &g.snap
	switch {
	case s.GameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("FINAL SCORE %d  |  R to restart", s.Score), core.ColorBrightRed)
	case s.Cleared:
		g.drawCenteredBox(dst, "BOARD CLEARED", fmt.Sprintf("FINAL SCORE %d  |  R to restart", s.Score), core.ColorBrightGreen)
	case s.LifeLostFlash:
		dst.DrawTextCenteredColored(g.field.Y+g.field.H/2, " SPECIMEN LOST ", core.ColorBrightRed)
	case s.Tick == 0:
		dst.DrawTextCentered(g.field.Bottom()-1, " ←/→ or mouse to move · L lab · T timer ")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(core.TextWidth(title), core.TextWidth(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	dst.DrawTextCenteredColored(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
