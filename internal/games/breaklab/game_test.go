package breaklab

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/breakout-lab/internal/core"
	"github.com/vovakirdan/breakout-lab/internal/registry"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := NewGame()
	g.SetClock(&fakeClock{now: time.Unix(1_700_000_000, 0)})
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 12345})
	t.Cleanup(g.Close)
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("breaklab should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if g.Title() != "Breakout Lab" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestGameKeyHoldMovesPaddle(t *testing.T) {
	g := newTestGame(t, 80, 30)
	parkBall(g.engine)
	start := g.Snapshot().Paddle.X

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if got := g.Snapshot().Paddle.X; got != start+7 {
		t.Fatalf("paddle x = %g, want %g", got, start+7)
	}

	// Without repeats the hold runs out.
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	x := g.Snapshot().Paddle.X
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().Paddle.X; got != x {
		t.Errorf("paddle kept moving after the hold expired: %g -> %g", x, got)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	stop := core.NewInputFrame()
	stop.Set(core.ActionStop)
	g.Step(stop)
	x = g.Snapshot().Paddle.X
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().Paddle.X; got != x {
		t.Errorf("stop should release the hold: %g -> %g", x, got)
	}
}

func TestGamePointerCentersPaddle(t *testing.T) {
	g := newTestGame(t, 80, 30)
	parkBall(g.engine)

	col := g.view.Cells.X + g.view.Cells.W/4
	in := core.NewInputFrame()
	in.SetPointer(col)
	g.Step(in)

	p := g.Snapshot().Paddle
	want := g.view.CanvasX(col)
	if center := p.X + p.Width/2; center != want {
		t.Errorf("paddle center = %g, want %g", center, want)
	}
}

func TestGameToggles(t *testing.T) {
	g := newTestGame(t, 80, 30)
	parkBall(g.engine)

	in := core.NewInputFrame()
	in.Set(core.ActionLab)
	in.Set(core.ActionTimer)
	res := g.Step(in)

	if !res.State.LabMode {
		t.Error("lab toggle should turn lab mode on")
	}
	snap := g.Snapshot()
	if snap.LabState != SchedulerCounting || snap.Countdown == nil {
		t.Error("lab mode with timer should expose a countdown")
	}

	g.Step(in)
	if g.State().LabMode || g.Snapshot().Countdown != nil {
		t.Error("second toggle should turn both off")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 80, 30)
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "SCORE 00000") || !strings.Contains(row, "♥♥♥") {
		t.Errorf("HUD row = %q", row)
	}
	if !strings.Contains(screen.Row(0), "LAB:OFF") {
		t.Error("HUD should show the lab toggle")
	}
	out := screen.String()
	if !strings.ContainsRune(out, BallChar) || !strings.ContainsRune(out, PaddleChar) {
		t.Error("ball and paddle should be drawn")
	}
}

func setAllBricks(g *Game, t BrickType, hits int) {
	for i := range g.engine.store.Bricks {
		g.engine.store.Bricks[i].Type = t
		g.engine.store.Bricks[i].HitsLeft = hits
	}
	g.snap = g.engine.Snapshot()
}

func TestGameRenderBrickLabels(t *testing.T) {
	g := newTestGame(t, 80, 30)
	setAllBricks(g, BrickSteel, 2)
	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "STL:2") {
		t.Errorf("damaged steel bricks should show hits left:\n%s", out)
	}

	setAllBricks(g, BrickNormal, 1)
	screen = core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "STD") || strings.Contains(out, "STD:") {
		t.Errorf("single-hit bricks should show a bare label:\n%s", out)
	}
}

func TestGameRenderBrickLabelsNeedRoom(t *testing.T) {
	g := newTestGame(t, minScreenW, minScreenH)
	setAllBricks(g, BrickStrong, 2)
	screen := core.NewScreen(minScreenW, minScreenH)
	g.Render(screen)
	out := screen.String()
	if strings.Contains(out, "HRD") {
		t.Errorf("labels wider than the brick should be skipped:\n%s", out)
	}
	if !strings.ContainsRune(out, damageGlyphs[1]) {
		t.Error("bricks should still be drawn without a label")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 80, 30)
	g.engine.match.Lives = 1
	g.engine.store.Balls = []Ball{{X: 50, Y: 700, DY: 5, Radius: 10, Speed: 5}}
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || res.State.Cleared {
		t.Fatalf("state = %+v, want game over", res.State)
	}
	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "FINAL SCORE 0") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if g.Step(core.NewInputFrame()).Advanced {
		t.Error("halted game should not advance")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, 20, 10)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 30)
	screen.Resize(80, 30)
	g.Render(screen)
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("resize should restore the board")
	}
}

func TestGameCues(t *testing.T) {
	rec := &cueRecorder{}
	g := NewGame()
	g.SetCueSink(rec)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 3})
	g.Close()
	g.Close()

	if rec.count(CueStart) != 1 {
		t.Errorf("start cues = %d, want 1", rec.count(CueStart))
	}
	if g.Step(core.NewInputFrame()).Advanced {
		t.Error("closed game should not advance")
	}
}
