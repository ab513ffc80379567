package breaklab

import (
	"testing"
	"time"

	"github.com/vovakirdan/breakout-lab/internal/config"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Cue(c Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T, cfg config.BreakLabConfig) (*Engine, *fakeClock, *cueRecorder) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	rec := &cueRecorder{}
	e := NewEngine(cfg, Options{Seed: 42, TickRate: 60, Clock: clock, Cues: rec})
	e.Start()
	return e, clock, rec
}

// parkBall leaves a single ball bouncing between the side walls, clear of
// the bricks and the paddle, so timed effects can run without losing lives.
func parkBall(e *Engine) {
	e.store.Balls = []Ball{{X: 250, Y: 400, DX: 5, DY: 0, Radius: 10, Speed: 5}}
}

func tickN(e *Engine, n int, opts FrameOptions) {
	for range n {
		e.Tick(opts)
	}
}
