package breaklab

import (
	"math"
	"time"
)

// Snapshot is a read-only copy of everything the presentation layer needs.
// Slices are copies; mutating them does not affect the engine.
type Snapshot struct {
	Tick     uint64
	Paddle   Paddle
	Balls    []Ball
	Bricks   []Brick
	PowerUps []PowerUp

	Score int
	Lives int
	Phase Phase

	GameOver      bool
	Cleared       bool
	Paused        bool
	LifeLostFlash bool
	Glitch        bool

	ExpandActive bool
	SlowActive   bool
	Inverted     bool

	LabMode  bool
	LabState SchedulerState
	// Indicator is the active mutation banner, nil when none is showing.
	Indicator *Indicator
	// Countdown is the time to the next mutation rounded to 0.1s, nil when
	// hidden. CountdownChanged is set on ticks where it changed.
	Countdown        *time.Duration
	CountdownChanged bool

	RNGState uint64
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     e.tick,
		Paddle:   e.store.Paddle,
		Balls:    append([]Ball(nil), e.store.Balls...),
		Bricks:   append([]Brick(nil), e.store.Bricks...),
		PowerUps: append([]PowerUp(nil), e.store.PowerUps...),

		Score: e.match.Score,
		Lives: e.match.Lives,
		Phase: e.match.Phase,

		GameOver:      e.match.Phase == PhaseGameOver,
		Cleared:       e.match.Phase == PhaseCleared,
		Paused:        e.match.Paused(),
		LifeLostFlash: e.match.LifeLostFlash,
		Glitch:        e.lab.glitch,

		ExpandActive: e.expirations.Active(EffectExpand),
		SlowActive:   e.expirations.Active(EffectSlow),
		Inverted:     e.lab.Inverted(),

		LabMode:          e.labMode,
		LabState:         e.lab.state,
		CountdownChanged: e.lab.countdownChanged,

		RNGState: e.rng.State(),
	}
	if e.lab.indicator != nil {
		ind := *e.lab.indicator
		snap.Indicator = &ind
	}
	if e.lab.countdown != nil {
		cd := *e.lab.countdown
		snap.Countdown = &cd
	}
	return snap
}

// LiveBricks counts bricks with hits left.
func (s *Snapshot) LiveBricks() int {
	n := 0
	for i := range s.Bricks {
		if s.Bricks[i].Live() {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the gameplay state for determinism testing.
// Presentational fields are left out.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }

	mixF(s.Paddle.X)
	mixF(s.Paddle.Width)
	mixF(s.Paddle.Speed)
	mix(uint64(s.Score)) //#nosec G115 -- hash computation
	mix(uint64(s.Lives)) //#nosec G115 -- hash computation
	mix(uint64(s.Phase))

	for _, b := range s.Balls {
		mixF(b.X)
		mixF(b.Y)
		mixF(b.DX)
		mixF(b.DY)
		mixF(b.Speed)
	}
	for _, br := range s.Bricks {
		mix(uint64(br.Type))
		mix(uint64(br.HitsLeft)) //#nosec G115 -- hash computation
	}
	for _, p := range s.PowerUps {
		mix(uint64(p.Type))
		mixF(p.X)
		mixF(p.Y)
	}

	mix(s.RNGState)
	return h
}
