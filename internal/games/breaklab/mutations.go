package breaklab

import (
	"time"

	"github.com/vovakirdan/breakout-lab/internal/config"
	"github.com/vovakirdan/breakout-lab/internal/core"
)

// Clock supplies wall-clock time to the mutation scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SchedulerState is the lab-mode scheduler phase.
type SchedulerState uint8

const (
	SchedulerIdle SchedulerState = iota
	SchedulerCounting
)

func (s SchedulerState) String() string {
	if s == SchedulerCounting {
		return "counting"
	}
	return "idle"
}

// Indicator is the on-screen banner of the last mutation.
type Indicator struct {
	Mutation Mutation
	Label    string
	Color    core.Color
	Until    time.Time
}

// MutationScheduler fires a random mutation at random wall-clock intervals
// while lab mode is on. It only decides when and what; the engine applies
// the gameplay effect.
type MutationScheduler struct {
	cfg   config.LabConfig
	clock Clock
	rng   *SimpleRNG

	state  SchedulerState
	nextAt time.Time

	inverted    bool
	invertUntil time.Time

	indicator   *Indicator
	glitchUntil time.Time
	glitch      bool

	countdown        *time.Duration
	countdownChanged bool
}

// NewMutationScheduler returns an idle scheduler.
func NewMutationScheduler(cfg config.LabConfig, clock Clock, rng *SimpleRNG) *MutationScheduler {
	if clock == nil {
		clock = systemClock{}
	}
	return &MutationScheduler{cfg: cfg, clock: clock, rng: rng}
}

// State returns the current phase.
func (s *MutationScheduler) State() SchedulerState { return s.state }

// NextAt returns when the next mutation fires. Zero when idle.
func (s *MutationScheduler) NextAt() time.Time { return s.nextAt }

// Inverted reports whether the invert mutation is in effect.
func (s *MutationScheduler) Inverted() bool { return s.inverted }

// setEnabled moves between idle and counting. Enabling an already counting
// scheduler keeps its deadline. The countdown is cleared by the next refresh.
func (s *MutationScheduler) setEnabled(on bool, now time.Time) {
	switch {
	case on && s.state == SchedulerIdle:
		s.state = SchedulerCounting
		s.arm(now)
	case !on && s.state == SchedulerCounting:
		s.state = SchedulerIdle
		s.nextAt = time.Time{}
	}
}

// arm draws a fresh interval in [min, max).
func (s *MutationScheduler) arm(now time.Time) {
	span := s.cfg.MaxIntervalMs - s.cfg.MinIntervalMs
	ms := s.cfg.MinIntervalMs + s.rng.Intn(span)
	s.nextAt = now.Add(time.Duration(ms) * time.Millisecond)
}

// due returns the mutation to apply at now, if the countdown expired,
// and re-arms the countdown.
func (s *MutationScheduler) due(now time.Time) (Mutation, bool) {
	if s.state != SchedulerCounting || now.Before(s.nextAt) {
		return 0, false
	}
	m := Mutation(s.rng.Intn(int(mutationCount)))
	s.arm(now)
	return m, true
}

// revertDue reports whether an active inversion just ran out.
func (s *MutationScheduler) revertDue(now time.Time) bool {
	if !s.inverted || now.Before(s.invertUntil) {
		return false
	}
	s.inverted = false
	s.invertUntil = time.Time{}
	return true
}

// invert records an inversion until now+duration. It returns false when the
// paddle was already inverted, in which case only the deadline moves.
func (s *MutationScheduler) invert(now time.Time) bool {
	already := s.inverted
	s.inverted = true
	s.invertUntil = now.Add(s.cfg.InvertDuration())
	return !already
}

// announce raises the indicator and the glitch flag for m.
func (s *MutationScheduler) announce(m Mutation, now time.Time) {
	spec := m.Spec()
	s.indicator = &Indicator{Mutation: m, Label: spec.Label, Color: spec.Color, Until: now.Add(spec.Display)}
	s.glitchUntil = now.Add(s.cfg.GlitchDuration())
}

// refresh expires presentational flags and updates the throttled countdown.
func (s *MutationScheduler) refresh(now time.Time, showCountdown bool) {
	if s.indicator != nil && !now.Before(s.indicator.Until) {
		s.indicator = nil
	}
	s.glitch = now.Before(s.glitchUntil)

	s.countdownChanged = false
	if !showCountdown || s.state != SchedulerCounting {
		s.clearCountdown()
		return
	}
	left := max(s.nextAt.Sub(now), 0).Round(100 * time.Millisecond)
	if s.countdown == nil || *s.countdown != left {
		s.countdown = &left
		s.countdownChanged = true
	}
}

func (s *MutationScheduler) clearCountdown() {
	if s.countdown != nil {
		s.countdownChanged = true
	}
	s.countdown = nil
}

// stop returns to idle and forgets every deadline.
func (s *MutationScheduler) stop() {
	s.state = SchedulerIdle
	s.nextAt = time.Time{}
	s.inverted = false
	s.invertUntil = time.Time{}
	s.indicator = nil
	s.glitch = false
	s.glitchUntil = time.Time{}
	s.countdown = nil
	s.countdownChanged = false
}

// applyMutation runs the gameplay effect of m and announces it.
func (e *Engine) applyMutation(m Mutation, now time.Time) {
	switch m {
	case MutationInvert:
		if e.lab.invert(now) {
			e.store.Paddle.Speed = -e.store.Paddle.Speed
		}

	case MutationGravity:
		for i := range e.store.Balls {
			e.store.Balls[i].DY += e.cfg.Lab.GravityIncrement
		}

	case MutationRegen:
		for i := range e.store.Bricks {
			b := &e.store.Bricks[i]
			if !b.Live() && e.labRNG.Float64() < e.cfg.Lab.RegenChance {
				b.HitsLeft = 1
			}
		}
	}
	e.lab.announce(m, now)
	e.emit(m.Spec().Cue)
}
