// Package breaklab implements Breakout Lab: a brick breaker whose lab mode
// mutates the rules while you play.
//
// Engine is the simulation. It is driven by one goroutine calling Tick at a
// fixed rate; SetDirection and SetPointerX may be called from any goroutine
// and only record paddle intent, which the next Tick consumes. Gameplay
// timers count ticks, the mutation scheduler reads an injectable Clock.
package breaklab

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/breakout-lab/internal/config"
)

// Options configures an Engine.
type Options struct {
	Seed     int64
	TickRate int     // Ticks per second, used to convert effect durations
	Clock    Clock   // Defaults to the system clock
	Cues     CueSink // May be nil
}

// FrameOptions are the per-tick toggles, passed on every Tick.
type FrameOptions struct {
	LabMode       bool
	ShowCountdown bool
}

// Engine runs one Breakout Lab match.
type Engine struct {
	cfg      config.BreakLabConfig
	tickRate int
	clock    Clock
	cues     CueSink

	rng    *SimpleRNG // bricks, serves, power-up types
	labRNG *SimpleRNG // mutation timing, choice, regen rolls

	store       Store
	match       Match
	expirations Expirations
	lab         *MutationScheduler

	tick     uint64
	labMode  bool
	started  bool
	tornDown bool

	dir        atomic.Int32
	pointerX   atomic.Uint64 // math.Float64bits of the target
	pointerSet atomic.Bool
}

// NewEngine builds an engine with a fresh board. Call Start before ticking.
func NewEngine(cfg config.BreakLabConfig, opts Options) *Engine {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	e := &Engine{
		cfg:      cfg,
		tickRate: opts.TickRate,
		clock:    opts.Clock,
		cues:     opts.Cues,
		rng:      NewSimpleRNG(opts.Seed),
		labRNG:   NewSimpleRNG(opts.Seed ^ 0x5eed1ab),
	}
	e.lab = NewMutationScheduler(cfg.Lab, e.clock, e.labRNG)
	e.init()
	return e
}

func (e *Engine) init() {
	e.store = newStore(e.cfg, e.rng)
	e.match = newMatch(e.cfg.Gameplay.Lives)
	e.expirations.Clear()
	e.lab.stop()
	e.tick = 0
	e.labMode = false
	e.dir.Store(0)
	e.pointerSet.Store(false)
}

// Start begins the match and emits the start cue. Ticks before Start are
// no-ops.
func (e *Engine) Start() {
	if e.tornDown || e.started {
		return
	}
	e.started = true
	e.emit(CueStart)
}

// Reset rebuilds the board, lives, score, timers and scheduler. The engine
// must be started again.
func (e *Engine) Reset() {
	if e.tornDown {
		return
	}
	e.started = false
	e.init()
}

// Teardown cancels every timer, idles the scheduler and detaches the cue
// sink. Afterwards the engine never changes or emits again. Idempotent.
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.tornDown = true
	e.expirations.Clear()
	e.lab.stop()
	e.cues = nil
}

// TornDown reports whether Teardown has been called.
func (e *Engine) TornDown() bool { return e.tornDown }

// SetDirection records the held paddle direction. Values are clamped to
// -1, 0 or 1.
func (e *Engine) SetDirection(dir int) {
	e.dir.Store(int32(max(-1, min(dir, 1)))) //#nosec G115 -- clamped to [-1, 1]
}

// SetPointerX records an absolute target for the paddle center. Out of range
// targets are clamped when applied.
func (e *Engine) SetPointerX(x float64) {
	if math.IsNaN(x) {
		return
	}
	e.pointerX.Store(math.Float64bits(x))
	e.pointerSet.Store(true)
}

func (e *Engine) direction() int {
	return int(e.dir.Load())
}

func (e *Engine) takePointer() (float64, bool) {
	if !e.pointerSet.Swap(false) {
		return 0, false
	}
	return math.Float64frombits(e.pointerX.Load()), true
}

// Tick advances the match by one step. It returns false without touching
// anything when the engine is not started, halted or torn down.
//
// Order: due expirations, physics (skipped while paused), then the
// mutation scheduler.
func (e *Engine) Tick(opts FrameOptions) bool {
	if e.tornDown || !e.started || e.match.Halted() {
		return false
	}
	e.tick++

	for _, tag := range e.expirations.Due(e.tick) {
		e.expire(tag)
	}

	if !e.match.Paused() {
		e.stepPhysics()
	}
	if e.match.Halted() {
		return true
	}

	e.stepLab(opts)
	return true
}

// stepLab runs the wall-clock side: lab toggle, invert revert, mutation
// firing and presentational flags.
func (e *Engine) stepLab(opts FrameOptions) {
	now := e.clock.Now()
	e.labMode = opts.LabMode
	e.lab.setEnabled(opts.LabMode, now)

	if e.lab.revertDue(now) {
		e.store.Paddle.Speed = math.Abs(e.store.Paddle.Speed)
	}
	if m, ok := e.lab.due(now); ok {
		e.applyMutation(m, now)
	}
	e.lab.refresh(now, opts.ShowCountdown)
}

// ticksFor converts a duration to a tick count, rounding up.
func (e *Engine) ticksFor(d time.Duration) uint64 {
	ms := d.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return uint64((ms*int64(e.tickRate) + 999) / 1000) //#nosec G115 -- positive
}

func (e *Engine) emit(c Cue) {
	if e.tornDown || e.cues == nil {
		return
	}
	e.cues.Cue(c)
}
