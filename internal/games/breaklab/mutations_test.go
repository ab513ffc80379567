package breaklab

import (
	"testing"
	"time"

	"github.com/vovakirdan/breakout-lab/internal/config"
)

func mutationCues(rec *cueRecorder) int {
	return rec.count(CueMutationInvert) + rec.count(CueMutationGravity) + rec.count(CueMutationRegen)
}

func TestLabModeSchedulesMutations(t *testing.T) {
	e, clock, rec := newTestEngine(t, config.DefaultBreakLabConfig())
	lab := FrameOptions{LabMode: true}

	for round := range 25 {
		parkBall(e)
		e.Tick(lab)
		if e.lab.State() != SchedulerCounting {
			t.Fatalf("round %d: scheduler = %s, want counting", round, e.lab.State())
		}
		wait := e.lab.NextAt().Sub(clock.Now())
		if wait < 4500*time.Millisecond || wait >= 7500*time.Millisecond {
			t.Fatalf("round %d: interval %v outside [4.5s, 7.5s)", round, wait)
		}

		before := mutationCues(rec)
		clock.Advance(wait - time.Millisecond)
		e.Tick(lab)
		if mutationCues(rec) != before {
			t.Fatalf("round %d: mutation fired early", round)
		}

		clock.Advance(time.Millisecond)
		e.Tick(lab)
		if mutationCues(rec) != before+1 {
			t.Fatalf("round %d: expected exactly one mutation at expiry", round)
		}
		snap := e.Snapshot()
		if snap.Indicator == nil || !snap.Glitch {
			t.Fatalf("round %d: mutation should raise indicator and glitch", round)
		}
		next := e.lab.NextAt().Sub(clock.Now())
		if next < 4500*time.Millisecond || next >= 7500*time.Millisecond {
			t.Fatalf("round %d: re-armed interval %v outside range", round, next)
		}
	}
}

func TestLabModeOffReturnsToIdle(t *testing.T) {
	e, _, _ := newTestEngine(t, config.DefaultBreakLabConfig())
	parkBall(e)

	e.Tick(FrameOptions{LabMode: true, ShowCountdown: true})
	if e.Snapshot().Countdown == nil {
		t.Fatal("countdown should be visible while counting")
	}

	e.Tick(FrameOptions{LabMode: false, ShowCountdown: true})
	snap := e.Snapshot()
	if snap.LabState != SchedulerIdle {
		t.Errorf("scheduler = %s, want idle", snap.LabState)
	}
	if snap.Countdown != nil {
		t.Error("countdown should clear when lab mode turns off")
	}
	if !e.lab.NextAt().IsZero() {
		t.Error("idle scheduler keeps no deadline")
	}
}

func TestCountdownThrottled(t *testing.T) {
	e, clock, _ := newTestEngine(t, config.DefaultBreakLabConfig())
	parkBall(e)
	opts := FrameOptions{LabMode: true, ShowCountdown: true}

	e.Tick(FrameOptions{LabMode: true})
	e.lab.nextAt = clock.Now().Add(5 * time.Second)

	e.Tick(opts)
	snap := e.Snapshot()
	if snap.Countdown == nil || *snap.Countdown != 5*time.Second || !snap.CountdownChanged {
		t.Fatalf("countdown = %v changed=%v, want 5s changed", snap.Countdown, snap.CountdownChanged)
	}

	clock.Advance(30 * time.Millisecond)
	e.Tick(opts)
	snap = e.Snapshot()
	if *snap.Countdown != 5*time.Second || snap.CountdownChanged {
		t.Errorf("4.97s rounds to 5.0s and must not count as a change")
	}

	clock.Advance(100 * time.Millisecond)
	e.Tick(opts)
	snap = e.Snapshot()
	if *snap.Countdown != 4900*time.Millisecond || !snap.CountdownChanged {
		t.Errorf("countdown = %v changed=%v, want 4.9s changed", *snap.Countdown, snap.CountdownChanged)
	}

	e.Tick(FrameOptions{LabMode: true})
	snap = e.Snapshot()
	if snap.Countdown != nil || !snap.CountdownChanged {
		t.Error("hiding the countdown should expose nil once")
	}
	e.Tick(FrameOptions{LabMode: true})
	if e.Snapshot().CountdownChanged {
		t.Error("hidden countdown must stay unchanged")
	}
}

func TestInvertRetriggerRefreshesDeadline(t *testing.T) {
	e, clock, rec := newTestEngine(t, config.DefaultBreakLabConfig())
	parkBall(e)

	e.applyMutation(MutationInvert, clock.Now())
	if e.store.Paddle.Speed != -7 {
		t.Fatalf("speed = %g, want -7", e.store.Paddle.Speed)
	}

	clock.Advance(3 * time.Second)
	e.applyMutation(MutationInvert, clock.Now())
	if e.store.Paddle.Speed != -7 {
		t.Fatalf("re-trigger must not double-negate, speed = %g", e.store.Paddle.Speed)
	}
	if rec.count(CueMutationInvert) != 2 {
		t.Errorf("invert cues = %d, want 2", rec.count(CueMutationInvert))
	}

	clock.Advance(1500 * time.Millisecond)
	e.Tick(FrameOptions{})
	if !e.Snapshot().Inverted {
		t.Error("refreshed inversion should still hold at +4.5s")
	}

	e.SetDirection(1)
	x := e.Snapshot().Paddle.X
	e.Tick(FrameOptions{})
	if got := e.Snapshot().Paddle.X; got != x-7 {
		t.Errorf("inverted paddle moved to %g, want %g", got, x-7)
	}

	clock.Advance(2500 * time.Millisecond)
	e.Tick(FrameOptions{})
	if e.Snapshot().Inverted || e.store.Paddle.Speed != 7 {
		t.Errorf("inversion should revert 4s after the last trigger, speed = %g", e.store.Paddle.Speed)
	}
}

func TestGravityMutation(t *testing.T) {
	e, clock, _ := newTestEngine(t, config.DefaultBreakLabConfig())
	e.store.Balls = []Ball{
		{X: 100, Y: 300, DX: 3, DY: -4, Radius: 10, Speed: 5},
		{X: 200, Y: 300, DX: -3, DY: 4, Radius: 10, Speed: 5},
	}
	e.applyMutation(MutationGravity, clock.Now())

	if e.store.Balls[0].DY != -3 || e.store.Balls[1].DY != 5 {
		t.Errorf("gravity should add 1 to dy: %+v", e.store.Balls)
	}
	if e.store.Balls[0].Speed != 5 {
		t.Error("gravity leaves the speed scalar alone")
	}
}

func TestRegenMutation(t *testing.T) {
	for _, tt := range []struct {
		name   string
		chance float64
		want   int
	}{
		{"always", 1, 1},
		{"never", 0, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultBreakLabConfig()
			cfg.Lab.RegenChance = tt.chance
			e, clock, _ := newTestEngine(t, cfg)

			for i := range e.store.Bricks {
				if i > 0 {
					e.store.Bricks[i].HitsLeft = 0
				}
			}
			firstHits := e.store.Bricks[0].HitsLeft

			e.applyMutation(MutationRegen, clock.Now())

			if e.store.Bricks[0].HitsLeft != firstHits {
				t.Error("regen must not touch live bricks")
			}
			for _, b := range e.store.Bricks[1:] {
				if b.HitsLeft != tt.want {
					t.Fatalf("destroyed brick restored to %d hits, want %d", b.HitsLeft, tt.want)
				}
			}
		})
	}
}

func TestIndicatorExpires(t *testing.T) {
	e, clock, _ := newTestEngine(t, config.DefaultBreakLabConfig())
	parkBall(e)

	e.applyMutation(MutationRegen, clock.Now())
	e.Tick(FrameOptions{})
	snap := e.Snapshot()
	if snap.Indicator == nil || snap.Indicator.Label != "SPECIMEN REGENERATED" {
		t.Fatalf("indicator = %+v", snap.Indicator)
	}
	if !snap.Glitch {
		t.Error("glitch should be up right after a mutation")
	}

	clock.Advance(600 * time.Millisecond)
	e.Tick(FrameOptions{})
	if e.Snapshot().Glitch {
		t.Error("glitch should clear after 580ms")
	}

	clock.Advance(2400 * time.Millisecond)
	e.Tick(FrameOptions{})
	if e.Snapshot().Indicator != nil {
		t.Error("indicator should clear after its display time")
	}
}
