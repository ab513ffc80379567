package sound

import (
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-lab/internal/games/breaklab"
)

func drain(t *testing.T, c breaklab.Cue) (samples int, peak float64) {
	t.Helper()
	s := cueStreamer(c)
	if s == nil {
		t.Fatalf("no streamer for %v", c)
	}
	buf := make([][2]float64, 512)
	for guard := 0; guard < 10000; guard++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		samples += n
		if !ok {
			return samples, peak
		}
	}
	t.Fatalf("%v never drained", c)
	return 0, 0
}

func TestEveryCueHasFiniteTone(t *testing.T) {
	for c, notes := range phrases {
		t.Run(c.String(), func(t *testing.T) {
			var want int
			for _, n := range notes {
				want += sampleRate.N(n.dur)
			}
			got, peak := drain(t, c)
			if got != want {
				t.Errorf("samples = %d, want %d", got, want)
			}
			if peak > 1 {
				t.Errorf("peak = %g, want <= 1", peak)
			}
			if peak == 0 {
				t.Error("tone is silent")
			}
		})
	}
}

func TestEngineCuesCovered(t *testing.T) {
	cues := []breaklab.Cue{
		breaklab.CueStart, breaklab.CuePaddleHit, breaklab.CueBrickBreak,
		breaklab.CueLifeLost, breaklab.CueGameOver, breaklab.CueBoardCleared,
		breaklab.CueMutationInvert, breaklab.CueMutationGravity, breaklab.CueMutationRegen,
	}
	for _, c := range cues {
		if _, ok := phrases[c]; !ok {
			t.Errorf("cue %v has no phrase", c)
		}
	}
	if cueStreamer(breaklab.Cue(200)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	osc := newOscillator(100, 100*time.Millisecond, WaveSquare, sampleRate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("n = %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %g, want 0", buf[0][0])
	}
	if v := math.Abs(buf[n-1][0]); v > 0.01 {
		t.Errorf("last sample = %g, want near 0", v)
	}
	if v := math.Abs(buf[n/2][0]); v != 1 {
		t.Errorf("sustain sample = %g, want 1", v)
	}
}

func newTestPlayer() (*Player, *sync.Mutex) {
	var mu sync.Mutex
	p := newPlayer(Options{Volume: 1, Logger: log.New(io.Discard)}, mu.Lock, mu.Unlock)
	return p, &mu
}

func TestPlayerQueuesCues(t *testing.T) {
	p, mu := newTestPlayer()
	defer p.Close()

	p.Cue(breaklab.CueBrickBreak)
	p.Cue(breaklab.CuePaddleHit)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := p.mixer.Len()
		mu.Unlock()
		if n == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("mixer has %d streamers, want 2", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPlayerCloseIsIdempotent(t *testing.T) {
	p, mu := newTestPlayer()
	p.Cue(breaklab.CueStart)
	p.Close()
	p.Close()

	// Cues after close are ignored
	p.Cue(breaklab.CueGameOver)
	mu.Lock()
	n := p.mixer.Len()
	mu.Unlock()
	if n != 0 {
		t.Errorf("mixer has %d streamers after close, want 0", n)
	}
}

func TestPlayerCueNeverBlocks(t *testing.T) {
	var mu sync.Mutex
	mu.Lock() // stall the loop on its first cue
	p := newPlayer(Options{Logger: log.New(io.Discard)}, mu.Lock, mu.Unlock)

	done := make(chan struct{})
	go func() {
		for range queueSize * 4 {
			p.Cue(breaklab.CuePaddleHit)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Cue blocked on a full queue")
	}
	if p.Dropped() == 0 {
		t.Error("expected dropped cues")
	}
	mu.Unlock()
	p.Close()
}
