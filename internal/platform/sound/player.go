// Package sound plays engine cues as short synthesized tones through the
// system audio device.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/breakout-lab/internal/games/breaklab"
)

// queueSize bounds pending cues; extra cues are dropped.
const queueSize = 32

// Options configures a Player.
type Options struct {
	// Volume is linear gain in (0, 1]. Zero or less mutes output.
	Volume float64
	Logger *log.Logger
}

// Player is a breaklab.CueSink backed by the speaker.
// Cue never blocks the simulation; a background goroutine feeds the mixer.
type Player struct {
	mixer  *beep.Mixer
	queue  chan breaklab.Cue
	done   chan struct{}
	wg     sync.WaitGroup
	logger *log.Logger

	// lock guards the mixer against the audio callback.
	lock   func()
	unlock func()

	closeOnce sync.Once
	dropped   int
	mu        sync.Mutex
}

var _ breaklab.CueSink = (*Player)(nil)

// New opens the audio device and starts the player.
func New(opts Options) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}

	p := newPlayer(opts, speaker.Lock, speaker.Unlock)
	speaker.Play(volume(p.mixer, opts.Volume))
	return p, nil
}

func newPlayer(opts Options, lock, unlock func()) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		queue:  make(chan breaklab.Cue, queueSize),
		done:   make(chan struct{}),
		logger: logger,
		lock:   lock,
		unlock: unlock,
	}
	p.wg.Add(1)
	go p.loop()
	return p
}

// volume wraps s with a gain stage. Linear v maps to base-2 decibel-like steps.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(v, 1))}
}

// Cue queues c for playback. Safe for concurrent use; drops c when the
// queue is full or the player is closed.
func (p *Player) Cue(c breaklab.Cue) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.queue <- c:
	default:
		p.mu.Lock()
		p.dropped++
		p.mu.Unlock()
	}
}

// Dropped reports how many cues were discarded on a full queue.
func (p *Player) Dropped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

func (p *Player) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case c := <-p.queue:
			p.play(c)
		}
	}
}

func (p *Player) play(c breaklab.Cue) {
	s := cueStreamer(c)
	if s == nil {
		p.logger.Debug("no tone for cue", "cue", c)
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Close stops playback and releases the audio device. Safe to call more
// than once.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.lock()
		p.mixer.Clear()
		p.unlock()
	})
}

// Shutdown closes p and the speaker opened by New.
func (p *Player) Shutdown() {
	p.Close()
	speaker.Close()
}
