package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/breakout-lab/internal/games/breaklab"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// note is one tone in a cue phrase. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// phrases are the tones played for each cue.
var phrases = map[breaklab.Cue][]note{
	breaklab.CueStart: {
		{523.25, 70 * time.Millisecond, WaveSquare},
		{659.25, 70 * time.Millisecond, WaveSquare},
		{783.99, 110 * time.Millisecond, WaveSquare},
	},
	breaklab.CuePaddleHit: {
		{330, 40 * time.Millisecond, WaveSquare},
	},
	breaklab.CueBrickBreak: {
		{880, 30 * time.Millisecond, WaveTriangle},
		{1320, 40 * time.Millisecond, WaveTriangle},
	},
	breaklab.CueLifeLost: {
		{392, 90 * time.Millisecond, WaveSquare},
		{311.13, 90 * time.Millisecond, WaveSquare},
		{196, 180 * time.Millisecond, WaveSquare},
	},
	breaklab.CueGameOver: {
		{220, 160 * time.Millisecond, WaveTriangle},
		{0, 40 * time.Millisecond, WaveSine},
		{164.81, 160 * time.Millisecond, WaveTriangle},
		{110, 360 * time.Millisecond, WaveTriangle},
	},
	breaklab.CueBoardCleared: {
		{523.25, 90 * time.Millisecond, WaveSquare},
		{659.25, 90 * time.Millisecond, WaveSquare},
		{783.99, 90 * time.Millisecond, WaveSquare},
		{1046.5, 240 * time.Millisecond, WaveSquare},
	},
	breaklab.CueMutationInvert: {
		{740, 60 * time.Millisecond, WaveSine},
		{370, 60 * time.Millisecond, WaveSine},
		{740, 60 * time.Millisecond, WaveSine},
	},
	breaklab.CueMutationGravity: {
		{180, 220 * time.Millisecond, WaveTriangle},
		{120, 220 * time.Millisecond, WaveTriangle},
	},
	breaklab.CueMutationRegen: {
		{1, 140 * time.Millisecond, WaveNoise},
		{988, 80 * time.Millisecond, WaveSine},
	},
}

// cueStreamer returns a finite stream for c, or nil for an unknown cue.
func cueStreamer(c breaklab.Cue) beep.Streamer {
	notes, ok := phrases[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		osc := newOscillator(n.freq, n.dur, n.wave, sampleRate)
		parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, sampleRate))
	}
	return beep.Seq(parts...)
}

// oscillator generates a single wave of fixed length.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    uint32
}

func newOscillator(freq float64, dur time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: rate.N(dur),
		wave:   wave,
		rate:   rate,
		noise:  0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			// xorshift32
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/math.MaxUint32*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, dur, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(dur)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.total-e.release && e.release > 0:
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
