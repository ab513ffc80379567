package breaklab

import (
	"time"

	"github.com/vovakirdan/breakout-lab/internal/core"
)

// BrickType is the closed set of brick kinds.
type BrickType uint8

const (
	BrickNormal BrickType = iota
	BrickStrong
	BrickSteel
	BrickPower
	brickTypeCount
)

// BrickSpec is the fixed data attached to a brick type.
type BrickSpec struct {
	Name   string
	Label  string  // Short brick label, suffixed with hits left on multi-hit bricks
	Hits   int     // Hits needed to destroy
	Score  int     // Points awarded on destruction
	Weight float64 // Spawn probability when building the grid
	Color  core.Color
}

var brickSpecs = [brickTypeCount]BrickSpec{
	BrickNormal: {Name: "normal", Label: "STD", Hits: 1, Score: 10, Weight: 0.60, Color: core.ColorPink},
	BrickStrong: {Name: "strong", Label: "HRD", Hits: 2, Score: 25, Weight: 0.20, Color: core.ColorBrightBlue},
	BrickSteel:  {Name: "steel", Label: "STL", Hits: 3, Score: 40, Weight: 0.15, Color: core.ColorSteel},
	BrickPower:  {Name: "power", Label: "PWR", Hits: 1, Score: 15, Weight: 0.05, Color: core.ColorBrightGreen},
}

// Spec returns the data table entry for t.
func (t BrickType) Spec() BrickSpec {
	if t >= brickTypeCount {
		return brickSpecs[BrickNormal]
	}
	return brickSpecs[t]
}

func (t BrickType) String() string { return t.Spec().Name }

// PowerUpType is the closed set of collectible kinds.
type PowerUpType uint8

const (
	PowerUpExpand PowerUpType = iota
	PowerUpMultiball
	PowerUpSlow
	powerUpTypeCount
)

// PowerUpSpec is the fixed data attached to a power-up type.
type PowerUpSpec struct {
	Name  string
	Glyph rune
	Color core.Color
}

var powerUpSpecs = [powerUpTypeCount]PowerUpSpec{
	PowerUpExpand:    {Name: "expand", Glyph: 'E', Color: core.ColorBrightYellow},
	PowerUpMultiball: {Name: "multiball", Glyph: 'M', Color: core.ColorBrightMagenta},
	PowerUpSlow:      {Name: "slow", Glyph: 'S', Color: core.ColorBrightCyan},
}

// Spec returns the data table entry for t.
func (t PowerUpType) Spec() PowerUpSpec {
	if t >= powerUpTypeCount {
		return powerUpSpecs[PowerUpExpand]
	}
	return powerUpSpecs[t]
}

func (t PowerUpType) String() string { return t.Spec().Name }

// Mutation is the closed set of lab-mode rule changes.
type Mutation uint8

const (
	MutationInvert Mutation = iota
	MutationGravity
	MutationRegen
	mutationCount
)

// MutationSpec is the presentational and signalling data of a mutation.
// None of it feeds back into gameplay.
type MutationSpec struct {
	Name    string
	Label   string
	Color   core.Color
	Display time.Duration // How long the indicator stays up
	Cue     Cue
}

var mutationSpecs = [mutationCount]MutationSpec{
	MutationInvert:  {Name: "invert", Label: "CONTROLS INVERTED", Color: core.ColorBrightYellow, Display: 4200 * time.Millisecond, Cue: CueMutationInvert},
	MutationGravity: {Name: "gravity", Label: "GRAVITY DISTORTION", Color: core.ColorOrange, Display: 5000 * time.Millisecond, Cue: CueMutationGravity},
	MutationRegen:   {Name: "regen", Label: "SPECIMEN REGENERATED", Color: core.ColorGreen, Display: 3000 * time.Millisecond, Cue: CueMutationRegen},
}

// Spec returns the data table entry for m.
func (m Mutation) Spec() MutationSpec {
	if m >= mutationCount {
		return mutationSpecs[MutationInvert]
	}
	return mutationSpecs[m]
}

func (m Mutation) String() string { return m.Spec().Name }

// Cue is an abstract audio/visual signal emitted by the engine.
type Cue uint8

const (
	CueStart Cue = iota
	CuePaddleHit
	CueBrickBreak
	CueLifeLost
	CueGameOver
	CueBoardCleared
	CueMutationInvert
	CueMutationGravity
	CueMutationRegen
)

var cueNames = [...]string{
	CueStart:           "start",
	CuePaddleHit:       "paddle-hit",
	CueBrickBreak:      "brick-break",
	CueLifeLost:        "life-lost",
	CueGameOver:        "game-over",
	CueBoardCleared:    "board-cleared",
	CueMutationInvert:  "mutation:invert",
	CueMutationGravity: "mutation:gravity",
	CueMutationRegen:   "mutation:regen",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueSink receives cues. Implementations must not block the caller.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a plain function to CueSink.
type CueFunc func(c Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }
