package breaklab

import (
	"math"

	"github.com/vovakirdan/breakout-lab/internal/core"
)

// Circle is a round footprint in canvas units.
type Circle struct {
	X, Y, R float64
}

// Box is an axis-aligned rectangle in canvas units, anchored at its top-left.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point.
func (b Box) Center() (float64, float64) { return b.X + b.W/2, b.Y + b.H/2 }

// CircleIntersectsBox reports whether c overlaps b.
// The circle center is clamped into the box to find the nearest point and the
// squared distance is compared to the squared radius, so tangency counts as a
// hit.
func CircleIntersectsBox(c Circle, b Box) bool {
	nx := core.ClampF(c.X, b.X, b.Right())
	ny := core.ClampF(c.Y, b.Y, b.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= c.R*c.R
}

// ReflectAway returns v with its sign forced to match away (+1 or -1).
// Used for wall contacts so a ball still overlapping a wall on the next tick
// keeps moving out instead of flipping back in.
func ReflectAway(v, away float64) float64 {
	return math.Copysign(math.Abs(v), away)
}
