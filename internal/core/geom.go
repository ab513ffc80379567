// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	w := max(r.W-2*n, 0)
	h := max(r.H-2*n, 0)
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Viewport maps a logical canvas (in game units) onto a rectangle of screen cells.
type Viewport struct {
	CanvasW, CanvasH float64
	Cells            Rect
}

// CellX converts a canvas X coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	if v.CanvasW <= 0 {
		return v.Cells.X
	}
	return v.Cells.X + int(math.Floor(x/v.CanvasW*float64(v.Cells.W)))
}

// CellY converts a canvas Y coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	if v.CanvasH <= 0 {
		return v.Cells.Y
	}
	return v.Cells.Y + int(math.Floor(y/v.CanvasH*float64(v.Cells.H)))
}

// CellRect converts a canvas rectangle to the screen cells it covers.
// Any non-empty canvas rectangle covers at least one cell.
func (v Viewport) CellRect(x, y, w, h float64) Rect {
	x0, y0 := v.CellX(x), v.CellY(y)
	x1, y1 := v.CellX(x+w), v.CellY(y+h)
	return Rect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

// CanvasX converts a screen column back to the canvas X at the column's center.
func (v Viewport) CanvasX(col int) float64 {
	if v.Cells.W <= 0 {
		return 0
	}
	return (float64(col-v.Cells.X) + 0.5) / float64(v.Cells.W) * v.CanvasW
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
