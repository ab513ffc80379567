package breaklab

import (
	"math"

	"github.com/vovakirdan/breakout-lab/internal/config"
)

// Ball is a moving circle. Speed is the scalar the physics rescales to on
// paddle hits and effect reverts; gravity changes DY without touching it.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  float64
}

// Circle returns the ball's collision footprint.
func (b *Ball) Circle() Circle {
	return Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// rescale sets the speed and stretches (DX, DY) to that length, keeping the
// direction. A stationary ball only gets its scalar updated.
func (b *Ball) rescale(speed float64) {
	b.Speed = speed
	length := math.Hypot(b.DX, b.DY)
	if length == 0 {
		return
	}
	b.DX = b.DX / length * speed
	b.DY = b.DY / length * speed
}

// Paddle is the player-controlled bar. Speed is signed: the invert mutation
// makes it negative so held directions move the other way.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Box returns the paddle rectangle.
func (p *Paddle) Box() Box {
	return Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// clamp keeps the paddle fully inside [0, canvasW].
func (p *Paddle) clamp(canvasW float64) {
	p.X = max(0, min(p.X, canvasW-p.Width))
}

// spans reports whether x lies within the paddle's horizontal extent.
func (p *Paddle) spans(x float64) bool {
	return x >= p.X && x <= p.X+p.Width
}

// Brick is one grid cell. HitsLeft == 0 means destroyed.
type Brick struct {
	Box
	Row, Col int
	Type     BrickType
	HitsLeft int
}

// Live reports whether the brick still blocks balls.
func (b *Brick) Live() bool { return b.HitsLeft > 0 }

// InitialHits returns the hit count the brick was built with.
func (b *Brick) InitialHits() int { return b.Type.Spec().Hits }

// PowerUp is a falling collectible. X is its horizontal center, Y its top.
type PowerUp struct {
	X, Y float64
	DY   float64
	Size float64
	Type PowerUpType
}

// Box returns the power-up's footprint.
func (p *PowerUp) Box() Box {
	return Box{X: p.X - p.Size/2, Y: p.Y, W: p.Size, H: p.Size}
}

// Store owns every entity of a match.
type Store struct {
	Paddle   Paddle
	Balls    []Ball
	Bricks   []Brick
	PowerUps []PowerUp
}

// newStore builds the paddle, the brick grid and one served ball.
func newStore(cfg config.BreakLabConfig, rng *SimpleRNG) Store {
	s := Store{
		Paddle: Paddle{
			X:      (cfg.Canvas.Width - cfg.Paddle.Width) / 2,
			Y:      cfg.Canvas.Height - cfg.Paddle.BottomOffset,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Speed,
		},
		Balls:  make([]Ball, 0, 8),
		Bricks: buildBricks(cfg.Bricks, rng),
	}
	s.serve(cfg, rng)
	return s
}

// buildBricks lays out the grid row-major with weighted random types.
func buildBricks(cfg config.BrickConfig, rng *SimpleRNG) []Brick {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			t := rollBrickType(rng)
			bricks = append(bricks, Brick{
				Box: Box{
					X: cfg.OffsetX + float64(col)*(cfg.Width+cfg.Padding),
					Y: cfg.OffsetY + float64(row)*(cfg.Height+cfg.Padding),
					W: cfg.Width,
					H: cfg.Height,
				},
				Row:      row,
				Col:      col,
				Type:     t,
				HitsLeft: t.Spec().Hits,
			})
		}
	}
	return bricks
}

func rollBrickType(rng *SimpleRNG) BrickType {
	roll := rng.Float64()
	acc := 0.0
	for t := range brickTypeCount {
		acc += brickSpecs[t].Weight
		if roll < acc {
			return t
		}
	}
	return BrickNormal
}

// serve adds one ball at the serve point, launched upward at an angle in
// [π/6, π/2) from horizontal with a random horizontal sign.
func (s *Store) serve(cfg config.BreakLabConfig, rng *SimpleRNG) {
	angle := rng.Float64()*math.Pi/3 + math.Pi/6
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}
	speed := cfg.Ball.BaseSpeed
	s.Balls = append(s.Balls, Ball{
		X:      cfg.Canvas.Width / 2,
		Y:      cfg.Canvas.Height - cfg.Ball.ServeOffset,
		DX:     math.Cos(angle) * speed * dir,
		DY:     -math.Abs(math.Sin(angle) * speed),
		Radius: cfg.Ball.Radius,
		Speed:  speed,
	})
}

// liveBricks counts bricks with hits left.
func (s *Store) liveBricks() int {
	n := 0
	for i := range s.Bricks {
		if s.Bricks[i].Live() {
			n++
		}
	}
	return n
}
