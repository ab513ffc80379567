package breaklab

import "math"

// stepPhysics advances every entity by one tick in a fixed order:
// paddle, ball motion, walls, paddle bounce, bricks, ball loss, power-ups.
func (e *Engine) stepPhysics() {
	e.movePaddle()
	e.moveBalls()
	e.reflectWalls()
	e.bouncePaddle()
	e.hitBricks()
	if e.store.liveBricks() == 0 {
		e.clearBoard()
		return
	}
	e.cullBalls()
	if e.match.Halted() {
		return
	}
	e.updatePowerUps()
}

// movePaddle applies a pending pointer target, then the held direction.
func (e *Engine) movePaddle() {
	p := &e.store.Paddle
	if target, ok := e.takePointer(); ok {
		p.X = target - p.Width/2
		p.clamp(e.cfg.Canvas.Width)
	}
	if dir := e.direction(); dir != 0 {
		p.X += float64(dir) * p.Speed
		p.clamp(e.cfg.Canvas.Width)
	}
}

func (e *Engine) moveBalls() {
	for i := range e.store.Balls {
		b := &e.store.Balls[i]
		b.X += b.DX
		b.Y += b.DY
	}
}

// reflectWalls bounces balls off the side and top walls. The bottom is open.
func (e *Engine) reflectWalls() {
	w := e.cfg.Canvas.Width
	for i := range e.store.Balls {
		b := &e.store.Balls[i]
		if b.X-b.Radius <= 0 {
			b.DX = ReflectAway(b.DX, 1)
		} else if b.X+b.Radius >= w {
			b.DX = ReflectAway(b.DX, -1)
		}
		if b.Y-b.Radius <= 0 {
			b.DY = ReflectAway(b.DY, 1)
		}
	}
}

// bouncePaddle redirects descending balls that reach the paddle. The hit
// position picks the angle: center goes straight up, edges go out wide.
func (e *Engine) bouncePaddle() {
	p := &e.store.Paddle
	slow := e.expirations.Active(EffectSlow)
	for i := range e.store.Balls {
		b := &e.store.Balls[i]
		if b.DY <= 0 || b.Y+b.Radius < p.Y || !p.spans(b.X) {
			continue
		}
		hit := (b.X - p.X) / p.Width
		angle := (hit - 0.5) * 0.9 * math.Pi

		speed := min(b.Speed+e.cfg.Ball.Acceleration, e.cfg.Ball.MaxSpeed)
		if !slow {
			speed = max(speed, e.cfg.Ball.BaseSpeed)
		}
		b.Speed = speed
		b.DX = math.Sin(angle) * speed
		b.DY = -math.Cos(angle) * speed
		e.emit(CuePaddleHit)
	}
}

// hitBricks resolves every (ball, live brick) overlap. Each hit flips the
// ball's DY, so two bricks hit in the same tick cancel out.
func (e *Engine) hitBricks() {
	for i := range e.store.Balls {
		b := &e.store.Balls[i]
		for j := range e.store.Bricks {
			br := &e.store.Bricks[j]
			if !br.Live() || !CircleIntersectsBox(b.Circle(), br.Box) {
				continue
			}
			br.HitsLeft--
			b.DY = -b.DY
			if br.HitsLeft > 0 {
				continue
			}
			if br.Type == BrickPower {
				e.spawnPowerUp(br)
			}
			e.emit(CueBrickBreak)
			e.match.award(br.Type.Spec().Score)
		}
	}
}

func (e *Engine) spawnPowerUp(br *Brick) {
	cx, cy := br.Center()
	e.store.PowerUps = append(e.store.PowerUps, PowerUp{
		X:    cx,
		Y:    cy,
		DY:   e.cfg.PowerUps.FallSpeed,
		Size: e.cfg.PowerUps.Size,
		Type: PowerUpType(e.rng.Intn(int(powerUpTypeCount))),
	})
}

// cullBalls drops balls fully below the canvas. Losing the last one costs
// a life.
func (e *Engine) cullBalls() {
	h := e.cfg.Canvas.Height
	kept := e.store.Balls[:0]
	for _, b := range e.store.Balls {
		if b.Y-b.Radius > h {
			continue
		}
		kept = append(kept, b)
	}
	e.store.Balls = kept
	if len(kept) == 0 {
		e.loseLife()
	}
}

// updatePowerUps moves power-ups, applies the ones caught by the paddle and
// drops those caught or fallen off the canvas.
func (e *Engine) updatePowerUps() {
	p := &e.store.Paddle
	h := e.cfg.Canvas.Height

	var caught []PowerUpType
	kept := e.store.PowerUps[:0]
	for _, pu := range e.store.PowerUps {
		pu.Y += pu.DY
		if pu.Y+pu.Size >= p.Y && p.spans(pu.X) {
			caught = append(caught, pu.Type)
			continue
		}
		if pu.Y >= h {
			continue
		}
		kept = append(kept, pu)
	}
	e.store.PowerUps = kept

	for _, t := range caught {
		e.applyPowerUp(t)
	}
}
