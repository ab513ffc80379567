package breaklab

// EffectTag names a timed effect that reverts on its own.
type EffectTag uint8

const (
	EffectExpand EffectTag = iota
	EffectSlow
	EffectRespawn
)

func (t EffectTag) String() string {
	switch t {
	case EffectExpand:
		return "expand"
	case EffectSlow:
		return "slow"
	case EffectRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// Expiration is a pending revert due at an absolute tick.
type Expiration struct {
	Tag  EffectTag
	Tick uint64
}

// Expirations is the list of pending timed reverts.
// At most one entry exists per tag: scheduling a tag again replaces the
// earlier deadline.
type Expirations struct {
	pending []Expiration
}

// Schedule sets the deadline for tag, replacing any earlier one.
func (e *Expirations) Schedule(tag EffectTag, tick uint64) {
	for i := range e.pending {
		if e.pending[i].Tag == tag {
			e.pending[i].Tick = tick
			return
		}
	}
	e.pending = append(e.pending, Expiration{Tag: tag, Tick: tick})
}

// Pending returns the deadline for tag, if one is scheduled.
func (e *Expirations) Pending(tag EffectTag) (uint64, bool) {
	for _, exp := range e.pending {
		if exp.Tag == tag {
			return exp.Tick, true
		}
	}
	return 0, false
}

// Active reports whether tag has a pending revert.
func (e *Expirations) Active(tag EffectTag) bool {
	_, ok := e.Pending(tag)
	return ok
}

// Due removes and returns every expiration with Tick <= now, in schedule order.
func (e *Expirations) Due(now uint64) []EffectTag {
	var due []EffectTag
	kept := e.pending[:0]
	for _, exp := range e.pending {
		if exp.Tick <= now {
			due = append(due, exp.Tag)
			continue
		}
		kept = append(kept, exp)
	}
	e.pending = kept
	return due
}

// Clear drops every pending expiration.
func (e *Expirations) Clear() {
	e.pending = e.pending[:0]
}

// Len returns the number of pending expirations.
func (e *Expirations) Len() int {
	return len(e.pending)
}

// List returns a copy of the pending expirations.
func (e *Expirations) List() []Expiration {
	return append([]Expiration(nil), e.pending...)
}

// applyPowerUp runs the pickup effect of t.
func (e *Engine) applyPowerUp(t PowerUpType) {
	switch t {
	case PowerUpExpand:
		p := &e.store.Paddle
		p.Width = min(p.Width+e.cfg.PowerUps.ExpandAmount, e.cfg.PowerUps.MaxPaddleWidth)
		p.clamp(e.cfg.Canvas.Width)
		e.expirations.Schedule(EffectExpand, e.tick+e.ticksFor(e.cfg.PowerUps.ExpandDuration()))

	case PowerUpMultiball:
		n := len(e.store.Balls)
		for i := range n {
			clone := e.store.Balls[i]
			clone.DX = -clone.DX
			e.store.Balls = append(e.store.Balls, clone)
		}

	case PowerUpSlow:
		f := e.cfg.PowerUps.SlowFactor
		for i := range e.store.Balls {
			b := &e.store.Balls[i]
			b.Speed *= f
			b.DX *= f
			b.DY *= f
		}
		e.expirations.Schedule(EffectSlow, e.tick+e.ticksFor(e.cfg.PowerUps.SlowDuration()))
	}
}

// expire reverts the effect behind tag.
func (e *Engine) expire(tag EffectTag) {
	switch tag {
	case EffectExpand:
		p := &e.store.Paddle
		p.Width = e.cfg.Paddle.Width
		p.clamp(e.cfg.Canvas.Width)

	case EffectSlow:
		for i := range e.store.Balls {
			e.store.Balls[i].rescale(e.cfg.Ball.BaseSpeed)
		}

	case EffectRespawn:
		e.respawn()
	}
}
