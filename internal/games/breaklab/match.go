package breaklab

// Phase is the match state.
type Phase uint8

const (
	PhasePlaying  Phase = iota
	PhasePaused         // Life lost, waiting for the respawn
	PhaseGameOver       // Terminal: no lives left
	PhaseCleared        // Terminal: every brick destroyed
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Match tracks lives, score and the phase.
type Match struct {
	Lives         int
	Score         int
	Phase         Phase
	LifeLostFlash bool
}

func newMatch(lives int) Match {
	return Match{Lives: lives, Phase: PhasePlaying}
}

// Halted reports whether the match reached a terminal phase.
func (m *Match) Halted() bool {
	return m.Phase == PhaseGameOver || m.Phase == PhaseCleared
}

// Paused reports whether the life-loss window is open.
func (m *Match) Paused() bool {
	return m.Phase == PhasePaused
}

// award adds points. Negative values are ignored.
func (m *Match) award(points int) {
	if points > 0 {
		m.Score += points
	}
}

// loseLife opens the life-loss window. It returns false when the match is
// already paused or halted, so duplicate triggers are no-ops.
func (m *Match) loseLife() bool {
	if m.Phase != PhasePlaying {
		return false
	}
	m.Lives = max(m.Lives-1, 0)
	m.LifeLostFlash = true
	if m.Lives == 0 {
		m.Phase = PhaseGameOver
		return true
	}
	m.Phase = PhasePaused
	return true
}

// resume closes the life-loss window.
func (m *Match) resume() {
	if m.Phase != PhasePaused {
		return
	}
	m.Phase = PhasePlaying
	m.LifeLostFlash = false
}

// clear ends the match as won.
func (m *Match) clear() bool {
	if m.Halted() {
		return false
	}
	m.Phase = PhaseCleared
	return true
}

// loseLife runs the life-loss transition with its cues and respawn timer.
func (e *Engine) loseLife() {
	if !e.match.loseLife() {
		return
	}
	e.emit(CueLifeLost)
	if e.match.Phase == PhaseGameOver {
		e.expirations.Clear()
		e.emit(CueGameOver)
		return
	}
	e.expirations.Schedule(EffectRespawn, e.tick+e.ticksFor(e.cfg.Gameplay.RespawnDelay()))
}

// respawn serves a fresh ball and resumes play.
func (e *Engine) respawn() {
	if !e.match.Paused() {
		return
	}
	e.store.Balls = e.store.Balls[:0]
	e.store.serve(e.cfg, e.rng)
	e.match.resume()
}

// clearBoard ends the match once no brick is left.
func (e *Engine) clearBoard() {
	if !e.match.clear() {
		return
	}
	e.emit(CueBoardCleared)
}
