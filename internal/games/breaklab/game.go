package breaklab

import (
	"sync"

	"github.com/vovakirdan/breakout-lab/internal/config"
	"github.com/vovakirdan/breakout-lab/internal/core"
	"github.com/vovakirdan/breakout-lab/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "breaklab"

// Settings are the CLI-level defaults for games built through the registry.
type Settings struct {
	ConfigPath    string
	Difficulty    config.DifficultyPreset
	LabMode       bool // Lab mode on at start
	ShowCountdown bool // Countdown visible at start
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Configure sets the defaults used by NewGame.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(GameID, func() registry.Game { return NewGame() })
}

// Terminal keys repeat instead of reporting release, so a direction key
// holds the paddle for this long after the last repeat.
const keyHoldSeconds = 0.15

// Minimum terminal size for a playable board.
const (
	minScreenW = 30
	minScreenH = 16
)

// Game adapts Engine to the terminal platform.
type Game struct {
	settings Settings
	clock    Clock
	cues     CueSink

	runtime core.RuntimeConfig
	cfg     config.BreakLabConfig
	engine  *Engine
	snap    Snapshot

	labMode       bool
	showCountdown bool
	holdDir       int
	holdTicks     int

	view     core.Viewport
	field    core.Rect
	tooSmall bool
}

// NewGame returns a game using the settings from Configure.
func NewGame() *Game {
	s := currentSettings()
	return &Game{
		settings:      s,
		labMode:       s.LabMode,
		showCountdown: s.ShowCountdown,
	}
}

// SetCueSink routes cues to sink from the next Reset on.
func (g *Game) SetCueSink(sink CueSink) { g.cues = sink }

// SetClock replaces the wall clock from the next Reset on.
func (g *Game) SetClock(c Clock) { g.clock = c }

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout Lab" }

// Reset loads the config and starts a fresh match. Lab toggles survive.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakLab(g.settings.ConfigPath)
	if err != nil {
		cfg = config.DefaultBreakLabConfig()
	}
	config.ApplyBreakLabPreset(&cfg, g.settings.Difficulty)
	g.cfg = cfg

	if g.engine != nil {
		g.engine.Teardown()
	}
	g.engine = NewEngine(cfg, Options{
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		Clock:    g.clock,
		Cues:     g.cues,
	})
	g.engine.Start()
	g.holdDir, g.holdTicks = 0, 0
	g.layout()
	g.snap = g.engine.Snapshot()
}

// Resize adapts the layout without restarting the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout()
}

// layout maps the canvas onto the terminal below the two HUD rows.
func (g *Game) layout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.tooSmall = w < minScreenW || h < minScreenH
	g.field = core.NewRect(0, 2, w, h-2)
	g.view = core.Viewport{
		CanvasW: g.cfg.Canvas.Width,
		CanvasH: g.cfg.Canvas.Height,
		Cells:   g.field.Inset(1),
	}
}

// Step maps the input frame onto engine intent and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLab) {
		g.labMode = !g.labMode
	}
	if in.Has(core.ActionTimer) {
		g.showCountdown = !g.showCountdown
	}

	g.updateHold(in)
	g.engine.SetDirection(g.holdDir)
	if col, ok := in.Pointer(); ok && !g.tooSmall {
		g.engine.SetPointerX(g.view.CanvasX(col))
	}

	advanced := g.engine.Tick(FrameOptions{
		LabMode:       g.labMode,
		ShowCountdown: g.showCountdown,
	})
	g.snap = g.engine.Snapshot()
	return core.StepResult{State: g.State(), Advanced: advanced}
}

// updateHold turns repeated key presses into a held direction.
func (g *Game) updateHold(in core.InputFrame) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case in.Has(core.ActionStop) || (left && right):
		g.holdDir, g.holdTicks = 0, 0
	case left:
		g.holdDir, g.holdTicks = -1, g.holdDuration()
	case right:
		g.holdDir, g.holdTicks = 1, g.holdDuration()
	case g.holdTicks > 0:
		g.holdTicks--
		if g.holdTicks == 0 {
			g.holdDir = 0
		}
	default:
		g.holdDir = 0
	}
}

func (g *Game) holdDuration() int {
	return max(int(keyHoldSeconds*float64(g.runtime.TickRate)), 1)
}

// State returns score, lives and terminal flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Lives:    g.snap.Lives,
		GameOver: g.snap.GameOver || g.snap.Cleared,
		Cleared:  g.snap.Cleared,
		Paused:   g.snap.Paused,
		LabMode:  g.labMode,
		Tick:     g.snap.Tick,
	}
}

// Snapshot returns the snapshot taken after the last step.
func (g *Game) Snapshot() Snapshot { return g.snap }

// Close tears the engine down.
func (g *Game) Close() {
	if g.engine != nil && !g.engine.TornDown() {
		g.engine.Teardown()
	}
}
