package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-lab/internal/core"
	"github.com/vovakirdan/breakout-lab/internal/registry"
	"github.com/vovakirdan/breakout-lab/internal/storage"
)

// Resizer is implemented by games that can re-layout without restarting.
type Resizer interface {
	Resize(width, height int)
}

// session is the state shared by every copy of a Model. The mutex
// serializes game access between the Bubble Tea loop and Abandon, which
// runs on the SSH disconnect goroutine.
type session struct {
	mu        sync.Mutex
	runSaved  bool // Whether the current run has been recorded
	closed    bool // Game has been closed; no further steps
	highScore int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	painter    *Painter
	keys       *KeyMapper
	sess       *session
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		painter:    defaultPainter,
		keys:       NewKeyMapper(),
		sess:       &session{},
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		hs, err := store.HighScore(game.ID())
		if err != nil {
			logger.Debug("high score lookup failed", "game", game.ID(), "err", err)
		}
		m.sess.highScore = hs
	}
	return m
}

// WithRenderer returns a copy of m that styles output with r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.painter = NewPainter(r)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.sess.mu.Lock()
	if !m.sess.closed {
		m.game.Reset(m.config)
	}
	m.sess.mu.Unlock()
	// gameState is picked up on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.Abandon()
		return m, tea.Quit
	}
	return m, nil
}

// Abandon ends the match as if the player quit: an unfinished run with a
// score is recorded and the game is closed. Safe to call from any
// goroutine and more than once.
func (m Model) Abandon() {
	m.sess.mu.Lock()
	defer m.sess.mu.Unlock()

	if m.sess.closed {
		return
	}
	m.sess.closed = true

	state := m.game.State()
	if !state.GameOver && state.Score > 0 && !m.sess.runSaved {
		m.saveRun(state, storage.OutcomeQuit)
	}
	m.game.Close()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	m.sess.mu.Lock()
	defer m.sess.mu.Unlock()

	m.screen.Resize(msg.Width, msg.Height)
	if m.sess.closed {
		return m, nil
	}
	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sess.mu.Lock()
	defer m.sess.mu.Unlock()

	if m.quitting || m.sess.closed {
		return m, nil
	}

	// Restart only once the run is over
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.sess.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.sess.runSaved {
		outcome := storage.OutcomeGameOver
		if m.gameState.Cleared {
			outcome = storage.OutcomeCleared
		}
		m.saveRun(m.gameState, outcome)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records state as the current run. Callers hold sess.mu.
// Failures are logged and ignored.
func (m Model) saveRun(state core.GameState, outcome storage.Outcome) {
	m.sess.runSaved = true
	if state.Score > m.sess.highScore {
		m.sess.highScore = state.Score
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Score:   state.Score,
		LabMode: state.LabMode,
		Outcome: outcome,
		Ticks:   int64(state.Tick),
	})
	if err != nil {
		m.logger.Debug("save run failed", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Debug("run saved", "game", m.game.ID(), "score", state.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.sess.mu.Lock()
	m.game.Render(m.screen)
	text := m.screen.String()
	m.sess.mu.Unlock()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Debug("screenshot dir failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.logger.Debug("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.mu.Lock()
	defer m.sess.mu.Unlock()

	m.game.Render(m.screen)
	m.drawHighScore()

	return m.painter.Render(m.screen)
}

// drawHighScore puts the best recorded score on the HUD's top row when
// there is room beside the game's own score.
func (m Model) drawHighScore() {
	if m.screen.Width() < 60 || m.screen.Height() < 1 {
		return
	}
	best := max(m.sess.highScore, m.gameState.Score)
	m.screen.DrawTextColored(14, 0, fmt.Sprintf("HI %05d", best), core.ColorDarkGray)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // pointer steering
	)

	_, err := p.Run()
	return err
}
