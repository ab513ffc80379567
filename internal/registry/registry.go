// Package registry maps game IDs to factories.
// Games register themselves in init() so the CLI and SSH server can build
// them by name without importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/breakout-lab/internal/core"
)

// Game is the contract between a simulation and the terminal platform.
// Implementations hold no terminal or Bubble Tea state: the platform maps
// keys and mouse events to an InputFrame, drives Step at a fixed rate and
// hands over a cleared Screen for Render.
type Game interface {
	// ID returns the stable identifier used for CLI lookup and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset (re)initializes the match for the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, lives and terminal flags.
	State() core.GameState

	// Close stops background timers and detaches outputs.
	// Safe to call more than once.
	Close()
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	titles[id] = g.Title()
	g.Close()

	factories[id] = f
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
