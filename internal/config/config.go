// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// BreakLabConfig contains all configuration for the Breakout Lab game.
// Distances are in canvas units, speeds in canvas units per tick,
// durations in milliseconds.
type BreakLabConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Lab      LabConfig      `yaml:"lab"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// CanvasConfig defines the logical playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`         // Base width, restored when expand wears off
	Height       float64 `yaml:"height"`        //
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from canvas bottom to paddle top
	Speed        float64 `yaml:"speed"`         // Units per tick while a direction is held
}

// BallConfig defines ball physics.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"` // Added on every paddle hit
	ServeOffset  float64 `yaml:"serve_offset"` // Serve height above canvas bottom
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// PowerUpConfig defines falling power-ups and their effects.
type PowerUpConfig struct {
	Size             float64 `yaml:"size"`
	FallSpeed        float64 `yaml:"fall_speed"`
	ExpandAmount     float64 `yaml:"expand_amount"`
	MaxPaddleWidth   float64 `yaml:"max_paddle_width"`
	ExpandDurationMs int     `yaml:"expand_duration_ms"`
	SlowFactor       float64 `yaml:"slow_factor"`
	SlowDurationMs   int     `yaml:"slow_duration_ms"`
}

// LabConfig defines the lab-mode mutation scheduler.
type LabConfig struct {
	MinIntervalMs    int     `yaml:"min_interval_ms"`
	MaxIntervalMs    int     `yaml:"max_interval_ms"` // Exclusive
	InvertDurationMs int     `yaml:"invert_duration_ms"`
	GravityIncrement float64 `yaml:"gravity_increment"`
	RegenChance      float64 `yaml:"regen_chance"`
	GlitchMs         int     `yaml:"glitch_ms"`
}

// GameplayConfig defines lives and pacing.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`
	RespawnDelayMs int `yaml:"respawn_delay_ms"`
}

// ExpandDuration returns how long the expand power-up lasts.
func (c PowerUpConfig) ExpandDuration() time.Duration {
	return time.Duration(c.ExpandDurationMs) * time.Millisecond
}

// SlowDuration returns how long the slow power-up lasts.
func (c PowerUpConfig) SlowDuration() time.Duration {
	return time.Duration(c.SlowDurationMs) * time.Millisecond
}

// MinInterval returns the shortest time between two mutations.
func (c LabConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMs) * time.Millisecond
}

// MaxInterval returns the exclusive upper bound between two mutations.
func (c LabConfig) MaxInterval() time.Duration {
	return time.Duration(c.MaxIntervalMs) * time.Millisecond
}

// InvertDuration returns how long inverted controls last.
func (c LabConfig) InvertDuration() time.Duration {
	return time.Duration(c.InvertDurationMs) * time.Millisecond
}

// GlitchDuration returns how long the glitch flag stays up after a mutation.
func (c LabConfig) GlitchDuration() time.Duration {
	return time.Duration(c.GlitchMs) * time.Millisecond
}

// RespawnDelay returns the pause between losing a life and the next serve.
func (c GameplayConfig) RespawnDelay() time.Duration {
	return time.Duration(c.RespawnDelayMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI flag value to a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
