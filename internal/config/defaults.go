package config

import (
	_ "embed"
)

//go:embed defaults/breaklab.yaml
var defaultBreakLabYAML []byte

// DefaultBreakLabConfig returns the default Breakout Lab configuration.
// It mirrors defaults/breaklab.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakLabConfig() BreakLabConfig {
	return BreakLabConfig{
		Canvas: CanvasConfig{
			Width:  500,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       15,
			BottomOffset: 40,
			Speed:        7,
		},
		Ball: BallConfig{
			Radius:       10,
			BaseSpeed:    5,
			MaxSpeed:     9,
			Acceleration: 0.04,
			ServeOffset:  60,
		},
		Bricks: BrickConfig{
			Rows:    5,
			Cols:    7,
			Width:   60,
			Height:  20,
			Padding: 10,
			OffsetX: 30,
			OffsetY: 40,
		},
		PowerUps: PowerUpConfig{
			Size:             14,
			FallSpeed:        2,
			ExpandAmount:     40,
			MaxPaddleWidth:   180,
			ExpandDurationMs: 8000,
			SlowFactor:       0.7,
			SlowDurationMs:   6000,
		},
		Lab: LabConfig{
			MinIntervalMs:    4500,
			MaxIntervalMs:    7500,
			InvertDurationMs: 4000,
			GravityIncrement: 1,
			RegenChance:      0.25,
			GlitchMs:         580,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			RespawnDelayMs: 1200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breaklab":
		return defaultBreakLabYAML
	default:
		return nil
	}
}
