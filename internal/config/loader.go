package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakLab loads Breakout Lab configuration.
// Search order: customPath -> ~/.arcade/configs/breaklab.yaml -> ./configs/breaklab.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial YAML only overrides the
// keys it names.
func LoadBreakLab(customPath string) (BreakLabConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakLabConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeBreakLab(data)
		if err != nil {
			return BreakLabConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breaklab.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeBreakLab(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breaklab.yaml")); err == nil {
		if cfg, err := decodeBreakLab(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeBreakLab(defaultBreakLabYAML)
	if err != nil {
		return DefaultBreakLabConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeBreakLab(data []byte) (BreakLabConfig, error) {
	cfg := DefaultBreakLabConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakLabConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakLabConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c BreakLabConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.Canvas.Width:
		return fmt.Errorf("paddle width %g out of range", c.Paddle.Width)
	case c.PowerUps.MaxPaddleWidth < c.Paddle.Width:
		return fmt.Errorf("max paddle width %g below base width %g", c.PowerUps.MaxPaddleWidth, c.Paddle.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball radius must be positive")
	case c.Ball.BaseSpeed <= 0 || c.Ball.MaxSpeed < c.Ball.BaseSpeed:
		return fmt.Errorf("ball speed range [%g, %g] invalid", c.Ball.BaseSpeed, c.Ball.MaxSpeed)
	case c.Bricks.Rows < 0 || c.Bricks.Cols < 0:
		return fmt.Errorf("brick grid %dx%d invalid", c.Bricks.Rows, c.Bricks.Cols)
	case c.Lab.MinIntervalMs <= 0 || c.Lab.MaxIntervalMs <= c.Lab.MinIntervalMs:
		return fmt.Errorf("mutation interval [%d, %d) invalid", c.Lab.MinIntervalMs, c.Lab.MaxIntervalMs)
	case c.Lab.RegenChance < 0 || c.Lab.RegenChance > 1:
		return fmt.Errorf("regen chance %g outside [0, 1]", c.Lab.RegenChance)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("lives must be positive")
	}
	return nil
}

// ApplyBreakLabPreset modifies the config based on a difficulty preset.
// Normal keeps the file values.
func ApplyBreakLabPreset(cfg *BreakLabConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 120
		cfg.Ball.BaseSpeed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.BaseSpeed = 6
	}
	if cfg.PowerUps.MaxPaddleWidth < cfg.Paddle.Width {
		cfg.PowerUps.MaxPaddleWidth = cfg.Paddle.Width
	}
	if cfg.Ball.MaxSpeed < cfg.Ball.BaseSpeed {
		cfg.Ball.MaxSpeed = cfg.Ball.BaseSpeed
	}
}
