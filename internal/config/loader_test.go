package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeBreakLab(defaultBreakLabYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultBreakLabConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakLabConfig:\n got %+v\nwant %+v", cfg, DefaultBreakLabConfig())
	}
}

func TestLoadBreakLabCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	data := []byte("gameplay:\n  lives: 7\nlab:\n  regen_chance: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakLab(path)
	if err != nil {
		t.Fatalf("LoadBreakLab: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Lab.RegenChance != 0.5 {
		t.Errorf("regen chance = %g, want 0.5", cfg.Lab.RegenChance)
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("unset keys should keep defaults, paddle width = %g", cfg.Paddle.Width)
	}
}

func TestLoadBreakLabErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakLab(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball:\n  base_speed: 10\n  max_speed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakLab(bad); err == nil {
		t.Error("expected validation error for inverted speed range")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("canvas: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakLab(garbage); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyBreakLabPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		width     float64
		baseSpeed float64
	}{
		{DifficultyEasy, 5, 120, 4},
		{DifficultyNormal, 3, 100, 5},
		{DifficultyHard, 2, 80, 6},
		{"", 3, 100, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakLabConfig()
			ApplyBreakLabPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Paddle.Width != tt.width {
				t.Errorf("paddle width = %g, want %g", cfg.Paddle.Width, tt.width)
			}
			if cfg.Ball.BaseSpeed != tt.baseSpeed {
				t.Errorf("base speed = %g, want %g", cfg.Ball.BaseSpeed, tt.baseSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if got := ParseDifficultyPreset("hard"); got != DifficultyHard {
		t.Errorf("got %q, want hard", got)
	}
	if got := ParseDifficultyPreset("nightmare"); got != "" {
		t.Errorf("unknown preset should be empty, got %q", got)
	}
}
