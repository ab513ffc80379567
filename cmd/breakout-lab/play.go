package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-lab/internal/config"
	"github.com/vovakirdan/breakout-lab/internal/core"
	"github.com/vovakirdan/breakout-lab/internal/games/breaklab"
	"github.com/vovakirdan/breakout-lab/internal/platform/sound"
	"github.com/vovakirdan/breakout-lab/internal/platform/tui"
	"github.com/vovakirdan/breakout-lab/internal/registry"
	"github.com/vovakirdan/breakout-lab/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLab        bool
	flagTimer      bool
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout Lab",
	Long: `Start a game in this terminal.

Controls:
  Left/A, Right/D   - Move paddle (hold)
  Down/S/Space      - Stop paddle
  Mouse             - Paddle follows the pointer
  L                 - Toggle lab mode (rule mutations)
  T                 - Toggle mutation countdown
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slower ball
  normal - Values from the config file
  hard   - 2 lives, narrow paddle, faster ball

Examples:
  breakout-lab play
  breakout-lab play --lab --timer
  breakout-lab play --difficulty easy --sound
  breakout-lab play --config ./my-breaklab.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagLab, "lab", false, "Start with lab mode on")
	playCmd.Flags().BoolVar(&flagTimer, "timer", false, "Show the mutation countdown")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume in (0, 1]")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("breaklab")

	if err := checkFPS(); err != nil {
		return err
	}
	preset := config.ParseDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	// Surface config errors here; the game itself falls back to defaults.
	if _, err := config.LoadBreakLab(flagConfig); err != nil {
		return err
	}

	breaklab.Configure(breaklab.Settings{
		ConfigPath:    flagConfig,
		Difficulty:    preset,
		LabMode:       flagLab,
		ShowCountdown: flagTimer,
	})

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	game, err := registry.Create(breaklab.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagSound {
		player, sndErr := sound.New(sound.Options{Volume: flagVolume, Logger: logger})
		if sndErr != nil {
			logger.Warn("sound disabled", "error", sndErr)
		} else {
			defer player.Shutdown()
			if bg, ok := game.(*breaklab.Game); ok {
				bg.SetCueSink(player)
			}
		}
	}

	// Runs are not recorded without a database, the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing runs database", "error", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
