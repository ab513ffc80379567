package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-lab/internal/games/breaklab"
	"github.com/vovakirdan/breakout-lab/internal/platform/tui"
	"github.com/vovakirdan/breakout-lab/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs.

Examples:
  breakout-lab scores
  breakout-lab scores --limit 25
  breakout-lab scores --tui      # Interactive table with lab/classic filters
  breakout-lab scores --clear    # Delete all recorded runs`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(breaklab.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, breaklab.GameID, "Breakout Lab", flagFPS, width, height)
	}

	runs, err := store.TopRuns(breaklab.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Breakout Lab")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout-lab play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-9s  %s\n", "Rank", "Score", "Mode", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-9s  %s\n", "----", "-----", "----", "-------", "----")

	for i, r := range runs {
		mode := "classic"
		if r.LabMode {
			mode = "lab"
		}
		fmt.Printf("  %-4d  %-8d  %-7s  %-9s  %s\n",
			i+1, r.Score, mode, r.Outcome, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", runs[0].Score)
	return nil
}
