// breakout-lab is a terminal Breakout with optional rule mutations.
//
// Usage:
//
//	breakout-lab play            - Play in this terminal
//	breakout-lab serve           - Start SSH server for remote play
//	breakout-lab scores          - Show recorded runs
//	breakout-lab config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/breaklab.db)
//	--verbose       - Log debug messages
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/breakout-lab/internal/games/breaklab"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout-lab",
	Short: "Breakout Lab - Breakout with mutating rules, in your terminal",
	Long: `Breakout Lab is a terminal Breakout. Lab mode rolls a random rule
mutation every few seconds: inverted controls, heavier ball gravity or a
regenerated brick.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the default configuration

Examples:
  breakout-lab play --lab
  breakout-lab play --difficulty hard --sound
  breakout-lab serve --ssh :2222
  breakout-lab scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/breaklab.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger. It writes to stderr so it never mixes
// with the alternate screen.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// checkFPS rejects tick rates the simulation cannot run at.
func checkFPS() error {
	if flagFPS < 1 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	return nil
}
