// pong is a single-player Pong match against a computer-controlled paddle,
// playable in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	pong play                - Play in the terminal
//	pong play -f window      - Play in a desktop window
//	pong frontends           - List available frontends
//	pong serve               - Start SSH server for remote play
//	pong replays             - List recorded matches
//	pong replay <id>         - Re-simulate a recorded match
//	pong config              - Print the effective game constants
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible serves
//	--db <path>      - Set recordings database path (default: ~/.arcade/pong.db)
//	--config <path>  - Load game constants from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-pong/internal/platform/tui"
	_ "github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "pong",
	Short:   "Pong - one paddle against the computer",
	Version: core.Version,
	Long: `Pong is the classic two-paddle game: you control the left paddle,
the computer controls the right one. Serve, rally, and score when the
ball gets past the opponent.

Available commands:
  play       - Play a match
  frontends  - Show all available frontends
  serve      - Start SSH server for remote play
  replays    - List recorded matches
  replay     - Re-simulate a recorded match
  config     - Print the effective game constants

Examples:
  pong play
  pong play --frontend window --sound
  pong play --record --seed 42
  pong serve --ssh :2222
  pong replay 6f1c2a9e-...`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pong.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game constants YAML")

	// Add subcommands
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads game constants or exits with a readable error.
func loadConfig() config.PongConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
