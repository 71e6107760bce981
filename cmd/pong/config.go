package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game constants",
	Long: `Print the game constants as YAML, after the search order:
--config, ~/.arcade/configs/pong.yaml, ./configs/pong.yaml, built-in defaults.

Save the output to one of those paths to customize the game.

Examples:
  pong config > ~/.arcade/configs/pong.yaml
  pong config --config ./fast-ball.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
