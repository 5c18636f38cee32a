package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringtrap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default game config",
	Long: `Print the built-in YAML config for a game (Ring Escape by default).
Save it, edit it, and pass it back with --config, or place it at
~/.ringtrap/configs/<game>.yaml to make it the default.

Examples:
  ringtrap config > my-rings.yaml
  ringtrap play --config my-rings.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no built-in config for %q", gameID)
	}

	_, err := os.Stdout.Write(data)
	return err
}
