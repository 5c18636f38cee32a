package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringtrap/internal/platform/tui"
	"github.com/vovakirdan/ringtrap/internal/registry"
	"github.com/vovakirdan/ringtrap/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (Ring Escape by default).

Controls:
  +/=/Right  - Speed up
  -/Left     - Slow down
  R          - Reset the trap
  P/Space    - Pause
  Ctrl+S     - Save a screenshot to ~/.ringtrap/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wide erosion, slow ball
  normal - Classic erosion and speed
  hard   - Narrow erosion, fast ball
  fixed  - Use the config file values unchanged

Examples:
  ringtrap play
  ringtrap play ringescape --difficulty easy
  ringtrap play --seed 7 --fps 120
  ringtrap play --config ./my-rings.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'ringtrap list --plain' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
