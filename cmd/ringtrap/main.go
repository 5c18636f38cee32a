// ringtrap runs the ring escape simulation and its game catalog in the
// terminal.
//
// Usage:
//
//	ringtrap list              - Show the game catalog as cards
//	ringtrap play [game]       - Play a game (default: ringescape)
//	ringtrap menu              - Pick games interactively
//	ringtrap serve             - Start SSH server for remote play
//	ringtrap scores [game]     - Show the fastest escapes
//	ringtrap config [game]     - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.ringtrap/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--catalog <dir>       - Catalog directory (default: built-in)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringtrap/internal/config"
	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/games/ringescape"
)

const defaultGame = ringescape.GameID

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCatalog    string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringtrap",
	Short: "Ring Escape - watch a ball wear its way out of a ring trap",
	Long: `ringtrap is a terminal arcade built around Ring Escape: a ball bounces
inside concentric rings, erodes every ring it touches, and escapes once it
breaks through the outer wall.

Available commands:
  list     - Show the game catalog
  play     - Play a game directly
  menu     - Interactive game picker
  serve    - Start SSH server for remote play
  scores   - View the fastest escapes
  config   - Print the default game config

Examples:
  ringtrap play
  ringtrap play --difficulty hard --seed 42
  ringtrap list --search physics
  ringtrap serve --ssh :2222
  ringtrap scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ringtrap/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog directory with games-list.{yaml,json} (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the root logger and validates game settings before any
// command runs, so a bad config fails loudly instead of silently falling
// back to defaults.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "ringtrap",
	})

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadRingEscape(flagConfig); err != nil {
			return err
		}
	}

	ringescape.SetLogger(logger)
	ringescape.SetConfigPath(flagConfig)
	ringescape.SetDifficultyPreset(flagDifficulty)
	logger.Debug("game settings", "config", flagConfig, "difficulty", flagDifficulty, "seed", flagSeed, "fps", flagFPS)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the game runtime from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
