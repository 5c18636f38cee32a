package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringtrap/internal/registry"
	"github.com/vovakirdan/ringtrap/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the fastest escapes",
	Long: `Display the fastest recorded runs for a game (Ring Escape by default),
with aggregate statistics. Use --recent to list the latest runs instead.

Examples:
  ringtrap scores
  ringtrap scores --limit 25
  ringtrap scores --recent
  ringtrap scores ringescape --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the fastest")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'ringtrap list --plain' to see available games)", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", title)
		return nil
	}

	heading := "Fastest Escapes"
	query := store.FastestRuns
	if flagRecent {
		heading = "Recent Escapes"
		query = store.RecentRuns
	}

	runs, err := query(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No escapes recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ringtrap play %s' to set the first time!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-6s  %s\n", "Rank", "Ticks", "Eroded", "Bounces", "Speed", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-6s  %s\n", "----", "-----", "------", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7d  %-7d  x%-5.2f  %s\n",
			i+1, r.Ticks, r.Eroded, r.Bounces, r.Speed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f ticks  Eroded: %d segments\n",
			stats.Runs, stats.BestTicks, stats.AvgTicks, stats.TotalEroded)
	}
	return nil
}
