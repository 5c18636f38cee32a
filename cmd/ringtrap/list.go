package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringtrap/internal/catalog"
	"github.com/vovakirdan/ringtrap/internal/registry"
)

var (
	flagSearch string
	flagPlain  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the game catalog",
	Long: `Shows the game catalog as cards: featured games first, then one
section per category. Catalog entries whose play target is arcade:<id>
can be started with 'ringtrap play <id>'.

Examples:
  ringtrap list
  ringtrap list --search physics
  ringtrap list --catalog ./portfolio
  ringtrap list --plain`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagSearch, "search", "", "Only show games whose title, description or tags match")
	listCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print registered games as a plain table")
}

func runList(_ *cobra.Command, _ []string) error {
	if flagPlain {
		printRegistered()
		return nil
	}

	cat, err := catalog.Open(flagCatalog, logger)
	if err != nil {
		return err
	}

	width, _ := terminalSize()

	if flagSearch != "" {
		found := cat.Filter(flagSearch)
		if len(found) == 0 {
			fmt.Printf("No games match %q.\n", flagSearch)
			return nil
		}
		fmt.Println(catalog.RenderSection(fmt.Sprintf("Results for %q", flagSearch), found, width))
		return nil
	}

	if cat.Len() == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}
	fmt.Println(catalog.RenderCatalog(cat, width))
	return nil
}

// printRegistered lists the games this binary can run.
func printRegistered() {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'ringtrap play <id>' to play a game.")
}
