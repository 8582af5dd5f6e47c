package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/platform/tui"
	"github.com/pixelbeasts/petcade/internal/registry"
	"github.com/pixelbeasts/petcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Browse the play ledger",
	Long: `Without arguments, opens the interactive ledger browser. With a
game id, prints that game's aggregate statistics.

Examples:
  petcade scores
  petcade scores slots`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	ledger, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening play ledger: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	if len(args) == 0 {
		width, height := termSize()
		if err := tui.RunStats(ledger, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'petcade list' to see available games.")
		os.Exit(1)
	}

	stats, err := ledger.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if stats == nil || stats.SessionCount == 0 {
		fmt.Printf("No sessions recorded for %s yet.\n", gameID)
		return
	}

	fmt.Printf("Statistics - %s\n\n", gameID)
	fmt.Printf("  Sessions:     %d\n", stats.SessionCount)
	fmt.Printf("  Total earned: $%d\n", stats.TotalEarned)
	fmt.Printf("  Best session: $%d\n", stats.BestEarned)
	fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
