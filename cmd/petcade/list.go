package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/registry"
	"github.com/pixelbeasts/petcade/internal/save"
	"github.com/pixelbeasts/petcade/internal/shop"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its shop price and unlock state.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store := save.NewStore(flagSavePath)
	doc, _ := store.Load()

	maxIDLen := 2
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Status")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		status := "locked"
		if doc.PurchasedGames[g.ID] {
			status = "unlocked"
		} else if item, ok := shop.Find(g.ID); ok {
			status = fmt.Sprintf("locked ($%d)", item.Price)
		}
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, status)
	}

	fmt.Println()
	fmt.Println("Run 'petcade play <id>' to play a game.")
}
