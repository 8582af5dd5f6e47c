package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/save"
	"github.com/pixelbeasts/petcade/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the game shop",
	Long: `List every game in the shop with its price and unlock state.

Examples:
  petcade shop
  petcade shop buy snake`,
	Run: runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <game>",
	Short: "Buy a game from the shop",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

func runShop(cmd *cobra.Command, args []string) {
	store := save.NewStore(flagSavePath)
	doc, _ := store.Load()

	fmt.Printf("Balance: $%d\n", doc.Money)
	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %-6s  %s\n", "ID", "Title", "Price", "Status")
	fmt.Printf("  %-12s  %-20s  %-6s  %s\n", "--", "-----", "-----", "------")

	for _, item := range shop.Catalog {
		status := "locked"
		if doc.PurchasedGames[item.GameID] {
			status = "unlocked"
		}
		price := fmt.Sprintf("$%d", item.Price)
		if item.Price == 0 {
			price = "free"
		}
		fmt.Printf("  %-12s  %-20s  %-6s  %s\n", item.GameID, item.Title, price, status)
	}

	fmt.Println()
	fmt.Println("Run 'petcade shop buy <id>' to unlock a game.")
}

func runShopBuy(cmd *cobra.Command, args []string) {
	gameID := args[0]

	item, ok := shop.Find(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	engine, _, cleanup, err := newEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if engine.PurchasedGames()[gameID] {
		fmt.Printf("%s is already unlocked.\n", item.Title)
		return
	}

	if !engine.BuyGame(gameID) {
		fmt.Fprintf(os.Stderr, "Error: not enough money (need $%d, have $%d)\n", item.Price, engine.Money())
		os.Exit(1)
	}

	fmt.Printf("Unlocked %s for $%d. Balance: $%d\n", item.Title, item.Price, engine.Money())
}
