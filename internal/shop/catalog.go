// Package shop defines the catalog of purchasable minigames. Purchases
// themselves are executed by the engine so money deduction and unlock
// flags stay on the single canonical document.
package shop

// Item is one purchasable minigame.
type Item struct {
	GameID string
	Title  string
	Price  int
}

// Catalog lists every game the shop sells, in display order. The starter
// game is listed at price 0 so the shop view can show it as owned.
var Catalog = []Item{
	{GameID: "slots", Title: "Lucky Slots", Price: 0},
	{GameID: "snake", Title: "Garden Snake", Price: 50},
	{GameID: "memory", Title: "Memory Match", Price: 50},
	{GameID: "reaction", Title: "Stopwatch Hero", Price: 75},
	{GameID: "mathsolver", Title: "Math Sprint", Price: 75},
	{GameID: "simon", Title: "Simon Says", Price: 100},
	{GameID: "hurdles", Title: "Hurdle Dash", Price: 125},
	{GameID: "catch", Title: "Snack Catch", Price: 150},
}

// Find returns the catalog item for a game id.
func Find(gameID string) (Item, bool) {
	for _, item := range Catalog {
		if item.GameID == gameID {
			return item, true
		}
	}
	return Item{}, false
}
