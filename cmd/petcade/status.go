package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/pet"
	"github.com/pixelbeasts/petcade/internal/save"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the pet's current state",
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	store := save.NewStore(flagSavePath)
	doc, result := store.Load()
	if result.UsedDefaults() {
		fmt.Printf("(no save found: %s)\n\n", result.Reason)
	}

	if doc.HasEgg {
		fmt.Println("You have an unhatched egg.")
		fmt.Println("Run 'petcade name <name>' or open 'petcade' to hatch it.")
		fmt.Printf("\nBalance: $%d\n", doc.Money)
		return
	}

	resolved := pet.Resolve(pet.DefaultGraph, doc.CurrentPetType, doc.CurrentEvolutionStage)
	fmt.Printf("%s the %s (stage %d)\n", doc.PetName, resolved, doc.CurrentEvolutionStage)

	switch {
	case doc.IsPetDead:
		fmt.Println("Status: deceased. Run 'petcade reset' to start over.")
	case doc.IsPetSick:
		fmt.Println("Status: sick")
	case doc.IsPetSleeping:
		fmt.Println("Status: sleeping")
	default:
		fmt.Println("Status: awake")
	}

	fmt.Println()
	for _, name := range []string{save.StatHunger, save.StatHappiness, save.StatHealth, save.StatRest, save.StatExperience} {
		s := doc.StoredStats[name]
		fmt.Printf("  %-12s %3d/%d\n", name, s.Value, s.Max)
	}

	fmt.Printf("\nBalance: $%d\n", doc.Money)

	unlocked := 0
	for _, owned := range doc.PurchasedGames {
		if owned {
			unlocked++
		}
	}
	fmt.Printf("Games unlocked: %d/%d\n", unlocked, len(save.KnownGames))

	if !doc.LastSaveTime.IsZero() {
		fmt.Printf("Last saved: %s\n", doc.LastSaveTime.Format("2006-01-02 15:04:05"))
	}
}
