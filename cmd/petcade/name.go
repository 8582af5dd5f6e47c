package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/save"
)

var nameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Name your pet",
	Long: `Set the pet's name. Naming an unhatched egg hatches it.

Names are 1-20 printable characters.`,
	Args: cobra.ExactArgs(1),
	Run:  runName,
}

func runName(cmd *cobra.Command, args []string) {
	name := args[0]

	if !save.ValidPetName(name) {
		fmt.Fprintf(os.Stderr, "Error: invalid pet name %q\n", name)
		os.Exit(1)
	}

	engine, _, cleanup, err := newEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	hadEgg := engine.Document().HasEgg
	if !engine.SetName(name) {
		fmt.Fprintf(os.Stderr, "Error: could not set pet name %q\n", name)
		os.Exit(1)
	}

	if hadEgg {
		fmt.Printf("The egg hatched! Say hello to %s.\n", name)
		return
	}
	fmt.Printf("Your pet is now called %s.\n", name)
}
