package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/platform/tui"
)

var petCmd = &cobra.Command{
	Use:   "pet",
	Short: "Open just the companion window",
	Long: `Open the pet companion window on its own, without the game menu.
Feed, play and cheer; quit with q.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, b, cleanup, err := newEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		stopDecay := engine.StartDecay(decayInterval)
		defer stopDecay()

		if err := tui.RunPet(b, engine.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
