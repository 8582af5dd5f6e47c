package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/save"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save and start over",
	Long: `Delete the save file and start over with a fresh egg. Everything is
lost: the pet, its stats, the balance and the game unlocks. The play
ledger is kept.`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	store := save.NewStore(flagSavePath)
	doc, result := store.Load()

	if !flagResetYes {
		if result.UsedDefaults() {
			fmt.Println("No save found; nothing to reset.")
			return
		}
		fmt.Printf("This deletes %s and everything in it (pet %q, $%d).\n", store.Path(), doc.PetName, doc.Money)
		fmt.Print("Type 'yes' to continue: ")

		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	if !store.Delete() {
		fmt.Fprintf(os.Stderr, "Error: could not delete %s\n", store.Path())
		os.Exit(1)
	}

	fmt.Println("Save deleted. A new egg is waiting next time you run 'petcade'.")
}
