// petcade is a terminal virtual pet with a built-in minigame arcade.
//
// Usage:
//
//	petcade                  - Open the companion window (pet + menu + games)
//	petcade pet              - Open just the companion window
//	petcade play <game>      - Play one minigame directly
//	petcade list             - List available games
//	petcade shop             - List or buy games
//	petcade status           - Print the pet's current state
//	petcade name <name>      - Name the pet (hatches the egg)
//	petcade scores           - Browse the play ledger
//	petcade serve            - Start SSH server for remote visits
//	petcade reset            - Delete the save and start over
//
// Global flags:
//
//	--save <path>   - Save file path (default: ~/.petcade/save.json)
//	--db <path>     - Play ledger database path (default: ~/.petcade/ledger.db)
//	--config <path> - Custom tuning YAML
//	--fps <rate>    - Session tick rate (default: 30)
//	--seed <value>  - RNG seed for reproducible sessions
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/config"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/games/reaction"
	"github.com/pixelbeasts/petcade/internal/games/slots"
	"github.com/pixelbeasts/petcade/internal/pet"
	"github.com/pixelbeasts/petcade/internal/platform/tui"
	"github.com/pixelbeasts/petcade/internal/save"
	"github.com/pixelbeasts/petcade/internal/storage"

	// Import games to register them
	_ "github.com/pixelbeasts/petcade/internal/games/catch"
	_ "github.com/pixelbeasts/petcade/internal/games/hurdles"
	_ "github.com/pixelbeasts/petcade/internal/games/mathsolver"
	_ "github.com/pixelbeasts/petcade/internal/games/memory"
	_ "github.com/pixelbeasts/petcade/internal/games/simon"
	_ "github.com/pixelbeasts/petcade/internal/games/snake"
)

// decayInterval is how often passive stat decay runs while a window is
// open locally.
const decayInterval = time.Minute

var (
	// Global flags
	flagSavePath string
	flagDBPath   string
	flagConfig   string
	flagFPS      int
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "petcade",
	Short: "A virtual pet with a minigame arcade in your terminal",
	Long: `Petcade is a terminal virtual pet. Keep it fed, rested and happy,
earn money in the built-in minigames, and spend it on new games in
the shop. The pet evolves as it gains experience and everything is
saved between runs.

Examples:
  petcade                  # open the pet window
  petcade play slots
  petcade shop buy snake
  petcade serve --ssh :2222`,
	Run: runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.petcade/save.json", "Path to the save file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.petcade/ledger.db", "Path to the play ledger database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Session tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(petCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

// newEngine builds the shared engine stack: tuning, save store, bus,
// engine and the optional ledger. The caller owns the returned cleanup.
func newEngine() (*pet.Engine, *bus.Bus, func(), error) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot load config: %w", err)
	}

	slots.SetTuning(tuning.Slots)
	reaction.SetTuning(tuning.Reaction)

	b := bus.New()
	engine := pet.NewEngine(save.NewStore(flagSavePath), b, tuning.Pet)

	var ledger *storage.Ledger
	if l, ledgerErr := storage.Open(flagDBPath); ledgerErr == nil {
		ledger = l
		engine.SetLedger(l)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open play ledger: %v\n", ledgerErr)
	}

	engine.Start()

	cleanup := func() {
		b.Close()
		if ledger != nil {
			ledger.Close()
		}
	}
	return engine, b, cleanup, nil
}

// termSize returns the terminal dimensions, with defaults for pipes.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runApp(cmd *cobra.Command, args []string) {
	engine, b, cleanup, err := newEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	stopDecay := engine.StartDecay(decayInterval)
	defer stopDecay()

	width, height := termSize()
	cfg := core.SessionConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.RunApp(engine, b, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
