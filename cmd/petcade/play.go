package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/platform/tui"
	"github.com/pixelbeasts/petcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a minigame",
	Long: `Start the specified minigame in its own window. Winnings go to
your pet when the session resolves; quitting mid-session forfeits them.

Controls:
  Arrows/WASD  - Move
  Space        - Primary action (spin, stop, flip, jump)
  Enter        - Start / confirm
  R            - Play again (after a session resolves)
  Q/Ctrl+C     - Quit

Examples:
  petcade play slots
  petcade play reaction --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'petcade list' to see available games.")
		os.Exit(1)
	}

	engine, b, cleanup, err := newEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if !engine.PurchasedGames()[gameID] {
		fmt.Fprintf(os.Stderr, "Error: %q is not unlocked yet\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'petcade shop' to see prices and 'petcade shop buy' to unlock it.")
		os.Exit(1)
	}

	session, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := termSize()
	cfg := core.SessionConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.RunSession(session, b, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
