package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/platform/tui"
	"github.com/vovakirdan/shmup/internal/registry"
	"github.com/vovakirdan/shmup/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a prototype in the terminal",
	Long: `Start playing the specified prototype in the terminal.

The 240x160 display is drawn at 3x8 pixels per character, so the
terminal needs at least 80x22 cells.

Controls:
  Left/Right, A/D  - Move the ship
  Z/Space          - Fire (reserved)
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Esc, Q/Ctrl+C    - Quit

Examples:
  shmup play shooter
  shmup play shooter_twin --fps 30
  shmup play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	mustGameID(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, terminalConfig(), localUser())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
