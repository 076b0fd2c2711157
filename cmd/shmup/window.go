package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/platform/gfx"
	"github.com/vovakirdan/shmup/internal/registry"
	"github.com/vovakirdan/shmup/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a prototype in a pixel window",
	Long: `Open a desktop window showing the 240x160 display scaled up.

Controls:
  Left/Right, A/D  - Move the ship
  Z/Space          - Fire (reserved)
  F1               - Toggle frame counter
  Esc/Q            - Quit

Examples:
  shmup window shooter
  shmup window shooter_twin --scale 4`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale factor")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustGameID(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shmup",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Scale = flagScale

	runErr := gfx.Run(ctx, game, gfx.Options{
		Config: cfg,
		Store:  store,
		User:   localUser(),
		Logger: logger,
	})
	stop()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
