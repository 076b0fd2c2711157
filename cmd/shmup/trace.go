package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/games/shooter"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/registry"
)

var (
	flagTraceFrames   int
	flagTraceEvery    int
	flagTraceHold     string
	flagTraceRealtime bool
)

var traceCmd = &cobra.Command{
	Use:   "trace <game>",
	Short: "Run the frame loop headless and log entity motion",
	Long: `Run a prototype without a display for a fixed number of frames and
log the committed position and velocity of every entity.

--hold keeps buttons pressed for the whole run (e.g. "left", "right+a").
By default frames run as fast as possible; --realtime paces them at --fps.

Examples:
  shmup trace shooter --frames 175
  shmup trace shooter_twin --frames 600 --every 60
  shmup trace shooter --hold left --frames 80`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceFrames, "frames", 175, "Number of frames to commit")
	traceCmd.Flags().IntVar(&flagTraceEvery, "every", 1, "Log every Nth frame")
	traceCmd.Flags().StringVar(&flagTraceHold, "hold", "", "Buttons held during the run, joined by +")
	traceCmd.Flags().BoolVar(&flagTraceRealtime, "realtime", false, "Pace frames at --fps")
}

func runTrace(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustGameID(gameID)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: gameID})

	held, err := parseButtons(flagTraceHold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	host := hw.NewHost()
	if err := game.Init(host); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	host.Commit()

	var vblank hw.VBlank = hw.NoWait
	if flagTraceRealtime {
		ticker := hw.NewTickerVBlank(flagFPS)
		defer ticker.Stop()
		vblank = ticker
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	every := max(flagTraceEvery, 1)
	present := func(objects *hw.ObjectController) {
		n := objects.Commits() - 1 // Init's commit is frame zero
		if n%uint64(every) == 0 || n == uint64(flagTraceFrames) {
			logger.Info("frame", append([]any{"n", n}, entityFields(game, objects)...)...)
		}
		if n >= uint64(flagTraceFrames) {
			cancel()
		}
	}

	logger.Info("start", append([]any{"held", held}, entityFields(game, host.Objects)...)...)
	err = hw.Run(ctx, host, game, hw.Held(held), vblank, present)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// entityFields lists the committed x and the velocity of every entity.
func entityFields(game registry.Game, objects *hw.ObjectController) []any {
	sg, ok := game.(*shooter.Game)
	if !ok {
		return nil
	}

	var fields []any
	enemies := 0
	for _, e := range sg.Entities() {
		attr, _ := objects.Committed(e.Object)
		switch e.Kind {
		case shooter.KindPlayer:
			fields = append(fields, "player", attr.X)
		case shooter.KindEnemy:
			enemies++
			fields = append(fields, fmt.Sprintf("enemy%d", enemies), fmt.Sprintf("%d v=%+d", attr.X, e.Velocity))
		}
	}
	return fields
}

// parseButtons reads a set like "left+a".
func parseButtons(s string) (core.Buttons, error) {
	var held core.Buttons
	if s == "" {
		return held, nil
	}
	for _, name := range strings.Split(s, "+") {
		btn, ok := core.ParseButton(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("unknown button %q", name)
		}
		held = held.With(btn)
	}
	return held, nil
}
