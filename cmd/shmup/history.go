package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shmup/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recent play sessions",
	Long: `Display the most recent play sessions, optionally for one prototype.

Examples:
  shmup history
  shmup history shooter --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		mustGameID(gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}

	if gameID == "" {
		fmt.Println("Play history")
	} else {
		fmt.Printf("Play history - %s\n", gameID)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %8s  %8s  %s\n", "Date", "Game", "Frames", "Time", "User")
	fmt.Printf("  %-16s  %-12s  %8s  %8s  %s\n", "----", "----", "------", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %8d  %8s  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.GameID,
			s.Frames,
			s.Duration.Round(time.Second),
			s.User,
		)
	}

	if gameID == "" {
		return
	}
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %d  Frames: %d  Longest: %d\n", stats.Sessions, stats.TotalFrames, stats.MostFrames)
	}
}
