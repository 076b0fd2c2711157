// shmup runs the handheld shoot-em-up prototypes on a desktop.
//
// Usage:
//
//	shmup list               - List available prototypes
//	shmup play <game>        - Play a prototype in the terminal
//	shmup menu               - Start menu to pick prototypes interactively
//	shmup window <game>      - Play a prototype in a pixel window
//	shmup serve              - Start SSH server for remote play
//	shmup trace <game>       - Run the frame loop headless and log it
//	shmup history [game]     - Show recent play sessions
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--config <path>  - Use a custom prototype config
//	--db <path>      - Set database path (default: ~/.shmup/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shmup/internal/games/shooter"
	"github.com/vovakirdan/shmup/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shmup",
	Short: "shmup - handheld shoot-em-up prototypes",
	Long: `shmup runs two shoot-em-up prototypes written against a 240x160
handheld: a ship steered along the bottom of the screen and aliens
bouncing between the screen edges.

Available commands:
  list     - Show all prototypes
  play     - Play a prototype in the terminal
  menu     - Interactive prototype picker
  window   - Play in a scaled pixel window
  serve    - Start SSH server for remote play
  trace    - Run headless and log every frame
  history  - View play history

Examples:
  shmup list
  shmup play shooter
  shmup window shooter_twin --scale 4
  shmup trace shooter --frames 175
  shmup serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		shooter.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom prototype config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shmup/history.db", "Path to play history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(historyCmd)
}

// localUser names the player in the play history.
func localUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// mustGameID exits when id is not a registered prototype.
func mustGameID(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'shmup list' to see available games.")
		os.Exit(1)
	}
}
