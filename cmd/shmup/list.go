package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shmup/internal/config"
	"github.com/vovakirdan/shmup/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available prototypes",
	Long: `Shows every registered prototype with the enemies its config spawns.
The config is resolved the same way 'play' resolves it, so --config and
~/.shmup/configs overrides are reflected.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No prototypes available.")
		return
	}

	fmt.Println(listTable(games, flagConfig))
	fmt.Println()
	fmt.Println("Run 'shmup play <id>' to play a prototype.")
}

// listTable renders one row per prototype. A config that fails to load
// is reported in its row instead of aborting the listing.
func listTable(games []registry.GameInfo, customPath string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Enemies", "Start (x:v)")

	for _, g := range games {
		cfg, err := config.Load(g.ID, customPath)
		if err != nil {
			t.Row(g.ID, g.Title, "-", "config error: "+err.Error())
			continue
		}
		starts := make([]string, len(cfg.Enemies))
		for i, e := range cfg.Enemies {
			starts[i] = fmt.Sprintf("%d:%+d", e.X, e.Velocity)
		}
		t.Row(g.ID, g.Title, strconv.Itoa(len(cfg.Enemies)), strings.Join(starts, " "))
	}
	return t.String()
}
