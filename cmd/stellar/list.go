package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stellar-defender/internal/registry"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long: `Shows every Stellar Defender mode that can be played or served, with the
number of recorded games and the best score of each.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Without a database the stat columns show dashes.
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-28s  %5s  %6s\n", maxIDLen, "ID", "Title", "Games", "Best")
	fmt.Printf("  %-*s  %-28s  %5s  %6s\n", maxIDLen, "--", "-----", "-----", "----")
	for _, m := range modes {
		games, best := "-", "-"
		if st, ok := stats[m.ID]; ok {
			games, best = fmt.Sprint(st.GamesCount), fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-28s  %5s  %6s\n", maxIDLen, m.ID, m.Title, games, best)
	}

	fmt.Println()
	fmt.Println("Run 'stellar play <id>' or 'stellar window <id>' to play.")
}
