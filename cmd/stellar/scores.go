package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stellar-defender/internal/platform/tui"
	"github.com/vovakirdan/stellar-defender/internal/registry"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

// scoresLimit is the number of entries the plain table shows.
const scoresLimit = 10

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode ("stellar" by default).

With --tui an interactive scoreboard opens instead, where Tab cycles modes
and D filters by device. --clear deletes every score of the mode.

Examples:
  stellar scores
  stellar scores stellar_practice
  stellar scores --tui
  stellar scores stellar_practice --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID, err := resolveMode(args)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Removed %d scores from %s.\n", n, gameID)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail("scoreboard: %v", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, scoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}
	printScores(os.Stdout, gameID, scores)

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Deepest wave: %d  Games: %d\n", stats.HighScore, stats.BestWave, stats.GamesCount)
	}
}

// printScores writes the plain high score table for gameID.
func printScores(w io.Writer, gameID string, scores []storage.ScoreEntry) {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'stellar play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %-8s  %s\n", "Rank", "Score", "Wave", "Device", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %-8s  %s\n", "----", "-----", "----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %-4d  %-8s  %s\n",
			i+1, entry.Score, entry.Wave, entry.Device, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}
