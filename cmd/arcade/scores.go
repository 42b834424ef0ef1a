package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-arcade/internal/registry"
	"github.com/vovakirdan/tri-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores, records and match history for a game",
	Long: `Display the top 10 high scores for the specified game, its personal
records (such as the rock-paper-scissors best streak) and, for tic-tac-toe,
the overall tally and the most recent matches.

Examples:
  arcade scores zombies
  arcade scores rps
  arcade scores tictactoe`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Unlike play, there is nothing to show without the database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	records, err := store.Records(gameID)
	if err != nil {
		return err
	}
	tally, err := store.Tally(gameID)
	if err != nil {
		return err
	}

	if len(scores) == 0 && len(records) == 0 && tally.Total == 0 {
		fmt.Println("Nothing recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return nil
	}

	if len(scores) > 0 {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	for _, r := range records {
		fmt.Printf("%s: %d\n", strings.ReplaceAll(r.Name, "_", " "), r.Value)
	}

	if tally.Total > 0 {
		fmt.Printf("Matches: %d  (X: %d  O: %d  Draws: %d)\n",
			tally.Total, tally.Outcomes["x"], tally.Outcomes["o"], tally.Outcomes["draw"])

		recent, err := store.RecentMatches(gameID, 5)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Recent:")
		for _, m := range recent {
			fmt.Printf("  %s  %-4s in %d moves\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Outcome, m.Moves)
		}
	}
	return nil
}
