package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows the games in the arcade and the play options each one takes.
Variants of a game, such as two-player Tic Tac Toe, are listed under it.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		writeGameList(os.Stdout, registry.List())
	},
}

// gameOptions describes the play flags each game understands.
var gameOptions = map[string]string{
	"zombies":   "--difficulty easy|normal|hard|fixed; also 'arcade window'",
	"rps":       "--difficulty easy|normal|hard picks the opponent",
	"tictactoe": "--vs-cpu=false for two players on one keyboard",
}

// variantOf maps registered variant IDs to the game they are played as.
var variantOf = map[string]string{
	"tictactoe_duo": "tictactoe",
}

func writeGameList(w io.Writer, games []registry.GameInfo) {
	shown := make([]registry.GameInfo, 0, len(games))
	for _, g := range games {
		if _, ok := variantOf[g.ID]; ok {
			continue
		}
		shown = append(shown, g)
	}
	if len(shown) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range shown {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Options")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-------")
	for _, g := range shown {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, gameOptions[g.ID])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game, or 'arcade menu' to pick one.")
}
