package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-arcade/internal/platform/tui"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

var flagVsCPU bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Zombie Shooter:
  W/A/S/D, arrows  - Move
  Mouse            - Aim
  Click, Space     - Fire (hold for auto-fire)
  P                - Pause
  Enter/R          - Restart after game over

Rock Paper Scissors:
  1/2/3            - Rock, Paper, Scissors
  Left/Right+Enter - Pick with the cursor
  Tab              - Cycle difficulty
  E / T / M        - Emoji labels, light/dark theme, meme reactions
  R                - New session (best streak is kept)

Tic Tac Toe:
  1-9, mouse       - Place a mark
  Arrows+Enter     - Move the cursor and place
  N                - Rematch (keeps the tally)
  R                - Reset board and tally

Everywhere:
  Esc/B            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy, normal, hard - Shooter health/speed, RPS opponent, CPU think time
  fixed              - Shooter waves never advance

Examples:
  arcade play zombies
  arcade play zombies --difficulty hard
  arcade play rps --difficulty hard
  arcade play tictactoe --vs-cpu=false
  arcade play zombies --config ./my-zombies.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagVsCPU, "vs-cpu", true, "Tic Tac Toe: play against the CPU (false = two players)")
}

// resolveGameID maps a game name and play flags to a registered game ID.
func resolveGameID(gameID string, vsCPU bool) string {
	if gameID == "tictactoe" && !vsCPU {
		return "tictactoe_duo"
	}
	return gameID
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := resolveGameID(args[0], flagVsCPU)

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := checkGameOptions(flagConfig, flagDifficulty, gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cues, closeAudio := newCuePlayer()
	defer closeAudio()

	_, err = tui.Run(game, store, cues, runtimeConfig())
	return err
}
