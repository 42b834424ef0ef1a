package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play the zombie shooter in a desktop window",
	Long: `Open the zombie shooter in a native window with real key-up
events and full mouse input. Needs a binary built with -tags gui.

Controls:
  W/A/S/D, arrows  - Move
  Mouse            - Aim
  Click, Space     - Fire (hold for auto-fire)
  P                - Pause
  Enter/R          - Restart after game over
  Esc              - Close

Examples:
  arcade window
  arcade window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := checkGameOptions(flagConfig, flagDifficulty, "zombies"); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cues, closeAudio := newCuePlayer()
	defer closeAudio()

	return window.Run(window.Options{
		Runtime: runtimeConfig(),
		Cues:    cues,
		Store:   store,
		Scale:   flagScale,
	})
}
