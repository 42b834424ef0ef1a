// arcade is a terminal arcade hosting a zombie shooter, rock-paper-scissors
// and tic-tac-toe.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores, records and match history
//	arcade window            - Play the zombie shooter in a desktop window
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tri-arcade/internal/games/rps"
	_ "github.com/vovakirdan/tri-arcade/internal/games/tictactoe"
	_ "github.com/vovakirdan/tri-arcade/internal/games/zombies"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagVolume     float64
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tri-Arcade - a zombie shooter, rock-paper-scissors and tic-tac-toe in your terminal",
	Long: `Tri-Arcade is a terminal-based gaming platform with three games:

  zombies    - top-down zombie shooter (mouse to aim, click or space to fire)
  rps        - rock-paper-scissors against a CPU with three difficulty levels
  tictactoe  - tic-tac-toe against a random-move CPU or a friend

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores, records and match history
  window   - Zombie shooter in a desktop window (gui builds)

Examples:
  arcade list
  arcade play zombies
  arcade play rps --difficulty hard
  arcade play tictactoe --vs-cpu=false
  arcade menu
  arcade serve --ssh :2222
  arcade scores zombies`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(flagLogLevel)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(windowCmd)
}

// setupLogging configures the package-level logger. Logs go to stderr and
// stay out of the alt-screen game view.
func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetPrefix("arcade")
	log.SetReportTimestamp(lvl <= log.DebugLevel)
	return nil
}
