package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

//go:embed defaults/rps.yaml
var defaultRPSYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultZombiesConfig returns the built-in Zombie Shooter configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Playfield: ZombiesPlayfield{
			Width:    800,
			Height:   600,
			MaxFrame: 0.05,
		},
		Player: ZombiesPlayer{
			Radius:    16,
			Speed:     220,
			MaxHealth: 100,
			StartAmmo: 30,
		},
		Bullets: ZombiesBullets{
			Speed:          600,
			Radius:         5,
			Lifetime:       1.8,
			OffscreenSlack: 50,
			AutoFireEvery:  0.18,
		},
		Zombies: ZombiesHorde{
			Radius:         18,
			BaseSpeed:      40,
			SpeedPerLevel:  8,
			SpeedJitter:    20,
			SpawnMargin:    30,
			ContactMargin:  6,
			AttackInterval: 0.45,
			AttackDamage:   8,
			DeadDuration:   1.0,
			KillScore:      10,
		},
		Waves: ZombiesWaves{
			Progression:    true,
			StartTarget:    5,
			StartInterval:  0.8,
			TargetBase:     4,
			TargetPerLevel: 2,
			IntervalStep:   0.03,
			IntervalFloor:  0.35,
			ClearDelay:     1.1,
			AmmoBonus:      10,
			AmmoCap:        60,
		},
	}
}

// DefaultRPSConfig returns the built-in Rock Paper Scissors configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{
		Difficulty: "easy",
		Theme:      "dark",
		Reactions: map[string][]string{
			"win":  {"\\(^o^)/  FLAWLESS"},
			"lose": {"(╯°□°)╯︵ ┻━┻"},
			"tie":  {"(・_・;)  great minds..."},
		},
	}
}

// DefaultTicTacToeConfig returns the built-in Tic Tac Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{CPUDelay: 0.4}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "zombies":
		return defaultZombiesYAML
	case "rps":
		return defaultRPSYAML
	case "tictactoe":
		return defaultTicTacToeYAML
	default:
		return nil
	}
}
