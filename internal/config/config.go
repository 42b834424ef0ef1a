// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ZombiesConfig contains all configuration for the Zombie Shooter.
// Distances are in playfield pixels, times in seconds.
type ZombiesConfig struct {
	Playfield ZombiesPlayfield `yaml:"playfield"`
	Player    ZombiesPlayer    `yaml:"player"`
	Bullets   ZombiesBullets   `yaml:"bullets"`
	Zombies   ZombiesHorde     `yaml:"zombies"`
	Waves     ZombiesWaves     `yaml:"waves"`
}

// ZombiesPlayfield defines the simulated area and the frame clamp.
type ZombiesPlayfield struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxFrame float64 `yaml:"max_frame"` // Upper bound on a single frame's dt
}

// ZombiesPlayer defines player parameters.
type ZombiesPlayer struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"max_health"`
	StartAmmo int     `yaml:"start_ammo"`
}

// ZombiesBullets defines projectile parameters.
type ZombiesBullets struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	Lifetime       float64 `yaml:"lifetime"`
	OffscreenSlack float64 `yaml:"offscreen_slack"` // Distance past the edge before removal
	AutoFireEvery  float64 `yaml:"auto_fire_every"`
}

// ZombiesHorde defines zombie parameters.
type ZombiesHorde struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"`
	SpeedJitter    float64 `yaml:"speed_jitter"`
	SpawnMargin    float64 `yaml:"spawn_margin"`   // Distance outside the edge where zombies appear
	ContactMargin  float64 `yaml:"contact_margin"` // Added to the sum of radii for attack range
	AttackInterval float64 `yaml:"attack_interval"`
	AttackDamage   int     `yaml:"attack_damage"`
	DeadDuration   float64 `yaml:"dead_duration"`
	KillScore      int     `yaml:"kill_score"`
}

// ZombiesWaves defines level progression.
type ZombiesWaves struct {
	Progression    bool    `yaml:"progression"` // false freezes the level
	StartTarget    int     `yaml:"start_target"`
	StartInterval  float64 `yaml:"start_interval"`
	TargetBase     int     `yaml:"target_base"`
	TargetPerLevel int     `yaml:"target_per_level"`
	IntervalStep   float64 `yaml:"interval_step"`
	IntervalFloor  float64 `yaml:"interval_floor"`
	ClearDelay     float64 `yaml:"clear_delay"`
	AmmoBonus      int     `yaml:"ammo_bonus"`
	AmmoCap        int     `yaml:"ammo_cap"`
}

// Validate reports settings the simulation cannot run with: a playfield
// without area, a zero frame cap, or timers that would never tick.
func (c ZombiesConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"playfield.max_frame", c.Playfield.MaxFrame},
		{"player.max_health", float64(c.Player.MaxHealth)},
		{"bullets.speed", c.Bullets.Speed},
		{"bullets.lifetime", c.Bullets.Lifetime},
		{"zombies.attack_interval", c.Zombies.AttackInterval},
		{"waves.start_interval", c.Waves.StartInterval},
		{"waves.interval_floor", c.Waves.IntervalFloor},
	}
	var errs []error
	for _, ch := range checks {
		if ch.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", ch.name, ch.value))
		}
	}
	return errors.Join(errs...)
}

// RPSConfig contains configuration for Rock Paper Scissors.
type RPSConfig struct {
	Difficulty string              `yaml:"difficulty"` // easy, normal, hard
	Emoji      bool                `yaml:"emoji"`
	Theme      string              `yaml:"theme"` // light or dark
	Memes      bool                `yaml:"memes"`
	Reactions  map[string][]string `yaml:"reactions"` // outcome -> reaction lines
}

// TicTacToeConfig contains configuration for Tic Tac Toe.
type TicTacToeConfig struct {
	CPUDelay float64 `yaml:"cpu_delay"` // Seconds the CPU "thinks" before moving
}

// Validate rejects a negative CPU delay.
func (c TicTacToeConfig) Validate() error {
	if c.CPUDelay < 0 {
		return fmt.Errorf("cpu_delay must not be negative, got %v", c.CPUDelay)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyZombiesPreset modifies the config based on a difficulty preset.
// Normal leaves the defaults untouched.
func ApplyZombiesPreset(cfg *ZombiesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.Zombies.BaseSpeed *= 0.8
		cfg.Zombies.AttackDamage = max(1, cfg.Zombies.AttackDamage*3/4)
	case DifficultyHard:
		cfg.Player.MaxHealth = 70
		cfg.Zombies.BaseSpeed *= 1.25
		cfg.Waves.StartInterval *= 0.75
	case DifficultyFixed:
		cfg.Waves.Progression = false
	}
}

// ApplyRPSPreset sets the opponent difficulty from a preset.
// Fixed keeps whatever the config file says.
func ApplyRPSPreset(cfg *RPSConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty = string(preset)
	}
}

// ApplyTicTacToePreset adjusts how long the CPU waits before moving.
func ApplyTicTacToePreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.CPUDelay = 1.0
	case DifficultyHard:
		cfg.CPUDelay = 0.15
	}
}
