package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	got, err := LoadZombies("")
	if err != nil {
		t.Fatalf("LoadZombies() failed: %v", err)
	}
	want := DefaultZombiesConfig()
	if got != want {
		t.Errorf("embedded zombies.yaml drifted from DefaultZombiesConfig:\n got %+v\nwant %+v", got, want)
	}

	rps, err := LoadRPS("")
	if err != nil {
		t.Fatalf("LoadRPS() failed: %v", err)
	}
	for _, outcome := range []string{"win", "lose", "tie"} {
		if n := len(rps.Reactions[outcome]); n != 3 {
			t.Errorf("reactions[%s] has %d entries, want 3", outcome, n)
		}
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z.yaml")
	data := []byte("player:\n  speed: 300\nwaves:\n  ammo_cap: 99\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadZombies(path)
	if err != nil {
		t.Fatalf("LoadZombies() failed: %v", err)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, want 300", cfg.Player.Speed)
	}
	if cfg.Waves.AmmoCap != 99 {
		t.Errorf("Waves.AmmoCap = %d, want 99", cfg.Waves.AmmoCap)
	}
	if cfg.Player.Radius != 16 {
		t.Errorf("unset key should keep default, Player.Radius = %v", cfg.Player.Radius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTicTacToe(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("cpu_delay: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTicTacToe(bad); err == nil {
		t.Error("expected error for malformed explicit config")
	}
}

func TestLoadProjectConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "rps.yaml"), []byte("difficulty: hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRPS("")
	if err != nil {
		t.Fatalf("LoadRPS() failed: %v", err)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard", cfg.Difficulty)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		maxHealth int
		progress  bool
	}{
		{DifficultyEasy, 150, true},
		{DifficultyNormal, 100, true},
		{DifficultyHard, 70, true},
		{DifficultyFixed, 100, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultZombiesConfig()
			ApplyZombiesPreset(&cfg, tt.preset)
			if cfg.Player.MaxHealth != tt.maxHealth {
				t.Errorf("MaxHealth = %d, want %d", cfg.Player.MaxHealth, tt.maxHealth)
			}
			if cfg.Waves.Progression != tt.progress {
				t.Errorf("Progression = %v, want %v", cfg.Waves.Progression, tt.progress)
			}
		})
	}

	rps := DefaultRPSConfig()
	ApplyRPSPreset(&rps, DifficultyHard)
	if rps.Difficulty != "hard" {
		t.Errorf("rps Difficulty = %q, want hard", rps.Difficulty)
	}
	ApplyRPSPreset(&rps, DifficultyFixed)
	if rps.Difficulty != "hard" {
		t.Errorf("fixed preset should not touch rps difficulty, got %q", rps.Difficulty)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestLoadZombiesRejectsUnplayableConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "playfield:\n  width: 0\n"},
		{"negative height", "playfield:\n  height: -600\n"},
		{"zero frame cap", "playfield:\n  max_frame: 0\n"},
		{"zero spawn interval", "waves:\n  start_interval: 0\n"},
		{"no health", "player:\n  max_health: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "z.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadZombies(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if cfg != DefaultZombiesConfig() {
				t.Error("a rejected config should fall back to defaults")
			}
		})
	}
}

func TestInvalidProjectConfigIsSkipped(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "zombies.yaml"), []byte("playfield:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadZombies("")
	if err != nil {
		t.Fatalf("implicit config must not fail: %v", err)
	}
	if cfg.Playfield.Width != 800 {
		t.Errorf("Width = %v, want embedded default 800", cfg.Playfield.Width)
	}
}

func TestLoadTicTacToeRejectsNegativeDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.yaml")
	if err := os.WriteFile(path, []byte("cpu_delay: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTicTacToe(path); err == nil {
		t.Error("expected error for negative cpu_delay")
	}
}
