package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by configs with constraints beyond their YAML shape.
type validator interface {
	Validate() error
}

func validate(cfg any) error {
	if v, ok := cfg.(validator); ok {
		return v.Validate()
	}
	return nil
}

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<file> -> ./configs/<file> -> embedded default.
// Only an explicit customPath can produce an error; the implicit locations
// are skipped when missing, unparsable or invalid.
func load[T any](file, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return fallback(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", file)}
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// LoadZombies loads the Zombie Shooter configuration.
// Keys missing from a file keep their built-in defaults.
func LoadZombies(customPath string) (ZombiesConfig, error) {
	return load("zombies.yaml", customPath, defaultZombiesYAML, DefaultZombiesConfig)
}

// LoadRPS loads the Rock Paper Scissors configuration.
func LoadRPS(customPath string) (RPSConfig, error) {
	return load("rps.yaml", customPath, defaultRPSYAML, DefaultRPSConfig)
}

// LoadTicTacToe loads the Tic Tac Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load("tictactoe.yaml", customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
