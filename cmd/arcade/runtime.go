package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tri-arcade/internal/audio"
	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
	"github.com/vovakirdan/tri-arcade/internal/storage"
)

// runtimeConfig builds the game runtime config from the global flags and
// the current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}

// configLoaders load a game's config from an explicit path.
var configLoaders = map[string]func(path string) error{
	"zombies": func(path string) error {
		_, err := config.LoadZombies(path)
		return err
	},
	"rps": func(path string) error {
		_, err := config.LoadRPS(path)
		return err
	},
	"tictactoe": func(path string) error {
		_, err := config.LoadTicTacToe(path)
		return err
	},
	"tictactoe_duo": func(path string) error {
		_, err := config.LoadTicTacToe(path)
		return err
	},
}

// checkGameOptions validates --difficulty and an explicit --config for the
// given games. Games fall back to defaults on a bad file, so it has to fail
// here, before the terminal is taken over.
func checkGameOptions(configPath, difficulty string, gameIDs ...string) error {
	if difficulty != "" && config.ParsePreset(difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	if configPath == "" {
		return nil
	}
	for _, id := range gameIDs {
		load, ok := configLoaders[id]
		if !ok {
			continue
		}
		if err := load(configPath); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return nil
}

// registeredIDs lists every game the menu can start.
func registeredIDs() []string {
	games := registry.List()
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}

// openStore opens the score database. The arcade still works without one,
// so a failure only logs a warning and returns nil.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, playing without persistence", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// closeStore closes a store opened by openStore.
func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("could not close scores database", "err", err)
	}
}

// newCuePlayer returns a sound player, or a silent one when sound is muted
// or the audio device cannot be opened.
func newCuePlayer() (core.CuePlayer, func()) {
	if flagMute {
		return core.MuteCues{}, func() {}
	}
	p := audio.NewPlayer(flagVolume)
	if err := p.Initialize(); err != nil {
		log.Debug("audio disabled", "err", err)
		return core.MuteCues{}, func() {}
	}
	return p, p.Close
}
