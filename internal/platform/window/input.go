// Package window runs the zombie shooter in a desktop window.
//
// The window build needs the gui build tag (go build -tags gui) because
// ebiten links against the platform's graphics stack. Without the tag Run
// reports that the window is unavailable.
package window

import (
	"errors"
	"time"

	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/games/zombies"
	"github.com/vovakirdan/tri-arcade/internal/storage"
)

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("window: not available in this build, rebuild with: go build -tags gui")

// Options configures a window run.
type Options struct {
	Runtime core.RuntimeConfig // Seed, ConfigPath and Difficulty are used
	Cues    core.CuePlayer     // May be nil
	Store   *storage.Store     // May be nil
	Scale   float64            // Window size multiplier, 1 when zero
}

// keyState is one frame of raw window input. A window, unlike a terminal,
// reports real key-up events, so held keys need no hold window.
type keyState struct {
	Up, Down, Left, Right bool
	Fire                  bool // Space held
	FireJust              bool // Space went down this frame
	MouseDown             bool
	MouseJust             bool
	Restart               bool // Enter or R went down this frame
	CursorX, CursorY      int  // Logical playfield pixels
}

// controls converts raw window input into simulation controls.
func (k keyState) controls() zombies.Controls {
	return zombies.Controls{
		Move:        zombies.MoveFrom(k.Up, k.Down, k.Left, k.Right),
		Aim:         core.V(float64(k.CursorX), float64(k.CursorY)),
		FirePressed: k.MouseJust || k.FireJust,
		FireHeld:    k.MouseDown || k.Fire,
		Restart:     k.Restart,
	}
}

// frameClock measures wall-clock time between updates.
type frameClock struct {
	last time.Time
}

// delta returns seconds since the previous call. The first call returns
// fallback, so the opening frame advances by one nominal tick.
func (c *frameClock) delta(now time.Time, fallback float64) float64 {
	if c.last.IsZero() {
		c.last = now
		return fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// scoreKeeper saves each finished run exactly once.
type scoreKeeper struct {
	store *storage.Store
	saved bool
}

// observe records the world's state after a step and reports whether a
// score was written.
func (s *scoreKeeper) observe(w *zombies.World) (bool, error) {
	if !w.Over() {
		s.saved = false
		return false, nil
	}
	if s.saved {
		return false, nil
	}
	s.saved = true
	if s.store == nil || w.Score <= 0 {
		return false, nil
	}
	if _, err := s.store.SaveScore("zombies", w.Score); err != nil {
		return false, err
	}
	return true, nil
}
