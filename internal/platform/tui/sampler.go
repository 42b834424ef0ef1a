package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tri-arcade/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or repeat. Terminals report presses only, never releases, so
// key repeat keeps the window open while the key is down.
const DefaultHoldWindow = 150 * time.Millisecond

// Sampler folds Bubble Tea key and mouse messages into one input frame per
// simulation tick.
type Sampler struct {
	keys    *KeyMapper
	hold    time.Duration
	pressed map[core.Action]bool
	until   map[core.Action]time.Time
	pointer core.Pointer
	last    time.Time
}

// NewSampler creates a sampler with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewSampler(hold time.Duration) *Sampler {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Sampler{
		keys:    NewKeyMapper(),
		hold:    hold,
		pressed: make(map[core.Action]bool),
		until:   make(map[core.Action]time.Time),
	}
}

// Key records a key press at the given time.
// Returns the mapped action and whether it was a quit request.
func (s *Sampler) Key(msg tea.KeyMsg, at time.Time) (core.Action, bool) {
	action, quit := s.keys.MapKey(msg)
	if quit || action == core.ActionNone {
		return action, quit
	}
	s.Press(action, at)
	return action, false
}

// Press records an action directly, as if its key had been pressed.
// A fire repeat inside the hold window only extends the hold: the trigger
// is already down and auto fire paces the shots.
func (s *Sampler) Press(a core.Action, at time.Time) {
	if a == core.ActionFire && s.heldAt(a, at) {
		s.until[a] = at.Add(s.hold)
		return
	}
	s.pressed[a] = true
	if !isHoldable(a) {
		return
	}
	// Pressing a direction releases its opposite at once.
	if opp, ok := opposite(a); ok {
		delete(s.until, opp)
	}
	s.until[a] = at.Add(s.hold)
}

// Mouse records a mouse event. Coordinates are screen cells.
func (s *Sampler) Mouse(msg tea.MouseMsg) {
	s.pointer.X = float64(msg.X) + 0.5
	s.pointer.Y = float64(msg.Y) + 0.5
	s.pointer.Known = true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if !s.pointer.Down {
			s.pointer.Pressed = true
		}
		s.pointer.Down = true
	case tea.MouseActionRelease:
		// Legacy mouse encodings release without naming the button.
		s.pointer.Down = false
	}
}

// Frame returns the input for a tick at now and resets edge-triggered state.
// Elapsed is zero for the first frame.
func (s *Sampler) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range s.pressed {
		frame.Set(a)
	}
	for a, until := range s.until {
		if now.Before(until) {
			frame.Hold(a)
		} else {
			delete(s.until, a)
		}
	}
	frame.Pointer = s.pointer
	if !s.last.IsZero() {
		frame.Elapsed = now.Sub(s.last)
	}
	s.last = now

	clear(s.pressed)
	s.pointer.Pressed = false
	return frame
}

// Reset drops all pending input and restarts frame timing.
func (s *Sampler) Reset() {
	clear(s.pressed)
	clear(s.until)
	s.pointer.Down = false
	s.pointer.Pressed = false
	s.last = time.Time{}
}

func (s *Sampler) heldAt(a core.Action, at time.Time) bool {
	until, ok := s.until[a]
	return ok && at.Before(until)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}
