package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - move up / cursor up
	ActionDown                // S, Down arrow - move down / cursor down
	ActionLeft                // A, Left arrow - move left / cursor left
	ActionRight               // D, Right arrow - move right / cursor right
	ActionFire                // Space - shoot
	ActionConfirm             // Enter - confirm, place, restart after game over
	ActionBack                // B, Escape - go back to menu
	ActionRestart             // R - restart the run / reset the board
	ActionRematch             // N - new round keeping the session tally
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P - pause/unpause game
	ActionCycle               // Tab - cycle a setting (difficulty)
	ActionToggleStyle         // E - toggle glyph style (emoji labels)
	ActionToggleTheme         // T - toggle light/dark theme
	ActionToggleExtras        // M - toggle reaction art

	actionSlotBase // 1..9 map to actionSlotBase+1..+9
)

// SlotAction returns the action for the numbered slot key n (1..9).
func SlotAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return actionSlotBase + Action(n)
}

// Slot returns the slot number for a slot action.
func (a Action) Slot() (int, bool) {
	if a > actionSlotBase && a <= actionSlotBase+9 {
		return int(a - actionSlotBase), true
	}
	return 0, false
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := a.Slot(); ok {
		return "Slot" + string(rune('0'+n))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionRematch:
		return "Rematch"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionCycle:
		return "Cycle"
	case ActionToggleStyle:
		return "ToggleStyle"
	case ActionToggleTheme:
		return "ToggleTheme"
	case ActionToggleExtras:
		return "ToggleExtras"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state in screen-cell coordinates. A cell's centre
// is at (x+0.5, y+0.5).
type Pointer struct {
	X, Y    float64
	Known   bool // At least one pointer event has been seen
	Down    bool // Primary button is held
	Pressed bool // Primary button went down since the previous frame
}

// InputFrame is the input snapshot consumed by one simulation frame.
type InputFrame struct {
	// Actions holds edge-triggered actions: keys pressed since the last frame.
	Actions map[Action]bool

	// Held holds level-triggered actions: keys considered held right now.
	Held map[Action]bool

	Pointer Pointer

	// Elapsed is the wall-clock time since the previous frame.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame. Pointer position is kept.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Pointer.Pressed = false
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Elapsed = f.Elapsed
	return clone
}
