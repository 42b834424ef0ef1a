package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// Controls is the per-frame input the simulation consumes, already
// translated into playfield space.
type Controls struct {
	Move        core.Vec2 // Raw direction from held movement keys, not normalized
	Aim         core.Vec2 // Pointer position in playfield pixels
	FirePressed bool      // Fire went down this frame
	FireHeld    bool      // Fire is held
	Restart     bool
}

// MoveFrom builds the raw movement vector from held directions.
func MoveFrom(up, down, left, right bool) core.Vec2 {
	var v core.Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v
}
