// Package zombies implements a top-down zombie shooter: one player in a
// fixed playfield fighting waves of zombies that walk in from the edges.
//
// The simulation lives in World and works in playfield pixels with float
// seconds. Game adapts it to the arcade platform and terminal cells.
package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// ZombieState is the lifecycle state of a zombie.
type ZombieState int

const (
	ZombieWalking ZombieState = iota
	ZombieAttacking
	ZombieDead
)

// String returns the state name.
func (s ZombieState) String() string {
	switch s {
	case ZombieWalking:
		return "walking"
	case ZombieAttacking:
		return "attacking"
	case ZombieDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the single controllable survivor.
type Player struct {
	Pos    core.Vec2
	Radius float64
	Speed  float64
	Angle  float64 // Facing, radians; aim display only
	HP     int
	MaxHP  int
	Ammo   int
}

// Bullet is a projectile in flight.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Life   float64 // Seconds left

	spent bool // Marked for removal this frame
}

// Zombie is one member of the horde.
type Zombie struct {
	Pos      core.Vec2
	Radius   float64
	Speed    float64
	HP       int
	State    ZombieState
	Cooldown float64 // Attack accumulator while in contact
	DeadFor  float64 // Seconds since death

	gone bool // Marked for removal this frame
}

// Alive reports whether the zombie still counts toward the wave.
func (z *Zombie) Alive() bool {
	return z.State != ZombieDead
}

// Wave is the level progression state.
type Wave struct {
	Level      int
	Target     int     // Live zombies the spawner tries to keep on the field
	Interval   float64 // Seconds between spawns
	SinceSpawn float64
	Clearing   float64 // Seconds the field has been empty
}
