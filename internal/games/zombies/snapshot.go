package zombies

import "math"

// Snapshot is a flat view of a world for determinism checks and HUDs.
type Snapshot struct {
	Level    int
	Score    int
	HP       int
	MaxHP    int
	Ammo     int
	PlayerX  int // Rounded playfield pixels
	PlayerY  int
	Bullets  int
	Zombies  int
	Live     int
	GameOver bool
}

// Snapshot captures the world's current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Level:    w.Wave.Level,
		Score:    w.Score,
		HP:       w.Player.HP,
		MaxHP:    w.Player.MaxHP,
		Ammo:     w.Player.Ammo,
		PlayerX:  int(math.Round(w.Player.Pos.X)),
		PlayerY:  int(math.Round(w.Player.Pos.Y)),
		Bullets:  len(w.Bullets),
		Zombies:  len(w.Zombies),
		Live:     w.LiveZombies(),
		GameOver: w.over,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	for _, v := range []int{s.Level, s.Score, s.HP, s.MaxHP, s.Ammo, s.PlayerX, s.PlayerY, s.Bullets, s.Zombies, s.Live} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.GameOver {
		h = h*31 + 1
	}
	return h
}
