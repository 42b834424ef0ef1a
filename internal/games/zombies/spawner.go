package zombies

import (
	"math"

	"github.com/vovakirdan/tri-arcade/internal/core"
)

// Edges a zombie can enter from.
const (
	edgeLeft = iota
	edgeRight
	edgeTop
	edgeBottom
)

// spawn adds a zombie when the field is below target and the interval
// has passed.
func (w *World) spawn(dt float64) {
	w.Wave.SinceSpawn += dt
	if w.LiveZombies() >= w.Wave.Target || w.Wave.SinceSpawn <= w.Wave.Interval {
		return
	}
	w.Zombies = append(w.Zombies, w.newZombie())
	w.Wave.SinceSpawn = 0
}

// newZombie places a zombie just outside a random edge, scaled to the
// current level.
func (w *World) newZombie() *Zombie {
	zc := w.cfg.Zombies
	width, height := w.cfg.Playfield.Width, w.cfg.Playfield.Height
	m := zc.SpawnMargin

	var pos core.Vec2
	switch w.rng.Intn(4) {
	case edgeLeft:
		pos = core.V(-m, w.rng.Float64()*height)
	case edgeRight:
		pos = core.V(width+m, w.rng.Float64()*height)
	case edgeTop:
		pos = core.V(w.rng.Float64()*width, -m)
	default:
		pos = core.V(w.rng.Float64()*width, height+m)
	}

	level := float64(w.Wave.Level)
	return &Zombie{
		Pos:    pos,
		Radius: zc.Radius,
		Speed:  zc.BaseSpeed + level*zc.SpeedPerLevel + w.rng.Float64()*zc.SpeedJitter,
		HP:     1 + int(math.Floor(level/2)),
		State:  ZombieWalking,
	}
}
