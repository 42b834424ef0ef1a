package zombies

import (
	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
)

// World is the complete mutable state of one run.
type World struct {
	Player  Player
	Bullets []*Bullet
	Zombies []*Zombie
	Wave    Wave
	Score   int

	cfg     config.ZombiesConfig
	rng     core.Random
	trigger fireControl
	over    bool
	music   bool // Music cue raised for this run

	cues []core.Cue
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.ZombiesConfig, rng core.Random) *World {
	w := &World{cfg: cfg, rng: rng}
	w.Restart()
	return w
}

// Restart puts every piece of state back to its starting value.
func (w *World) Restart() {
	p := w.cfg.Player
	w.Player = Player{
		Pos:    core.V(w.cfg.Playfield.Width/2, w.cfg.Playfield.Height/2),
		Radius: p.Radius,
		Speed:  p.Speed,
		HP:     p.MaxHealth,
		MaxHP:  p.MaxHealth,
		Ammo:   p.StartAmmo,
	}
	clear(w.Bullets)
	clear(w.Zombies)
	w.Bullets = w.Bullets[:0]
	w.Zombies = w.Zombies[:0]
	w.Wave = Wave{
		Level:    1,
		Target:   w.cfg.Waves.StartTarget,
		Interval: w.cfg.Waves.StartInterval,
		// The first zombie of a run arrives on the first frame.
		SinceSpawn: w.cfg.Waves.StartInterval,
	}
	w.Score = 0
	w.over = false
	w.music = false
	w.trigger = fireControl{every: w.cfg.Bullets.AutoFireEvery}
	w.cues = w.cues[:0]
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.ZombiesConfig {
	return w.cfg
}

// Over reports whether the run has ended.
func (w *World) Over() bool {
	return w.over
}

// LiveZombies counts zombies that are not dead.
func (w *World) LiveZombies() int {
	n := 0
	for _, z := range w.Zombies {
		if z.Alive() {
			n++
		}
	}
	return n
}

// Step advances the simulation by dt seconds and returns the cues raised.
// dt is clamped to the configured maximum frame. The returned slice is
// only valid until the next Step.
func (w *World) Step(dt float64, in Controls) []core.Cue {
	w.cues = w.cues[:0]

	if w.over {
		if in.Restart {
			w.Restart()
		}
		return w.cues
	}

	if !w.music {
		w.music = true
		w.emit(core.CueMusicStart)
	}
	dt = core.ClampF(dt, 0, w.cfg.Playfield.MaxFrame)

	w.movePlayer(dt, in)
	for range w.trigger.tick(dt, in.FirePressed, in.FireHeld) {
		w.fire(in.Aim)
	}
	w.moveBullets(dt)
	w.moveZombies(dt)

	w.resolveHits()
	w.resolveContact(dt)
	w.compact()
	if w.Player.HP <= 0 {
		w.Player.HP = 0
		w.over = true
		w.music = false
		w.emit(core.CueMusicStop)
		return w.cues
	}

	w.spawn(dt)
	w.progress(dt)
	return w.cues
}

func (w *World) emit(c core.Cue) {
	w.cues = append(w.cues, c)
}

// compact drops every bullet and zombie marked during this frame.
func (w *World) compact() {
	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if !b.spent {
			bullets = append(bullets, b)
		}
	}
	clear(w.Bullets[len(bullets):])
	w.Bullets = bullets

	zombies := w.Zombies[:0]
	for _, z := range w.Zombies {
		if !z.gone {
			zombies = append(zombies, z)
		}
	}
	clear(w.Zombies[len(zombies):])
	w.Zombies = zombies
}
