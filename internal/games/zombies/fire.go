package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// fireControl rate-limits held-trigger auto fire on the simulation clock.
type fireControl struct {
	every    float64 // Minimum seconds between auto shots
	clock    float64 // Simulation time
	lastAuto float64
	fired    bool // lastAuto is meaningful
}

// tick advances the clock and reports how many shots the trigger asks for.
// A fresh press fires at once; holding fires when the auto interval has
// passed since the last auto shot.
func (f *fireControl) tick(dt float64, pressed, held bool) int {
	f.clock += dt
	shots := 0
	if pressed {
		shots++
	}
	if held && (!f.fired || f.clock-f.lastAuto > f.every) {
		f.lastAuto = f.clock
		f.fired = true
		if !pressed {
			shots++
		}
	}
	return shots
}

// fire spawns one bullet toward aim. It is a no-op without ammo or after
// game over.
func (w *World) fire(aim core.Vec2) bool {
	if w.over || w.Player.Ammo <= 0 {
		return false
	}
	dir := aim.Sub(w.Player.Pos).Normalize()
	if dir.IsZero() {
		dir = core.Vec2{X: 1}
	}
	w.Bullets = append(w.Bullets, &Bullet{
		Pos:    w.Player.Pos,
		Vel:    dir.Scale(w.cfg.Bullets.Speed),
		Radius: w.cfg.Bullets.Radius,
		Life:   w.cfg.Bullets.Lifetime,
	})
	w.Player.Ammo--
	w.emit(core.CueShoot)
	return true
}
