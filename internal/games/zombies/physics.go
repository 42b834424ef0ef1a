package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// movePlayer applies held movement and turns the player toward the aim.
func (w *World) movePlayer(dt float64, in Controls) {
	p := &w.Player
	p.Angle = in.Aim.Sub(p.Pos).Angle()

	dir := in.Move.Normalize()
	if dir.IsZero() {
		return
	}
	p.Pos = p.Pos.Add(dir.Scale(p.Speed * dt))
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, w.cfg.Playfield.Width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, w.cfg.Playfield.Height-p.Radius)
}

// moveBullets advances bullets and marks the expired or escaped ones.
func (w *World) moveBullets(dt float64) {
	slack := w.cfg.Bullets.OffscreenSlack
	width, height := w.cfg.Playfield.Width, w.cfg.Playfield.Height
	for _, b := range w.Bullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Life -= dt
		if b.Life <= 0 ||
			b.Pos.X < -slack || b.Pos.X > width+slack ||
			b.Pos.Y < -slack || b.Pos.Y > height+slack {
			b.spent = true
		}
	}
}

// moveZombies walks live zombies toward the player, stops the ones in
// contact range and ages the dead.
func (w *World) moveZombies(dt float64) {
	for _, z := range w.Zombies {
		if !z.Alive() {
			z.DeadFor += dt
			if z.DeadFor > w.cfg.Zombies.DeadDuration {
				z.gone = true
			}
			continue
		}

		toPlayer := w.Player.Pos.Sub(z.Pos)
		if toPlayer.Len() < w.contactRange(z) {
			z.State = ZombieAttacking
			continue
		}
		z.State = ZombieWalking
		z.Pos = z.Pos.Add(toPlayer.Normalize().Scale(z.Speed * dt))
	}
}

func (w *World) contactRange(z *Zombie) float64 {
	return z.Radius + w.Player.Radius + w.cfg.Zombies.ContactMargin
}
