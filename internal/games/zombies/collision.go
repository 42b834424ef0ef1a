package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// resolveHits lets each live zombie take at most one bullet per frame and
// each bullet hit at most one zombie.
func (w *World) resolveHits() {
	for _, z := range w.Zombies {
		if !z.Alive() {
			continue
		}
		for _, b := range w.Bullets {
			if b.spent {
				continue
			}
			if z.Pos.Dist(b.Pos) >= z.Radius+b.Radius {
				continue
			}
			b.spent = true
			z.HP--
			if z.HP <= 0 {
				w.kill(z)
			}
			break
		}
	}
}

func (w *World) kill(z *Zombie) {
	z.State = ZombieDead
	z.DeadFor = 0
	z.Cooldown = 0
	w.Score += w.cfg.Zombies.KillScore
	w.emit(core.CueKill)
}

// resolveContact charges attacking zombies and hurts the player when a
// charge completes.
func (w *World) resolveContact(dt float64) {
	for _, z := range w.Zombies {
		if z.State != ZombieAttacking {
			continue
		}
		z.Cooldown += dt
		if z.Cooldown >= w.cfg.Zombies.AttackInterval {
			z.Cooldown = 0
			w.Player.HP = max(0, w.Player.HP-w.cfg.Zombies.AttackDamage)
			w.emit(core.CueAttack)
		}
	}
}
