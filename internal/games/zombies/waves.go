package zombies

// progress runs the wave controller: an empty field for longer than the
// clear delay starts the next level.
func (w *World) progress(dt float64) {
	if !w.cfg.Waves.Progression {
		return
	}
	if w.LiveZombies() > 0 || len(w.Bullets) > 0 {
		w.Wave.Clearing = 0
		return
	}
	w.Wave.Clearing += dt
	if w.Wave.Clearing > w.cfg.Waves.ClearDelay {
		w.advance()
	}
}

func (w *World) advance() {
	wc := w.cfg.Waves
	w.Wave.Level++
	w.Wave.Target = wc.TargetBase + wc.TargetPerLevel*w.Wave.Level
	w.Wave.Interval = max(wc.IntervalFloor, w.Wave.Interval-wc.IntervalStep)
	w.Wave.Clearing = 0
	w.Player.Ammo = min(wc.AmmoCap, w.Player.Ammo+wc.AmmoBonus)
}
