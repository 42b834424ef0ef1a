package zombies

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
)

const frame = 0.05

// quietWorld returns a world that neither spawns nor advances waves, so
// tests can place entities by hand.
func quietWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.DefaultZombiesConfig()
	cfg.Waves.StartTarget = 0
	cfg.Waves.Progression = false
	return NewWorld(cfg, core.NewSequence(0.5))
}

func idle(w *World) Controls {
	return Controls{Aim: w.Player.Pos.Add(core.V(100, 0))}
}

func countCues(cues []core.Cue, c core.Cue) int {
	n := 0
	for _, got := range cues {
		if got == c {
			n++
		}
	}
	return n
}

func TestPlayerStaysInBounds(t *testing.T) {
	dirs := []struct {
		name                  string
		up, down, left, right bool
	}{
		{"up-left", true, false, true, false},
		{"up-right", true, false, false, true},
		{"down-left", false, true, true, false},
		{"down-right", false, true, false, true},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			w := quietWorld(t)
			in := idle(w)
			in.Move = MoveFrom(d.up, d.down, d.left, d.right)
			for range 200 {
				w.Step(frame, in)
				p := w.Player
				if p.Pos.X < p.Radius || p.Pos.X > 800-p.Radius || p.Pos.Y < p.Radius || p.Pos.Y > 600-p.Radius {
					t.Fatalf("player left the field: %+v", p.Pos)
				}
			}
		})
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	w := quietWorld(t)
	start := w.Player.Pos
	in := idle(w)
	in.Move = MoveFrom(true, false, false, true)
	w.Step(frame, in)

	moved := w.Player.Pos.Dist(start)
	want := w.Player.Speed * frame
	if math.Abs(moved-want) > 1e-9 {
		t.Errorf("diagonal step moved %.4f, want %.4f", moved, want)
	}
}

func TestFrameDeltaIsClamped(t *testing.T) {
	w := quietWorld(t)
	start := w.Player.Pos
	in := idle(w)
	in.Move = MoveFrom(false, false, false, true)
	w.Step(2.0, in)

	if got, want := w.Player.Pos.X-start.X, w.Player.Speed*0.05; math.Abs(got-want) > 1e-9 {
		t.Errorf("long frame moved %.2f, want clamp to %.2f", got, want)
	}
}

func TestFacingFollowsAim(t *testing.T) {
	w := quietWorld(t)
	in := Controls{Aim: w.Player.Pos.Add(core.V(0, 50))}
	w.Step(frame, in)
	if math.Abs(w.Player.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("Angle = %f, want pi/2", w.Player.Angle)
	}
}

func TestOneHitPerBullet(t *testing.T) {
	w := quietWorld(t)
	at := core.V(100, 100)
	a := &Zombie{Pos: at, Radius: 18, HP: 3}
	b := &Zombie{Pos: at, Radius: 18, HP: 3}
	w.Zombies = []*Zombie{a, b}
	w.Bullets = []*Bullet{{Pos: at, Radius: 5, Life: 1}}

	w.Step(frame, idle(w))

	if total := a.HP + b.HP; total != 5 {
		t.Errorf("one bullet removed %d hp in total, want 1", 6-total)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullet should be consumed, %d left", len(w.Bullets))
	}
}

func TestOneBulletPerZombiePerFrame(t *testing.T) {
	w := quietWorld(t)
	at := core.V(100, 100)
	z := &Zombie{Pos: at, Radius: 18, HP: 3}
	w.Zombies = []*Zombie{z}
	w.Bullets = []*Bullet{
		{Pos: at, Radius: 5, Life: 1},
		{Pos: at, Radius: 5, Life: 1},
	}

	w.Step(frame, idle(w))

	if z.HP != 2 {
		t.Errorf("zombie HP = %d, want 2", z.HP)
	}
	if len(w.Bullets) != 1 {
		t.Errorf("%d bullets left, want 1", len(w.Bullets))
	}
}

func TestKillScoresTenAndCues(t *testing.T) {
	w := quietWorld(t)
	at := core.V(100, 100)
	z := &Zombie{Pos: at, Radius: 18, HP: 1}
	w.Zombies = []*Zombie{z}
	w.Bullets = []*Bullet{{Pos: at, Radius: 5, Life: 1}}

	cues := w.Step(frame, idle(w))

	if z.State != ZombieDead {
		t.Errorf("zombie state = %s, want dead", z.State)
	}
	if w.Score != 10 {
		t.Errorf("Score = %d, want 10", w.Score)
	}
	if countCues(cues, core.CueKill) != 1 {
		t.Errorf("cues = %v, want one kill", cues)
	}

	// Dead bodies linger, then vanish.
	for range 25 {
		w.Step(frame, idle(w))
	}
	if len(w.Zombies) != 0 {
		t.Errorf("dead zombie still present after dead duration")
	}
	if w.Score != 10 {
		t.Errorf("Score changed to %d after death", w.Score)
	}
}

func TestDeadZombiesIgnoreBullets(t *testing.T) {
	w := quietWorld(t)
	at := core.V(100, 100)
	w.Zombies = []*Zombie{{Pos: at, Radius: 18, State: ZombieDead}}
	w.Bullets = []*Bullet{{Pos: at, Radius: 5, Life: 1}}

	w.Step(frame, idle(w))

	if len(w.Bullets) != 1 {
		t.Error("bullet should pass through a corpse")
	}
}

func TestSimultaneousRemovals(t *testing.T) {
	w := quietWorld(t)
	at := core.V(100, 100)
	z := &Zombie{Pos: at, Radius: 18, HP: 1}
	w.Zombies = []*Zombie{z}
	w.Bullets = []*Bullet{
		{Pos: core.V(300, 300), Radius: 5, Life: 0.01}, // expires this frame
		{Pos: at, Radius: 5, Life: 1},                  // kills z
		{Pos: core.V(500, 300), Radius: 5, Life: 1},    // survives
	}

	w.Step(frame, idle(w))

	if z.State != ZombieDead {
		t.Error("zombie should be dead")
	}
	if len(w.Bullets) != 1 || w.Bullets[0].Pos != core.V(500, 300) {
		t.Errorf("bullets after frame = %d, want only the survivor", len(w.Bullets))
	}
}

func TestBulletLeavesField(t *testing.T) {
	w := quietWorld(t)
	w.Bullets = []*Bullet{{Pos: core.V(795, 300), Vel: core.V(600, 0), Radius: 5, Life: 1.8}}
	for range 2 {
		w.Step(frame, idle(w))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullet at x=%.0f should be gone", w.Bullets[0].Pos.X)
	}
}

func TestContactDamage(t *testing.T) {
	w := quietWorld(t)
	z := &Zombie{Pos: w.Player.Pos.Add(core.V(30, 0)), Radius: 18, Speed: 50, HP: 1}
	w.Zombies = []*Zombie{z}

	var cues []core.Cue
	for range 10 {
		cues = append(cues, w.Step(frame, idle(w))...)
	}

	if z.State != ZombieAttacking {
		t.Errorf("zombie state = %s, want attacking", z.State)
	}
	if w.Player.HP != 92 {
		t.Errorf("HP = %d, want 92", w.Player.HP)
	}
	if countCues(cues, core.CueAttack) != 1 || slices.Contains(cues, core.CueKill) {
		t.Errorf("cues = %v, want one attack and no kill", cues)
	}
}

func TestZombieWalksTowardPlayer(t *testing.T) {
	w := quietWorld(t)
	z := &Zombie{Pos: core.V(100, 300), Radius: 18, Speed: 40, HP: 1}
	w.Zombies = []*Zombie{z}
	before := z.Pos.Dist(w.Player.Pos)

	w.Step(frame, idle(w))

	if z.State != ZombieWalking {
		t.Errorf("state = %s, want walking", z.State)
	}
	if got := before - z.Pos.Dist(w.Player.Pos); math.Abs(got-40*frame) > 1e-9 {
		t.Errorf("closed %.3f px, want %.3f", got, 40*frame)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	w := quietWorld(t)
	w.Player.HP = 8
	z := &Zombie{Pos: w.Player.Pos.Add(core.V(20, 0)), Radius: 18, HP: 1, State: ZombieAttacking, Cooldown: 0.44}
	w.Zombies = []*Zombie{z}

	w.Step(frame, idle(w))
	if !w.Over() || w.Player.HP != 0 {
		t.Fatalf("Over = %v, HP = %d; want game over at 0", w.Over(), w.Player.HP)
	}

	before := w.Snapshot()
	in := idle(w)
	in.Move = MoveFrom(false, false, true, false)
	in.FirePressed = true
	for range 20 {
		if cues := w.Step(frame, in); len(cues) != 0 {
			t.Errorf("cues after game over: %v", cues)
		}
	}
	if w.Snapshot() != before {
		t.Error("world changed after game over")
	}
}

func TestRestartRoundTrip(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	w := NewWorld(cfg, core.NewRandom(7))

	in := Controls{Aim: core.V(0, 0), FireHeld: true, Move: MoveFrom(true, false, true, false)}
	for range 300 {
		w.Step(frame, in)
	}
	w.Score = 120
	w.Wave.Level = 4
	w.Player.HP = 0
	w.over = true

	w.Step(frame, Controls{Restart: true})

	s := w.Snapshot()
	if s.Score != 0 || s.Level != 1 || s.HP != 100 || s.Ammo != 30 || s.Bullets != 0 || s.Zombies != 0 || s.GameOver {
		t.Errorf("after restart: %+v", s)
	}
	if w.Player.Pos != core.V(400, 300) {
		t.Errorf("player at %+v, want centre", w.Player.Pos)
	}
}

func TestMusicFollowsTheRun(t *testing.T) {
	w := quietWorld(t)

	if cues := w.Step(frame, idle(w)); countCues(cues, core.CueMusicStart) != 1 {
		t.Fatalf("first frame cues = %v, want music start", cues)
	}
	if cues := w.Step(frame, idle(w)); countCues(cues, core.CueMusicStart) != 0 {
		t.Errorf("music restarted mid-run: %v", cues)
	}

	w.Player.HP = 0
	w.Zombies = nil
	if cues := w.Step(frame, idle(w)); countCues(cues, core.CueMusicStop) != 1 || !w.Over() {
		t.Fatalf("game over cues = %v, want music stop", cues)
	}

	w.Step(frame, Controls{Restart: true})
	if cues := w.Step(frame, idle(w)); countCues(cues, core.CueMusicStart) != 1 {
		t.Errorf("new run cues = %v, want music start", cues)
	}
}

func TestRestartReleasesEntities(t *testing.T) {
	w := quietWorld(t)
	w.Bullets = append(w.Bullets, &Bullet{Life: 1}, &Bullet{Life: 1})
	w.Zombies = append(w.Zombies, &Zombie{HP: 1}, &Zombie{HP: 1}, &Zombie{HP: 1})
	bullets := w.Bullets[:cap(w.Bullets)]
	zombies := w.Zombies[:cap(w.Zombies)]

	w.Restart()

	if len(w.Bullets) != 0 || len(w.Zombies) != 0 {
		t.Fatalf("restart left %d bullets, %d zombies", len(w.Bullets), len(w.Zombies))
	}
	for i, b := range bullets {
		if b != nil {
			t.Errorf("bullet slot %d still referenced after restart", i)
		}
	}
	for i, z := range zombies {
		if z != nil {
			t.Errorf("zombie slot %d still referenced after restart", i)
		}
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	w := quietWorld(t)
	w.Score = 50
	w.Step(frame, Controls{Restart: true})
	if w.Score != 50 {
		t.Error("restart must only apply after game over")
	}
}

func TestWaveAdvancesOnce(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	w := NewWorld(cfg, core.NewSequence(0.5))
	w.Player.Ammo = 55

	// 1.15s of empty field.
	for range 23 {
		w.progress(frame)
	}
	if w.Wave.Level != 2 {
		t.Fatalf("Level = %d, want 2", w.Wave.Level)
	}
	if w.Wave.Target != 8 {
		t.Errorf("Target = %d, want 8", w.Wave.Target)
	}
	if math.Abs(w.Wave.Interval-0.77) > 1e-9 {
		t.Errorf("Interval = %f, want 0.77", w.Wave.Interval)
	}
	if w.Player.Ammo != 60 {
		t.Errorf("Ammo = %d, want capped 60", w.Player.Ammo)
	}

	// One more second of clearing is not enough for another level.
	for range 20 {
		w.progress(frame)
	}
	if w.Wave.Level != 2 {
		t.Errorf("Level = %d, advanced twice", w.Wave.Level)
	}
}

func TestWaveCountdownResetsWhenActive(t *testing.T) {
	w := NewWorld(config.DefaultZombiesConfig(), core.NewSequence(0.5))
	for range 20 {
		w.progress(frame)
	}
	w.Zombies = []*Zombie{{Pos: core.V(-30, 0), Radius: 18, HP: 1}}
	w.progress(frame)
	if w.Wave.Clearing != 0 {
		t.Errorf("Clearing = %f, want reset", w.Wave.Clearing)
	}
	w.Zombies = nil
	for range 10 {
		w.progress(frame)
	}
	if w.Wave.Level != 1 {
		t.Error("level advanced on a stale countdown")
	}
}

func TestIntervalFloor(t *testing.T) {
	w := NewWorld(config.DefaultZombiesConfig(), core.NewSequence(0.5))
	for range 40 {
		w.advance()
	}
	if w.Wave.Interval != 0.35 {
		t.Errorf("Interval = %f, want floor 0.35", w.Wave.Interval)
	}
}

func TestSpawnerPlacementAndScaling(t *testing.T) {
	tests := []struct {
		name   string
		seq    []float64
		level  int
		pos    core.Vec2
		speed  float64
		health int
	}{
		{"left", []float64{0.0, 0.5, 0.5}, 1, core.V(-30, 300), 58, 1},
		{"right", []float64{0.25, 0.25, 0}, 2, core.V(830, 150), 56, 2},
		{"top", []float64{0.5, 0.5, 0.99}, 3, core.V(400, -30), 83.8, 2},
		{"bottom", []float64{0.75, 0.1, 0}, 4, core.V(80, 630), 72, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(config.DefaultZombiesConfig(), core.NewSequence(tt.seq...))
			w.Wave.Level = tt.level
			z := w.newZombie()
			if z.Pos.Dist(tt.pos) > 1e-9 {
				t.Errorf("Pos = %+v, want %+v", z.Pos, tt.pos)
			}
			if math.Abs(z.Speed-tt.speed) > 1e-9 {
				t.Errorf("Speed = %f, want %f", z.Speed, tt.speed)
			}
			if z.HP != tt.health {
				t.Errorf("HP = %d, want %d", z.HP, tt.health)
			}
		})
	}
}

func TestSpawnerScalingIsMonotonic(t *testing.T) {
	prevSpeed, prevHP := 0.0, 0
	for level := 1; level <= 12; level++ {
		w := NewWorld(config.DefaultZombiesConfig(), core.NewSequence(0.3, 0.3, 0.3))
		w.Wave.Level = level
		z := w.newZombie()
		if z.Speed < prevSpeed || z.HP < prevHP {
			t.Fatalf("level %d: speed %f hp %d below level %d", level, z.Speed, z.HP, level-1)
		}
		prevSpeed, prevHP = z.Speed, z.HP
	}
}

func TestSpawnerRespectsTargetAndInterval(t *testing.T) {
	w := NewWorld(config.DefaultZombiesConfig(), core.NewSequence(0.5))

	w.Step(frame, idle(w))
	if w.LiveZombies() != 1 {
		t.Fatalf("first frame should spawn, live = %d", w.LiveZombies())
	}
	// 0.8s interval: nothing new for the next 15 frames.
	for range 15 {
		w.Step(frame, idle(w))
	}
	if w.LiveZombies() != 1 {
		t.Errorf("spawned before interval, live = %d", w.LiveZombies())
	}
	for range 400 {
		w.Step(frame, idle(w))
		if w.LiveZombies() > w.Wave.Target {
			t.Fatalf("live %d exceeds target %d", w.LiveZombies(), w.Wave.Target)
		}
	}
}

func TestFireConsumesAmmo(t *testing.T) {
	w := quietWorld(t)
	in := idle(w)
	in.FirePressed = true
	cues := w.Step(frame, in)

	if w.Player.Ammo != 29 || len(w.Bullets) != 1 {
		t.Errorf("Ammo = %d, bullets = %d; want 29 and 1", w.Player.Ammo, len(w.Bullets))
	}
	if countCues(cues, core.CueShoot) != 1 {
		t.Errorf("cues = %v, want one shoot", cues)
	}
	if v := w.Bullets[0].Vel; math.Abs(v.Len()-600) > 1e-9 || v.X <= 0 {
		t.Errorf("bullet velocity = %+v, want 600 px/s toward aim", v)
	}
}

func TestNoAmmoNoShot(t *testing.T) {
	w := quietWorld(t)
	w.Player.Ammo = 0
	in := idle(w)
	in.FirePressed = true
	if cues := w.Step(frame, in); countCues(cues, core.CueShoot) != 0 || len(w.Bullets) != 0 {
		t.Errorf("fired without ammo: cues %v, bullets %d", cues, len(w.Bullets))
	}
}

func TestAutoFireRate(t *testing.T) {
	w := quietWorld(t)
	in := idle(w)
	in.FireHeld = true
	for range 20 {
		w.Step(frame, in)
	}
	// Shots at 0.05, 0.25, 0.45, 0.65 and 0.85s.
	if used := 30 - w.Player.Ammo; used != 5 {
		t.Errorf("held trigger fired %d times in 1s, want 5", used)
	}
}

func TestPressDoesNotDoubleFire(t *testing.T) {
	w := quietWorld(t)
	in := idle(w)
	in.FirePressed = true
	in.FireHeld = true
	w.Step(frame, in)
	if w.Player.Ammo != 29 {
		t.Errorf("Ammo = %d, a press with hold should fire once", w.Player.Ammo)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		w := NewWorld(config.DefaultZombiesConfig(), core.NewRandom(12345))
		for i := range 600 {
			in := Controls{
				Aim:      core.V(float64(i%800), float64((i*7)%600)),
				Move:     MoveFrom(i%40 < 20, i%40 >= 20, i%60 < 30, i%60 >= 30),
				FireHeld: i%3 == 0,
			}
			w.Step(1.0/60, in)
		}
		return w.Snapshot()
	}
	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}
