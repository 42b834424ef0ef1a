package zombies

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42, ConfigPath: "", Difficulty: ""})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("zombies") {
		t.Fatal("zombies not registered")
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t)
	in := core.NewInputFrame()
	in.Elapsed = 16 * time.Millisecond
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Level: 1", "Ammo: 30", string(PlayerChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newGame(t)
	g.world.Score = 70
	g.world.over = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Final Score: 70") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})
	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Error("tiny screen should not end the game")
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected size warning")
	}
}

func TestGameKeyboardMovement(t *testing.T) {
	g := newGame(t)
	start := g.world.Player.Pos

	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	in.Elapsed = 50 * time.Millisecond
	g.Step(in)

	if g.world.Player.Pos.X <= start.X {
		t.Errorf("held right did not move the player: %v -> %v", start, g.world.Player.Pos)
	}
}

func TestGamePointerFires(t *testing.T) {
	g := newGame(t)

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 70.5, Y: 12.5, Known: true, Down: true, Pressed: true}
	in.Elapsed = 16 * time.Millisecond
	res := g.Step(in)

	found := false
	for _, c := range res.Cues {
		if c == core.CueShoot {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, want shoot", res.Cues)
	}
	if len(g.world.Bullets) != 1 || g.world.Bullets[0].Vel.X <= 0 {
		t.Error("bullet should fly toward the pointer on the right")
	}
}

func TestGameSpaceFiresTowardFacing(t *testing.T) {
	g := newGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)
	if g.world.Player.Ammo != 29 {
		t.Errorf("Ammo = %d, want 29", g.world.Player.Ammo)
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.world.Snapshot()
	move := core.NewInputFrame()
	move.Hold(core.ActionLeft)
	g.Step(move)
	if g.world.Snapshot() != before {
		t.Error("world advanced while paused")
	}
}

func TestGameRestartKeys(t *testing.T) {
	for _, a := range []core.Action{core.ActionConfirm, core.ActionRestart} {
		t.Run(a.String(), func(t *testing.T) {
			g := newGame(t)
			g.world.Score = 30
			g.world.over = true

			in := core.NewInputFrame()
			in.Set(a)
			g.Step(in)

			if g.State().GameOver || g.State().Score != 0 {
				t.Errorf("State = %+v after restart", g.State())
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := newLayout(80, 24, 800, 600)
	cx, cy := l.toCell(core.V(400, 300))
	p := l.toField(float64(cx)+0.5, float64(cy)+0.5)
	if p.Dist(core.V(400, 300)) > 20 {
		t.Errorf("centre maps back to %+v", p)
	}
	if x, y := l.toCell(core.V(-30, 300)); l.visible(x, y) {
		t.Error("off-field point should not be visible")
	}
}
