package zombies

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

// Glyphs used on the terminal field.
const (
	PlayerChar     = '@'
	BulletChar     = '•'
	ZombieChar     = 'Z'
	DeadZombieChar = 'x'
	AimChar        = '·'
	HealthFull     = '█'
	HealthEmpty    = '░'
)

const healthBarWidth = 10

// Game adapts a World to the arcade platform.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	layout  layout
	paused  bool

	aim            core.Vec2
	screenTooSmall bool
}

// New creates a new Zombie Shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zombies"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Shooter"
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _ := LoadConfig(runtime)
	g.world = NewWorld(cfg, core.NewRandom(runtime.Seed))
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Playfield.Width, cfg.Playfield.Height)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.paused = false
	g.aim = g.world.Player.Pos.Add(core.V(1, 0))
}

// LoadConfig resolves the shooter config for a runtime: the YAML lookup
// chain, then the difficulty preset. On a load error the defaults are
// returned along with the error.
func LoadConfig(runtime core.RuntimeConfig) (config.ZombiesConfig, error) {
	cfg, err := config.LoadZombies(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultZombiesConfig()
	}
	if preset := config.ParsePreset(runtime.Difficulty); preset != "" {
		config.ApplyZombiesPreset(&cfg, preset)
	}
	return cfg, err
}

// World exposes the simulation, mainly for tests.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Elapsed.Seconds()
	if dt <= 0 {
		dt = g.runtime.FrameDuration().Seconds()
	}

	cues := g.world.Step(dt, g.controls(in))
	return core.StepResult{
		State: g.State(),
		Cues:  append([]core.Cue(nil), cues...),
	}
}

// controls translates an input frame into playfield controls. Without a
// pointer the player keeps aiming where it last faced.
func (g *Game) controls(in core.InputFrame) Controls {
	held := func(a core.Action) bool { return in.IsHeld(a) || in.Has(a) }

	if in.Pointer.Known {
		g.aim = g.layout.toField(in.Pointer.X, in.Pointer.Y)
	} else {
		p := g.world.Player
		g.aim = p.Pos.Add(core.V(math.Cos(p.Angle), math.Sin(p.Angle)))
	}

	return Controls{
		Move:        MoveFrom(held(core.ActionUp), held(core.ActionDown), held(core.ActionLeft), held(core.ActionRight)),
		Aim:         g.aim,
		FirePressed: in.Pointer.Pressed || in.Has(core.ActionFire),
		FireHeld:    in.Pointer.Down || in.IsHeld(core.ActionFire),
		Restart:     in.Has(core.ActionConfirm) || in.Has(core.ActionRestart),
	}
}

// Render draws the field, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColored(g.layout.frame, core.ColorGray)
	g.renderAim(dst)
	g.renderZombies(dst)
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.world.Snapshot()

	x := 1
	x += dst.DrawText(x, 0, fmt.Sprintf("Score: %d  Level: %d  HP ", snap.Score, snap.Level))

	filled := 0
	if snap.MaxHP > 0 {
		filled = snap.HP * healthBarWidth / snap.MaxHP
	}
	for i := range healthBarWidth {
		if i < filled {
			dst.SetColored(x+i, 0, HealthFull, core.ColorGreen)
		} else {
			dst.SetColored(x+i, 0, HealthEmpty, core.ColorRed)
		}
	}
	x += healthBarWidth
	dst.DrawText(x, 0, fmt.Sprintf(" %d/%d", snap.HP, snap.MaxHP))

	ammo := fmt.Sprintf("Ammo: %d", snap.Ammo)
	color := core.ColorDefault
	if snap.Ammo == 0 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-core.TextWidth(ammo)-1, 0, ammo, color)
}

// renderAim draws a faint line from the player to the aim point.
func (g *Game) renderAim(dst *core.Screen) {
	if g.world.Over() {
		return
	}
	px, py := g.layout.toCell(g.world.Player.Pos)
	ax, ay := g.layout.toCell(g.aim)
	steps := max(abs(ax-px), abs(ay-py))
	for i := 1; i < steps; i++ {
		x := px + (ax-px)*i/steps
		y := py + (ay-py)*i/steps
		if g.layout.visible(x, y) {
			dst.SetColored(x, y, AimChar, core.ColorGray)
		}
	}
}

func (g *Game) renderZombies(dst *core.Screen) {
	// Dead first so live zombies draw on top.
	for _, dead := range []bool{true, false} {
		for _, z := range g.world.Zombies {
			if z.Alive() == dead {
				continue
			}
			x, y := g.layout.toCell(z.Pos)
			if !g.layout.visible(x, y) {
				continue
			}
			switch z.State {
			case ZombieDead:
				dst.SetColored(x, y, DeadZombieChar, core.ColorDarkRed)
			case ZombieAttacking:
				dst.SetColored(x, y, ZombieChar, core.ColorBrightGreen)
			default:
				dst.SetColored(x, y, ZombieChar, core.ColorGreen)
			}
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.world.Bullets {
		x, y := g.layout.toCell(b.Pos)
		if g.layout.visible(x, y) {
			dst.SetColored(x, y, BulletChar, core.ColorOrange)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.layout.toCell(g.world.Player.Pos)
	dst.SetColored(x, y, PlayerChar, core.ColorBrown)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.world.Over():
		g.drawCenteredBox(dst, "GAME OVER", core.ColorRed,
			fmt.Sprintf("Final Score: %d", g.world.Score),
			"Press ENTER or R to restart")
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", core.ColorYellow, "Press P to resume")
	case g.world.Wave.Clearing > 0 && g.world.LiveZombies() == 0:
		dst.DrawTextCenteredColored(g.layout.frame.Bottom()-1,
			fmt.Sprintf(" Wave %d cleared ", g.world.Wave.Level), core.ColorBrightYellow)
	}
}

// drawCenteredBox draws a bordered message box in the middle of the field.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, color core.Color, lines ...string) {
	boxW := core.TextWidth(title)
	for _, l := range lines {
		boxW = max(boxW, core.TextWidth(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-core.TextWidth(title))/2, box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-core.TextWidth(l))/2, box.Y+3+i, l)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.Over(),
		Paused:   g.paused,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func init() {
	registry.Register("zombies", func() registry.Game {
		return New()
	})
}
