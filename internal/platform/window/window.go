//go:build gui

package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/games/zombies"
)

var (
	colorField    = color.White
	colorPlayer   = color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff} // brown
	colorBullet   = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff} // orange
	colorZombie   = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	colorAttacker = color.RGBA{R: 0x55, G: 0xaa, B: 0x00, A: 0xff}
	colorCorpse   = color.RGBA{R: 0x8b, G: 0x00, B: 0x00, A: 0xff} // darkred
	colorAim      = color.RGBA{A: 0x33}
	colorHPBack   = color.RGBA{R: 0xff, A: 0xff}
	colorHPFront  = color.RGBA{G: 0x80, A: 0xff}
	colorShade    = color.RGBA{A: 0xbf}
	colorText     = color.Black
	colorOverText = color.White
	colorTitle    = color.RGBA{R: 0xff, A: 0xff}
)

// shooter adapts a zombies.World to ebiten's game loop.
type shooter struct {
	world  *zombies.World
	cues   core.CuePlayer
	clock  frameClock
	scores scoreKeeper
	paused bool
	frame  float64 // Nominal frame length, seconds
}

// Run opens a window and plays the shooter until it is closed or Esc is
// pressed.
func Run(opts Options) error {
	cfg, err := zombies.LoadConfig(opts.Runtime)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cues := opts.Cues
	if cues == nil {
		cues = core.MuteCues{}
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := &shooter{
		world:  zombies.NewWorld(cfg, core.NewRandom(seed)),
		cues:   cues,
		scores: scoreKeeper{store: opts.Store},
		frame:  opts.Runtime.FrameDuration().Seconds(),
	}

	w, h := int(cfg.Playfield.Width), int(cfg.Playfield.Height)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("Zombie Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *shooter) sample() keyState {
	cx, cy := ebiten.CursorPosition()
	return keyState{
		Up:        ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		FireJust:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJust: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR),
		CursorX:   cx,
		CursorY:   cy,
	}
}

// Update implements ebiten.Game.
func (g *shooter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.cues.Play(core.CueMusicStop)
		return ebiten.Termination
	}
	dt := g.clock.delta(time.Now(), g.frame)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !g.world.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	for _, c := range g.world.Step(dt, g.sample().controls()) {
		g.cues.Play(c)
	}
	if _, err := g.scores.observe(g.world); err != nil {
		log.Warn("could not save score", "game", "zombies", "err", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *shooter) Draw(screen *ebiten.Image) {
	screen.Fill(colorField)
	w := g.world
	p := w.Player

	cx, cy := ebiten.CursorPosition()
	vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(cx), float32(cy), 1, colorAim, true)

	for _, z := range w.Zombies {
		c := colorZombie
		switch z.State {
		case zombies.ZombieAttacking:
			c = colorAttacker
		case zombies.ZombieDead:
			c = colorCorpse
		}
		vector.DrawFilledCircle(screen, float32(z.Pos.X), float32(z.Pos.Y), float32(z.Radius), c, true)
	}
	for _, b := range w.Bullets {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colorBullet, true)
	}
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), colorPlayer, true)

	g.drawHUD(screen)
	switch {
	case w.Over():
		g.drawGameOver(screen)
	case g.paused:
		text.Draw(screen, "PAUSED", basicfont.Face7x13, screen.Bounds().Dx()/2-21, screen.Bounds().Dy()/2, colorText)
	}
}

func (g *shooter) drawHUD(screen *ebiten.Image) {
	w := g.world
	text.Draw(screen, fmt.Sprintf("Score: %d", w.Score), basicfont.Face7x13, 20, 30, colorText)
	text.Draw(screen, fmt.Sprintf("Level: %d", w.Wave.Level), basicfont.Face7x13, 20, 50, colorText)

	vector.DrawFilledRect(screen, 20, 60, 100, 12, colorHPBack, false)
	frac := float32(0)
	if w.Player.MaxHP > 0 {
		frac = max(0, float32(w.Player.HP)/float32(w.Player.MaxHP))
	}
	vector.DrawFilledRect(screen, 20, 60, 100*frac, 12, colorHPFront, false)
	vector.StrokeRect(screen, 20, 60, 100, 12, 1, colorText, false)

	text.Draw(screen, fmt.Sprintf("Ammo: %d", w.Player.Ammo), basicfont.Face7x13, 20, 90, colorText)
}

func (g *shooter) drawGameOver(screen *ebiten.Image) {
	bw, bh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(bw), float32(bh), colorShade, false)

	lines := []struct {
		s string
		c color.Color
	}{
		{"GAME OVER", colorTitle},
		{fmt.Sprintf("Final Score: %d", g.world.Score), colorOverText},
		{"Press ENTER to Restart", colorOverText},
	}
	for i, l := range lines {
		x := bw/2 - len(l.s)*7/2
		text.Draw(screen, l.s, basicfont.Face7x13, x, bh/2-20+i*24, l.c)
	}
}

// Layout implements ebiten.Game. The logical screen is the playfield, so
// cursor coordinates are playfield pixels at any window size.
func (g *shooter) Layout(_, _ int) (int, int) {
	cfg := g.world.Config()
	return int(cfg.Playfield.Width), int(cfg.Playfield.Height)
}
