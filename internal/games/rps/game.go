package rps

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

// How long the result line flashes after a win.
const celebrateFor = 900 * time.Millisecond

const (
	buttonW   = 14
	buttonH   = 3
	buttonGap = 3
)

const (
	minScreenW = 50
	minScreenH = 22
)

// Game is the arcade adapter around a Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RPSConfig
	store   registry.Persistence
	rng     core.Random
	session *Session

	cursor    int
	emoji     bool
	theme     string
	memes     bool
	last      *Round
	reaction  string
	celebrate time.Duration

	screenTooSmall bool
}

// New creates a new Rock Paper Scissors game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rps"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rock Paper Scissors"
}

// UsePersistence gives the game a place to keep the best streak.
func (g *Game) UsePersistence(p registry.Persistence) {
	g.store = p
}

// Reset loads the config and starts a new session. The best streak is
// read back from storage.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRPS(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultRPSConfig()
	}
	if preset := config.ParsePreset(runtime.Difficulty); preset != "" {
		config.ApplyRPSPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.rng = core.NewRandom(runtime.Seed)
	g.session = NewSession(g.ID(), ParseDifficulty(cfg.Difficulty), g.rng, g.store)
	g.emoji = cfg.Emoji
	g.theme = cfg.Theme
	g.memes = cfg.Memes
	g.cursor = 0
	g.last = nil
	g.reaction = ""
	g.celebrate = 0
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Session exposes the underlying session, mainly for tests.
func (g *Game) Session() *Session {
	return g.session
}

// Step handles one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.celebrate = max(0, g.celebrate-in.Elapsed)

	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor + len(Moves) - 1) % len(Moves)
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % len(Moves)
	}
	if in.Has(core.ActionCycle) {
		g.session.Difficulty = g.session.Difficulty.Next()
	}
	if in.Has(core.ActionToggleStyle) {
		g.emoji = !g.emoji
	}
	if in.Has(core.ActionToggleTheme) {
		g.theme = ToggleTheme(g.theme)
	}
	if in.Has(core.ActionToggleExtras) {
		g.memes = !g.memes
		if !g.memes {
			g.reaction = ""
		}
	}
	if in.Has(core.ActionRestart) {
		best := g.session.Best
		g.session = NewSession(g.ID(), g.session.Difficulty, g.rng, g.store)
		g.session.Best = max(g.session.Best, best)
		g.last = nil
		g.reaction = ""
	}

	move, play := g.chosenMove(in)
	if !play {
		return core.StepResult{State: g.State()}
	}

	r := g.session.Play(move)
	g.last = &r

	var cue core.Cue
	switch r.Outcome {
	case Win:
		cue = core.CueWin
		g.celebrate = celebrateFor
	case Lose:
		cue = core.CueLose
	default:
		cue = core.CueTie
	}
	if g.memes {
		g.reaction = PickReaction(g.cfg.Reactions, r.Outcome, g.rng)
	}

	return core.StepResult{State: g.State(), Cues: []core.Cue{cue}}
}

// chosenMove returns the move the player committed to this frame.
func (g *Game) chosenMove(in core.InputFrame) (Move, bool) {
	for i, m := range Moves {
		if in.Has(core.SlotAction(i + 1)) {
			g.cursor = i
			return m, true
		}
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		return Moves[g.cursor], true
	}
	return 0, false
}

// Render draws the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	pal := PaletteFor(g.theme)
	dst.DrawTextCenteredColored(1, "ROCK  PAPER  SCISSORS", pal.Title)

	settings := fmt.Sprintf("Difficulty: %s   Theme: %s   Emoji: %s   Memes: %s",
		g.session.Difficulty, g.theme, onOff(g.emoji), onOff(g.memes))
	dst.DrawTextCenteredColored(3, settings, pal.Text)

	g.renderButtons(dst, pal, 5)
	g.renderResult(dst, pal, 10)

	streak := fmt.Sprintf("Current Streak: %d    Best Streak: %d", g.session.Streak, g.session.Best)
	dst.DrawTextCenteredColored(15, streak, pal.Text)

	if g.reaction != "" {
		g.renderReaction(dst, pal, 17)
	}

	dst.DrawTextCenteredColored(dst.Height()-1,
		"←/→ pick  Enter play  1-3 quick  Tab difficulty  E emoji  T theme  M memes  R reset", core.ColorGray)
}

func (g *Game) renderButtons(dst *core.Screen, pal Palette, y int) {
	total := len(Moves)*buttonW + (len(Moves)-1)*buttonGap
	x := (dst.Width() - total) / 2
	for i, m := range Moves {
		box := core.NewRect(x+i*(buttonW+buttonGap), y, buttonW, buttonH)
		color := pal.Button
		if i == g.cursor {
			color = pal.Cursor
		}
		dst.DrawBoxColored(box, color)

		label := fmt.Sprintf("%d %s", i+1, Label(m, g.emoji))
		dst.DrawTextColored(box.X+(buttonW-core.TextWidth(label))/2, y+1, label, color)
	}
}

func (g *Game) renderResult(dst *core.Screen, pal Palette, y int) {
	if g.last == nil {
		dst.DrawTextCenteredColored(y+1, "Make your move!", pal.Text)
		return
	}

	dst.DrawTextCenteredColored(y, fmt.Sprintf("You chose: %s    Computer chose: %s",
		Label(g.last.Player, g.emoji), Label(g.last.Opponent, g.emoji)), pal.Text)

	var msg string
	switch g.last.Outcome {
	case Win:
		msg = "You win!"
	case Lose:
		msg = "You lose!"
	default:
		msg = "It's a tie!"
	}
	color := pal.OutcomeColor(g.last.Outcome)
	if g.celebrate > 0 {
		// Alternate colors every 150ms while celebrating.
		if (g.celebrate/(150*time.Millisecond))%2 == 0 {
			color = core.ColorBrightYellow
		}
		msg = "★ " + msg + " ★"
	}
	dst.DrawTextCenteredColored(y+2, msg, color)

	if g.last.NewBest {
		dst.DrawTextCenteredColored(y+3, "New best streak!", pal.Win)
	}
}

func (g *Game) renderReaction(dst *core.Screen, pal Palette, y int) {
	w := core.TextWidth(g.reaction) + 4
	box := core.NewRect((dst.Width()-w)/2, y, w, 3)
	color := pal.Tie
	if g.last != nil {
		color = pal.OutcomeColor(g.last.Outcome)
	}
	dst.DrawBoxColored(box, color)
	dst.DrawTextColored(box.X+2, y+1, g.reaction, pal.Text)
}

// State reports the current streak as the score. The game never ends.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{Score: g.session.Streak}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	registry.Register("rps", func() registry.Game {
		return New()
	})
}
