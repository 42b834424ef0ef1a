package tictactoe

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tri-arcade/internal/config"
	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

// Board geometry in cells.
const (
	cellW  = 7
	cellH  = 3
	boardW = cellW*3 + 2
	boardH = cellH*3 + 2
	boardY = 3
)

const (
	minScreenW = 40
	minScreenH = 20
)

// Game is the arcade adapter around a Match.
type Game struct {
	vsCPU   bool
	runtime core.RuntimeConfig
	cfg     config.TicTacToeConfig
	store   registry.Persistence
	rng     core.Random
	match   *Match

	cursor   int
	thinking time.Duration // CPU wait before its move
	pending  []core.Cue
	saveErr  error

	screenTooSmall bool
}

// New creates a game against the computer.
func New() *Game {
	return &Game{vsCPU: true}
}

// NewDuo creates a hot-seat game for two players.
func NewDuo() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.vsCPU {
		return "tictactoe"
	}
	return "tictactoe_duo"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.vsCPU {
		return "Tic Tac Toe"
	}
	return "Tic Tac Toe (2 Players)"
}

// UsePersistence enables match history.
func (g *Game) UsePersistence(p registry.Persistence) {
	g.store = p
}

// Reset starts a fresh session with an empty tally.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTicTacToe(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	if preset := config.ParsePreset(runtime.Difficulty); preset != "" {
		config.ApplyTicTacToePreset(&cfg, preset)
	}
	g.cfg = cfg

	g.rng = core.NewRandom(runtime.Seed)
	g.match = NewMatch()
	g.match.OnEnded(g.ended)
	g.cursor = 4
	g.thinking = 0
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Match exposes the current match, mainly for tests.
func (g *Game) Match() *Match {
	return g.match
}

// ended records a finished match and queues its cue.
func (g *Game) ended(r Result, moves int) {
	switch {
	case r == Draw:
		g.pending = append(g.pending, core.CueTie)
	case r == OWins && g.vsCPU:
		g.pending = append(g.pending, core.CueLose)
	default:
		g.pending = append(g.pending, core.CueWin)
	}
	if g.store != nil {
		g.saveErr = g.store.SaveMatch(g.ID(), r.String(), moves)
	}
}

// cpuTurn reports whether the computer is to move.
func (g *Game) cpuTurn() bool {
	return g.vsCPU && !g.match.Over() && g.match.Turn == O
}

// Step handles one frame of input and the CPU's clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pending = g.pending[:0]

	switch {
	case in.Has(core.ActionRestart):
		g.match.Reset()
		g.thinking = 0
	case in.Has(core.ActionRematch), g.match.Over() && in.Has(core.ActionConfirm):
		g.match.Rematch()
		g.thinking = 0
	default:
		g.moveCursor(in)
		if !g.cpuTurn() {
			if cell, ok := g.chosenCell(in); ok {
				g.match.Play(cell)
			}
		}
	}

	if g.cpuTurn() {
		dt := in.Elapsed
		if dt <= 0 {
			dt = g.runtime.FrameDuration()
		}
		g.thinking += dt
		if g.thinking.Seconds() >= g.cfg.CPUDelay {
			g.thinking = 0
			g.match.Play(RandomMove(&g.match.Board, g.rng))
		}
	}

	return core.StepResult{State: g.State(), Cues: append([]core.Cue(nil), g.pending...)}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	if in.Has(core.ActionUp) {
		row = (row + 2) % 3
	}
	if in.Has(core.ActionDown) {
		row = (row + 1) % 3
	}
	if in.Has(core.ActionLeft) {
		col = (col + 2) % 3
	}
	if in.Has(core.ActionRight) {
		col = (col + 1) % 3
	}
	g.cursor = row*3 + col
}

// chosenCell returns the cell the player picked this frame: a number key,
// a click on the board, or Enter/Space on the cursor.
func (g *Game) chosenCell(in core.InputFrame) (int, bool) {
	for n := 1; n <= 9; n++ {
		if in.Has(core.SlotAction(n)) {
			g.cursor = n - 1
			return n - 1, true
		}
	}
	if in.Pointer.Pressed {
		if cell, ok := g.cellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = cell
			return cell, true
		}
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		return g.cursor, true
	}
	return 0, false
}

func (g *Game) boardX() int {
	return (g.runtime.ScreenW - boardW) / 2
}

// cellAt maps a pointer position to a board cell.
func (g *Game) cellAt(x, y float64) (int, bool) {
	bx, by := float64(g.boardX()), float64(boardY)
	if x < bx || y < by || x >= bx+boardW || y >= by+boardH {
		return 0, false
	}
	col := int(x-bx) / (cellW + 1)
	row := int(y-by) / (cellH + 1)
	return row*3 + col, true
}

// Render draws the board, status and tally.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawTextCenteredColored(1, g.Title(), core.ColorBrightCyan)
	g.renderGrid(dst)
	for i := range g.match.Board {
		g.renderCell(dst, i)
	}

	status, color := g.status()
	dst.DrawTextCenteredColored(boardY+boardH+1, status, color)

	t := g.match.Tally
	dst.DrawTextCentered(boardY+boardH+3, fmt.Sprintf("X: %d   O: %d   Draws: %d", t.XWins, t.OWins, t.Draws))

	dst.DrawTextCenteredColored(dst.Height()-1,
		"Arrows move  Enter place  1-9 cell  N rematch  R reset tally", core.ColorGray)
}

func (g *Game) renderGrid(dst *core.Screen) {
	bx := g.boardX()
	for i := 1; i < 3; i++ {
		x := bx + i*(cellW+1) - 1
		for k := range boardH {
			dst.SetColored(x, boardY+k, '│', core.ColorGray)
		}
	}
	for i := 1; i < 3; i++ {
		y := boardY + i*(cellH+1) - 1
		for k := range boardW {
			r := '─'
			if dst.Get(bx+k, y) == '│' {
				r = '┼'
			}
			dst.SetColored(bx+k, y, r, core.ColorGray)
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, i int) {
	cx := g.boardX() + (i%3)*(cellW+1) + cellW/2
	cy := boardY + (i/3)*(cellH+1) + cellH/2

	mark := g.match.Board[i]
	color := core.ColorDefault
	switch mark {
	case X:
		color = core.ColorBrightCyan
	case O:
		color = core.ColorBrightMagenta
	}
	if g.match.Winning(i) {
		color = core.ColorBrightYellow
		dst.SetColored(cx-2, cy, '*', color)
		dst.SetColored(cx+2, cy, '*', color)
	}
	dst.SetColored(cx, cy, []rune(mark.String())[0], color)

	if i == g.cursor && !g.match.Over() {
		dst.SetColored(cx-1, cy, '[', core.ColorYellow)
		dst.SetColored(cx+1, cy, ']', core.ColorYellow)
	}
}

func (g *Game) status() (string, core.Color) {
	m := g.match
	switch m.Result {
	case XWins, OWins:
		winner := X
		if m.Result == OWins {
			winner = O
		}
		msg := fmt.Sprintf("Player %s wins!", winner)
		if g.vsCPU && winner == O {
			msg = "CPU wins!"
		}
		return msg + "  (N rematch)", core.ColorBrightGreen
	case Draw:
		return "It's a draw!  (N rematch)", core.ColorBrightBlue
	}
	if g.cpuTurn() {
		return "CPU is thinking...", core.ColorGray
	}
	return fmt.Sprintf("Player %s's turn", m.Turn), core.ColorDefault
}

// SaveErr returns the last match history failure, if any.
func (g *Game) SaveErr() error {
	return g.saveErr
}

// State reports X's wins as the score. Finished boards do not end the
// session; N or Enter starts the next one.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}
	return core.GameState{Score: g.match.Tally.XWins}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
	registry.Register("tictactoe_duo", func() registry.Game {
		return NewDuo()
	})
}
