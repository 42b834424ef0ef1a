package tictactoe

// Result is how a finished match ended.
type Result int

const (
	InProgress Result = iota
	XWins
	OWins
	Draw
)

// String returns the outcome name stored in match history.
func (r Result) String() string {
	switch r {
	case XWins:
		return "x"
	case OWins:
		return "o"
	case Draw:
		return "draw"
	default:
		return "playing"
	}
}

// Tally counts finished matches in a session.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Match is one board plus the session tally around it.
type Match struct {
	Board   Board
	Turn    Mark
	Result  Result
	Line    [3]int // Winning cells when Result is XWins or OWins
	Moves   int
	Tally   Tally
	onEnded func(Result, int)
}

// NewMatch creates a match with X to move.
func NewMatch() *Match {
	return &Match{Turn: X}
}

// OnEnded registers a callback invoked once per finished match with the
// result and the number of moves played.
func (m *Match) OnEnded(f func(Result, int)) {
	m.onEnded = f
}

// Over reports whether the current board is finished.
func (m *Match) Over() bool {
	return m.Result != InProgress
}

// Play puts the current player's mark on cell i. Moves on occupied or
// out-of-range cells, or after the match ended, are ignored and return
// false.
func (m *Match) Play(i int) bool {
	if m.Over() || i < 0 || i >= len(m.Board) || m.Board[i] != Empty {
		return false
	}
	m.Board[i] = m.Turn
	m.Moves++

	if line, ok := m.Board.CheckWin(); ok {
		m.Line = line
		if m.Turn == X {
			m.end(XWins)
		} else {
			m.end(OWins)
		}
		return true
	}
	if m.Board.Full() {
		m.end(Draw)
		return true
	}
	m.Turn = m.Turn.Other()
	return true
}

func (m *Match) end(r Result) {
	m.Result = r
	switch r {
	case XWins:
		m.Tally.XWins++
	case OWins:
		m.Tally.OWins++
	case Draw:
		m.Tally.Draws++
	}
	if m.onEnded != nil {
		m.onEnded(r, m.Moves)
	}
}

// Rematch clears the board and keeps the tally.
func (m *Match) Rematch() {
	m.Board = Board{}
	m.Turn = X
	m.Result = InProgress
	m.Line = [3]int{}
	m.Moves = 0
}

// Reset clears the board and the tally.
func (m *Match) Reset() {
	m.Rematch()
	m.Tally = Tally{}
}

// Winning reports whether cell i is part of the winning line.
func (m *Match) Winning(i int) bool {
	if m.Result != XWins && m.Result != OWins {
		return false
	}
	return m.Line[0] == i || m.Line[1] == i || m.Line[2] == i
}
