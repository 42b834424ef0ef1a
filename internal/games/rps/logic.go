// Package rps implements Rock Paper Scissors against a computer opponent
// with selectable difficulty, a win streak and a persisted best streak.
package rps

// Move is one of the three hand shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move in display order.
var Moves = [...]Move{Rock, Paper, Scissors}

// String returns the lowercase move name.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return (m == Rock && other == Scissors) ||
		(m == Scissors && other == Paper) ||
		(m == Paper && other == Rock)
}

// Counter returns the move that defeats m.
func Counter(m Move) Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Outcome is a round result from the player's side.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

// String returns "win", "lose" or "tie".
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "tie"
	}
}

// Resolve decides a round between the player's move and the opponent's.
func Resolve(player, opponent Move) Outcome {
	switch {
	case player == opponent:
		return Tie
	case player.Beats(opponent):
		return Win
	default:
		return Lose
	}
}
