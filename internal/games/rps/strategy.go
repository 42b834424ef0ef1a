package rps

import "github.com/vovakirdan/tri-arcade/internal/core"

// Difficulty selects the opponent's strategy.
type Difficulty int

const (
	Easy   Difficulty = iota // Uniform random
	Normal                   // Half random, half repeats the player's last move
	Hard                     // Counters the player's last move
)

var difficultyNames = [...]string{"easy", "normal", "hard"}

// String returns the difficulty name.
func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty converts a name into a Difficulty, defaulting to Easy.
func ParseDifficulty(s string) Difficulty {
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i)
		}
	}
	return Easy
}

// Next cycles easy -> normal -> hard -> easy.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(difficultyNames))
}

// OpponentMove picks the computer's move. last is the player's previous
// move and hasLast is false before the first round, in which case every
// difficulty plays uniformly.
func OpponentMove(d Difficulty, last Move, hasLast bool, rng core.Random) Move {
	if !hasLast {
		return randomMove(rng)
	}
	switch d {
	case Normal:
		if rng.Float64() < 0.5 {
			return randomMove(rng)
		}
		return last
	case Hard:
		return Counter(last)
	default:
		return randomMove(rng)
	}
}

func randomMove(rng core.Random) Move {
	return Moves[rng.Intn(len(Moves))]
}
