package tictactoe

import "github.com/vovakirdan/tri-arcade/internal/core"

// RandomMove picks a uniformly random empty cell, or -1 on a full board.
func RandomMove(b *Board, rng core.Random) int {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return -1
	}
	return cells[rng.Intn(len(cells))]
}
