// Package tictactoe implements 3x3 tic-tac-toe for two players on one
// keyboard or against a computer that picks random empty cells.
package tictactoe

// Mark is the content of a cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or a blank.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board is nine cells in row-major order.
type Board [9]Mark

// Lines are the eight winning triples.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// CheckWin returns the first completed line, if any.
func (b *Board) CheckWin() ([3]int, bool) {
	for _, l := range Lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return l, true
		}
	}
	return [3]int{}, false
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// EmptyCells lists the indexes of empty cells in order.
func (b *Board) EmptyCells() []int {
	var cells []int
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}
