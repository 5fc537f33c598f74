package rules

import (
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
)

// Rows, then columns, then the two diagonals.
var winConditions = [8][3]domain.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// IsWin reports whether mark fills any row, column or diagonal.
func IsWin(board *domain.Board, mark domain.Cell) bool {
	if mark == domain.Empty {
		return false
	}
	for _, condition := range winConditions {
		isWinnable := true
		for _, pos := range condition {
			if board[pos.Row][pos.Col] != mark {
				isWinnable = false
				break
			}
		}
		if isWinnable {
			return true
		}
	}
	return false
}
