package engine

import (
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
)

// ChooseRandomMove draws uniformly from the empty cells. Callers check IsFull first.
func ChooseRandomMove(board *domain.Board, rng domain.RandomSource) (domain.Position, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return domain.Position{}, domain.ErrNoLegalMove
	}
	return availableCells[rng.Intn(len(availableCells))], nil
}
