package engine

import (
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/rules"
	"github.com/pkg/errors"
)

const (
	winScore = 10
	minScore = -1000
	maxScore = 1000
)

// Minimax searches the full game tree without pruning. It keeps no state
// between calls and leaves the board exactly as it received it.
type Minimax struct{}

// BestMove returns the empty cell with the greatest score for computer. Ties go
// to the first such cell in row-major order.
func (m Minimax) BestMove(board *domain.Board, computer, player domain.Cell) (domain.Position, error) {
	if board.IsFull() {
		return domain.Position{}, domain.ErrNoLegalMove
	}
	var (
		bestScore = minScore
		bestMove  = domain.Position{Row: -1, Col: -1}
	)
	for _, pos := range board.EmptyCells() {
		score, err := withTrialMove(board, pos, computer, func() int {
			return m.score(board, 0, false, computer, player)
		})
		if err != nil {
			return domain.Position{}, errors.WithMessage(err, "try computer move")
		}
		if score > bestScore {
			bestScore = score
			bestMove = pos
		}
	}
	return bestMove, nil
}

// Score evaluates board with the side to move fixed by maximizing (true when
// the computer moves next). Faster wins score higher and faster losses lower.
func (m Minimax) Score(board *domain.Board, computer, player domain.Cell, maximizing bool) int {
	return m.score(board, 0, maximizing, computer, player)
}

func (m Minimax) score(board *domain.Board, depth int, maximizing bool, computer, player domain.Cell) int {
	switch {
	case rules.IsWin(board, computer):
		return winScore - depth
	case rules.IsWin(board, player):
		return depth - winScore
	case board.IsFull():
		return 0
	}
	mover, best := player, maxScore
	if maximizing {
		mover, best = computer, minScore
	}
	for _, pos := range board.EmptyCells() {
		// the cell was just listed as empty, so the trial cannot fail
		child, _ := withTrialMove(board, pos, mover, func() int {
			return m.score(board, depth+1, !maximizing, computer, player)
		})
		if maximizing {
			best = max(best, child)
		} else {
			best = min(best, child)
		}
	}
	return best
}

// withTrialMove places mark at pos, evaluates fn and clears the cell again on
// every exit path, panics included.
func withTrialMove(board *domain.Board, pos domain.Position, mark domain.Cell, fn func() int) (int, error) {
	if err := board.Set(pos, mark); err != nil {
		return 0, err
	}
	defer board.Clear(pos)
	return fn(), nil
}
