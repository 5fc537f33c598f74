package engine

import (
	"context"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type hardPlayer struct {
	search Minimax
	logger *zap.Logger
}

// NewHard returns a computer opponent that always plays the minimax move.
func NewHard(logger *zap.Logger) hardPlayer {
	return hardPlayer{logger: logger}
}

func (p hardPlayer) NextMove(_ context.Context, board *domain.Board, mark domain.Cell) (domain.Position, error) {
	pos, err := p.search.BestMove(board, mark, mark.Opponent())
	if err != nil {
		return domain.Position{}, errors.WithMessage(err, "search best move")
	}
	p.logger.Debug("minimax move",
		zap.Stringer("mark", mark), zap.Int("row", pos.Row), zap.Int("col", pos.Col))
	return pos, nil
}

type easyPlayer struct {
	rng    domain.RandomSource
	logger *zap.Logger
}

// NewEasy returns a computer opponent that picks any empty cell at random.
func NewEasy(rng domain.RandomSource, logger *zap.Logger) easyPlayer {
	return easyPlayer{rng: rng, logger: logger}
}

func (p easyPlayer) NextMove(_ context.Context, board *domain.Board, mark domain.Cell) (domain.Position, error) {
	pos, err := ChooseRandomMove(board, p.rng)
	if err != nil {
		return domain.Position{}, errors.WithMessage(err, "choose random move")
	}
	p.logger.Debug("random move",
		zap.Stringer("mark", mark), zap.Int("row", pos.Row), zap.Int("col", pos.Col))
	return pos, nil
}

func ForDifficulty(d domain.Difficulty, rng domain.RandomSource, logger *zap.Logger) (domain.MoveProvider, error) {
	switch d {
	case domain.Easy:
		return NewEasy(rng, logger), nil
	case domain.Hard:
		return NewHard(logger), nil
	default:
		return nil, errors.WithMessagef(domain.ErrUnknownDifficulty, "difficulty %d", d)
	}
}
