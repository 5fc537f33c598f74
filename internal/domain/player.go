package domain

import (
	"context"
)

type Side byte

const (
	PlayerSide = Side(iota)
	ComputerSide
)

func (s Side) String() string {
	if s == ComputerSide {
		return "computer"
	}
	return "player"
}

func (s Side) Other() Side {
	if s == ComputerSide {
		return PlayerSide
	}
	return ComputerSide
}

// MoveProvider supplies the next move for mark. Implementations must leave the
// board as they found it; a human source may block until input arrives.
type MoveProvider interface {
	NextMove(ctx context.Context, board *Board, mark Cell) (Position, error)
}

type MoveProviderFunc func(ctx context.Context, board *Board, mark Cell) (Position, error)

func (f MoveProviderFunc) NextMove(ctx context.Context, board *Board, mark Cell) (Position, error) {
	return f(ctx, board, mark)
}
