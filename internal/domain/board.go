package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrOutOfRange   = errors.WithMessage(ErrInvalidMove, "position is out of range")
	ErrCellOccupied = errors.WithMessage(ErrInvalidMove, "cell is already occupied")
	ErrNoLegalMove  = errors.New("no legal move on a full board")
)

const BoardSize = 3

type Cell byte

const (
	Empty = Cell(iota)
	X
	O
)

func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	if c == Empty {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Board is the 3x3 grid, indexed [row][col]. The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

func (b *Board) Get(pos Position) Cell {
	if !pos.Valid() {
		return Empty
	}
	return b[pos.Row][pos.Col]
}

// Set places mark on an empty cell. The board is left untouched on error.
func (b *Board) Set(pos Position, mark Cell) error {
	if !pos.Valid() {
		return errors.WithMessagef(ErrOutOfRange, "position (%d, %d)", pos.Row, pos.Col)
	}
	if b[pos.Row][pos.Col] != Empty {
		return errors.WithMessagef(ErrCellOccupied, "position (%d, %d)", pos.Row, pos.Col)
	}
	b[pos.Row][pos.Col] = mark
	return nil
}

// Clear empties a cell. Only search backtracking is allowed to call it.
func (b *Board) Clear(pos Position) {
	if pos.Valid() {
		b[pos.Row][pos.Col] = Empty
	}
}

// EmptyCells lists empty positions in row-major order.
func (b *Board) EmptyCells() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == Empty {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

func (b *Board) IsFull() bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

func (b *Board) Count(mark Cell) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}
