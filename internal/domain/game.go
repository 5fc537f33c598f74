package domain

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownCoinSide   = errors.New("unknown coin side")
)

type Outcome byte

const (
	InProgress = Outcome(iota)
	PlayerWin
	ComputerWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "player_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type Difficulty byte

const (
	Easy = Difficulty(iota + 1)
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Difficulty) Valid() bool {
	return d == Easy || d == Hard
}

// ParseDifficulty accepts the menu numbers as well as the names.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return Easy, nil
	case "2", "hard":
		return Hard, nil
	default:
		return 0, errors.WithMessagef(ErrUnknownDifficulty, "'%s'", s)
	}
}

type CoinSide byte

const (
	Heads = CoinSide(iota + 1)
	Tails
)

func (s CoinSide) String() string {
	switch s {
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return "unknown"
	}
}

func ParseCoinSide(s string) (CoinSide, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HEADS":
		return Heads, nil
	case "T", "TAILS":
		return Tails, nil
	default:
		return 0, errors.WithMessagef(ErrUnknownCoinSide, "'%s'", s)
	}
}

type CoinToss struct {
	Call         CoinSide
	Landed       CoinSide
	PlayerFirst  bool
	PlayerMark   Cell
	ComputerMark Cell
}

type Ply struct {
	Number   int
	Side     Side
	Mark     Cell
	Position Position
}

type GameResult struct {
	MatchID      string     `json:"match_id"`
	Difficulty   Difficulty `json:"difficulty"`
	Outcome      Outcome    `json:"outcome"`
	Board        Board      `json:"board"`
	PlayerMark   Cell       `json:"player_mark"`
	ComputerMark Cell       `json:"computer_mark"`
	Plies        int        `json:"plies"`
}

// RandomSource must be injectable so tests can fix coin flips and random moves.
type RandomSource interface {
	Intn(n int) int
	Heads() bool
}

type GameUseCase interface {
	ChooseDifficulty(d Difficulty) error
	CallCoin(call CoinSide) (CoinToss, error)
	Begin() error
	Play(ctx context.Context) (GameResult, error)
}
