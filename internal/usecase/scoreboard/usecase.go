package scoreboard

import (
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// useCase tallies finished matches. It is read from the signal handler while
// the session goroutine writes, hence the atomics.
type useCase struct {
	matches      *atomic.Int64
	playerWins   *atomic.Int64
	computerWins *atomic.Int64
	draws        *atomic.Int64
	logger       *zap.Logger
}

func New(logger *zap.Logger) *useCase {
	return &useCase{
		matches:      atomic.NewInt64(0),
		playerWins:   atomic.NewInt64(0),
		computerWins: atomic.NewInt64(0),
		draws:        atomic.NewInt64(0),
		logger:       logger,
	}
}

func (u *useCase) Record(outcome domain.Outcome) {
	switch outcome {
	case domain.PlayerWin:
		u.playerWins.Inc()
	case domain.ComputerWin:
		u.computerWins.Inc()
	case domain.Draw:
		u.draws.Inc()
	default:
		u.logger.Warn("unfinished match is not recorded", zap.Stringer("outcome", outcome))
		return
	}
	u.matches.Inc()
}

func (u *useCase) Snapshot() domain.Tally {
	return domain.Tally{
		Matches:      u.matches.Load(),
		PlayerWins:   u.playerWins.Load(),
		ComputerWins: u.computerWins.Load(),
		Draws:        u.draws.Load(),
	}
}
