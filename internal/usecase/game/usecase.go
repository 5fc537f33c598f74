package game

import (
	"context"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/engine"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/rules"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Option func(u *useCase)

func WithMatchID(id string) Option {
	return func(u *useCase) {
		u.matchID = id
	}
}

// WithComputer replaces the opponent that ChooseDifficulty would pick.
func WithComputer(provider domain.MoveProvider) Option {
	return func(u *useCase) {
		u.computer = provider
	}
}

func WithPlyObserver(observer func(ply domain.Ply, board domain.Board)) Option {
	return func(u *useCase) {
		u.observer = observer
	}
}

type useCase struct {
	matchID    string
	human      domain.MoveProvider
	computer   domain.MoveProvider
	rng        domain.RandomSource
	observer   func(ply domain.Ply, board domain.Board)
	logger     *zap.Logger
	state      State
	difficulty domain.Difficulty
	toss       domain.CoinToss
	active     domain.Side
	board      domain.Board
	plies      int
	outcome    domain.Outcome
}

func New(human domain.MoveProvider, rng domain.RandomSource, logger *zap.Logger, opts ...Option) *useCase {
	u := &useCase{
		human:  human,
		rng:    rng,
		logger: logger,
		state:  AwaitingDifficulty,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.matchID != "" {
		u.logger = u.logger.With(zap.String("match", u.matchID))
	}
	return u
}

func (u *useCase) ChooseDifficulty(d domain.Difficulty) error {
	if err := u.expect(AwaitingDifficulty); err != nil {
		return err
	}
	if !d.Valid() {
		return errors.WithMessagef(domain.ErrUnknownDifficulty, "difficulty %d", d)
	}
	if u.computer == nil {
		computer, err := engine.ForDifficulty(d, u.rng, u.logger)
		if err != nil {
			return errors.WithMessage(err, "select computer player")
		}
		u.computer = computer
	}
	u.difficulty = d
	u.state = AwaitingCoinCall
	u.logger.Info("difficulty chosen", zap.Stringer("difficulty", d))
	return nil
}

// CallCoin flips the coin against the player's call. Winning the call means
// playing X and moving first.
func (u *useCase) CallCoin(call domain.CoinSide) (domain.CoinToss, error) {
	if err := u.expect(AwaitingCoinCall); err != nil {
		return domain.CoinToss{}, err
	}
	if call != domain.Heads && call != domain.Tails {
		return domain.CoinToss{}, errors.WithMessagef(domain.ErrUnknownCoinSide, "call %d", call)
	}
	landed := domain.Tails
	if u.rng.Heads() {
		landed = domain.Heads
	}
	toss := domain.CoinToss{
		Call:         call,
		Landed:       landed,
		PlayerFirst:  call == landed,
		PlayerMark:   domain.O,
		ComputerMark: domain.X,
	}
	if toss.PlayerFirst {
		toss.PlayerMark, toss.ComputerMark = domain.X, domain.O
	}
	u.toss = toss
	u.state = CoinFlipped
	u.logger.Info("coin flipped",
		zap.Stringer("call", call),
		zap.Stringer("landed", landed),
		zap.Bool("player first", toss.PlayerFirst))
	return toss, nil
}

func (u *useCase) Begin() error {
	if err := u.expect(CoinFlipped); err != nil {
		return err
	}
	u.active = domain.ComputerSide
	if u.toss.PlayerFirst {
		u.active = domain.PlayerSide
	}
	u.state = Playing
	return nil
}

// Tick plays a single ply for the active side. A rejected move leaves the
// board and the turn unchanged.
func (u *useCase) Tick(ctx context.Context) (domain.Ply, error) {
	switch u.state {
	case Playing:
	case Finished:
		return domain.Ply{}, ErrGameFinished
	default:
		return domain.Ply{}, errors.WithMessagef(ErrUnexpectedState, "tick in state '%s'", u.state)
	}
	side := u.active
	mark, provider := u.seat(side)
	pos, err := provider.NextMove(ctx, &u.board, mark)
	if err != nil {
		return domain.Ply{}, errors.WithMessagef(err, "request %s move", side)
	}
	if err := u.board.Set(pos, mark); err != nil {
		return domain.Ply{}, errors.WithMessagef(err, "apply %s move", side)
	}
	u.plies++
	ply := domain.Ply{
		Number:   u.plies,
		Side:     side,
		Mark:     mark,
		Position: pos,
	}
	switch {
	case rules.IsWin(&u.board, mark):
		u.finish(toOutcome(side))
	case u.board.IsFull():
		u.finish(domain.Draw)
	default:
		u.active = side.Other()
	}
	if u.observer != nil {
		u.observer(ply, u.board)
	}
	return ply, nil
}

// Play ticks until the match is over. The player is asked again after an
// illegal move; an illegal computer move aborts the match.
func (u *useCase) Play(ctx context.Context) (domain.GameResult, error) {
	if err := u.expect(Playing); err != nil {
		return domain.GameResult{}, err
	}
	for u.state == Playing {
		_, err := u.Tick(ctx)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInvalidMove) && u.active == domain.PlayerSide:
			u.logger.Warn("player move rejected", zap.Error(err))
		default:
			return domain.GameResult{}, errors.WithMessage(err, "play ply")
		}
	}
	return u.Result(), nil
}

func (u *useCase) State() State {
	return u.state
}

func (u *useCase) Board() domain.Board {
	return u.board
}

func (u *useCase) Result() domain.GameResult {
	return domain.GameResult{
		MatchID:      u.matchID,
		Difficulty:   u.difficulty,
		Outcome:      u.outcome,
		Board:        u.board,
		PlayerMark:   u.toss.PlayerMark,
		ComputerMark: u.toss.ComputerMark,
		Plies:        u.plies,
	}
}

func (u *useCase) seat(side domain.Side) (domain.Cell, domain.MoveProvider) {
	if side == domain.ComputerSide {
		return u.toss.ComputerMark, u.computer
	}
	return u.toss.PlayerMark, u.human
}

func (u *useCase) finish(outcome domain.Outcome) {
	u.outcome = outcome
	u.state = Finished
	u.logger.Info("game finished", zap.Stringer("outcome", outcome), zap.Int("plies", u.plies))
}

func (u *useCase) expect(state State) error {
	if u.state != state {
		return errors.WithMessagef(ErrUnexpectedState, "expected '%s', got '%s'", state, u.state)
	}
	return nil
}

func toOutcome(winner domain.Side) domain.Outcome {
	if winner == domain.ComputerSide {
		return domain.ComputerWin
	}
	return domain.PlayerWin
}
