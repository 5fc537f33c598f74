package session

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// GameFactory builds the coordinator for one match. observer is called after
// every ply.
type GameFactory func(matchID string, observer func(ply domain.Ply, board domain.Board)) domain.GameUseCase

type Option func(u *useCase)

// WithDifficulty skips the difficulty prompt.
func WithDifficulty(d domain.Difficulty) Option {
	return func(u *useCase) {
		u.difficulty = d
	}
}

type useCase struct {
	newGame    GameFactory
	prompter   domain.Prompter
	renderer   domain.Renderer
	reporter   domain.Reporter
	score      domain.ScoreUseCase
	difficulty domain.Difficulty
	stopped    *atomic.Bool
	logger     *zap.Logger
}

func New(newGame GameFactory, prompter domain.Prompter, renderer domain.Renderer, reporter domain.Reporter,
	score domain.ScoreUseCase, logger *zap.Logger, opts ...Option) *useCase {
	u := &useCase{
		newGame:  newGame,
		prompter: prompter,
		renderer: renderer,
		reporter: reporter,
		score:    score,
		stopped:  atomic.NewBool(false),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run plays matches until the player declines another one or Stop is called.
// The tally is also shown when the input ends or ctx is canceled, and the
// cause is still returned.
func (u *useCase) Run(ctx context.Context) error {
	u.renderer.ShowWelcome()
	err := u.playMatches(ctx)
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		u.renderer.ShowTally(u.score.Snapshot())
	}
	return err
}

func (u *useCase) playMatches(ctx context.Context) error {
	for !u.stopped.Load() {
		if err := u.playMatch(ctx); err != nil {
			return errors.WithMessage(err, "play match")
		}
		again, err := u.prompter.AskPlayAgain(ctx)
		if err != nil {
			return errors.WithMessage(err, "ask to play again")
		}
		if !again {
			return nil
		}
	}
	return nil
}

// Stop ends the session after the current match.
func (u *useCase) Stop() {
	u.stopped.Store(true)
}

func (u *useCase) playMatch(ctx context.Context) error {
	matchID := uuid.NewString()
	logger := u.logger.With(zap.String("match", matchID))
	logger.Info("starting new match")
	game := u.newGame(matchID, u.renderer.ShowPly)

	difficulty := u.difficulty
	if !difficulty.Valid() {
		var err error
		if difficulty, err = u.prompter.AskDifficulty(ctx); err != nil {
			return errors.WithMessage(err, "ask difficulty")
		}
	}
	if err := game.ChooseDifficulty(difficulty); err != nil {
		return errors.WithMessage(err, "choose difficulty")
	}
	call, err := u.prompter.AskCoinCall(ctx)
	if err != nil {
		return errors.WithMessage(err, "ask coin call")
	}
	toss, err := game.CallCoin(call)
	if err != nil {
		return errors.WithMessage(err, "call coin")
	}
	u.renderer.ShowCoinToss(toss)
	u.renderer.ShowKey()
	if err := game.Begin(); err != nil {
		return errors.WithMessage(err, "begin match")
	}
	result, err := game.Play(ctx)
	if err != nil {
		return errors.WithMessage(err, "play")
	}
	u.renderer.ShowResult(result)
	u.score.Record(result.Outcome)
	if err := u.reporter.Report(result); err != nil {
		logger.Warn("failed to report result", zap.Error(err))
	}
	return nil
}
