package domain

import (
	"context"
)

type Prompter interface {
	AskDifficulty(ctx context.Context) (Difficulty, error)
	AskCoinCall(ctx context.Context) (CoinSide, error)
	AskPlayAgain(ctx context.Context) (bool, error)
}

type Renderer interface {
	ShowWelcome()
	ShowCoinToss(toss CoinToss)
	ShowKey()
	ShowPly(ply Ply, board Board)
	ShowResult(result GameResult)
	ShowTally(tally Tally)
}

type Reporter interface {
	Report(result GameResult) error
}

type Tally struct {
	Matches      int64 `json:"matches"`
	PlayerWins   int64 `json:"player_wins"`
	ComputerWins int64 `json:"computer_wins"`
	Draws        int64 `json:"draws"`
}

type ScoreUseCase interface {
	Record(outcome Outcome)
	Snapshot() Tally
}

type SessionUseCase interface {
	Run(ctx context.Context) error
	Stop()
}
