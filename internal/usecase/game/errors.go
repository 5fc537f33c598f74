package game

import (
	"github.com/pkg/errors"
)

var (
	ErrUnexpectedState = errors.New("unexpected game state")
	ErrGameFinished    = errors.New("game is already finished")
)
