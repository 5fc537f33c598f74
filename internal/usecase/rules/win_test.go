package rules

import (
	"testing"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = domain.Empty
	x = domain.X
	o = domain.O
)

func TestIsWin(t *testing.T) {
	tests := []struct {
		name  string
		board domain.Board
		mark  domain.Cell
		want  bool
	}{
		{name: "empty board", board: domain.Board{}, mark: x, want: false},
		{name: "top row", board: domain.Board{{x, x, x}, {o, o, e}, {e, e, e}}, mark: x, want: true},
		{name: "middle row", board: domain.Board{{x, e, x}, {o, o, o}, {x, e, e}}, mark: o, want: true},
		{name: "bottom row", board: domain.Board{{o, e, o}, {e, o, e}, {x, x, x}}, mark: x, want: true},
		{name: "left column", board: domain.Board{{o, x, e}, {o, x, e}, {o, e, x}}, mark: o, want: true},
		{name: "middle column", board: domain.Board{{o, x, e}, {e, x, o}, {e, x, e}}, mark: x, want: true},
		{name: "right column", board: domain.Board{{x, e, o}, {x, e, o}, {e, x, o}}, mark: o, want: true},
		{name: "main diagonal", board: domain.Board{{x, o, e}, {e, x, o}, {e, e, x}}, mark: x, want: true},
		{name: "anti diagonal", board: domain.Board{{x, x, o}, {e, o, e}, {o, e, x}}, mark: o, want: true},
		{name: "other mark wins", board: domain.Board{{x, x, x}, {o, o, e}, {e, e, e}}, mark: o, want: false},
		{name: "two in a row", board: domain.Board{{x, x, e}, {o, o, e}, {e, e, e}}, mark: x, want: false},
		{name: "full board draw", board: domain.Board{{x, o, x}, {x, o, o}, {o, x, x}}, mark: x, want: false},
		{name: "empty mark never wins", board: domain.Board{}, mark: e, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := tt.board
			assert.Equal(t, tt.want, IsWin(&board, tt.mark))
			// Then: the board is not modified by the check
			require.Equal(t, tt.board, board)
		})
	}
}

func TestIsWin_DependsOnGridOnly(t *testing.T) {
	// Given: the same grid reached through two different move orders
	var first, second domain.Board
	for _, pos := range []domain.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}} {
		require.NoError(t, first.Set(pos, x))
	}
	for _, pos := range []domain.Position{{Row: 2, Col: 2}, {Row: 0, Col: 0}, {Row: 1, Col: 1}} {
		require.NoError(t, second.Set(pos, x))
	}

	// Then: both are judged identically
	require.Equal(t, first, second)
	assert.True(t, IsWin(&first, x))
	assert.Equal(t, IsWin(&first, x), IsWin(&second, x))
	assert.Equal(t, IsWin(&first, o), IsWin(&second, o))
}
