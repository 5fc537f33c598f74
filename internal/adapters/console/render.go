package console

import (
	"fmt"
	"strings"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
)

func (t *terminal) ShowWelcome() {
	fmt.Fprintln(t.out, "Welcome to Tic-Tac-Toe!\nI am the computer. I will be beating you at this game!")
}

func (t *terminal) ShowCoinToss(toss domain.CoinToss) {
	fmt.Fprintf(t.out, "It landed %s up!\n", toss.Landed)
	if toss.PlayerFirst {
		fmt.Fprintln(t.out, "You go first.")
	} else {
		fmt.Fprintln(t.out, "I go first!")
	}
}

func (t *terminal) ShowKey() {
	fmt.Fprintln(t.out, "Top Left(TL) | Top Middle(TM) | Top Right(TR)")
	fmt.Fprintln(t.out, "Middle Left(ML) | Middle Middle(MM) | Middle Right(MR)")
	fmt.Fprintln(t.out, "Bottom Left(BL) | Bottom Middle(BM) | Bottom Right(BR)")
	fmt.Fprint(t.out, FormatBoard(domain.Board{}))
}

func (t *terminal) ShowPly(ply domain.Ply, board domain.Board) {
	if ply.Side == domain.ComputerSide {
		fmt.Fprintf(t.out, "\nMy turn: %s\n", Key(ply.Position))
	}
	fmt.Fprint(t.out, FormatBoard(board))
}

func (t *terminal) ShowResult(result domain.GameResult) {
	switch result.Outcome {
	case domain.PlayerWin:
		fmt.Fprintln(t.out, "You win!")
	case domain.ComputerWin:
		fmt.Fprintln(t.out, "I win!")
	case domain.Draw:
		fmt.Fprintln(t.out, "It's a tie!")
	}
}

func (t *terminal) ShowTally(tally domain.Tally) {
	if tally.Matches > 0 {
		fmt.Fprintf(t.out, "Games: %d, you won %d, I won %d, ties %d.\n",
			tally.Matches, tally.PlayerWins, tally.ComputerWins, tally.Draws)
	}
	fmt.Fprintln(t.out, "Thanks for playing! Goodbye!")
}

// FormatBoard draws the grid with '|' between cells and "-+-+-" between rows.
func FormatBoard(board domain.Board) string {
	var sb strings.Builder
	for r, row := range board {
		if r > 0 {
			sb.WriteString("-+-+-\n")
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
