package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	errMalformedInput = errors.New("must be two letters (row + column)")
	errUnknownCell    = errors.New("unknown row or column")
)

var (
	rowKeys = [domain.BoardSize]byte{'T', 'M', 'B'}
	colKeys = [domain.BoardSize]byte{'L', 'M', 'R'}
)

type terminal struct {
	out       io.Writer
	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New starts reading lines from in right away so that every prompt can give
// up on context cancellation instead of blocking on the reader.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *terminal {
	t := &terminal{
		out:    out,
		lines:  make(chan string),
		done:   make(chan struct{}),
		logger: logger,
	}
	go t.scan(in)
	return t
}

func (t *terminal) scan(in io.Reader) {
	defer close(t.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case t.lines <- scanner.Text():
		case <-t.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		t.logger.Warn("failed to read input", zap.Error(err))
	}
}

// Close stops the input reader. Prompts asked afterwards fail with io.EOF.
func (t *terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
	})
	return nil
}

func (t *terminal) readLine(ctx context.Context) (string, error) {
	select {
	case <-t.done:
		return "", io.EOF
	default:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", io.EOF
	case line, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (t *terminal) AskDifficulty(ctx context.Context) (domain.Difficulty, error) {
	for {
		fmt.Fprint(t.out, "Choose difficulty:\n1. Easy\n2. Hard\nChoice: ")
		line, err := t.readLine(ctx)
		if err != nil {
			return 0, errors.WithMessage(err, "read difficulty")
		}
		d, err := domain.ParseDifficulty(line)
		if err == nil {
			return d, nil
		}
		t.logger.Debug("invalid difficulty", zap.Error(err))
	}
}

func (t *terminal) AskCoinCall(ctx context.Context) (domain.CoinSide, error) {
	fmt.Fprint(t.out, "Next, we must flip a coin to determine who goes first.\nCall it! (H/T): ")
	for {
		line, err := t.readLine(ctx)
		if err != nil {
			return 0, errors.WithMessage(err, "read coin call")
		}
		if len(line) == 1 {
			if side, err := domain.ParseCoinSide(line); err == nil {
				return side, nil
			}
		}
		fmt.Fprint(t.out, "Invalid. Call H or T: ")
	}
}

func (t *terminal) AskPlayAgain(ctx context.Context) (bool, error) {
	fmt.Fprint(t.out, "\nDo you want to play again? (Y/N): ")
	line, err := t.readLine(ctx)
	if err != nil {
		return false, errors.WithMessage(err, "read answer")
	}
	return strings.ToUpper(line) == "Y", nil
}

// NextMove asks the human for a cell until an empty one is named.
func (t *terminal) NextMove(ctx context.Context, board *domain.Board, _ domain.Cell) (domain.Position, error) {
	fmt.Fprintln(t.out, "\nYour turn:")
	for {
		fmt.Fprint(t.out, "Where would you like to go?\nYour choice (e.g., TL, MM): ")
		line, err := t.readLine(ctx)
		if err != nil {
			return domain.Position{}, errors.WithMessage(err, "read move")
		}
		pos, err := ParseMove(line)
		switch {
		case errors.Is(err, errMalformedInput):
			fmt.Fprintln(t.out, "Invalid input. Must be two letters (row + column).")
		case err != nil:
			fmt.Fprintln(t.out, "Invalid selection. Try again.")
		case board.Get(pos) != domain.Empty:
			fmt.Fprintln(t.out, "That spot is already taken. Try again.")
		default:
			return pos, nil
		}
	}
}

// ParseMove reads a board key such as "TL" (top left) or "MM" (centre).
func ParseMove(s string) (domain.Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || !isLetter(s[0]) || !isLetter(s[1]) {
		return domain.Position{}, errors.WithMessagef(errMalformedInput, "'%s'", s)
	}
	row, col := indexOf(rowKeys, s[0]), indexOf(colKeys, s[1])
	if row < 0 || col < 0 {
		return domain.Position{}, errors.WithMessagef(errUnknownCell, "'%s'", s)
	}
	return domain.Position{Row: row, Col: col}, nil
}

func Key(pos domain.Position) string {
	if !pos.Valid() {
		return "??"
	}
	return string([]byte{rowKeys[pos.Row], colKeys[pos.Col]})
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func indexOf(keys [domain.BoardSize]byte, b byte) int {
	for i, k := range keys {
		if k == b {
			return i
		}
	}
	return -1
}
