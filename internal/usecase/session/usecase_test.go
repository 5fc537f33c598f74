package session

import (
	"context"
	"io"
	"testing"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/engine"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/game"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/scoreboard"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	heads bool
}

func (s fakeSource) Intn(int) int { return 0 }

func (s fakeSource) Heads() bool { return s.heads }

type fakePrompter struct {
	difficulties []domain.Difficulty
	again        []bool
	askedLevel   int
	err          error
}

func (p *fakePrompter) AskDifficulty(context.Context) (domain.Difficulty, error) {
	p.askedLevel++
	d := p.difficulties[0]
	p.difficulties = p.difficulties[1:]
	return d, nil
}

func (p *fakePrompter) AskCoinCall(context.Context) (domain.CoinSide, error) {
	if p.err != nil {
		return 0, p.err
	}
	return domain.Heads, nil
}

func (p *fakePrompter) AskPlayAgain(context.Context) (bool, error) {
	again := p.again[0]
	p.again = p.again[1:]
	return again, nil
}

// stoppingPrompter fails with cause once its scripted play again answers run out.
type stoppingPrompter struct {
	*fakePrompter
	cause error
}

func (p *stoppingPrompter) AskPlayAgain(ctx context.Context) (bool, error) {
	if len(p.again) == 0 {
		return false, p.cause
	}
	return p.fakePrompter.AskPlayAgain(ctx)
}

type fakeRenderer struct {
	welcomed bool
	tosses   []domain.CoinToss
	plies    int
	results  []domain.GameResult
	tallies  []domain.Tally
}

func (r *fakeRenderer) ShowWelcome() { r.welcomed = true }
func (r *fakeRenderer) ShowCoinToss(toss domain.CoinToss) { r.tosses = append(r.tosses, toss) }
func (r *fakeRenderer) ShowKey() {}
func (r *fakeRenderer) ShowPly(domain.Ply, domain.Board) { r.plies++ }
func (r *fakeRenderer) ShowResult(result domain.GameResult) { r.results = append(r.results, result) }
func (r *fakeRenderer) ShowTally(tally domain.Tally) { r.tallies = append(r.tallies, tally) }

type fakeReporter struct {
	results []domain.GameResult
	err     error
}

func (r *fakeReporter) Report(result domain.GameResult) error {
	r.results = append(r.results, result)
	return r.err
}

func hardVersusHard(matchID string, observer func(domain.Ply, domain.Board)) domain.GameUseCase {
	logger := zap.NewNop()
	return game.New(engine.NewHard(logger), fakeSource{heads: true}, logger,
		game.WithMatchID(matchID), game.WithPlyObserver(observer))
}

func TestUseCase_Run(t *testing.T) {
	// Given: a player who wants exactly two matches on the preset hard level
	prompter := &fakePrompter{again: []bool{true, false}}
	renderer := &fakeRenderer{}
	reporter := &fakeReporter{}
	score := scoreboard.New(zap.NewNop())
	u := New(hardVersusHard, prompter, renderer, reporter, score, zap.NewNop(), WithDifficulty(domain.Hard))

	// When: the session runs
	err := u.Run(context.Background())

	// Then: both matches were drawn, shown, reported and tallied
	require.NoError(t, err)
	assert.Zero(t, prompter.askedLevel)
	assert.True(t, renderer.welcomed)
	require.Len(t, renderer.results, 2)
	assert.Equal(t, 18, renderer.plies)
	require.Len(t, reporter.results, 2)
	assert.NotEqual(t, reporter.results[0].MatchID, reporter.results[1].MatchID)
	for _, result := range reporter.results {
		assert.Equal(t, domain.Draw, result.Outcome)
		assert.Equal(t, domain.Hard, result.Difficulty)
	}
	require.Len(t, renderer.tosses, 2)
	assert.True(t, renderer.tosses[0].PlayerFirst)
	require.Equal(t, []domain.Tally{{Matches: 2, Draws: 2}}, renderer.tallies)
}

func TestUseCase_RunAsksDifficulty(t *testing.T) {
	prompter := &fakePrompter{difficulties: []domain.Difficulty{domain.Hard}, again: []bool{false}}
	reporter := &fakeReporter{err: errors.New("broken pipe")}
	u := New(hardVersusHard, prompter, &fakeRenderer{}, reporter, scoreboard.New(zap.NewNop()), zap.NewNop())

	err := u.Run(context.Background())

	// Then: a failing reporter does not end the session
	require.NoError(t, err)
	assert.Equal(t, 1, prompter.askedLevel)
	require.Len(t, reporter.results, 1)
	assert.Equal(t, domain.Hard, reporter.results[0].Difficulty)
}

func TestUseCase_RunPropagatesPromptError(t *testing.T) {
	errTerminal := errors.New("terminal gone")
	prompter := &fakePrompter{err: errTerminal}
	renderer := &fakeRenderer{}
	u := New(hardVersusHard, prompter, renderer, &fakeReporter{}, scoreboard.New(zap.NewNop()), zap.NewNop(),
		WithDifficulty(domain.Easy))

	err := u.Run(context.Background())

	require.ErrorIs(t, err, errTerminal)
	assert.Empty(t, renderer.tallies)
}

func TestUseCase_RunShowsTallyWhenInputStops(t *testing.T) {
	for _, cause := range []error{io.EOF, context.Canceled} {
		t.Run(cause.Error(), func(t *testing.T) {
			// Given: one finished match, then the input stops at the play again prompt
			prompter := &stoppingPrompter{fakePrompter: &fakePrompter{}, cause: cause}
			renderer := &fakeRenderer{}
			u := New(hardVersusHard, prompter, renderer,
				&fakeReporter{}, scoreboard.New(zap.NewNop()), zap.NewNop(), WithDifficulty(domain.Hard))

			// When: the session runs
			err := u.Run(context.Background())

			// Then: the cause is returned and the farewell tally is still shown
			require.ErrorIs(t, err, cause)
			require.Len(t, renderer.results, 1)
			require.Equal(t, []domain.Tally{{Matches: 1, Draws: 1}}, renderer.tallies)
		})
	}
}

func TestUseCase_Stop(t *testing.T) {
	renderer := &fakeRenderer{}
	u := New(hardVersusHard, &fakePrompter{}, renderer, &fakeReporter{}, scoreboard.New(zap.NewNop()), zap.NewNop())

	u.Stop()
	err := u.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, renderer.results)
	require.Equal(t, []domain.Tally{{}}, renderer.tallies)
}
