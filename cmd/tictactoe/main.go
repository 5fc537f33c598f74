package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/adapters/console"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/adapters/random"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/adapters/report"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/config"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/game"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/scoreboard"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/usecase/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger, level, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Usage = config.Usage(flag.CommandLine.Output(), flag.Usage)
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	level.SetLevel(cfg.Level())

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errGroup, ctx := errgroup.WithContext(ctx)

	var opts []session.Option
	if d, ok := cfg.PresetDifficulty(); ok {
		opts = append(opts, session.WithDifficulty(d))
	}
	var (
		rng            = random.New(cfg.Seed)
		term           = console.New(os.Stdin, os.Stdout, logger)
		score          = scoreboard.New(logger)
		newGame        = func(matchID string, observer func(domain.Ply, domain.Board)) domain.GameUseCase {
			return game.New(term, rng, logger, game.WithMatchID(matchID), game.WithPlyObserver(observer))
		}
		sessionUseCase = session.New(newGame, term, term, newReporter(cfg.Report), score, logger, opts...)
	)
	defer func() {
		_ = term.Close()
	}()
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			sessionUseCase.Stop()
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	errGroup.Go(func() error {
		defer cancel()
		err := sessionUseCase.Run(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.WithMessage(err, "run session")
		}
		return nil
	})
	if err := errGroup.Wait(); err != nil {
		logger.Info("shutting down: "+err.Error(), zap.Any("tally", score.Snapshot()))
	}
}

// newLogger starts at info so config errors are reported before the configured
// level is known.
func newLogger() (*zap.Logger, zap.AtomicLevel, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	logger, err := cfg.Build()
	return logger, cfg.Level, err
}

func newReporter(cfg config.ReportConfig) domain.Reporter {
	if !cfg.Enabled {
		return report.Nop()
	}
	if cfg.Output == config.StdoutOutput {
		return report.NewJSON(os.Stdout)
	}
	return report.NewJSON(os.Stderr)
}
