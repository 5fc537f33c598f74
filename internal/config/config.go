package config

import (
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLogLevel     = errors.New("unknown log level")
	ErrUnknownReportOutput = errors.New("unknown report output")
)

const (
	StdoutOutput = "stdout"
	StderrOutput = "stderr"
)

type ReportConfig struct {
	Enabled bool   `yaml:"enabled" env:"TTT_REPORT" env-description:"print a JSON line per finished match"`
	Output  string `yaml:"output" env:"TTT_REPORT_OUTPUT" env-default:"stderr" env-description:"stdout or stderr"`
}

type config struct {
	LogLevel   string       `yaml:"log_level" env:"TTT_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	Seed       uint64       `yaml:"seed" env:"TTT_SEED" env-description:"random seed, 0 seeds from the clock"`
	Difficulty string       `yaml:"difficulty" env:"TTT_DIFFICULTY" env-description:"easy or hard, empty to ask every match"`
	Report     ReportConfig `yaml:"report"`
}

// New reads the YAML file at cfgPath, if any, and lets environment variables
// override it.
func New(cfgPath string) (config, error) {
	cfg := config{}
	file, err := os.Open(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return config{}, errors.WithMessage(err, "open config file")
	default:
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return config{}, errors.WithMessage(err, "decode config file")
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return config{}, errors.WithMessage(err, "read environment")
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// Usage describes the environment variables understood by New.
func Usage(w io.Writer, usageFuncs ...func()) func() {
	return cleanenv.FUsage(w, &config{}, nil, usageFuncs...)
}

func (c config) Level() zapcore.Level {
	level, _ := zapcore.ParseLevel(c.LogLevel)
	return level
}

// PresetDifficulty returns false when the difficulty is asked every match.
func (c config) PresetDifficulty() (domain.Difficulty, bool) {
	if c.Difficulty == "" {
		return 0, false
	}
	d, err := domain.ParseDifficulty(c.Difficulty)
	return d, err == nil
}

func (c config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.WithMessagef(ErrUnknownLogLevel, "'%s'", c.LogLevel)
	}
	if c.Difficulty != "" {
		if _, err := domain.ParseDifficulty(c.Difficulty); err != nil {
			return errors.WithMessage(err, "validate difficulty")
		}
	}
	if c.Report.Output != StdoutOutput && c.Report.Output != StderrOutput {
		return errors.WithMessagef(ErrUnknownReportOutput, "'%s'", c.Report.Output)
	}
	return nil
}
