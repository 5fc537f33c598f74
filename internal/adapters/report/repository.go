package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/tic-tac-toe-cpu/internal/domain"
	"github.com/pkg/errors"
)

type jsonReporter struct {
	enc *jsoniter.Encoder
}

// NewJSON writes every finished match as a single JSON line.
func NewJSON(w io.Writer) jsonReporter {
	return jsonReporter{
		enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w),
	}
}

func (r jsonReporter) Report(result domain.GameResult) error {
	if err := r.enc.Encode(result); err != nil {
		return errors.WithMessage(err, "encode game result")
	}
	return nil
}

type nopReporter struct{}

func Nop() nopReporter {
	return nopReporter{}
}

func (nopReporter) Report(domain.GameResult) error {
	return nil
}
