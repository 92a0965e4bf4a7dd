package huffman

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
	// How many buffers CompressAll and DecompressAll process at once.
	concurrency int
}

func defaultOption() *option {
	return &option{
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	if o.concurrency < 1 {
		return errors.New("`concurrency` must be greater than 0")
	}
	return nil
}

type OptionFunc func(*option) error

// WithLogger sets the logger used by the Codec.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithConcurrency sets how many buffers the batch methods process in
// parallel.
func WithConcurrency(n int) OptionFunc {
	return func(o *option) error {
		if n < 1 {
			return errors.New("`concurrency` must be greater than 0")
		}
		o.concurrency = n
		return nil
	}
}
