package model

import (
	"log/slog"
	"math/rand/v2"

	"github.com/neurox-ml/neurox/internal/tensor"
)

// Option configures a Model at construction time.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithRand draws every layer's initial parameters from rng.
// A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed makes initialization reproducible: two models built from the same
// widths, activation and seed start with identical parameters.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = tensor.NewRand(seed)
	}
}

// WithLogger sets the logger that receives training progress at debug level.
// A nil logger is ignored; the default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
