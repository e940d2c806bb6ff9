package gen

import (
	"errors"
	"io"
	"log/slog"
)

// Option configures an augmentation run.
type Option func(*augmenter) error

// augmenter holds the settings of one Augment call.
type augmenter struct {
	verbose bool
	logger  *slog.Logger
}

// WithVerbose enables progress notices while augmenting. It has no effect
// on the produced data.
func WithVerbose(verbose bool) Option {
	return func(a *augmenter) error {
		a.verbose = verbose
		return nil
	}
}

// WithLogger sets the logger progress notices are written to.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *augmenter) error {
		if logger == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

// apply applies options and collects all errors.
func (a *augmenter) apply(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// log returns the logger of the run. It discards everything unless the run
// is verbose.
func (a *augmenter) log() *slog.Logger {
	switch {
	case !a.verbose:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	case a.logger != nil:
		return a.logger
	default:
		return slog.Default()
	}
}
