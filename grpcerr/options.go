package grpcerr

import "log/slog"

// Option configures the interceptors.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger translated failures are recorded with.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
