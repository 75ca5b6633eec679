package advanced

import "go.uber.org/zap"

type Options struct {
	// Receives one debug entry per sweep step. Defaults to a no-op logger.
	Logger *zap.Logger
}

type Option func(*Options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
