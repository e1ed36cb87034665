package registry

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a registry.
type Option func(*options)

// WithLogger sets the structured logger used for debug output on mass
// operations. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
