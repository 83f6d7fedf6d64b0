package core

import "github.com/rs/zerolog"

type Policy string

const (
	PolicyRethrow  Policy = "rethrow"
	PolicyQuiet    Policy = "quiet"
	PolicyFallback Policy = "fallback"
)

// Options are resolved once, when the adapter is built.
type Options struct {
	Logger zerolog.Logger
	Name   string
}

type Option func(*Options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithName labels log events with the pipeline stage the adapter serves.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) logFailure(policy Policy, err error) {
	ev := o.Logger.Debug()
	if !ev.Enabled() {
		return
	}
	if o.Name != "" {
		ev = ev.Str("stage", o.Name)
	}
	ev.Str("policy", string(policy)).Err(err).Msg("operation failed")
}
