package xenv

import (
	"github.com/sxwebdev/xenv/loader"
	"github.com/sxwebdev/xenv/sources"
	"go.uber.org/zap"
)

// Option configures Validate, Load and the other registry operations.
type Option func(*options)

type options struct {
	// lookup reads the environment, os.LookupEnv when nil.
	lookup sources.LookupFunc
	// envPrefix is prepended to every name looked up in the environment.
	envPrefix string

	// strictFiles set to true turns missing config files into errors.
	strictFiles bool
	// disallowUnknownKeys set to true fails validation when a config file
	// section holds keys no variable declares.
	disallowUnknownKeys bool

	loader *loader.Loader
	logger *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.loader == nil {
		o.loader = loader.Default(loader.WithLogger(o.logger))
	}

	return o
}

// WithLookup replaces os.LookupEnv as the environment reader.
func WithLookup(lookup sources.LookupFunc) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithEnvPrefix looks up PREFIX_NAME in the environment for a variable
// declared as NAME. Config file keys are not prefixed.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithLoader sets the loader used to read config files.
func WithLoader(l *loader.Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithStrictFiles makes every candidate config file mandatory.
func WithStrictFiles() Option {
	return func(o *options) {
		o.strictFiles = true
	}
}

// WithDisallowUnknownKeys fails with *UnknownKeysError when a config file
// section holds keys no variable declares.
func WithDisallowUnknownKeys() Option {
	return func(o *options) {
		o.disallowUnknownKeys = true
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
