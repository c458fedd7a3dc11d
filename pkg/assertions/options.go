package assertions

import (
	"log/slog"

	"github.com/botspec/go-botspec/pkg/internal/logging"
	"github.com/go-softwarelab/common/pkg/to"
)

// Options configures card assertions.
type Options struct {
	logger *slog.Logger
}

// Option changes Options.
type Option = func(*Options)

// WithLogger makes assertions log every evaluation to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	// don't override the default
	if logger == nil {
		return func(*Options) {}
	}

	return func(options *Options) {
		options.logger = logger
	}
}

// WithoutLogging silences assertion logs.
func WithoutLogging() Option {
	return func(options *Options) {
		options.logger = slog.New(slog.DiscardHandler)
	}
}

func newChain(opts []Option) chain {
	options := to.OptionsWithDefault(Options{
		logger: slog.Default(),
	}, opts...)

	return chain{
		logger: logging.Child(options.logger, "card-assertions"),
	}
}
