package selection

import (
	"github.com/sokunmin/featselect/pkg/log"
)

// Option configures a greedy elimination search.
type Option func(*searchConfig)

type searchConfig struct {
	verbose bool
	logger  log.Logger
}

func newSearchConfig(opts ...Option) *searchConfig {
	cfg := &searchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("selection")
	}
	return cfg
}

// WithVerbose enables per-round progress logging: the starting variables
// and score, then each round's accepted score and removed variable.
// Progress output is observational only and never affects the result.
func WithVerbose(verbose bool) Option {
	return func(cfg *searchConfig) {
		cfg.verbose = verbose
	}
}

// WithLogger sets the logger used for progress output. Defaults to the
// package logger writing to the process default slog destination.
func WithLogger(logger log.Logger) Option {
	return func(cfg *searchConfig) {
		cfg.logger = logger
	}
}
