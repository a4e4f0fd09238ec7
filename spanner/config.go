package spanner

import (
	"time"

	"github.com/dagspan/dagspan/jumpindex"
)

// Option customizes a Spanner's Config before Preprocess runs.
//
// As a rule, option constructors never panic at runtime and ignore nil
// inputs.
type Option func(cfg *Config)

// Config holds the configurable parameters of a Spanner's preprocessing
// pass: the trimming policy, the jump-distance materialization cap, and
// whether per-phase timing is reported through ProgressFunc.
//
// Config is not safe for concurrent mutation; each Spanner owns its own.
type Config struct {
	Trimming     jumpindex.TrimmingStrategy
	JumpDistance int
	Progress     bool
	ProgressFunc func(phase string, d time.Duration)
}

// DefaultConfig returns a Config initialized with defaults, then applies
// each provided Option in order. If opts is empty, returns: FullTrimming,
// UnboundedJumpDistance, progress reporting disabled.
func DefaultConfig(opts ...Option) *Config {
	cfg := &Config{
		Trimming:     jumpindex.FullTrimming,
		JumpDistance: jumpindex.UnboundedJumpDistance,
		Progress:     false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithTrimming selects the trimming policy applied after the initial
// forward pass.
func WithTrimming(strategy jumpindex.TrimmingStrategy) Option {
	return func(cfg *Config) {
		cfg.Trimming = strategy
	}
}

// WithJumpDistance caps how many hierarchical levels the jump index
// materializes reach matrices for. jumpindex.UnboundedJumpDistance (0)
// leaves every level materialized.
func WithJumpDistance(distance int) Option {
	return func(cfg *Config) {
		cfg.JumpDistance = distance
	}
}

// WithProgress enables per-phase timing reports during Preprocess. If fn is
// nil, this option is a no-op.
func WithProgress(fn func(phase string, d time.Duration)) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.Progress = true
			cfg.ProgressFunc = fn
		}
	}
}
