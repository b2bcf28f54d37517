// SPDX-License-Identifier: MIT

// Package logbin: functional configuration for binner construction.
// This file defines:
//   - Option (functional setter over an internal config),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - newConfig, which applies options in order (later overrides earlier).
//
// Notes:
//   - WithCapacity is honored by NewStreaming and the series constructors
//     (FromSeries, FromArraySeries) only; New/NewArray/FromPrototype take
//     capacity explicitly.
//   - The logger never sees raw samples, only structural events.
package logbin

import "go.uber.org/zap"

// Defaults.
const (
	// DefaultLevels is the depth NewStreaming uses when the stream length is
	// unknown: CapacityOf(DefaultLevels) = 2^32 - 1 values before overflow.
	DefaultLevels = 32

	// MinReliableCount is the per-level sample count below which a level's
	// variance estimate is considered too noisy (see ReliableLevel).
	MinReliableCount = 32

	// DefaultConvergenceThreshold is the conventional HasConverged threshold.
	DefaultConvergenceThreshold = 0.05
)

const (
	panicNilLogger       = "logbin: WithLogger(nil)"
	panicCapacityInvalid = "logbin: WithCapacity: capacity must be > 0"
)

// Option customizes binner construction.
type Option func(*config)

// config holds the effective construction settings.
type config struct {
	logger   *zap.Logger
	capacity int // 0 means "infer from the series length"
}

// WithLogger attaches a structured logger. Panics on nil.
// Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *config) { c.logger = l }
}

// WithCapacity overrides the capacity NewStreaming or a series constructor
// would otherwise choose. Panics if capacity <= 0.
func WithCapacity(capacity int) Option {
	if capacity <= 0 {
		panic(panicCapacityInvalid)
	}
	return func(c *config) { c.capacity = capacity }
}

// newConfig resolves opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
