// SPDX-License-Identifier: MIT
// Package: lvbin/series
//
// options.go — functional options for the generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: every generator takes a seed; WithRand
//     substitutes a caller-owned stream shared across several calls.
//   • Options apply in order; later ones override earlier ones.

package series

import "math/rand"

// Deterministic defaults.
const (
	defaultMean  = 0.0 // additive offset
	defaultSigma = 1.0 // innovation / noise standard deviation
	defaultTrend = 0.0 // linear increment per sample
)

// Option customizes a generator by mutating its config.
type Option func(*config)

// config aggregates all generator knobs. Passed by value.
type config struct {
	rng   *rand.Rand
	mean  float64
	sigma float64
	trend float64
}

// WithRand provides an explicit RNG; the seed argument is then ignored.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithMean sets the constant offset added to every sample.
func WithMean(mu float64) Option {
	return func(c *config) { c.mean = mu }
}

// WithSigma sets the noise standard deviation. Panics if sigma < 0.
// Zero yields noiseless output.
func WithSigma(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithSigma(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds trend*i to sample i. Any real value is accepted.
func WithTrend(trend float64) Option {
	return func(c *config) { c.trend = trend }
}

func newConfig(opts ...Option) config {
	cfg := config{
		mean:  defaultMean,
		sigma: defaultSigma,
		trend: defaultTrend,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// rngFrom prefers the shared stream from WithRand, else seeds a local one.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}
