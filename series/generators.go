// SPDX-License-Identifier: MIT
// Package: lvbin/series
//
// generators.go — deterministic synthetic time series.
//
// Purpose:
//   • Reproducible fixtures with known correlation structure for error
//     analysis tests, examples and benchmarks.
//   • White noise (τ = 0), AR(1) (τ = φ/(1−φ)), deterministic ramps
//     (maximally correlated), and complex / vector variants.
//
// Contract:
//   • Output is a pure function of (n, params, seed, options).
//   • O(n·width) time and memory. No panics, no global state.
//   • Sample i is  mean + trend·i + model_i; noise draws use rng.NormFloat64.

package series

import "math"

// White returns n i.i.d. Gaussian samples N(mean, sigma²) plus the trend.
//
// Errors:
//   - ErrBadSize if n < 1.
func White(n int, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, seriesErrorf(methodWhite, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.mean + cfg.trend*float64(i) + cfg.sigma*rng.NormFloat64()
	}
	return out, nil
}

// AR1 returns n samples of the stationary process
//
//	x₀ = σ/√(1−φ²)·ε₀,  xᵢ = φ·xᵢ₋₁ + σ·εᵢ
//
// shifted by mean and trend. Its integrated autocorrelation time is
// AR1Tau(phi).
//
// Errors:
//   - ErrBadSize if n < 1.
//   - ErrBadParameter if |phi| >= 1 (non-stationary) or phi is NaN.
func AR1(n int, phi float64, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, seriesErrorf(methodAR1, ErrBadSize, "n=%d", n)
	}
	if math.IsNaN(phi) || math.Abs(phi) >= 1 {
		return nil, seriesErrorf(methodAR1, ErrBadParameter, "phi=%g", phi)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	x := cfg.sigma / math.Sqrt(1-phi*phi) * rng.NormFloat64()
	for i := range out {
		if i > 0 {
			x = phi*x + cfg.sigma*rng.NormFloat64()
		}
		out[i] = cfg.mean + cfg.trend*float64(i) + x
	}
	return out, nil
}

// AR1Tau returns the autocorrelation time φ/(1−φ) of an AR(1) process in the
// convention where the variance of the mean is inflated by 2τ+1.
func AR1Tau(phi float64) float64 {
	return phi / (1 - phi)
}

// Ramp returns the noiseless line mean + slope·i. Only an explicit WithSigma
// adds noise, drawn from seed 0 unless WithRand is given.
//
// Errors:
//   - ErrBadSize if n < 1.
func Ramp(n int, slope float64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, seriesErrorf(methodRamp, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(append([]Option{WithSigma(0)}, opts...)...)
	rng := rngFrom(cfg, 0)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.mean + (slope+cfg.trend)*float64(i)
		if cfg.sigma > 0 {
			out[i] += cfg.sigma * rng.NormFloat64()
		}
	}
	return out, nil
}

// ComplexWhite returns n complex samples whose real and imaginary parts are
// independent White streams (mean and trend apply to the real part).
//
// Errors:
//   - ErrBadSize if n < 1.
func ComplexWhite(n int, seed int64, opts ...Option) ([]complex128, error) {
	if n < 1 {
		return nil, seriesErrorf(methodComplexWhite, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]complex128, n)
	var re, im float64
	for i := range out {
		re = cfg.mean + cfg.trend*float64(i) + cfg.sigma*rng.NormFloat64()
		im = cfg.sigma * rng.NormFloat64()
		out[i] = complex(re, im)
	}
	return out, nil
}

// VectorWhite returns n rows of dim i.i.d. White samples each.
//
// Errors:
//   - ErrBadSize if n < 1 or dim < 1.
func VectorWhite(n, dim int, seed int64, opts ...Option) ([][]float64, error) {
	if n < 1 || dim < 1 {
		return nil, seriesErrorf(methodVectorWhite, ErrBadSize, "n=%d dim=%d", n, dim)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([][]float64, n)
	flat := make([]float64, n*dim)
	for i := range out {
		row := flat[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range row {
			row[j] = cfg.mean + cfg.trend*float64(i) + cfg.sigma*rng.NormFloat64()
		}
		out[i] = row
	}
	return out, nil
}
