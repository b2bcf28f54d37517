// Package logbin estimates standard errors of means of correlated time series
// (Monte Carlo chains, simulation traces, sensor streams) without storing the
// series.
//
// 🚀 What is logarithmic binning?
//
//	Level l of a binner accumulates running sums over non-overlapping blocks
//	of 2^l consecutive samples. Pairs of same-level values are averaged and
//	promoted upward through a per-level pairing cell, so N levels cover
//	2^N − 1 samples in O(N) memory with amortized O(1) work per sample.
//	Serial correlation shows up as a standard error that grows with the
//	level and plateaus once blocks decorrelate.
//
// ✨ Key features:
//   - scalar and fixed-shape array elements, float64 or complex128
//   - mean, variance, scaled variance, standard error per level
//   - autocorrelation time and convergence diagnostics
//   - overflow buffer past the deepest level; Grow replays it into new levels
//   - sentinel errors (errors.Is), functional options, zap logging
//
// ⚙️ Usage:
//
//	b, err := logbin.New[float64](1 << 20)
//	if err != nil {
//	  // ErrInvalidCapacity
//	}
//	b.Append(samples)
//
//	lvl := b.ReliableLevel()
//	se, _ := b.StdError(lvl)
//	tau, _ := b.AutocorrelationTime(lvl)
//	ok, _ := b.HasConverged(lvl, logbin.DefaultConvergenceThreshold)
//
// Concurrency:
//
//	Binners are single-goroutine objects. Use one binner per worker and
//	serialize access externally when sharing one.
//
// Performance:
//
//   - Push:   amortized O(size), worst case O(N·size)
//   - Memory: O(N·size) + overflow buffer
package logbin
