// Package fullbin is the store-everything counterpart of logbin: it keeps the
// whole series in memory and evaluates blocking statistics for any block
// size on demand.
//
// Its main diagnostic is the error coefficient
//
//	R(k) = k · var(block means of size k) / var(samples)
//
// which plateaus at 2τ+1 once blocks are longer than the correlation time.
// Because it shares no state with logbin, it serves as an independent
// reference when cross-checking streaming estimates:
//
//	logbin  ScaledVariance(l) ≈ fullbin BlockedVariance(2^l) / (n / 2^l)
//	logbin  AutocorrelationTime(l) ≈ fullbin AutocorrelationTime(2^l)
//
// Memory is O(n); use logbin for unbounded streams.
package fullbin
