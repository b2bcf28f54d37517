// Package lvbin is a toolkit for estimating the statistical error of the mean
// of correlated time series: Monte Carlo chains, molecular dynamics traces,
// streaming sensor data.
//
// 🚀 What is lvbin?
//
//	A small, generic library that brings together:
//		• logbin:  streaming logarithmic binning in O(log n) memory
//		• fullbin: store-everything fixed-block reference estimator
//		• series:  deterministic synthetic series with known correlation
//
// ✨ Why choose lvbin?
//
//   - One generic API for float64 and complex128, scalars and arrays
//   - Sentinel errors checked with errors.Is, never panics on data
//   - Structured logging through zap, silent by default
//
// Under the hood, everything is organized under three subpackages:
//
//	logbin/  — Binner, ArrayBinner, Grow, per-level statistics & diagnostics
//	fullbin/ — Binner over stored samples, BlockedVariance, RValue
//	series/  — White, AR1, Ramp, ComplexWhite, VectorWhite generators
//
// 📦 Quickstart:
//
//	import "github.com/katalvlaran/lvbin/logbin"
//
//	b, _ := logbin.New[float64](1 << 20)
//	b.Append(trace)
//	se, _ := b.ReliableStdError()
//
// For a runnable walkthrough see examples/.
package lvbin
