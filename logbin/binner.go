// SPDX-License-Identifier: MIT

package logbin

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbin/internal/numeric"
)

// Binner is a logarithmic binning engine over scalar elements
// (float64 or complex128).
//
// The zero value has no levels and must not be pushed; use New, NewStreaming
// or FromSeries.
//
// A Binner is not safe for concurrent use. Statistics do not mutate it and
// may run concurrently with each other, never with Push/Append/Reset.
type Binner[S numeric.Number] struct {
	engine[S]
	one [1]S
}

// New creates an empty scalar binner able to absorb capacity values before
// its overflow buffer is used.
//
// Errors:
//   - ErrInvalidCapacity if capacity <= 0.
func New[S numeric.Number](capacity int, opts ...Option) (*Binner[S], error) {
	el, err := newElement[S](nil)
	if err != nil {
		return nil, logbinErrorf(opNew, err)
	}
	e, err := newEngine(capacity, el, newConfig(opts...))
	if err != nil {
		return nil, logbinErrorf(opNew, err)
	}
	return &Binner[S]{engine: e}, nil
}

// NewStreaming creates an empty scalar binner for streams of unknown length:
// CapacityOf(DefaultLevels) values, or WithCapacity when given.
func NewStreaming[S numeric.Number](opts ...Option) (*Binner[S], error) {
	cfg := newConfig(opts...)
	capacity := cfg.capacity
	if capacity == 0 {
		capacity = CapacityOf(DefaultLevels)
	}
	el, err := newElement[S](nil)
	if err != nil {
		return nil, logbinErrorf(opNewStreaming, err)
	}
	e, err := newEngine(capacity, el, cfg)
	if err != nil {
		return nil, logbinErrorf(opNewStreaming, err)
	}
	return &Binner[S]{engine: e}, nil
}

// FromSeries creates a scalar binner sized for series (or WithCapacity) and
// appends the whole series in order.
//
// Errors:
//   - ErrInvalidZeroPrototype if series is empty (no element to classify).
func FromSeries[S numeric.Number](series []S, opts ...Option) (*Binner[S], error) {
	if len(series) == 0 {
		return nil, logbinErrorf(opFromSeries, ErrInvalidZeroPrototype)
	}
	cfg := newConfig(opts...)
	capacity := cfg.capacity
	if capacity == 0 {
		capacity = len(series)
	}
	el, err := newElement[S](nil)
	if err != nil {
		return nil, logbinErrorf(opFromSeries, err)
	}
	e, err := newEngine(capacity, el, cfg)
	if err != nil {
		return nil, logbinErrorf(opFromSeries, err)
	}
	b := &Binner[S]{engine: e}
	b.Append(series)

	cfg.logger.Debug("logbin: binner created from series",
		zap.Int("samples", len(series)),
		zap.Int("levels", b.Levels()))

	return b, nil
}

// Push adds one raw sample.
func (b *Binner[S]) Push(x S) {
	b.one[0] = x
	b.propagate(0, b.one[:])
}

// Append pushes every sample of xs in order. Order matters: the levels
// measure serial correlation, so xs must be in temporal order.
func (b *Binner[S]) Append(xs []S) {
	for _, x := range xs {
		b.Push(x)
	}
}

// Overflow returns a copy of the values that outran the deepest level,
// in arrival order. Each is the average of 2^Levels() raw samples.
func (b *Binner[S]) Overflow() []S {
	out := make([]S, len(b.overflow))
	for i, v := range b.overflow {
		out[i] = v[0]
	}
	return out
}

// Grow returns a new binner with capacity for newCapacity values that
// reproduces every level of b and replays b's overflow buffer into the new
// deeper levels. b is left unchanged and shares no state with the result.
//
// Errors:
//   - ErrInvalidCapacity if newCapacity <= 0.
//   - ErrCapacityNotIncreased if newCapacity needs no more levels than b has.
func (b *Binner[S]) Grow(newCapacity int) (*Binner[S], error) {
	g, err := b.grow(newCapacity)
	if err != nil {
		return nil, logbinErrorf(opGrow, err)
	}
	return &Binner[S]{engine: g}, nil
}

// Mean returns sum[level] / count[level].
func (b *Binner[S]) Mean(level int) (S, error) {
	v, err := b.mean(level)
	if err != nil {
		var zero S
		return zero, err
	}
	return v[0], nil
}

// Variance returns the Bessel-corrected variance of the values at level.
// For complex samples it is var(re) + var(im).
func (b *Binner[S]) Variance(level int) (float64, error) {
	return first(b.variance(level))
}

// ScaledVariance returns Variance(level) / count[level], the squared standard
// error of the mean at block size 2^level.
func (b *Binner[S]) ScaledVariance(level int) (float64, error) {
	return first(b.scaledVariance(level))
}

// StdError returns sqrt(ScaledVariance(level)).
func (b *Binner[S]) StdError(level int) (float64, error) {
	return first(b.stdError(level))
}

// ReliableStdError returns StdError at ReliableLevel.
func (b *Binner[S]) ReliableStdError() (float64, error) {
	return b.StdError(b.ReliableLevel())
}

// AutocorrelationTime returns 0.5·(ScaledVariance(level)/ScaledVariance(0) - 1).
// It is 0 at level 0 by construction.
func (b *Binner[S]) AutocorrelationTime(level int) (float64, error) {
	return first(b.tau(level))
}

// Convergence returns |sv(level) - sv(level-1)| / sv(level-1) where sv is
// ScaledVariance. Level 0 has no predecessor and yields ErrLevelOutOfRange,
// or ErrInsufficientData while fewer than two samples have been pushed.
func (b *Binner[S]) Convergence(level int) (float64, error) {
	return b.convergence(level)
}

// HasConverged reports Convergence(level) <= threshold.
// DefaultConvergenceThreshold is the usual choice.
func (b *Binner[S]) HasConverged(level int, threshold float64) (bool, error) {
	c, err := b.convergence(level)
	if err != nil {
		return false, err
	}
	return c <= threshold, nil
}

// AllMeans returns Mean for every level holding at least one value.
func (b *Binner[S]) AllMeans() ([]S, error) {
	return collect(opMean, b.populated(0, needMean), b.Mean)
}

// AllVariances returns Variance for every level holding at least two values.
func (b *Binner[S]) AllVariances() ([]float64, error) {
	return collect(opVariance, b.populated(0, needVariance), b.Variance)
}

// AllScaledVariances returns ScaledVariance for every level holding at least
// two values.
func (b *Binner[S]) AllScaledVariances() ([]float64, error) {
	return collect(opScaledVariance, b.populated(0, needVariance), b.ScaledVariance)
}

// AllStdErrors returns StdError for every level holding at least two values.
func (b *Binner[S]) AllStdErrors() ([]float64, error) {
	return collect(opStdError, b.populated(0, needVariance), b.StdError)
}

// AllAutocorrelationTimes returns AutocorrelationTime for every level holding
// at least two values.
func (b *Binner[S]) AllAutocorrelationTimes() ([]float64, error) {
	return collect(opTau, b.populated(0, needVariance), b.AutocorrelationTime)
}

// AllConvergences returns Convergence for levels 1.. holding at least two
// values; index i of the result belongs to level i+1.
func (b *Binner[S]) AllConvergences() ([]float64, error) {
	return collect(opConvergence, b.populated(1, needVariance), b.Convergence)
}

// first unwraps a single-element kernel result.
func first(v []float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
