// SPDX-License-Identifier: MIT

package logbin

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbin/internal/numeric"
)

// ArrayBinner is a logarithmic binning engine over fixed-shape arrays of
// float64 or complex128. Arrays are pushed flat in row-major order; every
// statistic is evaluated elementwise.
//
// The zero value has no levels and must not be pushed; use NewArray,
// FromPrototype or FromArraySeries. Like Binner, an ArrayBinner is not safe
// for concurrent use.
type ArrayBinner[S numeric.Number] struct {
	engine[S]
}

// NewArray creates an empty array binner for elements of the given shape.
//
// Errors:
//   - ErrInvalidCapacity if capacity <= 0.
//   - ErrInvalidZeroPrototype if shape is empty or has a non-positive dimension.
func NewArray[S numeric.Number](capacity int, shape []int, opts ...Option) (*ArrayBinner[S], error) {
	if capacity <= 0 {
		return nil, logbinErrorf(opNewArray, ErrInvalidCapacity)
	}
	if len(shape) == 0 {
		return nil, logbinErrorf(opNewArray, fmt.Errorf("empty shape: %w", ErrInvalidZeroPrototype))
	}
	el, err := newElement[S](shape)
	if err != nil {
		return nil, logbinErrorf(opNewArray, err)
	}
	e, err := newEngine(capacity, el, newConfig(opts...))
	if err != nil {
		return nil, logbinErrorf(opNewArray, err)
	}
	return &ArrayBinner[S]{engine: e}, nil
}

// FromPrototype creates an empty one-dimensional array binner shaped like
// proto, which must be a non-empty all-zero array.
//
// Errors:
//   - ErrInvalidCapacity if capacity <= 0.
//   - ErrInvalidZeroPrototype if proto is empty or holds a non-zero entry.
func FromPrototype[S numeric.Number](proto []S, capacity int, opts ...Option) (*ArrayBinner[S], error) {
	if capacity <= 0 {
		return nil, logbinErrorf(opFromPrototype, ErrInvalidCapacity)
	}
	el, err := classifyPrototype(proto)
	if err != nil {
		return nil, logbinErrorf(opFromPrototype, err)
	}
	e, err := newEngine(capacity, el, newConfig(opts...))
	if err != nil {
		return nil, logbinErrorf(opFromPrototype, err)
	}
	return &ArrayBinner[S]{engine: e}, nil
}

// FromArraySeries creates a one-dimensional array binner whose width is taken
// from series[0], sized for len(series) values (or WithCapacity), and appends
// the series in order.
//
// Errors:
//   - ErrInvalidZeroPrototype if series or series[0] is empty.
//   - ErrDimensionMismatch if any row differs in length from series[0].
func FromArraySeries[S numeric.Number](series [][]S, opts ...Option) (*ArrayBinner[S], error) {
	if len(series) == 0 || len(series[0]) == 0 {
		return nil, logbinErrorf(opFromArraySeries, ErrInvalidZeroPrototype)
	}
	cfg := newConfig(opts...)
	capacity := cfg.capacity
	if capacity == 0 {
		capacity = len(series)
	}
	el, err := newElement[S]([]int{len(series[0])})
	if err != nil {
		return nil, logbinErrorf(opFromArraySeries, err)
	}
	e, err := newEngine(capacity, el, cfg)
	if err != nil {
		return nil, logbinErrorf(opFromArraySeries, err)
	}
	b := &ArrayBinner[S]{engine: e}
	if err := b.AppendArrays(series); err != nil {
		return nil, logbinErrorf(opFromArraySeries, err)
	}

	cfg.logger.Debug("logbin: array binner created from series",
		zap.Int("samples", len(series)),
		zap.Int("width", el.size),
		zap.Int("levels", b.Levels()))

	return b, nil
}

// Shape returns a copy of the element shape.
func (b *ArrayBinner[S]) Shape() []int { return append([]int(nil), b.elem.shape...) }

// Size returns the flat element width (product of Shape).
func (b *ArrayBinner[S]) Size() int { return b.elem.size }

// PushArray adds one raw sample given flat in row-major order.
// On error the binner is unchanged.
//
// Errors:
//   - ErrDimensionMismatch if len(x) != Size().
func (b *ArrayBinner[S]) PushArray(x []S) error {
	if err := b.elem.checkLen(len(x)); err != nil {
		return logbinErrorf(opPushArray, err)
	}
	b.propagate(0, x)
	return nil
}

// AppendArrays pushes every row of xs in order. All rows are validated first;
// if any mismatch, every offending row is reported and nothing is pushed.
//
// Errors:
//   - ErrDimensionMismatch (possibly several, combined) on bad rows.
func (b *ArrayBinner[S]) AppendArrays(xs [][]S) error {
	var errs error
	for i, x := range xs {
		if err := b.elem.checkLen(len(x)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i, err))
		}
	}
	if errs != nil {
		return logbinErrorf(opAppendArrays, errs)
	}
	for _, x := range xs {
		b.propagate(0, x)
	}
	return nil
}

// Overflow returns a copy of the values that outran the deepest level.
func (b *ArrayBinner[S]) Overflow() [][]S {
	out := make([][]S, len(b.overflow))
	for i, v := range b.overflow {
		out[i] = append([]S(nil), v...)
	}
	return out
}

// Grow returns a deeper, independent copy of b with its overflow replayed.
// See Binner.Grow for the contract.
func (b *ArrayBinner[S]) Grow(newCapacity int) (*ArrayBinner[S], error) {
	g, err := b.grow(newCapacity)
	if err != nil {
		return nil, logbinErrorf(opGrow, err)
	}
	return &ArrayBinner[S]{engine: g}, nil
}

// Mean returns the elementwise mean at level.
func (b *ArrayBinner[S]) Mean(level int) ([]S, error) { return b.mean(level) }

// Variance returns the elementwise Bessel-corrected variance at level.
func (b *ArrayBinner[S]) Variance(level int) ([]float64, error) { return b.variance(level) }

// ScaledVariance returns the elementwise Variance(level) / count[level].
func (b *ArrayBinner[S]) ScaledVariance(level int) ([]float64, error) {
	return b.scaledVariance(level)
}

// StdError returns the elementwise standard error of the mean at level.
func (b *ArrayBinner[S]) StdError(level int) ([]float64, error) { return b.stdError(level) }

// ReliableStdError returns StdError at ReliableLevel.
func (b *ArrayBinner[S]) ReliableStdError() ([]float64, error) {
	return b.stdError(b.ReliableLevel())
}

// AutocorrelationTime returns the elementwise autocorrelation time at level.
func (b *ArrayBinner[S]) AutocorrelationTime(level int) ([]float64, error) { return b.tau(level) }

// Convergence returns the mean over elements of
// |sv(level) - sv(level-1)| / sv(level-1).
func (b *ArrayBinner[S]) Convergence(level int) (float64, error) { return b.convergence(level) }

// HasConverged reports Convergence(level) <= threshold.
func (b *ArrayBinner[S]) HasConverged(level int, threshold float64) (bool, error) {
	c, err := b.convergence(level)
	if err != nil {
		return false, err
	}
	return c <= threshold, nil
}

// AllMeans returns Mean for every level holding at least one value.
func (b *ArrayBinner[S]) AllMeans() ([][]S, error) {
	return collect(opMean, b.populated(0, needMean), b.mean)
}

// AllVariances returns Variance for every level holding at least two values.
func (b *ArrayBinner[S]) AllVariances() ([][]float64, error) {
	return collect(opVariance, b.populated(0, needVariance), b.variance)
}

// AllScaledVariances returns ScaledVariance for every level holding at least
// two values.
func (b *ArrayBinner[S]) AllScaledVariances() ([][]float64, error) {
	return collect(opScaledVariance, b.populated(0, needVariance), b.scaledVariance)
}

// AllStdErrors returns StdError for every level holding at least two values.
func (b *ArrayBinner[S]) AllStdErrors() ([][]float64, error) {
	return collect(opStdError, b.populated(0, needVariance), b.stdError)
}

// AllAutocorrelationTimes returns AutocorrelationTime for every level holding
// at least two values.
func (b *ArrayBinner[S]) AllAutocorrelationTimes() ([][]float64, error) {
	return collect(opTau, b.populated(0, needVariance), b.tau)
}

// AllConvergences returns Convergence for levels 1.. holding at least two values.
func (b *ArrayBinner[S]) AllConvergences() ([]float64, error) {
	return collect(opConvergence, b.populated(1, needVariance), b.convergence)
}
