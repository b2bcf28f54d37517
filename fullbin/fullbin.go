// SPDX-License-Identifier: MIT
// Package: lvbin/fullbin
//
// fullbin.go — full-storage binner and fixed-block-size diagnostics.
//
// Exposed API:
//   - Push / Append / Samples / Len / Reset
//   - Mean, Variance, StdError                (all samples, i.i.d. formulae)
//   - BlockedVariance(k), BlockedStdError(k)  (complete blocks of size k)
//   - RValue(k), AutocorrelationTime(k)       (error coefficient, τ=(R−1)/2)
//   - AllRValues(minBlocks)                   (k = 1,2,4,… while n/k ≥ minBlocks)
//
// Determinism:
//   - Blocks are taken from the start of the series; a trailing partial
//     block is dropped, matching what a binary cascade would hold.
//   - Complex variances are var(re) + var(im).

package fullbin

import (
	"math"

	"github.com/katalvlaran/lvbin/internal/numeric"
)

// Binner stores every pushed sample. Not safe for concurrent use.
type Binner[S numeric.Number] struct {
	data []S
	ops  numeric.Ops[S]
}

// New returns an empty full-storage binner.
func New[S numeric.Number]() *Binner[S] {
	return &Binner[S]{ops: numeric.OpsFor[S]()}
}

// Push stores x.
func (b *Binner[S]) Push(x S) { b.data = append(b.data, x) }

// Append stores xs in order.
func (b *Binner[S]) Append(xs []S) { b.data = append(b.data, xs...) }

// Len returns the number of stored samples.
func (b *Binner[S]) Len() int { return len(b.data) }

// Samples returns a copy of the stored series.
func (b *Binner[S]) Samples() []S { return append([]S(nil), b.data...) }

// Reset drops all samples, keeping the allocated storage.
func (b *Binner[S]) Reset() { b.data = b.data[:0] }

// Mean returns the arithmetic mean of all samples.
func (b *Binner[S]) Mean() (S, error) {
	if len(b.data) == 0 {
		var zero S
		return zero, fullbinErrorf(opMean, ErrInsufficientData)
	}
	return mean(b.data, b.ops), nil
}

// Variance returns the Bessel-corrected variance of all samples.
func (b *Binner[S]) Variance() (float64, error) {
	if len(b.data) < 2 {
		return 0, fullbinErrorf(opVariance, ErrInsufficientData)
	}
	return variance(b.data, b.ops), nil
}

// StdError returns sqrt(Variance/n), the standard error ignoring correlation.
func (b *Binner[S]) StdError() (float64, error) {
	v, err := b.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v / float64(len(b.data))), nil
}

// BlockedVariance returns the variance of the means of the complete blocks of
// size k. At least two blocks are required.
func (b *Binner[S]) BlockedVariance(k int) (float64, error) {
	blocks, err := b.blockMeans(opBlockedVariance, k)
	if err != nil {
		return 0, err
	}
	return variance(blocks, b.ops), nil
}

// BlockedStdError returns sqrt(BlockedVariance(k) / blocks).
func (b *Binner[S]) BlockedStdError(k int) (float64, error) {
	v, err := b.BlockedVariance(k)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v / float64(len(b.data)/k)), nil
}

// RValue returns k · BlockedVariance(k) / Variance().
// A zero sample variance yields 1 (no inflation measurable).
func (b *Binner[S]) RValue(k int) (float64, error) {
	bv, err := b.blockMeans(opRValue, k)
	if err != nil {
		return 0, err
	}
	v := variance(b.data, b.ops)
	if v == 0 {
		return 1, nil
	}
	return float64(k) * variance(bv, b.ops) / v, nil
}

// AutocorrelationTime returns (RValue(k) − 1) / 2.
func (b *Binner[S]) AutocorrelationTime(k int) (float64, error) {
	r, err := b.RValue(k)
	if err != nil {
		return 0, err
	}
	return 0.5 * (r - 1), nil
}

// AllRValues returns RValue for block sizes 1, 2, 4, … as long as at least
// minBlocks (>= 2) complete blocks remain. Index i holds block size 2^i.
func (b *Binner[S]) AllRValues(minBlocks int) ([]float64, error) {
	if minBlocks < 2 {
		minBlocks = 2
	}
	if len(b.data) < minBlocks {
		return nil, fullbinErrorf(opAllRValues, ErrInsufficientData)
	}
	var out []float64
	for k := 1; len(b.data)/k >= minBlocks; k *= 2 {
		r, err := b.RValue(k)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// blockMeans averages the complete blocks of size k.
func (b *Binner[S]) blockMeans(op string, k int) ([]S, error) {
	if k < 1 {
		return nil, fullbinErrorf(op, ErrBadBlockSize)
	}
	nb := len(b.data) / k
	if nb < 2 {
		return nil, fullbinErrorf(op, ErrInsufficientData)
	}
	out := make([]S, nb)
	for i := range out {
		out[i] = mean(b.data[i*k:(i+1)*k], b.ops)
	}
	return out, nil
}

func mean[S numeric.Number](xs []S, ops numeric.Ops[S]) S {
	var s S
	for _, x := range xs {
		s += x
	}
	return ops.Scale(s, 1/float64(len(xs)))
}

// variance uses the two-pass formula on each part independently.
func variance[S numeric.Number](xs []S, ops numeric.Ops[S]) float64 {
	mr, mi := ops.Parts(mean(xs, ops))
	var acc, dr, di float64
	for _, x := range xs {
		re, im := ops.Parts(x)
		dr, di = re-mr, im-mi
		acc += dr*dr + di*di
	}
	return acc / float64(len(xs)-1)
}
