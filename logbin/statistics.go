// SPDX-License-Identifier: MIT
// Package: lvbin/logbin
//
// statistics.go — read-only statistics over the per-level aggregates.
//
// Exposed through Binner (scalar results) and ArrayBinner (elementwise
// results); the kernels here always work on the flat element layout.
//
//   - mean(l)            = sum[l] / n
//   - variance(l)        = sumSquares[l]/(n-1) - sum[l]²/((n-1)·n), per part
//   - scaledVariance(l)  = variance(l) / n
//   - stdError(l)        = sqrt(scaledVariance(l))
//   - tau(l)             = 0.5·(scaledVariance(l)/scaledVariance(0) - 1)
//   - convergence(l)     = mean_i |sv_i(l) - sv_i(l-1)| / sv_i(l-1)
//
// with n = count[l]. Complex variances add the real-part and imaginary-part
// variances, each computed from its own sums.
//
// Numeric policy:
//   - Each part variance is clamped at 0 (round-off on constant data).
//   - Ratios with a zero denominator: 0/0 → 0 (tau, convergence), x/0 → +Inf.
//
// None of the kernels mutate the engine.

package logbin

import "math"

// Minimum counts per statistic family.
const (
	needMean     = 1
	needVariance = 2
)

// at validates the level index and the sample count it must hold.
func (e *engine[S]) at(op string, l, need int) (*level[S], error) {
	if l < 0 || l >= len(e.levels) {
		return nil, logbinErrorf(op, ErrLevelOutOfRange)
	}
	lv := &e.levels[l]
	if lv.count < need {
		return nil, logbinErrorf(op, ErrInsufficientData)
	}
	return lv, nil
}

func (e *engine[S]) mean(l int) ([]S, error) {
	lv, err := e.at(opMean, l, needMean)
	if err != nil {
		return nil, err
	}
	inv := 1.0 / float64(lv.count)
	out := make([]S, e.elem.size)
	for i, s := range lv.sum {
		out[i] = e.elem.ops.Scale(s, inv)
	}
	return out, nil
}

func (e *engine[S]) variance(l int) ([]float64, error) {
	lv, err := e.at(opVariance, l, needVariance)
	if err != nil {
		return nil, err
	}
	return e.levelVariance(lv), nil
}

// levelVariance evaluates the unbiased estimator on a validated level.
func (e *engine[S]) levelVariance(lv *level[S]) []float64 {
	n := float64(lv.count)
	a := 1.0 / (n - 1)
	b := 1.0 / ((n - 1) * n)
	out := make([]float64, e.elem.size)
	var sr, si, qr, qi float64
	for i := range out {
		sr, si = e.elem.ops.Parts(lv.sum[i])
		qr, qi = e.elem.ops.Parts(lv.sumSquares[i])
		out[i] = nonNegative(qr*a-sr*sr*b) + nonNegative(qi*a-si*si*b)
	}
	return out
}

func (e *engine[S]) scaledVariance(l int) ([]float64, error) {
	lv, err := e.at(opScaledVariance, l, needVariance)
	if err != nil {
		return nil, err
	}
	return e.levelScaledVariance(lv), nil
}

func (e *engine[S]) levelScaledVariance(lv *level[S]) []float64 {
	out := e.levelVariance(lv)
	inv := 1.0 / float64(lv.count)
	for i := range out {
		out[i] *= inv
	}
	return out
}

func (e *engine[S]) stdError(l int) ([]float64, error) {
	lv, err := e.at(opStdError, l, needVariance)
	if err != nil {
		return nil, err
	}
	out := e.levelScaledVariance(lv)
	for i := range out {
		out[i] = math.Sqrt(out[i])
	}
	return out, nil
}

// tau is identically zero at level 0, which therefore only needs one sample.
func (e *engine[S]) tau(l int) ([]float64, error) {
	if l == 0 {
		if _, err := e.at(opTau, 0, needMean); err != nil {
			return nil, err
		}
		return make([]float64, e.elem.size), nil
	}
	lv, err := e.at(opTau, l, needVariance)
	if err != nil {
		return nil, err
	}
	base := e.levelScaledVariance(&e.levels[0])
	out := e.levelScaledVariance(lv)
	for i := range out {
		out[i] = 0.5 * (ratio(out[i], base[i], 1) - 1)
	}
	return out, nil
}

// convergence rejects level 0 (no predecessor) once level 0 can hold a
// variance; before that every level reports ErrInsufficientData.
func (e *engine[S]) convergence(l int) (float64, error) {
	if l == 0 {
		if _, err := e.at(opConvergence, 0, needVariance); err != nil {
			return 0, err
		}
		return 0, logbinErrorf(opConvergence, ErrLevelOutOfRange)
	}
	lv, err := e.at(opConvergence, l, needVariance)
	if err != nil {
		return 0, err
	}
	prev := e.levelScaledVariance(&e.levels[l-1])
	cur := e.levelScaledVariance(lv)
	var acc float64
	for i := range cur {
		acc += ratio(math.Abs(cur[i]-prev[i]), prev[i], 0)
	}
	return acc / float64(len(cur)), nil
}

// populated lists, ascending, the levels in [from, N) holding >= need values.
func (e *engine[S]) populated(from, need int) []int {
	out := make([]int, 0, len(e.levels))
	for l := from; l < len(e.levels); l++ {
		if e.levels[l].count >= need {
			out = append(out, l)
		}
	}
	return out
}

// collect evaluates fn on every level returned by populated.
// An engine with no qualifying level yields ErrInsufficientData.
func collect[T any](op string, levels []int, fn func(int) (T, error)) ([]T, error) {
	if len(levels) == 0 {
		return nil, logbinErrorf(op, ErrInsufficientData)
	}
	out := make([]T, 0, len(levels))
	for _, l := range levels {
		v, err := fn(l)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ratio returns num/den, mapping 0/0 to zeroZero and x/0 to +Inf.
func ratio(num, den, zeroZero float64) float64 {
	if den == 0 {
		if num == 0 {
			return zeroZero
		}
		return math.Inf(1)
	}
	return num / den
}

func nonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
