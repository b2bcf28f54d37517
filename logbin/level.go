// SPDX-License-Identifier: MIT

package logbin

import "github.com/katalvlaran/lvbin/internal/numeric"

// level holds the running aggregates of one binning tier.
// Values presented to level l are averages of 2^l consecutive raw samples.
type level[S numeric.Number] struct {
	count      int
	sum        []S
	sumSquares []S

	// Pairing cell: EMPTY when !waiting, otherwise pending holds one value.
	waiting bool
	pending []S
}

func newLevel[S numeric.Number](size int) level[S] {
	return level[S]{
		sum:        make([]S, size),
		sumSquares: make([]S, size),
		pending:    make([]S, size),
	}
}

// accumulate records v in the running sums. Cell state is not touched.
func (l *level[S]) accumulate(v []S, ops numeric.Ops[S]) {
	for i, x := range v {
		l.sum[i] += x
		l.sumSquares[i] += ops.Square(x)
	}
	l.count++
}

// pair feeds v to the pairing cell. It returns true when the cell was
// WAITING, in which case v now holds the pair average and the cell is EMPTY.
func (l *level[S]) pair(v []S) bool {
	if !l.waiting {
		copy(l.pending, v)
		l.waiting = true
		return false
	}
	for i := range v {
		v[i] = (l.pending[i] + v[i]) / 2
	}
	numeric.Zero(l.pending)
	l.waiting = false
	return true
}

func (l *level[S]) reset() {
	l.count = 0
	numeric.Zero(l.sum)
	numeric.Zero(l.sumSquares)
	numeric.Zero(l.pending)
	l.waiting = false
}

// clone returns a deep copy sharing no backing arrays with l.
func (l *level[S]) clone() level[S] {
	return level[S]{
		count:      l.count,
		sum:        append([]S(nil), l.sum...),
		sumSquares: append([]S(nil), l.sumSquares...),
		waiting:    l.waiting,
		pending:    append([]S(nil), l.pending...),
	}
}
