// SPDX-License-Identifier: MIT
// Package: lvbin/logbin
//
// engine.go — the binning engine shared by Binner and ArrayBinner.
//
// Push protocol (per level l, starting at 0):
//  1. sum[l] += v; sumSquares[l] += square(v); count[l]++.
//  2. Cell EMPTY  → store v, cell WAITING, stop.
//  3. Cell WAITING → v = (stored + v) / 2, cell EMPTY; continue at l+1.
//     Past the deepest level the average goes to the overflow buffer.
//
// Complexity:
//   - Amortized O(size) per push (level l is reached every 2^l pushes);
//     worst case O(N·size) when every level cascades.
//   - Memory O(N·size) plus the overflow buffer.
//
// Concurrency:
//   - None. An engine must not be pushed concurrently with any other call.

package logbin

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbin/internal/numeric"
)

type engine[S numeric.Number] struct {
	elem     element[S]
	levels   []level[S]
	overflow [][]S
	carry    []S // cascade scratch, len == elem.size
	log      *zap.Logger
}

// newEngine validates capacity and builds an all-empty engine for el.
func newEngine[S numeric.Number](capacity int, el element[S], cfg config) (engine[S], error) {
	n, err := LevelsFor(capacity)
	if err != nil {
		return engine[S]{}, err
	}
	e := engine[S]{
		elem:   el,
		levels: make([]level[S], n),
		carry:  make([]S, el.size),
		log:    cfg.logger,
	}
	for i := range e.levels {
		e.levels[i] = newLevel[S](el.size)
	}

	return e, nil
}

// propagate runs the push protocol for v starting at level start.
// v is copied before use; the caller keeps ownership.
func (e *engine[S]) propagate(start int, v []S) {
	x := e.carry
	copy(x, v)
	for l := start; l < len(e.levels); l++ {
		lv := &e.levels[l]
		lv.accumulate(x, e.elem.ops)
		if !lv.pair(x) {
			return
		}
	}
	e.spill(x)
}

// spill appends an averaged value that outran the deepest level.
func (e *engine[S]) spill(x []S) {
	if len(e.overflow) == 0 {
		e.log.Debug("logbin: overflow buffer engaged",
			zap.Int("levels", len(e.levels)),
			zap.Int("raw_count", e.levels[0].count),
			zap.Stringer("category", e.elem.category))
	}
	e.overflow = append(e.overflow, append([]S(nil), x...))
}

// Capacity returns the number of raw values absorbed before overflow.
func (e *engine[S]) Capacity() int { return CapacityOf(len(e.levels)) }

// Levels returns the number of binning levels N.
func (e *engine[S]) Levels() int { return len(e.levels) }

// RawCount returns the number of raw samples pushed (count at level 0).
func (e *engine[S]) RawCount() int {
	if len(e.levels) == 0 {
		return 0
	}
	return e.levels[0].count
}

// IsEmpty reports whether no sample has been pushed since creation or Reset.
func (e *engine[S]) IsEmpty() bool { return e.RawCount() == 0 }

// Category returns the element category fixed at construction.
func (e *engine[S]) Category() Category { return e.elem.category }

// OverflowLen returns how many averaged values sit in the overflow buffer.
func (e *engine[S]) OverflowLen() int { return len(e.overflow) }

// Count returns the number of values presented to the given level.
func (e *engine[S]) Count(level int) (int, error) {
	if level < 0 || level >= len(e.levels) {
		return 0, logbinErrorf(opCount, ErrLevelOutOfRange)
	}
	return e.levels[level].count, nil
}

// ReliableLevel returns the deepest level holding at least MinReliableCount
// values, or 0 when no level does. Deeper levels decorrelate better; fewer
// than MinReliableCount blocks make their variance too noisy to trust.
func (e *engine[S]) ReliableLevel() int {
	for l := len(e.levels) - 1; l > 0; l-- {
		if e.levels[l].count >= MinReliableCount {
			return l
		}
	}
	return 0
}

// Reset returns the engine to the all-empty, zero-count state.
func (e *engine[S]) Reset() {
	for i := range e.levels {
		e.levels[i].reset()
	}
	e.overflow = nil
	e.log.Debug("logbin: reset", zap.Int("levels", len(e.levels)))
}

// grow builds a deeper, independent engine: levels are deep-copied, the new
// levels start empty, and the overflow buffer is replayed in arrival order
// starting at the first new level.
func (e *engine[S]) grow(newCapacity int) (engine[S], error) {
	n, err := LevelsFor(newCapacity)
	if err != nil {
		return engine[S]{}, err
	}
	if n <= len(e.levels) {
		return engine[S]{}, ErrCapacityNotIncreased
	}

	g := engine[S]{
		elem:   e.elem,
		levels: make([]level[S], n),
		carry:  make([]S, e.elem.size),
		log:    e.log,
	}
	g.elem.shape = append([]int(nil), e.elem.shape...)
	for l := range g.levels {
		if l < len(e.levels) {
			g.levels[l] = e.levels[l].clone()
		} else {
			g.levels[l] = newLevel[S](e.elem.size)
		}
	}
	for _, v := range e.overflow {
		g.propagate(len(e.levels), v)
	}

	e.log.Debug("logbin: grown",
		zap.Int("from_levels", len(e.levels)),
		zap.Int("to_levels", n),
		zap.Int("replayed", len(e.overflow)),
		zap.Int("overflow_after", len(g.overflow)))

	return g, nil
}
