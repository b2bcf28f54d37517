// SPDX-License-Identifier: MIT

package logbin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvbin/logbin"
	"github.com/katalvlaran/lvbin/series"
)

// requireSameLevels asserts both binners hold identical per-level state as
// seen through the public API.
func requireSameLevels(t *testing.T, want, got *logbin.Binner[float64]) {
	t.Helper()

	require.Equal(t, want.Levels(), got.Levels())
	require.Equal(t, want.OverflowLen(), got.OverflowLen())
	for l := 0; l < want.Levels(); l++ {
		wc, err := want.Count(l)
		require.NoError(t, err)
		gc, err := got.Count(l)
		require.NoError(t, err)
		require.Equal(t, wc, gc, "count level %d", l)
	}
	wm, werr := want.AllMeans()
	gm, gerr := got.AllMeans()
	require.Equal(t, werr, gerr)
	require.Equal(t, wm, gm)

	wv, werr := want.AllVariances()
	gv, gerr := got.AllVariances()
	require.Equal(t, werr, gerr)
	require.Equal(t, wv, gv)
}

// TestGrow_EquivalentToFreshEngine checks that growing an overflowed binner
// gives exactly the state of a binner built with the larger capacity.
func TestGrow_EquivalentToFreshEngine(t *testing.T) {
	t.Parallel()

	xs, err := series.AR1(100, 0.6, 3)
	require.NoError(t, err)

	small, err := logbin.New[float64](7) // 3 levels
	require.NoError(t, err)
	small.Append(xs[:20])
	require.Equal(t, 2, small.OverflowLen())

	grown, err := small.Grow(100)
	require.NoError(t, err)

	fresh, err := logbin.New[float64](100)
	require.NoError(t, err)
	fresh.Append(xs[:20])

	requireSameLevels(t, fresh, grown)
	assert.Equal(t, 0, grown.OverflowLen())
	assert.Empty(t, grown.Overflow())

	// Identical future too.
	grown.Append(xs[20:])
	fresh.Append(xs[20:])
	requireSameLevels(t, fresh, grown)
}

// TestGrow_SourceUnchanged checks the source keeps its levels and overflow
// and shares no state with the result.
func TestGrow_SourceUnchanged(t *testing.T) {
	t.Parallel()

	src, err := logbin.New[float64](7)
	require.NoError(t, err)
	for i := 1; i <= 20; i++ {
		src.Push(float64(i))
	}
	before := src.Overflow()
	meansBefore, err := src.AllMeans()
	require.NoError(t, err)

	g, err := src.Grow(1 << 10)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		g.Push(-1)
	}

	assert.Equal(t, 3, src.Levels())
	assert.Equal(t, 20, src.RawCount())
	assert.Equal(t, before, src.Overflow())
	meansAfter, err := src.AllMeans()
	require.NoError(t, err)
	assert.Equal(t, meansBefore, meansAfter)

	// Pushing into the source does not leak into the grown copy either.
	src.Push(1000)
	assert.Equal(t, 120, g.RawCount())
}

func TestGrow_Errors(t *testing.T) {
	t.Parallel()

	b, err := logbin.New[float64](7)
	require.NoError(t, err)

	_, err = b.Grow(7)
	assert.ErrorIs(t, err, logbin.ErrCapacityNotIncreased)
	_, err = b.Grow(5)
	assert.ErrorIs(t, err, logbin.ErrCapacityNotIncreased)
	_, err = b.Grow(0)
	assert.ErrorIs(t, err, logbin.ErrInvalidCapacity)

	g, err := b.Grow(8)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Levels())
}

// TestGrow_ReplayCanOverflowAgain grows by one level only: two overflow values
// pair into one that still outruns the new deepest level.
func TestGrow_ReplayCanOverflowAgain(t *testing.T) {
	t.Parallel()

	b, err := logbin.New[float64](1) // 1 level
	require.NoError(t, err)
	b.Append([]float64{1, 2, 3, 4, 5, 6})
	require.Equal(t, []float64{1.5, 3.5, 5.5}, b.Overflow())

	g, err := b.Grow(3) // 2 levels
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, g.Overflow(), "(1.5+3.5)/2; 5.5 waits at level 1")

	c, err := g.Count(1)
	require.NoError(t, err)
	assert.Equal(t, 3, c)
}

func TestGrow_Array(t *testing.T) {
	t.Parallel()

	rows, err := series.VectorWhite(40, 2, 9)
	require.NoError(t, err)

	small, err := logbin.NewArray[float64](3, []int{2})
	require.NoError(t, err)
	require.NoError(t, small.AppendArrays(rows))

	grown, err := small.Grow(64)
	require.NoError(t, err)
	fresh, err := logbin.NewArray[float64](64, []int{2})
	require.NoError(t, err)
	require.NoError(t, fresh.AppendArrays(rows))

	want, err := fresh.AllMeans()
	require.NoError(t, err)
	got, err := grown.AllMeans()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, fresh.Overflow(), grown.Overflow())
	assert.Equal(t, []int{2}, grown.Shape())
}

func TestGrow_Logs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	b, err := logbin.New[float64](3, logbin.WithLogger(zap.New(core)))
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		b.Push(float64(i))
	}

	_, err = b.Grow(1 << 8)
	require.NoError(t, err)

	entries := logs.FilterMessage("logbin: grown").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["from_levels"])
	assert.EqualValues(t, 9, fields["to_levels"])
	assert.EqualValues(t, 3, fields["replayed"])
	assert.EqualValues(t, 0, fields["overflow_after"])
}
