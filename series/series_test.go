package series_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbin/series"
)

// TestGenerators_BadSize checks every generator rejects empty requests.
func TestGenerators_BadSize(t *testing.T) {
	_, err := series.White(0, 1)
	assert.ErrorIs(t, err, series.ErrBadSize)

	_, err = series.AR1(-1, 0.5, 1)
	assert.ErrorIs(t, err, series.ErrBadSize)

	_, err = series.Ramp(0, 1)
	assert.ErrorIs(t, err, series.ErrBadSize)

	_, err = series.ComplexWhite(0, 1)
	assert.ErrorIs(t, err, series.ErrBadSize)

	_, err = series.VectorWhite(3, 0, 1)
	assert.ErrorIs(t, err, series.ErrBadSize, "zero width must error")
}

// TestAR1_BadParameter ensures non-stationary coefficients are rejected.
func TestAR1_BadParameter(t *testing.T) {
	for _, phi := range []float64{1, -1, 1.5, math.NaN()} {
		_, err := series.AR1(10, phi, 1)
		assert.ErrorIs(t, err, series.ErrBadParameter, "phi=%g", phi)
	}
}

// TestWhite_Deterministic verifies equal seeds give equal series.
func TestWhite_Deterministic(t *testing.T) {
	a, err := series.White(64, 7)
	require.NoError(t, err)
	b, err := series.White(64, 7)
	require.NoError(t, err)
	c, err := series.White(64, 8)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestWhite_Moments checks mean and sigma options land where expected.
func TestWhite_Moments(t *testing.T) {
	const n = 20000
	xs, err := series.White(n, 3, series.WithMean(5), series.WithSigma(2))
	require.NoError(t, err)

	var sum, sq float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	assert.InDelta(t, 5.0, mean, 0.1)
	assert.InDelta(t, 4.0, sq/(n-1), 0.2)
}

// TestAR1_LagOneCorrelation checks the sample lag-1 autocorrelation ≈ phi.
func TestAR1_LagOneCorrelation(t *testing.T) {
	const n = 50000
	const phi = 0.8
	xs, err := series.AR1(n, phi, 11)
	require.NoError(t, err)

	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= n
	var c0, c1 float64
	for i := range xs {
		c0 += (xs[i] - mean) * (xs[i] - mean)
		if i > 0 {
			c1 += (xs[i] - mean) * (xs[i-1] - mean)
		}
	}
	assert.InDelta(t, phi, c1/c0, 0.02)
	assert.InDelta(t, 4.0, series.AR1Tau(phi), 1e-12)
}

// TestRamp_Noiseless verifies the ramp is exact without WithSigma.
func TestRamp_Noiseless(t *testing.T) {
	xs, err := series.Ramp(5, 2, series.WithMean(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, xs)
}

// TestWithRand_SharedStream checks WithRand overrides the seed argument.
func TestWithRand_SharedStream(t *testing.T) {
	a, err := series.White(8, 1, series.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	b, err := series.White(8, 2, series.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a, b, "seed argument must be ignored under WithRand")
}

// TestVectorWhite_Shape checks row count, width and row independence.
func TestVectorWhite_Shape(t *testing.T) {
	rows, err := series.VectorWhite(4, 3, 5)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.Len(t, r, 3)
	}
	rows[0] = append(rows[0], 1)
	assert.Len(t, rows[1], 3, "rows must not alias through append")
}

func TestComplexWhite_ImaginaryNoise(t *testing.T) {
	zs, err := series.ComplexWhite(16, 2, series.WithSigma(0), series.WithMean(1))
	require.NoError(t, err)
	for _, z := range zs {
		assert.Equal(t, complex(1, 0), z)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { series.WithSigma(-1) })
	assert.Panics(t, func() { series.WithRand(nil) })
}
