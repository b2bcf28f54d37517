// Package series generates deterministic synthetic time series with a known
// correlation structure: white noise, AR(1) processes, ramps, and their
// complex and vector variants.
//
// The generators exist to exercise error estimators. White noise has
// autocorrelation time 0, an AR(1) process with coefficient φ has
// AR1Tau(φ) = φ/(1−φ), and a ramp never decorrelates.
//
//	xs, err := series.AR1(1<<16, 0.9, 42, series.WithMean(10))
//	if err != nil {
//	  // ErrBadSize / ErrBadParameter
//	}
//
// All output is a pure function of the arguments and the seed; pass
// WithRand to draw several series from one caller-owned stream.
package series
