// SPDX-License-Identifier: MIT
// Package: lvbin/series
//
// errors.go — sentinel errors for the series package.
//
// Error policy:
//   • Only sentinel variables are exposed; match with errors.Is.
//   • Generators attach the generator name with seriesErrorf.
//   • Option constructors panic on meaningless values instead (WithSigma(-1)).

package series

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive length or width.
var ErrBadSize = errors.New("series: invalid size/length")

// ErrBadParameter indicates a model parameter outside its valid domain,
// e.g. |phi| >= 1 for a stationary AR(1) process.
var ErrBadParameter = errors.New("series: invalid model parameter")

const (
	methodWhite        = "White"
	methodAR1          = "AR1"
	methodRamp         = "Ramp"
	methodComplexWhite = "ComplexWhite"
	methodVectorWhite  = "VectorWhite"
)

// seriesErrorf prefixes err with the generator name, keeping errors.Is intact.
func seriesErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
