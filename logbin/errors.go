// SPDX-License-Identifier: MIT
// Package logbin: sentinel error set.
// This file defines ONLY package-level sentinel errors used across logbin.
// All operations MUST return these sentinels (optionally wrapped with the
// operation tag) and tests MUST check them via errors.Is. Nothing in logbin
// panics on user-triggered conditions; option constructors are the exception
// (programmer error).

package logbin

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// capacity -> element shape/prototype -> level index -> sample count.

var (
	// ErrInvalidCapacity is returned when a requested capacity is <= 0.
	ErrInvalidCapacity = errors.New("logbin: capacity must be > 0")

	// ErrInvalidZeroPrototype indicates that the element category could not be
	// determined (empty prototype, empty series, bad shape) or that a prototype
	// used as the zero seed holds a non-zero entry.
	ErrInvalidZeroPrototype = errors.New("logbin: invalid zero prototype")

	// ErrDimensionMismatch indicates a pushed value whose length disagrees with
	// the configured element shape.
	ErrDimensionMismatch = errors.New("logbin: dimension mismatch")

	// ErrCapacityNotIncreased is returned by Grow when the target does not need
	// strictly more levels than the source.
	ErrCapacityNotIncreased = errors.New("logbin: capacity not increased")

	// ErrInsufficientData signals a statistic requested on a level holding fewer
	// samples than the statistic needs (1 for means, 2 for variances).
	ErrInsufficientData = errors.New("logbin: insufficient data")

	// ErrLevelOutOfRange indicates a level index outside [0, Levels()).
	// Convergence additionally rejects level 0, which has no predecessor.
	ErrLevelOutOfRange = errors.New("logbin: level out of range")
)

// Operation tags used to prefix wrapped errors.
const (
	opNew             = "New"
	opNewStreaming    = "NewStreaming"
	opNewArray        = "NewArray"
	opFromPrototype   = "FromPrototype"
	opFromSeries      = "FromSeries"
	opFromArraySeries = "FromArraySeries"
	opPushArray       = "PushArray"
	opAppendArrays    = "AppendArrays"
	opGrow            = "Grow"
	opCount           = "Count"
	opMean            = "Mean"
	opVariance        = "Variance"
	opScaledVariance  = "ScaledVariance"
	opStdError        = "StdError"
	opTau             = "AutocorrelationTime"
	opConvergence     = "Convergence"
)

// logbinErrorf prefixes err with the operation tag, keeping errors.Is intact.
func logbinErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
