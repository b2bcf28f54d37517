// SPDX-License-Identifier: MIT

package fullbin

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData signals too few samples (or blocks) for a statistic.
	ErrInsufficientData = errors.New("fullbin: insufficient data")

	// ErrBadBlockSize indicates a block size < 1.
	ErrBadBlockSize = errors.New("fullbin: block size must be >= 1")
)

const (
	opMean            = "Mean"
	opVariance        = "Variance"
	opBlockedVariance = "BlockedVariance"
	opRValue          = "RValue"
	opAllRValues      = "AllRValues"
)

func fullbinErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
