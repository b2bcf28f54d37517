// SPDX-License-Identifier: MIT
// Package: lvbin/logbin
//
// element.go — element classification (scalar/array × real/complex).
//
// Purpose:
//   - Decide, once at construction, the element category, its shape and the
//     flat accumulator width (size = Π shape; 1 for scalars).
//   - Bind the numeric.Ops variant that squares/scales/splits values of S.
//
// Contract:
//   - The real/complex axis comes from the base type S (float64/complex128).
//   - The scalar/array axis comes from the constructor: scalar engines have an
//     empty shape, array engines one or more positive dimensions whose
//     product fits in an int.
//   - Prototypes used as zero seeds must be non-empty and all-zero.

package logbin

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbin/internal/numeric"
)

// Category classifies the elements a binner accumulates.
type Category int

const (
	// ScalarReal elements are float64 values.
	ScalarReal Category = iota
	// ScalarComplex elements are complex128 values.
	ScalarComplex
	// ArrayReal elements are fixed-shape arrays of float64.
	ArrayReal
	// ArrayComplex elements are fixed-shape arrays of complex128.
	ArrayComplex
)

// String returns a stable, human-readable name.
func (c Category) String() string {
	switch c {
	case ScalarReal:
		return "scalar-real"
	case ScalarComplex:
		return "scalar-complex"
	case ArrayReal:
		return "array-real"
	case ArrayComplex:
		return "array-complex"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// IsArray reports whether elements are arrays.
func (c Category) IsArray() bool { return c == ArrayReal || c == ArrayComplex }

// IsComplex reports whether elements carry imaginary parts.
func (c Category) IsComplex() bool { return c == ScalarComplex || c == ArrayComplex }

// element is the resolved element model of one engine.
type element[S numeric.Number] struct {
	category Category
	shape    []int // nil for scalars
	size     int   // flat accumulator width
	ops      numeric.Ops[S]
}

// newElement classifies S with the given shape (nil or empty => scalar).
func newElement[S numeric.Number](shape []int) (element[S], error) {
	ops := numeric.OpsFor[S]()
	el := element[S]{ops: ops, size: 1}

	if len(shape) == 0 {
		el.category = ScalarReal
		if ops.IsComplex() {
			el.category = ScalarComplex
		}
		return el, nil
	}

	size := 1
	for i, d := range shape {
		if d <= 0 {
			return element[S]{}, fmt.Errorf("shape[%d]=%d: %w", i, d, ErrInvalidZeroPrototype)
		}
		if d > math.MaxInt/size {
			return element[S]{}, fmt.Errorf("shape %v overflows int: %w", shape, ErrInvalidZeroPrototype)
		}
		size *= d
	}
	el.category = ArrayReal
	if ops.IsComplex() {
		el.category = ArrayComplex
	}
	el.shape = append([]int(nil), shape...)
	el.size = size

	return el, nil
}

// classifyPrototype derives a one-dimensional array model from a zero seed.
func classifyPrototype[S numeric.Number](proto []S) (element[S], error) {
	if len(proto) == 0 {
		return element[S]{}, fmt.Errorf("empty prototype: %w", ErrInvalidZeroPrototype)
	}
	el, err := newElement[S]([]int{len(proto)})
	if err != nil {
		return element[S]{}, err
	}
	for i, v := range proto {
		if !el.ops.IsZero(v) {
			return element[S]{}, fmt.Errorf("prototype[%d] is non-zero: %w", i, ErrInvalidZeroPrototype)
		}
	}

	return el, nil
}

// checkLen validates a pushed array against the configured width.
func (el element[S]) checkLen(n int) error {
	if n != el.size {
		return fmt.Errorf("got %d values, want %d (shape %v): %w", n, el.size, el.shape, ErrDimensionMismatch)
	}
	return nil
}
