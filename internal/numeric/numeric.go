// SPDX-License-Identifier: MIT
// Package: lvbin/internal/numeric
//
// numeric.go — element arithmetic shared by logbin and fullbin.
//
// Purpose:
//   - Close the set of element base types to float64 and complex128.
//   - Provide the per-category operations the accumulators need (squaring,
//     real scaling, real/imaginary decomposition) behind one interface.
//   - Select the variant ONCE (OpsFor) so hot loops never type-switch.
//
// Contract:
//   - Square on complex values is componentwise: complex(re², im²).
//     Variance of a complex series is the sum of the variances of its parts,
//     which requires independent part sums of squares.
//   - Addition, subtraction and halving use the native operators on S.
//
// AI-Hints:
//   - Generic code cannot call real/imag on a type parameter; go through Parts.

package numeric

// Number is the closed set of element base types an accumulator can hold.
type Number interface {
	float64 | complex128
}

// Ops supplies the category-specific operations for one base type.
type Ops[S Number] interface {
	// Square returns x*x for reals and complex(re², im²) for complex values.
	Square(x S) S
	// Scale multiplies x by the real factor f.
	Scale(x S, f float64) S
	// Parts splits x into its real and imaginary components (im=0 for reals).
	Parts(x S) (re, im float64)
	// IsZero reports whether x is exactly zero.
	IsZero(x S) bool
	// IsComplex reports whether S carries an imaginary component.
	IsComplex() bool
}

type realOps struct{}

func (realOps) Square(x float64) float64 { return x * x }
func (realOps) Scale(x float64, f float64) float64 { return x * f }
func (realOps) Parts(x float64) (float64, float64) { return x, 0 }
func (realOps) IsZero(x float64) bool { return x == 0 }
func (realOps) IsComplex() bool { return false }

type complexOps struct{}

func (complexOps) Square(x complex128) complex128 {
	re, im := real(x), imag(x)
	return complex(re*re, im*im)
}
func (complexOps) Scale(x complex128, f float64) complex128 { return x * complex(f, 0) }
func (complexOps) Parts(x complex128) (float64, float64) { return real(x), imag(x) }
func (complexOps) IsZero(x complex128) bool { return x == 0 }
func (complexOps) IsComplex() bool { return true }

// OpsFor returns the operation set for S.
// Complexity: O(1); the returned value is stateless and safe to share.
func OpsFor[S Number]() Ops[S] {
	var zero S
	switch any(zero).(type) {
	case complex128:
		return any(complexOps{}).(Ops[S])
	default:
		return any(realOps{}).(Ops[S])
	}
}

// Zero sets every element of dst to the zero value.
func Zero[S Number](dst []S) {
	var z S
	for i := range dst {
		dst[i] = z
	}
}
