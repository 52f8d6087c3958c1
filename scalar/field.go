// SPDX-License-Identifier: MIT

// Package scalar defines the arithmetic adapter that lets stores and kernels
// be generic over the element type N.
//
// Purpose:
//   - Describe "what N can do" (add, multiply, conjugate, cast from float64,
//     measure) without requiring methods on N itself, so that plain float64
//     and complex128 can be element types next to struct scalars.
//   - Mark the primitive field (float64) so hot paths can branch onto
//     float64 loops instead of calling through the interface.
//
// Notes:
//   - A Field is stateless and safe for concurrent use.
//   - Float64(a) is lossy for exotic types (real part / nearest float).
package scalar

// Field is the set of operations the library needs from a scalar type N.
// Implementations must be stateless values; the zero value must be usable.
type Field[N any] interface {
	// Name is a short human-readable identifier ("float64", "complex128", ...).
	Name() string

	// Primitive reports whether N is float64 with plain IEEE arithmetic.
	// Stores and regions use it to select the float64 kernels.
	Primitive() bool

	// Zero returns the additive identity.
	Zero() N

	// One returns the multiplicative identity.
	One() N

	// FromFloat64 casts a float64 into N.
	FromFloat64(v float64) N

	// Float64 returns a lossy float64 view of a (real part for complex-like types).
	Float64(a N) float64

	Add(a, b N) N
	Subtract(a, b N) N
	Multiply(a, b N) N
	Divide(a, b N) N
	Negate(a N) N

	// Conjugate returns the conjugate of a; identity for real fields.
	Conjugate(a N) N

	// Norm returns the magnitude |a| (modulus for complex-like types).
	Norm(a N) float64

	// IsZero reports whether a equals the additive identity exactly.
	IsZero(a N) bool

	// Equal reports exact equality of a and b.
	Equal(a, b N) bool

	// Format renders a for diagnostics.
	Format(a N) string
}

// Sum folds values with f.Add starting from f.Zero().
func Sum[N any](f Field[N], values ...N) N {
	acc := f.Zero()
	for _, v := range values {
		acc = f.Add(acc, v)
	}

	return acc
}

// Power returns a raised to a non-negative integer power by repeated squaring.
// A negative exponent inverts the result.
func Power[N any](f Field[N], a N, exponent int) N {
	if exponent < 0 {
		return f.Divide(f.One(), Power(f, a, -exponent))
	}
	result := f.One()
	base := a
	for exponent > 0 {
		if exponent&1 == 1 {
			result = f.Multiply(result, base)
		}
		base = f.Multiply(base, base)
		exponent >>= 1
	}

	return result
}
