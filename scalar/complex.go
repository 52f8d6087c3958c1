// SPDX-License-Identifier: MIT

package scalar

import (
	"math/cmplx"
	"strconv"
)

// Complex128 is the field of complex numbers backed by the builtin complex128.
// Float64 returns the real part; Norm returns the modulus.
var Complex128 Field[complex128] = complexField{}

type complexField struct{}

func (complexField) Name() string                     { return "complex128" }
func (complexField) Primitive() bool                  { return false }
func (complexField) Zero() complex128                 { return 0 }
func (complexField) One() complex128                  { return 1 }
func (complexField) FromFloat64(v float64) complex128 { return complex(v, 0) }
func (complexField) Float64(a complex128) float64     { return real(a) }
func (complexField) Add(a, b complex128) complex128   { return a + b }
func (complexField) Subtract(a, b complex128) complex128 {
	return a - b
}
func (complexField) Multiply(a, b complex128) complex128 { return a * b }
func (complexField) Divide(a, b complex128) complex128   { return a / b }
func (complexField) Negate(a complex128) complex128      { return -a }
func (complexField) Conjugate(a complex128) complex128   { return cmplx.Conj(a) }
func (complexField) Norm(a complex128) float64           { return cmplx.Abs(a) }
func (complexField) IsZero(a complex128) bool            { return a == 0 }
func (complexField) Equal(a, b complex128) bool          { return a == b }

func (complexField) Format(a complex128) string {
	return strconv.FormatComplex(a, 'g', -1, 128)
}
