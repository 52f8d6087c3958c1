// SPDX-License-Identifier: MIT

package scalar

import (
	"math/big"
)

// Rational is an immutable exact fraction backed by math/big.
// The zero value is 0. Operations never mutate their operands.
type Rational struct {
	v *big.Rat // nil means zero
}

// NewRational returns num/den. It panics when den == 0 (big.Rat semantics).
func NewRational(num, den int64) Rational {
	return Rational{v: big.NewRat(num, den)}
}

// RationalOf wraps a copy of r.
func RationalOf(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return Rational{v: new(big.Rat).Set(r)}
}

// Rat returns a copy of the underlying value.
func (r Rational) Rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(r.v)
}

func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// String renders "a/b" (or "a" for integers).
func (r Rational) String() string {
	return r.rat().RatString()
}

// Rationals is the exact field of fractions.
// FromFloat64 converts exactly (every finite float64 is a dyadic rational);
// non-finite values become zero.
var Rationals Field[Rational] = rationalField{}

type rationalField struct{}

func (rationalField) Name() string    { return "rational" }
func (rationalField) Primitive() bool { return false }
func (rationalField) Zero() Rational  { return Rational{} }
func (rationalField) One() Rational   { return NewRational(1, 1) }
func (rationalField) FromFloat64(v float64) Rational {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return Rational{}
	}

	return Rational{v: r}
}

func (rationalField) Float64(a Rational) float64 {
	f, _ := a.rat().Float64()

	return f
}

func (rationalField) Add(a, b Rational) Rational {
	return Rational{v: new(big.Rat).Add(a.rat(), b.rat())}
}

func (rationalField) Subtract(a, b Rational) Rational {
	return Rational{v: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (rationalField) Multiply(a, b Rational) Rational {
	return Rational{v: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Divide panics on division by zero, like big.Rat.Quo.
func (rationalField) Divide(a, b Rational) Rational {
	return Rational{v: new(big.Rat).Quo(a.rat(), b.rat())}
}

func (rationalField) Negate(a Rational) Rational {
	return Rational{v: new(big.Rat).Neg(a.rat())}
}

func (rationalField) Conjugate(a Rational) Rational { return a }

func (rationalField) Norm(a Rational) float64 {
	f, _ := new(big.Rat).Abs(a.rat()).Float64()

	return f
}

func (rationalField) IsZero(a Rational) bool { return a.rat().Sign() == 0 }

func (rationalField) Equal(a, b Rational) bool { return a.rat().Cmp(b.rat()) == 0 }

func (rationalField) Format(a Rational) string { return a.String() }
