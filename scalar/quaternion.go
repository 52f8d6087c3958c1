// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

// Quaternion is R + I·i + J·j + K·k with Hamilton multiplication
// (non-commutative: a·b != b·a in general).
type Quaternion struct {
	R, I, J, K float64
}

// Quaternions is the (skew) field of quaternions.
// Divide(a, b) is the right division a·b⁻¹.
var Quaternions Field[Quaternion] = quaternionField{}

type quaternionField struct{}

func (quaternionField) Name() string    { return "quaternion" }
func (quaternionField) Primitive() bool { return false }
func (quaternionField) Zero() Quaternion {
	return Quaternion{}
}
func (quaternionField) One() Quaternion {
	return Quaternion{R: 1}
}
func (quaternionField) FromFloat64(v float64) Quaternion {
	return Quaternion{R: v}
}
func (quaternionField) Float64(a Quaternion) float64 { return a.R }

func (quaternionField) Add(a, b Quaternion) Quaternion {
	return Quaternion{a.R + b.R, a.I + b.I, a.J + b.J, a.K + b.K}
}

func (quaternionField) Subtract(a, b Quaternion) Quaternion {
	return Quaternion{a.R - b.R, a.I - b.I, a.J - b.J, a.K - b.K}
}

// Multiply is the Hamilton product a·b.
func (quaternionField) Multiply(a, b Quaternion) Quaternion {
	return Quaternion{
		R: a.R*b.R - a.I*b.I - a.J*b.J - a.K*b.K,
		I: a.R*b.I + a.I*b.R + a.J*b.K - a.K*b.J,
		J: a.R*b.J - a.I*b.K + a.J*b.R + a.K*b.I,
		K: a.R*b.K + a.I*b.J - a.J*b.I + a.K*b.R,
	}
}

func (q quaternionField) Divide(a, b Quaternion) Quaternion {
	n := b.R*b.R + b.I*b.I + b.J*b.J + b.K*b.K
	inv := Quaternion{b.R / n, -b.I / n, -b.J / n, -b.K / n}

	return q.Multiply(a, inv)
}

func (quaternionField) Negate(a Quaternion) Quaternion {
	return Quaternion{-a.R, -a.I, -a.J, -a.K}
}

func (quaternionField) Conjugate(a Quaternion) Quaternion {
	return Quaternion{a.R, -a.I, -a.J, -a.K}
}

func (quaternionField) Norm(a Quaternion) float64 {
	return math.Sqrt(a.R*a.R + a.I*a.I + a.J*a.J + a.K*a.K)
}

func (quaternionField) IsZero(a Quaternion) bool { return a == Quaternion{} }
func (quaternionField) Equal(a, b Quaternion) bool {
	return a == b
}

func (quaternionField) Format(a Quaternion) string {
	return fmt.Sprintf("(%g%+gi%+gj%+gk)", a.R, a.I, a.J, a.K)
}
