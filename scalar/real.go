// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Float64 is the primitive field: plain IEEE-754 double arithmetic.
var Float64 Field[float64] = float64Field{}

type float64Field struct{}

func (float64Field) Name() string                  { return "float64" }
func (float64Field) Primitive() bool               { return true }
func (float64Field) Zero() float64                 { return 0 }
func (float64Field) One() float64                  { return 1 }
func (float64Field) FromFloat64(v float64) float64 { return v }
func (float64Field) Float64(a float64) float64     { return a }
func (float64Field) Add(a, b float64) float64      { return a + b }
func (float64Field) Subtract(a, b float64) float64 { return a - b }
func (float64Field) Multiply(a, b float64) float64 { return a * b }
func (float64Field) Divide(a, b float64) float64   { return a / b }
func (float64Field) Negate(a float64) float64      { return -a }
func (float64Field) Conjugate(a float64) float64   { return a }
func (float64Field) Norm(a float64) float64        { return math.Abs(a) }
func (float64Field) IsZero(a float64) bool         { return a == 0 }
func (float64Field) Equal(a, b float64) bool       { return a == b }

func (float64Field) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
