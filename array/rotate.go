// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/scalar"
)

// RotateRight applies the plane rotation [cos -sin; sin cos] from the right to
// columns colA and colB of a column-major array, in place, one row at a time:
//
//	newA = cos*oldA - sin*oldB
//	newB = cos*oldB + sin*oldA
//
// Example: cos=0, sin=1 on [1,3 | 2,4] (structure 2) yields [-2,-4 | 1,3].
func RotateRight[T constraints.Float](data []T, structure, colA, colB int, cos, sin T) {
	offA, offB := colA*structure, colB*structure
	var oldA, oldB T
	for i := 0; i < structure; i++ {
		oldA = data[offA+i]
		oldB = data[offB+i]
		data[offA+i] = cos*oldA - sin*oldB
		data[offB+i] = cos*oldB + sin*oldA
	}
}

// RotateRightScalar is RotateRight over a generic field.
func RotateRightScalar[N any](data []N, structure, colA, colB int, cos, sin N, f scalar.Field[N]) {
	offA, offB := colA*structure, colB*structure
	for i := 0; i < structure; i++ {
		oldA := data[offA+i]
		oldB := data[offB+i]
		data[offA+i] = f.Subtract(f.Multiply(cos, oldA), f.Multiply(sin, oldB))
		data[offB+i] = f.Add(f.Multiply(cos, oldB), f.Multiply(sin, oldA))
	}
}
