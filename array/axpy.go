// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/scalar"
)

// AXPY accumulates y += a·x over count elements:
// y[yOffset + i*yStep] += a * x[xOffset + i*xStep].
// It is the scale-and-accumulate step of the sparse column sweep.
func AXPY[T constraints.Float](y []T, yOffset, yStep int, a T, x []T, xOffset, xStep, count int) {
	if a == 0 {
		return
	}
	yi, xi := yOffset, xOffset
	for i := 0; i < count; i++ {
		y[yi] += a * x[xi]
		yi += yStep
		xi += xStep
	}
}

// AXPYScalar is AXPY over a generic field.
func AXPYScalar[N any](y []N, yOffset, yStep int, a N, x []N, xOffset, xStep, count int, f scalar.Field[N]) {
	if f.IsZero(a) {
		return
	}
	yi, xi := yOffset, xOffset
	for i := 0; i < count; i++ {
		y[yi] = f.Add(y[yi], f.Multiply(a, x[xi]))
		yi += yStep
		xi += xStep
	}
}

// DOT returns Σ a[aOffset + i*aStep] * b[bOffset + i*bStep] for i in [0, count).
func DOT[T constraints.Float](a []T, aOffset, aStep int, b []T, bOffset, bStep, count int) T {
	var sum T
	ai, bi := aOffset, bOffset
	for i := 0; i < count; i++ {
		sum += a[ai] * b[bi]
		ai += aStep
		bi += bStep
	}

	return sum
}

// DOTScalar is DOT over a generic field.
func DOTScalar[N any](a []N, aOffset, aStep int, b []N, bOffset, bStep, count int, f scalar.Field[N]) N {
	sum := f.Zero()
	ai, bi := aOffset, bOffset
	for i := 0; i < count; i++ {
		sum = f.Add(sum, f.Multiply(a[ai], b[bi]))
		ai += aStep
		bi += bStep
	}

	return sum
}
