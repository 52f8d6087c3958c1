// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/scalar"
)

// ApplyLU performs one Gaussian elimination update on the columns
// [firstColumn, columnLimit) of a column-major array with structure rows:
//
//	for each column j:  a := data[pivot, j]
//	                    data[i, j] -= multipliers[i] * a   for i in (pivot, structure)
//
// multipliers holds the L column for this pivot, indexed by row; entries at
// or above the pivot are ignored. Columns are independent, so callers may
// split [firstColumn, columnLimit) across goroutines.
func ApplyLU[T constraints.Float](data []T, structure, pivot int, multipliers []T, firstColumn, columnLimit int) {
	for j := firstColumn; j < columnLimit; j++ {
		off := j * structure
		AXPY(data, off+pivot+1, 1, -data[off+pivot], multipliers, pivot+1, 1, structure-pivot-1)
	}
}

// ApplyLUScalar is ApplyLU over a generic field.
func ApplyLUScalar[N any](data []N, structure, pivot int, multipliers []N, firstColumn, columnLimit int, f scalar.Field[N]) {
	for j := firstColumn; j < columnLimit; j++ {
		off := j * structure
		AXPYScalar(data, off+pivot+1, 1, f.Negate(data[off+pivot]), multipliers, pivot+1, 1, structure-pivot-1, f)
	}
}

// ApplyCholesky performs the trailing update of a right-looking Cholesky
// step on the columns [firstColumn, columnLimit) of a column-major array:
//
//	for each column j > pivot:  data[i, j] -= multipliers[i] * multipliers[j]   for i in [j, structure)
//
// multipliers is the finished L column for this pivot, indexed by row. Only
// the lower triangle is touched; entries of multipliers at or above the pivot
// are ignored. Columns are independent, as in ApplyLU.
func ApplyCholesky[T constraints.Float](data []T, structure, pivot int, multipliers []T, firstColumn, columnLimit int) {
	for j := max(firstColumn, pivot+1); j < columnLimit; j++ {
		AXPY(data, j*structure+j, 1, -multipliers[j], multipliers, j, 1, structure-j)
	}
}

// ApplyCholeskyScalar is ApplyCholesky over a generic field, subtracting
// multipliers[i] * conj(multipliers[j]) (the Hermitian update; operand order
// is kept for non-commutative fields).
func ApplyCholeskyScalar[N any](data []N, structure, pivot int, multipliers []N, firstColumn, columnLimit int, f scalar.Field[N]) {
	for j := max(firstColumn, pivot+1); j < columnLimit; j++ {
		cj := f.Conjugate(multipliers[j])
		if f.IsZero(cj) {
			continue
		}
		off := j * structure
		for i := j; i < structure; i++ {
			data[off+i] = f.Subtract(data[off+i], f.Multiply(multipliers[i], cj))
		}
	}
}
