// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/scalar"
)

// Body is the read-only triangular operand of a substitution. Matrix stores
// satisfy it structurally.
type Body interface {
	CountRows() int
	CountColumns() int
	DoubleValue(row, col int) float64
}

// ScalarBody is Body for generic scalars.
type ScalarBody[N any] interface {
	CountRows() int
	CountColumns() int
	Get(row, col int) N
}

// SubstituteForwards solves L·X = B in place, where L is the lower triangle of
// body and B occupies columns [first, limit) of data (column-major with
// structure rows). On return those columns hold X.
//
// Behavior highlights:
//   - unitDiagonal: the diagonal of L is taken as 1 and never read.
//   - identity: B is known to be the identity, so column j has zeros above
//     row j and the solve starts at row j.
//   - Only rows [0, min(body rows, body columns)) are solved.
//
// Complexity:
//   - Time O((limit-first)·n²) for n the triangle dimension.
func SubstituteForwards[T constraints.Float](data []T, structure, first, limit int, body Body, unitDiagonal, identity bool) {
	dim := min(body.CountRows(), body.CountColumns())
	for j := first; j < limit; j++ {
		col := j * structure
		start := 0
		if identity {
			start = j
		}
		for i := start; i < dim; i++ {
			var sum float64
			for k := start; k < i; k++ {
				sum += body.DoubleValue(i, k) * float64(data[col+k])
			}
			v := float64(data[col+i]) - sum
			if !unitDiagonal {
				v /= body.DoubleValue(i, i)
			}
			data[col+i] = T(v)
		}
	}
}

// SubstituteBackwards solves U·X = B in place, U being the upper triangle of
// body; the flags mean the same as in SubstituteForwards (identity: column j
// has zeros below row j).
func SubstituteBackwards[T constraints.Float](data []T, structure, first, limit int, body Body, unitDiagonal, identity bool) {
	dim := min(body.CountRows(), body.CountColumns())
	for j := first; j < limit; j++ {
		col := j * structure
		top := dim
		if identity {
			top = min(j+1, dim)
		}
		for i := top - 1; i >= 0; i-- {
			var sum float64
			for k := i + 1; k < top; k++ {
				sum += body.DoubleValue(i, k) * float64(data[col+k])
			}
			v := float64(data[col+i]) - sum
			if !unitDiagonal {
				v /= body.DoubleValue(i, i)
			}
			data[col+i] = T(v)
		}
	}
}

// bodyElement reads body(row, col), or conj(body(col, row)) when conjugated
// (the body is then used as its conjugate transpose).
func bodyElement[N any](body ScalarBody[N], row, col int, conjugated bool, f scalar.Field[N]) N {
	if conjugated {
		return f.Conjugate(body.Get(col, row))
	}

	return body.Get(row, col)
}

// SubstituteForwardsScalar is SubstituteForwards over a generic field.
// With conjugated set, the lower triangle is read from the conjugate
// transpose of body (so an upper-stored body can drive a forward solve).
func SubstituteForwardsScalar[N any](data []N, structure, first, limit int, body ScalarBody[N], unitDiagonal, conjugated, identity bool, f scalar.Field[N]) {
	dim := min(body.CountRows(), body.CountColumns())
	for j := first; j < limit; j++ {
		col := j * structure
		start := 0
		if identity {
			start = j
		}
		for i := start; i < dim; i++ {
			sum := f.Zero()
			for k := start; k < i; k++ {
				sum = f.Add(sum, f.Multiply(bodyElement(body, i, k, conjugated, f), data[col+k]))
			}
			v := f.Subtract(data[col+i], sum)
			if !unitDiagonal {
				v = f.Divide(v, bodyElement(body, i, i, conjugated, f))
			}
			data[col+i] = v
		}
	}
}

// SubstituteBackwardsScalar is SubstituteBackwards over a generic field.
func SubstituteBackwardsScalar[N any](data []N, structure, first, limit int, body ScalarBody[N], unitDiagonal, conjugated, identity bool, f scalar.Field[N]) {
	dim := min(body.CountRows(), body.CountColumns())
	for j := first; j < limit; j++ {
		col := j * structure
		top := dim
		if identity {
			top = min(j+1, dim)
		}
		for i := top - 1; i >= 0; i-- {
			sum := f.Zero()
			for k := i + 1; k < top; k++ {
				sum = f.Add(sum, f.Multiply(bodyElement(body, i, k, conjugated, f), data[col+k]))
			}
			v := f.Subtract(data[col+i], sum)
			if !unitDiagonal {
				v = f.Divide(v, bodyElement(body, i, i, conjugated, f))
			}
			data[col+i] = v
		}
	}
}
