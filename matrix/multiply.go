// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/scalar"
	"golang.org/x/exp/constraints"
)

// Multiply paths, as reported in the "path" attribute of the Debug record.
const (
	pathZero       = "zero"
	pathIdentity   = "identity"
	pathFanOutRows = "fan-out-rows"
	pathFanOutCols = "fan-out-columns"
	pathSparse     = "sparse-axpy"
	pathDense      = "dense"
	pathGeneric    = "generic"
)

// multiplier writes left*right into target. Shapes are already validated.
// Each store and region picks its multiplier once, at construction.
type multiplier[N any] func(target TransformableRegion[N], left, right MatrixStore[N], div *concurrency.Divider)

// multiplierFor returns the float64 accumulation kernel for primitive fields
// and the exact field kernel otherwise.
func multiplierFor[N any](f scalar.Field[N]) multiplier[N] {
	if f.Primitive() {
		return multiplyPrimitive[N]
	}

	return multiplyGeneric[N]
}

// Multiply returns left*right as a new store.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (ErrNilMatrix, ErrDimensionMismatch).
//   - Stage 2: Short-circuit constants: a Zero operand yields Zero(left.rows,
//     right.cols); an Identity operand yields a physical copy of the other.
//   - Stage 3: Allocate the target (sparse when both operands are sparse,
//     otherwise the dense store for the field) and FillByMultiplying.
//
// Behavior highlights:
//   - Above/below left operands and left/right right operands fan out into
//     sub-regions of the target; no intermediate product is materialised.
//   - Dense float operands of the same width take the AXPY column kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Multiply").
//
// Complexity:
//   - Dense: O(m*k*n). Sparse: O(sum over right non-zeros of the matching
//     left column's non-zeros).
func Multiply[N any](left, right MatrixStore[N], opts ...Option) (MatrixStore[N], error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)
	f := left.Field()
	rows, cols := left.CountRows(), right.CountColumns()

	path := multiplyPath(left, right)
	if o.divider.DebugEnabled() {
		o.divider.Logger().Debug("matrix: multiply",
			"path", path,
			"field", f.Name(),
			"rows", rows,
			"inner", left.CountColumns(),
			"cols", cols)
	}

	switch path {
	case pathZero:
		return newZero(f, rows, cols), nil
	case pathIdentity:
		other := left
		if _, ok := left.(*IdentityStore[N]); ok {
			other = right
		}
		c, err := Copy(other, opts...)
		if err != nil {
			return nil, matrixErrorf(opMultiply, err)
		}
		return c, nil
	}

	var target PhysicalStore[N]
	if path == pathSparse {
		target = newSparseStore(f, rows, cols, o)
	} else {
		target = newDense(f, rows, cols, o)
	}
	if err := target.FillByMultiplying(left, right); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return target, nil
}

// multiplyPath classifies an operand pair; the order of the checks is the
// dispatch priority.
func multiplyPath[N any](left, right MatrixStore[N]) string {
	_, lz := left.(*ZeroStore[N])
	_, rz := right.(*ZeroStore[N])
	if lz || rz {
		return pathZero
	}
	_, li := left.(*IdentityStore[N])
	_, ri := right.(*IdentityStore[N])
	if li || ri {
		return pathIdentity
	}
	if _, ok := left.(*aboveBelowStore[N]); ok {
		return pathFanOutRows
	}
	if _, ok := right.(*leftRightStore[N]); ok {
		return pathFanOutCols
	}
	_, ls := left.(*SparseStore[N])
	_, rs := right.(*SparseStore[N])
	if ls && rs {
		return pathSparse
	}
	switch any(left).(type) {
	case *PrimitiveStore[float64]:
		if _, ok := any(right).(*PrimitiveStore[float64]); ok {
			return pathDense
		}
	case *PrimitiveStore[float32]:
		if _, ok := any(right).(*PrimitiveStore[float32]); ok {
			return pathDense
		}
	}

	return pathGeneric
}

// multiplyInto validates the target shape and dispatches on the operands:
// constants, fan-out, sparse sweep, then the target's own multiplier.
func multiplyInto[N any](target TransformableRegion[N], left, right MatrixStore[N], mul multiplier[N], div *concurrency.Divider) error {
	if err := ValidateProductTarget(target, left, right); err != nil {
		return matrixErrorf(opFillByMul, err)
	}

	switch multiplyPath(left, right) {
	case pathZero:
		target.Reset()
	case pathIdentity:
		if _, ok := left.(*IdentityStore[N]); ok {
			right.SupplyTo(target)
		} else {
			left.SupplyTo(target)
		}
	case pathFanOutRows:
		l := left.(*aboveBelowStore[N])
		cols := target.CountColumns()
		upper := newLimitsRegion(target, l.split, cols)
		lower := newOffsetsRegion(target, l.split, 0)
		var errUpper, errLower error
		forkParts(div, target.CountRows()*cols,
			func() { errUpper = multiplyInto(upper, l.upper, right, mul, div) },
			func() { errLower = multiplyInto(lower, l.lower, right, mul, div) })
		return errors.Join(errUpper, errLower)
	case pathFanOutCols:
		r := right.(*leftRightStore[N])
		rows := target.CountRows()
		west := newLimitsRegion(target, rows, r.split)
		east := newOffsetsRegion(target, 0, r.split)
		var errWest, errEast error
		forkParts(div, rows*target.CountColumns(),
			func() { errWest = multiplyInto(west, left, r.left, mul, div) },
			func() { errEast = multiplyInto(east, left, r.right, mul, div) })
		return errors.Join(errWest, errEast)
	case pathSparse:
		sparseMultiply(target, left.(*SparseStore[N]), right.(*SparseStore[N]))
	default:
		mul(target, left, right, div)
	}

	return nil
}

// forkParts runs the two halves of a composition concurrently when the
// composed area exceeds the Compose threshold, sequentially otherwise.
func forkParts(div *concurrency.Divider, size int, first, second func()) {
	if size > div.Thresholds().Compose {
		div.Fork(first, second)
		return
	}
	first()
	second()
}

// multiplyPrimitive accumulates in float64 through DoubleValue, skipping the
// zero ranges reported by the operands' bounds. Target columns are split with
// the Multiply threshold.
func multiplyPrimitive[N any](target TransformableRegion[N], left, right MatrixStore[N], div *concurrency.Divider) {
	f := target.Field()
	rows := left.CountRows()
	div.Invoke(0, right.CountColumns(), div.Thresholds().Multiply, func(first, limit int) {
		for j := first; j < limit; j++ {
			kFirst, kLimit := right.FirstInColumn(j), right.LimitOfColumn(j)
			for i := 0; i < rows; i++ {
				var sum float64
				for k := max(kFirst, left.FirstInRow(i)); k < min(kLimit, left.LimitOfRow(i)); k++ {
					sum += left.DoubleValue(i, k) * right.DoubleValue(k, j)
				}
				target.Set(i, j, f.FromFloat64(sum))
			}
		}
	})
}

// multiplyGeneric is multiplyPrimitive with exact field arithmetic.
func multiplyGeneric[N any](target TransformableRegion[N], left, right MatrixStore[N], div *concurrency.Divider) {
	f := target.Field()
	rows := left.CountRows()
	div.Invoke(0, right.CountColumns(), div.Thresholds().Multiply, func(first, limit int) {
		for j := first; j < limit; j++ {
			kFirst, kLimit := right.FirstInColumn(j), right.LimitOfColumn(j)
			for i := 0; i < rows; i++ {
				sum := f.Zero()
				for k := max(kFirst, left.FirstInRow(i)); k < min(kLimit, left.LimitOfRow(i)); k++ {
					sum = f.Add(sum, f.Multiply(left.Get(i, k), right.Get(k, j)))
				}
				target.Set(i, j, sum)
			}
		}
	})
}

// multiplyDense is the column-AXPY kernel for same-width float stores:
// target(:, j) = sum over k of right(k, j) * left(:, k).
// It reports false when the operands are not both *PrimitiveStore[T].
func multiplyDense[T constraints.Float](target *PrimitiveStore[T], left, right MatrixStore[float64], div *concurrency.Divider) bool {
	l, okL := left.(*PrimitiveStore[T])
	r, okR := right.(*PrimitiveStore[T])
	if !okL || !okR {
		return false
	}
	rows, inner := l.rows, l.cols
	div.Invoke(0, r.cols, div.Thresholds().Multiply, func(first, limit int) {
		clear(target.data[first*rows : limit*rows])
		for j := first; j < limit; j++ {
			for k := 0; k < inner; k++ {
				array.AXPY(target.data, j*rows, 1, r.data[k+j*inner], l.data, k*rows, 1, rows)
			}
		}
	})

	return true
}

// sparseMultiply is the sparse AXPY sweep: for every non-zero right(k, j),
// add right(k, j) * left(:, k) into target(:, j). Both operands are
// snapshotted first, so no lock is held while target is written.
func sparseMultiply[N any](target TransformableRegion[N], left, right *SparseStore[N]) {
	f := target.Field()
	lsnap, rsnap := left.snapshot(), right.snapshot()
	lrows, rrows := int64(left.rows), int64(right.rows)

	target.Reset()
	rsnap.EachNonzero(func(index int64, v N) {
		k, j := index%rrows, int(index/rrows)
		lsnap.EachNonzeroInRange(k*lrows, (k+1)*lrows, func(li int64, a N) {
			target.Add(int(li-k*lrows), j, f.Multiply(a, v))
		})
	})
}
