// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
	"golang.org/x/exp/constraints"
)

// PrimitiveStore is a dense column-major float store: element (row, col)
// lives at data[row + col*rows]. The element type seen through the
// MatrixStore contract is always float64; a float32 backing narrows on every
// write and widens exactly on every read.
//
// Behavior highlights:
//   - Bulk fills, modifies, products and substitutions are split across
//     goroutines by the store's Divider; element accessors are not
//     synchronised (a store is owned by one writer at a time).
//   - Same-width operands take typed fast paths (AXPY product, flat copy);
//     anything else goes through the interface contract.
type PrimitiveStore[T constraints.Float] struct {
	rows, cols int
	data       []T
	div        *concurrency.Divider
	mul        multiplier[float64]
}

// Compile-time assertions: both widths expose the in-place kernels.
var (
	_ Decomposable[float64] = (*Primitive64Store)(nil)
	_ Decomposable[float64] = (*Primitive32Store)(nil)
)

// Primitive64Store is the float64-backed dense store.
type Primitive64Store = PrimitiveStore[float64]

// Primitive32Store is the float32-backed dense store.
type Primitive32Store = PrimitiveStore[float32]

// NewPrimitive64 allocates a zero rows x cols float64 store.
//
// Implementation:
//   - Stage 1: validate rows >= 1 and cols >= 1.
//   - Stage 2: gather options (Divider defaults to concurrency.Default()).
//   - Stage 3: allocate the column-major backing and bind the multiplier.
//
// Returns:
//   - *Primitive64Store: zero-filled, owning its backing exclusively.
//
// Errors:
//   - ErrBadShape (wrapped with "NewStore").
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewPrimitive64(rows, cols int, opts ...Option) (*Primitive64Store, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}

	return newPrimitiveStore[float64](rows, cols, gatherOptions(opts...)), nil
}

// NewPrimitive32 allocates a zero rows x cols float32 store. Validation and
// errors match NewPrimitive64; every write narrows to float32.
func NewPrimitive32(rows, cols int, opts ...Option) (*Primitive32Store, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}

	return newPrimitiveStore[float32](rows, cols, gatherOptions(opts...)), nil
}

func newPrimitiveStore[T constraints.Float](rows, cols int, o Options) *PrimitiveStore[T] {
	s := &PrimitiveStore[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
		div:  o.divider,
	}
	base := multiplierFor(scalar.Float64)
	s.mul = func(target TransformableRegion[float64], left, right MatrixStore[float64], div *concurrency.Divider) {
		if t, ok := target.(*PrimitiveStore[T]); ok && multiplyDense(t, left, right, div) {
			return
		}
		base(target, left, right, div)
	}

	return s
}

func (s *PrimitiveStore[T]) CountRows() int                   { return s.rows }
func (s *PrimitiveStore[T]) CountColumns() int                { return s.cols }
func (s *PrimitiveStore[T]) Count() int                       { return len(s.data) }
func (s *PrimitiveStore[T]) Field() scalar.Field[float64]     { return scalar.Float64 }
func (s *PrimitiveStore[T]) Get(row, col int) float64         { return float64(s.data[row+col*s.rows]) }
func (s *PrimitiveStore[T]) DoubleValue(row, col int) float64 { return float64(s.data[row+col*s.rows]) }
func (s *PrimitiveStore[T]) GetAt(index int) float64          { return float64(s.data[index]) }
func (s *PrimitiveStore[T]) DoubleAt(index int) float64       { return float64(s.data[index]) }

// Data exposes the column-major backing slice for in-place kernels.
func (s *PrimitiveStore[T]) Data() []T { return s.data }

// Dense stores report full bounds.
func (s *PrimitiveStore[T]) FirstInRow(int) int    { return 0 }
func (s *PrimitiveStore[T]) LimitOfRow(int) int    { return s.cols }
func (s *PrimitiveStore[T]) FirstInColumn(int) int { return 0 }
func (s *PrimitiveStore[T]) LimitOfColumn(int) int { return s.rows }

func (s *PrimitiveStore[T]) Set(row, col int, value float64) { s.data[row+col*s.rows] = T(value) }
func (s *PrimitiveStore[T]) Add(row, col int, value float64) {
	s.data[row+col*s.rows] = T(float64(s.data[row+col*s.rows]) + value)
}

func (s *PrimitiveStore[T]) ModifyOne(row, col int, fn function.Unary[float64]) {
	i := row + col*s.rows
	s.data[i] = T(fn.Invoke(float64(s.data[i])))
}

func (s *PrimitiveStore[T]) FillOne(row, col int, value float64) { s.Set(row, col, value) }

func (s *PrimitiveStore[T]) SetAt(index int, value float64) { s.data[index] = T(value) }
func (s *PrimitiveStore[T]) AddAt(index int, value float64) {
	s.data[index] = T(float64(s.data[index]) + value)
}

func (s *PrimitiveStore[T]) ModifyAt(index int, fn function.Unary[float64]) {
	s.data[index] = T(fn.Invoke(float64(s.data[index])))
}

// FillAll broadcasts value into every element.
//
// Implementation:
//   - Stage 1: narrow value once to the backing width.
//   - Stage 2: split the flat backing by the Fill threshold; each leaf runs
//     array.FillAll on its contiguous range.
//
// Complexity:
//   - Time O(rows*cols) spread over the Divider, Space O(1).
func (s *PrimitiveStore[T]) FillAll(value float64) {
	v := T(value)
	s.div.Invoke(0, len(s.data), s.div.Thresholds().Fill, func(first, limit int) {
		array.FillAll(s.data, first, limit, 1, v)
	})
}

func (s *PrimitiveStore[T]) Reset() { clear(s.data) }

// ModifyAll maps fn over every element in place.
//
// Behavior highlights:
//   - Split by the Modify threshold over the flat backing.
//   - Functions recognised by function.ArithmeticOf run the typed loops;
//     anything else is invoked per element through float64.
//   - fn must be safe for concurrent calls.
func (s *PrimitiveStore[T]) ModifyAll(fn function.Unary[float64]) {
	s.div.Invoke(0, len(s.data), s.div.Thresholds().Modify, func(first, limit int) {
		array.OperationUnary(s.data, first, limit, 1, s.data, fn)
	})
}

// ExchangeRows swaps two rows with one strided pass over the columns.
func (s *PrimitiveStore[T]) ExchangeRows(rowA, rowB int) {
	array.ExchangeRows(s.data, s.rows, s.cols, rowA, rowB)
}

// ExchangeColumns swaps two contiguous column ranges.
func (s *PrimitiveStore[T]) ExchangeColumns(colA, colB int) {
	array.ExchangeColumns(s.data, s.rows, colA, colB)
}

// Copy returns an independent store of the same width sharing the Divider.
// Complexity: O(rows*cols).
func (s *PrimitiveStore[T]) Copy() PhysicalStore[float64] {
	return &PrimitiveStore[T]{rows: s.rows, cols: s.cols, data: array.Copy(s.data), div: s.div, mul: s.mul}
}

// SupplyTo copies every element into target.
//
// Implementation:
//   - Stage 1: a same-shape dense float target of either width takes the
//     flat converting copy, split by the Supply threshold.
//   - Stage 2: any other target is reset and written element by element.
//
// Inputs:
//   - target: a region with the shape of s; it must not alias s.
func (s *PrimitiveStore[T]) SupplyTo(target TransformableRegion[float64]) {
	switch t := target.(type) {
	case *PrimitiveStore[float64]:
		if t.rows == s.rows && t.cols == s.cols {
			s.div.Invoke(0, len(s.data), s.div.Thresholds().Supply, func(first, limit int) {
				array.FillMatchingSingle(t.data, first, limit, 1, s.data)
			})
			return
		}
	case *PrimitiveStore[float32]:
		if t.rows == s.rows && t.cols == s.cols {
			s.div.Invoke(0, len(s.data), s.div.Thresholds().Supply, func(first, limit int) {
				array.FillMatchingSingle(t.data, first, limit, 1, s.data)
			})
			return
		}
	}
	supplyElements[float64](s, target, s.div)
}

// FillByMultiplying overwrites s with left*right.
//
// Behavior highlights:
//   - Dispatch follows Multiply: zero, identity, fan-out, sparse, dense.
//   - When target and both operands are PrimitiveStores of the same width,
//     the column-split AXPY kernel runs on the backings; otherwise the
//     float64 accumulation through DoubleValue.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "FillByMultiplying").
func (s *PrimitiveStore[T]) FillByMultiplying(left, right MatrixStore[float64]) error {
	return multiplyInto[float64](s, left, right, s.mul, s.div)
}

// IndexOfLargestInColumn returns the row in [row, rows) of the largest
// magnitude in col (first on ties; row itself when all are zero).
func (s *PrimitiveStore[T]) IndexOfLargestInColumn(row, col int) int {
	off := col * s.rows

	return array.AMAX(s.data, off+row, off+s.rows, 1) - off
}

func (s *PrimitiveStore[T]) RotateRight(colA, colB int, cos, sin float64) {
	array.RotateRight(s.data, s.rows, colA, colB, T(cos), T(sin))
}

// ApplyLU runs one elimination step on the columns right of pivot, split by
// the Modify threshold. multipliers is indexed by row.
func (s *PrimitiveStore[T]) ApplyLU(pivot int, multipliers []float64) {
	m := narrow[T](multipliers)
	s.div.Invoke(pivot+1, s.cols, s.div.Thresholds().Modify, func(first, limit int) {
		array.ApplyLU(s.data, s.rows, pivot, m, first, limit)
	})
}

// ApplyCholesky updates the lower triangle right of pivot with the finished
// L column, split by the Modify threshold like ApplyLU.
//
// Inputs:
//   - pivot: the column just completed (diagonal already square-rooted,
//     entries below it already divided by the diagonal).
//   - multipliers: that L column, indexed by row.
//
// Complexity:
//   - Time O((rows-pivot)²/2), Space O(rows) for a float32 backing.
func (s *PrimitiveStore[T]) ApplyCholesky(pivot int, multipliers []float64) {
	m := narrow[T](multipliers)
	s.div.Invoke(pivot+1, s.cols, s.div.Thresholds().Modify, func(first, limit int) {
		array.ApplyCholesky(s.data, s.rows, pivot, m, first, limit)
	})
}

// narrow returns values as a []T, converting only when T is not float64.
func narrow[T constraints.Float](values []float64) []T {
	if m, ok := any(values).([]T); ok {
		return m
	}
	m := make([]T, len(values))
	array.FillMatchingSingle(m, 0, len(m), 1, values)

	return m
}

// SubstituteForwards solves in place, one leaf per range of right-hand-side
// columns. For real stores the conjugate transpose is the transpose.
func (s *PrimitiveStore[T]) SubstituteForwards(body MatrixStore[float64], unitDiagonal, conjugated, identity bool) {
	if conjugated {
		body = Transpose(body)
	}
	s.div.Invoke(0, s.cols, s.div.Thresholds().Substitute, func(first, limit int) {
		array.SubstituteForwards(s.data, s.rows, first, limit, body, unitDiagonal, identity)
	})
}

func (s *PrimitiveStore[T]) SubstituteBackwards(body MatrixStore[float64], unitDiagonal, conjugated, identity bool) {
	if conjugated {
		body = Transpose(body)
	}
	s.div.Invoke(0, s.cols, s.div.Thresholds().Substitute, func(first, limit int) {
		array.SubstituteBackwards(s.data, s.rows, first, limit, body, unitDiagonal, identity)
	})
}

// supplyElements resets target and copies s column by column within each
// column's bounds; columns are split by the Supply threshold.
func supplyElements[N any](s MatrixStore[N], target TransformableRegion[N], div *concurrency.Divider) {
	target.Reset()
	div.Invoke(0, s.CountColumns(), div.Thresholds().Supply, func(first, limit int) {
		for j := first; j < limit; j++ {
			for i := s.FirstInColumn(j); i < s.LimitOfColumn(j); i++ {
				target.Set(i, j, s.Get(i, j))
			}
		}
	})
}
