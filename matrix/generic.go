// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// GenericStore is a dense column-major store over any scalar field
// (complex, quaternion, rational...). Arithmetic goes through the field;
// DoubleValue is the field's lossy float64 projection.
type GenericStore[N any] struct {
	rows, cols int
	data       []N
	field      scalar.Field[N]
	div        *concurrency.Divider
	mul        multiplier[N]
}

// Compile-time assertions over representative fields.
var (
	_ Decomposable[complex128]      = (*GenericStore[complex128])(nil)
	_ Decomposable[scalar.Rational] = (*GenericStore[scalar.Rational])(nil)
)

// NewGeneric allocates a rows x cols store filled with f.Zero().
//
// Implementation:
//   - Stage 1: reject a nil field (ErrNilMatrix) and an empty shape
//     (ErrBadShape).
//   - Stage 2: allocate the column-major backing and write f.Zero() into
//     it, since the Go zero value of N need not be the field zero.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewGeneric[N any](f scalar.Field[N], rows, cols int, opts ...Option) (*GenericStore[N], error) {
	if f == nil {
		return nil, matrixErrorf(opNewStore, ErrNilMatrix)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}

	return newGenericStore(f, rows, cols, gatherOptions(opts...)), nil
}

func newGenericStore[N any](f scalar.Field[N], rows, cols int, o Options) *GenericStore[N] {
	s := &GenericStore[N]{
		rows:  rows,
		cols:  cols,
		data:  make([]N, rows*cols),
		field: f,
		div:   o.divider,
		mul:   multiplierFor(f),
	}
	s.Reset()

	return s
}

// newDense allocates the dense store suited to f: a Primitive64Store when f
// is primitive over float64, a GenericStore otherwise.
func newDense[N any](f scalar.Field[N], rows, cols int, o Options) PhysicalStore[N] {
	if f.Primitive() {
		if s, ok := any(newPrimitiveStore[float64](rows, cols, o)).(PhysicalStore[N]); ok {
			return s
		}
	}

	return newGenericStore(f, rows, cols, o)
}

func (s *GenericStore[N]) CountRows() int                   { return s.rows }
func (s *GenericStore[N]) CountColumns() int                { return s.cols }
func (s *GenericStore[N]) Count() int                       { return len(s.data) }
func (s *GenericStore[N]) Field() scalar.Field[N]           { return s.field }
func (s *GenericStore[N]) Get(row, col int) N               { return s.data[row+col*s.rows] }
func (s *GenericStore[N]) GetAt(index int) N                { return s.data[index] }
func (s *GenericStore[N]) DoubleAt(index int) float64       { return s.field.Float64(s.data[index]) }
func (s *GenericStore[N]) DoubleValue(row, col int) float64 { return s.field.Float64(s.Get(row, col)) }

// Data exposes the column-major backing slice for in-place kernels.
func (s *GenericStore[N]) Data() []N { return s.data }

func (s *GenericStore[N]) FirstInRow(int) int    { return 0 }
func (s *GenericStore[N]) LimitOfRow(int) int    { return s.cols }
func (s *GenericStore[N]) FirstInColumn(int) int { return 0 }
func (s *GenericStore[N]) LimitOfColumn(int) int { return s.rows }

func (s *GenericStore[N]) Set(row, col int, value N) { s.data[row+col*s.rows] = value }

func (s *GenericStore[N]) Add(row, col int, value N) {
	i := row + col*s.rows
	s.data[i] = s.field.Add(s.data[i], value)
}

func (s *GenericStore[N]) ModifyOne(row, col int, fn function.Unary[N]) {
	i := row + col*s.rows
	s.data[i] = fn.Invoke(s.data[i])
}

func (s *GenericStore[N]) FillOne(row, col int, value N) { s.Set(row, col, value) }

func (s *GenericStore[N]) SetAt(index int, value N) { s.data[index] = value }
func (s *GenericStore[N]) AddAt(index int, value N) {
	s.data[index] = s.field.Add(s.data[index], value)
}
func (s *GenericStore[N]) ModifyAt(index int, fn function.Unary[N]) {
	s.data[index] = fn.Invoke(s.data[index])
}

// FillAll writes value everywhere, split by the Fill threshold.
func (s *GenericStore[N]) FillAll(value N) {
	s.div.Invoke(0, len(s.data), s.div.Thresholds().Fill, func(first, limit int) {
		array.FillAll(s.data, first, limit, 1, value)
	})
}

// Reset writes f.Zero() everywhere (the Go zero value of N need not be the
// field zero).
func (s *GenericStore[N]) Reset() { array.FillAll(s.data, 0, len(s.data), 1, s.field.Zero()) }

// ModifyAll maps fn over the backing through the field, split by the
// Modify threshold. fn must be safe for concurrent calls.
func (s *GenericStore[N]) ModifyAll(fn function.Unary[N]) {
	s.div.Invoke(0, len(s.data), s.div.Thresholds().Modify, func(first, limit int) {
		array.OperationUnaryScalar(s.data, first, limit, 1, s.data, fn)
	})
}

func (s *GenericStore[N]) ExchangeRows(rowA, rowB int) {
	array.ExchangeRows(s.data, s.rows, s.cols, rowA, rowB)
}

func (s *GenericStore[N]) ExchangeColumns(colA, colB int) {
	array.ExchangeColumns(s.data, s.rows, colA, colB)
}

// Copy returns an independent store over the same field and Divider.
func (s *GenericStore[N]) Copy() PhysicalStore[N] {
	return &GenericStore[N]{
		rows:  s.rows,
		cols:  s.cols,
		data:  array.Copy(s.data),
		field: s.field,
		div:   s.div,
		mul:   s.mul,
	}
}

// SupplyTo copies into target; a same-shape GenericStore gets a flat copy.
func (s *GenericStore[N]) SupplyTo(target TransformableRegion[N]) {
	if t, ok := target.(*GenericStore[N]); ok && t.rows == s.rows && t.cols == s.cols {
		copy(t.data, s.data)
		return
	}
	supplyElements[N](s, target, s.div)
}

// FillByMultiplying overwrites s with left*right using exact field
// arithmetic. Errors as for Multiply.
func (s *GenericStore[N]) FillByMultiplying(left, right MatrixStore[N]) error {
	return multiplyInto[N](s, left, right, s.mul, s.div)
}

func (s *GenericStore[N]) IndexOfLargestInColumn(row, col int) int {
	off := col * s.rows

	return array.AMAXScalar(s.data, off+row, off+s.rows, 1, s.field) - off
}

func (s *GenericStore[N]) RotateRight(colA, colB int, cos, sin N) {
	array.RotateRightScalar(s.data, s.rows, colA, colB, cos, sin, s.field)
}

func (s *GenericStore[N]) ApplyLU(pivot int, multipliers []N) {
	s.div.Invoke(pivot+1, s.cols, s.div.Thresholds().Modify, func(first, limit int) {
		array.ApplyLUScalar(s.data, s.rows, pivot, multipliers, first, limit, s.field)
	})
}

// ApplyCholesky is the Hermitian trailing update: store(i, j) -=
// multipliers[i]*conj(multipliers[j]) for j > pivot, i >= j.
func (s *GenericStore[N]) ApplyCholesky(pivot int, multipliers []N) {
	s.div.Invoke(pivot+1, s.cols, s.div.Thresholds().Modify, func(first, limit int) {
		array.ApplyCholeskyScalar(s.data, s.rows, pivot, multipliers, first, limit, s.field)
	})
}

func (s *GenericStore[N]) SubstituteForwards(body MatrixStore[N], unitDiagonal, conjugated, identity bool) {
	s.div.Invoke(0, s.cols, s.div.Thresholds().Substitute, func(first, limit int) {
		array.SubstituteForwardsScalar(s.data, s.rows, first, limit, body, unitDiagonal, conjugated, identity, s.field)
	})
}

func (s *GenericStore[N]) SubstituteBackwards(body MatrixStore[N], unitDiagonal, conjugated, identity bool) {
	s.div.Invoke(0, s.cols, s.div.Thresholds().Substitute, func(first, limit int) {
		array.SubstituteBackwardsScalar(s.data, s.rows, first, limit, body, unitDiagonal, conjugated, identity, s.field)
	})
}
