// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// regionMapping translates region coordinates into base coordinates.
type regionMapping interface {
	toBase(row, col int) (int, int)
}

type rowsMapping struct{ rows []int }

func (m rowsMapping) toBase(row, col int) (int, int) { return m.rows[row], col }

type columnsMapping struct{ cols []int }

func (m columnsMapping) toBase(row, col int) (int, int) { return row, m.cols[col] }

type offsetsMapping struct{ rowOffset, colOffset int }

func (m offsetsMapping) toBase(row, col int) (int, int) { return row + m.rowOffset, col + m.colOffset }

// limitsMapping is the identity: a limits region only shrinks the shape.
type limitsMapping struct{}

func (limitsMapping) toBase(row, col int) (int, int) { return row, col }

type transposedMapping struct{}

func (transposedMapping) toBase(row, col int) (int, int) { return col, row }

// region is a write target addressing part of base through a mapping. Its
// multiplier is picked from the field when the region is built.
type region[N any] struct {
	base       TransformableRegion[N]
	rows, cols int
	mapping    regionMapping
	mul        multiplier[N]
	div        *concurrency.Divider
}

var _ TransformableRegion[float64] = (*region[float64])(nil)

func newRegion[N any](base TransformableRegion[N], rows, cols int, m regionMapping) *region[N] {
	return &region[N]{
		base:    base,
		rows:    rows,
		cols:    cols,
		mapping: m,
		mul:     multiplierFor(base.Field()),
		div:     concurrency.Default(),
	}
}

// RowsRegion addresses the given rows of base, in order. Indices must be
// distinct and inside base (ErrBadShape, ErrOutOfRange).
func RowsRegion[N any](base TransformableRegion[N], rows ...int) (TransformableRegion[N], error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if err := ValidateSelection(rows, base.CountRows(), false); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if err := ValidateDistinct(rows); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}

	return newRegion(base, len(rows), base.CountColumns(), rowsMapping{rows: slices.Clone(rows)}), nil
}

// ColumnsRegion addresses the given columns of base; rules mirror RowsRegion.
func ColumnsRegion[N any](base TransformableRegion[N], cols ...int) (TransformableRegion[N], error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if err := ValidateSelection(cols, base.CountColumns(), false); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if err := ValidateDistinct(cols); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}

	return newRegion(base, base.CountRows(), len(cols), columnsMapping{cols: slices.Clone(cols)}), nil
}

// OffsetsRegion addresses base without its first rowOffset rows and
// colOffset columns (0 <= offset < dimension).
func OffsetsRegion[N any](base TransformableRegion[N], rowOffset, colOffset int) (TransformableRegion[N], error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if rowOffset < 0 || rowOffset >= base.CountRows() || colOffset < 0 || colOffset >= base.CountColumns() {
		return nil, matrixErrorf(opRegion, fmt.Errorf("offsets (%d,%d): %w", rowOffset, colOffset, ErrOutOfRange))
	}

	return newOffsetsRegion(base, rowOffset, colOffset), nil
}

// LimitsRegion addresses the top-left rowLimit x colLimit corner of base
// (1 <= limit <= dimension).
func LimitsRegion[N any](base TransformableRegion[N], rowLimit, colLimit int) (TransformableRegion[N], error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}
	if rowLimit < 1 || rowLimit > base.CountRows() || colLimit < 1 || colLimit > base.CountColumns() {
		return nil, matrixErrorf(opRegion, fmt.Errorf("limits (%d,%d): %w", rowLimit, colLimit, ErrOutOfRange))
	}

	return newLimitsRegion(base, rowLimit, colLimit), nil
}

// TransposedRegion addresses base with rows and columns swapped. The
// transpose of a transposed region is its base.
func TransposedRegion[N any](base TransformableRegion[N]) (TransformableRegion[N], error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, matrixErrorf(opRegion, err)
	}

	return newTransposedRegion(base), nil
}

// newOffsetsRegion trusts its arguments; nested offsets collapse.
func newOffsetsRegion[N any](base TransformableRegion[N], rowOffset, colOffset int) TransformableRegion[N] {
	if rowOffset == 0 && colOffset == 0 {
		return base
	}
	if r, ok := base.(*region[N]); ok {
		if m, ok := r.mapping.(offsetsMapping); ok {
			return newRegion(r.base, r.rows-rowOffset, r.cols-colOffset,
				offsetsMapping{rowOffset: m.rowOffset + rowOffset, colOffset: m.colOffset + colOffset})
		}
	}

	return newRegion(base, base.CountRows()-rowOffset, base.CountColumns()-colOffset,
		offsetsMapping{rowOffset: rowOffset, colOffset: colOffset})
}

// newLimitsRegion trusts its arguments; nested limits collapse.
func newLimitsRegion[N any](base TransformableRegion[N], rowLimit, colLimit int) TransformableRegion[N] {
	if rowLimit == base.CountRows() && colLimit == base.CountColumns() {
		return base
	}
	if r, ok := base.(*region[N]); ok {
		if _, ok := r.mapping.(limitsMapping); ok {
			return newRegion(r.base, rowLimit, colLimit, limitsMapping{})
		}
	}

	return newRegion(base, rowLimit, colLimit, limitsMapping{})
}

func newTransposedRegion[N any](base TransformableRegion[N]) TransformableRegion[N] {
	if r, ok := base.(*region[N]); ok {
		if _, ok := r.mapping.(transposedMapping); ok {
			return r.base
		}
	}

	return newRegion(base, base.CountColumns(), base.CountRows(), transposedMapping{})
}

func (r *region[N]) CountRows() int         { return r.rows }
func (r *region[N]) CountColumns() int      { return r.cols }
func (r *region[N]) Field() scalar.Field[N] { return r.base.Field() }

func (r *region[N]) Get(row, col int) N {
	br, bc := r.mapping.toBase(row, col)

	return r.base.Get(br, bc)
}

func (r *region[N]) DoubleValue(row, col int) float64 {
	br, bc := r.mapping.toBase(row, col)

	return r.base.DoubleValue(br, bc)
}

func (r *region[N]) Set(row, col int, value N) {
	br, bc := r.mapping.toBase(row, col)
	r.base.Set(br, bc, value)
}

func (r *region[N]) Add(row, col int, value N) {
	br, bc := r.mapping.toBase(row, col)
	r.base.Add(br, bc, value)
}

func (r *region[N]) ModifyOne(row, col int, fn function.Unary[N]) {
	br, bc := r.mapping.toBase(row, col)
	r.base.ModifyOne(br, bc, fn)
}

func (r *region[N]) FillOne(row, col int, value N) { r.Set(row, col, value) }

// FillAll writes value into every addressed cell, split by columns.
func (r *region[N]) FillAll(value N) {
	r.div.Invoke(0, r.cols, max(r.div.Thresholds().Fill/max(r.rows, 1), 1), func(first, limit int) {
		for j := first; j < limit; j++ {
			for i := 0; i < r.rows; i++ {
				r.Set(i, j, value)
			}
		}
	})
}

func (r *region[N]) Reset() { r.FillAll(r.base.Field().Zero()) }

// FillByMultiplying writes left*right through the mapping into the base.
// The multiplier was chosen from the base's field at construction; errors as
// for Multiply.
func (r *region[N]) FillByMultiplying(left, right MatrixStore[N]) error {
	return multiplyInto[N](r, left, right, r.mul, r.div)
}
