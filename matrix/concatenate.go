// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/scalar"
)

// aboveBelowStore stacks upper on top of lower; rows at or past split read
// from lower.
type aboveBelowStore[N any] struct {
	upper, lower MatrixStore[N]
	split        int
}

// Compile-time assertions for both concatenations.
var (
	_ MatrixStore[float64] = (*aboveBelowStore[float64])(nil)
	_ MatrixStore[float64] = (*leftRightStore[float64])(nil)
)

// Above returns the rows of upper followed by the rows of lower.
//
// Implementation:
//   - Stage 1: reject nil parts (ErrNilMatrix).
//   - Stage 2: require equal column counts (ErrDimensionMismatch) before
//     any element is read.
//   - Stage 3: record the split row; no element is copied.
//
// Behavior highlights:
//   - Row bounds fall through to the part owning the row; column bounds
//     combine both parts.
//   - SupplyTo delegates each part to a sub-region of the target.
//
// Complexity:
//   - Construction O(1); Get O(1) plus the part's own cost.
func Above[N any](upper, lower MatrixStore[N]) (MatrixStore[N], error) {
	if err := ValidateNotNil(upper); err != nil {
		return nil, matrixErrorf(opAbove, err)
	}
	if err := ValidateNotNil(lower); err != nil {
		return nil, matrixErrorf(opAbove, err)
	}
	if upper.CountColumns() != lower.CountColumns() {
		return nil, matrixErrorf(opAbove, ErrDimensionMismatch)
	}

	return &aboveBelowStore[N]{upper: upper, lower: lower, split: upper.CountRows()}, nil
}

// Below returns the rows of upper followed by the rows of lower, i.e. lower
// placed below upper.
func Below[N any](lower, upper MatrixStore[N]) (MatrixStore[N], error) {
	return Above(upper, lower)
}

func (s *aboveBelowStore[N]) CountRows() int         { return s.split + s.lower.CountRows() }
func (s *aboveBelowStore[N]) CountColumns() int      { return s.upper.CountColumns() }
func (s *aboveBelowStore[N]) Field() scalar.Field[N] { return s.upper.Field() }

func (s *aboveBelowStore[N]) Get(row, col int) N {
	if row >= s.split {
		return s.lower.Get(row-s.split, col)
	}

	return s.upper.Get(row, col)
}

func (s *aboveBelowStore[N]) DoubleValue(row, col int) float64 {
	if row >= s.split {
		return s.lower.DoubleValue(row-s.split, col)
	}

	return s.upper.DoubleValue(row, col)
}

func (s *aboveBelowStore[N]) FirstInRow(row int) int {
	if row >= s.split {
		return s.lower.FirstInRow(row - s.split)
	}

	return s.upper.FirstInRow(row)
}

func (s *aboveBelowStore[N]) LimitOfRow(row int) int {
	if row >= s.split {
		return s.lower.LimitOfRow(row - s.split)
	}

	return s.upper.LimitOfRow(row)
}

// FirstInColumn falls through to lower when col is empty in upper.
func (s *aboveBelowStore[N]) FirstInColumn(col int) int {
	if first := s.upper.FirstInColumn(col); first < s.split {
		return first
	}

	return s.split + s.lower.FirstInColumn(col)
}

// LimitOfColumn falls back to upper when col is empty in lower.
func (s *aboveBelowStore[N]) LimitOfColumn(col int) int {
	if limit := s.lower.LimitOfColumn(col); limit > 0 {
		return s.split + limit
	}

	return s.upper.LimitOfColumn(col)
}

// SupplyTo fills the top and bottom row bands of target from the two parts,
// concurrently when the area exceeds the Compose threshold.
func (s *aboveBelowStore[N]) SupplyTo(target TransformableRegion[N]) {
	cols := target.CountColumns()
	top := newLimitsRegion(target, s.split, cols)
	bottom := newOffsetsRegion(target, s.split, 0)
	forkParts(concurrency.Default(), target.CountRows()*cols,
		func() { s.upper.SupplyTo(top) },
		func() { s.lower.SupplyTo(bottom) })
}

// leftRightStore places left beside right; columns at or past split read
// from right.
type leftRightStore[N any] struct {
	left, right MatrixStore[N]
	split       int
}

// Left returns the columns of left followed by the columns of right.
// Row counts must match (ErrDimensionMismatch).
func Left[N any](left, right MatrixStore[N]) (MatrixStore[N], error) {
	if err := ValidateNotNil(left); err != nil {
		return nil, matrixErrorf(opLeft, err)
	}
	if err := ValidateNotNil(right); err != nil {
		return nil, matrixErrorf(opLeft, err)
	}
	if left.CountRows() != right.CountRows() {
		return nil, matrixErrorf(opLeft, ErrDimensionMismatch)
	}

	return &leftRightStore[N]{left: left, right: right, split: left.CountColumns()}, nil
}

// Right returns the columns of left followed by the columns of right, i.e.
// right placed to the right of left.
func Right[N any](right, left MatrixStore[N]) (MatrixStore[N], error) {
	return Left(left, right)
}

func (s *leftRightStore[N]) CountRows() int         { return s.left.CountRows() }
func (s *leftRightStore[N]) CountColumns() int      { return s.split + s.right.CountColumns() }
func (s *leftRightStore[N]) Field() scalar.Field[N] { return s.left.Field() }

func (s *leftRightStore[N]) Get(row, col int) N {
	if col >= s.split {
		return s.right.Get(row, col-s.split)
	}

	return s.left.Get(row, col)
}

func (s *leftRightStore[N]) DoubleValue(row, col int) float64 {
	if col >= s.split {
		return s.right.DoubleValue(row, col-s.split)
	}

	return s.left.DoubleValue(row, col)
}

func (s *leftRightStore[N]) FirstInRow(row int) int {
	if first := s.left.FirstInRow(row); first < s.split {
		return first
	}

	return s.split + s.right.FirstInRow(row)
}

func (s *leftRightStore[N]) LimitOfRow(row int) int {
	if limit := s.right.LimitOfRow(row); limit > 0 {
		return s.split + limit
	}

	return s.left.LimitOfRow(row)
}

func (s *leftRightStore[N]) FirstInColumn(col int) int {
	if col >= s.split {
		return s.right.FirstInColumn(col - s.split)
	}

	return s.left.FirstInColumn(col)
}

func (s *leftRightStore[N]) LimitOfColumn(col int) int {
	if col >= s.split {
		return s.right.LimitOfColumn(col - s.split)
	}

	return s.left.LimitOfColumn(col)
}

func (s *leftRightStore[N]) SupplyTo(target TransformableRegion[N]) {
	rows := target.CountRows()
	west := newLimitsRegion(target, rows, s.split)
	east := newOffsetsRegion(target, 0, s.split)
	forkParts(concurrency.Default(), rows*target.CountColumns(),
		func() { s.left.SupplyTo(west) },
		func() { s.right.SupplyTo(east) })
}
