// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"
)

// rowsStore reads rows of base by an index list; a negative index reads as a
// row of zeros and repeats are allowed.
type rowsStore[N any] struct {
	viewOf[N]
	rows []int
}

var (
	_ MatrixStore[float64] = (*rowsStore[float64])(nil)
	_ MatrixStore[float64] = (*columnsStore[float64])(nil)
)

// Rows selects rows of s, in the given order.
//
// Behavior highlights:
//   - A negative index yields a zero row (bounds report it empty).
//   - Repeated indices are allowed; the view aliases s, so later writes to
//     s show through.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange for an index >= s.CountRows(),
//     ErrBadShape for an empty list (all wrapped with "Rows").
//
// Complexity:
//   - Construction O(len(rows)) for the index copy; Get O(1).
func Rows[N any](s MatrixStore[N], rows ...int) (MatrixStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opRows, err)
	}
	if err := ValidateSelection(rows, s.CountRows(), true); err != nil {
		return nil, matrixErrorf(opRows, err)
	}

	return &rowsStore[N]{viewOf: viewOf[N]{base: s}, rows: slices.Clone(rows)}, nil
}

func (s *rowsStore[N]) CountRows() int    { return len(s.rows) }
func (s *rowsStore[N]) CountColumns() int { return s.base.CountColumns() }

func (s *rowsStore[N]) Get(row, col int) N {
	if r := s.rows[row]; r >= 0 {
		return s.base.Get(r, col)
	}

	return s.base.Field().Zero()
}

func (s *rowsStore[N]) DoubleValue(row, col int) float64 {
	if r := s.rows[row]; r >= 0 {
		return s.base.DoubleValue(r, col)
	}

	return 0
}

func (s *rowsStore[N]) FirstInRow(row int) int {
	if r := s.rows[row]; r >= 0 {
		return s.base.FirstInRow(r)
	}

	return s.base.CountColumns()
}

func (s *rowsStore[N]) LimitOfRow(row int) int {
	if r := s.rows[row]; r >= 0 {
		return s.base.LimitOfRow(r)
	}

	return 0
}

func (s *rowsStore[N]) FirstInColumn(int) int { return 0 }
func (s *rowsStore[N]) LimitOfColumn(int) int { return len(s.rows) }

func (s *rowsStore[N]) SupplyTo(target TransformableRegion[N]) {
	target.Reset()
	cols := s.base.CountColumns()
	for i, r := range s.rows {
		if r < 0 {
			continue
		}
		for j := max(s.base.FirstInRow(r), 0); j < min(s.base.LimitOfRow(r), cols); j++ {
			target.Set(i, j, s.base.Get(r, j))
		}
	}
}

// columnsStore is rowsStore for columns.
type columnsStore[N any] struct {
	viewOf[N]
	cols []int
}

// Columns selects columns of s; the rules mirror Rows.
func Columns[N any](s MatrixStore[N], cols ...int) (MatrixStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	if err := ValidateSelection(cols, s.CountColumns(), true); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}

	return &columnsStore[N]{viewOf: viewOf[N]{base: s}, cols: slices.Clone(cols)}, nil
}

func (s *columnsStore[N]) CountRows() int    { return s.base.CountRows() }
func (s *columnsStore[N]) CountColumns() int { return len(s.cols) }

func (s *columnsStore[N]) Get(row, col int) N {
	if c := s.cols[col]; c >= 0 {
		return s.base.Get(row, c)
	}

	return s.base.Field().Zero()
}

func (s *columnsStore[N]) DoubleValue(row, col int) float64 {
	if c := s.cols[col]; c >= 0 {
		return s.base.DoubleValue(row, c)
	}

	return 0
}

func (s *columnsStore[N]) FirstInRow(int) int { return 0 }
func (s *columnsStore[N]) LimitOfRow(int) int { return len(s.cols) }

func (s *columnsStore[N]) FirstInColumn(col int) int {
	if c := s.cols[col]; c >= 0 {
		return s.base.FirstInColumn(c)
	}

	return s.base.CountRows()
}

func (s *columnsStore[N]) LimitOfColumn(col int) int {
	if c := s.cols[col]; c >= 0 {
		return s.base.LimitOfColumn(c)
	}

	return 0
}

func (s *columnsStore[N]) SupplyTo(target TransformableRegion[N]) {
	target.Reset()
	for j, c := range s.cols {
		if c < 0 {
			continue
		}
		for i := s.base.FirstInColumn(c); i < s.base.LimitOfColumn(c); i++ {
			target.Set(i, j, s.base.Get(i, c))
		}
	}
}
