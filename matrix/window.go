// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// offsetStore drops the first rowOffset rows and colOffset columns of base.
type offsetStore[N any] struct {
	viewOf[N]
	rowOffset, colOffset int
}

var (
	_ MatrixStore[float64] = (*offsetStore[float64])(nil)
	_ MatrixStore[float64] = (*limitStore[float64])(nil)
)

// Offsets returns s without its first rowOffset rows and colOffset columns.
// Offsets must satisfy 0 <= offset < dimension (ErrOutOfRange). Nested
// offsets collapse into one view.
func Offsets[N any](s MatrixStore[N], rowOffset, colOffset int) (MatrixStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opOffsets, err)
	}
	if rowOffset < 0 || rowOffset >= s.CountRows() || colOffset < 0 || colOffset >= s.CountColumns() {
		return nil, matrixErrorf(opOffsets, fmt.Errorf("(%d,%d) of %dx%d: %w",
			rowOffset, colOffset, s.CountRows(), s.CountColumns(), ErrOutOfRange))
	}
	if rowOffset == 0 && colOffset == 0 {
		return s, nil
	}
	if o, ok := s.(*offsetStore[N]); ok {
		return &offsetStore[N]{viewOf: o.viewOf, rowOffset: o.rowOffset + rowOffset, colOffset: o.colOffset + colOffset}, nil
	}

	return &offsetStore[N]{viewOf: viewOf[N]{base: s}, rowOffset: rowOffset, colOffset: colOffset}, nil
}

func (s *offsetStore[N]) CountRows() int    { return s.base.CountRows() - s.rowOffset }
func (s *offsetStore[N]) CountColumns() int { return s.base.CountColumns() - s.colOffset }

func (s *offsetStore[N]) Get(row, col int) N {
	return s.base.Get(row+s.rowOffset, col+s.colOffset)
}

func (s *offsetStore[N]) DoubleValue(row, col int) float64 {
	return s.base.DoubleValue(row+s.rowOffset, col+s.colOffset)
}

func (s *offsetStore[N]) FirstInRow(row int) int {
	return max(s.base.FirstInRow(row+s.rowOffset)-s.colOffset, 0)
}

func (s *offsetStore[N]) LimitOfRow(row int) int {
	return max(s.base.LimitOfRow(row+s.rowOffset)-s.colOffset, 0)
}

func (s *offsetStore[N]) FirstInColumn(col int) int {
	return max(s.base.FirstInColumn(col+s.colOffset)-s.rowOffset, 0)
}

func (s *offsetStore[N]) LimitOfColumn(col int) int {
	return max(s.base.LimitOfColumn(col+s.colOffset)-s.rowOffset, 0)
}

func (s *offsetStore[N]) SupplyTo(target TransformableRegion[N]) { supplyView[N](s, target) }

// limitStore keeps the first rowLimit rows and colLimit columns of base.
type limitStore[N any] struct {
	viewOf[N]
	rowLimit, colLimit int
}

// Limits returns the top-left rowLimit x colLimit corner of s.
// Limits must satisfy 1 <= limit <= dimension (ErrOutOfRange). Nested limits
// collapse into one view.
func Limits[N any](s MatrixStore[N], rowLimit, colLimit int) (MatrixStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opLimits, err)
	}
	if rowLimit < 1 || rowLimit > s.CountRows() || colLimit < 1 || colLimit > s.CountColumns() {
		return nil, matrixErrorf(opLimits, fmt.Errorf("(%d,%d) of %dx%d: %w",
			rowLimit, colLimit, s.CountRows(), s.CountColumns(), ErrOutOfRange))
	}
	if rowLimit == s.CountRows() && colLimit == s.CountColumns() {
		return s, nil
	}
	if l, ok := s.(*limitStore[N]); ok {
		return &limitStore[N]{viewOf: l.viewOf, rowLimit: rowLimit, colLimit: colLimit}, nil
	}

	return &limitStore[N]{viewOf: viewOf[N]{base: s}, rowLimit: rowLimit, colLimit: colLimit}, nil
}

// Window returns the rows x cols block of s whose top-left element is
// (row, col): Offsets followed by Limits.
//
// Errors:
//   - ErrOutOfRange when the block does not fit inside s.
func Window[N any](s MatrixStore[N], row, col, rows, cols int) (MatrixStore[N], error) {
	off, err := Offsets(s, row, col)
	if err != nil {
		return nil, err
	}

	return Limits(off, rows, cols)
}

func (s *limitStore[N]) CountRows() int    { return s.rowLimit }
func (s *limitStore[N]) CountColumns() int { return s.colLimit }

func (s *limitStore[N]) Get(row, col int) N               { return s.base.Get(row, col) }
func (s *limitStore[N]) DoubleValue(row, col int) float64 { return s.base.DoubleValue(row, col) }

func (s *limitStore[N]) FirstInRow(row int) int    { return min(s.base.FirstInRow(row), s.colLimit) }
func (s *limitStore[N]) LimitOfRow(row int) int    { return min(s.base.LimitOfRow(row), s.colLimit) }
func (s *limitStore[N]) FirstInColumn(col int) int { return min(s.base.FirstInColumn(col), s.rowLimit) }
func (s *limitStore[N]) LimitOfColumn(col int) int { return min(s.base.LimitOfColumn(col), s.rowLimit) }

func (s *limitStore[N]) SupplyTo(target TransformableRegion[N]) { supplyView[N](s, target) }
