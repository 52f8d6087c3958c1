// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// RawStore keeps one []float64 per row. Row exchange swaps slice headers,
// which makes it the cheapest store to pivot by rows.
type RawStore struct {
	data [][]float64
	cols int
	div  *concurrency.Divider
	mul  multiplier[float64]
}

var _ PhysicalStore[float64] = (*RawStore)(nil)

// NewRaw allocates a zero rows x cols RawStore.
//
// Implementation:
//   - Stage 1: validate the shape.
//   - Stage 2: allocate one contiguous backing and slice it into rows with a
//     capped capacity, so no row can grow into its neighbour.
//
// Errors:
//   - ErrBadShape (wrapped with "NewStore").
func NewRaw(rows, cols int, opts ...Option) (*RawStore, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}

	return newRawStore(rows, cols, gatherOptions(opts...)), nil
}

// RawOf copies row data into a new RawStore.
//
// Inputs:
//   - rows: row slices; they are copied, never retained.
//
// Errors:
//   - ErrBadShape when rows is empty, a row is empty, or lengths differ.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func RawOf(rows [][]float64, opts ...Option) (*RawStore, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNewStore, ErrBadShape)
	}
	cols := len(rows[0])
	if err := ValidateShape(len(rows), cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}
	s := newRawStore(len(rows), cols, gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opNewStore, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		copy(s.data[i], row)
	}

	return s, nil
}

func newRawStore(rows, cols int, o Options) *RawStore {
	backing := make([]float64, rows*cols)
	data := make([][]float64, rows)
	for i := range data {
		data[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &RawStore{data: data, cols: cols, div: o.divider, mul: multiplierFor(scalar.Float64)}
}

func (s *RawStore) CountRows() int                   { return len(s.data) }
func (s *RawStore) CountColumns() int                { return s.cols }
func (s *RawStore) Count() int                       { return len(s.data) * s.cols }
func (s *RawStore) Field() scalar.Field[float64]     { return scalar.Float64 }
func (s *RawStore) Get(row, col int) float64         { return s.data[row][col] }
func (s *RawStore) DoubleValue(row, col int) float64 { return s.data[row][col] }

// GetAt keeps the column-major flattening of Access1D.
func (s *RawStore) GetAt(index int) float64 {
	i, j := s.at(index)

	return s.data[i][j]
}

func (s *RawStore) DoubleAt(index int) float64 { return s.GetAt(index) }

// at splits a column-major flattened index into its row and column.
func (s *RawStore) at(index int) (int, int) {
	rows := len(s.data)

	return index % rows, index / rows
}

func (s *RawStore) SetAt(index int, value float64) {
	i, j := s.at(index)
	s.data[i][j] = value
}

func (s *RawStore) AddAt(index int, value float64) {
	i, j := s.at(index)
	s.data[i][j] += value
}

func (s *RawStore) ModifyAt(index int, fn function.Unary[float64]) {
	i, j := s.at(index)
	s.data[i][j] = fn.Invoke(s.data[i][j])
}

// Row returns a copy of row i.
func (s *RawStore) Row(i int) []float64 { return array.Copy(s.data[i]) }

func (s *RawStore) FirstInRow(int) int    { return 0 }
func (s *RawStore) LimitOfRow(int) int    { return s.cols }
func (s *RawStore) FirstInColumn(int) int { return 0 }
func (s *RawStore) LimitOfColumn(int) int { return len(s.data) }

func (s *RawStore) Set(row, col int, value float64) { s.data[row][col] = value }
func (s *RawStore) Add(row, col int, value float64) { s.data[row][col] += value }
func (s *RawStore) ModifyOne(row, col int, fn function.Unary[float64]) {
	s.data[row][col] = fn.Invoke(s.data[row][col])
}
func (s *RawStore) FillOne(row, col int, value float64) { s.data[row][col] = value }

// FillAll and ModifyAll split by rows; each row is a contiguous slice.
func (s *RawStore) FillAll(value float64) {
	s.div.Invoke(0, len(s.data), rowsPerLeaf(s.div.Thresholds().Fill, s.cols), func(first, limit int) {
		for _, row := range s.data[first:limit] {
			array.FillAll(row, 0, len(row), 1, value)
		}
	})
}

func (s *RawStore) Reset() {
	for _, row := range s.data {
		clear(row)
	}
}

func (s *RawStore) ModifyAll(fn function.Unary[float64]) {
	s.div.Invoke(0, len(s.data), rowsPerLeaf(s.div.Thresholds().Modify, s.cols), func(first, limit int) {
		for _, row := range s.data[first:limit] {
			array.OperationUnary(row, 0, len(row), 1, row, fn)
		}
	})
}

// ExchangeRows swaps the two row slice headers; no element moves.
func (s *RawStore) ExchangeRows(rowA, rowB int) {
	s.data[rowA], s.data[rowB] = s.data[rowB], s.data[rowA]
}

// ExchangeColumns touches every row; prefer ExchangeRows on this store.
func (s *RawStore) ExchangeColumns(colA, colB int) {
	for _, row := range s.data {
		row[colA], row[colB] = row[colB], row[colA]
	}
}

// Copy returns an independent RawStore with a fresh contiguous backing.
func (s *RawStore) Copy() PhysicalStore[float64] {
	c := newRawStore(len(s.data), s.cols, Options{divider: s.div})
	for i, row := range s.data {
		copy(c.data[i], row)
	}

	return c
}

// SupplyTo copies row by row into a same-shape RawStore and element by
// element into anything else.
func (s *RawStore) SupplyTo(target TransformableRegion[float64]) {
	if t, ok := target.(*RawStore); ok && len(t.data) == len(s.data) && t.cols == s.cols {
		for i, row := range s.data {
			copy(t.data[i], row)
		}
		return
	}
	supplyElements[float64](s, target, s.div)
}

func (s *RawStore) FillByMultiplying(left, right MatrixStore[float64]) error {
	return multiplyInto[float64](s, left, right, s.mul, s.div)
}

// rowsPerLeaf converts an element threshold into a row count.
func rowsPerLeaf(threshold, cols int) int {
	return max(threshold/max(cols, 1), 1)
}
