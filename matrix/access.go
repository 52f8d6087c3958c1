// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// Structure2D is the shape of a store. Shapes never change after construction.
type Structure2D interface {
	CountRows() int
	CountColumns() int
}

// Access1D reads a store as a column-major flattened sequence:
// index = row + col*CountRows().
type Access1D[N any] interface {
	Count() int
	GetAt(index int) N
	DoubleAt(index int) float64
}

// Access2D is the element read contract. DoubleValue is the fast lossy path
// (for non-primitive fields it is Field().Float64(Get(row, col))); Get is exact.
type Access2D[N any] interface {
	Structure2D
	Get(row, col int) N
	DoubleValue(row, col int) float64
}

// Mutate1D writes through the column-major flattened index of Access1D.
type Mutate1D[N any] interface {
	SetAt(index int, value N)
	AddAt(index int, value N)
	ModifyAt(index int, fn function.Unary[N])
}

// Mutate2D is the element write contract.
type Mutate2D[N any] interface {
	Set(row, col int, value N)
	Add(row, col int, value N)
	ModifyOne(row, col int, fn function.Unary[N])
}

// Fillable2D fills in bulk.
type Fillable2D[N any] interface {
	FillOne(row, col int, value N)
	FillAll(value N)
	// Reset sets every element to zero.
	Reset()
}

// Modifiable2D applies a function to every element in place.
type Modifiable2D[N any] interface {
	// ModifyAll replaces every element e with fn(e).
	ModifyAll(fn function.Unary[N])
}

// ElementsSupplier pushes its content into a write target. SupplyTo resets
// the target first; composed stores delegate to sub-regions of target
// instead of materialising intermediates.
type ElementsSupplier[N any] interface {
	Structure2D
	SupplyTo(target TransformableRegion[N])
}

// MatrixStore is the read side every store and view implements.
//
// FirstInRow/LimitOfRow (and the column pair) bound the non-trivial content:
// every non-zero (row, c) has FirstInRow(row) <= c < LimitOfRow(row). Bounds
// may be conservative (wider than the actual content). An empty row reports
// first == CountColumns() and limit == 0.
type MatrixStore[N any] interface {
	Access2D[N]
	ElementsSupplier[N]
	Field() scalar.Field[N]
	FirstInRow(row int) int
	LimitOfRow(row int) int
	FirstInColumn(col int) int
	LimitOfColumn(col int) int
}

// TransformableRegion is a write target: a physical store or a sub-addressed
// region of one. FillByMultiplying overwrites the region with left*right; the
// target must not share storage with either operand.
type TransformableRegion[N any] interface {
	Access2D[N]
	Mutate2D[N]
	Fillable2D[N]
	Field() scalar.Field[N]
	FillByMultiplying(left, right MatrixStore[N]) error
}

// PhysicalStore owns its backing storage exclusively: Copy never aliases.
type PhysicalStore[N any] interface {
	MatrixStore[N]
	TransformableRegion[N]
	Access1D[N]
	Mutate1D[N]
	Modifiable2D[N]
	ExchangeRows(rowA, rowB int)
	ExchangeColumns(colA, colB int)
	// Copy returns an independent store of the same kind sharing the Divider.
	Copy() PhysicalStore[N]
	// Divider returns the scheduler bulk operations are split with.
	Divider() *concurrency.Divider
}

// Decomposable exposes the in-place kernels decomposition algorithms drive
// directly on a column-major backing array.
type Decomposable[N any] interface {
	PhysicalStore[N]
	// IndexOfLargestInColumn returns the row in [row, CountRows()) holding the
	// largest magnitude in col; the first such row on ties.
	IndexOfLargestInColumn(row, col int) int
	// RotateRight applies [cos -sin; sin cos] from the right to columns colA, colB.
	RotateRight(colA, colB int, cos, sin N)
	// ApplyLU subtracts multipliers[i]*store(pivot, j) from store(i, j) for
	// every i > pivot and j > pivot. multipliers is indexed by row.
	ApplyLU(pivot int, multipliers []N)
	// ApplyCholesky subtracts multipliers[i]*conj(multipliers[j]) from
	// store(i, j) for every j > pivot and i >= j: the trailing update of the
	// lower triangle once column pivot holds the finished L column.
	ApplyCholesky(pivot int, multipliers []N)
	// SubstituteForwards solves L*X = this in place, L the lower triangle of
	// body (or of body's conjugate transpose when conjugated).
	SubstituteForwards(body MatrixStore[N], unitDiagonal, conjugated, identity bool)
	// SubstituteBackwards solves U*X = this in place.
	SubstituteBackwards(body MatrixStore[N], unitDiagonal, conjugated, identity bool)
}

// Factory builds physical stores of one kind.
type Factory[N any, S PhysicalStore[N]] interface {
	Field() scalar.Field[N]
	Make(rows, cols int) (S, error)
	Copy(source Access2D[N]) (S, error)
	// Columns builds a store whose j-th column is columns[j].
	Columns(columns ...[]N) (S, error)
	// Rows builds a store whose i-th row is rows[i].
	Rows(rows ...[]N) (S, error)
}
