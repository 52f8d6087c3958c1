// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/scalar"
)

// Constant stores hold no memory proportional to their shape. They are
// structural placeholders: AsPhysical reports ErrUnsupported for them, and
// Multiply short-circuits on them.

// ZeroStore is an all-zero rows x cols store.
type ZeroStore[N any] struct {
	field      scalar.Field[N]
	rows, cols int
}

// Zero returns a rows x cols zero store.
func Zero[N any](f scalar.Field[N], rows, cols int) (*ZeroStore[N], error) {
	if f == nil {
		return nil, matrixErrorf(opConstant, ErrNilMatrix)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opConstant, err)
	}

	return newZero(f, rows, cols), nil
}

func newZero[N any](f scalar.Field[N], rows, cols int) *ZeroStore[N] {
	return &ZeroStore[N]{field: f, rows: rows, cols: cols}
}

func (z *ZeroStore[N]) CountRows() int                    { return z.rows }
func (z *ZeroStore[N]) CountColumns() int                 { return z.cols }
func (z *ZeroStore[N]) Field() scalar.Field[N]            { return z.field }
func (z *ZeroStore[N]) Get(int, int) N                    { return z.field.Zero() }
func (z *ZeroStore[N]) DoubleValue(int, int) float64      { return 0 }
func (z *ZeroStore[N]) FirstInRow(int) int                { return z.cols }
func (z *ZeroStore[N]) LimitOfRow(int) int                { return 0 }
func (z *ZeroStore[N]) FirstInColumn(int) int             { return z.rows }
func (z *ZeroStore[N]) LimitOfColumn(int) int             { return 0 }
func (z *ZeroStore[N]) SupplyTo(t TransformableRegion[N]) { t.Reset() }

// IdentityStore is the n x n identity.
type IdentityStore[N any] struct {
	field scalar.Field[N]
	dim   int
}

// Identity returns the n x n identity store.
//
// Returns:
//   - *IdentityStore: no backing memory; Multiply by it copies the other
//     operand, and Transpose returns it unchanged.
//
// Errors:
//   - ErrNilMatrix for a nil field, ErrBadShape for n < 1.
func Identity[N any](f scalar.Field[N], n int) (*IdentityStore[N], error) {
	if f == nil {
		return nil, matrixErrorf(opConstant, ErrNilMatrix)
	}
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf(opConstant, err)
	}

	return &IdentityStore[N]{field: f, dim: n}, nil
}

func (e *IdentityStore[N]) CountRows() int         { return e.dim }
func (e *IdentityStore[N]) CountColumns() int      { return e.dim }
func (e *IdentityStore[N]) Field() scalar.Field[N] { return e.field }

func (e *IdentityStore[N]) Get(row, col int) N {
	if row == col {
		return e.field.One()
	}

	return e.field.Zero()
}

func (e *IdentityStore[N]) DoubleValue(row, col int) float64 {
	if row == col {
		return 1
	}

	return 0
}

func (e *IdentityStore[N]) FirstInRow(row int) int    { return row }
func (e *IdentityStore[N]) LimitOfRow(row int) int    { return row + 1 }
func (e *IdentityStore[N]) FirstInColumn(col int) int { return col }
func (e *IdentityStore[N]) LimitOfColumn(col int) int { return col + 1 }

func (e *IdentityStore[N]) SupplyTo(t TransformableRegion[N]) {
	t.Reset()
	one := e.field.One()
	for i := 0; i < e.dim; i++ {
		t.Set(i, i, one)
	}
}

// SingleStore is a 1x1 store holding one value.
type SingleStore[N any] struct {
	field scalar.Field[N]
	value N
}

// Compile-time assertions for the constant stores.
var (
	_ MatrixStore[float64] = (*ZeroStore[float64])(nil)
	_ MatrixStore[float64] = (*IdentityStore[float64])(nil)
	_ MatrixStore[float64] = (*SingleStore[float64])(nil)
)

// Single returns the 1x1 store [value].
func Single[N any](f scalar.Field[N], value N) (*SingleStore[N], error) {
	if f == nil {
		return nil, matrixErrorf(opConstant, ErrNilMatrix)
	}

	return &SingleStore[N]{field: f, value: value}, nil
}

func (s *SingleStore[N]) CountRows() int                    { return 1 }
func (s *SingleStore[N]) CountColumns() int                 { return 1 }
func (s *SingleStore[N]) Field() scalar.Field[N]            { return s.field }
func (s *SingleStore[N]) Get(int, int) N                    { return s.value }
func (s *SingleStore[N]) DoubleValue(int, int) float64      { return s.field.Float64(s.value) }
func (s *SingleStore[N]) FirstInRow(int) int                { return 0 }
func (s *SingleStore[N]) LimitOfRow(int) int                { return 1 }
func (s *SingleStore[N]) FirstInColumn(int) int             { return 0 }
func (s *SingleStore[N]) LimitOfColumn(int) int             { return 1 }
func (s *SingleStore[N]) SupplyTo(t TransformableRegion[N]) { t.Set(0, 0, s.value) }
