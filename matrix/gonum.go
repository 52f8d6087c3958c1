// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumMatrix presents a float64 store through gonum's read contract.
type gonumMatrix struct {
	s MatrixStore[float64]
}

var _ mat.Matrix = gonumMatrix{}

func (g gonumMatrix) Dims() (int, int)    { return g.s.CountRows(), g.s.CountColumns() }
func (g gonumMatrix) At(i, j int) float64 { return g.s.DoubleValue(i, j) }
func (g gonumMatrix) T() mat.Matrix       { return gonumMatrix{s: Transpose(g.s)} }

// AsGonum exposes s as a gonum mat.Matrix without copying.
//
// A Primitive64Store is returned as the transpose of a row-major mat.Dense
// over the same backing slice, so gonum's BLAS paths apply and writes to the
// store are visible through the result. Any other store is wrapped and read
// element by element.
func AsGonum(s MatrixStore[float64]) mat.Matrix {
	if p, ok := s.(*Primitive64Store); ok {
		return mat.NewDense(p.cols, p.rows, p.data).T()
	}

	return gonumMatrix{s: s}
}

// FromGonum copies m into a new Primitive64Store.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrBadShape when m has no rows or columns.
func FromGonum(m mat.Matrix, opts ...Option) (*Primitive64Store, error) {
	if m == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", rows, cols, err))
	}
	target := newPrimitiveStore[float64](rows, cols, gatherOptions(opts...))
	if g, ok := m.(gonumMatrix); ok {
		g.s.SupplyTo(target)
		return target, nil
	}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			target.data[i+j*rows] = m.At(i, j)
		}
	}

	return target, nil
}
