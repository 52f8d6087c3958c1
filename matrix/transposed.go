// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
)

// transposedStore reads base with rows and columns swapped; with conjugate
// set it also conjugates every element (the conjugate transpose).
type transposedStore[N any] struct {
	viewOf[N]
	conjugate bool
}

var _ MatrixStore[float64] = (*transposedStore[float64])(nil)

// Transpose returns the zero-copy transpose of s. Transpose(Transpose(s))
// returns s itself, and constants transpose to constants.
func Transpose[N any](s MatrixStore[N]) MatrixStore[N] {
	switch t := s.(type) {
	case *transposedStore[N]:
		if !t.conjugate {
			return t.base
		}
	case *ZeroStore[N]:
		return newZero(t.field, t.cols, t.rows)
	case *IdentityStore[N], *SingleStore[N]:
		return s
	}

	return &transposedStore[N]{viewOf: viewOf[N]{base: s}}
}

// Conjugate returns the zero-copy conjugate transpose of s.
// Conjugate(Conjugate(s)) returns s itself. For real fields the values equal
// those of Transpose(s).
func Conjugate[N any](s MatrixStore[N]) MatrixStore[N] {
	if t, ok := s.(*transposedStore[N]); ok && t.conjugate {
		return t.base
	}

	return &transposedStore[N]{viewOf: viewOf[N]{base: s}, conjugate: true}
}

func (t *transposedStore[N]) CountRows() int    { return t.base.CountColumns() }
func (t *transposedStore[N]) CountColumns() int { return t.base.CountRows() }

func (t *transposedStore[N]) Get(row, col int) N {
	v := t.base.Get(col, row)
	if t.conjugate {
		return t.base.Field().Conjugate(v)
	}

	return v
}

func (t *transposedStore[N]) DoubleValue(row, col int) float64 {
	if t.conjugate {
		return t.base.Field().Float64(t.Get(row, col))
	}

	return t.base.DoubleValue(col, row)
}

func (t *transposedStore[N]) FirstInRow(row int) int    { return t.base.FirstInColumn(row) }
func (t *transposedStore[N]) LimitOfRow(row int) int    { return t.base.LimitOfColumn(row) }
func (t *transposedStore[N]) FirstInColumn(col int) int { return t.base.FirstInRow(col) }
func (t *transposedStore[N]) LimitOfColumn(col int) int { return t.base.LimitOfRow(col) }

// SupplyTo lets base write through a transposed region of target, then
// conjugates in place when needed.
func (t *transposedStore[N]) SupplyTo(target TransformableRegion[N]) {
	t.base.SupplyTo(newTransposedRegion(target))
	if !t.conjugate || t.base.Field().Primitive() {
		return
	}
	conj := function.Conjugate(t.base.Field())
	div := concurrency.Default()
	rows := target.CountRows()
	div.Invoke(0, target.CountColumns(), div.Thresholds().Modify, func(first, limit int) {
		for j := first; j < limit; j++ {
			for i := 0; i < rows; i++ {
				target.ModifyOne(i, j, conj)
			}
		}
	})
}
