// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// Copy collects s into a new physical store.
//
// Implementation:
//   - Stage 1: reject a nil s.
//   - Stage 2: a physical s copies itself as its own kind (sparse stays
//     sparse); a Divider given in opts replaces the one the copy inherits.
//   - Stage 3: any other store is supplied into a fresh dense store for its
//     field, built with opts.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Copy").
//
// Complexity:
//   - Time O(rows*cols) dense, O(nnz) sparse; Space the same.
func Copy[N any](s MatrixStore[N], opts ...Option) (PhysicalStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if p, ok := s.(PhysicalStore[N]); ok {
		c := p.Copy()
		if d := explicitDivider(opts...); d != nil {
			if r, ok := c.(rebindable); ok {
				r.setDivider(d)
			}
		}
		return c, nil
	}
	target := newDense(s.Field(), s.CountRows(), s.CountColumns(), gatherOptions(opts...))
	s.SupplyTo(target)

	return target, nil
}

// AsPhysical returns s itself when it owns its storage. Views and constant
// placeholders report ErrUnsupported; use Copy to materialise them.
func AsPhysical[N any](s MatrixStore[N]) (PhysicalStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opAsPhysical, err)
	}
	if p, ok := s.(PhysicalStore[N]); ok {
		return p, nil
	}

	return nil, matrixErrorf(opAsPhysical, fmt.Errorf("%T: %w", s, ErrUnsupported))
}

// Equals reports whether a and b have the same shape and every pair of
// elements differs by at most tolerance in the field's norm.
func Equals[N any](a, b MatrixStore[N], tolerance float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	f := a.Field()
	for j := 0; j < a.CountColumns(); j++ {
		for i := 0; i < a.CountRows(); i++ {
			if f.Norm(f.Subtract(a.Get(i, j), b.Get(i, j))) > tolerance {
				return false
			}
		}
	}

	return true
}

// IsAllZeros reports whether every element of s is the field zero. It only
// scans inside each column's bounds.
func IsAllZeros[N any](s MatrixStore[N]) bool {
	f := s.Field()
	for j := 0; j < s.CountColumns(); j++ {
		for i := s.FirstInColumn(j); i < s.LimitOfColumn(j); i++ {
			if !f.IsZero(s.Get(i, j)) {
				return false
			}
		}
	}

	return true
}

// FrobeniusNorm returns sqrt(sum of |e|^2) over the elements of s.
func FrobeniusNorm[N any](s MatrixStore[N]) float64 {
	f := s.Field()
	div := concurrency.Default()
	sumSquares := concurrency.Reduce(div, 0, s.CountColumns(), aggregateColumns(div, s.CountRows()),
		func(first, limit int) float64 {
			var acc float64
			for j := first; j < limit; j++ {
				for i := s.FirstInColumn(j); i < s.LimitOfColumn(j); i++ {
					n := f.Norm(s.Get(i, j))
					acc += n * n
				}
			}
			return acc
		},
		func(a, b float64) float64 { return a + b })

	return math.Sqrt(sumSquares)
}

// Sum adds every element of s. Dense stores aggregate their backing slices
// directly; other stores go through Get. Partial sums are combined left to
// right, so the result does not depend on how the work was split.
func Sum[N any](s MatrixStore[N]) N {
	f := s.Field()
	div := concurrency.Default()
	rows := s.CountRows()
	leaf := func(first, limit int) N {
		agg := function.NewSum(f)
		for j := first; j < limit; j++ {
			for i := s.FirstInColumn(j); i < s.LimitOfColumn(j); i++ {
				agg.Invoke(s.Get(i, j))
			}
		}
		return agg.Get()
	}

	switch p := any(s).(type) {
	case *PrimitiveStore[float64]:
		leaf = primitiveSumLeaf[N](p.data, rows)
	case *PrimitiveStore[float32]:
		leaf = primitiveSumLeaf[N](p.data, rows)
	case *GenericStore[N]:
		leaf = func(first, limit int) N {
			agg := function.NewSum(f)
			array.OperationVoidScalar(p.data, first*rows, limit*rows, 1, agg)
			return agg.Get()
		}
	}

	return concurrency.Reduce(div, 0, s.CountColumns(), aggregateColumns(div, rows), leaf, f.Add)
}

// primitiveSumLeaf sums whole columns of a float backing. N is float64 here;
// the conversion goes through any to satisfy the type checker.
func primitiveSumLeaf[N any, T float32 | float64](data []T, rows int) func(first, limit int) N {
	return func(first, limit int) N {
		agg := function.NewSum(scalar.Float64)
		array.OperationVoid(data, first*rows, limit*rows, 1, agg)
		return any(agg.Get()).(N)
	}
}

// aggregateColumns converts the Aggregate element threshold into columns.
func aggregateColumns(div *concurrency.Divider, rows int) int {
	return max(div.Thresholds().Aggregate/max(rows, 1), 1)
}

// String renders s one row per line, elements formatted by the field and
// separated by tabs.
func String[N any](s MatrixStore[N]) string {
	f := s.Field()
	var b strings.Builder
	for i := 0; i < s.CountRows(); i++ {
		for j := 0; j < s.CountColumns(); j++ {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(f.Format(s.Get(i, j)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
