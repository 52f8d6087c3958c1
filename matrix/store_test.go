// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// TestNewStoresRejectEmptyShapes ensures every constructor refuses rows or
// columns below one.
func TestNewStoresRejectEmptyShapes(t *testing.T) {
	_, err := matrix.NewPrimitive64(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewPrimitive32(3, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewGeneric(scalar.Rationals, -1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewRaw(0, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewSparse(scalar.Float64, 1, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zero(scalar.Float64, 0, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity(scalar.Float64, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestPrimitive64Layout verifies the column-major backing and Access1D order.
func TestPrimitive64Layout(t *testing.T) {
	s := dense(t, []float64{1, 2}, []float64{3, 4})

	require.Equal(t, []float64{1, 3, 2, 4}, s.Data())
	require.Equal(t, 4, s.Count())
	require.Equal(t, 3.0, s.GetAt(1))
	require.Equal(t, 2.0, s.DoubleAt(2))
	require.Equal(t, 4.0, s.Get(1, 1))
}

// TestPrimitive64BulkOperations covers fill, modify, exchange and copy.
func TestPrimitive64BulkOperations(t *testing.T) {
	s := dense(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	c := s.Copy()
	s.ModifyAll(function.Multiply(scalar.Float64).Second(2))
	require.Equal(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, toRows[float64](s))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, toRows[float64](c), "copy must not alias")

	s.ExchangeRows(0, 1)
	s.ExchangeColumns(0, 2)
	require.Equal(t, [][]float64{{12, 10, 8}, {6, 4, 2}}, toRows[float64](s))

	s.Add(0, 0, 0.5)
	s.ModifyOne(1, 1, function.UnaryFunc[float64](func(v float64) float64 { return -v }))
	require.Equal(t, 12.5, s.Get(0, 0))
	require.Equal(t, -4.0, s.Get(1, 1))

	s.FillAll(7)
	require.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, toRows[float64](s))

	s.Reset()
	require.True(t, matrix.IsAllZeros[float64](s))
}

// TestPrimitive32NarrowsOnWrite checks the float32 backing rounds every write
// and widens on read.
func TestPrimitive32NarrowsOnWrite(t *testing.T) {
	s, err := matrix.NewPrimitive32(2, 2, matrix.WithDivider(tinyDivider))
	require.NoError(t, err)

	s.Set(0, 0, 0.1)
	require.Equal(t, float64(float32(0.1)), s.Get(0, 0))
	require.InDelta(t, 0.1, s.DoubleValue(0, 0), 1e-7)

	s.FillAll(1.5)
	require.Equal(t, []float32{1.5, 1.5, 1.5, 1.5}, s.Data())

	wide, err := matrix.NewPrimitive64(2, 2)
	require.NoError(t, err)
	s.SupplyTo(wide)
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, wide.Data())
}

// TestDecomposableKernels drives the in-place kernels through the store.
func TestDecomposableKernels(t *testing.T) {
	s := dense(t, []float64{1, 2}, []float64{-7, 4}, []float64{7, 0})

	require.Equal(t, 1, s.IndexOfLargestInColumn(0, 0), "first occurrence of |7| wins")
	require.Equal(t, 2, s.IndexOfLargestInColumn(2, 0))

	r := dense(t, []float64{1, 2}, []float64{3, 4})
	r.RotateRight(0, 1, 0, 1)
	require.Equal(t, []float64{-2, -4, 1, 3}, r.Data())
}

// TestRawStore covers row slices, the column-major Access1D view and the
// cheap row exchange.
func TestRawStore(t *testing.T) {
	_, err := matrix.RawOf([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.RawOf(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	s, err := matrix.RawOf([][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithDivider(tinyDivider))
	require.NoError(t, err)
	require.Equal(t, 4.0, s.GetAt(1))
	require.Equal(t, 3.0, s.GetAt(4))

	row := s.Row(0)
	row[0] = 100
	require.Equal(t, 1.0, s.Get(0, 0), "Row returns a copy")

	s.ExchangeRows(0, 1)
	s.ExchangeColumns(0, 2)
	require.Equal(t, [][]float64{{6, 5, 4}, {3, 2, 1}}, toRows[float64](s))

	s.ModifyAll(function.Add(scalar.Float64).Second(1))
	require.Equal(t, [][]float64{{7, 6, 5}, {4, 3, 2}}, toRows[float64](s))

	c := s.Copy()
	s.FillAll(0)
	require.True(t, matrix.IsAllZeros[float64](s))
	require.Equal(t, 7.0, c.Get(0, 0))
}

// TestGenericStoreRationals checks exact arithmetic and the field zero.
func TestGenericStoreRationals(t *testing.T) {
	f := scalar.Rationals
	s, err := matrix.NewGeneric(f, 2, 2, matrix.WithDivider(tinyDivider))
	require.NoError(t, err)
	require.True(t, f.IsZero(s.Get(1, 1)))

	s.FillAll(scalar.NewRational(1, 3))
	s.Add(0, 0, scalar.NewRational(2, 3))
	require.True(t, f.Equal(f.One(), s.Get(0, 0)))

	sum := matrix.Sum[scalar.Rational](s)
	require.True(t, f.Equal(scalar.NewRational(2, 1), sum), "got %s", sum)

	s.ModifyAll(function.Multiply(f).Second(scalar.NewRational(3, 1)))
	require.True(t, f.Equal(scalar.NewRational(1, 1), s.Get(1, 0)))
	require.Equal(t, "3\t1\n1\t1\n", matrix.String[scalar.Rational](s))
}

// TestGenericStoreComplex checks element-wise conjugation.
func TestGenericStoreComplex(t *testing.T) {
	s, err := matrix.GenericFactory(scalar.Complex128).Rows(
		[]complex128{1 + 2i, 3},
		[]complex128{0, 4 - 1i},
	)
	require.NoError(t, err)

	s.ModifyAll(function.Conjugate(scalar.Complex128))
	require.Equal(t, [][]complex128{{1 - 2i, 3}, {0, 4 + 1i}}, toRows[complex128](s))
	require.InDelta(t, 1.0, s.DoubleValue(0, 0), 0)
}

// TestSparseStoreBulk covers the bulk operations of the sparse store.
func TestSparseStoreBulk(t *testing.T) {
	s, err := matrix.NewSparse(scalar.Float64, 2, 3, matrix.WithDivider(tinyDivider))
	require.NoError(t, err)

	s.FillAll(2)
	require.Equal(t, 6, s.CountNonzeros())

	s.FillAll(0)
	require.Equal(t, 0, s.CountNonzeros())
	require.Equal(t, 3, s.FirstInRow(0))
	require.Equal(t, 0, s.LimitOfRow(0))
	require.Equal(t, 2, s.FirstInColumn(1))
	require.Equal(t, 0, s.LimitOfColumn(1))

	s.ModifyAll(function.Add(scalar.Float64).Second(1))
	require.Equal(t, 6, s.CountNonzeros(), "fn(0) != 0 fills the implicit zeros")

	s.Reset()
	s.Set(0, 2, 5)
	s.Set(1, 0, -1)
	s.ExchangeRows(0, 1)
	require.Equal(t, 5.0, s.Get(1, 2))
	require.Equal(t, -1.0, s.Get(0, 0))
	require.Equal(t, 2, s.FirstInRow(1))

	s.ExchangeColumns(0, 2)
	require.Equal(t, 5.0, s.Get(1, 0))
	require.Equal(t, 0, s.FirstInRow(1))
	require.Equal(t, 1, s.LimitOfRow(1))

	c := s.Copy()
	s.Reset()
	require.Equal(t, 5.0, c.Get(1, 0), "copy must not alias")

	var seen [][3]float64
	c.(*matrix.SparseStore[float64]).EachNonzero(func(row, col int, v float64) {
		seen = append(seen, [3]float64{float64(row), float64(col), v})
	})
	require.Empty(t, cmp.Diff([][3]float64{{1, 0, 5}, {0, 2, -1}}, seen))
}

// TestFactories covers Make, Rows, Columns and Copy across the store kinds.
func TestFactories(t *testing.T) {
	byRows, err := matrix.Primitive64Factory().Rows([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	byCols, err := matrix.Primitive64Factory().Columns([]float64{1, 3}, []float64{2, 4})
	require.NoError(t, err)
	require.Equal(t, byRows.Data(), byCols.Data())

	_, err = matrix.Primitive64Factory().Rows()
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Primitive32Factory().Columns([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.RawFactory().Make(2, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	id, err := matrix.Identity(scalar.Float64, 3)
	require.NoError(t, err)
	raw, err := matrix.RawFactory().Copy(id)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, toRows[float64](raw))

	sparse, err := matrix.SparseFactory(scalar.Float64).Rows([]float64{0, 1}, []float64{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sparse.CountNonzeros())

	narrow, err := matrix.Primitive32Factory().Copy(byRows)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 3, 2, 4}, narrow.Data())

	q, err := matrix.GenericFactory(scalar.Quaternions).Make(1, 2)
	require.NoError(t, err)
	require.Equal(t, scalar.Quaternions, q.Field())

	_, err = matrix.Primitive64Factory().Copy(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCopyAndAsPhysical checks that physical stores copy as their own kind
// and views collect into a dense store.
func TestCopyAndAsPhysical(t *testing.T) {
	a := dense(t, []float64{1, 2}, []float64{3, 4})

	p, err := matrix.AsPhysical[float64](a)
	require.NoError(t, err)
	require.Same(t, a, p)

	_, err = matrix.AsPhysical(matrix.Transpose[float64](a))
	require.ErrorIs(t, err, matrix.ErrUnsupported)

	z, err := matrix.Zero(scalar.Float64, 2, 2)
	require.NoError(t, err)
	_, err = matrix.AsPhysical[float64](z)
	require.ErrorIs(t, err, matrix.ErrUnsupported)

	c, err := matrix.Copy(matrix.Transpose[float64](a))
	require.NoError(t, err)
	require.IsType(t, &matrix.Primitive64Store{}, c)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, toRows[float64](c))

	sparse := randomSparse(t, 3, 3, 7)
	sc, err := matrix.Copy[float64](sparse)
	require.NoError(t, err)
	require.IsType(t, &matrix.SparseStore[float64]{}, sc)
	require.True(t, matrix.Equals[float64](sparse, sc, 0))

	_, err = matrix.Copy[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAggregates covers Sum, FrobeniusNorm, IsAllZeros, Equals and String.
func TestAggregates(t *testing.T) {
	a := dense(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	require.Equal(t, 21.0, matrix.Sum[float64](a))
	require.Equal(t, 21.0, matrix.Sum(matrix.Transpose[float64](a)))
	require.Equal(t, 21.0, matrix.Sum[float64](hide[float64]{a}))

	narrow, err := matrix.Primitive32Factory().Copy(a)
	require.NoError(t, err)
	require.Equal(t, 21.0, matrix.Sum[float64](narrow))

	sparse, err := matrix.SparseFactory(scalar.Float64).Copy(a)
	require.NoError(t, err)
	require.Equal(t, 21.0, matrix.Sum[float64](sparse))

	require.InDelta(t, 5.0, matrix.FrobeniusNorm[float64](dense(t, []float64{3, 4})), 1e-15)

	z, err := matrix.Zero(scalar.Float64, 3, 2)
	require.NoError(t, err)
	require.True(t, matrix.IsAllZeros[float64](z))
	require.False(t, matrix.IsAllZeros[float64](a))

	b := a.Copy()
	b.Add(1, 2, 1e-9)
	require.True(t, matrix.Equals[float64](a, b, 1e-6))
	require.False(t, matrix.Equals[float64](a, b, 1e-12))
	require.False(t, matrix.Equals(a, matrix.Transpose[float64](a), 1))
	require.True(t, matrix.Equals[float64](nil, nil, 0))

	require.Equal(t, "1\t2\t3\n4\t5\t6\n", matrix.String[float64](a))
}

// TestMutate1DRoundTrip writes through the flattened index on every physical
// store and reads the result back through both access paths.
func TestMutate1DRoundTrip(t *testing.T) {
	const rows, cols = 3, 2
	add := function.Add(scalar.Float64)

	tests := []struct {
		name  string
		build func() (matrix.PhysicalStore[float64], error)
	}{
		{"primitive64", func() (matrix.PhysicalStore[float64], error) {
			return matrix.NewPrimitive64(rows, cols, matrix.WithDivider(tinyDivider))
		}},
		{"primitive32", func() (matrix.PhysicalStore[float64], error) {
			return matrix.NewPrimitive32(rows, cols, matrix.WithDivider(tinyDivider))
		}},
		{"generic", func() (matrix.PhysicalStore[float64], error) {
			return matrix.NewGeneric(scalar.Float64, rows, cols, matrix.WithDivider(tinyDivider))
		}},
		{"raw", func() (matrix.PhysicalStore[float64], error) {
			return matrix.NewRaw(rows, cols, matrix.WithDivider(tinyDivider))
		}},
		{"sparse", func() (matrix.PhysicalStore[float64], error) {
			return matrix.NewSparse(scalar.Float64, rows, cols, matrix.WithDivider(tinyDivider))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.build()
			require.NoError(t, err)

			s.SetAt(4, 7)
			require.Equal(t, 7.0, s.Get(1, 1), "index 4 is (1,1) in column-major order")
			s.AddAt(4, 1)
			require.Equal(t, 8.0, s.GetAt(4))
			s.ModifyAt(2, add.Second(-3))
			require.Equal(t, -3.0, s.Get(2, 0))
			s.SetAt(0, 5)

			require.Equal(t, [][]float64{{5, 0}, {0, 8}, {-3, 0}}, toRows[float64](s))
			for k := 0; k < s.Count(); k++ {
				require.Equal(t, s.Get(k%rows, k/rows), s.GetAt(k), "index %d", k)
			}

			rf, rl, cf, cl := scanBounds(s)
			for r := 0; r < rows; r++ {
				require.LessOrEqual(t, s.FirstInRow(r), rf[r])
				require.GreaterOrEqual(t, s.LimitOfRow(r), rl[r])
			}
			for c := 0; c < cols; c++ {
				require.LessOrEqual(t, s.FirstInColumn(c), cf[c])
				require.GreaterOrEqual(t, s.LimitOfColumn(c), cl[c])
			}
		})
	}
}

// TestSparseMutate1DBounds checks that index writes keep the sparse bounds
// exact, including a write that cancels the only element of a row.
func TestSparseMutate1DBounds(t *testing.T) {
	s, err := matrix.NewSparse(scalar.Float64, 3, 4)
	require.NoError(t, err)

	s.SetAt(10, 2) // (1,3)
	s.SetAt(4, 1)  // (1,1)
	require.Equal(t, 1, s.FirstInRow(1))
	require.Equal(t, 4, s.LimitOfRow(1))
	require.Equal(t, 1, s.FirstInColumn(3))

	s.AddAt(4, -1)
	require.Equal(t, 3, s.FirstInRow(1))
	require.Equal(t, 1, s.CountNonzeros())

	s.ModifyAt(10, function.Negate(scalar.Float64))
	require.Equal(t, -2.0, s.Get(1, 3))
	s.ModifyAt(10, function.Add(scalar.Float64).Second(2))
	require.Equal(t, 0, s.CountNonzeros())
	require.Equal(t, 4, s.FirstInRow(1))
	require.Equal(t, 0, s.LimitOfRow(1))
}

// TestCopyHonoursDivider checks that an explicit divider reaches copies of
// physical stores and the products that short-circuit to a copy.
func TestCopyHonoursDivider(t *testing.T) {
	d := concurrency.NewDivider(concurrency.NewConfig(concurrency.WithParallelism(2)))
	a := dense(t, []float64{1, 2}, []float64{3, 4})

	kept, err := matrix.Copy[float64](a)
	require.NoError(t, err)
	require.Same(t, a.Divider(), kept.Divider())

	moved, err := matrix.Copy[float64](a, matrix.WithDivider(d))
	require.NoError(t, err)
	require.Same(t, d, moved.Divider())
	require.Same(t, tinyDivider, a.Divider(), "source keeps its divider")

	sparse := randomSparse(t, 3, 3, 11)
	sc, err := matrix.Copy[float64](sparse, matrix.WithDivider(d))
	require.NoError(t, err)
	require.Same(t, d, sc.Divider())

	id, err := matrix.Identity(scalar.Float64, 2)
	require.NoError(t, err)
	product, err := matrix.Multiply[float64](id, a, matrix.WithDivider(d))
	require.NoError(t, err)
	p, ok := product.(matrix.PhysicalStore[float64])
	require.True(t, ok)
	require.Same(t, d, p.Divider())
	require.Equal(t, toRows[float64](a), toRows[float64](p))
}
