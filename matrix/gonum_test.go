// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAsGonumSharesMemory(t *testing.T) {
	a := dense(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	g := gonumOf(t, a)
	require.Equal(t, 2.0, g.At(0, 1))
	require.Equal(t, 4.0, g.At(1, 0))

	a.Set(1, 2, 60)
	require.Equal(t, 60.0, g.At(1, 2), "writes to the store are visible through gonum")

	gt := g.T()
	r, c := gt.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 60.0, gt.At(2, 1))
}

// gonumOf converts s and checks the reported dimensions.
func gonumOf(t *testing.T, s matrix.MatrixStore[float64]) mat.Matrix {
	t.Helper()
	g := matrix.AsGonum(s)
	r, c := g.Dims()
	require.Equal(t, s.CountRows(), r)
	require.Equal(t, s.CountColumns(), c)

	return g
}

func TestAsGonumWrapsViews(t *testing.T) {
	a := square3(t)
	w, err := matrix.Window[float64](a, 1, 0, 2, 3)
	require.NoError(t, err)

	g := gonumOf(t, w)
	require.Equal(t, 8.0, g.At(1, 1))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, toRows[float64](w), toRows[float64](back))

	r, c := g.T().Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 6.0, g.T().At(2, 0))
}

func TestFromGonum(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	p, err := matrix.FromGonum(d)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, toRows[float64](p))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, p.Data())

	d.Set(0, 0, 100)
	require.Equal(t, 1.0, p.Get(0, 0), "FromGonum copies")

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
