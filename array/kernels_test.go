// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// approx compares float slices up to a tiny absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-12)

// colMajor is a minimal column-major body for the substitution kernels.
type colMajor struct {
	rows, cols int
	data       []float64
}

func (c colMajor) CountRows() int                   { return c.rows }
func (c colMajor) CountColumns() int                { return c.cols }
func (c colMajor) DoubleValue(row, col int) float64 { return c.data[row+col*c.rows] }

type ratMajor struct {
	rows, cols int
	data       []scalar.Rational
}

func (c ratMajor) CountRows() int                   { return c.rows }
func (c ratMajor) CountColumns() int                { return c.cols }
func (c ratMajor) Get(row, col int) scalar.Rational { return c.data[row+col*c.rows] }

// TestCopy checks plain and strided extraction; copies must not alias.
func TestCopy(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	dup := array.Copy(src)
	dup[0] = 99
	require.Equal(t, 1.0, src[0])

	require.Equal(t, []float64{2, 4}, array.CopyStrided(src, 1, 5, 2))
	require.Empty(t, array.CopyStrided(src, 3, 3, 1))
	require.Nil(t, array.Copy[float64](nil))
}

// TestFillVariants covers constant, generated and coercing fills.
func TestFillVariants(t *testing.T) {
	data := make([]float64, 6)
	array.FillAll(data, 1, 6, 2, 7.0)
	require.Equal(t, []float64{0, 7, 0, 7, 0, 7}, data)

	n := 0.0
	array.FillAllGenerated(data, 0, 3, 1, function.NullaryFunc[float64](func() float64 { n++; return n }))
	require.Equal(t, []float64{1, 2, 3, 7, 0, 7}, data[:6])

	// float64 -> float32 narrows
	narrow := make([]float32, 2)
	array.FillMatchingSingle(narrow, 0, 2, 1, []float64{0.1, -2.5})
	require.Equal(t, []float32{0.1, -2.5}, narrow)

	rats := make([]scalar.Rational, 2)
	array.FillMatchingScalar(rats, 0, 2, 1, []float64{0.5, 3}, scalar.Rationals)
	require.Equal(t, "1/2", rats[0].String())
	require.Equal(t, "3", rats[1].String())

	back := make([]float64, 2)
	array.FillMatchingFunc(back, 0, 2, 1, rats, scalar.Rationals.Float64)
	require.Equal(t, []float64{0.5, 3}, back)
}

// TestExchange swaps rows and columns of a column-major 2×3 array.
func TestExchange(t *testing.T) {
	// [[1,2,3],[4,5,6]] column-major
	data := []float64{1, 4, 2, 5, 3, 6}
	array.ExchangeRows(data, 2, 3, 0, 1)
	require.Equal(t, []float64{4, 1, 5, 2, 6, 3}, data)

	array.ExchangeColumns(data, 2, 0, 2)
	require.Equal(t, []float64{6, 3, 5, 2, 4, 1}, data)

	before := array.Copy(data)
	array.Exchange(data, 1, 1, 2, 3) // same sequence: no-op
	require.Equal(t, before, data)
}

// TestRotateRight reproduces the cos=0, sin=1 scenario on [[1,2],[3,4]].
func TestRotateRight(t *testing.T) {
	data := []float64{1, 3, 2, 4}
	array.RotateRight(data, 2, 0, 1, 0.0, 1.0)
	require.Equal(t, []float64{-2, -4, 1, 3}, data)

	cdata := []complex128{1, 3, 2, 4}
	array.RotateRightScalar(cdata, 2, 0, 1, complex(0, 0), complex(1, 0), scalar.Complex128)
	require.Equal(t, []complex128{-2, -4, 1, 3}, cdata)
}

// TestOperationUnaryFastPathMatchesGeneric runs each recognised function and
// an opaque wrapper of it, expecting identical output.
func TestOperationUnaryFastPathMatchesGeneric(t *testing.T) {
	f := scalar.Float64
	values := []float64{1, -2, 3.5, 4, -0.25}
	cases := map[string]function.Unary[float64]{
		"negate":       function.Negate(f),
		"conjugate":    function.Conjugate(f),
		"add-second":   function.Add(f).Second(10),
		"sub-first":    function.Subtract(f).First(10),
		"div-second":   function.Divide(f).Second(4),
		"mul-first":    function.Multiply(f).First(-3),
		"opaque-fixed": function.FixedSecond[float64]{Fn: function.BinaryFunc[float64](func(a, b float64) float64 { return a*b + 1 }), Arg: 2},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			fast := make([]float64, len(values))
			slow := make([]float64, len(values))
			array.OperationUnary(fast, 0, len(values), 1, values, fn)
			array.OperationUnary(slow, 0, len(values), 1, values, function.UnaryFunc[float64](fn.Invoke))
			require.Empty(t, cmp.Diff(slow, fast, approx))
		})
	}
}

// TestOperationUnaryInPlaceFloat32 modifies a float32 backing in place.
func TestOperationUnaryInPlaceFloat32(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	array.OperationUnary(data, 0, 4, 2, data, function.Multiply(scalar.Float64).Second(2))
	require.Equal(t, []float32{2, 2, 6, 4}, data)
}

// TestOperationBinaryVariants covers array×array and scalar operands.
func TestOperationBinaryVariants(t *testing.T) {
	f := scalar.Float64
	left := []float64{1, 2, 3}
	right := []float64{4, 5, 6}
	out := make([]float64, 3)

	array.OperationBinary(out, 0, 3, 1, left, function.Add(f), right)
	require.Equal(t, []float64{5, 7, 9}, out)

	array.OperationBinaryFirst(out, 0, 3, 1, 10, function.Subtract(f), right)
	require.Equal(t, []float64{6, 5, 4}, out)

	array.OperationBinarySecond(out, 0, 3, 1, left, function.Divide(f), 2)
	require.Equal(t, []float64{0.5, 1, 1.5}, out)

	maxFn := function.BinaryFunc[float64](func(a, b float64) float64 { return max(a, b) })
	array.OperationBinary(out, 0, 3, 1, []float64{9, 0, 7}, maxFn, right)
	require.Equal(t, []float64{9, 5, 7}, out)

	rout := make([]scalar.Rational, 2)
	array.OperationBinaryScalar(rout, 0, 2, 1,
		[]scalar.Rational{scalar.NewRational(1, 2), scalar.NewRational(1, 3)},
		function.Add(scalar.Rationals),
		[]scalar.Rational{scalar.NewRational(1, 2), scalar.NewRational(2, 3)})
	require.Equal(t, "1", rout[0].String())
	require.Equal(t, "1", rout[1].String())
}

// TestOperationParameterPower compares the typed power loop with scalar.Power.
func TestOperationParameterPower(t *testing.T) {
	values := []float64{1.5, -2, 3, 0.5}
	for _, exp := range []int{0, 1, 3, -2} {
		out := make([]float64, len(values))
		array.OperationParameter(out, 0, len(values), 1, values, function.Power(scalar.Float64), exp)
		for i, v := range values {
			require.Equal(t, scalar.Power(scalar.Float64, v, exp), out[i], "exp=%d i=%d", exp, i)
		}
	}

	cout := make([]complex128, 1)
	array.OperationParameterScalar(cout, 0, 1, 1, []complex128{complex(0, 1)}, function.Power(scalar.Complex128), 4)
	require.Equal(t, complex128(1), cout[0])
}

// TestOperationVoidAggregates sums a strided range through a visitor.
func TestOperationVoidAggregates(t *testing.T) {
	data := []float64{1, 100, 2, 100, 3}
	sum := function.NewSum(scalar.Float64)
	array.OperationVoid(data, 0, 5, 2, sum)
	require.Equal(t, 6.0, sum.Get())

	csum := function.NewSum(scalar.Complex128)
	array.OperationVoidScalar([]complex128{1i, 2}, 0, 2, 1, csum)
	require.Equal(t, complex(2, 1), csum.Get())
}

// TestAXPYAndDOT checks accumulate and inner product with strides.
func TestAXPYAndDOT(t *testing.T) {
	y := []float64{1, 1, 1, 1}
	x := []float64{1, 2, 3, 4}
	array.AXPY(y, 0, 2, 2.0, x, 1, 1, 2) // y[0]+=2*2, y[2]+=2*3
	require.Equal(t, []float64{5, 1, 7, 1}, y)

	require.Equal(t, 30.0, array.DOT(x, 0, 1, x, 0, 1, 4))
	require.Equal(t, 2.0*1+4*3, array.DOT(x, 1, 2, x, 0, 2, 2))

	ry := []scalar.Rational{scalar.NewRational(1, 2)}
	array.AXPYScalar(ry, 0, 1, scalar.NewRational(1, 3), []scalar.Rational{scalar.NewRational(3, 2)}, 0, 1, 1, scalar.Rationals)
	require.Equal(t, "1", ry[0].String())
	require.Equal(t, complex(0, 2), array.DOTScalar([]complex128{1i}, 0, 1, []complex128{2}, 0, 1, 1, scalar.Complex128))
}

// TestLUAndSubstitution factors A in place with ApplyLU and solves A·x = b.
func TestLUAndSubstitution(t *testing.T) {
	const n = 3
	// A = [[2,1,1],[4,-6,0],[-2,7,2]] column-major; b = [5,-2,9] -> x = [1,1,2]
	lu := []float64{2, 4, -2, 1, -6, 7, 1, 0, 2}
	for p := 0; p < n; p++ {
		for i := p + 1; i < n; i++ {
			lu[i+p*n] /= lu[p+p*n]
		}
		array.ApplyLU(lu, n, p, lu[p*n:(p+1)*n], p+1, n)
	}
	body := colMajor{rows: n, cols: n, data: lu}

	b := []float64{5, -2, 9}
	array.SubstituteForwards(b, n, 0, 1, body, true, false)
	array.SubstituteBackwards(b, n, 0, 1, body, false, false)
	require.Empty(t, cmp.Diff([]float64{1, 1, 2}, b, approx))
}

// TestSubstituteIdentityInverse builds L⁻¹ from identity right-hand sides.
func TestSubstituteIdentityInverse(t *testing.T) {
	// L = [[2,0],[1,4]]
	body := colMajor{rows: 2, cols: 2, data: []float64{2, 1, 0, 4}}
	inv := []float64{1, 0, 0, 1}
	array.SubstituteForwards(inv, 2, 0, 2, body, false, true)
	require.Empty(t, cmp.Diff([]float64{0.5, -0.125, 0, 0.25}, inv, approx))

	// U = [[2,1],[0,4]] stored as its own upper triangle
	upper := colMajor{rows: 2, cols: 2, data: []float64{2, 0, 1, 4}}
	uinv := []float64{1, 0, 0, 1}
	array.SubstituteBackwards(uinv, 2, 0, 2, upper, false, true)
	require.Empty(t, cmp.Diff([]float64{0.5, 0, -0.125, 0.25}, uinv, approx))
}

// TestScalarLUExact repeats the solve over rationals; the answer is exact.
func TestScalarLUExact(t *testing.T) {
	const n = 3
	f := scalar.Rationals
	r := func(v int64) scalar.Rational { return scalar.NewRational(v, 1) }
	lu := []scalar.Rational{r(2), r(4), r(-2), r(1), r(-6), r(7), r(1), r(0), r(2)}
	for p := 0; p < n; p++ {
		for i := p + 1; i < n; i++ {
			lu[i+p*n] = f.Divide(lu[i+p*n], lu[p+p*n])
		}
		array.ApplyLUScalar(lu, n, p, lu[p*n:(p+1)*n], p+1, n, f)
	}
	body := ratMajor{rows: n, cols: n, data: lu}
	b := []scalar.Rational{r(5), r(-2), r(9)}
	array.SubstituteForwardsScalar(b, n, 0, 1, body, true, false, false, f)
	array.SubstituteBackwardsScalar(b, n, 0, 1, body, false, false, false, f)
	for i, want := range []int64{1, 1, 2} {
		require.True(t, f.Equal(r(want), b[i]), "x[%d] = %s", i, b[i])
	}

	// conjugated: U stored, solve Uᴴ·x = c forwards. U = [[2,1],[0,4]], c = Uᴴ·[1,1] = [2,5]
	ubody := ratMajor{rows: 2, cols: 2, data: []scalar.Rational{r(2), r(0), r(1), r(4)}}
	c := []scalar.Rational{r(2), r(5)}
	array.SubstituteForwardsScalar(c, 2, 0, 1, ubody, false, true, false, f)
	require.True(t, f.Equal(r(1), c[0]))
	require.True(t, f.Equal(r(1), c[1]))
}

// TestCholesky factors [[4,2,2],[2,5,3],[2,3,6]] = L·Lᵀ in place; L has an
// integer lower triangle and the strict upper triangle is left untouched.
func TestCholesky(t *testing.T) {
	const n = 3
	a := []float64{4, 2, 2, 2, 5, 3, 2, 3, 6}
	for p := 0; p < n; p++ {
		d := math.Sqrt(a[p+p*n])
		a[p+p*n] = d
		for i := p + 1; i < n; i++ {
			a[i+p*n] /= d
		}
		array.ApplyCholesky(a, n, p, a[p*n:(p+1)*n], p+1, n)
	}
	require.Empty(t, cmp.Diff([]float64{2, 1, 1, 2, 2, 1, 2, 3, 2}, a, approx))
}

// TestCholeskyScalarHermitian factors [[4,2i],[-2i,5]] = L·Lᴴ with
// L = [[2,0],[-i,2]].
func TestCholeskyScalarHermitian(t *testing.T) {
	const n = 2
	f := scalar.Complex128
	a := []complex128{4, -2i, 2i, 5}
	for p := 0; p < n; p++ {
		d := cmplx.Sqrt(a[p+p*n])
		a[p+p*n] = d
		for i := p + 1; i < n; i++ {
			a[i+p*n] /= d
		}
		array.ApplyCholeskyScalar(a, n, p, a[p*n:(p+1)*n], p+1, n, f)
	}
	require.InDelta(t, 0, cmplx.Abs(a[0]-2), 1e-12)
	require.InDelta(t, 0, cmplx.Abs(a[1]+1i), 1e-12)
	require.InDelta(t, 0, cmplx.Abs(a[3]-2), 1e-12)
	require.Equal(t, 2i, a[2], "upper triangle untouched")
}
