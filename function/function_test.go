// SPDX-License-Identifier: MIT

package function_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// TestArithmeticOps checks Invoke and the fixed-operand wrappers.
func TestArithmeticOps(t *testing.T) {
	f := scalar.Float64
	require.Equal(t, 7.0, function.Add(f).Invoke(3, 4))
	require.Equal(t, -1.0, function.Subtract(f).Invoke(3, 4))
	require.Equal(t, 12.0, function.Multiply(f).Invoke(3, 4))
	require.Equal(t, 0.75, function.Divide(f).Invoke(3, 4))

	// 10 - x versus x - 10
	require.Equal(t, 7.0, function.Subtract(f).First(10).Invoke(3))
	require.Equal(t, -7.0, function.Subtract(f).Second(10).Invoke(3))

	op, ok := function.ArithmeticOf[float64](function.Multiply(f))
	require.True(t, ok)
	require.Equal(t, function.OpMultiply, op)

	_, ok = function.ArithmeticOf[float64](function.BinaryFunc[float64](func(a, b float64) float64 { return a }))
	require.False(t, ok)
}

// TestElementaryAndPower covers negate/conjugate and the parameter function.
func TestElementaryAndPower(t *testing.T) {
	require.Equal(t, -2.0, function.Negate(scalar.Float64).Invoke(2))
	require.Equal(t, complex(1, -2), function.Conjugate(scalar.Complex128).Invoke(complex(1, 2)))
	require.Equal(t, 81.0, function.Power(scalar.Float64).Invoke(3, 4))
	require.Equal(t, "negate", function.OpNegate.String())
}

// TestAggregators verifies sum, largest-magnitude (first wins) and count.
func TestAggregators(t *testing.T) {
	sum := function.NewSum(scalar.Float64)
	largest := function.NewLargest(scalar.Float64)
	count := function.NewCount(scalar.Float64)
	for _, v := range []float64{3, -5, 5, 0, 1} {
		sum.Invoke(v)
		largest.Invoke(v)
		count.Invoke(v)
	}
	require.Equal(t, 4.0, sum.Get())
	require.Equal(t, -5.0, largest.Get())
	require.Equal(t, 4, count.Count())

	sum.Merge(6)
	require.Equal(t, 10.0, sum.Get())
	sum.Reset()
	require.Equal(t, 0.0, sum.Get())
}
