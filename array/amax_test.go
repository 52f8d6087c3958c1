// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// TestAMAXFirstOccurrenceWins pins the tie-break law: strict '>' keeps the
// first index reaching the largest magnitude.
func TestAMAXFirstOccurrenceWins(t *testing.T) {
	data := []float64{3.0, -5.0, 5.0, 1.0}
	require.Equal(t, 1, array.AMAX(data, 0, len(data), 1))

	data32 := []float32{3, -5, 5, 1}
	require.Equal(t, 1, array.AMAX(data32, 0, len(data32), 1))
}

// TestAMAXEmptyRangeReturnsFirst keeps the documented quirk: no error, just first.
func TestAMAXEmptyRangeReturnsFirst(t *testing.T) {
	data := []float64{1, 2, 3}
	require.Equal(t, 2, array.AMAX(data, 2, 2, 1))
	require.Equal(t, 2, array.AMAX(data, 2, 1, 1))

	zeros := []float64{0, 0, 0}
	require.Equal(t, 0, array.AMAX(zeros, 0, 3, 1))
}

// TestAMAXNegativeMagnitude checks that magnitude, not sign, is compared.
func TestAMAXNegativeMagnitude(t *testing.T) {
	data := []float64{-1, -7, -3}
	require.Equal(t, 1, array.AMAX(data, 0, 3, 1))
}

// TestAMAXStrided searches one row of a column-major 3×3 array.
func TestAMAXStrided(t *testing.T) {
	// column-major 3x3; row 1 is indices 1, 4, 7 -> values 2, -9, 4
	data := []float64{1, 2, 3, 0, -9, 0, 0, 4, 0}
	require.Equal(t, 4, array.AMAX(data, 1, 9, 3))
}

// TestAMAXScalarUsesNorm checks complex modulus comparison.
func TestAMAXScalarUsesNorm(t *testing.T) {
	data := []complex128{complex(3, 0), complex(0, -5), complex(4, 3), 1}
	require.Equal(t, 1, array.AMAXScalar(data, 0, len(data), 1, scalar.Complex128))
	require.Equal(t, 3, array.AMAXScalar(data, 3, 3, 1, scalar.Complex128))
}
