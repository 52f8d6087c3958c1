// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/scalar"
)

// AMAX returns the index of the element with the largest absolute value in
// the strided range [first, limit).
//
// Implementation:
//   - Stage 1: start from largest = 0 and result = first.
//   - Stage 2: walk the range; replace only on a strictly larger magnitude.
//
// Behavior highlights:
//   - First occurrence wins: over [3, -5, 5, 1] the result is 1, not 2.
//   - The returned index is absolute (an index into data), not an offset.
//   - An empty range (limit <= first) or a range of zeros returns first.
//     Callers that must distinguish "empty" check the range themselves.
//   - NaN never compares greater, so NaNs are skipped.
//
// Complexity:
//   - Time O((limit-first)/step), Space O(1).
func AMAX[T constraints.Float](data []T, first, limit, step int) int {
	retVal := first
	var largest T
	var v T
	for i := first; i < limit; i += step {
		v = data[i]
		if v < 0 {
			v = -v
		}
		if v > largest {
			largest = v
			retVal = i
		}
	}

	return retVal
}

// AMAXScalar is AMAX for arbitrary scalars, comparing f.Norm magnitudes.
func AMAXScalar[N any](data []N, first, limit, step int, f scalar.Field[N]) int {
	retVal := first
	largest := 0.0
	for i := first; i < limit; i += step {
		if n := f.Norm(data[i]); n > largest {
			largest = n
			retVal = i
		}
	}

	return retVal
}
