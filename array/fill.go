// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// FillAll writes value into every position of the strided range.
func FillAll[T any](data []T, first, limit, step int, value T) {
	if step == 1 {
		for i := first; i < limit; i++ {
			data[i] = value
		}
		return
	}
	for i := first; i < limit; i += step {
		data[i] = value
	}
}

// FillAllGenerated writes successive values produced by gen, in index order.
func FillAllGenerated[T any](data []T, first, limit, step int, gen function.Nullary[T]) {
	for i := first; i < limit; i += step {
		data[i] = gen.Invoke()
	}
}

// FillMatchingSingle copies source[i] into data[i] for every i in the range,
// converting between float widths. float64 → float32 narrows (rounds to
// nearest float32); float32 → float64 is exact.
func FillMatchingSingle[T, S constraints.Float](data []T, first, limit, step int, source []S) {
	for i := first; i < limit; i += step {
		data[i] = T(source[i])
	}
}

// FillMatchingScalar copies a float64 source into a generic backing, casting
// each value through f.FromFloat64.
func FillMatchingScalar[N any](data []N, first, limit, step int, source []float64, f scalar.Field[N]) {
	for i := first; i < limit; i += step {
		data[i] = f.FromFloat64(source[i])
	}
}

// FillMatchingFunc copies source into data with an explicit per-element cast.
// It covers every other pairing (e.g. a generic source into a float64 backing
// via f.Float64).
func FillMatchingFunc[T, S any](data []T, first, limit, step int, source []S, cast func(S) T) {
	for i := first; i < limit; i += step {
		data[i] = cast(source[i])
	}
}
