// SPDX-License-Identifier: MIT

package array

// Exchange swaps two strided sequences of equal length and step:
// data[firstA + i*step] <-> data[firstB + i*step] for i in [0, count).
// Used for row/column permutation during pivoting.
func Exchange[T any](data []T, firstA, firstB, step, count int) {
	if firstA == firstB {
		return
	}
	a, b := firstA, firstB
	for i := 0; i < count; i++ {
		data[a], data[b] = data[b], data[a]
		a += step
		b += step
	}
}

// ExchangeRows swaps rows rowA and rowB of a column-major array with
// structure rows and the given number of columns.
func ExchangeRows[T any](data []T, structure, columns, rowA, rowB int) {
	Exchange(data, rowA, rowB, structure, columns)
}

// ExchangeColumns swaps columns colA and colB of a column-major array.
func ExchangeColumns[T any](data []T, structure, colA, colB int) {
	Exchange(data, colA*structure, colB*structure, 1, structure)
}
