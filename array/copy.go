// SPDX-License-Identifier: MIT

package array

// Copy returns a new slice holding the same elements as source.
// Elements are duplicated by assignment, so pointer-backed scalars share
// their (immutable) payloads; this is a backing-array copy, not a deep copy.
func Copy[T any](source []T) []T {
	if source == nil {
		return nil
	}
	retVal := make([]T, len(source))
	copy(retVal, source)

	return retVal
}

// CopyStrided extracts the strided range [first, limit) of source into a new
// dense slice of length ceil((limit-first)/step).
func CopyStrided[T any](source []T, first, limit, step int) []T {
	if limit <= first {
		return []T{}
	}
	retVal := make([]T, 0, (limit-first+step-1)/step)
	for i := first; i < limit; i += step {
		retVal = append(retVal, source[i])
	}

	return retVal
}
