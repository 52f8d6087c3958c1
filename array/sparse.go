// SPDX-License-Identifier: MIT

package array

import (
	"slices"

	"github.com/katalvlaran/lvmat/scalar"
)

// SparseArray maps a flattened index in [0, Count) to a value, storing only
// non-zero entries as parallel sorted slices (indices ascending).
//
// Behavior highlights:
//   - Get of an absent index returns the field zero.
//   - Set with a zero value removes the entry; Add that cancels an entry to
//     exactly zero removes it too.
//   - Lookups are binary searches, inserts shift the tail: O(log nnz) reads,
//     O(nnz) worst-case writes.
//
// A SparseArray is NOT safe for concurrent use; owners that share one across
// goroutines must guard it (the sparse matrix store holds a mutex).
type SparseArray[N any] struct {
	field   scalar.Field[N]
	count   int64
	indices []int64
	values  []N
}

// NewSparseArray returns an empty array of logical length count with room for
// capacity non-zeros.
func NewSparseArray[N any](f scalar.Field[N], count int64, capacity int) *SparseArray[N] {
	return &SparseArray[N]{
		field:   f,
		count:   count,
		indices: make([]int64, 0, capacity),
		values:  make([]N, 0, capacity),
	}
}

// Count returns the logical length.
func (s *SparseArray[N]) Count() int64 { return s.count }

// CountNonzeros returns the number of stored entries.
func (s *SparseArray[N]) CountNonzeros() int { return len(s.indices) }

// Field returns the scalar field of the values.
func (s *SparseArray[N]) Field() scalar.Field[N] { return s.field }

// Get returns the value at index (zero when absent).
func (s *SparseArray[N]) Get(index int64) N {
	if pos, found := slices.BinarySearch(s.indices, index); found {
		return s.values[pos]
	}

	return s.field.Zero()
}

// DoubleValue returns the lossy float64 view of Get(index).
func (s *SparseArray[N]) DoubleValue(index int64) float64 {
	if pos, found := slices.BinarySearch(s.indices, index); found {
		return s.field.Float64(s.values[pos])
	}

	return 0
}

// Has reports whether index holds a stored entry.
func (s *SparseArray[N]) Has(index int64) bool {
	_, found := slices.BinarySearch(s.indices, index)

	return found
}

// Set stores value at index; a zero value removes the entry.
// It reports whether the set of stored indices changed (insert or removal).
func (s *SparseArray[N]) Set(index int64, value N) bool {
	pos, found := slices.BinarySearch(s.indices, index)
	if s.field.IsZero(value) {
		if found {
			s.removeAt(pos)
			return true
		}
		return false
	}
	if found {
		s.values[pos] = value
		return false
	}
	s.indices = slices.Insert(s.indices, pos, index)
	s.values = slices.Insert(s.values, pos, value)

	return true
}

// Add accumulates value into index. See Set for the return value.
func (s *SparseArray[N]) Add(index int64, value N) bool {
	pos, found := slices.BinarySearch(s.indices, index)
	if !found {
		if s.field.IsZero(value) {
			return false
		}
		s.indices = slices.Insert(s.indices, pos, index)
		s.values = slices.Insert(s.values, pos, value)
		return true
	}
	sum := s.field.Add(s.values[pos], value)
	if s.field.IsZero(sum) {
		s.removeAt(pos)
		return true
	}
	s.values[pos] = sum

	return false
}

// Remove deletes the entry at index, reporting whether one existed.
func (s *SparseArray[N]) Remove(index int64) bool {
	pos, found := slices.BinarySearch(s.indices, index)
	if found {
		s.removeAt(pos)
	}

	return found
}

func (s *SparseArray[N]) removeAt(pos int) {
	s.indices = slices.Delete(s.indices, pos, pos+1)
	s.values = slices.Delete(s.values, pos, pos+1)
}

// Reset removes every entry, keeping the allocated capacity.
func (s *SparseArray[N]) Reset() {
	s.indices = s.indices[:0]
	clear(s.values)
	s.values = s.values[:0]
}

// EachNonzero visits stored entries in ascending index order.
func (s *SparseArray[N]) EachNonzero(fn func(index int64, value N)) {
	for i, idx := range s.indices {
		fn(idx, s.values[i])
	}
}

// EachNonzeroInRange visits stored entries with first <= index < limit, in
// ascending index order.
func (s *SparseArray[N]) EachNonzeroInRange(first, limit int64, fn func(index int64, value N)) {
	lo, hi := s.span(first, limit)
	for i := lo; i < hi; i++ {
		fn(s.indices[i], s.values[i])
	}
}

// FirstInRange returns the smallest stored index in [first, limit).
func (s *SparseArray[N]) FirstInRange(first, limit int64) (int64, bool) {
	lo, hi := s.span(first, limit)
	if lo == hi {
		return 0, false
	}

	return s.indices[lo], true
}

// LastInRange returns the largest stored index in [first, limit).
func (s *SparseArray[N]) LastInRange(first, limit int64) (int64, bool) {
	lo, hi := s.span(first, limit)
	if lo == hi {
		return 0, false
	}

	return s.indices[hi-1], true
}

// CountInRange returns the number of stored entries in [first, limit).
func (s *SparseArray[N]) CountInRange(first, limit int64) int {
	lo, hi := s.span(first, limit)

	return hi - lo
}

// span returns the positions [lo, hi) of stored indices inside [first, limit).
func (s *SparseArray[N]) span(first, limit int64) (int, int) {
	if limit <= first {
		return 0, 0
	}
	lo, _ := slices.BinarySearch(s.indices, first)
	hi, _ := slices.BinarySearch(s.indices, limit)

	return lo, hi
}

// Copy returns an independent copy.
func (s *SparseArray[N]) Copy() *SparseArray[N] {
	return &SparseArray[N]{
		field:   s.field,
		count:   s.count,
		indices: slices.Clone(s.indices),
		values:  slices.Clone(s.values),
	}
}
