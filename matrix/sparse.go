// SPDX-License-Identifier: MIT

package matrix

import (
	"sync"

	"github.com/katalvlaran/lvmat/array"
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/function"
	"github.com/katalvlaran/lvmat/scalar"
)

// SparseStore keeps only non-zero elements, keyed by the column-major index
// row + col*rows, plus a per-row bounds cache.
//
// Behavior highlights:
//   - Every method is safe for concurrent callers: one mutex guards the
//     element array and the bounds cache together. Caller-supplied functions
//     (EachNonzero, ModifyOne, ModifyAll) never run under it, so they may
//     read or write the store.
//   - Writing zero (or an Add that cancels to zero) removes the entry.
//   - Row bounds: every stored (r, c) has firsts[r] <= c < limits[r]; an
//     empty row has firsts[r] == cols and limits[r] == 0. Inserts widen the
//     bounds; removing an entry at a boundary recomputes that row.
//   - Sparse x sparse products use the AXPY column sweep.
type SparseStore[N any] struct {
	mu       sync.RWMutex
	rows     int
	cols     int
	elements *array.SparseArray[N]
	firsts   []int
	limits   []int
	field    scalar.Field[N]
	div      *concurrency.Divider
	mul      multiplier[N]
	// writes counts mutations; ModifyOne uses it to detect a racing writer.
	writes uint64
}

// Compile-time assertion: the sparse store is a full physical store.
var _ PhysicalStore[float64] = (*SparseStore[float64])(nil)

// NewSparse allocates an empty rows x cols sparse store.
//
// Implementation:
//   - Stage 1: reject a nil field and an empty shape.
//   - Stage 2: reserve room for WithSparseCapacity non-zeros
//     (DefaultSparseCapacity otherwise) and mark every row empty.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (wrapped with "NewStore").
//
// Complexity:
//   - Time O(rows), Space O(rows + capacity).
func NewSparse[N any](f scalar.Field[N], rows, cols int, opts ...Option) (*SparseStore[N], error) {
	if f == nil {
		return nil, matrixErrorf(opNewStore, ErrNilMatrix)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStore, err)
	}

	return newSparseStore(f, rows, cols, gatherOptions(opts...)), nil
}

func newSparseStore[N any](f scalar.Field[N], rows, cols int, o Options) *SparseStore[N] {
	s := &SparseStore[N]{
		rows:     rows,
		cols:     cols,
		elements: array.NewSparseArray(f, int64(rows)*int64(cols), o.sparseCapacity),
		firsts:   make([]int, rows),
		limits:   make([]int, rows),
		field:    f,
		div:      o.divider,
		mul:      multiplierFor(f),
	}
	s.resetBounds()

	return s
}

func (s *SparseStore[N]) index(row, col int) int64 { return int64(row) + int64(col)*int64(s.rows) }

func (s *SparseStore[N]) resetBounds() {
	for r := range s.firsts {
		s.firsts[r] = s.cols
		s.limits[r] = 0
	}
}

// recomputeRow rescans row r after a removal at one of its bounds.
func (s *SparseStore[N]) recomputeRow(row int) {
	first, limit := s.cols, 0
	for c := 0; c < s.cols; c++ {
		if s.elements.Has(s.index(row, c)) {
			first = min(first, c)
			limit = c + 1
		}
	}
	s.firsts[row], s.limits[row] = first, limit
}

// track updates the bounds cache after the entry (row, col) was inserted or
// removed; present tells which.
func (s *SparseStore[N]) track(row, col int, present bool) {
	if present {
		s.firsts[row] = min(s.firsts[row], col)
		s.limits[row] = max(s.limits[row], col+1)
		return
	}
	if col == s.firsts[row] || col == s.limits[row]-1 {
		s.recomputeRow(row)
	}
}

// setLocked stores value; callers hold s.mu.
func (s *SparseStore[N]) setLocked(row, col int, value N) {
	s.writes++
	if s.elements.Set(s.index(row, col), value) {
		s.track(row, col, !s.field.IsZero(value))
	}
}

func (s *SparseStore[N]) CountRows() int         { return s.rows }
func (s *SparseStore[N]) CountColumns() int      { return s.cols }
func (s *SparseStore[N]) Count() int             { return s.rows * s.cols }
func (s *SparseStore[N]) Field() scalar.Field[N] { return s.field }

func (s *SparseStore[N]) Get(row, col int) N {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.Get(s.index(row, col))
}

func (s *SparseStore[N]) DoubleValue(row, col int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.DoubleValue(s.index(row, col))
}

func (s *SparseStore[N]) GetAt(index int) N {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.Get(int64(index))
}

func (s *SparseStore[N]) DoubleAt(index int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.DoubleValue(int64(index))
}

// CountNonzeros returns the number of stored entries.
func (s *SparseStore[N]) CountNonzeros() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.CountNonzeros()
}

func (s *SparseStore[N]) FirstInRow(row int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.firsts[row]
}

func (s *SparseStore[N]) LimitOfRow(row int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.limits[row]
}

func (s *SparseStore[N]) FirstInColumn(col int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	base := int64(col) * int64(s.rows)
	if idx, ok := s.elements.FirstInRange(base, base+int64(s.rows)); ok {
		return int(idx - base)
	}

	return s.rows
}

func (s *SparseStore[N]) LimitOfColumn(col int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	base := int64(col) * int64(s.rows)
	if idx, ok := s.elements.LastInRange(base, base+int64(s.rows)); ok {
		return int(idx-base) + 1
	}

	return 0
}

func (s *SparseStore[N]) Set(row, col int, value N) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(row, col, value)
}

func (s *SparseStore[N]) Add(row, col int, value N) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(row, col)
	s.writes++
	if s.elements.Add(idx, value) {
		s.track(row, col, s.elements.Has(idx))
	}
}

// ModifyOne replaces the element e at (row, col) with fn(e).
//
// Implementation:
//   - Stage 1: read e under the read lock and release it.
//   - Stage 2: evaluate fn(e) with no lock held, so fn may read the store.
//   - Stage 3: under the write lock, store the result if no write happened
//     since Stage 1; otherwise the loop retries from Stage 1.
//
// Behavior highlights:
//   - Atomic with respect to concurrent Set/Add on the same element.
//   - fn may be invoked more than once under contention.
func (s *SparseStore[N]) ModifyOne(row, col int, fn function.Unary[N]) {
	idx := s.index(row, col)
	for {
		s.mu.RLock()
		old, seen := s.elements.Get(idx), s.writes
		s.mu.RUnlock()
		next := fn.Invoke(old)
		s.mu.Lock()
		if s.writes == seen {
			s.setLocked(row, col, next)
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

func (s *SparseStore[N]) FillOne(row, col int, value N) { s.Set(row, col, value) }

// SetAt, AddAt and ModifyAt address the column-major flattened index and
// keep the row bounds exact, like their two-dimensional counterparts.
func (s *SparseStore[N]) SetAt(index int, value N) { s.Set(index%s.rows, index/s.rows, value) }
func (s *SparseStore[N]) AddAt(index int, value N) { s.Add(index%s.rows, index/s.rows, value) }
func (s *SparseStore[N]) ModifyAt(index int, fn function.Unary[N]) {
	s.ModifyOne(index%s.rows, index/s.rows, fn)
}

// FillAll with zero empties the store; any other value stores every cell.
//
// Complexity:
//   - Time O(rows*cols) for a non-zero value (entries are appended in index
//     order), O(rows) for zero.
func (s *SparseStore[N]) FillAll(value N) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements.Reset()
	s.resetBounds()
	s.writes++
	if s.field.IsZero(value) {
		return
	}
	for c := 0; c < s.cols; c++ {
		for r := 0; r < s.rows; r++ {
			s.setLocked(r, c, value)
		}
	}
}

func (s *SparseStore[N]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements.Reset()
	s.resetBounds()
	s.writes++
}

// ModifyAll applies fn to the stored entries and to the implicit zeros
// (fn(0) may be non-zero).
//
// Implementation:
//   - Stage 1: snapshot the entries under the read lock.
//   - Stage 2: evaluate fn on the snapshot with no lock held, building the
//     replacement array.
//   - Stage 3: swap the replacement in under the write lock and rebuild the
//     row bounds.
//
// Behavior highlights:
//   - fn may read this store; it sees the pre-call content.
//   - Writes made by other goroutines between Stage 1 and Stage 3 are
//     replaced (last writer wins).
//
// Complexity:
//   - Time O(nnz·log nnz) when fn(0) == 0, O(rows·cols) otherwise.
func (s *SparseStore[N]) ModifyAll(fn function.Unary[N]) {
	snap := s.snapshot()
	fz := fn.Invoke(s.field.Zero())
	next := array.NewSparseArray(s.field, int64(s.rows)*int64(s.cols), snap.CountNonzeros())
	if s.field.IsZero(fz) {
		snap.EachNonzero(func(index int64, value N) { next.Set(index, fn.Invoke(value)) })
	} else {
		for idx := int64(0); idx < next.Count(); idx++ {
			if snap.Has(idx) {
				next.Set(idx, fn.Invoke(snap.Get(idx)))
			} else {
				next.Set(idx, fz)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = next
	s.writes++
	s.rebuildBounds()
}

// rebuildBounds recomputes every row's bounds from the entries; callers
// hold s.mu.
func (s *SparseStore[N]) rebuildBounds() {
	s.resetBounds()
	rows := int64(s.rows)
	s.elements.EachNonzero(func(index int64, _ N) {
		s.track(int(index%rows), int(index/rows), true)
	})
}

// EachNonzero visits the entries in column-major order. It iterates over a
// snapshot taken under the read lock, so fn may read or write s; writes made
// during the visit are not seen by it.
func (s *SparseStore[N]) EachNonzero(fn func(row, col int, value N)) {
	snap := s.snapshot()
	rows := int64(s.rows)
	snap.EachNonzero(func(index int64, value N) {
		fn(int(index%rows), int(index/rows), value)
	})
}

// ExchangeRows re-keys the entries of both rows under the write lock and
// rebuilds their bounds. Complexity: O(nnz·log nnz).
func (s *SparseStore[N]) ExchangeRows(rowA, rowB int) {
	s.exchange(func(r, c int) (int, int) {
		switch r {
		case rowA:
			return rowB, c
		case rowB:
			return rowA, c
		}
		return r, c
	})
}

// ExchangeColumns is ExchangeRows for columns.
func (s *SparseStore[N]) ExchangeColumns(colA, colB int) {
	s.exchange(func(r, c int) (int, int) {
		switch c {
		case colA:
			return r, colB
		case colB:
			return r, colA
		}
		return r, c
	})
}

// exchange re-inserts every entry at its permuted position.
func (s *SparseStore[N]) exchange(move func(r, c int) (int, int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.elements.Copy()
	s.elements.Reset()
	s.resetBounds()
	s.writes++
	rows := int64(s.rows)
	old.EachNonzero(func(index int64, value N) {
		r, c := move(int(index%rows), int(index/rows))
		s.setLocked(r, c, value)
	})
}

// snapshot returns a private copy of the element map.
func (s *SparseStore[N]) snapshot() *array.SparseArray[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements.Copy()
}

// Copy returns an independent sparse store with the same entries, bounds and
// Divider.
func (s *SparseStore[N]) Copy() PhysicalStore[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &SparseStore[N]{
		rows:     s.rows,
		cols:     s.cols,
		elements: s.elements.Copy(),
		firsts:   array.Copy(s.firsts),
		limits:   array.Copy(s.limits),
		field:    s.field,
		div:      s.div,
		mul:      s.mul,
	}
}

// SupplyTo resets target and writes the stored entries only.
func (s *SparseStore[N]) SupplyTo(target TransformableRegion[N]) {
	snap := s.snapshot()
	rows := int64(s.rows)
	target.Reset()
	snap.EachNonzero(func(index int64, value N) {
		target.Set(int(index%rows), int(index/rows), value)
	})
}

// FillByMultiplying overwrites s with left*right.
//
// Behavior highlights:
//   - Two sparse operands take the AXPY column sweep, touching only stored
//     entries.
//   - Other operands go through the field multiplier; writing a zero
//     product removes the entry, so the store stays sparse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "FillByMultiplying").
func (s *SparseStore[N]) FillByMultiplying(left, right MatrixStore[N]) error {
	return multiplyInto[N](s, left, right, s.mul, s.div)
}
