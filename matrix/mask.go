// SPDX-License-Identifier: MIT

package matrix

// Masking views read base inside a band and a constant outside it. They never
// write to base.

// triangularStore keeps the upper (r <= c) or lower (r >= c) triangle; with
// unitDiagonal the diagonal reads as one.
type triangularStore[N any] struct {
	viewOf[N]
	upper        bool
	unitDiagonal bool
}

var (
	_ MatrixStore[float64] = (*triangularStore[float64])(nil)
	_ MatrixStore[float64] = (*diagonalStore[float64])(nil)
	_ MatrixStore[float64] = (*hermitianStore[float64])(nil)
)

// UpperTriangular masks everything below the diagonal of s to zero.
func UpperTriangular[N any](s MatrixStore[N], unitDiagonal bool) MatrixStore[N] {
	return &triangularStore[N]{viewOf: viewOf[N]{base: s}, upper: true, unitDiagonal: unitDiagonal}
}

// LowerTriangular masks everything above the diagonal of s to zero.
func LowerTriangular[N any](s MatrixStore[N], unitDiagonal bool) MatrixStore[N] {
	return &triangularStore[N]{viewOf: viewOf[N]{base: s}, unitDiagonal: unitDiagonal}
}

func (t *triangularStore[N]) CountRows() int    { return t.base.CountRows() }
func (t *triangularStore[N]) CountColumns() int { return t.base.CountColumns() }

// inside reports whether (row, col) reads from base; diag whether it is the
// forced unit diagonal.
func (t *triangularStore[N]) inside(row, col int) (inside, diag bool) {
	if row == col && t.unitDiagonal {
		return false, true
	}
	if t.upper {
		return row <= col, false
	}

	return row >= col, false
}

func (t *triangularStore[N]) Get(row, col int) N {
	inside, diag := t.inside(row, col)
	switch {
	case diag:
		return t.base.Field().One()
	case inside:
		return t.base.Get(row, col)
	}

	return t.base.Field().Zero()
}

func (t *triangularStore[N]) DoubleValue(row, col int) float64 {
	inside, diag := t.inside(row, col)
	switch {
	case diag:
		return 1
	case inside:
		return t.base.DoubleValue(row, col)
	}

	return 0
}

// band returns [first, limit) of the triangle along line index i of a
// dimension with n entries, for the row (alongRow) or column direction.
func (t *triangularStore[N]) band(i, n int, alongRow bool) (int, int) {
	if t.upper == alongRow {
		return min(i, n), n // upper row or lower column: from the diagonal on
	}

	return 0, min(i+1, n)
}

func (t *triangularStore[N]) FirstInRow(row int) int {
	lo, _ := t.band(row, t.base.CountColumns(), true)
	first := max(t.base.FirstInRow(row), lo)
	if t.unitDiagonal && row < t.base.CountColumns() {
		first = min(first, row)
	}

	return first
}

func (t *triangularStore[N]) LimitOfRow(row int) int {
	_, hi := t.band(row, t.base.CountColumns(), true)
	limit := min(t.base.LimitOfRow(row), hi)
	if t.unitDiagonal && row < t.base.CountColumns() {
		limit = max(limit, row+1)
	}

	return limit
}

func (t *triangularStore[N]) FirstInColumn(col int) int {
	lo, _ := t.band(col, t.base.CountRows(), false)
	first := max(t.base.FirstInColumn(col), lo)
	if t.unitDiagonal && col < t.base.CountRows() {
		first = min(first, col)
	}

	return first
}

func (t *triangularStore[N]) LimitOfColumn(col int) int {
	_, hi := t.band(col, t.base.CountRows(), false)
	limit := min(t.base.LimitOfColumn(col), hi)
	if t.unitDiagonal && col < t.base.CountRows() {
		limit = max(limit, col+1)
	}

	return limit
}

func (t *triangularStore[N]) SupplyTo(target TransformableRegion[N]) { supplyView[N](t, target) }

// diagonalStore keeps only the main diagonal of base.
type diagonalStore[N any] struct {
	viewOf[N]
}

// Diagonal masks everything off the main diagonal of s to zero.
func Diagonal[N any](s MatrixStore[N]) MatrixStore[N] {
	return &diagonalStore[N]{viewOf: viewOf[N]{base: s}}
}

func (d *diagonalStore[N]) CountRows() int    { return d.base.CountRows() }
func (d *diagonalStore[N]) CountColumns() int { return d.base.CountColumns() }

func (d *diagonalStore[N]) Get(row, col int) N {
	if row == col {
		return d.base.Get(row, col)
	}

	return d.base.Field().Zero()
}

func (d *diagonalStore[N]) DoubleValue(row, col int) float64 {
	if row == col {
		return d.base.DoubleValue(row, col)
	}

	return 0
}

func (d *diagonalStore[N]) FirstInRow(row int) int {
	if row < d.base.CountColumns() {
		return row
	}

	return d.base.CountColumns()
}

func (d *diagonalStore[N]) LimitOfRow(row int) int {
	if row < d.base.CountColumns() {
		return row + 1
	}

	return 0
}

func (d *diagonalStore[N]) FirstInColumn(col int) int {
	if col < d.base.CountRows() {
		return col
	}

	return d.base.CountRows()
}

func (d *diagonalStore[N]) LimitOfColumn(col int) int {
	if col < d.base.CountRows() {
		return col + 1
	}

	return 0
}

func (d *diagonalStore[N]) SupplyTo(target TransformableRegion[N]) {
	target.Reset()
	for i := 0; i < min(d.base.CountRows(), d.base.CountColumns()); i++ {
		target.Set(i, i, d.base.Get(i, i))
	}
}

// hermitianStore mirrors one stored triangle of a square base across the
// diagonal, conjugating the mirrored half.
type hermitianStore[N any] struct {
	viewOf[N]
	upper bool
}

// Hermitian reads the upper (or lower) triangle of square s and mirrors it:
// get(r, c) == conj(get(c, r)). For real fields this is the symmetric view.
// A non-square s is ErrNonSquare.
func Hermitian[N any](s MatrixStore[N], upper bool) (MatrixStore[N], error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opHermitian, err)
	}
	if err := ValidateSquare(s); err != nil {
		return nil, matrixErrorf(opHermitian, err)
	}

	return &hermitianStore[N]{viewOf: viewOf[N]{base: s}, upper: upper}, nil
}

func (h *hermitianStore[N]) CountRows() int    { return h.base.CountRows() }
func (h *hermitianStore[N]) CountColumns() int { return h.base.CountColumns() }

func (h *hermitianStore[N]) stored(row, col int) bool {
	if h.upper {
		return row <= col
	}

	return row >= col
}

func (h *hermitianStore[N]) Get(row, col int) N {
	if h.stored(row, col) {
		return h.base.Get(row, col)
	}

	return h.base.Field().Conjugate(h.base.Get(col, row))
}

func (h *hermitianStore[N]) DoubleValue(row, col int) float64 {
	if h.stored(row, col) {
		return h.base.DoubleValue(row, col)
	}

	return h.base.Field().Float64(h.Get(row, col))
}

func (h *hermitianStore[N]) FirstInRow(int) int    { return 0 }
func (h *hermitianStore[N]) LimitOfRow(int) int    { return h.base.CountColumns() }
func (h *hermitianStore[N]) FirstInColumn(int) int { return 0 }
func (h *hermitianStore[N]) LimitOfColumn(int) int { return h.base.CountRows() }

func (h *hermitianStore[N]) SupplyTo(target TransformableRegion[N]) { supplyView[N](h, target) }
