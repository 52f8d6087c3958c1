// SPDX-License-Identifier: MIT

// Package matrix: shared validators.
// Every constructor and composition runs these before allocating or reading a
// single element, so shape errors surface at construction time.

package matrix

import (
	"fmt"

	"github.com/samber/lo"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// nilStore is implemented by the exported store types of this package so a
// typed nil pointer wrapped in an interface can be recognised without
// reflection.
type nilStore interface{ isNil() bool }

func (s *PrimitiveStore[T]) isNil() bool { return s == nil }
func (s *GenericStore[N]) isNil() bool   { return s == nil }
func (s *RawStore) isNil() bool          { return s == nil }
func (s *SparseStore[N]) isNil() bool    { return s == nil }
func (z *ZeroStore[N]) isNil() bool      { return z == nil }
func (e *IdentityStore[N]) isNil() bool  { return e == nil }
func (s *SingleStore[N]) isNil() bool    { return s == nil }

// ValidateNotNil returns ErrNilMatrix for a nil store.
//
// Behavior highlights:
//   - Catches the nil interface and typed nil pointers of this package's
//     exported stores (e.g. (*Primitive64Store)(nil)).
//   - A typed nil of a foreign Structure2D implementation is not detected;
//     its methods decide what a nil receiver does.
func ValidateNotNil(s Structure2D) error {
	if s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if n, ok := s.(nilStore); ok && n.isNil() {
		return validatorErrorf(fmt.Sprintf("ValidateNotNil(%T)", s), ErrNilMatrix)
	}

	return nil
}

// ValidateShape requires rows >= 1 and cols >= 1.
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateSameShape requires identical row and column counts.
func ValidateSameShape(a, b Structure2D) error {
	if a.CountRows() != b.CountRows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.CountColumns() != b.CountColumns() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires CountRows == CountColumns.
func ValidateSquare(s Structure2D) error {
	if s.CountRows() != s.CountColumns() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible requires left.cols == right.rows.
func ValidateMulCompatible(left, right Structure2D) error {
	if err := ValidateNotNil(left); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(right); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if left.CountColumns() != right.CountRows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible(%dx%d * %dx%d)",
			left.CountRows(), left.CountColumns(), right.CountRows(), right.CountColumns()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateProductTarget requires target to have shape left.rows x right.cols
// on top of ValidateMulCompatible.
func ValidateProductTarget(target, left, right Structure2D) error {
	if err := ValidateMulCompatible(left, right); err != nil {
		return err
	}
	if target.CountRows() != left.CountRows() || target.CountColumns() != right.CountColumns() {
		return validatorErrorf("ValidateProductTarget", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSelection requires every index to be < bound. With allowNegative,
// negative indices are accepted (they select a zero row or column); otherwise
// they are out of range too. An empty selection is ErrBadShape.
func ValidateSelection(indices []int, bound int, allowNegative bool) error {
	if len(indices) == 0 {
		return validatorErrorf("ValidateSelection: empty", ErrBadShape)
	}
	ok := lo.EveryBy(indices, func(i int) bool {
		return i < bound && (allowNegative || i >= 0)
	})
	if !ok {
		bad, _ := lo.Find(indices, func(i int) bool { return i >= bound || (!allowNegative && i < 0) })
		return validatorErrorf(fmt.Sprintf("ValidateSelection: index %d of %d", bad, bound), ErrOutOfRange)
	}

	return nil
}

// ValidateDistinct rejects repeated indices (a write region must address each
// cell at most once).
func ValidateDistinct(indices []int) error {
	if dup := lo.FindDuplicates(indices); len(dup) > 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDistinct: repeated %v", dup), ErrBadShape)
	}

	return nil
}
