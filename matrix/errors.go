// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors,
// compositions and Multiply return these (wrapped with an operation tag via
// matrixErrorf); tests match them with errors.Is. Element accessors
// (Get/Set/DoubleValue...) trust their callers and never return errors:
// an out-of-range index there panics through Go's own bounds check.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ...". Wrap with context at the
// outer boundary only: fmt.Errorf("%s: %w", tag, ErrX).
var (
	// ErrBadShape is returned when a requested shape is invalid (rows<1 or
	// cols<1, ragged row data, duplicate indices in a write region).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a selection index, offset or limit lies
	// outside the base store.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Above with different column counts, or Multiply with left.cols != right.rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square store was required (Hermitian).
	ErrNonSquare = errors.New("matrix: store is not square")

	// ErrNilMatrix indicates that a nil store was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil store")

	// ErrUnsupported marks an operation a structural placeholder cannot serve
	// (e.g. AsPhysical on a Zero or Identity store).
	ErrUnsupported = errors.New("matrix: operation unsupported by this store")
)

// Operation tags for uniform error wrapping.
const (
	opAbove       = "Above"
	opLeft        = "Left"
	opRows        = "Rows"
	opColumns     = "Columns"
	opOffsets     = "Offsets"
	opLimits      = "Limits"
	opHermitian   = "Hermitian"
	opMultiply    = "Multiply"
	opFillByMul   = "FillByMultiplying"
	opCopy        = "Copy"
	opAsPhysical  = "AsPhysical"
	opConstant    = "Constant"
	opRegion      = "Region"
	opNewStore    = "NewStore"
	opFromGonum   = "FromGonum"
	opFactoryRows = "Factory.Rows"
	opFactoryCols = "Factory.Columns"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
