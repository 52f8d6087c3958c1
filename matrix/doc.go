// SPDX-License-Identifier: MIT

// Package matrix offers matrix stores and a zero-copy view algebra over them.
//
// The matrix package provides:
//
//   - Physical stores that own their memory: Primitive64Store and
//     Primitive32Store (column-major floats), GenericStore over any
//     scalar.Field, RawStore (one slice per row) and SparseStore (non-zeros
//     only, safe for concurrent writers).
//   - Views that never copy: Above/Below, Left/Right, Rows/Columns
//     selection, triangular, diagonal and hermitian masks, Transpose and
//     Conjugate, Offsets/Limits/Window, plus the constant Zero, Identity and
//     Single stores.
//   - Write regions (RowsRegion, ColumnsRegion, OffsetsRegion, LimitsRegion,
//     TransposedRegion) so products and copies can target part of a store.
//   - Multiply, which short-circuits constants, fans composed operands out
//     into target regions, and picks the dense AXPY, sparse sweep or generic
//     kernel for the rest.
//   - Factories, the Copy/AsPhysical/Equals/Sum helpers, and gonum interop
//     (AsGonum, FromGonum).
//
// Storage is column-major: element (row, col) of an r-row store has flat
// index row + col*r, which is also the Access1D order. Every store reports
// per-row and per-column bounds of its non-trivial content, and the kernels
// skip what lies outside them.
//
// Bulk work is split by a concurrency.Divider. Stores keep the Divider they
// were built with (WithDivider, default concurrency.Default()); views use the
// process default.
//
// Shapes are checked when a store or view is built and reported as wrapped
// sentinel errors (ErrBadShape, ErrDimensionMismatch, ErrOutOfRange, ...).
// Element accessors trust their arguments.
package matrix
