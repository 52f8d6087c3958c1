// SPDX-License-Identifier: MIT

// Package array holds the stateless element kernels every store delegates to.
//
// Contract:
//
//	Every kernel takes (data, first, limit, step[, operands...]) and applies an
//	element rule over the half-open strided range [first, limit): indices
//	first, first+step, ... while < limit. Nothing outside that range is read
//	from data or written.
//
// Families:
//   - Search:     AMAX, AMAXScalar (first occurrence of the largest magnitude).
//   - Copy/fill:  Copy, CopyStrided, FillAll, FillAllGenerated, FillMatching*.
//   - Pivoting:   Exchange, ExchangeRows, ExchangeColumns, RotateRight.
//   - Mapping:    OperationUnary/Binary/Parameter/Void (+Scalar variants) with
//     typed fast paths in the Primitive* loops.
//   - BLAS-like:  AXPY, DOT, ApplyLU, SubstituteForwards/Backwards.
//   - Storage:    SparseArray, a sorted index→value map.
//
// Primitive kernels are generic over constraints.Float so the same code serves
// []float64 and []float32 backings; *Scalar kernels take a scalar.Field[N].
//
// Bounds:
//
//	Kernels trust their callers. An index outside data panics through Go's
//	own bounds check; shapes are never validated here.
//
// Layout:
//
//	Where a kernel needs 2D structure (ExchangeRows, RotateRight, ApplyLU,
//	Substitute*) data is column-major: element (row, col) lives at
//	row + col*structure, structure being the row count.
package array
