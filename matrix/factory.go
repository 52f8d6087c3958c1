// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// storeFactory is the one Factory implementation; the kinds differ only in
// how a zero store is allocated.
type storeFactory[N any, S PhysicalStore[N]] struct {
	field scalar.Field[N]
	opts  Options
	alloc func(rows, cols int, o Options) S
}

// Primitive64Factory builds float64 dense stores.
func Primitive64Factory(opts ...Option) Factory[float64, *Primitive64Store] {
	return &storeFactory[float64, *Primitive64Store]{
		field: scalar.Float64,
		opts:  gatherOptions(opts...),
		alloc: newPrimitiveStore[float64],
	}
}

// Primitive32Factory builds float32 dense stores.
func Primitive32Factory(opts ...Option) Factory[float64, *Primitive32Store] {
	return &storeFactory[float64, *Primitive32Store]{
		field: scalar.Float64,
		opts:  gatherOptions(opts...),
		alloc: newPrimitiveStore[float32],
	}
}

// GenericFactory builds dense stores over f.
func GenericFactory[N any](f scalar.Field[N], opts ...Option) Factory[N, *GenericStore[N]] {
	return &storeFactory[N, *GenericStore[N]]{
		field: f,
		opts:  gatherOptions(opts...),
		alloc: func(rows, cols int, o Options) *GenericStore[N] { return newGenericStore(f, rows, cols, o) },
	}
}

// RawFactory builds row-array stores.
func RawFactory(opts ...Option) Factory[float64, *RawStore] {
	return &storeFactory[float64, *RawStore]{
		field: scalar.Float64,
		opts:  gatherOptions(opts...),
		alloc: newRawStore,
	}
}

// SparseFactory builds sparse stores over f.
func SparseFactory[N any](f scalar.Field[N], opts ...Option) Factory[N, *SparseStore[N]] {
	return &storeFactory[N, *SparseStore[N]]{
		field: f,
		opts:  gatherOptions(opts...),
		alloc: func(rows, cols int, o Options) *SparseStore[N] { return newSparseStore(f, rows, cols, o) },
	}
}

func (sf *storeFactory[N, S]) Field() scalar.Field[N] { return sf.field }

func (sf *storeFactory[N, S]) Make(rows, cols int) (S, error) {
	if err := ValidateShape(rows, cols); err != nil {
		var zero S
		return zero, matrixErrorf(opNewStore, err)
	}

	return sf.alloc(rows, cols, sf.opts), nil
}

// Copy collects source into a new store. Stores push themselves through
// SupplyTo; bare accessors are read element by element.
func (sf *storeFactory[N, S]) Copy(source Access2D[N]) (S, error) {
	var zero S
	if err := ValidateNotNil(source); err != nil {
		return zero, matrixErrorf(opCopy, err)
	}
	target, err := sf.Make(source.CountRows(), source.CountColumns())
	if err != nil {
		return zero, err
	}
	if supplier, ok := source.(ElementsSupplier[N]); ok {
		supplier.SupplyTo(target)
		return target, nil
	}
	for j := 0; j < source.CountColumns(); j++ {
		for i := 0; i < source.CountRows(); i++ {
			target.Set(i, j, source.Get(i, j))
		}
	}

	return target, nil
}

func (sf *storeFactory[N, S]) Columns(columns ...[]N) (S, error) {
	var zero S
	rows, err := uniformLength(columns)
	if err != nil {
		return zero, matrixErrorf(opFactoryCols, err)
	}
	target := sf.alloc(rows, len(columns), sf.opts)
	for j, column := range columns {
		for i, v := range column {
			target.Set(i, j, v)
		}
	}

	return target, nil
}

func (sf *storeFactory[N, S]) Rows(rows ...[]N) (S, error) {
	var zero S
	cols, err := uniformLength(rows)
	if err != nil {
		return zero, matrixErrorf(opFactoryRows, err)
	}
	target := sf.alloc(len(rows), cols, sf.opts)
	for i, row := range rows {
		for j, v := range row {
			target.Set(i, j, v)
		}
	}

	return target, nil
}

// uniformLength returns the common length of lines, or ErrBadShape when
// there are no lines, the first is empty, or the lengths differ.
func uniformLength[N any](lines [][]N) (int, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return 0, fmt.Errorf("no elements: %w", ErrBadShape)
	}
	n := len(lines[0])
	if !lo.EveryBy(lines, func(line []N) bool { return len(line) == n }) {
		return 0, fmt.Errorf("ragged lines, want length %d: %w", n, ErrBadShape)
	}

	return n, nil
}

// Primitive builds a float64 dense store from row-major literals; a
// shorthand for Primitive64Factory().Rows used throughout tests and examples.
func Primitive[T constraints.Float](rows ...[]T) (*Primitive64Store, error) {
	widened := make([][]float64, len(rows))
	for i, row := range rows {
		widened[i] = make([]float64, len(row))
		for j, v := range row {
			widened[i][j] = float64(v)
		}
	}

	return Primitive64Factory().Rows(widened...)
}
