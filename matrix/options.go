// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for store constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The Divider decides how bulk operations (fill, modify, multiply, supply,
//     aggregate, substitute) are split across goroutines. When none is given,
//     concurrency.Default() is used at construction time, so a store keeps the
//     Divider it was built with even if the process default changes later.
package matrix

import (
	"github.com/katalvlaran/lvmat/concurrency"
)

// DefaultSparseCapacity is the number of non-zeros a new sparse store
// reserves room for.
const DefaultSparseCapacity = 16

const (
	panicDividerNil      = "matrix: WithDivider: divider must be non-nil"
	panicCapacityInvalid = "matrix: WithSparseCapacity: capacity must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the internal configuration assembled by gatherOptions.
type Options struct {
	divider        *concurrency.Divider
	sparseCapacity int
}

// WithDivider sets the scheduler used by the store's bulk operations.
func WithDivider(d *concurrency.Divider) Option {
	if d == nil {
		panic(panicDividerNil)
	}

	return func(o *Options) { o.divider = d }
}

// WithSparseCapacity pre-sizes a sparse store's non-zero storage.
func WithSparseCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.sparseCapacity = n }
}

// gatherOptions applies user options in order (last writer wins) over the
// defaults.
func gatherOptions(user ...Option) Options {
	o := Options{sparseCapacity: DefaultSparseCapacity}
	for _, set := range user {
		set(&o)
	}
	if o.divider == nil {
		o.divider = concurrency.Default()
	}

	return o
}

// explicitDivider returns the Divider set by opts, or nil when none of them
// sets one.
func explicitDivider(opts ...Option) *concurrency.Divider {
	var o Options
	for _, set := range opts {
		set(&o)
	}

	return o.divider
}

// rebindable is implemented by the physical stores; Copy uses it to hand a
// copied store the Divider requested by its options.
type rebindable interface{ setDivider(d *concurrency.Divider) }

// Divider returns the scheduler the store splits its bulk work with.
func (s *PrimitiveStore[T]) Divider() *concurrency.Divider { return s.div }
func (s *GenericStore[N]) Divider() *concurrency.Divider   { return s.div }
func (s *RawStore) Divider() *concurrency.Divider          { return s.div }
func (s *SparseStore[N]) Divider() *concurrency.Divider    { return s.div }

func (s *PrimitiveStore[T]) setDivider(d *concurrency.Divider) { s.div = d }
func (s *GenericStore[N]) setDivider(d *concurrency.Divider)   { s.div = d }
func (s *RawStore) setDivider(d *concurrency.Divider)          { s.div = d }
func (s *SparseStore[N]) setDivider(d *concurrency.Divider)    { s.div = d }
