// SPDX-License-Identifier: MIT

package function

import "github.com/katalvlaran/lvmat/scalar"

// Aggregator is a stateful visitor that folds visited values into a result.
// Aggregators are NOT safe for concurrent use; parallel reductions give each
// leaf its own aggregator and Merge the partial results afterwards.
type Aggregator[N any] interface {
	Void[N]

	// Get returns the current result.
	Get() N

	// Merge folds another aggregator's result into this one.
	Merge(result N)

	// Reset restores the initial state.
	Reset()
}

// SumAggregator accumulates a running sum.
type SumAggregator[N any] struct {
	field scalar.Field[N]
	acc   N
}

// NewSum returns an empty sum over f.
func NewSum[N any](f scalar.Field[N]) *SumAggregator[N] {
	return &SumAggregator[N]{field: f, acc: f.Zero()}
}

func (s *SumAggregator[N]) Invoke(arg N)   { s.acc = s.field.Add(s.acc, arg) }
func (s *SumAggregator[N]) Get() N         { return s.acc }
func (s *SumAggregator[N]) Merge(result N) { s.acc = s.field.Add(s.acc, result) }
func (s *SumAggregator[N]) Reset()         { s.acc = s.field.Zero() }

// LargestAggregator keeps the value of largest magnitude seen so far.
// Ties keep the earlier value.
type LargestAggregator[N any] struct {
	field scalar.Field[N]
	best  N
	norm  float64
}

// NewLargest returns an empty largest-magnitude aggregator over f.
func NewLargest[N any](f scalar.Field[N]) *LargestAggregator[N] {
	return &LargestAggregator[N]{field: f, best: f.Zero()}
}

func (l *LargestAggregator[N]) Invoke(arg N) {
	if n := l.field.Norm(arg); n > l.norm {
		l.best, l.norm = arg, n
	}
}

func (l *LargestAggregator[N]) Get() N         { return l.best }
func (l *LargestAggregator[N]) Merge(result N) { l.Invoke(result) }
func (l *LargestAggregator[N]) Reset() {
	l.best, l.norm = l.field.Zero(), 0
}

// CountAggregator counts non-zero values; Get returns the count cast into N.
type CountAggregator[N any] struct {
	field scalar.Field[N]
	count int
}

// NewCount returns a non-zero counter over f.
func NewCount[N any](f scalar.Field[N]) *CountAggregator[N] {
	return &CountAggregator[N]{field: f}
}

func (c *CountAggregator[N]) Invoke(arg N) {
	if !c.field.IsZero(arg) {
		c.count++
	}
}

func (c *CountAggregator[N]) Get() N { return c.field.FromFloat64(float64(c.count)) }

func (c *CountAggregator[N]) Merge(result N) { c.count += int(c.field.Float64(result)) }

func (c *CountAggregator[N]) Reset() { c.count = 0 }

// Count returns the plain integer count.
func (c *CountAggregator[N]) Count() int { return c.count }
