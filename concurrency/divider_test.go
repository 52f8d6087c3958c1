// SPDX-License-Identifier: MIT

package concurrency_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/stretchr/testify/require"
)

func newDivider(parallelism int) *concurrency.Divider {
	return concurrency.NewDivider(concurrency.NewConfig(concurrency.WithParallelism(parallelism)))
}

// TestReduceMatchesSequentialSum is the [0,1000) / threshold 128 scenario.
func TestReduceMatchesSequentialSum(t *testing.T) {
	values := make([]float64, 1000)
	want := 0.0
	for i := range values {
		values[i] = float64(i%17) * 0.5
		want += values[i]
	}

	for _, p := range []int{1, 2, 8} {
		d := newDivider(p)
		got := concurrency.Reduce(d, 0, len(values), 128,
			func(first, limit int) float64 {
				s := 0.0
				for i := first; i < limit; i++ {
					s += values[i]
				}
				return s
			},
			func(a, b float64) float64 { return a + b })
		require.InDelta(t, want, got, 1e-9, "parallelism=%d", p)
	}
}

// TestInvokeCoversEveryIndexOnce checks the disjoint, complete cover and the
// leaf size bound.
func TestInvokeCoversEveryIndexOnce(t *testing.T) {
	const n = 1000
	d := newDivider(4)
	var hits [n]atomic.Int32
	var maxLeaf atomic.Int32

	d.Invoke(0, n, 100, func(first, limit int) {
		for {
			cur := maxLeaf.Load()
			if int32(limit-first) <= cur || maxLeaf.CompareAndSwap(cur, int32(limit-first)) {
				break
			}
		}
		for i := first; i < limit; i++ {
			hits[i].Add(1)
		}
	})

	for i := range hits {
		require.Equal(t, int32(1), hits[i].Load(), "index %d", i)
	}
	require.LessOrEqual(t, maxLeaf.Load(), int32(100))
}

// TestInvokeSequentialOrder: with no budget leaves run inline, left to right.
func TestInvokeSequentialOrder(t *testing.T) {
	d := newDivider(1)
	var firsts []int
	d.Invoke(10, 50, 8, func(first, limit int) { firsts = append(firsts, first) })
	require.Equal(t, []int{10, 15, 20, 25, 30, 35, 40, 45}, firsts)
}

func TestInvokeEdgeCases(t *testing.T) {
	d := newDivider(2)
	calls := 0
	d.Invoke(5, 5, 4, func(int, int) { calls++ })
	d.Invoke(5, 3, 4, func(int, int) { calls++ })
	require.Zero(t, calls) // empty ranges call nothing

	var mu sync.Mutex
	var leaves [][2]int
	d.Invoke(0, 3, 0, func(first, limit int) { // threshold 0 acts as 1
		mu.Lock()
		leaves = append(leaves, [2]int{first, limit})
		mu.Unlock()
	})
	require.Len(t, leaves, 3)
}

// TestForkRepanicsAfterJoin checks both halves finish before a panic from
// either surfaces in the caller.
func TestForkRepanicsAfterJoin(t *testing.T) {
	d := newDivider(2)

	var done atomic.Bool
	require.PanicsWithValue(t, "boom", func() {
		d.Fork(func() { panic("boom") }, func() { done.Store(true) })
	})
	require.True(t, done.Load())

	done.Store(false)
	require.PanicsWithValue(t, "inline", func() {
		d.Fork(func() { done.Store(true) }, func() { panic("inline") })
	})
	require.True(t, done.Load()) // forked half joined before re-raise

	// budget returned after panics: forks still work
	var both atomic.Int32
	d.Fork(func() { both.Add(1) }, func() { both.Add(1) })
	require.Equal(t, int32(2), both.Load())
}

func TestInvokePanicInLeafPropagates(t *testing.T) {
	d := newDivider(4)
	require.Panics(t, func() {
		d.Invoke(0, 64, 4, func(first, _ int) {
			if first == 0 {
				panic("leaf")
			}
		})
	})
}

func TestNestedInvokeSharesBudget(t *testing.T) {
	d := newDivider(3)
	var total atomic.Int64
	d.Invoke(0, 8, 1, func(outer, _ int) {
		d.Invoke(0, 100, 10, func(first, limit int) {
			total.Add(int64(limit - first))
		})
	})
	require.Equal(t, int64(800), total.Load())
}
