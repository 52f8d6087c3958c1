// SPDX-License-Identifier: MIT

package concurrency

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Divider runs divide-and-conquer work over index ranges with a bounded
// number of extra goroutines. It is safe for concurrent use; nested calls
// (a leaf that itself calls Invoke) share the same budget.
type Divider struct {
	cfg Config
	// budget holds one token per goroutine that may be forked in addition to
	// the caller's own.
	budget chan struct{}
}

// NewDivider returns a Divider for cfg. A cfg that fails Validate is a
// programmer error and panics; loaded configs are validated by LoadConfig.
func NewDivider(cfg Config) *Divider {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	cfg.Logger = cfg.logger()

	d := &Divider{cfg: cfg, budget: make(chan struct{}, cfg.Parallelism-1)}
	cfg.Logger.Debug("concurrency: divider created",
		"parallelism", cfg.Parallelism,
		"thresholds", cfg.Thresholds)

	return d
}

// Config returns the tuning the Divider was built with.
func (d *Divider) Config() Config { return d.cfg }

// Thresholds is shorthand for Config().Thresholds.
func (d *Divider) Thresholds() Thresholds { return d.cfg.Thresholds }

// Logger returns the Divider's logger (never nil).
func (d *Divider) Logger() *slog.Logger { return d.cfg.Logger }

// DebugEnabled reports whether Debug records would be emitted; hot paths use
// it to skip building attributes.
func (d *Divider) DebugEnabled() bool {
	return d.cfg.Logger.Enabled(context.Background(), slog.LevelDebug)
}

// acquire takes a fork token without blocking.
func (d *Divider) acquire() bool {
	select {
	case d.budget <- struct{}{}:
		return true
	default:
		return false
	}
}

func (d *Divider) release() { <-d.budget }

// forkPanic carries a panic value out of a forked goroutine.
type forkPanic struct{ value any }

func (p *forkPanic) Error() string { return "concurrency: forked half panicked" }

// Fork runs first and second, possibly concurrently, and returns only when
// both have finished. If either panics, the panic is re-raised here after the
// join; when both panic, the inline (second) one wins.
func (d *Divider) Fork(first, second func()) {
	if !d.acquire() {
		first()
		second()
		return
	}

	var g errgroup.Group
	g.Go(func() (err error) {
		defer d.release()
		defer func() {
			if r := recover(); r != nil {
				err = &forkPanic{value: r}
			}
		}()
		first()
		return nil
	})

	var inline any
	panicked := true
	func() {
		defer func() {
			if panicked {
				inline = recover()
			}
		}()
		second()
		panicked = false
	}()

	err := g.Wait()
	if panicked {
		panic(inline)
	}
	if fp, ok := err.(*forkPanic); ok {
		panic(fp.value)
	}
}

// Invoke calls fn on consecutive pieces of [first, limit) no longer than
// threshold, covering every index exactly once. Pieces are produced by
// bisection; a threshold below 1 is treated as 1. An empty range calls
// nothing.
//
// Complexity:
//   - ⌈(limit-first)/threshold⌉ leaves at most twice that many forks.
func (d *Divider) Invoke(first, limit, threshold int, fn func(first, limit int)) {
	if limit <= first {
		return
	}
	d.divide(first, limit, max(threshold, 1), fn)
}

func (d *Divider) divide(first, limit, threshold int, fn func(first, limit int)) {
	if limit-first <= threshold {
		fn(first, limit)
		return
	}
	mid := first + (limit-first)/2
	d.Fork(
		func() { d.divide(first, mid, threshold, fn) },
		func() { d.divide(mid, limit, threshold, fn) },
	)
}

// Reduce divides [first, limit) like Invoke, evaluates leaf on every piece and
// folds the partial results with combine, left before right. An empty range
// returns leaf(first, limit).
func Reduce[T any](d *Divider, first, limit, threshold int, leaf func(first, limit int) T, combine func(left, right T) T) T {
	threshold = max(threshold, 1)
	if limit-first <= threshold {
		return leaf(first, limit)
	}
	mid := first + (limit-first)/2
	var left, right T
	d.Fork(
		func() { left = Reduce(d, first, mid, threshold, leaf, combine) },
		func() { right = Reduce(d, mid, limit, threshold, leaf, combine) },
	)

	return combine(left, right)
}
