// SPDX-License-Identifier: MIT

// Package concurrency is the fork-join scheduler shared by every bulk matrix
// operation.
//
// A Divider bisects an index range [first, limit) until a piece is no longer
// than a threshold, runs the pieces, and joins every forked goroutine before
// it returns. While the Divider still has parallelism budget the first half of
// each split runs on its own goroutine (golang.org/x/sync/errgroup) and the
// second half runs inline; once the budget is spent the split degenerates to a
// plain sequential recursion. A panic raised by a forked half is captured and
// re-raised in the calling goroutine after the join.
//
// Leaves MUST write disjoint ranges: the scheduler does no locking of its own.
//
// Tuning lives in Config: a parallelism budget, one threshold per operation
// kind (Thresholds) and a *slog.Logger. Defaults come from DetectEnvironment
// (GOMAXPROCS, golang.org/x/sys/cpu features and cache line size); Config can
// also be loaded from YAML (LoadConfig). The process-wide Divider used when a
// caller does not supply one is Default, replaced explicitly with SetDefault.
package concurrency
