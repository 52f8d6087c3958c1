// SPDX-License-Identifier: MIT

package concurrency

import "errors"

// Every message is prefixed with "concurrency: ..."; callers match with
// errors.Is, never by message text.
var (
	// ErrInvalidThreshold is returned when a loaded or validated Config holds a
	// threshold below 1.
	ErrInvalidThreshold = errors.New("concurrency: threshold must be >= 1")

	// ErrInvalidParallelism is returned when a Config holds a parallelism
	// budget below 1.
	ErrInvalidParallelism = errors.New("concurrency: parallelism must be >= 1")

	// ErrConfigLoad wraps every read/parse/write failure of a YAML config file.
	ErrConfigLoad = errors.New("concurrency: config load failed")
)
