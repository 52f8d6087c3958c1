// SPDX-License-Identifier: MIT

package concurrency

import "sync"

var (
	defaultMu      sync.RWMutex
	defaultDivider *Divider
)

// Default returns the process-wide Divider, building it from NewConfig() on
// first use.
func Default() *Divider {
	defaultMu.RLock()
	d := defaultDivider
	defaultMu.RUnlock()
	if d != nil {
		return d
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDivider == nil {
		defaultDivider = NewDivider(NewConfig())
	}

	return defaultDivider
}

// SetDefault replaces the process-wide Divider with one built from cfg and
// returns it. Operations already running keep the Divider they started with.
func SetDefault(cfg Config) *Divider {
	d := NewDivider(cfg)

	defaultMu.Lock()
	defaultDivider = d
	defaultMu.Unlock()

	d.Logger().Debug("concurrency: default divider replaced", "parallelism", cfg.Parallelism)

	return d
}
