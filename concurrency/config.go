// SPDX-License-Identifier: MIT

package concurrency

import (
	"fmt"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

// Thresholds that do not scale with the cache line: both split on columns of
// a right-hand side, and a column is already a full dot-product sweep.
const (
	// DefaultMultiplyThreshold is the number of target columns per multiply leaf.
	DefaultMultiplyThreshold = 64

	// DefaultSubstituteThreshold is the number of right-hand-side columns per
	// triangular-solve leaf.
	DefaultSubstituteThreshold = 64
)

const (
	panicParallelismInvalid = "concurrency: WithParallelism: n must be >= 1"
	panicThresholdsInvalid  = "concurrency: WithThresholds: every threshold must be >= 1"
	panicLoggerNil          = "concurrency: WithLogger: logger must be non-nil"
)

// Thresholds is the split size per operation kind. A range no longer than its
// threshold runs as one leaf.
type Thresholds struct {
	Fill       int `yaml:"fill"`
	Modify     int `yaml:"modify"`
	Multiply   int `yaml:"multiply"`
	Supply     int `yaml:"supply"`
	Aggregate  int `yaml:"aggregate"`
	Substitute int `yaml:"substitute"`
	Compose    int `yaml:"compose"`
}

// each lists the thresholds with their YAML names, in declaration order.
func (t Thresholds) each() []struct {
	name  string
	value int
} {
	return []struct {
		name  string
		value int
	}{
		{"fill", t.Fill},
		{"modify", t.Modify},
		{"multiply", t.Multiply},
		{"supply", t.Supply},
		{"aggregate", t.Aggregate},
		{"substitute", t.Substitute},
		{"compose", t.Compose},
	}
}

// Validate returns ErrInvalidThreshold naming the first threshold below 1.
func (t Thresholds) Validate() error {
	for _, th := range t.each() {
		if th.value < 1 {
			return fmt.Errorf("%s %q=%d: %w", ctxConfig, th.name, th.value, ErrInvalidThreshold)
		}
	}

	return nil
}

// Config is the scheduler tuning. The zero value is not usable; build one with
// NewConfig or LoadConfig.
type Config struct {
	// Parallelism is the number of goroutines a Divider may keep busy,
	// including the caller's own.
	Parallelism int `yaml:"parallelism"`
	// Thresholds holds one split size per operation kind.
	Thresholds Thresholds `yaml:"thresholds"`
	// Logger receives Debug records about scheduling decisions.
	Logger *slog.Logger `yaml:"-"`
}

const ctxConfig = "concurrency.Config"

// Validate checks parallelism and thresholds; errors wrap ErrInvalidParallelism
// or ErrInvalidThreshold.
func (c Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("%s parallelism=%d: %w", ctxConfig, c.Parallelism, ErrInvalidParallelism)
	}

	return c.Thresholds.Validate()
}

// logger never returns nil.
func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

// ---------- Functional options ----------

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); data loaded from files is validated with errors instead.
type Option func(*Options)

// Options is the internal state NewConfig assembles.
type Options struct {
	parallelism int
	thresholds  *Thresholds
	logger      *slog.Logger
	env         *Environment
}

// WithParallelism caps the goroutines a Divider keeps busy. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithThresholds replaces every threshold. Panics if any is < 1.
func WithThresholds(t Thresholds) Option {
	if t.Validate() != nil {
		panic(panicThresholdsInvalid)
	}

	return func(o *Options) { o.thresholds = &t }
}

// WithLogger sets the Debug sink. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithEnvironment derives defaults from env instead of DetectEnvironment.
func WithEnvironment(env Environment) Option {
	return func(o *Options) { o.env = &env }
}

// gatherOptions applies user options in order (last writer wins) and fills
// every unset field from the environment.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.env == nil {
		env := DetectEnvironment()
		o.env = &env
		o.logger.Debug("concurrency: environment detected", "env", env.String())
	}
	if o.parallelism == 0 {
		o.parallelism = o.env.Processors
	}
	if o.thresholds == nil {
		t := o.env.Thresholds()
		o.thresholds = &t
	}

	return o
}

// NewConfig returns a validated Config: defaults from the environment,
// overridden by opts.
func NewConfig(opts ...Option) Config {
	o := gatherOptions(opts...)

	return Config{
		Parallelism: o.parallelism,
		Thresholds:  *o.thresholds,
		Logger:      o.logger,
	}
}
