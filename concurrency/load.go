// SPDX-License-Identifier: MIT

package concurrency

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadConfig reads a YAML tuning file:
//
//	parallelism: 8
//	thresholds:
//	  fill: 512
//	  multiply: 32
//
// Keys absent from the file keep the defaults NewConfig(opts...) would give;
// unknown keys are rejected. Every failure wraps ErrConfigLoad, and an
// out-of-range value additionally wraps ErrInvalidParallelism or
// ErrInvalidThreshold.
func LoadConfig(path string, opts ...Option) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: config %q not found: %w", ErrConfigLoad, path, err)
		}
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfigLoad, path, err)
	}

	cfg, err := ParseConfig(data, opts...)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.logger().Debug("concurrency: config loaded",
		"path", path,
		"parallelism", cfg.Parallelism,
		"thresholds", cfg.Thresholds)

	return cfg, nil
}

// ParseConfig is LoadConfig over an in-memory document.
func ParseConfig(data []byte, opts ...Option) (Config, error) {
	cfg := NewConfig(opts...)
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("%w: parse: %w", ErrConfigLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML (the logger is not persisted).
func SaveConfig(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrConfigLoad, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrConfigLoad, path, err)
	}

	return nil
}
