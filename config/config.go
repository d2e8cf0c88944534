// SPDX-License-Identifier: MIT

// Package config loads the friendgraph YAML configuration.
//
// Example file:
//
//	input:
//	  path: network.txt
//	strict:
//	  reject_self_loops: false
//	  reject_edge_count_mismatch: false
//	  reject_trailing_data: false
//	log:
//	  level: info
//	  format: text
//	query:
//	  concurrency: 4
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/friendgraph/core"
	"github.com/katalvlaran/friendgraph/loader"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Strict StrictConfig `yaml:"strict"`
	Log    LogConfig    `yaml:"log"`
	Query  QueryConfig  `yaml:"query"`
}

// InputConfig names the graph file to load.
type InputConfig struct {
	Path string `yaml:"path"`
	// MaxNodes caps the header node count; 0 keeps core.DefaultMaxNodes.
	MaxNodes int `yaml:"max_nodes"`
}

// StrictConfig turns on the optional input checks. All default to false,
// which accepts self-loops, a miscounted header and anything after the last edge.
type StrictConfig struct {
	RejectSelfLoops         bool `yaml:"reject_self_loops"`
	RejectEdgeCountMismatch bool `yaml:"reject_edge_count_mismatch"`
	RejectTrailingData      bool `yaml:"reject_trailing_data"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// QueryConfig tunes batch queries.
type QueryConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info", Format: "text"},
		Query: QueryConfig{Concurrency: 4},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Input.MaxNodes < 0 {
		return fmt.Errorf("%w: input.max_nodes must be >= 0, got %d", ErrInvalidConfig, c.Input.MaxNodes)
	}
	if c.Query.Concurrency < 1 {
		return fmt.Errorf("%w: query.concurrency must be >= 1, got %d", ErrInvalidConfig, c.Query.Concurrency)
	}
	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
}

// LoaderOptions translates the input limit and strict section into loader options.
func (c Config) LoaderOptions() []loader.Option {
	var build []core.BuildOption
	if c.Strict.RejectSelfLoops {
		build = append(build, core.WithRejectSelfLoops())
	}
	if c.Strict.RejectEdgeCountMismatch {
		build = append(build, core.WithRejectEdgeCountMismatch())
	}
	if c.Input.MaxNodes > 0 {
		build = append(build, core.WithMaxNodes(c.Input.MaxNodes))
	}
	opts := []loader.Option{loader.WithBuildOptions(build...)}
	if c.Strict.RejectTrailingData {
		opts = append(opts, loader.WithRejectTrailingData())
	}
	return opts
}

// StrictAll enables every strict check.
func (c *Config) StrictAll() {
	c.Strict = StrictConfig{
		RejectSelfLoops:         true,
		RejectEdgeCountMismatch: true,
		RejectTrailingData:      true,
	}
}
