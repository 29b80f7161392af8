// SPDX-License-Identifier: MIT

// Package config loads generator settings with Viper (defaults, optional
// config file, KCLIQUE_* environment overrides) and builds the zerolog
// logger used across the pipeline.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kclique/clique"
	"github.com/katalvlaran/kclique/dataset"
)

// ErrNonIntegerCount indicates a count setting that is not a whole number
// (10.5, "10.000") or does not fit an int. Whole numeric values such as the
// 40 a JSON file decodes to float64 are accepted.
var ErrNonIntegerCount = errors.New("config: count must be an integer")

// EnvPrefix is prepended to environment overrides: dataset.node_count is
// read from KCLIQUE_DATASET_NODE_COUNT.
const EnvPrefix = "KCLIQUE"

// Config manages generator configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults and environment overrides.
func NewConfig() *Config {
	v := viper.New()

	// Dataset parameters
	v.SetDefault("dataset.graph_count", dataset.DefaultGraphCount)
	v.SetDefault("dataset.node_count", dataset.DefaultNodeCount)
	v.SetDefault("dataset.clique_order", dataset.DefaultCliqueOrder)
	v.SetDefault("dataset.edge_probability", dataset.DefaultEdgeProbability)
	v.SetDefault("dataset.seed", time.Now().UnixNano())
	v.SetDefault("dataset.removal_mode", string(clique.RemoveFirst))
	v.SetDefault("dataset.enumerator", clique.EnumeratorBronKerbosch)
	v.SetDefault("dataset.degree_feature", false)

	// Output
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", dataset.FormatGob)
	v.SetDefault("output.sqlite_path", "")
	v.SetDefault("output.redis_addr", "")
	v.SetDefault("output.metrics_path", "")

	// Logging
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a config file (YAML, JSON or TOML by extension).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Set allows dynamic configuration changes (CLI flags, tests).
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters
func (c *Config) EdgeProbability() float64 { return c.v.GetFloat64("dataset.edge_probability") }
func (c *Config) Seed() int64              { return c.v.GetInt64("dataset.seed") }
func (c *Config) RemovalMode() string      { return c.v.GetString("dataset.removal_mode") }
func (c *Config) Enumerator() string       { return c.v.GetString("dataset.enumerator") }
func (c *Config) DegreeFeature() bool      { return c.v.GetBool("dataset.degree_feature") }

func (c *Config) OutputDir() string   { return c.v.GetString("output.dir") }
func (c *Config) Format() string      { return c.v.GetString("output.format") }
func (c *Config) SQLitePath() string  { return c.v.GetString("output.sqlite_path") }
func (c *Config) RedisAddr() string   { return c.v.GetString("output.redis_addr") }
func (c *Config) MetricsPath() string { return c.v.GetString("output.metrics_path") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// GraphCount, NodeCount and CliqueOrder are strict: see ErrNonIntegerCount.
func (c *Config) GraphCount() (int, error)  { return c.count("dataset.graph_count") }
func (c *Config) NodeCount() (int, error)   { return c.count("dataset.node_count") }
func (c *Config) CliqueOrder() (int, error) { return c.count("dataset.clique_order") }

// count reads an integer setting without float truncation.
func (c *Config) count(key string) (int, error) {
	switch x := c.v.Get(key).(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, fmt.Errorf("%s=%d overflows int: %w", key, x, ErrNonIntegerCount)
		}
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint:
		if x > math.MaxInt {
			return 0, fmt.Errorf("%s=%d overflows int: %w", key, x, ErrNonIntegerCount)
		}
		return int(x), nil
	case float64:
		// JSON config files decode every number as float64
		return wholeFloat(key, x)
	case float32:
		return wholeFloat(key, float64(x))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("%s=%q: %w", key, x, ErrNonIntegerCount)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s=%v (%T): %w", key, x, x, ErrNonIntegerCount)
	}
}

// wholeFloat accepts x only when it has no fractional part and fits an int.
func wholeFloat(key string, x float64) (int, error) {
	if x != math.Trunc(x) || x < float64(math.MinInt) || x >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%s=%v: %w", key, x, ErrNonIntegerCount)
	}
	return int(x), nil
}

// Params assembles dataset.Params and validates them.
func (c *Config) Params() (dataset.Params, error) {
	var p dataset.Params
	var err error
	if p.GraphCount, err = c.GraphCount(); err != nil {
		return p, err
	}
	if p.NodeCount, err = c.NodeCount(); err != nil {
		return p, err
	}
	if p.CliqueOrder, err = c.CliqueOrder(); err != nil {
		return p, err
	}
	p.EdgeProbability = c.EdgeProbability()
	p.Seed = c.Seed()
	p.RemovalMode = clique.RemovalMode(c.RemovalMode())
	p.Enumerator = c.Enumerator()
	p.DegreeFeature = c.DegreeFeature()

	if err = p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// CreateLogger creates a console zerolog logger on stderr.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stderr)
}

// CreateLoggerTo is CreateLogger with an explicit sink.
func (c *Config) CreateLoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "kclique").Logger()
}
