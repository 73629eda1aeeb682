package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"methbench/internal/errors"
)

// Defaults for the three benchmark knobs.
const (
	DefaultObjectCount      = 500
	DefaultLoadIterations   = 200
	DefaultInvocationCycles = 200
)

// Config holds everything read at startup. It is read once before any
// measurement begins and never changes during a run.
type Config struct {
	// ObjectCount is the pool size for both benchmarks.
	ObjectCount int
	// LoadIterations is the number of trials per variant in the load benchmark.
	LoadIterations int
	// InvocationCycles is the number of pool passes per measured invocation run.
	InvocationCycles int
}

// Load initializes the configuration from flags, environment variables and an
// optional .env file. Flags are expected to already be bound into viper by
// the command layer. Malformed or non-positive values fail fast with a
// ConfigError so nothing gets measured against a half-valid setup.
func Load() (*Config, error) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	viper.SetDefault("object_count", DefaultObjectCount)
	viper.SetDefault("load_iterations", DefaultLoadIterations)
	viper.SetDefault("invocation_cycles", DefaultInvocationCycles)

	viper.BindEnv("object_count", "OBJECT_COUNT")
	viper.BindEnv("load_iterations", "LOAD_ITERATIONS")
	viper.BindEnv("invocation_cycles", "INVOCATION_CYCLES")

	cfg := &Config{}
	var err error
	if cfg.ObjectCount, err = positiveInt("object_count", "OBJECT_COUNT"); err != nil {
		return nil, err
	}
	if cfg.LoadIterations, err = positiveInt("load_iterations", "LOAD_ITERATIONS"); err != nil {
		return nil, err
	}
	if cfg.InvocationCycles, err = positiveInt("invocation_cycles", "INVOCATION_CYCLES"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// positiveInt reads a viper key strictly: viper's own GetInt silently maps
// garbage to zero, which would hide a typo in an environment variable.
func positiveInt(key, name string) (int, error) {
	raw := strings.TrimSpace(viper.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewConfigError(name, raw, "not a number")
	}
	if n <= 0 {
		return 0, errors.NewConfigError(name, raw, "must be positive")
	}
	return n, nil
}
