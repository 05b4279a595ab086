package dds

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/dds/slots"
)

// DefaultMaxMemoryMB is the engine memory budget applied when none is set.
const DefaultMaxMemoryMB = 1000

// Environment variables read by Config.ApplyEnv.
const (
	EnvMaxThreads    = "DDS_MAX_THREADS"
	EnvMaxMemoryMB   = "DDS_MAX_MEMORY_MB"
	EnvAcquirePolicy = "DDS_ACQUIRE_POLICY"
)

// Config expresses the knobs used to size the engine and its slot pool.
type Config struct {
	// MaxThreads caps the slot pool. Zero uses the engine's own thread
	// count.
	MaxThreads int `yaml:"max_threads"`

	// MaxMemoryMB is handed to the engine when resources are (re)applied.
	// Zero means DefaultMaxMemoryMB.
	MaxMemoryMB int `yaml:"max_memory_mb"`

	// AcquirePolicy decides what a call does when every slot is taken.
	// slots.FailFast is the engine's own contract: the call fails at once
	// with ErrResourceExhausted. The default, slots.Block, queues the call
	// until a slot frees up or its context ends.
	AcquirePolicy slots.Policy `yaml:"acquire_policy"`

	// LogLevel is read by the ddsolve command; the library ignores it.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		MaxMemoryMB:   DefaultMaxMemoryMB,
		AcquirePolicy: slots.Block,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("dds: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("dds: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from DDS_* environment variables when set.
func (c *Config) ApplyEnv() error {
	var errs []error
	if v, ok := os.LookupEnv(EnvMaxThreads); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxThreads, err))
		} else {
			c.MaxThreads = n
		}
	}
	if v, ok := os.LookupEnv(EnvMaxMemoryMB); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxMemoryMB, err))
		} else {
			c.MaxMemoryMB = n
		}
	}
	if v, ok := os.LookupEnv(EnvAcquirePolicy); ok {
		if err := c.AcquirePolicy.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAcquirePolicy, err))
		}
	}
	return errors.Join(errs...)
}

// Validate rejects values the engine cannot use.
func (c Config) Validate() error {
	if c.MaxThreads < 0 {
		return fmt.Errorf("%w: max_threads %d is negative", ErrInvalidArgument, c.MaxThreads)
	}
	if c.MaxMemoryMB < 0 {
		return fmt.Errorf("%w: max_memory_mb %d is negative", ErrInvalidArgument, c.MaxMemoryMB)
	}
	if c.AcquirePolicy != slots.Block && c.AcquirePolicy != slots.FailFast {
		return fmt.Errorf("%w: acquire_policy %v", ErrInvalidArgument, c.AcquirePolicy)
	}
	return nil
}

func (c Config) memoryMB() int {
	if c.MaxMemoryMB == 0 {
		return DefaultMaxMemoryMB
	}
	return c.MaxMemoryMB
}

// PoolSize returns the number of slots to create given the thread count
// the engine reports.
func (c Config) PoolSize(engineThreads int) int {
	n := min(engineThreads, bindings.MaxThreads, slots.MaxSlots)
	if c.MaxThreads > 0 {
		n = min(n, c.MaxThreads)
	}
	return max(n, 1)
}
