package sortbench

import (
	"go.uber.org/zap"
)

// Config holds configuration settings for a Benchmark
type Config struct {
	Algorithms        []Algorithm // algorithms to run, in order; empty runs all of them
	Parallelism       int         // maximum number of algorithms running at once, <= 1 runs sequentially
	VerifyPermutation bool        // also check that each output holds exactly the input elements
	Logger            *zap.Logger // nil disables logging
	Observer          Observer    // optional sink for every result, may be nil
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	algorithms := make([]Algorithm, len(Algorithms))
	copy(algorithms, Algorithms)
	return &Config{
		Algorithms:  algorithms,
		Parallelism: 1,
		Logger:      zap.NewNop(),
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if len(merged.Algorithms) == 0 {
		merged.Algorithms = d.Algorithms
	}
	if merged.Parallelism < 1 {
		merged.Parallelism = d.Parallelism
	}
	if merged.Logger == nil {
		merged.Logger = d.Logger
	}
	// skipping Observer as nil means no observer
	return &merged
}

// validate reports the first invalid field of a merged config
func (c *Config) validate() error {
	seen := make(map[Algorithm]bool, len(c.Algorithms))
	for _, a := range c.Algorithms {
		if !a.Valid() {
			return &ConfigError{Field: "Algorithms", Value: a, Reason: "unknown algorithm"}
		}
		if seen[a] {
			return &ConfigError{Field: "Algorithms", Value: a, Reason: "listed more than once"}
		}
		seen[a] = true
	}
	return nil
}
