package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lanrat/sortbench"
)

// fileConfig is the optional YAML configuration of the run command
type fileConfig struct {
	Algorithms        []string `yaml:"algorithms"`
	Parallelism       int      `yaml:"parallelism"`
	VerifyPermutation bool     `yaml:"verify_permutation"`
	LogLevel          string   `yaml:"log_level"`
	RankBy            string   `yaml:"rank_by"`
	Type              string   `yaml:"type"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sortbench.NewIOError(err, "read config", path)
	}
	var c fileConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &sortbench.ConfigError{Field: "config", Value: path, Reason: err.Error()}
	}
	return &c, nil
}

// applyTo copies the values set in the file into opts, unless the matching
// flag was given on the command line
func (c *fileConfig) applyTo(cmd *cobra.Command, opts *runOptions) {
	flags := cmd.Flags()
	if len(c.Algorithms) > 0 && !flags.Changed("algorithms") {
		opts.algorithms = c.Algorithms
	}
	if c.Parallelism > 0 && !flags.Changed("parallel") {
		opts.parallelism = c.Parallelism
	}
	if c.VerifyPermutation && !flags.Changed("verify-permutation") {
		opts.verifyPermutation = true
	}
	if c.LogLevel != "" && !flags.Changed("log-level") {
		opts.logLevel = c.LogLevel
	}
	if c.RankBy != "" && !flags.Changed("rank-by") {
		opts.rankBy = c.RankBy
	}
	if c.Type != "" && !flags.Changed("type") {
		opts.kind = c.Type
	}
}

// benchConfig converts the parsed options into a library configuration
func (o *runOptions) benchConfig() (*sortbench.Config, error) {
	config := sortbench.DefaultConfig()
	if len(o.algorithms) > 0 {
		config.Algorithms = config.Algorithms[:0]
		for _, name := range o.algorithms {
			a, err := sortbench.ParseAlgorithm(name)
			if err != nil {
				return nil, err
			}
			config.Algorithms = append(config.Algorithms, a)
		}
	}
	config.Parallelism = o.parallelism
	config.VerifyPermutation = o.verifyPermutation
	return config, nil
}
