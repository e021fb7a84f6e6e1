// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"

	"cloudeng.io/errors"
)

// Supported values for Config.Input.
const (
	// RepeatedInput compares a string of a single repeated character
	// against itself, the worst case for the brute-force algorithm.
	RepeatedInput = "repeated"
	// RandomInput compares a random alphanumeric string against itself.
	RandomInput = "random"
)

// Config represents the configuration of an experiment.
type Config struct {
	MinInputSize   int    `yaml:"min_input_size" cmd:"smallest input size, the first in the doubling progression"`
	MaxInputSize   int    `yaml:"max_input_size" cmd:"upper bound on the doubling progression of input sizes"`
	TrialsPerBatch int    `yaml:"trials_per_batch" cmd:"number of trials averaged for each input size"`
	ResultsDir     string `yaml:"results_dir" cmd:"directory that results files are written to"`
	FilePrefix     string `yaml:"file_prefix" cmd:"prefix for the name of each results file"`
	Runs           int    `yaml:"runs" cmd:"number of times the entire experiment is run"`
	WarmupRuns     int    `yaml:"warmup_runs" cmd:"number of initial runs whose results are discarded"`
	Input          string `yaml:"input" cmd:"input kind: repeated or random"`
	Seed           uint64 `yaml:"seed" cmd:"seed used for random inputs"`
}

// DefaultConfig returns the default configuration: sizes 1 through 2^12,
// 5 trials per size and three runs, the first of which is a warmup.
func DefaultConfig() Config {
	return Config{
		MinInputSize:   1,
		MaxInputSize:   1 << 12,
		TrialsPerBatch: 5,
		ResultsDir:     "results",
		FilePrefix:     "LcsBruteForce",
		Runs:           3,
		WarmupRuns:     1,
		Input:          RepeatedInput,
	}
}

// Validate returns an error describing all of the problems with the
// configuration, or nil.
func (c Config) Validate() error {
	errs := &errors.M{}
	if c.MinInputSize < 1 {
		errs.Append(fmt.Errorf("min input size must be at least 1: %v", c.MinInputSize))
	}
	if c.MaxInputSize < c.MinInputSize {
		errs.Append(fmt.Errorf("max input size %v is less than min input size %v", c.MaxInputSize, c.MinInputSize))
	}
	if c.TrialsPerBatch < 1 {
		errs.Append(fmt.Errorf("trials per batch must be at least 1: %v", c.TrialsPerBatch))
	}
	if c.Runs < 1 {
		errs.Append(fmt.Errorf("runs must be at least 1: %v", c.Runs))
	}
	if c.WarmupRuns < 0 || c.WarmupRuns >= c.Runs {
		errs.Append(fmt.Errorf("warmup runs must be between 0 and %v: %v", c.Runs-1, c.WarmupRuns))
	}
	switch c.Input {
	case RepeatedInput, RandomInput:
	default:
		errs.Append(fmt.Errorf("unsupported input kind %q: must be one of %q or %q", c.Input, RepeatedInput, RandomInput))
	}
	return errs.Err()
}
