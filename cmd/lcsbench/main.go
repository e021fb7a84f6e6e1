// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command lcsbench measures the running time of a brute-force longest
// common substring algorithm over a doubling progression of input sizes
// and writes the results to files suitable for plotting with gnuplot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/lcsbench/experiment"
	"cloudeng.io/lcsbench/lcs"
	"cloudeng.io/logging/ctxlog"
)

const spec = `name: lcsbench
summary: measure the running time of a brute-force longest common substring algorithm
commands:
  - name: run
    summary: run the timing experiment followed by the verification pass
  - name: verify
    summary: print the results of the algorithm for a fixed set of inputs
  - name: length
    summary: print the length and offsets of the longest common substring of two strings
    arguments:
      - <a>
      - <b>
  - name: fit
    summary: estimate the growth exponent from one or more results files
    arguments:
      - <results-file>
      - ...
`

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type ExperimentFlags struct {
	MinInputSize int    `subcmd:"min-input-size,1,smallest input size"`
	MaxInputSize int    `subcmd:"max-input-size,4096,upper bound on the doubling progression of input sizes"`
	Trials       int    `subcmd:"trials,5,number of trials averaged for each input size"`
	ResultsDir   string `subcmd:"results-dir,results,directory that results files are written to"`
	FilePrefix   string `subcmd:"file-prefix,LcsBruteForce,prefix for the name of each results file"`
	Runs         int    `subcmd:"runs,3,number of times the entire experiment is run"`
	WarmupRuns   int    `subcmd:"warmup-runs,1,number of initial runs whose results are discarded"`
	Input        string `subcmd:"input,repeated,'input kind: repeated or random'"`
	Seed         int    `subcmd:"seed,0,seed used for random inputs"`
}

type RunFlags struct {
	CommonFlags
	ExperimentFlags
	Config     string `subcmd:"config,,'yaml configuration file, the values it contains override those specified by flags'"`
	CPUProfile string `subcmd:"cpuprofile,,write a cpu profile to the specified file"`
}

var (
	cmdSet *subcmd.CommandSetYAML
	stdout io.Writer = os.Stdout
)

func init() {
	cmdSet = subcmd.MustFromYAML(spec)
	cmdSet.Set("run").MustRunner(runCmd, &RunFlags{})
	cmdSet.Set("verify").MustRunner(verifyCmd, &CommonFlags{})
	cmdSet.Set("length").MustRunner(lengthCmd, &CommonFlags{})
	cmdSet.Set("fit").MustRunner(fitCmd, &CommonFlags{})
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (rf *RunFlags) config(ctx context.Context) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	cfg.MinInputSize = rf.MinInputSize
	cfg.MaxInputSize = rf.MaxInputSize
	cfg.TrialsPerBatch = rf.Trials
	cfg.ResultsDir = rf.ResultsDir
	cfg.FilePrefix = rf.FilePrefix
	cfg.Runs = rf.Runs
	cfg.WarmupRuns = rf.WarmupRuns
	cfg.Input = rf.Input
	cfg.Seed = uint64(rf.Seed)
	if len(rf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, rf.Config, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func runCmd(ctx context.Context, values any, _ []string) error {
	rf := values.(*RunFlags)
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	ctx, closeLogger, err := rf.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closeLogger()

	cfg, err := rf.config(ctx)
	if err != nil {
		return err
	}
	if len(rf.CPUProfile) > 0 {
		save, err := profiling.Start("cpu", rf.CPUProfile)
		if err != nil {
			return err
		}
		defer func() {
			if err := save(); err != nil {
				ctxlog.Logger(ctx).Error("failed to save cpu profile", "file", rf.CPUProfile, "error", err)
			}
		}()
	}

	runner, err := experiment.NewRunner(cfg, experiment.WithProgress(stdout))
	if err != nil {
		return err
	}
	runs := runner.Series(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, run := range experiment.Measured(runs) {
		fit, err := experiment.FitExponent(run.Batches)
		if err != nil {
			ctxlog.Logger(ctx).Info("no growth estimate", "path", run.Path, "error", err)
			continue
		}
		fmt.Fprintf(stdout, "%v: estimated growth exponent %.2f\n", run.Path, fit.Exponent)
	}
	return experiment.Verify(stdout, lcs.Strings)
}

func verifyCmd(ctx context.Context, values any, _ []string) error {
	ctx, closeLogger, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer closeLogger()
	ctxlog.Logger(ctx).Debug("verifying", "pairs", len(experiment.VerificationPairs))
	return experiment.Verify(stdout, lcs.Strings)
}

func lengthCmd(ctx context.Context, values any, args []string) error {
	ctx, closeLogger, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer closeLogger()
	a, b := lcs.Runes(args[0]), lcs.Runes(args[1])
	m := lcs.Find(a, b)
	ctxlog.Logger(ctx).Debug("longest common substring", "a", len(a), "b", len(b), "length", m.Length)
	if m.Length == 0 {
		fmt.Fprintf(stdout, "0\n")
		return nil
	}
	fmt.Fprintf(stdout, "%v: %q at a[%v], b[%v]\n", m.Length, lcs.String(a[m.A:m.A+m.Length]), m.A, m.B)
	return nil
}

func fitCmd(ctx context.Context, values any, args []string) error {
	ctx, closeLogger, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer closeLogger()
	errs := &errors.M{}
	for _, filename := range args {
		fit, err := fitFile(filename)
		if err != nil {
			ctxlog.Logger(ctx).Error("failed to fit results", "file", filename, "error", err)
			errs.Append(err)
			continue
		}
		fmt.Fprintf(stdout, "%v: exponent %.3f, intercept %.3f, %v points\n", filename, fit.Exponent, fit.Intercept, fit.Points)
	}
	return errs.Err()
}

func fitFile(filename string) (experiment.Fit, error) {
	f, err := os.Open(filename)
	if err != nil {
		return experiment.Fit{}, err
	}
	defer f.Close()
	batches, err := experiment.ReadResults(f)
	if err != nil {
		return experiment.Fit{}, fmt.Errorf("%v: %w", filename, err)
	}
	fit, err := experiment.FitExponent(batches)
	if err != nil {
		return experiment.Fit{}, fmt.Errorf("%v: %w", filename, err)
	}
	return fit, nil
}
