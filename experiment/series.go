// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"context"
	"fmt"
	"path/filepath"

	"cloudeng.io/lcsbench/cputime"
	"cloudeng.io/logging/ctxlog"
	"github.com/google/uuid"
)

// Run represents a single end-to-end run of an experiment.
type Run struct {
	ID      string
	Path    string
	Warmup  bool
	Batches []Batch
	// Err is set if the run could not be completed. A run whose results
	// file could not be created has no batches.
	Err error
}

var ordinals = []string{"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth"}

func ordinal(i int) string {
	if i >= 1 && i <= len(ordinals) {
		return ordinals[i-1]
	}
	return fmt.Sprintf("%dth", i)
}

// Filename returns the name of the results file for the i'th run (starting
// at 1). Warmup runs are marked as ThrowAway.
func (r *Runner) Filename(i int) string {
	kind := "SameStrings"
	if r.cfg.Input == RandomInput {
		kind = "RandomStrings"
	}
	if i <= r.cfg.WarmupRuns {
		return fmt.Sprintf("%s-Exp%d-ThrowAway-%s.txt", r.cfg.FilePrefix, i, kind)
	}
	return fmt.Sprintf("%s-Exp%d-%s.txt", r.cfg.FilePrefix, i, kind)
}

// Series runs the experiment Config.Runs times, writing each run's results
// to its own file in Config.ResultsDir. A run whose results file cannot be
// created is logged and skipped without affecting the others. The series
// stops early only if the context is canceled.
func (r *Runner) Series(ctx context.Context) []Run {
	runs := make([]Run, 0, r.cfg.Runs)
	for i := 1; i <= r.cfg.Runs; i++ {
		fmt.Fprintf(r.opts.progress, "Running %s full experiment...\n", ordinal(i))
		run := r.runOne(ctx, i)
		runs = append(runs, run)
		if ctx.Err() != nil {
			break
		}
	}
	return runs
}

func (r *Runner) runOne(ctx context.Context, i int) (run Run) {
	run = Run{
		ID:     uuid.NewString(),
		Path:   filepath.Join(r.cfg.ResultsDir, r.Filename(i)),
		Warmup: i <= r.cfg.WarmupRuns,
	}
	ctx = ctxlog.WithAttributes(ctx, "run", run.ID, "path", run.Path, "warmup", run.Warmup)
	logger := ctxlog.Logger(ctx)
	f, err := r.opts.create(run.Path)
	if err != nil {
		logger.Error("failed to create results file", "error", err)
		fmt.Fprintf(r.opts.progress, "failed to create results file %v: %v\n", run.Path, err)
		run.Err = fmt.Errorf("failed to create results file %v: %w", run.Path, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil && run.Err == nil {
			run.Err = fmt.Errorf("failed to close results file %v: %w", run.Path, err)
		}
	}()
	logger.Info("experiment started", "sizes", len(Sizes(r.cfg.MinInputSize, r.cfg.MaxInputSize)), "trials", r.cfg.TrialsPerBatch, "clock", cputime.Source())
	run.Batches, run.Err = r.Run(ctx, f)
	if run.Err != nil {
		logger.Error("experiment failed", "error", run.Err, "completed", len(run.Batches))
		return
	}
	logger.Info("experiment complete", "completed", len(run.Batches))
	return
}

// Measured returns the runs that completed and are not warmups.
func Measured(runs []Run) []Run {
	var out []Run
	for _, r := range runs {
		if r.Warmup || r.Err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}
