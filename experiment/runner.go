// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package experiment provides a harness for measuring the running time of
// the brute-force longest common substring algorithm over a doubling
// progression of input sizes. For each size a number of trials are run,
// the CPU time consumed by each is measured and the average is written,
// along with the size and floor(log2(size)), to a results file suitable
// for plotting.
package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"cloudeng.io/lcsbench/cputime"
	"cloudeng.io/lcsbench/lcs"
	"cloudeng.io/logging/ctxlog"
)

// Engine computes the length of the longest common substring of a and b.
type Engine func(a, b string) int

// Option represents an option to NewRunner.
type Option func(*options)

type options struct {
	engine   Engine
	clock    cputime.Clock
	progress io.Writer
	gc       func()
	create   func(filename string) (io.WriteCloser, error)
}

// WithEngine sets the function being measured, the default is lcs.Strings.
func WithEngine(engine Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithClock sets the clock used to time each trial, the default is
// cputime.Thread.
func WithClock(clock cputime.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithProgress sets the writer that human readable progress messages are
// written to, the default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// WithGC sets the function called before each batch of trials to request
// a garbage collection, the default is debug.FreeOSMemory.
func WithGC(fn func()) Option {
	return func(o *options) {
		o.gc = fn
	}
}

// WithFileCreator sets the function used to create results files, the
// default creates any missing directories and then calls os.Create.
func WithFileCreator(fn func(filename string) (io.WriteCloser, error)) Option {
	return func(o *options) {
		o.create = fn
	}
}

func createFile(filename string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}
	return os.Create(filename)
}

// Runner runs experiments as per its Config.
type Runner struct {
	cfg  Config
	opts options
	// result of the most recent trial, retained so that the engine call
	// is not optimized away.
	last int
}

// NewRunner returns a new Runner for the supplied configuration.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg: cfg,
		opts: options{
			engine:   lcs.Strings,
			clock:    cputime.Thread(),
			progress: io.Discard,
			gc:       debug.FreeOSMemory,
			create:   createFile,
		},
	}
	for _, fn := range opts {
		fn(&r.opts)
	}
	return r, nil
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// batch runs all of the trials for a single input size. Input generation
// is excluded from the measured time.
func (r *Runner) batch(gen Generator, size int) Batch {
	sw := cputime.NewStopwatch(r.opts.clock)
	var total time.Duration
	for range r.cfg.TrialsPerBatch {
		s := gen(size)
		sw.Start()
		r.last = r.opts.engine(s, s)
		total += sw.Elapsed()
	}
	return newBatch(size, r.cfg.TrialsPerBatch, total)
}

// Run runs the experiment once, writing the results to out. The calling
// goroutine is locked to its OS thread for the duration so that per-thread
// CPU time is measured consistently. The context is checked between input
// sizes, the batches completed so far are returned along with any error.
func (r *Runner) Run(ctx context.Context, out io.Writer) ([]Batch, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	gen, err := NewGenerator(r.cfg.Input, r.cfg.Seed)
	if err != nil {
		return nil, err
	}
	rw := newResultsWriter(out)
	if err := rw.header(); err != nil {
		return nil, fmt.Errorf("failed to write results header: %w", err)
	}
	logger := ctxlog.Logger(ctx)
	var batches []Batch
	for _, size := range Sizes(r.cfg.MinInputSize, r.cfg.MaxInputSize) {
		if err := ctx.Err(); err != nil {
			return batches, err
		}
		fmt.Fprintf(r.opts.progress, "Running test for input size %v ... \n", size)
		r.opts.gc()
		b := r.batch(gen, size)
		if err := rw.write(b); err != nil {
			return batches, fmt.Errorf("failed to write results for input size %v: %w", size, err)
		}
		batches = append(batches, b)
		logger.Debug("batch complete", "size", b.Size, "log2", b.Bucket, "trials", b.Trials, "average_ns", b.Average)
		fmt.Fprintf(r.opts.progress, " ....done.\n")
	}
	return batches, nil
}
