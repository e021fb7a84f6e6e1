// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cputime provides access to the CPU time consumed by the calling
// OS thread along with a simple stopwatch built on top of it. On platforms
// where a per-thread CPU clock is not available a monotonic wall clock is
// used instead and Source reports "wall".
//
// Goroutines may be rescheduled onto a different OS thread at any time and
// hence callers that require per-thread measurements must use
// runtime.LockOSThread for the duration of the measurement.
package cputime

import "time"

const (
	// ThreadCPU is the Source of a per-thread CPU clock.
	ThreadCPU = "thread-cpu"
	// Wall is the Source of the monotonic wall clock fallback.
	Wall = "wall"
)

// Clock represents a source of elapsed time.
type Clock interface {
	Now() time.Duration
}

// ClockFunc allows a function to be used as a Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration {
	return f()
}

type threadClock struct{}

// Now implements Clock.
func (threadClock) Now() time.Duration {
	return Now()
}

// Thread returns a Clock that reports the CPU time of the calling thread.
func Thread() Clock {
	return threadClock{}
}

// Now returns the CPU time consumed so far by the calling thread, or the
// time elapsed since the process started if a per-thread clock is not
// available.
func Now() time.Duration {
	return now()
}

// Source returns ThreadCPU or Wall according to the clock used by Now.
func Source() string {
	return source
}

var processStart = time.Now()

func wallNow() time.Duration {
	return time.Since(processStart)
}

// Stopwatch measures the time elapsed on a Clock since it was last started.
type Stopwatch struct {
	clock Clock
	start time.Duration
}

// NewStopwatch returns a Stopwatch using the supplied clock, which
// defaults to Thread if nil. The returned Stopwatch is already started.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = Thread()
	}
	sw := &Stopwatch{clock: clock}
	sw.Start()
	return sw
}

// Start (re)starts the stopwatch.
func (sw *Stopwatch) Start() {
	sw.start = sw.clock.Now()
}

// Elapsed returns the time elapsed since the last call to Start. It never
// returns a negative value.
func (sw *Stopwatch) Elapsed() time.Duration {
	if d := sw.clock.Now() - sw.start; d > 0 {
		return d
	}
	return 0
}
