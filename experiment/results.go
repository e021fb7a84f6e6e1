// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Batch represents the results of all of the trials for a single input size.
type Batch struct {
	Size    int
	Bucket  int
	Trials  int
	Total   time.Duration
	Average float64 // nanoseconds per trial.
}

func newBatch(size, trials int, total time.Duration) Batch {
	return Batch{
		Size:    size,
		Bucket:  Log2Bucket(size),
		Trials:  trials,
		Total:   total,
		Average: float64(total) / float64(trials),
	}
}

// Header is the first line of every results file. The leading # marks
// it as a comment for plotting tools such as gnuplot.
const Header = "#N           log2(N) AverageTime(ns)"

// resultsWriter writes a header followed by one line per batch, flushing
// after every line so that partial results survive an interrupted run.
type resultsWriter struct {
	w *bufio.Writer
}

func newResultsWriter(w io.Writer) *resultsWriter {
	return &resultsWriter{w: bufio.NewWriter(w)}
}

func (rw *resultsWriter) header() error {
	if _, err := fmt.Fprintln(rw.w, Header); err != nil {
		return err
	}
	return rw.w.Flush()
}

func (rw *resultsWriter) write(b Batch) error {
	if _, err := fmt.Fprintf(rw.w, "%-12d %-6d %-15.2f \n", b.Size, b.Bucket, b.Average); err != nil {
		return err
	}
	return rw.w.Flush()
}

// ReadResults parses the contents of a results file. Blank lines and
// lines starting with # are ignored. Only the Size, Bucket and Average
// fields of the returned batches are set.
func ReadResults(rd io.Reader) ([]Batch, error) {
	var batches []Batch
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %v: expected 3 columns, got %v", line, len(fields))
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid input size: %w", line, err)
		}
		bucket, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid log2 bucket: %w", line, err)
		}
		avg, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid average time: %w", line, err)
		}
		batches = append(batches, Batch{Size: size, Bucket: bucket, Average: avg})
	}
	return batches, sc.Err()
}
