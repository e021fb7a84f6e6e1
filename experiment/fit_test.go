// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment_test

import (
	"math"
	"strings"
	"testing"

	"cloudeng.io/lcsbench/experiment"
)

func TestFitExponent(t *testing.T) {
	var batches []experiment.Batch
	for _, n := range experiment.Sizes(1, 1<<10) {
		f := float64(n)
		batches = append(batches, experiment.Batch{Size: n, Average: 7 * f * f * f})
	}
	// Batches without a positive average are ignored.
	batches = append(batches, experiment.Batch{Size: 1 << 11, Average: 0})
	fit, err := experiment.FitExponent(batches)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fit.Exponent, 3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fit.Intercept, math.Log2(7); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fit.Points, 11; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, tc := range [][]experiment.Batch{
		nil,
		{{Size: 4, Average: 10}},
		{{Size: 4, Average: 10}, {Size: 4, Average: 12}},
	} {
		if _, err := experiment.FitExponent(tc); err == nil {
			t.Errorf("%v: expected an error", i)
		}
	}
}

func TestReadResults(t *testing.T) {
	input := `#N           log2(N) AverageTime(ns)
1            0      120.40

2            1      310.00
# trailing comment
4            2      1500.25
`
	batches, err := experiment.ReadResults(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []experiment.Batch{
		{Size: 1, Bucket: 0, Average: 120.4},
		{Size: 2, Bucket: 1, Average: 310},
		{Size: 4, Bucket: 2, Average: 1500.25},
	}
	if got := batches; len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got, want := batches[i], want[i]; got != want {
			t.Errorf("%v: got %+v, want %+v", i, got, want)
		}
	}

	for i, tc := range []struct {
		input, msg string
	}{
		{"1 0", "line 1: expected 3 columns, got 2"},
		{"# header\nx 0 1.0", "line 2: invalid input size"},
		{"1 y 1.0", "line 1: invalid log2 bucket"},
		{"1 0 z", "line 1: invalid average time"},
	} {
		_, err := experiment.ReadResults(strings.NewReader(tc.input))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
	}
}
