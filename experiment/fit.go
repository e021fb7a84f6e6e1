// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"
	"math"
)

// Fit represents a least-squares fit of log2(average time) against
// log2(input size). Exponent is the slope of that line and hence the
// empirical growth rate, ie. an O(n^3) algorithm should have an
// Exponent close to 3.
type Fit struct {
	Exponent  float64
	Intercept float64
	Points    int
}

// FitExponent fits the batches that have a positive average time. At
// least two distinct input sizes are required.
func FitExponent(batches []Batch) (Fit, error) {
	var n, sx, sy, sxx, sxy float64
	for _, b := range batches {
		if b.Size < 1 || !(b.Average > 0) {
			continue
		}
		x, y := math.Log2(float64(b.Size)), math.Log2(b.Average)
		n++
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	if n < 2 {
		return Fit{}, fmt.Errorf("at least two batches with a positive average time are required, got %v", n)
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return Fit{}, fmt.Errorf("all batches have the same input size")
	}
	slope := (n*sxy - sx*sy) / denom
	return Fit{
		Exponent:  slope,
		Intercept: (sy - slope*sx) / n,
		Points:    int(n),
	}, nil
}
