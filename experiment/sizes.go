// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import "math/bits"

// Sizes returns the doubling progression lo, 2*lo, 4*lo... up to and
// including hi. It returns nil if lo is less than 1.
func Sizes(lo, hi int) []int {
	if lo < 1 {
		return nil
	}
	var sizes []int
	for n := lo; n <= hi; n *= 2 {
		sizes = append(sizes, n)
		if n > hi/2 {
			break
		}
	}
	return sizes
}

// Log2Bucket returns floor(log2(n)) for n >= 1 and 0 otherwise.
func Log2Bucket(n int) int {
	if n < 1 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
