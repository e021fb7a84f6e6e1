// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"
	"io"

	"cloudeng.io/errors"
)

// Pair represents a pair of inputs and the expected length of their
// longest common substring.
type Pair struct {
	A, B string
	Want int
}

// VerificationPairs are the inputs used by Verify.
var VerificationPairs = []Pair{
	{"lmnAAAAAopq", "abAAAAAAAcd", 5},
	{"AAAAAAAA", "AAAAAAAA", 8},
	{"abcdefghAAAAAAAAijklmnopqrstuvwxyz", "rlstneAAAAA123456", 5},
}

// Verify runs engine on each of the VerificationPairs and prints the
// results to out for manual inspection. It returns an error for every
// pair whose result differs from that expected.
func Verify(out io.Writer, engine Engine) error {
	fmt.Fprintf(out, "\n----Verification Test----\n")
	fmt.Fprintf(out, "The expected outputs are ")
	for i, p := range VerificationPairs {
		switch {
		case i == len(VerificationPairs)-1:
			fmt.Fprintf(out, "and %v.\n", p.Want)
		default:
			fmt.Fprintf(out, "%v, ", p.Want)
		}
	}
	errs := &errors.M{}
	for _, p := range VerificationPairs {
		got := engine(p.A, p.B)
		fmt.Fprintf(out, "The LCS is length %v.\n", got)
		if got != p.Want {
			errs.Append(fmt.Errorf("%q, %q: got %v, want %v", p.A, p.B, got, p.Want))
		}
	}
	return errs.Err()
}
