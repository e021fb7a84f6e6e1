// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Generator returns the test input for a given input size.
type Generator func(size int) string

// Repeated returns a string consisting of size+1 copies of 'A'.
func Repeated(size int) string {
	return strings.Repeat("A", size+1)
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"abcdefghijklmnopqrstuvwxyz"

// Random returns a Generator that creates strings of size alphanumeric
// characters drawn from a PCG source with the given seed.
func Random(seed uint64) Generator {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(size int) string {
		out := make([]byte, size)
		for i := range out {
			out[i] = alphanumeric[rnd.IntN(len(alphanumeric))]
		}
		return string(out)
	}
}

// NewGenerator returns the Generator for the specified input kind.
func NewGenerator(kind string, seed uint64) (Generator, error) {
	switch kind {
	case RepeatedInput:
		return Repeated, nil
	case RandomInput:
		return Random(seed), nil
	}
	return nil, fmt.Errorf("unsupported input kind: %q", kind)
}
