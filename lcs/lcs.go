// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lcs provides a brute-force implementation of the longest common
// substring algorithm. Unlike a longest common subsequence, the elements
// of a common substring must be contiguous in both inputs. The
// implementation is the naive O(n²·m) one and is intended for measuring
// and demonstrating that growth rather than for production use.
package lcs

import "unicode/utf8"

// Match represents the longest common substring found in a pair of
// inputs. A and B are the offsets of the match in the first and second
// input respectively and are only meaningful when Length is non-zero.
type Match struct {
	A, B   int
	Length int
}

// Find returns the first longest common substring of a and b. Every pair
// of start offsets (i, j) is considered in row-major order and the match
// starting at each is extended until the first mismatching element. When
// more than one match of maximal length exists, the offsets of the first
// one encountered are returned.
func Find[T comparable](a, b []T) Match {
	var m Match
	for i := range a {
		for j := range b {
			limit := min(len(a)-i, len(b)-j)
			for k := 0; k < limit; k++ {
				if a[i+k] != b[j+k] {
					break
				}
				if k >= m.Length {
					m = Match{A: i, B: j, Length: k + 1}
				}
			}
		}
	}
	return m
}

// Length returns the length of the longest common substring of a and b.
func Length[T comparable](a, b []T) int {
	return Find(a, b).Length
}

// Strings returns the length of the longest common substring of a and b
// measured in runes. Invalid UTF-8 bytes are compared as described for
// Runes.
func Strings(a, b string) int {
	return Length(Runes(a), Runes(b))
}

// Runes decodes s into runes. Unlike a []rune conversion, which maps
// every invalid UTF-8 byte to utf8.RuneError, each invalid byte b is
// represented by the negative value -1-b so that it only ever equals
// the same invalid byte. String reverses the encoding.
func Runes(s string) []rune {
	r := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && n <= 1 {
			c = -1 - rune(s[i])
			n = 1
		}
		r = append(r, c)
		i += n
	}
	return r
}

// String returns the string encoded by r as returned by Runes.
func String(r []rune) string {
	b := make([]byte, 0, len(r))
	for _, c := range r {
		if c < 0 {
			b = append(b, byte(-1-c))
			continue
		}
		b = utf8.AppendRune(b, c)
	}
	return string(b)
}

// Bytes returns the length of the longest common substring of a and b
// measured in bytes.
func Bytes(a, b []byte) int {
	return Length(a, b)
}
