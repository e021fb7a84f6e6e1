// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd)

package cputime

import "time"

var source = Wall

func now() time.Duration {
	return wallNow()
}
