// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *strings.Builder {
	out := &strings.Builder{}
	prev := stdout
	stdout = out
	t.Cleanup(func() { stdout = prev })
	return out
}

func testRunFlags(dir string) *RunFlags {
	return &RunFlags{
		ExperimentFlags: ExperimentFlags{
			MinInputSize: 1,
			MaxInputSize: 64,
			Trials:       2,
			ResultsDir:   dir,
			FilePrefix:   "lcs",
			Runs:         2,
			WarmupRuns:   1,
			Input:        "repeated",
		},
	}
}

func TestRunAndFit(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	ctx := context.Background()
	if err := runCmd(ctx, testRunFlags(dir), nil); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{
		"Running first full experiment...",
		"Running second full experiment...",
		"Running test for input size 64 ... ",
		"----Verification Test----",
		"The LCS is length 8.",
		"estimated growth exponent",
	} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("missing %q in %v", msg, out.String())
		}
	}
	measured := filepath.Join(dir, "lcs-Exp2-SameStrings.txt")
	for _, name := range []string{"lcs-Exp1-ThrowAway-SameStrings.txt", measured} {
		if _, err := os.Stat(filepath.Join(dir, filepath.Base(name))); err != nil {
			t.Errorf("missing results file: %v", err)
		}
	}

	out.Reset()
	if err := fitCmd(ctx, &CommonFlags{}, []string{measured}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), measured+": exponent ") {
		t.Errorf("unexpected output: %v", out.String())
	}

	if err := fitCmd(ctx, &CommonFlags{}, []string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	yamlConfig := `max_input_size: 16
trials_per_batch: 1
input: random
seed: 7
`
	if err := os.WriteFile(cfgFile, []byte(yamlConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	rf := testRunFlags(dir)
	rf.Config = cfgFile
	cfg, err := rf.config(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.MaxInputSize, 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.TrialsPerBatch, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Input, "random"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Seed, uint64(7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Values not in the file are taken from the flags.
	if got, want := cfg.FilePrefix, "lcs"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	rf = testRunFlags(dir)
	rf.Config = filepath.Join(dir, "missing.yaml")
	if _, err := rf.config(context.Background()); err == nil {
		t.Errorf("expected an error")
	}

	rf = testRunFlags(dir)
	rf.Trials = 0
	if _, err := rf.config(context.Background()); err == nil {
		t.Errorf("expected an error")
	}
}

func TestVerifyAndLength(t *testing.T) {
	out := captureStdout(t)
	ctx := context.Background()
	if err := verifyCmd(ctx, &CommonFlags{}, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "The LCS is length 5.\nThe LCS is length 8.\nThe LCS is length 5.\n") {
		t.Errorf("unexpected output: %v", out.String())
	}

	for i, tc := range []struct {
		a, b, output string
	}{
		{"lmnAAAAAopq", "abAAAAAAAcd", "5: \"AAAAA\" at a[3], b[2]\n"},
		{"日本語", "本語de", "2: \"本語\" at a[1], b[0]\n"},
		{"abc", "xyz", "0\n"},
		{"x\xff\xfey", "\xc0\xc1", "0\n"},
		{"a\xffb", "\xffbc", "2: \"\\xffb\" at a[1], b[0]\n"},
	} {
		out.Reset()
		if err := lengthCmd(ctx, &CommonFlags{}, []string{tc.a, tc.b}); err != nil {
			t.Fatal(err)
		}
		if got, want := out.String(), tc.output; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}

func TestLoggingFlags(t *testing.T) {
	captureStdout(t)
	ctx := context.Background()
	dir := t.TempDir()
	logFile := filepath.Join(dir, "lcsbench.log")
	cf := &CommonFlags{}
	cf.Level, cf.File, cf.Format = 3, logFile, "json"
	if err := verifyCmd(ctx, cf, nil); err != nil {
		t.Fatal(err)
	}
	if err := lengthCmd(ctx, cf, []string{"abc", "bcd"}); err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{`"msg":"verifying"`, `"msg":"longest common substring"`, `"length":2`} {
		if !strings.Contains(string(buf), msg) {
			t.Errorf("missing %q in %s", msg, buf)
		}
	}

	cf.File = filepath.Join(dir, "missing", "lcsbench.log")
	if err := verifyCmd(ctx, cf, nil); err == nil {
		t.Errorf("expected an error")
	}
	if err := lengthCmd(ctx, cf, []string{"abc", "bcd"}); err == nil {
		t.Errorf("expected an error")
	}
}
