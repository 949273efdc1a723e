package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmdRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() with no arguments should fail")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("usage message not printed, got: %s", stderr.String())
	}
}

func TestRunSummarizeMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	err := runSummarize(context.Background(), filepath.Join(t.TempDir(), "no-config.yaml"), missing, "")
	if err == nil {
		t.Fatal("runSummarize() should fail for a missing input file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestOutputInDir(t *testing.T) {
	got := outputInDir("out", filepath.Join("in", "lecture.srt"))
	want := filepath.Join("out", "lecture_summary.txt")
	if got != want {
		t.Errorf("outputInDir() = %q, want %q", got, want)
	}
}
