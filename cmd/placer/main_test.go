package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `chip um 3 3
n0 11 12
n1 12 13
n2 13 14 15
n3 15 11
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	return path
}

func TestRun_Primary(t *testing.T) {
	path := writeSample(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-sweep=false", "-verify", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Running simulated annealing with cooling rate: 0.95")
	assert.Contains(t, out, "Initial Placement (Cooling rate: 0.95):")
	assert.Contains(t, out, "Initial total wire length:")
	assert.Contains(t, out, "Final Placement (Cooling rate: 0.95):")
	assert.Contains(t, out, "Final total wire length:")
	assert.Contains(t, out, "Execution time:")
	assert.Contains(t, out, "--", "empty sites use the placeholder")
	assert.Contains(t, out, "13", "cells are labelled with their identifiers")
	assert.NotContains(t, out, "Cooling rate sweep:")
}

func TestRun_SweepAndOutputs(t *testing.T) {
	path := writeSample(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	args := []string{
		"-rates", "0.8, 0.9",
		"-seeds", "2",
		"-workers", "2",
		"-plots", filepath.Join(dir, "plots"),
		"-csv", filepath.Join(dir, "csv"),
		"-gif", filepath.Join(dir, "run.gif"),
		"-frames", filepath.Join(dir, "frames"),
		"-every", "50",
		path,
	}
	code := run(context.Background(), args, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Cooling rate sweep:")
	assert.Contains(t, out, "rate 0.8")
	assert.Contains(t, out, "rate 0.9")
	assert.Contains(t, out, "Best cooling rate:")
	assert.Contains(t, out, "Seed study (2 seeds per rate):")

	for _, f := range []string{
		"plots/trajectory_0.95.png",
		"plots/sweep.png",
		"csv/trajectory_0.95.csv",
		"csv/sweep.csv",
		"csv/study.csv",
		"run.gif",
		"frames/step_0000.png",
	} {
		assert.FileExists(t, filepath.Join(dir, f))
	}

	data, err := os.ReadFile(filepath.Join(dir, "csv", "sweep.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 3)
}

func TestRun_Errors(t *testing.T) {
	path := writeSample(t)
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"no arguments", nil, exitUsage},
		{"two arguments", []string{path, path}, exitUsage},
		{"bad rates", []string{"-rates", "0.8,x", path}, exitUsage},
		{"bad style", []string{"-style", "fancy", path}, exitUsage},
		{"unknown flag", []string{"-nope", path}, exitUsage},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt")}, exitError},
		{"bad cooling rate", []string{"-rate", "1.5", path}, exitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tc.code, run(context.Background(), tc.args, &stdout, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitOK, run(context.Background(), []string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: placer")
}

func TestRun_FailedSweepPointIsReported(t *testing.T) {
	path := writeSample(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-rates", "0.8,1.2", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "rate 1.2    failed")
	assert.Contains(t, stderr.String(), "sweep run failed")
}

func TestRun_OccupancyStyle(t *testing.T) {
	path := writeSample(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-sweep=false", "-style", "occupancy", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.NotContains(t, stdout.String(), "--")
	assert.Regexp(t, `(?m)^[01] [01] [01]$`, stdout.String())
}
