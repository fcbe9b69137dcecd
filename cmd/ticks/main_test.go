// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-ticks/scale"
	"github.com/aclements/go-ticks/ticker"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func runTicks(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(args...)
	require.NoError(t, err)
	return out
}

func TestDefault(t *testing.T) {
	out := runTicks(t, "0", "1.39")
	assert.Contains(t, out, "0\t0.0\n")
	assert.Contains(t, out, "\t1.4\n")
	assert.Contains(t, out, "8 major, 0 minor ticks")
	assert.NotContains(t, out, "offset")

	out = runTicks(t, "--minor", "0", "1.39")
	assert.Contains(t, out, "minor\n")
	assert.Contains(t, out, "8 major, 21 minor ticks")
}

func TestOffset(t *testing.T) {
	out := runTicks(t, "12341", "12349")
	assert.Contains(t, out, "offset")
	assert.Contains(t, out, "+1.234e4")
	assert.Contains(t, out, "\t5\n")
}

func TestLocators(t *testing.T) {
	out := runTicks(t, "--locator=multiple", "--base=0.5", "0", "2")
	assert.Contains(t, out, "\t1.5\n")

	out = runTicks(t, "--locator=linear", "--numticks=3", "0", "10")
	assert.Contains(t, out, "\t5\n")
	assert.Contains(t, out, "3 major")

	out = runTicks(t, "--locator=fixed", "--locs=1,2,3", "--formatter=null", "0", "4")
	assert.Contains(t, out, "2\t\n")
	assert.Contains(t, out, "3 major")

	out = runTicks(t, "--locator=maxn", "--nbins=2", "--integer", "0", "10")
	assert.Contains(t, out, "\t5\n")

	out = runTicks(t, "--locator=log", "--formatter=logsci", "--minor", "1", "1000")
	assert.Contains(t, out, "\t${10^{0}}$\n")
	assert.Contains(t, out, "6 major, 48 minor ticks")

	out = runTicks(t, "--locator=null", "0", "1")
	assert.Contains(t, out, "0 major, 0 minor ticks")
}

func TestFormatters(t *testing.T) {
	out := runTicks(t, "--formatter=percent", "--xmax=1", "0", "1")
	assert.Contains(t, out, "\t40%\n")

	out = runTicks(t, "--formatter=eng", "--unit=Hz", "0", "5000")
	assert.Contains(t, out, "\t2 kHz\n")

	out = runTicks(t, "--formatter=printf", "--format=%.2f", "0", "1")
	assert.Contains(t, out, "\t0.40\n")

	out = runTicks(t, "--formatter=format", "--format={pos}:{x:.1f}", "0", "1")
	assert.Contains(t, out, "\t0:0.0\n")
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--locator=bogus", "0", "1"},
		{"--formatter=bogus", "0", "1"},
		{"--prune=middle", "0", "1"},
		{"--formatter=printf", "--format=%d %d", "0", "1"},
		{"0", "one"},
		{"0"},
	} {
		_, err := execute(args...)
		assert.Error(t, err, "%v", args)
	}

	_, err := execute("--locator=log", "--", "-1", "10")
	var de *ticker.DomainError
	assert.True(t, errors.As(err, &de), "got %v", err)
}

func TestRuler(t *testing.T) {
	s := scale.NewLinear([]float64{0, 10})
	ticks := []ticker.Tick{
		{Value: 0, Label: "0"},
		{Value: 5, Label: "5"},
		{Value: 10, Label: "10"},
		{Value: 2.5, Minor: true},
		{Value: 12, Label: "12"},
	}
	line, labels := ruler(s, 11, ticks)
	assert.Equal(t, "┼──┴─┼────┼", line)
	assert.Equal(t, "0    5   10", labels)

	line, labels = ruler(s, 5, []ticker.Tick{{Value: 0, Label: "100"}, {Value: 10, Label: "200"}})
	assert.Equal(t, "┼───┼", line)
	assert.Equal(t, "100", labels)
}

func TestRulerFlag(t *testing.T) {
	out := runTicks(t, "--ruler=41", "0", "10")
	assert.Contains(t, out, "┼")
	assert.Contains(t, out, "10")

	out = runTicks(t, "--locator=log", "--ruler=31", "1", "1000")
	assert.Contains(t, out, "┼")
}
