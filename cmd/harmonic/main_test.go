// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/harmonic/digit"
	"github.com/katalvlaran/harmonic/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, &out, &errOut)

	return out.String(), errOut.String(), err
}

// TestRun_Digits prints the summary table, optionally in parallel.
func TestRun_Digits(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"digits"}, {"digits", "-concurrent", "-show"}} {
		out, _, err := runCmd(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Determinant")
		assert.Contains(t, out, "-675207/1")
		assert.Contains(t, out, "785457/1")
		assert.NotContains(t, out, "NO")
	}

	out, _, err := runCmd(t, "digits", "-show")
	require.NoError(t, err)
	assert.Contains(t, out, "Digit 9\nHarmonic Matrix (9×9)\n")
}

// TestRun_Analyze prints the summary, transitions and complete matrix.
func TestRun_Analyze(t *testing.T) {
	t.Parallel()

	out, _, err := runCmd(t, "analyze", "0 → 1 | 3 → 8 | 6 → 1")
	require.NoError(t, err)
	assert.Contains(t, out, "transitions=3 windows=1 singular=1 complete_det=0/1 vortex=true")
	assert.Contains(t, out, "-61/1")
	assert.Contains(t, out, "Vortex: YES")
	assert.Contains(t, out, "Harmonic Matrix (9×9)\nDeterminant: 0/1 (0)\nTrace: 36/1 (36)\nHarmonic: NO\n")

	_, errOut, err := runCmd(t, "analyze")
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, errOut, "usage: harmonic analyze")
}

// TestRun_Transform applies a registry pipeline to a digit matrix.
func TestRun_Transform(t *testing.T) {
	t.Parallel()

	out, _, err := runCmd(t, "transform", "-pipeline", "double,square", "-digit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Pipeline: double,square\n")
	assert.Contains(t, out, "Determinant: 262144/1 (262144)\n")
	assert.Contains(t, out, "Trace: 36/1 (36)\n")

	out, _, err = runCmd(t, "transform", "-pipeline", "half", "-digit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Determinant: -675207/512 (-1318.763671875)\n")
	assert.Contains(t, out, "Trace: 4500000000/1000000000 (4.5)\n")
	assert.Contains(t, out, "Harmonic: YES\n")

	out, _, err = runCmd(t, "transform", "-pipeline", "scale432", "-digit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Determinant: inexact (-")
	assert.Contains(t, out, "Trace: 3888/1 (3888)\n")

	_, _, err = runCmd(t, "transform", "-pipeline", "cube")
	require.ErrorIs(t, err, transform.ErrUnknownTransform)
	_, _, err = runCmd(t, "transform", "-digit", "12")
	require.ErrorIs(t, err, digit.ErrDigitOutOfRange)
}

// TestRun_Multiply multiplies two digit matrices.
func TestRun_Multiply(t *testing.T) {
	t.Parallel()

	out, _, err := runCmd(t, "multiply", "-digit", "1", "-with", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Digit 1 × Digit 2\n")
	assert.Contains(t, out, "Determinant: 4645683439488/1 (4645683439488)\n")

	out, _, err = runCmd(t, "multiply")
	require.NoError(t, err)
	assert.Contains(t, out, "Determinant: -675207/1 (-675207)\n")

	_, _, err = runCmd(t, "multiply", "-with", "-1")
	require.ErrorIs(t, err, digit.ErrDigitOutOfRange)
}

// TestRun_Config loads a file and prints the effective settings.
func TestRun_Config(t *testing.T) {
	t.Parallel()

	out, _, err := runCmd(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "multiplier: 432")
	assert.Contains(t, out, "arithmetic: unreduced")

	path := filepath.Join(t.TempDir(), "harmonic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arithmetic: reduced\nmultiplier: 3\nlog:\n  level: error\n"), 0o600))
	out, _, err = runCmd(t, "-config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "arithmetic: reduced")
	assert.Contains(t, out, "multiplier: 3")

	out, _, err = runCmd(t, "-config", path, "transform", "-pipeline", "scale3", "-digit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Determinant: 19683/1 (19683)\n")

	_, _, err = runCmd(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_Usage rejects missing and unknown commands.
func TestRun_Usage(t *testing.T) {
	t.Parallel()

	_, errOut, err := runCmd(t)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, errOut, "usage: harmonic")

	_, errOut, err = runCmd(t, "frobnicate")
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)

	_, _, err = runCmd(t, "digits", "-nope")
	require.ErrorIs(t, err, errUsage)
}
