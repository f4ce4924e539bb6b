// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/harmonic/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_PanicOnNonsense verifies constructor-time validation.
func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { matrix.WithArithmetic(nil) })
	assert.Panics(t, func() { matrix.WithDeterminant(matrix.Strategy(42)) })
	assert.NotPanics(t, func() { matrix.WithDeterminant(matrix.Elimination) })
}

// TestParseStrategy round-trips String and accepts the empty default.
func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range []matrix.Strategy{matrix.Auto, matrix.Cofactor, matrix.Elimination} {
		got, err := matrix.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := matrix.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, matrix.Auto, got)

	_, err = matrix.ParseStrategy("laplace")
	require.Error(t, err)
	assert.Equal(t, "Strategy(9)", matrix.Strategy(9).String())
}
