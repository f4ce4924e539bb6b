// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from a literal grid or fails the test.
func mustMatrix(t testing.TB, data [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(len(data), len(data[0]), data, opts...)
	require.NoError(t, err)

	return m
}

// mustDet returns the determinant of a square matrix or fails the test.
func mustDet(t testing.TB, m *matrix.Matrix) fraction.Fraction {
	t.Helper()
	d, err := m.Determinant()
	require.NoError(t, err)

	return d
}

// uniform returns an n×n grid whose diagonal holds diag and whose other
// cells hold off.
func uniform(n int, diag, off fraction.Fraction) [][]fraction.Fraction {
	g := make([][]fraction.Fraction, n)
	for i := range g {
		g[i] = make([]fraction.Fraction, n)
		for j := range g[i] {
			if i == j {
				g[i][j] = diag
			} else {
				g[i][j] = off
			}
		}
	}

	return g
}
