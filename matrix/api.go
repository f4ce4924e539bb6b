// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over New.
//   - Avoid any logic duplication; each facade delegates to the canonical constructor.

package matrix

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) plus the determinant (1/1).
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	return New(n, n, nil, opts...)
}

// NewZeros returns the rows×cols zero matrix.
// Complexity: O(r*c) plus the determinant (0/1 for square shapes).
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewZeros", err)
	}
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}

	return New(rows, cols, data, opts...)
}

// MustNew is New that panics on error. Intended for fixtures and examples
// with literal grids.
func MustNew(rows, cols int, data [][]float64, opts ...Option) *Matrix {
	m, err := New(rows, cols, data, opts...)
	if err != nil {
		panic(err)
	}

	return m
}
