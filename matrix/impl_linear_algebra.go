// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels over fraction matrices:
// matrix multiplication and per-cell mapping. Both perform strict fail-fast
// validation and return fresh matrices; operands are never mutated.
//
// Notes:
//   - Results are reconstructed from numeric cell values (see rebuild), so
//     the exact numerator/denominator of intermediate sums is not kept.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/harmonic/fraction"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMap         = "Map"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: C[i][j] = Σ_k A[i][k]·B[k][j], each term and partial sum through
//     A's arithmetic, accumulated from 0/1 in fixed i→j→k order.
//   - Stage 3: rebuild C from cell values with A's options.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - fraction.ErrOverflow from the arithmetic.
//
// Complexity:
//   - Time O(r*n*c) plus the result's determinant, Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ar := a.opts.arith
	rows, inner, cols := a.r, a.c, b.c
	out := make([]fraction.Fraction, rows*cols)
	var (
		i, j, k   int
		acc, term fraction.Fraction
		err       error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = fraction.Zero
			for k = 0; k < inner; k++ {
				if term, err = ar.Mul(a.data[i*inner+k], b.data[k*cols+j]); err != nil {
					return nil, matrixErrorf(opMul, cellErrorf(opMul, i, j, err))
				}
				if acc, err = ar.Add(acc, term); err != nil {
					return nil, matrixErrorf(opMul, cellErrorf(opMul, i, j, err))
				}
			}
			out[i*cols+j] = acc
		}
	}

	res, err := rebuild(rows, cols, out, a.opts)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// Map applies fn to every cell in row-major order and rebuilds the result
// from the mapped values with the receiver's options.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc.
//   - Any error returned by fn, wrapped with the failing coordinates.
//
// Complexity:
//   - Time O(r*c) calls of fn plus the result's determinant.
func (m *Matrix) Map(fn func(fraction.Fraction) (fraction.Fraction, error)) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if fn == nil {
		return nil, matrixErrorf(opMap, ErrNilFunc)
	}

	out := make([]fraction.Fraction, len(m.data))
	var err error
	for k, f := range m.data {
		if out[k], err = fn(f); err != nil {
			return nil, matrixErrorf(opMap, cellErrorf(ctxMap, k/m.c, k%m.c, err))
		}
	}

	res, err := rebuild(m.r, m.c, out, m.opts)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return res, nil
}
