// SPDX-License-Identifier: MIT
// Package matrix: determinant and trace kernels.
//
// Purpose:
//   - Cofactor expansion along row 0 (reference kernel, O(n!)).
//   - Gaussian elimination with row swaps over reduced fractions (O(n³)).
//   - float64 elimination with partial pivoting, the last resort of Auto.
//   - Diagonal accumulation for the trace.
//
// Determinism:
//   - Fixed loop orders; the first non-zero pivot below the diagonal is used
//     by the exact kernel, the largest |pivot| (first on ties) by the float one.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/harmonic/fraction"
)

// scalar is a determinant or trace as stored on a Matrix. exact is false when
// every fraction kernel overflowed and only the float64 value is known.
type scalar struct {
	frac  fraction.Fraction
	value float64
	exact bool
}

func exactScalar(f fraction.Fraction) scalar {
	return scalar{frac: f, value: f.Value(), exact: true}
}

func inexactScalar(v float64) scalar {
	return scalar{value: v}
}

// determinant dispatches on the strategy for an n×n grid.
//
// Implementation:
//   - Cofactor / Elimination: that kernel only; overflow is returned.
//   - Auto: cofactor with the configured arithmetic (n ≤ CofactorLimit), then
//     elimination over fraction.Reduced, then floatDeterminant. Each step runs
//     only when the previous one failed with fraction.ErrOverflow.
func determinant(g [][]fraction.Fraction, o Options) (scalar, error) {
	var (
		f   fraction.Fraction
		err error
	)
	switch o.strategy {
	case Cofactor:
		if f, err = cofactorDeterminant(g, o.arith); err != nil {
			return scalar{}, err
		}

		return exactScalar(f), nil
	case Elimination:
		if f, err = eliminationDeterminant(g); err != nil {
			return scalar{}, err
		}

		return exactScalar(f), nil
	}

	if o.resolve(len(g)) == Cofactor {
		f, err = cofactorDeterminant(g, o.arith)
		if err == nil {
			return exactScalar(f), nil
		}
		if !errors.Is(err, fraction.ErrOverflow) {
			return scalar{}, err
		}
	}
	f, err = eliminationDeterminant(g)
	if err == nil {
		return exactScalar(f), nil
	}
	if !errors.Is(err, fraction.ErrOverflow) {
		return scalar{}, err
	}

	return inexactScalar(floatDeterminant(g)), nil
}

// cofactorDeterminant expands along row 0.
//
// Implementation:
//   - n == 1: the single cell.
//   - n == 2: a*d − b*c.
//   - n > 2 : Σ_j (−1)^j · g[0][j] · det(minor(g, 0, j)), the sign carried as
//     a ±1/1 fraction and the sum started from 0/1.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Only meant for n ≤ 9.
//
// Notes:
//   - With fraction.Unreduced, integer grids keep denominator 1 throughout;
//     non-unit denominators multiply at every level and may overflow.
func cofactorDeterminant(g [][]fraction.Fraction, ar fraction.Arithmetic) (fraction.Fraction, error) {
	n := len(g)
	switch n {
	case 1:
		return g[0][0], nil
	case 2:
		ad, err := ar.Mul(g[0][0], g[1][1])
		if err != nil {
			return fraction.Fraction{}, err
		}
		bc, err := ar.Mul(g[0][1], g[1][0])
		if err != nil {
			return fraction.Fraction{}, err
		}

		return ar.Sub(ad, bc)
	}

	var (
		acc  = fraction.Zero
		sign = fraction.One
		sub  fraction.Fraction
		term fraction.Fraction
		err  error
	)
	for j := 0; j < n; j++ {
		if sub, err = cofactorDeterminant(minor(g, 0, j), ar); err != nil {
			return fraction.Fraction{}, err
		}
		if term, err = ar.Mul(sign, g[0][j]); err != nil {
			return fraction.Fraction{}, err
		}
		if term, err = ar.Mul(term, sub); err != nil {
			return fraction.Fraction{}, err
		}
		if acc, err = ar.Add(acc, term); err != nil {
			return fraction.Fraction{}, err
		}
		sign = fraction.FromInt(-sign.Num())
	}

	return acc, nil
}

// minor returns a fresh grid with the given row and column removed.
// Complexity: O(n²).
func minor(g [][]fraction.Fraction, row, col int) [][]fraction.Fraction {
	out := make([][]fraction.Fraction, 0, len(g)-1)
	for i, r := range g {
		if i == row {
			continue
		}
		next := make([]fraction.Fraction, 0, len(r)-1)
		next = append(next, r[:col]...)
		next = append(next, r[col+1:]...)
		out = append(out, next)
	}

	return out
}

// eliminationDeterminant reduces a copy of g to upper-triangular form and
// multiplies the pivots.
//
// Implementation:
//   - Stage 1: for each column k pick the first row p ≥ k with g[p][k] ≠ 0;
//     none ⇒ the determinant is 0.
//   - Stage 2: swap rows p and k (flipping the sign), fold the pivot into det.
//   - Stage 3: eliminate below the pivot with factor g[i][k]/g[k][k].
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Always runs on fraction.Reduced: intermediate values are true
//     rationals and would overflow quickly without reduction.
func eliminationDeterminant(g [][]fraction.Fraction) (fraction.Fraction, error) {
	ar := fraction.Reduced
	n := len(g)
	a := make([][]fraction.Fraction, n)
	for i := range g {
		a[i] = append([]fraction.Fraction(nil), g[i]...)
	}

	det := fraction.One
	var (
		i, j, k, p int
		f, t       fraction.Fraction
		err        error
	)
	for k = 0; k < n; k++ {
		for p = k; p < n && a[p][k].IsZero(); p++ {
		}
		if p == n {
			return fraction.Zero, nil
		}
		if p != k {
			a[k], a[p] = a[p], a[k]
			if det, err = ar.Mul(det, fraction.MinusOne); err != nil {
				return fraction.Fraction{}, err
			}
		}
		if det, err = ar.Mul(det, a[k][k]); err != nil {
			return fraction.Fraction{}, err
		}
		for i = k + 1; i < n; i++ {
			if a[i][k].IsZero() {
				continue
			}
			if f, err = ar.Div(a[i][k], a[k][k]); err != nil {
				return fraction.Fraction{}, err
			}
			for j = k; j < n; j++ {
				if t, err = ar.Mul(f, a[k][j]); err != nil {
					return fraction.Fraction{}, err
				}
				if a[i][j], err = ar.Sub(a[i][j], t); err != nil {
					return fraction.Fraction{}, err
				}
			}
		}
	}

	return det, nil
}

// machineEpsilon is the float64 unit roundoff step (2^-52).
const machineEpsilon = 0x1p-52

// floatDeterminant runs Gaussian elimination with partial pivoting on the
// float64 values of g.
//
// Implementation:
//   - Stage 1: copy cell values into a dense row-major buffer.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |a[p][k]|;
//     a pivot not above n·eps·max|a| means the grid is numerically singular.
//   - Stage 3: swap rows (flip sign), fold the pivot, eliminate below it.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func floatDeterminant(g [][]fraction.Fraction) float64 {
	n := len(g)
	a := make([]float64, n*n)
	var (
		i, j, k, p int
		maxAbs     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*n+j] = g[i][j].Value()
			maxAbs = math.Max(maxAbs, math.Abs(a[i*n+j]))
		}
	}
	tol := float64(n) * machineEpsilon * maxAbs

	det := 1.0
	var pivot, f float64
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		pivot = a[p*n+k]
		if math.Abs(pivot) <= tol {
			return 0
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= pivot
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			for j = k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det
}

// trace sums the diagonal of a square m. Auto retries an overflowing
// accumulation over fraction.Reduced and finally in float64; explicit
// strategies return the overflow.
func trace(m *Matrix, o Options) (scalar, error) {
	f, err := diagonalSum(m, o.arith)
	if err == nil {
		return exactScalar(f), nil
	}
	if o.strategy != Auto || !errors.Is(err, fraction.ErrOverflow) {
		return scalar{}, err
	}
	if f, err = diagonalSum(m, fraction.Reduced); err == nil {
		return exactScalar(f), nil
	}

	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i].Value()
	}

	return inexactScalar(sum), nil
}

// diagonalSum adds m[i][i] for i in 0..n-1 starting from 0/1.
func diagonalSum(m *Matrix, ar fraction.Arithmetic) (fraction.Fraction, error) {
	acc := fraction.Zero
	var err error
	for i := 0; i < m.r && i < m.c; i++ {
		if acc, err = ar.Add(acc, m.data[i*m.c+i]); err != nil {
			return fraction.Fraction{}, fmt.Errorf("diagonal %d: %w", i, err)
		}
	}

	return acc, nil
}
