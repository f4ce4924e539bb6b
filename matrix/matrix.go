// SPDX-License-Identifier: MIT

// Package matrix - immutable row-major storage & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of fractions with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Compute determinant and trace exactly once, at construction.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/FromFractions: O(r*c) + determinant; At: O(1); Data/Values: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/harmonic/fraction"
)

// ---------- error context tags ----------

const (
	ctxNew           = "New"
	ctxFromFractions = "FromFractions"
	ctxAt            = "At"
	ctxRow           = "Row"
	ctxMap           = "Map"
	ctxRebuild       = "rebuild"
)

// cellErrorf wraps an error with a uniform Matrix context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an immutable rows×cols grid of fractions.
//   - r,c hold dimensions (both > 0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - det/trace are valid only when r == c; either may hold only a float64
//     value when Auto had to fall back (see determinant).
type Matrix struct {
	r, c  int
	data  []fraction.Fraction
	det   scalar
	trace scalar
	opts  Options
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix from a numeric grid.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: nil data → identity pattern (1 on i==j, 0 elsewhere, also for
//     non-square shapes); otherwise validate the grid and wrap every value
//     through fraction.FromFloat.
//   - Stage 3: compute determinant and trace (square only).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//   - fraction.ErrOverflow when a cell leaves int64, or when the determinant
//     does under an explicit Cofactor/Elimination strategy.
//
// Complexity:
//   - Time O(r*c) plus the determinant kernel, Space O(r*c).
func New(rows, cols int, data [][]float64, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	cells := make([]fraction.Fraction, rows*cols)
	if data == nil {
		for k := range cells {
			cells[k] = fraction.Zero
		}
		for i := 0; i < rows && i < cols; i++ {
			cells[i*cols+i] = fraction.One
		}

		return build(rows, cols, cells, o)
	}

	if err := ValidateGrid(data, rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	var (
		i, j int
		f    fraction.Fraction
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if f, err = fraction.FromFloat(data[i][j]); err != nil {
				return nil, cellErrorf(ctxNew, i, j, err)
			}
			cells[i*cols+j] = f
		}
	}

	return build(rows, cols, cells, o)
}

// FromFractions creates a matrix from exact cells, keeping every
// numerator/denominator as given. The grid must be non-empty and rectangular.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or empty first row.
//   - ErrDimensionMismatch for ragged rows.
func FromFractions(cells [][]fraction.Fraction, opts ...Option) (*Matrix, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, matrixErrorf(ctxFromFractions, ErrInvalidDimensions)
	}
	rows, cols := len(cells), len(cells[0])
	flat := make([]fraction.Fraction, 0, rows*cols)
	for i, row := range cells {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromFractions,
				fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		flat = append(flat, row...)
	}

	return build(rows, cols, flat, gatherOptions(opts...))
}

// build finalizes a matrix over an owned flat buffer.
func build(rows, cols int, cells []fraction.Fraction, o Options) (*Matrix, error) {
	m := &Matrix{r: rows, c: cols, data: cells, opts: o}
	if rows != cols {
		return m, nil
	}

	det, err := determinant(m.grid(), o)
	if err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}
	tr, err := trace(m, o)
	if err != nil {
		return nil, matrixErrorf(opTrace, err)
	}
	m.det, m.trace = det, tr

	return m, nil
}

// rebuild reconstructs a matrix from the numeric values of cells, the way
// every derived matrix (Mul, Map) is produced: exact representation is
// dropped and determinant/trace are recomputed from scratch.
func rebuild(rows, cols int, cells []fraction.Fraction, o Options) (*Matrix, error) {
	out := make([]fraction.Fraction, len(cells))
	var err error
	for k, f := range cells {
		if out[k], err = fraction.FromFloat(f.Value()); err != nil {
			return nil, cellErrorf(ctxRebuild, k/cols, k%cols, err)
		}
	}

	return build(rows, cols, out, o)
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows == Cols.
func (m *Matrix) IsSquare() bool { return m != nil && m.r == m.c }

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (fraction.Fraction, error) {
	if m == nil {
		return fraction.Fraction{}, cellErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fraction.Fraction{}, cellErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]fraction.Fraction, error) {
	if m == nil {
		return nil, cellErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, cellErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]fraction.Fraction(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Data returns a deep copy of the cells as a rows×cols grid.
func (m *Matrix) Data() [][]fraction.Fraction {
	return m.grid()
}

// Values returns the numeric value of every cell.
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.data[i*m.c+j].Value()
		}
	}

	return out
}

// Determinant returns the exact determinant computed at construction.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrInexact when only a float64 value is known; use DeterminantValue.
func (m *Matrix) Determinant() (fraction.Fraction, error) {
	if err := ValidateSquare(m); err != nil {
		return fraction.Fraction{}, matrixErrorf(opDeterminant, err)
	}
	if !m.det.exact {
		return fraction.Fraction{}, matrixErrorf(opDeterminant, ErrInexact)
	}

	return m.det.frac, nil
}

// DeterminantValue returns the determinant as float64, exact or not.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func (m *Matrix) DeterminantValue() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det.value, nil
}

// Trace returns Σ m[i][i] computed at construction.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrInexact when only a float64 value is known; use TraceValue.
func (m *Matrix) Trace() (fraction.Fraction, error) {
	if err := ValidateSquare(m); err != nil {
		return fraction.Fraction{}, matrixErrorf(opTrace, err)
	}
	if !m.trace.exact {
		return fraction.Fraction{}, matrixErrorf(opTrace, ErrInexact)
	}

	return m.trace.frac, nil
}

// TraceValue returns the trace as float64, exact or not.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func (m *Matrix) TraceValue() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return m.trace.value, nil
}

// IsExact reports whether determinant and trace are both held as fractions.
// Non-square matrices are trivially exact.
func (m *Matrix) IsExact() bool {
	return m != nil && (!m.IsSquare() || (m.det.exact && m.trace.exact))
}

// IsNonSingular reports whether m is square with a non-zero determinant.
// Non-singular matrices are called harmonic throughout this module.
func (m *Matrix) IsNonSingular() bool {
	return m.IsSquare() && m.det.value != 0
}

// EqualValues reports whether a and b have the same shape and every pair of
// cells denotes the same rational value (representations may differ).
func EqualValues(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !a.data[k].EqualValue(b.data[k]) {
			return false
		}
	}

	return true
}

// grid copies the flat buffer into a fresh [][]Fraction.
func (m *Matrix) grid() [][]fraction.Fraction {
	out := make([][]fraction.Fraction, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]fraction.Fraction(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}
