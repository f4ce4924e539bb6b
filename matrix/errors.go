// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with fmt.Errorf("ctx: %w", ErrX) at the detection site; callers
// still match with errors.Is. Errors coming from fraction arithmetic
// (fraction.ErrOverflow, fraction.ErrDivisionByZero) pass through wrapped.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> NaN/Inf -> arithmetic.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: a data grid whose
	// shape differs from the declared one, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Determinant,
	// Trace) but the receiver wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf cell in a numeric grid.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilFunc indicates that Map was called with a nil cell function.
	ErrNilFunc = errors.New("matrix: nil cell function")

	// ErrInexact is returned by Determinant/Trace when every exact kernel
	// overflowed and only the float64 value (DeterminantValue/TraceValue)
	// is available.
	ErrInexact = errors.New("matrix: value not representable as int64 fraction")
)
