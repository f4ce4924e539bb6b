// SPDX-License-Identifier: MIT

// Package digit builds the 9×9 digit matrices.
//
// For digit 0 the matrix is the identity. For d in 1..9 the diagonal holds d
// and every off-diagonal cell (i, j) holds ((d+1)(i+j+1)) mod 9, with a zero
// remainder mapped to 9.
//
// Every generated matrix is non-singular; there is no closed-form proof of
// this, so Verify re-checks it and the package tests pin the determinants.
package digit

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/sequence"
)

// Size is the order of every digit matrix.
const Size = 9

// Digit bounds accepted by Generate.
const (
	MinDigit = 0
	MaxDigit = 9
)

var (
	// ErrDigitOutOfRange is returned for digits outside MinDigit..MaxDigit.
	ErrDigitOutOfRange = errors.New("digit: digit must be in 0..9")

	// ErrSingular is returned by Verify when a digit matrix has determinant 0.
	ErrSingular = errors.New("digit: matrix is singular")
)

// Option configures a Generator.
type Option func(*Generator)

// WithMatrixOptions forwards construction options to every generated matrix.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(g *Generator) {
		g.matrixOpts = append(g.matrixOpts, opts...)
	}
}

// Generator produces digit matrices. It holds no mutable state after New and
// is safe for concurrent use.
type Generator struct {
	matrixOpts []matrix.Option
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Generate returns the 9×9 matrix for digit d.
//
// Errors:
//   - ErrDigitOutOfRange for d outside 0..9.
//   - Errors from matrix construction (e.g. fraction.ErrOverflow).
//
// Complexity: O(Size²) cells plus the determinant kernel.
func (g *Generator) Generate(d int) (*matrix.Matrix, error) {
	if d < MinDigit || d > MaxDigit {
		return nil, fmt.Errorf("digit.Generate(%d): %w", d, ErrDigitOutOfRange)
	}
	if d == 0 {
		m, err := matrix.NewIdentity(Size, g.matrixOpts...)
		if err != nil {
			return nil, fmt.Errorf("digit.Generate(0): %w", err)
		}

		return m, nil
	}

	m, err := matrix.New(Size, Size, Grid(d), g.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("digit.Generate(%d): %w", d, err)
	}

	return m, nil
}

// Grid returns the numeric cells of the digit-d matrix for d in 1..9.
// Digits outside that range yield the formula applied verbatim; Generate is
// the validated entry point.
func Grid(d int) [][]float64 {
	out := make([][]float64, Size)
	for i := 0; i < Size; i++ {
		out[i] = make([]float64, Size)
		for j := 0; j < Size; j++ {
			if i == j {
				out[i][j] = float64(d)
				continue
			}
			out[i][j] = float64(sequence.DigitalRoot(int64((d + 1) * (i + j + 1))))
		}
	}

	return out
}

// GenerateAll returns the matrices for digits 0..9, keyed by digit.
func (g *Generator) GenerateAll() (map[int]*matrix.Matrix, error) {
	out := make(map[int]*matrix.Matrix, MaxDigit-MinDigit+1)
	for d := MinDigit; d <= MaxDigit; d++ {
		m, err := g.Generate(d)
		if err != nil {
			return nil, err
		}
		out[d] = m
	}

	return out, nil
}

// GenerateAllConcurrent is GenerateAll with one goroutine per digit. It stops
// at the first error or when ctx is done.
func (g *Generator) GenerateAllConcurrent(ctx context.Context) (map[int]*matrix.Matrix, error) {
	var results [MaxDigit - MinDigit + 1]*matrix.Matrix

	eg, ctx := errgroup.WithContext(ctx)
	for d := MinDigit; d <= MaxDigit; d++ {
		d := d
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := g.Generate(d)
			if err != nil {
				return err
			}
			results[d-MinDigit] = m

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int]*matrix.Matrix, len(results))
	for i, m := range results {
		out[MinDigit+i] = m
	}

	return out, nil
}

// Verify generates every digit matrix and checks that it is non-singular.
//
// Errors:
//   - ErrSingular wrapped with the offending digit.
//   - Any Generate error.
func (g *Generator) Verify() error {
	for d := MinDigit; d <= MaxDigit; d++ {
		m, err := g.Generate(d)
		if err != nil {
			return err
		}
		if !m.IsNonSingular() {
			return fmt.Errorf("digit.Verify(%d): %w", d, ErrSingular)
		}
	}

	return nil
}
