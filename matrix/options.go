// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes a kernel and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options travel with the Matrix: Mul and Map rebuild their results with
//     the options of the left/receiver operand.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/harmonic/fraction"
)

// Strategy selects the determinant kernel.
type Strategy int

const (
	// Auto uses Cofactor up to CofactorLimit and Elimination above it. On
	// fraction.ErrOverflow it moves on to Elimination and then to a float64
	// determinant, so construction never fails on determinant overflow; the
	// float result is reported through Matrix.IsExact and ErrInexact.
	Auto Strategy = iota

	// Cofactor is recursive expansion along row 0 using the configured
	// arithmetic. O(n!) time. Overflow is returned, never retried.
	Cofactor

	// Elimination is Gaussian elimination with row swaps over
	// fraction.Reduced. O(n³) time; the result is in lowest terms.
	// Overflow is returned, never retried.
	Elimination
)

// CofactorLimit is the largest size Auto hands to the cofactor kernel.
const CofactorLimit = 9

// String returns the lower-case strategy name used in configuration files.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Cofactor:
		return "cofactor"
	case Elimination:
		return "elimination"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "cofactor" or "elimination" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "cofactor":
		return Cofactor, nil
	case "elimination":
		return Elimination, nil
	default:
		return Auto, fmt.Errorf("matrix: unknown determinant strategy %q", s)
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicArithmeticNil  = "matrix: WithArithmetic(nil)"
	panicStrategyBadVal = "matrix: WithDeterminant: unknown strategy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	arith    fraction.Arithmetic // fraction.Unreduced by default
	strategy Strategy            // Auto by default
}

// WithArithmetic sets the fraction arithmetic used by cofactor expansion,
// trace accumulation and Mul.
//
// Panics on nil.
// Complexity: O(1).
//
// AI-Hints:
//   - fraction.Reduced keeps numerators bounded when cells carry
//     non-unit denominators (e.g. after the half transform).
func WithArithmetic(a fraction.Arithmetic) Option {
	if a == nil {
		panic(panicArithmeticNil)
	}

	return func(o *Options) {
		o.arith = a
	}
}

// WithDeterminant forces a determinant strategy.
//
// Panics on values outside Auto/Cofactor/Elimination.
// Complexity: O(1).
func WithDeterminant(s Strategy) Option {
	if s < Auto || s > Elimination {
		panic(panicStrategyBadVal)
	}

	return func(o *Options) {
		o.strategy = s
	}
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		arith:    fraction.Unreduced,
		strategy: Auto,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// resolve returns the kernel Auto stands for at size n.
func (o Options) resolve(n int) Strategy {
	if o.strategy != Auto {
		return o.strategy
	}
	if n <= CofactorLimit {
		return Cofactor
	}

	return Elimination
}
