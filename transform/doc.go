// SPDX-License-Identifier: MIT

// Package transform provides named, pure unary functions over fractions,
// their left-to-right composition into pipelines, and broadcasting over a
// matrix.
//
// A Transform is a value: it carries a name and an operation and holds no
// state, so the same Transform can be applied to any number of fractions or
// matrices concurrently.
//
// Standard transforms:
//
//	identity      f ↦ f
//	square        f ↦ f×f (unreduced)
//	reciprocal    n/d ↦ d/n
//	double        n/d ↦ 2n/d
//	half          n/d ↦ n/2d
//	scale432      n/d ↦ 432n/d (see Scale for other multipliers)
//	digital_root  |v| < 10 unchanged, else v mod 9 with 0 ↦ 9
//	base_lookup   floor(v) mod len(seq) used as an index into seq
//
// Names are resolved through a typed Registry instead of ad-hoc string
// dispatch; an unknown name is an ErrUnknownTransform at lookup time.
//
// Errors:
//   - ErrEmptyName, ErrNilOperation, ErrEmptyPipeline, ErrDuplicate,
//     ErrUnknownTransform.
//   - fraction.ErrOverflow and fraction.ErrDivisionByZero pass through
//     wrapped with the failing stage name.
package transform
