// Package matrix implements immutable matrices of exact fractions with
// eagerly computed determinant and trace.
//
// The matrix package provides:
//
//   - Matrix: a rows×cols grid of fraction.Fraction stored row-major. The
//     determinant and trace are computed once at construction; there is no
//     Set, so they can never go stale.
//   - Construction from numeric grids (New), from exact cells (FromFractions)
//     and the identity pattern (NewIdentity, or New with nil data).
//   - Determinant by recursive cofactor expansion along row 0, with an exact
//     O(n³) elimination kernel selected automatically above CofactorLimit.
//   - Mul, the standard product, re-wrapped from numeric cell values so the
//     result's own determinant and trace are recomputed.
//   - Map, the per-cell broadcast used by transform.ApplyToMatrix.
//   - Visualize, a stable textual rendering meant to be parsed by tooling.
//
// Cofactor expansion is O(n!) and is only intended for the small sizes used
// in this module (≤ 9). Larger square matrices fall back to elimination
// unless WithDeterminant(Cofactor) is forced.
//
// Under the default Auto strategy an overflowing kernel is never fatal: the
// unreduced cofactor result gives way to reduced elimination, and that to a
// float64 elimination with partial pivoting. Determinant and Trace then return
// ErrInexact; DeterminantValue, TraceValue and IsExact expose what is known.
// Explicit Cofactor/Elimination strategies report fraction.ErrOverflow.
//
// See the examples in this package and digit/pattern for usage patterns.
package matrix
