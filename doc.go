// Package harmonic is an exact-fraction matrix engine: unreduced rational
// arithmetic, cofactor determinants, composable cell transforms, the nine-by-
// nine digit matrices and a transition-pattern classifier built on top of them.
//
// What is in the box?
//
//	• fraction/  – int64 numerator/denominator pairs, never reduced by default,
//	               checked against overflow; an opt-in Reduced arithmetic
//	• sequence/  – the base lookup sequence [1 2 4 8 7 5] and digital roots
//	• matrix/    – immutable fraction matrices with eager determinant & trace,
//	               multiplication, cell mapping and the text Visualize layout
//	• transform/ – named unary transforms, Compose pipelines and a typed Registry
//	• digit/     – one 9×9 non-singular matrix per digit 0–9
//	• pattern/   – "0 → 1 | 3 → 8" parsing, 2×2 / 3×3 / 9×9 matrices, vortex check
//	• config/    – YAML settings feeding every package above
//	• cmd/harmonic – command-line front end
//
// Why unreduced?
//
//	2/3 × 3/4 is 6/12, not 1/2. Numerators and denominators grow with every
//	operation exactly as computed; overflow is reported as fraction.ErrOverflow
//	instead of wrapping. Matrix determinants under the default strategy fall
//	back to reduced elimination and then float64 (see Matrix.IsExact).
//	Callers that need bounded values pass matrix.WithArithmetic(fraction.Reduced).
//
// Quick example:
//
//	m, _ := matrix.New(2, 2, [][]float64{{1, 2}, {3, 4}})
//	fmt.Print(matrix.Visualize(m))
//	// Harmonic Matrix (2×2)
//	// Determinant: -2/1 (-2)
//	// Trace: 5/1 (5)
//	// Harmonic: YES
//	// 1/1 2/1
//	// 3/1 4/1
//
//	go install github.com/katalvlaran/harmonic/cmd/harmonic@latest
package harmonic
