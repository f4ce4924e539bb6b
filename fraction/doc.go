// Package fraction implements an exact rational value stored as an
// (numerator, denominator) pair of int64.
//
// What & Why:
//
//	Every cell of a harmonic matrix is a Fraction. The package-level
//	arithmetic (Add, Sub, Mul, Div) uses plain cross-multiplication and never
//	reduces the result by its GCD: 2/3 × 3/4 is 6/12, not 1/2. Numerators and
//	denominators therefore grow with repeated operations. The reducing variant
//	lives behind the Arithmetic interface (see Reduced) so that matrix and
//	transform callers can swap it in without touching their own code.
//
// Numeric policy:
//
//   - Denominator zero is rejected at construction (ErrDivisionByZero), as is
//     dividing by a Fraction whose numerator is zero.
//   - Arithmetic is checked: any int64 overflow returns ErrOverflow instead of
//     silently wrapping.
//   - Signs are kept as given; 3/-4 stays 3/-4 under Unreduced.
//   - The zero value of Fraction is 0/1.
//
// Conversion:
//
//	FromFloat rebuilds a Fraction from a numeric value through the shortest
//	exact decimal of that value (0.5 → 5/10, 3 → 3/1). Decimal renders a
//	Fraction as a shopspring decimal for display.
//
// Complexity:
//
//	All operations run in O(1) time and allocate nothing, except EqualValue,
//	FromFloat and Decimal which go through arbitrary-precision helpers.
package fraction
