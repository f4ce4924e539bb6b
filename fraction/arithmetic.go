// SPDX-License-Identifier: MIT
// Package fraction: arithmetic kernels.
//
// Purpose:
//   - Provide the canonical unreduced kernels (Add/Sub/Mul/Div) used by default
//     everywhere in the module.
//   - Provide a reducing Arithmetic for callers that need bounded
//     numerators/denominators (e.g. elimination determinants).
//
// Determinism:
//   - Pure functions; results depend only on the operands.

package fraction

import "math"

// Arithmetic is the set of binary operations used by matrix kernels.
// Implementations must be pure and safe for concurrent use.
type Arithmetic interface {
	Add(a, b Fraction) (Fraction, error)
	Sub(a, b Fraction) (Fraction, error)
	Mul(a, b Fraction) (Fraction, error)
	Div(a, b Fraction) (Fraction, error)
}

var (
	// Unreduced cross-multiplies and keeps the raw result (default policy).
	Unreduced Arithmetic = unreduced{}

	// Reduced performs the same operations and then divides numerator and
	// denominator by their GCD, normalizing the sign onto the numerator.
	Reduced Arithmetic = reduced{}
)

// Add returns (a.num*b.den + b.num*a.den) / (a.den*b.den).
//
// Errors:
//   - ErrOverflow when any intermediate product or sum leaves int64.
//
// Complexity: O(1).
func Add(a, b Fraction) (Fraction, error) {
	num, den, ok := crossSum(a, b, addInt64)
	if !ok {
		return Fraction{}, fractionErrorf(opAdd, ErrOverflow)
	}

	return Fraction{num: num, den: den}, nil
}

// Sub returns (a.num*b.den - b.num*a.den) / (a.den*b.den).
//
// Errors:
//   - ErrOverflow on int64 overflow.
func Sub(a, b Fraction) (Fraction, error) {
	num, den, ok := crossSum(a, b, subInt64)
	if !ok {
		return Fraction{}, fractionErrorf(opSub, ErrOverflow)
	}

	return Fraction{num: num, den: den}, nil
}

// Mul returns (a.num*b.num) / (a.den*b.den). 2/3 × 3/4 is 6/12.
//
// Errors:
//   - ErrOverflow on int64 overflow.
func Mul(a, b Fraction) (Fraction, error) {
	num, ok1 := mulInt64(a.num, b.num)
	den, ok2 := mulInt64(a.Den(), b.Den())
	if !ok1 || !ok2 {
		return Fraction{}, fractionErrorf(opMul, ErrOverflow)
	}

	return Fraction{num: num, den: den}, nil
}

// Div multiplies a by the reciprocal b.den/b.num.
//
// Errors:
//   - ErrDivisionByZero when b's numerator is zero.
//   - ErrOverflow on int64 overflow.
func Div(a, b Fraction) (Fraction, error) {
	if b.num == 0 {
		return Fraction{}, fractionErrorf(opDiv, ErrDivisionByZero)
	}
	r := Fraction{num: b.Den(), den: b.num}
	out, err := Mul(a, r)
	if err != nil {
		return Fraction{}, fractionErrorf(opDiv, err)
	}

	return out, nil
}

// Reduce divides num and den by their GCD and moves a negative sign onto the
// numerator. 6/12 → 1/2, 3/-6 → -1/2, 0/7 → 0/1.
func Reduce(f Fraction) Fraction {
	num, den := f.num, f.Den()
	if num == 0 {
		return Zero
	}
	if g := int64(gcd(num, den)); g > 1 {
		num, den = num/g, den/g
	}
	if den < 0 && num != math.MinInt64 && den != math.MinInt64 {
		num, den = -num, -den
	}

	return Fraction{num: num, den: den}
}

// crossSum computes a.num*b.den op b.num*a.den over a.den*b.den.
func crossSum(a, b Fraction, op func(x, y int64) (int64, bool)) (num, den int64, ok bool) {
	l, ok1 := mulInt64(a.num, b.Den())
	r, ok2 := mulInt64(b.num, a.Den())
	d, ok3 := mulInt64(a.Den(), b.Den())
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, false
	}
	n, ok4 := op(l, r)
	if !ok4 {
		return 0, 0, false
	}

	return n, d, true
}

type unreduced struct{}

func (unreduced) Add(a, b Fraction) (Fraction, error) { return Add(a, b) }
func (unreduced) Sub(a, b Fraction) (Fraction, error) { return Sub(a, b) }
func (unreduced) Mul(a, b Fraction) (Fraction, error) { return Mul(a, b) }
func (unreduced) Div(a, b Fraction) (Fraction, error) { return Div(a, b) }

// reduced reduces operands before combining them so that intermediate
// products stay as small as the values allow.
type reduced struct{}

func (reduced) Add(a, b Fraction) (Fraction, error) {
	num, den, ok := lcmSum(Reduce(a), Reduce(b), addInt64)
	if !ok {
		return Fraction{}, fractionErrorf(opAdd, ErrOverflow)
	}

	return Reduce(Fraction{num: num, den: den}), nil
}

func (reduced) Sub(a, b Fraction) (Fraction, error) {
	num, den, ok := lcmSum(Reduce(a), Reduce(b), subInt64)
	if !ok {
		return Fraction{}, fractionErrorf(opSub, ErrOverflow)
	}

	return Reduce(Fraction{num: num, den: den}), nil
}

// lcmSum combines a and b over lcm(a.den, b.den): equal denominators never
// square, so 1/3-style cells with 10^16 denominators stay in range.
func lcmSum(a, b Fraction, op func(x, y int64) (int64, bool)) (num, den int64, ok bool) {
	ad, bd := a.Den(), b.Den()
	g := int64(gcd(ad, bd))
	den, ok1 := mulInt64(ad/g, bd)
	l, ok2 := mulInt64(a.num, bd/g)
	r, ok3 := mulInt64(b.num, ad/g)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, false
	}
	num, ok = op(l, r)

	return num, den, ok
}

func (reduced) Mul(a, b Fraction) (Fraction, error) {
	a, b = Reduce(a), Reduce(b)
	// Cross-cancel before multiplying: (an/ad)(bn/bd) with gcd(an,bd), gcd(bn,ad).
	if g := int64(gcd(a.num, b.den)); g > 1 {
		a.num, b.den = a.num/g, b.den/g
	}
	if g := int64(gcd(b.num, a.den)); g > 1 {
		b.num, a.den = b.num/g, a.den/g
	}
	out, err := Mul(a, b)
	if err != nil {
		return Fraction{}, err
	}

	return Reduce(out), nil
}

func (r reduced) Div(a, b Fraction) (Fraction, error) {
	if b.num == 0 {
		return Fraction{}, fractionErrorf(opDiv, ErrDivisionByZero)
	}

	return r.Mul(a, Fraction{num: b.Den(), den: b.num})
}
