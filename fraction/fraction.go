// SPDX-License-Identifier: MIT

package fraction

import (
	"math/big"
	"strconv"
)

// Fraction is an immutable rational value num/den.
//
// The zero value is 0/1. Values are compared by representation with Equal
// and by magnitude with EqualValue; 6/12 and 1/2 differ under Equal.
type Fraction struct {
	num int64
	den int64 // 0 only in the zero value, read through Den()
}

// Frequently used constants.
var (
	Zero     = Fraction{num: 0, den: 1}
	One      = Fraction{num: 1, den: 1}
	MinusOne = Fraction{num: -1, den: 1}
)

// New returns num/den exactly as given.
//
// Errors:
//   - ErrDivisionByZero when den == 0.
//
// Complexity: O(1).
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fractionErrorf(opNew, ErrDivisionByZero)
	}

	return Fraction{num: num, den: den}, nil
}

// MustNew is New that panics on a zero denominator. Intended for constants
// and tests where the denominator is a literal.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Num returns the numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the denominator (1 for the zero value).
func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

// Value returns num/den as float64.
func (f Fraction) Value() float64 {
	return float64(f.num) / float64(f.Den())
}

// Reciprocal returns den/num without reduction.
//
// Errors:
//   - ErrDivisionByZero when the numerator is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fractionErrorf(opReciprocal, ErrDivisionByZero)
	}

	return Fraction{num: f.Den(), den: f.num}, nil
}

// IsInteger reports whether the denominator is exactly 1.
// 4/2 is NOT an integer under this definition; reduction is never implied.
func (f Fraction) IsInteger() bool { return f.Den() == 1 }

// IsZero reports whether the value is zero.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Equal reports whether f and g have the identical representation.
func (f Fraction) Equal(g Fraction) bool {
	return f.num == g.num && f.Den() == g.Den()
}

// EqualValue reports whether f and g denote the same rational number,
// comparing num_f*den_g with num_g*den_f in arbitrary precision.
func (f Fraction) EqualValue(g Fraction) bool {
	l := new(big.Int).Mul(big.NewInt(f.num), big.NewInt(g.Den()))
	r := new(big.Int).Mul(big.NewInt(g.num), big.NewInt(f.Den()))

	return l.Cmp(r) == 0
}

// String renders "num/den", e.g. "6/12".
func (f Fraction) String() string {
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}
