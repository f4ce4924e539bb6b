// SPDX-License-Identifier: MIT

package fraction

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxFractionDigits caps the number of decimal places FromFloat keeps, so the
// resulting denominator (10^places) always fits in int64.
const MaxFractionDigits = 18

// FromFloat rebuilds a Fraction from a numeric value.
//
// The value is first turned into its shortest exact decimal (the same digits
// strconv would print), then read back as coefficient/10^places:
//
//	FromFloat(3)    → 3/1
//	FromFloat(0.5)  → 5/10
//	FromFloat(-1.25)→ -125/100
//
// Values with more than MaxFractionDigits places are rounded to that many.
// Exact numerator/denominator history is lost; only the value survives.
//
// Errors:
//   - ErrNaNInf for NaN or ±Inf.
//   - ErrOverflow when the coefficient does not fit in int64.
func FromFloat(v float64) (Fraction, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fraction{}, fractionErrorf(opFromFloat, ErrNaNInf)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return FromInt(int64(v)), nil
	}

	d := decimal.NewFromFloat(v)
	if d.Exponent() < -MaxFractionDigits {
		d = d.Round(MaxFractionDigits)
	}
	coef, exp := d.Coefficient(), d.Exponent()
	if coef.Sign() == 0 {
		return Zero, nil
	}

	if exp >= 0 {
		num := new(big.Int).Mul(coef, pow10(exp))
		if !num.IsInt64() {
			return Fraction{}, fractionErrorf(opFromFloat, ErrOverflow)
		}

		return FromInt(num.Int64()), nil
	}

	den := pow10(-exp)
	if !coef.IsInt64() || !den.IsInt64() {
		return Fraction{}, fractionErrorf(opFromFloat, ErrOverflow)
	}

	return Fraction{num: coef.Int64(), den: den.Int64()}, nil
}

// Decimal returns num/den as a decimal, using decimal.DivisionPrecision
// digits for non-terminating quotients.
func (f Fraction) Decimal() decimal.Decimal {
	return decimal.NewFromInt(f.num).Div(decimal.NewFromInt(f.Den()))
}

func pow10(e int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
}
