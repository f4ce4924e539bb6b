// SPDX-License-Identifier: MIT

package transform

import (
	"math"
	"strconv"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/sequence"
)

// Standard transform names.
const (
	NameIdentity    = "identity"
	NameSquare      = "square"
	NameReciprocal  = "reciprocal"
	NameDouble      = "double"
	NameHalf        = "half"
	NameDigitalRoot = "digital_root"
	NameBaseLookup  = "base_lookup"

	namePrefixScale = "scale"
)

// DefaultMultiplier is the factor of Scale432.
const DefaultMultiplier int64 = 432

var half = fraction.MustNew(1, 2)

var (
	// Identity returns its input unchanged.
	Identity = MustNew(NameIdentity, func(f fraction.Fraction) (fraction.Fraction, error) { return f, nil })

	// Square multiplies f by itself without reduction: 2/3 becomes 4/9.
	Square = MustNew(NameSquare, func(f fraction.Fraction) (fraction.Fraction, error) { return fraction.Mul(f, f) })

	// Reciprocal swaps numerator and denominator; zero fails with
	// fraction.ErrDivisionByZero.
	Reciprocal = MustNew(NameReciprocal, fraction.Fraction.Reciprocal)

	// Double multiplies the numerator by 2.
	Double = MustNew(NameDouble, func(f fraction.Fraction) (fraction.Fraction, error) {
		return fraction.Mul(f, fraction.FromInt(2))
	})

	// Half multiplies the denominator by 2.
	Half = MustNew(NameHalf, func(f fraction.Fraction) (fraction.Fraction, error) { return fraction.Mul(f, half) })

	// Scale432 multiplies the numerator by DefaultMultiplier.
	Scale432 = Scale(DefaultMultiplier)

	// DigitalRoot leaves values with |v| < 10 untouched. Larger values become
	// v mod 9 (sign of v kept), with a zero remainder mapped to 9, rebuilt
	// through fraction.FromFloat.
	DigitalRoot = MustNew(NameDigitalRoot, digitalRoot)
)

// Scale returns a transform named "scale<k>" multiplying the numerator by k.
func Scale(k int64) Transform {
	factor := fraction.FromInt(k)

	return MustNew(namePrefixScale+strconv.FormatInt(k, 10), func(f fraction.Fraction) (fraction.Fraction, error) {
		return fraction.Mul(f, factor)
	})
}

// BaseLookup maps f to seq[floor(v) mod len(seq)], wrapping negative indices
// into range. The zero Base stands for sequence.Default().
//
// Errors:
//   - fraction.ErrOverflow when floor(v) does not fit in int64.
func BaseLookup(seq sequence.Base) Transform {
	if seq.IsZero() {
		seq = sequence.Default()
	}

	return MustNew(NameBaseLookup, func(f fraction.Fraction) (fraction.Fraction, error) {
		idx := math.Floor(f.Value())
		if idx >= math.MaxInt64 || idx < math.MinInt64 {
			return fraction.Fraction{}, transformErrorf(NameBaseLookup, fraction.ErrOverflow)
		}

		return fraction.FromInt(seq.At(int64(idx))), nil
	})
}

func digitalRoot(f fraction.Fraction) (fraction.Fraction, error) {
	v := f.Value()
	if math.Abs(v) < 10 {
		return f, nil
	}
	r := math.Mod(v, 9)
	if r == 0 {
		r = 9
	}

	return fraction.FromFloat(r)
}
