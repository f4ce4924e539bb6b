// SPDX-License-Identifier: MIT
package fraction_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArithmetic_Unreduced pins the cross-multiplication results exactly.
func TestArithmetic_Unreduced(t *testing.T) {
	t.Parallel()

	f := fraction.MustNew
	tests := []struct {
		name string
		op   func(a, b fraction.Fraction) (fraction.Fraction, error)
		a, b fraction.Fraction
		want fraction.Fraction
	}{
		{"add 1/2+1/3", fraction.Add, f(1, 2), f(1, 3), f(5, 6)},
		{"add keeps product denominator", fraction.Add, f(1, 2), f(1, 2), f(4, 4)},
		{"sub 1/2-1/3", fraction.Sub, f(1, 2), f(1, 3), f(1, 6)},
		{"sub to negative", fraction.Sub, f(1, 3), f(1, 2), f(-1, 6)},
		{"mul 2/3*3/4 not reduced", fraction.Mul, f(2, 3), f(3, 4), f(6, 12)},
		{"div 2/3 / 1/2", fraction.Div, f(2, 3), f(1, 2), f(4, 3)},
		{"div by negative", fraction.Div, f(1, 1), f(-2, 1), f(1, -2)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.op(tc.a, tc.b)
			require.NoError(t, err)
			assert.Truef(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

// TestMul_HalfValue checks that 6/12 still has value 0.5.
func TestMul_HalfValue(t *testing.T) {
	t.Parallel()

	got, err := fraction.Mul(fraction.MustNew(2, 3), fraction.MustNew(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Value())
	assert.Equal(t, int64(6), got.Num())
	assert.Equal(t, int64(12), got.Den())
}

// TestDiv_ByZero returns ErrDivisionByZero for both arithmetics.
func TestDiv_ByZero(t *testing.T) {
	t.Parallel()

	_, err := fraction.Div(fraction.One, fraction.Zero)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Reduced.Div(fraction.One, fraction.MustNew(0, 5))
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

// TestArithmetic_Overflow surfaces ErrOverflow instead of wrapping around.
func TestArithmetic_Overflow(t *testing.T) {
	t.Parallel()

	big := fraction.FromInt(math.MaxInt64)
	_, err := fraction.Add(big, fraction.One)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.Mul(big, fraction.FromInt(2))
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.Sub(fraction.FromInt(math.MinInt64), fraction.One)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.Mul(fraction.FromInt(math.MinInt64), fraction.MinusOne)
	require.ErrorIs(t, err, fraction.ErrOverflow)
}

// TestReduce normalizes by GCD and sign.
func TestReduce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1/2", fraction.Reduce(fraction.MustNew(6, 12)).String())
	assert.Equal(t, "-1/2", fraction.Reduce(fraction.MustNew(3, -6)).String())
	assert.Equal(t, "0/1", fraction.Reduce(fraction.MustNew(0, 7)).String())
	assert.Equal(t, "7/1", fraction.Reduce(fraction.FromInt(7)).String())
}

// TestReducedArithmetic matches values of the unreduced kernels in lowest terms.
func TestReducedArithmetic(t *testing.T) {
	t.Parallel()

	f := fraction.MustNew
	r := fraction.Reduced

	got, err := r.Mul(f(2, 3), f(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "1/2", got.String())

	got, err = r.Add(f(1, 6), f(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "1/2", got.String())

	got, err = r.Sub(f(1, 2), f(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "0/1", got.String())

	got, err = r.Div(f(2, 3), f(-4, 9))
	require.NoError(t, err)
	assert.Equal(t, "-3/2", got.String())
}

// TestReducedArithmetic_StaysBounded repeats an operation that overflows
// without reduction.
func TestReducedArithmetic_StaysBounded(t *testing.T) {
	t.Parallel()

	half := fraction.MustNew(1, 2)
	acc := fraction.One
	var err error
	for i := 0; i < 200; i++ {
		acc, err = fraction.Reduced.Mul(acc, half)
		require.NoError(t, err)
		acc, err = fraction.Reduced.Mul(acc, fraction.FromInt(2))
		require.NoError(t, err)
	}
	assert.Equal(t, "1/1", acc.String())

	acc = fraction.One
	for i := 0; i < 200; i++ {
		acc, err = fraction.Mul(acc, half)
		if err != nil {
			break
		}
	}
	require.ErrorIs(t, err, fraction.ErrOverflow)
}

// TestReducedArithmetic_SharedDenominator adds values whose denominators
// square past int64 under cross-multiplication.
func TestReducedArithmetic_SharedDenominator(t *testing.T) {
	t.Parallel()

	third, err := fraction.FromFloat(1.0 / 3)
	require.NoError(t, err)
	require.Equal(t, "3333333333333333/10000000000000000", third.String())

	_, err = fraction.Sub(third, third)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	got, err := fraction.Reduced.Sub(third, third)
	require.NoError(t, err)
	assert.Equal(t, "0/1", got.String())

	got, err = fraction.Reduced.Add(third, fraction.MustNew(1, 4))
	require.NoError(t, err)
	assert.Equal(t, "5833333333333333/10000000000000000", got.String())
}
