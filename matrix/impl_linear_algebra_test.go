// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul_Basic multiplies two 2×2 matrices and recomputes derived values.
func TestMul_Basic(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMatrix(t, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, c.Values())
	assert.Equal(t, "4/1", mustDet(t, c).String())
	tr, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, "69/1", tr.String())
}

// TestMul_Rectangular multiplies 2×3 by 3×1.
func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMatrix(t, [][]float64{{1}, {0}, {-1}})

	c, err := matrix.Product(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-2}, {-2}}, c.Values())
	assert.False(t, c.IsSquare())
}

// TestMul_Identity leaves the operand unchanged by value.
func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, [][]float64{{2, 0.5}, {-1, 3}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	c, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.True(t, matrix.EqualValues(a, c))
}

// TestMul_Errors covers nil operands and inner dimension mismatch.
func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, [][]float64{{1, 2, 3}})
	b := mustMatrix(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Overflow surfaces arithmetic overflow from cell sums.
func TestMul_Overflow(t *testing.T) {
	t.Parallel()

	big := fraction.FromInt(1 << 62)
	a, err := matrix.FromFractions([][]fraction.Fraction{{big, big}})
	require.NoError(t, err)
	b, err := matrix.FromFractions([][]fraction.Fraction{{fraction.FromInt(2)}, {fraction.One}})
	require.NoError(t, err)

	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, fraction.ErrOverflow)
}

// TestMap applies a cell function and rebuilds derived values.
func TestMap(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	doubled, err := m.Map(func(f fraction.Fraction) (fraction.Fraction, error) {
		return fraction.Mul(f, fraction.FromInt(2))
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, doubled.Values())
	assert.Equal(t, "-8/1", mustDet(t, doubled).String())

	// The source is untouched.
	assert.Equal(t, "-2/1", mustDet(t, m).String())
}

// TestMap_Errors propagates callback failures with errors.Is intact.
func TestMap_Errors(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{1, 0}, {0, 1}})
	_, err := m.Map(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	_, err = m.Map(func(f fraction.Fraction) (fraction.Fraction, error) { return f.Reciprocal() })
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	sentinel := errors.New("boom")
	_, err = m.Map(func(fraction.Fraction) (fraction.Fraction, error) { return fraction.Zero, sentinel })
	require.ErrorIs(t, err, sentinel)
}

// TestMap_RebuildsFromValues drops exact representations.
func TestMap_RebuildsFromValues(t *testing.T) {
	t.Parallel()

	f := fraction.MustNew
	m, err := matrix.FromFractions([][]fraction.Fraction{{f(6, 12), f(4, 2)}, {f(0, 3), f(9, 3)}})
	require.NoError(t, err)

	same, err := m.Map(func(x fraction.Fraction) (fraction.Fraction, error) { return x, nil })
	require.NoError(t, err)
	assert.True(t, matrix.EqualValues(m, same))

	c, _ := same.At(0, 0)
	assert.Equal(t, "5/10", c.String())
	c, _ = same.At(0, 1)
	assert.Equal(t, "2/1", c.String())
}
