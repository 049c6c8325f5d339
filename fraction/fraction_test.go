package fraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stdx/fraction"
)

// TestNew_Canonicalizes verifies reduction to lowest terms and sign
// placement on the numerator.
func TestNew_Canonicalizes(t *testing.T) {
	f, err := fraction.New(6, -8)
	require.NoError(t, err)

	assert.Equal(t, int64(-3), f.Num())
	assert.Equal(t, int64(4), f.Den())
	assert.Equal(t, "-3/4", f.String())
}

// TestNew_ZeroDenominator verifies the sentinel error.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := fraction.New(1, 0)
	assert.ErrorIs(t, err, fraction.ErrZeroDenominator)
}

// TestZeroValue verifies the zero Frac behaves as the rational 0/1.
func TestZeroValue(t *testing.T) {
	var zero fraction.Frac

	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, int64(1), zero.Den())

	half, err := fraction.New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, half, zero.Add(half), "0 + 1/2 = 1/2")
}

// TestArithmetic verifies Add/Sub/Mul/Div over representative pairs.
func TestArithmetic(t *testing.T) {
	third, err := fraction.New(1, 3)
	require.NoError(t, err)
	half, err := fraction.New(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "5/6", third.Add(half).String())
	assert.Equal(t, "-1/6", third.Sub(half).String())
	assert.Equal(t, "1/6", third.Mul(half).String())

	q, err := third.Div(half)
	require.NoError(t, err)
	assert.Equal(t, "2/3", q.String())

	_, err = half.Div(fraction.Frac{})
	assert.ErrorIs(t, err, fraction.ErrDivideByZero)
}

// TestArithmetic_ReducesResults verifies results always land in lowest
// terms, including cancellation to integers.
func TestArithmetic_ReducesResults(t *testing.T) {
	a, err := fraction.New(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "1/2", a.String(), "construction reduces")

	b, err := fraction.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "3", a.Add(b).Add(fraction.FromInt(1)).String(), "integer results render bare")
}

// TestCmp verifies exact ordering without float round-trips.
func TestCmp(t *testing.T) {
	a, err := fraction.New(1, 3)
	require.NoError(t, err)
	b, err := fraction.New(2, 6)
	require.NoError(t, err)
	c, err := fraction.New(1, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Cmp(b), "1/3 == 2/6")
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 1, c.Cmp(a))
	assert.Equal(t, -1, c.Neg().Cmp(a))
}

// TestFloat verifies the float64 approximation.
func TestFloat(t *testing.T) {
	f, err := fraction.New(1, 4)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, f.Float(), 1e-15)
}

// TestParse verifies round-tripping of both renderings and the error
// classes for malformed input.
func TestParse(t *testing.T) {
	f, err := fraction.Parse("-6/8")
	require.NoError(t, err)
	assert.Equal(t, "-3/4", f.String())

	g, err := fraction.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, fraction.FromInt(42), g)

	_, err = fraction.Parse("x/2")
	assert.ErrorIs(t, err, fraction.ErrParse)
	_, err = fraction.Parse("1/y")
	assert.ErrorIs(t, err, fraction.ErrParse)
	_, err = fraction.Parse("1/0")
	assert.ErrorIs(t, err, fraction.ErrZeroDenominator)
	_, err = fraction.Parse("")
	assert.ErrorIs(t, err, fraction.ErrParse)
}
