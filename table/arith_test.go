package table

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestArith_NaNMatrix(t *testing.T) {
	inf := Number(math.Inf(1))

	quotient, err := Div(Number(0), Number(0))
	require.NoError(t, err)
	assert.True(t, quotient.IsNaN())
	assert.False(t, quotient.IsAbsent())

	product, err := Mul(Number(0), inf)
	require.NoError(t, err)
	assert.True(t, product.IsNaN())

	difference, err := Sub(inf, inf)
	require.NoError(t, err)
	assert.True(t, difference.IsNaN())

	root, err := Sqrt(Number(-1))
	require.NoError(t, err)
	assert.True(t, root.IsNaN())
	assert.False(t, root.IsAbsent())
}

func TestArith_AbsentInfectious(t *testing.T) {
	sum, err := Add(Absent(), Number(3))
	require.NoError(t, err)
	assert.True(t, sum.IsAbsent())

	product, err := Mul(Number(3), Absent())
	require.NoError(t, err)
	assert.True(t, product.IsAbsent())

	root, err := Sqrt(Absent())
	require.NoError(t, err)
	assert.True(t, root.IsAbsent())

	// Absent beats NaN: the result is missing, not a defined NaN.
	sum, err = Add(Absent(), Number(math.NaN()))
	require.NoError(t, err)
	assert.True(t, sum.IsAbsent())
	assert.False(t, sum.IsNaN())
}

func TestArith_NaNInfectious(t *testing.T) {
	sum, err := Add(Number(math.NaN()), Number(3))
	require.NoError(t, err)
	assert.True(t, sum.IsNaN())
	assert.False(t, sum.IsAbsent())
}

func TestArith_TypeMismatch(t *testing.T) {
	_, err := Add(Number(1), Text("2"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = Sqrt(Bool(true))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	// Absent wins before the kind check.
	sum, err := Add(Absent(), Text("2"))
	require.NoError(t, err)
	assert.True(t, sum.IsAbsent())
}
