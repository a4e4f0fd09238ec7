package bitmatrix_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/dagspan/dagspan/bitmatrix"
)

func TestSetGet(t *testing.T) {
	m, err := bitmatrix.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, true))
	got, err := m.Get(0, 1)
	require.NoError(t, err)
	require.True(t, got)

	got, err = m.Get(1, 1)
	require.NoError(t, err)
	require.False(t, got)

	_, err = m.Get(5, 0)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfBounds)
}

func TestColMul(t *testing.T) {
	// 2x3 matrix:
	// row0: 1 0 1
	// row1: 0 1 1
	m, err := bitmatrix.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, true))
	require.NoError(t, m.Set(0, 2, true))
	require.NoError(t, m.Set(1, 1, true))
	require.NoError(t, m.Set(1, 2, true))

	v := bitset.New(2)
	v.Set(0) // select row0 only

	result, err := m.ColMul(v)
	require.NoError(t, err)
	require.True(t, result.Test(0))
	require.False(t, result.Test(1))
	require.True(t, result.Test(2))
}

func TestMul(t *testing.T) {
	a, err := bitmatrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 1, true))

	b, err := bitmatrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, true))

	c, err := a.Mul(b)
	require.NoError(t, err)
	got, err := c.Get(0, 0)
	require.NoError(t, err)
	require.True(t, got)
	got, err = c.Get(1, 0)
	require.NoError(t, err)
	require.False(t, got)
}

func TestMulDimensionMismatch(t *testing.T) {
	a, _ := bitmatrix.New(2, 3)
	b, _ := bitmatrix.New(2, 2)
	_, err := a.Mul(b)
	require.ErrorIs(t, err, bitmatrix.ErrDimensionMismatch)
}
