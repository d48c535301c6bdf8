package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvhull/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVector_CopiesInput verifies the constructor does not alias its input.
func TestVector_CopiesInput(t *testing.T) {
	raw := []float64{1, 2, 3}
	v := vector.FromSlice(raw)
	raw[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "vector must not see writes to its source slice")

	comps := v.Components()
	comps[1] = 42
	got, _ = v.At(1)
	assert.Equal(t, 2.0, got, "Components must return a copy")
}

func TestVector_Arithmetic(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(4, 5, 6)

	sum, err := a.Sum(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Components())

	diff, err := b.Difference(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, diff.Components())

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	axpy, err := a.AddScaled(b, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, axpy.Components())

	assert.Equal(t, []float64{2, 4, 6}, a.Scale(2).Components())
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)

	d2, err := a.DistanceSquared(b)
	require.NoError(t, err)
	assert.Equal(t, 27.0, d2)

	// operands stay untouched
	assert.Equal(t, []float64{1, 2, 3}, a.Components())
}

// TestVector_DimensionMismatch checks every binary operation rejects
// operands of differing length with the shared sentinel.
func TestVector_DimensionMismatch(t *testing.T) {
	a := vector.New(1, 2)
	b := vector.New(1, 2, 3)

	_, err := a.Sum(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Difference(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Dot(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.AddScaled(b, 2)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.DistanceSquared(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Centroid([]vector.Vector{a, b})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestVector_At_OutOfRange(t *testing.T) {
	v := vector.New(1)
	_, err := v.At(1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestCentroid(t *testing.T) {
	c, err := vector.Centroid([]vector.Vector{
		vector.New(0, 0),
		vector.New(2, 0),
		vector.New(2, 2),
		vector.New(0, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, c.Components())

	_, err = vector.Centroid(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

func TestVector_StringEqualFinite(t *testing.T) {
	v := vector.New(1, 2.5, -3)
	assert.Equal(t, "<1, 2.5, -3>", v.String())
	assert.Equal(t, "<>", vector.Zero(0).String())

	assert.True(t, v.Equal(vector.New(1, 2.5, -3)))
	assert.False(t, v.Equal(vector.New(1, 2.5)))
	assert.True(t, v.IsFinite())
	assert.False(t, vector.New(math.NaN()).IsFinite())
	assert.False(t, vector.New(math.Inf(-1)).IsFinite())
	assert.Equal(t, 3, vector.Zero(3).Dim())
}
