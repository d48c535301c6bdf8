package hull_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/internal/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAll(t *testing.T) {
	base := pointgen.RNGFromSeed(5)
	sets := make([][][]float64, 8)
	for i := range sets {
		pts, err := pointgen.Uniform(30, 2+i%3, 100, pointgen.DeriveRNG(base, uint64(i)))
		require.NoError(t, err)
		sets[i] = pts
	}

	hulls, err := hull.BuildAll(context.Background(), sets)
	require.NoError(t, err)
	require.Len(t, hulls, len(sets))
	for i, h := range hulls {
		require.NotNil(t, h)
		assert.Equal(t, 2+i%3, h.Dimension())
		require.NoError(t, h.Validate())
		requireEnclosesAll(t, h, sets[i])

		single := mustBuild(t, sets[i])
		assert.Equal(t, single.Len(), h.Len(), "set %d", i)
	}
}

func TestBuildAllError(t *testing.T) {
	sets := [][][]float64{squareWithCentre, {}, squareWithCentre}

	hulls, err := hull.BuildAll(context.Background(), sets)
	require.Error(t, err)
	assert.Nil(t, hulls)
	assert.Contains(t, err.Error(), "set 1")
	assert.ErrorIs(t, err, hull.ErrEmptyInput)
	assert.True(t, hull.IsInputError(err))
}

func TestBuildAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hulls, err := hull.BuildAll(ctx, [][][]float64{squareWithCentre})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, hulls)
}

func TestBuildAllEmpty(t *testing.T) {
	hulls, err := hull.BuildAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, hulls)
}
