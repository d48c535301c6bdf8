package tolerance_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(rows ...[]float64) []vector.Vector {
	out := make([]vector.Vector, len(rows))
	for i, r := range rows {
		out[i] = vector.FromSlice(r)
	}

	return out
}

// TestDerive_Formula checks both thresholds against the closed form.
func TestDerive_Formula(t *testing.T) {
	// spreads per axis: x 4, y 10, z 1 → extent 10
	ctx, err := tolerance.Derive(pts(
		[]float64{1, -5, 0},
		[]float64{5, 5, 1},
		[]float64{2, 0, 0.5},
	))
	require.NoError(t, err)

	assert.Equal(t, 10.0, ctx.Extent())
	assert.Equal(t, 3, ctx.Dimension())
	assert.InDelta(t, 3e-15, ctx.PivotZero(), 1e-30)
	assert.InDelta(t, 1e-15*0.5*3*100, ctx.MaxDistanceError(), 1e-27)
	assert.False(t, ctx.IsZero())
}

// TestDerive_SpreadIncludesFirstPoint guards against seeding min/max with
// zeros instead of the first point.
func TestDerive_SpreadIncludesFirstPoint(t *testing.T) {
	ctx, err := tolerance.Derive(pts(
		[]float64{100, 100},
		[]float64{101, 103},
	))
	require.NoError(t, err)
	assert.Equal(t, 3.0, ctx.Extent())
}

func TestDerive_Errors(t *testing.T) {
	_, err := tolerance.Derive(nil)
	assert.ErrorIs(t, err, tolerance.ErrEmptyInput)

	_, err = tolerance.Derive(pts([]float64{1, 2}, []float64{1}))
	assert.ErrorIs(t, err, tolerance.ErrDimensionMismatch)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = tolerance.Derive(pts([]float64{1, math.NaN()}))
	assert.ErrorIs(t, err, tolerance.ErrNonFinite)
}

func TestDerive_Options(t *testing.T) {
	ctx, err := tolerance.Derive(pts([]float64{0}, []float64{2}),
		tolerance.WithValuePrecision(1e-12),
		tolerance.WithSafetyFactor(2),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1e-12, ctx.PivotZero(), 1e-27)
	assert.InDelta(t, 1e-12*2*1*4, ctx.MaxDistanceError(), 1e-27)

	assert.Panics(t, func() { tolerance.WithValuePrecision(0) })
	assert.Panics(t, func() { tolerance.WithSafetyFactor(math.Inf(1)) })
}

func TestWiden(t *testing.T) {
	a := tolerance.FromExtent(2, 10)
	b := tolerance.FromExtent(5, 1)

	w := tolerance.Widen(a, b)
	assert.Equal(t, b.PivotZero(), w.PivotZero())
	assert.Equal(t, a.MaxDistanceError(), w.MaxDistanceError())
	assert.Equal(t, 10.0, w.Extent())
	assert.Equal(t, 5, w.Dimension())

	assert.True(t, tolerance.Widen().IsZero())
}

// TestDerive_Concurrent derives contexts for unrelated sets in parallel;
// each result must depend on its own input only.
func TestDerive_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 16
	var wg sync.WaitGroup
	results := make([]tolerance.Context, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			side := float64(w + 1)
			ctx, err := tolerance.Derive(pts([]float64{0, 0}, []float64{side, 0}))
			if err == nil {
				results[w] = ctx
			}
		}(w)
	}
	wg.Wait()

	for w, ctx := range results {
		assert.Equal(t, float64(w+1), ctx.Extent(), "worker %d", w)
	}
}
