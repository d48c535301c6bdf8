package hull_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetrics(t *testing.T) {
	m := &hull.BasicMetricsCollector{}
	mustBuild(t, squareWithCentre, hull.WithMetrics(m))

	s := m.Stats()
	assert.Equal(t, int64(1), s.Builds)
	assert.Equal(t, int64(0), s.BuildErrors)
	assert.Equal(t, int64(1), s.Insertions)
	assert.Equal(t, int64(2), s.FacetsCreated)
	assert.Equal(t, int64(0), s.FacetsDiscarded)
	assert.Equal(t, int64(1), m.FacetsReplaced.Load())
	assert.Equal(t, int64(4), m.FacetsTotal.Load())
	assert.Equal(t, int64(5), m.PointsTotal.Load())

	_, err := hull.Build(nil, hull.WithMetrics(m))
	require.Error(t, err)
	s = m.Stats()
	assert.Equal(t, int64(2), s.Builds)
	assert.Equal(t, int64(1), s.BuildErrors)
	assert.Equal(t, int64(4), m.FacetsTotal.Load())
}

func TestLoggerEvents(t *testing.T) {
	var buf bytes.Buffer
	log := hull.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mustBuild(t, squareWithCentre, hull.WithLogger(log.WithDimension(2)))
	out := buf.String()
	assert.Contains(t, out, `"msg":"spanning set selected"`)
	assert.Contains(t, out, `"msg":"point inserted"`)
	assert.Contains(t, out, `"msg":"hull built"`)
	assert.Contains(t, out, `"facets":4`)

	buf.Reset()
	_, err := hull.Build([][]float64{{0}, {1, 2}}, hull.WithLogger(log))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"hull build failed"`)
}

func TestNoopObservers(t *testing.T) {
	h := mustBuild(t, squareWithCentre,
		hull.WithLogger(hull.NoopLogger()),
		hull.WithMetrics(hull.NoopMetricsCollector{}),
	)
	assert.Equal(t, 4, h.Len())
}

// TestSharedTolerance builds two sets under one widened context.
func TestSharedTolerance(t *testing.T) {
	small := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	large := [][]float64{{0, 0}, {100, 0}, {0, 100}, {100, 100}}

	toVectors := func(pts [][]float64) []vector.Vector {
		out := make([]vector.Vector, len(pts))
		for i, p := range pts {
			out[i] = vector.FromSlice(p)
		}

		return out
	}
	a, err := tolerance.Derive(toVectors(small))
	require.NoError(t, err)
	b, err := tolerance.Derive(toVectors(large))
	require.NoError(t, err)
	shared := tolerance.Widen(a, b)

	hs := mustBuild(t, small, hull.WithTolerance(shared))
	hl := mustBuild(t, large, hull.WithTolerance(shared))
	assert.Equal(t, shared, hs.Tolerance())
	assert.Equal(t, shared, hl.Tolerance())
	assert.Equal(t, 3, hs.Len())
	assert.Equal(t, 4, hl.Len())
}

func TestToleranceOptions(t *testing.T) {
	h := mustBuild(t, squareWithCentre, hull.WithToleranceOptions(tolerance.WithValuePrecision(1e-12)))
	assert.InDelta(t, 1e-12*0.5*2*1*1, h.Tolerance().MaxDistanceError(), 1e-24)
	assert.Equal(t, 4, h.Len())
}
