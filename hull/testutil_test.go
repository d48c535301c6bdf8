package hull_test

import (
	"testing"

	"github.com/katalvlaran/lvhull/geom"
	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/vector"
	"github.com/stretchr/testify/require"
)

// squareWithCentre is the unit square plus its centre, the centre last.
var squareWithCentre = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}

// mustBuild builds points and fails the test on error or invalid structure.
func mustBuild(t testing.TB, points [][]float64, opts ...hull.Option) *hull.Hull {
	t.Helper()
	h, err := hull.Build(points, opts...)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	return h
}

// facetByKey returns the facet with the given key or fails.
func facetByKey(t testing.TB, h *hull.Hull, key hull.FacetKey) *hull.Facet {
	t.Helper()
	for _, f := range h.Facets() {
		if f.Key() == key {
			return f
		}
	}
	require.Failf(t, "facet not found", "key %s", key)

	return nil
}

// vertexSet returns the distinct generating points of all facets.
func vertexSet(h *hull.Hull) map[geom.PointID]bool {
	out := map[geom.PointID]bool{}
	for _, f := range h.Facets() {
		for _, p := range f.Points() {
			out[p] = true
		}
	}

	return out
}

// requireEnclosesAll checks that every input point is contained.
func requireEnclosesAll(t testing.TB, h *hull.Hull, points [][]float64) {
	t.Helper()
	for i, p := range points {
		require.True(t, h.Contains(vector.FromSlice(p)), "point %d %v not enclosed", i, p)
	}
}

// requireSymmetric checks adjacency through the public Facet methods.
func requireSymmetric(t testing.TB, h *hull.Hull) {
	t.Helper()
	for _, f := range h.Facets() {
		for _, p := range f.Points() {
			nid, ok := f.NeighborAcross(p)
			require.True(t, ok)
			n, ok := h.Facet(nid)
			require.True(t, ok)
			back, ok := n.PointOfNeighbor(f.ID())
			require.True(t, ok)
			again, ok := n.NeighborAcross(back)
			require.True(t, ok)
			require.Equal(t, f.ID(), again)
		}
	}
}
