// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvhull/geom"
	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

// Hull is a finished convex hull. It is immutable and safe for concurrent
// reads.
type Hull struct {
	dim      int
	interior vector.Vector
	sub      *geom.Subspace
	tol      tolerance.Context
	points   []geom.Point
	spanning []geom.PointID
	facets   []*Facet
	budget   int
}

// Dimension returns the affine dimension of the input points.
func (h *Hull) Dimension() int { return h.dim }

// AmbientDimension returns the number of coordinates of the input points.
func (h *Hull) AmbientDimension() int { return h.sub.AmbientDimension() }

// InteriorPoint returns the centroid of the spanning set. For Dimension > 0
// it lies strictly below every facet.
func (h *Hull) InteriorPoint() vector.Vector { return h.interior }

// Subspace returns the affine subspace spanned by the input.
func (h *Hull) Subspace() *geom.Subspace { return h.sub }

// Tolerance returns the thresholds the hull was built with.
func (h *Hull) Tolerance() tolerance.Context { return h.tol }

// SpanningSet returns the ids of the Dimension()+1 affinely independent
// points the construction started from.
func (h *Hull) SpanningSet() []geom.PointID { return slices.Clone(h.spanning) }

// Points returns the input points in input order.
func (h *Hull) Points() []geom.Point { return slices.Clone(h.points) }

// Point returns input point id.
func (h *Hull) Point(id geom.PointID) (geom.Point, bool) {
	if int(id) >= len(h.points) {
		return geom.Point{}, false
	}

	return h.points[id], true
}

// Len returns the number of facets.
func (h *Hull) Len() int { return len(h.facets) }

// Facets returns the facets in creation order; index i holds FacetID(i).
func (h *Hull) Facets() []*Facet { return slices.Clone(h.facets) }

// Facet returns the facet with the given id.
func (h *Hull) Facet(id FacetID) (*Facet, bool) {
	if int(id) >= len(h.facets) {
		return nil, false
	}

	return h.facets[id], true
}

// Budget returns the facet budget the hull was built with (0 = none).
func (h *Hull) Budget() int { return h.budget }

// Complete reports whether no input point lies above any facet. A hull
// built without a budget is always complete.
func (h *Hull) Complete() bool {
	for _, f := range h.facets {
		if !f.above.isEmpty() {
			return false
		}
	}

	return true
}

// ContainsInSubspace reports whether p lies in the spanned subspace.
func (h *Hull) ContainsInSubspace(p vector.Vector) bool {
	return h.sub.Contains(p)
}

// Contains reports whether p is enclosed: in the subspace and not strictly
// above any facet. Points on the boundary are enclosed.
func (h *Hull) Contains(p vector.Vector) bool {
	if !h.ContainsInSubspace(p) {
		return false
	}
	for _, f := range h.facets {
		if f.plane.IsAbove(p) {
			return false
		}
	}

	return true
}

// CountContained returns how many of points are enclosed.
func (h *Hull) CountContained(points []vector.Vector) int {
	n := 0
	for _, p := range points {
		if h.Contains(p) {
			n++
		}
	}

	return n
}

// EnclosingHyperplanes returns one hyperplane per facet such that every
// input point lies on or below all of them. For a facet with points above
// it, this is the parallel hyperplane through the farthest of them; for
// every other facet it is the facet's own hyperplane. On a complete hull
// the result equals the facet hyperplanes.
func (h *Hull) EnclosingHyperplanes() ([]*geom.Hyperplane, error) {
	out := make([]*geom.Hyperplane, 0, len(h.facets))
	for _, f := range h.facets {
		if f.above.isEmpty() {
			out = append(out, f.plane)
			continue
		}
		var (
			far   vector.Vector
			farD  float64
			found bool
		)
		for id := range f.above.all() {
			d, err := f.plane.SignedDistance(h.points[id].Coords)
			if err != nil {
				return nil, err
			}
			if !found || d > farD {
				far, farD, found = h.points[id].Coords, d, true
			}
		}
		p, err := f.plane.Parallel(far)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// String implements fmt.Stringer.
func (h *Hull) String() string {
	return fmt.Sprintf("hull{dim=%d points=%d facets=%d complete=%t}",
		h.dim, len(h.points), len(h.facets), h.Complete())
}
