// Package hull builds convex hulls of point sets in any dimension.
//
// Build finds the affine dimension d of the input, starts from a simplex of
// d+1 affinely independent points and grows it by inserting, one at a time,
// the point lying farthest above the oldest facet that still has points
// above it. Each insertion replaces the facets visible from the new point
// with facets joining it to their horizon.
//
// The result is a Hull: an interior point, the spanned subspace and the
// facets. A facet has d generating points, an oriented hyperplane with the
// interior below it, one neighbor per generating point, and the input points
// still above it, which is empty for every facet unless a facet budget
// stopped the construction early (WithFacetBudget).
//
// Degenerate inputs are handled by working inside the spanned subspace: a
// single point (or many copies of it) gives a 0-dimensional hull with no
// facets; collinear points give a segment bounded by two single-point
// facets.
//
// Numerics:
//
// All geometric predicates use one tolerance.Context derived from the input
// (see package tolerance). Violated construction assumptions are fatal and
// reported as *BuildError with ErrPrecisionInconsistency or
// ErrAdjacencyInconsistency; a failed build yields no hull.
//
// Concurrency:
//
// A build runs on the calling goroutine and shares no state with other
// builds; BuildAll runs independent builds in parallel. A finished Hull is
// immutable.
package hull
