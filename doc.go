// Package lvhull builds convex hulls of point sets in any number of
// dimensions, together with the adjacency graph of their facets.
//
// What is in the box?
//
//	vector/      — immutable fixed-dimension real vectors
//	tolerance/   — the numeric thresholds of one build, derived from its input
//	matrix/      — dense matrices, scaled-pivot elimination and numeric rank
//	geom/        — points, affine subspaces and oriented hyperplanes
//	hull/        — the incremental hull construction and the finished Hull
//	observability/ — Prometheus export of build statistics
//
// Quick example:
//
//	h, err := hull.Build([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}})
//	if err != nil {
//		return err
//	}
//	fmt.Println(h.Len())                         // 4
//	fmt.Println(h.Contains(vector.New(0.5, 0.9))) // true
//
// Inputs of lower affine dimension than their coordinates (collinear points
// in 3-D, a flat slab in 5-D, a single repeated point) are hulled inside the
// subspace they span. A facet budget (hull.WithFacetBudget) stops the
// construction early and yields an enclosing approximation instead.
//
// See the examples/ directory for runnable programs.
package lvhull
