// Package matrix provides the small dense linear-algebra kernel the hull
// needs: row-major storage and numeric rank by Gaussian elimination.
//
// The package provides:
//
//   - Dense, a row-major matrix behind the Matrix interface whose indexers
//     return sentinel errors instead of panicking.
//   - UpperTriangular and Rank, Gaussian elimination with scaled partial
//     pivoting against an explicit pivot threshold.
//   - Family, the rank of a set of vectors or of the difference vectors of a
//     point set, evaluated against a tolerance.Context.
//
// Rank decides the affine dimension spanned by a candidate point set and is
// used by the hull as a consistency check on each facet's generating points.
//
// All kernels are deterministic: fixed loop orders, no map iteration, no
// global state.
package matrix
