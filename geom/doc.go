// SPDX-License-Identifier: MIT

// Package geom provides the affine primitives the hull is built from:
// identified points, affine subspaces and oriented hyperplanes.
//
// A Subspace is an origin plus an orthonormal basis; Extend grows it by one
// point at a time and Contains tests membership against a tolerance.Context.
// A Hyperplane is a Subspace of co-dimension one (relative to the span it is
// oriented in) with a unit normal chosen so that a reference point lies
// strictly below it.
//
// Distances are plain Euclidean distances and are compared with
// tolerance.Context.MaxDistanceError. Every value in this package is
// immutable once constructed.
package geom
