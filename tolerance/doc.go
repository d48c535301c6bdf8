// SPDX-License-Identifier: MIT

// Package tolerance derives the numeric thresholds that parameterise every
// geometric predicate of one hull build.
//
// A Context holds two values computed once from the input point set:
//
//   - PivotZero: a Gaussian-elimination diagonal entry at or below it is
//     treated as zero (rank-deficient direction).
//   - MaxDistanceError: the largest admissible error of an offset
//     computation; a point whose offset from a hyperplane is within it lies
//     ON the hyperplane.
//
// Both follow from the value precision of a float64, the dimension of the
// points and the bounding-box extent of the set:
//
//	PivotZero        = precision * dim
//	MaxDistanceError = precision * safety * dim * extent²
//
// A Context is an immutable value. Nothing is stored globally, so builds for
// unrelated point sets can derive and use their own contexts concurrently.
// Widen combines contexts of several sets into one conservative context.
package tolerance
