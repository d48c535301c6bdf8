// SPDX-License-Identifier: MIT

package tolerance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhull/vector"
)

// Context is the pair of thresholds used by one hull build, together with
// the inputs they were derived from. The zero value is "not derived".
type Context struct {
	pivotZero   float64
	maxDistance float64
	extent      float64
	dim         int
}

// Derive computes the thresholds for points.
//
// Errors:
//   - ErrEmptyInput when points is empty.
//   - ErrDimensionMismatch when the points differ in length.
//   - ErrNonFinite when a coordinate is NaN or ±Inf.
//
// Complexity: O(n·d).
func Derive(points []vector.Vector, opts ...Option) (Context, error) {
	if len(points) == 0 {
		return Context{}, ErrEmptyInput
	}
	dim := points[0].Dim()
	for i, p := range points {
		if p.Dim() != dim {
			return Context{}, fmt.Errorf("tolerance: point %d has %d components, want %d: %w",
				i, p.Dim(), dim, ErrDimensionMismatch)
		}
		if !p.IsFinite() {
			return Context{}, fmt.Errorf("tolerance: point %d: %w", i, ErrNonFinite)
		}
	}

	return FromExtent(dim, maxSpread(points), opts...), nil
}

// FromExtent builds a Context for dim-dimensional points whose bounding box
// has the given largest side length.
func FromExtent(dim int, extent float64, opts ...Option) Context {
	o := gatherOptions(opts...)
	d := float64(dim)

	return Context{
		pivotZero:   o.precision * d,
		maxDistance: o.precision * o.safety * d * extent * extent,
		extent:      extent,
		dim:         dim,
	}
}

// Widen returns the conservative union of the given contexts: every
// threshold is the largest among them. A point slightly outside a hull is
// then more likely to be judged inside; use it only when one context must
// serve several point sets.
func Widen(ctxs ...Context) Context {
	var out Context
	for _, c := range ctxs {
		out.pivotZero = math.Max(out.pivotZero, c.pivotZero)
		out.maxDistance = math.Max(out.maxDistance, c.maxDistance)
		out.extent = math.Max(out.extent, c.extent)
		if c.dim > out.dim {
			out.dim = c.dim
		}
	}

	return out
}

// PivotZero returns the pivot threshold for Gaussian elimination.
func (c Context) PivotZero() float64 { return c.pivotZero }

// MaxDistanceError returns the admissible offset error.
func (c Context) MaxDistanceError() float64 { return c.maxDistance }

// Extent returns the largest bounding-box side of the source points.
func (c Context) Extent() float64 { return c.extent }

// Dimension returns the dimension of the source points.
func (c Context) Dimension() int { return c.dim }

// IsZero reports whether c is the zero value (never derived).
func (c Context) IsZero() bool { return c == Context{} }

// String implements fmt.Stringer.
func (c Context) String() string {
	return fmt.Sprintf("tolerance{pivotZero=%g maxDistanceError=%g extent=%g dim=%d}",
		c.pivotZero, c.maxDistance, c.extent, c.dim)
}

// maxSpread returns max over axes of (max - min) coordinate.
func maxSpread(points []vector.Vector) float64 {
	first := points[0].Components()
	lo := append([]float64(nil), first...)
	hi := append([]float64(nil), first...)
	for _, p := range points[1:] {
		for k, x := range p.Components() {
			lo[k] = math.Min(lo[k], x)
			hi[k] = math.Max(hi[k], x)
		}
	}
	var spread float64
	for k := range lo {
		spread = math.Max(spread, hi[k]-lo[k])
	}

	return spread
}
