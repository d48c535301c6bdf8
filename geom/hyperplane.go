// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

const (
	opNewHyperplane        = "NewHyperplane"
	opNewHyperplaneThrough = "NewHyperplaneThrough"
	opOffset               = "Hyperplane.SignedDistance"
	opParallel             = "Hyperplane.Parallel"
)

// Hyperplane is an oriented hyperplane inside the span of its generating
// points and its reference. The unit normal points away from the reference:
// the reference has a negative offset.
type Hyperplane struct {
	span   *Subspace
	normal vector.Vector
}

// NewHyperplane builds the hyperplane through gens oriented so that ref lies
// below it. gens[0] is the origin; the remaining points span the plane.
//
// Errors:
//   - ErrTooFewPoints when gens is empty.
//   - ErrDimensionMismatch when ref and gens differ in length.
//   - ErrReferenceInSubspace when ref is within MaxDistanceError of the plane.
func NewHyperplane(ref vector.Vector, gens []vector.Vector, tol tolerance.Context) (*Hyperplane, error) {
	if len(gens) == 0 {
		return nil, geomErrorf(opNewHyperplane, ErrTooFewPoints)
	}
	span, err := SpanOf(gens, tol)
	if err != nil {
		return nil, geomErrorf(opNewHyperplane, err)
	}
	h, err := orient(span, ref)
	if err != nil {
		return nil, geomErrorf(opNewHyperplane, err)
	}

	return h, nil
}

// NewHyperplaneThrough builds the hyperplane through the point through,
// spanned by the directions of basis, oriented so that ref lies below it.
// The basis need not be orthonormal.
func NewHyperplaneThrough(ref, through vector.Vector, basis []vector.Vector, tol tolerance.Context) (*Hyperplane, error) {
	span := NewSubspace(through, tol)
	for i, b := range basis {
		if b.Dim() != through.Dim() {
			return nil, geomErrorf(opNewHyperplaneThrough,
				fmt.Errorf("basis vector %d: %d != %d: %w", i, b.Dim(), through.Dim(), ErrDimensionMismatch))
		}
		r := orthogonalize(b, span.basis)
		n := r.Length()
		if n == 0 {
			continue
		}
		span = &Subspace{origin: through, basis: append(span.Basis(), r.Scale(1/n)), tol: tol}
	}
	h, err := orient(span, ref)
	if err != nil {
		return nil, geomErrorf(opNewHyperplaneThrough, err)
	}

	return h, nil
}

// orient derives the unit normal of span pointing away from ref.
func orient(span *Subspace, ref vector.Vector) (*Hyperplane, error) {
	r, err := span.Residual(ref)
	if err != nil {
		return nil, err
	}
	n := r.Length()
	if n <= span.tol.MaxDistanceError() {
		return nil, ErrReferenceInSubspace
	}

	return &Hyperplane{span: span, normal: r.Scale(-1 / n)}, nil
}

// Normal returns the unit normal.
func (h *Hyperplane) Normal() vector.Vector { return h.normal }

// Origin returns the point the hyperplane passes through.
func (h *Hyperplane) Origin() vector.Vector { return h.span.origin }

// Basis returns an orthonormal basis of the directions within the plane.
func (h *Hyperplane) Basis() []vector.Vector { return h.span.Basis() }

// Dimension returns the affine dimension of the plane itself.
func (h *Hyperplane) Dimension() int { return h.span.Dimension() }

// Tolerance returns the context the classification methods use.
func (h *Hyperplane) Tolerance() tolerance.Context { return h.span.tol }

// SignedDistance returns (p − origin)·normal: positive above, negative
// below.
func (h *Hyperplane) SignedDistance(p vector.Vector) (float64, error) {
	d, err := p.Difference(h.span.origin)
	if err != nil {
		return 0, geomErrorf(opOffset, err)
	}

	return d.Dot(h.normal)
}

// offset is SignedDistance with NaN for a point of the wrong dimension, so
// every comparison below is false for it.
func (h *Hyperplane) offset(p vector.Vector) float64 {
	s, err := h.SignedDistance(p)
	if err != nil {
		return math.NaN()
	}

	return s
}

// IsAbove reports whether p is strictly above the plane, beyond
// MaxDistanceError.
func (h *Hyperplane) IsAbove(p vector.Vector) bool {
	return h.offset(p) > h.span.tol.MaxDistanceError()
}

// IsBelow reports whether p is strictly below the plane, beyond
// MaxDistanceError.
func (h *Hyperplane) IsBelow(p vector.Vector) bool {
	return h.offset(p) < -h.span.tol.MaxDistanceError()
}

// Contains reports whether p lies on the plane within MaxDistanceError.
func (h *Hyperplane) Contains(p vector.Vector) bool {
	return math.Abs(h.offset(p)) <= h.span.tol.MaxDistanceError()
}

// Parallel returns the hyperplane with the same orientation through p.
func (h *Hyperplane) Parallel(p vector.Vector) (*Hyperplane, error) {
	if p.Dim() != h.span.origin.Dim() {
		return nil, geomErrorf(opParallel, ErrDimensionMismatch)
	}

	return &Hyperplane{
		span:   &Subspace{origin: p, basis: h.span.basis, tol: h.span.tol},
		normal: h.normal,
	}, nil
}

// String implements fmt.Stringer.
func (h *Hyperplane) String() string {
	return fmt.Sprintf("hyperplane{origin=%s normal=%s}", h.span.origin, h.normal)
}
