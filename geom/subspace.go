// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

const (
	opNewSubspace = "NewSubspace"
	opExtend      = "Subspace.Extend"
	opResidual    = "Subspace.Residual"
)

// Subspace is the affine set origin + span(basis) with an orthonormal basis.
type Subspace struct {
	origin vector.Vector
	basis  []vector.Vector
	tol    tolerance.Context
}

// NewSubspace returns the 0-dimensional subspace {origin}.
func NewSubspace(origin vector.Vector, tol tolerance.Context) *Subspace {
	return &Subspace{origin: origin, tol: tol}
}

// SpanOf returns the smallest subspace through points, adding them in
// order and skipping those already contained. It fails only on mixed
// dimensions or an empty slice.
func SpanOf(points []vector.Vector, tol tolerance.Context) (*Subspace, error) {
	if len(points) == 0 {
		return nil, geomErrorf(opNewSubspace, ErrTooFewPoints)
	}
	s := NewSubspace(points[0], tol)
	for i, p := range points[1:] {
		next, _, err := s.Extend(p)
		if err != nil {
			return nil, geomErrorf(opNewSubspace, fmt.Errorf("point %d: %w", i+1, err))
		}
		s = next
	}

	return s, nil
}

// Dimension returns the affine dimension (the basis size).
func (s *Subspace) Dimension() int { return len(s.basis) }

// AmbientDimension returns the dimension of the surrounding space.
func (s *Subspace) AmbientDimension() int { return s.origin.Dim() }

// Origin returns the point the subspace was started from.
func (s *Subspace) Origin() vector.Vector { return s.origin }

// Basis returns the orthonormal basis vectors.
func (s *Subspace) Basis() []vector.Vector {
	return append([]vector.Vector(nil), s.basis...)
}

// Tolerance returns the context membership is judged with.
func (s *Subspace) Tolerance() tolerance.Context { return s.tol }

// Extend returns the subspace grown by p. When p is already contained the
// receiver itself is returned with false.
func (s *Subspace) Extend(p vector.Vector) (*Subspace, bool, error) {
	r, err := s.Residual(p)
	if err != nil {
		return nil, false, geomErrorf(opExtend, err)
	}
	n := r.Length()
	if n <= s.tol.MaxDistanceError() {
		return s, false, nil
	}
	basis := make([]vector.Vector, len(s.basis), len(s.basis)+1)
	copy(basis, s.basis)

	return &Subspace{origin: s.origin, basis: append(basis, r.Scale(1/n)), tol: s.tol}, true, nil
}

// Residual returns the component of p − origin orthogonal to the subspace.
func (s *Subspace) Residual(p vector.Vector) (vector.Vector, error) {
	d, err := p.Difference(s.origin)
	if err != nil {
		return vector.Vector{}, geomErrorf(opResidual, err)
	}

	return orthogonalize(d, s.basis), nil
}

// Distance returns the Euclidean distance from p to the subspace.
func (s *Subspace) Distance(p vector.Vector) (float64, error) {
	r, err := s.Residual(p)
	if err != nil {
		return 0, err
	}

	return r.Length(), nil
}

// Contains reports whether p lies in the subspace within MaxDistanceError.
// A point of the wrong dimension is never contained.
func (s *Subspace) Contains(p vector.Vector) bool {
	d, err := s.Distance(p)

	return err == nil && d <= s.tol.MaxDistanceError()
}

// Project returns the orthogonal projection of p onto the subspace.
func (s *Subspace) Project(p vector.Vector) (vector.Vector, error) {
	r, err := s.Residual(p)
	if err != nil {
		return vector.Vector{}, err
	}
	// p − residual is the foot point; both share p's dimension.
	return p.Difference(r)
}

// Farthest returns the point of pts farthest from the subspace. Ties go to
// the earliest point; points of the wrong dimension are skipped.
func (s *Subspace) Farthest(pts []Point) (Point, bool) {
	var (
		best  Point
		bestD = -1.0
	)
	for _, p := range pts {
		d, err := s.Distance(p.Coords)
		if err != nil {
			continue
		}
		if d > bestD {
			best, bestD = p, d
		}
	}

	return best, bestD >= 0
}

// String implements fmt.Stringer.
func (s *Subspace) String() string {
	return fmt.Sprintf("subspace{dim=%d origin=%s}", len(s.basis), s.origin)
}

// orthogonalize removes from v its components along the orthonormal basis.
// Two Gram–Schmidt passes keep the result orthogonal to working precision.
func orthogonalize(v vector.Vector, basis []vector.Vector) vector.Vector {
	for pass := 0; pass < 2; pass++ {
		for _, b := range basis {
			c, _ := v.Dot(b)
			v, _ = v.AddScaled(b, -c)
		}
	}

	return v
}
