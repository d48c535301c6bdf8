// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

const (
	opNewFamily           = "NewFamily"
	opNewDifferenceFamily = "NewDifferenceFamily"
	opFamilyRank          = "Family.Rank"
)

// Family is an ordered set of equal-length vectors whose numeric rank can be
// evaluated against a tolerance.Context. Each vector is one matrix row.
type Family struct {
	rows [][]float64
	dim  int
}

// NewFamily builds a family from vs. All vectors must share one dimension.
// An empty family has rank 0.
func NewFamily(vs []vector.Vector) (*Family, error) {
	f := &Family{rows: make([][]float64, 0, len(vs))}
	if len(vs) > 0 {
		f.dim = vs[0].Dim()
	}
	for i, v := range vs {
		if v.Dim() != f.dim {
			return nil, matrixErrorf(opNewFamily,
				fmt.Errorf("vector %d has %d components, want %d: %w", i, v.Dim(), f.dim, ErrDimensionMismatch))
		}
		f.rows = append(f.rows, v.Components())
	}

	return f, nil
}

// NewDifferenceFamily builds the family {p_i − p_0 : i ≥ 1}. Its rank is the
// affine dimension of the points. A single point yields an empty family.
func NewDifferenceFamily(points []vector.Vector) (*Family, error) {
	if len(points) == 0 {
		return &Family{}, nil
	}
	diffs := make([]vector.Vector, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		d, err := points[i].Difference(points[0])
		if err != nil {
			return nil, matrixErrorf(opNewDifferenceFamily, fmt.Errorf("point %d: %w", i, err))
		}
		diffs = append(diffs, d)
	}
	f, err := NewFamily(diffs)
	if err != nil {
		return nil, matrixErrorf(opNewDifferenceFamily, err)
	}
	f.dim = points[0].Dim()

	return f, nil
}

// Len returns the number of vectors in the family.
func (f *Family) Len() int { return len(f.rows) }

// Dimension returns the common vector dimension.
func (f *Family) Dimension() int { return f.dim }

// Rank returns the number of linearly independent vectors in the family
// under tol.PivotZero(). It never exceeds min(Len, Dimension).
func (f *Family) Rank(tol tolerance.Context) (int, error) {
	if len(f.rows) == 0 || f.dim == 0 {
		return 0, nil
	}
	m, err := NewDenseFromRows(f.rows)
	if err != nil {
		return 0, matrixErrorf(opFamilyRank, err)
	}
	r, err := Rank(m, tol.PivotZero())
	if err != nil {
		return 0, matrixErrorf(opFamilyRank, err)
	}

	return r, nil
}

// AffineRank is shorthand for NewDifferenceFamily(points).Rank(tol).
// For large point sets it may exceed the affine dimension; see Rank.
func AffineRank(points []vector.Vector, tol tolerance.Context) (int, error) {
	f, err := NewDifferenceFamily(points)
	if err != nil {
		return 0, err
	}

	return f.Rank(tol)
}
