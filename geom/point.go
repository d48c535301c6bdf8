// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvhull/vector"
)

// PointID is the position of a point in the caller's input slice.
type PointID uint32

// Point is an input coordinate together with its identity.
type Point struct {
	ID     PointID
	Coords vector.Vector
}

// NewPoint returns a point holding a copy of coords.
func NewPoint(id PointID, coords ...float64) Point {
	return Point{ID: id, Coords: vector.FromSlice(coords)}
}

// Dimension returns the number of coordinates.
func (p Point) Dimension() int { return p.Coords.Dim() }

// Component returns coordinate i.
func (p Point) Component(i int) (float64, error) { return p.Coords.At(i) }

// DifferenceVector returns p − o.
func (p Point) DifferenceVector(o Point) (vector.Vector, error) {
	return p.Coords.Difference(o.Coords)
}

// String renders the point as "#id<a, b>".
func (p Point) String() string {
	return fmt.Sprintf("#%d%s", p.ID, p.Coords)
}

// Centroid returns the mean of the coordinates of pts.
func Centroid(pts []Point) (vector.Vector, error) {
	vs := make([]vector.Vector, len(pts))
	for i, p := range pts {
		vs[i] = p.Coords
	}

	return vector.Centroid(vs)
}

// FarthestFrom returns the point of pts with the largest distance to ref.
// Ties go to the earliest point. Points whose dimension differs from ref are
// skipped. The bool is false when no point qualifies.
func FarthestFrom(ref vector.Vector, pts []Point) (Point, bool) {
	var (
		best  Point
		bestD = -1.0
	)
	for _, p := range pts {
		d, err := p.Coords.DistanceSquared(ref)
		if err != nil {
			continue
		}
		if d > bestD {
			best, bestD = p, d
		}
	}

	return best, bestD >= 0
}
