// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvhull/geom"
)

// FacetID addresses a facet in its hull. IDs of a finished hull are dense,
// 0..Len()-1, in creation order.
type FacetID uint32

// noFacet marks an unset adjacency slot.
const noFacet = ^FacetID(0)

// FacetKey identifies a facet by its generating points: the sorted point ids
// joined by commas. Two facets are equal iff their keys are equal.
type FacetKey string

func keyOf(points []geom.PointID) FacetKey {
	sorted := slices.Clone(points)
	slices.Sort(sorted)
	var sb strings.Builder
	for i, p := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(p), 10))
	}

	return FacetKey(sb.String())
}

// Facet is one (d−1)-simplex of the hull boundary: d generating points, the
// hyperplane through them with the hull interior below, one neighbor per
// generating point, and the input points lying strictly above it.
//
// Slot i of the adjacency holds the neighbor sharing every generating point
// except points[i]. A Facet returned by a finished Hull is read-only.
type Facet struct {
	id        FacetID
	points    []geom.PointID
	reference geom.PointID
	plane     *geom.Hyperplane
	neighbors []FacetID
	above     idSet[geom.PointID]
	near      idSet[geom.PointID] // non-generating points within tolerance of the plane
	key       FacetKey
	alive     bool
}

// newFacet allocates a facet without a hyperplane; bind attaches one.
func newFacet(id FacetID, points []geom.PointID, reference geom.PointID) *Facet {
	f := &Facet{
		id:        id,
		points:    points,
		reference: reference,
		neighbors: make([]FacetID, len(points)),
		above:     newIDSet[geom.PointID](),
		near:      newIDSet[geom.PointID](),
		key:       keyOf(points),
		alive:     true,
	}
	for i := range f.neighbors {
		f.neighbors[i] = noFacet
	}

	return f
}

// ID returns the facet's identifier.
func (f *Facet) ID() FacetID { return f.id }

// Points returns the generating point ids in slot order.
func (f *Facet) Points() []geom.PointID { return slices.Clone(f.points) }

// Hyperplane returns the oriented supporting hyperplane.
func (f *Facet) Hyperplane() *geom.Hyperplane { return f.plane }

// Neighbors returns the adjacency in slot order.
func (f *Facet) Neighbors() []FacetID { return slices.Clone(f.neighbors) }

// Key returns the canonical identity of the facet.
func (f *Facet) Key() FacetKey { return f.key }

// Equal reports whether o has the same generating points.
func (f *Facet) Equal(o *Facet) bool {
	return o != nil && f.key == o.key
}

// slotOf returns the slot of generating point p, or -1.
func (f *Facet) slotOf(p geom.PointID) int {
	return slices.Index(f.points, p)
}

// NeighborAcross returns the neighbor sharing every generating point but p.
// The bool is false when p does not generate f.
func (f *Facet) NeighborAcross(p geom.PointID) (FacetID, bool) {
	i := f.slotOf(p)
	if i < 0 || f.neighbors[i] == noFacet {
		return noFacet, false
	}

	return f.neighbors[i], true
}

// PointOfNeighbor returns the generating point across which n is adjacent.
// The bool is false when n is not a neighbor of f.
func (f *Facet) PointOfNeighbor(n FacetID) (geom.PointID, bool) {
	i := slices.Index(f.neighbors, n)
	if i < 0 {
		return 0, false
	}

	return f.points[i], true
}

// Above returns the ids of the input points strictly above f, ascending.
// It is empty for every facet of a complete hull.
func (f *Facet) Above() []geom.PointID { return f.above.slice() }

// AboveCount returns the size of the above-set.
func (f *Facet) AboveCount() int { return f.above.len() }

// String implements fmt.Stringer.
func (f *Facet) String() string {
	return fmt.Sprintf("facet#%d{points=[%s] above=%d}", f.id, f.key, f.above.len())
}

// recordNeighbor stores n as the neighbor across p.
func (f *Facet) recordNeighbor(p geom.PointID, n FacetID) error {
	i := f.slotOf(p)
	if i < 0 {
		return fmt.Errorf("facet %d has no point %d: %w", f.id, p, ErrAdjacencyInconsistency)
	}
	f.neighbors[i] = n

	return nil
}

// replaceNeighbor redirects the slot currently holding old to n.
func (f *Facet) replaceNeighbor(old, n FacetID) error {
	i := slices.Index(f.neighbors, old)
	if i < 0 {
		return fmt.Errorf("facet %d is not adjacent to %d: %w", f.id, old, ErrAdjacencyInconsistency)
	}
	f.neighbors[i] = n

	return nil
}

// tryMarkAbove records p when it lies strictly above the hyperplane and
// reports whether it was added. A point within tolerance of the plane that
// does not generate f goes to the near-set instead: it may lie above a facet
// that later replaces f. A point already recorded is not reclassified.
func (f *Facet) tryMarkAbove(p geom.Point) bool {
	if f.above.contains(p.ID) {
		return false
	}
	switch {
	case f.plane.IsAbove(p.Coords):
		return f.above.add(p.ID)
	case f.plane.Contains(p.Coords) && f.slotOf(p.ID) < 0:
		f.near.add(p.ID)
	}

	return false
}

// Near returns the ids of the non-generating input points within tolerance
// of the hyperplane, ascending.
func (f *Facet) Near() []geom.PointID { return f.near.slice() }

// unmarkAbove removes p from the above-set and reports whether it was there.
func (f *Facet) unmarkAbove(p geom.PointID) bool {
	return f.above.remove(p)
}
