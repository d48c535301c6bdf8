// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"

	"github.com/katalvlaran/lvhull/matrix"
	"github.com/katalvlaran/lvhull/vector"
)

const opValidate = "hull.Validate"

// Validate re-checks the structural invariants of a finished hull:
//
//   - every facet has Dimension() generating points of rank Dimension()−1;
//   - adjacency is symmetric and neighbors share all but one point;
//   - no two facets have the same generating points;
//   - the facet graph is connected (breadth-first walk from facet 0);
//   - no facet has a neighbor whose opposite point lies above it;
//   - every above-set holds exactly the input points above its facet, so a
//     complete hull encloses all of its input.
//
// A hull returned by Build always validates; the method exists for tests
// and for callers that persist facets elsewhere.
func (h *Hull) Validate() error {
	if h.dim == 0 {
		if len(h.facets) != 0 {
			return hullErrorf(opValidate, fmt.Errorf("0-dimensional hull has %d facets: %w", len(h.facets), ErrAdjacencyInconsistency))
		}

		return nil
	}

	keys := make(map[FacetKey]FacetID, len(h.facets))
	for _, f := range h.facets {
		if err := h.validateFacet(f); err != nil {
			return hullErrorf(opValidate, err)
		}
		if other, dup := keys[f.key]; dup {
			return hullErrorf(opValidate, fmt.Errorf("facets %d and %d share points %s: %w", other, f.id, f.key, ErrAdjacencyInconsistency))
		}
		keys[f.key] = f.id
	}

	if reached := h.walk(0); reached != len(h.facets) {
		return hullErrorf(opValidate, fmt.Errorf("only %d of %d facets reachable: %w", reached, len(h.facets), ErrAdjacencyInconsistency))
	}
	if err := h.checkConvexity(); err != nil {
		return hullErrorf(opValidate, err)
	}
	if err := h.checkAboveSets(); err != nil {
		return hullErrorf(opValidate, err)
	}

	return nil
}

// checkConvexity reports a ridge where the point of one facet that is not
// shared with its neighbor lies above the neighbor.
func (h *Hull) checkConvexity() error {
	for _, f := range h.facets {
		for _, nid := range f.neighbors {
			n, ok := h.Facet(nid)
			if !ok {
				return fmt.Errorf("facet %d: neighbor %d out of range: %w", f.id, nid, ErrAdjacencyInconsistency)
			}
			opp, ok := n.PointOfNeighbor(f.id)
			if !ok {
				return fmt.Errorf("facet %d: neighbor %d does not point back: %w", f.id, nid, ErrAdjacencyInconsistency)
			}
			if f.plane.IsAbove(h.points[opp].Coords) {
				return fmt.Errorf("reflex ridge between facets %d and %d, point %d above %d: %w", f.id, nid, opp, f.id, ErrPrecisionInconsistency)
			}
		}
	}

	return nil
}

// checkAboveSets reports an input point that lies above a facet without
// being recorded there, or the reverse.
func (h *Hull) checkAboveSets() error {
	for _, f := range h.facets {
		for _, p := range h.points {
			above := f.plane.IsAbove(p.Coords)
			if above != f.above.contains(p.ID) {
				return fmt.Errorf("point %d above facet %d is %t, recorded %t: %w", p.ID, f.id, above, !above, ErrPrecisionInconsistency)
			}
		}
	}

	return nil
}

func (h *Hull) validateFacet(f *Facet) error {
	if len(f.points) != h.dim {
		return fmt.Errorf("facet %d has %d points, want %d: %w", f.id, len(f.points), h.dim, ErrPrecisionInconsistency)
	}
	rank, err := matrix.AffineRank(h.coords(f), h.tol)
	if err != nil {
		return err
	}
	if rank != h.dim-1 {
		return fmt.Errorf("facet %d has rank %d, want %d: %w", f.id, rank, h.dim-1, ErrPrecisionInconsistency)
	}

	for i, nid := range f.neighbors {
		n, ok := h.Facet(nid)
		if !ok {
			return fmt.Errorf("facet %d: neighbor %d out of range: %w", f.id, nid, ErrAdjacencyInconsistency)
		}
		p, ok := n.PointOfNeighbor(f.id)
		if !ok {
			return fmt.Errorf("facet %d: neighbor %d does not point back: %w", f.id, nid, ErrAdjacencyInconsistency)
		}
		if back, _ := n.NeighborAcross(p); back != f.id {
			return fmt.Errorf("facet %d: neighbor %d points back across %d to %d: %w", f.id, nid, p, back, ErrAdjacencyInconsistency)
		}
		for j, q := range f.points {
			if j != i && n.slotOf(q) < 0 {
				return fmt.Errorf("facet %d: neighbor %d lacks shared point %d: %w", f.id, nid, q, ErrAdjacencyInconsistency)
			}
		}
	}

	return nil
}

// walk runs a breadth-first search over the adjacency from start and
// returns the number of facets reached.
func (h *Hull) walk(start FacetID) int {
	visited := make([]bool, len(h.facets))
	queue := make([]FacetID, 0, len(h.facets))
	visited[start] = true
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		for _, n := range h.facets[queue[head]].neighbors {
			if int(n) < len(visited) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(queue)
}

func (h *Hull) coords(f *Facet) []vector.Vector {
	out := make([]vector.Vector, len(f.points))
	for i, id := range f.points {
		out[i] = h.points[id].Coords
	}

	return out
}
