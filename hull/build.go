// SPDX-License-Identifier: MIT

package hull

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvhull/geom"
	"github.com/katalvlaran/lvhull/matrix"
	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

// builder encapsulates the mutable state of one build. It is owned by a
// single goroutine and discarded once the Hull is frozen.
type builder struct {
	ctx  context.Context
	opts options
	tol  tolerance.Context
	log  *Logger

	points   []geom.Point
	backrefs []idSet[FacetID] // point → facets it lies strictly above
	facets   []*Facet         // arena in creation order, dead entries included
	active   int
	cursor   int // facets before it are dead or have empty above-sets

	dim      int
	sub      *geom.Subspace
	spanning []geom.PointID
	interior vector.Vector
}

// Build computes the convex hull of points, each a coordinate slice of the
// same length. The slices are copied.
//
// Every error is a *BuildError. Stage StageValidate rejects the input
// (ErrEmptyInput, ErrDimensionMismatch, ErrNonFinite); other stages report
// ErrPrecisionInconsistency, ErrAdjacencyInconsistency or
// ErrReferenceInSubspace and yield no hull.
func Build(points [][]float64, opts ...Option) (*Hull, error) {
	vs := make([]vector.Vector, len(points))
	for i, p := range points {
		vs[i] = vector.FromSlice(p)
	}

	return BuildPoints(vs, opts...)
}

// BuildPoints is Build for points already held as vectors.
func BuildPoints(points []vector.Vector, opts ...Option) (*Hull, error) {
	return buildContext(context.Background(), points, gatherOptions(opts...))
}

// buildContext runs one build and reports it. ctx only carries logging
// context; a build is never interrupted.
func buildContext(ctx context.Context, points []vector.Vector, o options) (*Hull, error) {
	start := time.Now()
	b := &builder{ctx: ctx, opts: o, log: o.logger}
	h, err := b.run(points)
	elapsed := time.Since(start)

	var facets, dim int
	complete := false
	if h != nil {
		facets, dim, complete = h.Len(), h.Dimension(), h.Complete()
	}
	o.metrics.RecordBuild(len(points), facets, dim, elapsed, err)
	b.log.LogBuild(ctx, len(points), facets, dim, complete, elapsed, err)

	return h, err
}

// run executes the stages in order.
func (b *builder) run(points []vector.Vector) (*Hull, error) {
	if err := b.validate(points); err != nil {
		return nil, stageErr(StageValidate, err)
	}
	if err := b.selectSpanningSet(); err != nil {
		return nil, stageErr(StageSpanning, err)
	}
	if err := b.buildSimplex(); err != nil {
		return nil, stageErr(StageSimplex, err)
	}
	if err := b.extend(); err != nil {
		return nil, stageErr(StageExtend, err)
	}
	h, err := b.freeze()
	if err != nil {
		return nil, stageErr(StageVerify, err)
	}

	return h, nil
}

// validate checks the input and derives the tolerance context.
func (b *builder) validate(points []vector.Vector) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}
	if uint64(len(points)) >= math.MaxUint32 {
		return fmt.Errorf("%d points: %w", len(points), ErrTooManyPoints)
	}
	derived, err := tolerance.Derive(points, b.opts.tolOpts...)
	if err != nil {
		return err
	}
	b.tol = derived
	if b.opts.hasContext {
		b.tol = b.opts.tol
	}

	b.points = make([]geom.Point, len(points))
	for i, p := range points {
		b.points[i] = geom.Point{ID: geom.PointID(i), Coords: p}
	}
	b.backrefs = make([]idSet[FacetID], len(points))

	return nil
}

// selectSpanningSet grows a subspace from the point farthest from the
// centroid, each time adding the point farthest from the current subspace,
// until that point is already contained.
func (b *builder) selectSpanningSet() error {
	c, err := geom.Centroid(b.points)
	if err != nil {
		return err
	}
	first, _ := geom.FarthestFrom(c, b.points)
	b.sub = geom.NewSubspace(first.Coords, b.tol)
	b.spanning = []geom.PointID{first.ID}

	for b.sub.Dimension() < b.sub.AmbientDimension() {
		far, ok := b.sub.Farthest(b.points)
		if !ok {
			break
		}
		next, grown, err := b.sub.Extend(far.Coords)
		if err != nil {
			return err
		}
		if !grown {
			break
		}
		b.sub = next
		b.spanning = append(b.spanning, far.ID)
	}
	b.dim = b.sub.Dimension()

	coords := b.coordsOf(b.spanning)
	rank, err := matrix.AffineRank(coords, b.tol)
	if err != nil {
		return err
	}
	if rank != b.dim {
		return fmt.Errorf("spanning set of %d points has rank %d: %w", len(b.spanning), rank, ErrPrecisionInconsistency)
	}
	if b.interior, err = vector.Centroid(coords); err != nil {
		return err
	}
	b.log.LogSpanning(b.ctx, len(b.spanning), b.dim)

	return nil
}

// buildSimplex creates the boundary of the spanning simplex: facet i omits
// spanning point i, which also orients it. Its neighbor across spanning
// point m is facet m. Every input point is then classified against every
// facet.
func (b *builder) buildSimplex() error {
	if b.dim == 0 {
		return nil
	}
	n := len(b.spanning)
	for i := 0; i < n; i++ {
		pts := make([]geom.PointID, 0, n-1)
		for m, p := range b.spanning {
			if m != i {
				pts = append(pts, p)
			}
		}
		f := b.alloc(pts, b.spanning[i])
		for m, p := range b.spanning {
			if m == i {
				continue
			}
			if err := f.recordNeighbor(p, FacetID(m)); err != nil {
				return err
			}
		}
		if err := b.bind(f); err != nil {
			return err
		}
	}
	for _, p := range b.points {
		for _, f := range b.facets {
			if err := b.markAbove(f, p); err != nil {
				return err
			}
		}
	}

	return nil
}

// extend inserts the farthest outside point of the oldest facet that has
// one, until none is left or the budget is reached.
func (b *builder) extend() error {
	for b.opts.budget == 0 || b.active < b.opts.budget {
		q, ok, err := b.nextPoint()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := b.insert(q); err != nil {
			return fmt.Errorf("inserting point %d: %w", q, err)
		}
	}

	return nil
}

// nextPoint returns the point of the first live facet with a non-empty
// above-set that lies farthest above it. A live facet's above-set never
// changes after creation, so the scan cursor only moves forward.
func (b *builder) nextPoint() (geom.PointID, bool, error) {
	for ; b.cursor < len(b.facets); b.cursor++ {
		f := b.facets[b.cursor]
		if !f.alive || f.above.isEmpty() {
			continue
		}
		var (
			best  geom.PointID
			bestD = math.Inf(-1)
		)
		for id := range f.above.all() {
			d, err := f.plane.SignedDistance(b.points[id].Coords)
			if err != nil {
				return 0, false, fmt.Errorf("facet %d, point %d: %w", f.id, id, err)
			}
			if d > bestD {
				best, bestD = id, d
			}
		}

		return best, true, nil
	}

	return 0, false, nil
}

// candidate is a replacement facet created for one slot of a visible facet.
type candidate struct {
	f        *Facet
	source   FacetID // the visible facet it replaces
	external FacetID // the neighbor inherited across the replaced point
}

// insert adds q to the hull: every facet q lies above is replaced by the
// facets joining q to the horizon.
func (b *builder) insert(q geom.PointID) error {
	refs := b.backref(q)
	if refs.isEmpty() {
		return fmt.Errorf("point %d is above no facet: %w", q, ErrAdjacencyInconsistency)
	}
	visible := refs.clone()
	visibleIDs := visible.slice()

	// One candidate per (visible facet, slot), wired to its siblings and to
	// the neighbor across the replaced point.
	cands := make([]candidate, 0, len(visibleIDs)*b.dim)
	for _, fid := range visibleIDs {
		src := b.facets[fid]
		base := len(b.facets)
		for i := range src.points {
			pts := src.Points()
			pts[i] = q
			b.alloc(pts, src.points[i])
		}
		for i := range src.points {
			c := b.facets[base+i]
			for j := range src.points {
				if j != i {
					c.neighbors[j] = FacetID(base + j)
				}
			}
			ext := src.neighbors[i]
			if ext == noFacet {
				return fmt.Errorf("facet %d has no neighbor across point %d: %w", fid, src.points[i], ErrAdjacencyInconsistency)
			}
			c.neighbors[i] = ext
			if !visible.contains(ext) {
				if err := b.facets[ext].replaceNeighbor(fid, c.id); err != nil {
					return err
				}
			}
			cands = append(cands, candidate{f: c, source: fid, external: ext})
		}
	}

	discarded, err := b.reconcile(cands, visible)
	if err != nil {
		return err
	}

	pool := b.rehomePool(visibleIDs, cands, visible)
	created := 0
	for k, c := range cands {
		if discarded[k] {
			continue
		}
		if err := b.admit(c, visible, pool); err != nil {
			return err
		}
		created++
	}

	for _, fid := range visibleIDs {
		if err := b.retire(b.facets[fid]); err != nil {
			return err
		}
	}

	b.opts.metrics.RecordInsertion(len(visibleIDs), created, len(cands)-created)
	b.log.LogInsertion(b.ctx, uint32(q), len(visibleIDs), created, b.active)

	return nil
}

// reconcile finds candidate pairs with identical generating points. Such a
// pair was built from the two visible facets sharing a ridge that is not on
// the horizon; both are discarded after splicing their neighbors together.
// A ridge can be shared by two facets only, so a third copy is an error.
func (b *builder) reconcile(cands []candidate, visible idSet[FacetID]) ([]bool, error) {
	discarded := make([]bool, len(cands))
	seen := make(map[FacetKey]int, len(cands))
	var pairs [][2]int
	for k, c := range cands {
		j, dup := seen[c.f.key]
		if !dup {
			seen[c.f.key] = k
			continue
		}
		if discarded[j] {
			return nil, fmt.Errorf("ridge %s shared by more than two facets: %w", c.f.key, ErrAdjacencyInconsistency)
		}
		discarded[j], discarded[k] = true, true
		pairs = append(pairs, [2]int{j, k})
	}

	for _, pair := range pairs {
		a, bb := cands[pair[0]].f, cands[pair[1]].f
		for _, pa := range bb.points {
			f3, ok3 := bb.NeighborAcross(pa)
			f4, ok4 := a.NeighborAcross(pa)
			if !ok3 || !ok4 {
				return nil, fmt.Errorf("duplicate %s lacks a neighbor across %d: %w", a.key, pa, ErrAdjacencyInconsistency)
			}
			if (f3 != a.id && f4 == bb.id) || (f3 == a.id && f4 != bb.id) {
				return nil, fmt.Errorf("facets %d and %d disagree across %d: %w", a.id, bb.id, pa, ErrAdjacencyInconsistency)
			}
			if f3 == a.id || visible.contains(f3) || visible.contains(f4) {
				continue
			}
			n3, n4 := b.facets[f3], b.facets[f4]
			pb, ok := n3.PointOfNeighbor(bb.id)
			if !ok {
				return nil, fmt.Errorf("facet %d is not adjacent to %d: %w", f3, bb.id, ErrAdjacencyInconsistency)
			}
			pc, ok := n4.PointOfNeighbor(a.id)
			if !ok {
				return nil, fmt.Errorf("facet %d is not adjacent to %d: %w", f4, a.id, ErrAdjacencyInconsistency)
			}
			if err := n3.recordNeighbor(pb, f4); err != nil {
				return nil, err
			}
			if err := n4.recordNeighbor(pc, f3); err != nil {
				return nil, err
			}
		}
		a.alive, bb.alive = false, false
	}
	for k, c := range cands {
		if discarded[k] {
			c.f.alive = false
		}
	}

	return discarded, nil
}

// rehomePool collects every point that may lie above a new facet: the
// points above or near any visible facet or any horizon neighbor. A point
// above a new facet lies above its source or its inherited neighbor in exact
// arithmetic; the near-sets and the wider union absorb rounding.
func (b *builder) rehomePool(visibleIDs []FacetID, cands []candidate, visible idSet[FacetID]) idSet[geom.PointID] {
	pool := newIDSet[geom.PointID]()
	for _, fid := range visibleIDs {
		pool.merge(b.facets[fid].above)
		pool.merge(b.facets[fid].near)
	}
	for _, c := range cands {
		if visible.contains(c.external) {
			continue
		}
		pool.merge(b.facets[c.external].above)
		pool.merge(b.facets[c.external].near)
	}

	return pool
}

// admit turns a surviving candidate into an active facet: checks its
// adjacency, attaches its hyperplane and classifies the pool against it.
func (b *builder) admit(c candidate, visible idSet[FacetID], pool idSet[geom.PointID]) error {
	if visible.contains(c.external) {
		return fmt.Errorf("horizon facet %s borders replaced facet %d: %w", c.f.key, c.external, ErrAdjacencyInconsistency)
	}
	for _, n := range c.f.neighbors {
		if n == noFacet || !b.facets[n].alive || visible.contains(n) {
			return fmt.Errorf("facet %s has a stale neighbor: %w", c.f.key, ErrAdjacencyInconsistency)
		}
	}
	if err := b.bind(c.f); err != nil {
		return err
	}
	for id := range pool.all() {
		if err := b.markAbove(c.f, b.points[id]); err != nil {
			return err
		}
	}

	return nil
}

// retire removes a replaced facet from the back-references of its points.
func (b *builder) retire(f *Facet) error {
	for _, id := range f.Above() {
		if !b.backref(id).remove(f.id) {
			return fmt.Errorf("point %d does not reference facet %d: %w", id, f.id, ErrAdjacencyInconsistency)
		}
		f.unmarkAbove(id)
	}
	f.alive = false
	b.active--

	return nil
}

// alloc appends a facet without a hyperplane to the arena.
func (b *builder) alloc(points []geom.PointID, reference geom.PointID) *Facet {
	f := newFacet(FacetID(len(b.facets)), points, reference)
	b.facets = append(b.facets, f)

	return f
}

// bind attaches the hyperplane to f and counts it as active. The replaced
// point orients it; when that point is numerically on the plane the
// interior point is used instead. Every generating point must then lie on
// the plane.
func (b *builder) bind(f *Facet) error {
	gens := b.coordsOf(f.points)
	plane, err := geom.NewHyperplane(b.points[f.reference].Coords, gens, b.tol)
	if errors.Is(err, geom.ErrReferenceInSubspace) {
		plane, err = geom.NewHyperplane(b.interior, gens, b.tol)
	}
	if err != nil {
		return fmt.Errorf("facet %s: %w", f.key, err)
	}
	if err := checkGenerators(f, plane, gens); err != nil {
		return err
	}
	f.plane = plane
	b.active++

	return nil
}

// checkGenerators verifies that every generating point of f lies on plane.
func checkGenerators(f *Facet, plane *geom.Hyperplane, gens []vector.Vector) error {
	for k, g := range gens {
		if !plane.Contains(g) {
			return fmt.Errorf("facet %s: point %d off its hyperplane: %w", f.key, f.points[k], ErrPrecisionInconsistency)
		}
	}

	return nil
}

// markAbove classifies p against f and records the back-reference.
func (b *builder) markAbove(f *Facet, p geom.Point) error {
	if !f.tryMarkAbove(p) {
		return nil
	}
	if !b.backref(p.ID).add(f.id) {
		return fmt.Errorf("point %d already references facet %d: %w", p.ID, f.id, ErrAdjacencyInconsistency)
	}

	return nil
}

// backref returns the back-reference set of a point, allocating it lazily.
func (b *builder) backref(id geom.PointID) idSet[FacetID] {
	if b.backrefs[id].rb == nil {
		b.backrefs[id] = newIDSet[FacetID]()
	}

	return b.backrefs[id]
}

func (b *builder) coordsOf(ids []geom.PointID) []vector.Vector {
	out := make([]vector.Vector, len(ids))
	for i, id := range ids {
		out[i] = b.points[id].Coords
	}

	return out
}

// freeze renumbers the live facets densely and, unless disabled with
// WithVerify(false), checks the result: facet rank, local convexity at
// every ridge and exact above-sets. For a complete build the last check
// means every input point is enclosed.
func (b *builder) freeze() (*Hull, error) {
	remap := make([]FacetID, len(b.facets))
	live := make([]*Facet, 0, b.active)
	for i, f := range b.facets {
		remap[i] = noFacet
		if f.alive {
			remap[i] = FacetID(len(live))
			live = append(live, f)
		}
	}
	for _, f := range live {
		if b.opts.verify {
			rank, err := matrix.AffineRank(b.coordsOf(f.points), b.tol)
			if err != nil {
				return nil, err
			}
			if rank != b.dim-1 {
				return nil, fmt.Errorf("facet %s has rank %d, want %d: %w", f.key, rank, b.dim-1, ErrPrecisionInconsistency)
			}
		}
		f.id = remap[f.id]
		for i, n := range f.neighbors {
			if n == noFacet || remap[n] == noFacet {
				return nil, fmt.Errorf("facet %s points to a removed facet: %w", f.key, ErrAdjacencyInconsistency)
			}
			f.neighbors[i] = remap[n]
		}
	}

	h := &Hull{
		dim:      b.dim,
		interior: b.interior,
		sub:      b.sub,
		tol:      b.tol,
		points:   b.points,
		spanning: b.spanning,
		facets:   live,
		budget:   b.opts.budget,
	}
	if b.opts.verify {
		if err := h.checkConvexity(); err != nil {
			return nil, err
		}
		if err := h.checkAboveSets(); err != nil {
			return nil, err
		}
	}

	return h, nil
}
