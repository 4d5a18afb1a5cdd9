// File: insert.go
// Role: AddSite and the incremental-insertion core (spec §4.6 "Bowyer-
// Watson cavity construction"). This module builds the cavity lazily,
// one Lawson flip at a time, instead of the batch cavity-polygon variant:
// split the located triangle around the new site, then repeatedly test
// and flip every newly exposed edge against InCircle. The two approaches
// construct the identical final triangulation; the flip-stack form keeps
// the bookkeeping to plain neighbor-pointer swaps, which is why this
// module favors it (see DESIGN.md).
package trimesh

import (
	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// AddSite inserts a new site at (x, y) with the given payload and returns
// it. Returns meshkit.ErrDuplicateSite if (x, y) perturbs to exactly an
// existing in-mesh site's coordinates (spec §4.6 edge case).
func (m *TriMesh) AddSite(x, y float32, payload interface{}) (*Site, error) {
	s := NewSite(x, y, payload)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rootTriangle != meshkit.NoIndex {
		loc := m.locateLocked(s.x, s.y)
		if loc.Kind == LocateOnSite {
			return nil, meshkit.ErrDuplicateSite
		}
	} else {
		for _, p := range m.pending {
			if p.x == s.x && p.y == s.y {
				return nil, meshkit.ErrDuplicateSite
			}
		}
	}

	s.id = m.seq.Next()
	m.fireSite(meshkit.SiteWillBeAdded, s)

	m.linkSite(s)
	m.siteCount++

	if m.rootTriangle == meshkit.NoIndex {
		m.pending = append(m.pending, s)
		m.tryBootstrap()
	} else {
		m.insertIntoMesh(s)
	}

	m.version++
	m.maintainSample()
	m.fireSite(meshkit.SiteAdded, s)
	m.validateIfConfigured()
	return s, nil
}

// tryBootstrap scans m.pending for three non-collinear sites and, if
// found, builds the first triangle and folds every other pending site
// into the mesh via the normal insertion path.
func (m *TriMesh) tryBootstrap() {
	if len(m.pending) < 3 {
		return
	}
	for i := 0; i < len(m.pending)-2; i++ {
		for j := i + 1; j < len(m.pending)-1; j++ {
			for k := j + 1; k < len(m.pending); k++ {
				a, b, c := m.pending[i], m.pending[j], m.pending[k]
				o := predicate.Orient2D(a.x, a.y, b.x, b.y, c.x, c.y)
				if o == 0 {
					continue
				}
				if o < 0 {
					b, c = c, b
				}
				rest := make([]*Site, 0, len(m.pending)-3)
				for idx, p := range m.pending {
					if idx != i && idx != j && idx != k {
						rest = append(rest, p)
					}
				}
				m.pending = nil
				m.seedTriangle(a, b, c)
				for _, p := range rest {
					m.insertIntoMesh(p)
				}
				return
			}
		}
	}
}

// seedTriangle creates the mesh's first triangle from three sites already
// known to be CCW-ordered and non-collinear.
func (m *TriMesh) seedTriangle(a, b, c *Site) {
	idx := m.arena.Alloc()
	t := m.arena.Get(idx)
	t.A, t.B, t.C = a, b, c
	t.NA, t.NB, t.NC = meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex
	a.witness, b.witness, c.witness = idx, idx, idx
	m.rootTriangle = idx
	m.fireTriangle(meshkit.SimplexAdded, idx)
}

// insertIntoMesh adds s to a mesh that already has at least one triangle.
func (m *TriMesh) insertIntoMesh(s *Site) {
	loc := m.locateLocked(s.x, s.y)
	switch loc.Kind {
	case LocateInside:
		m.insertInside(loc.Triangle, s)
	case LocateOnEdge:
		m.insertOnEdge(loc.Triangle, s)
	case LocateOutside:
		m.insertOutside(s)
	}
}

// insertInside splits the triangle at triIdx into three around s, then
// legalizes the three newly exposed edges.
func (m *TriMesh) insertInside(triIdx int32, s *Site) {
	t := m.arena.Get(triIdx)
	a, b, c := t.A, t.B, t.C
	na, nb, nc := t.NA, t.NB, t.NC
	m.arena.Free(triIdx)
	m.fireTriangle(meshkit.SimplexRemoved, triIdx)

	i1 := m.newTriangle(a, b, s, meshkit.NoIndex, meshkit.NoIndex, nc)
	i2 := m.newTriangle(b, c, s, meshkit.NoIndex, meshkit.NoIndex, na)
	i3 := m.newTriangle(c, a, s, meshkit.NoIndex, meshkit.NoIndex, nb)

	nodes := newFanNodes()
	m.stitchFanBoundary(nodes, i1, a, b)
	m.stitchFanBoundary(nodes, i2, b, c)
	m.stitchFanBoundary(nodes, i3, c, a)

	replaceNeighborValue(m.arena.Get(na), triIdx, i2)
	replaceNeighborValue(m.arena.Get(nb), triIdx, i3)
	replaceNeighborValue(m.arena.Get(nc), triIdx, i1)

	a.witness, b.witness, c.witness, s.witness = i1, i2, i3, i1

	m.legalize([]int32{i1, i2, i3}, s)
}

// insertOnEdge handles a query landing exactly on an edge: both triangles
// sharing that edge (or just one, on the hull) are each split in two.
func (m *TriMesh) insertOnEdge(triIdx int32, s *Site) {
	t := m.arena.Get(triIdx)
	// Identify the zero-orientation edge and the opposite vertex.
	var p, q, apex *Site
	var nOpp int32
	switch {
	case predicate.Orient2D(t.B.x, t.B.y, t.C.x, t.C.y, s.x, s.y) == 0:
		p, q, apex, nOpp = t.B, t.C, t.A, t.NA
	case predicate.Orient2D(t.C.x, t.C.y, t.A.x, t.A.y, s.x, s.y) == 0:
		p, q, apex, nOpp = t.C, t.A, t.B, t.NB
	default:
		p, q, apex, nOpp = t.A, t.B, t.C, t.NC
	}
	farA := neighborOpposite(t, p)
	farB := neighborOpposite(t, q)
	m.arena.Free(triIdx)
	m.fireTriangle(meshkit.SimplexRemoved, triIdx)

	i1 := m.newTriangle(apex, p, s, farA, meshkit.NoIndex, meshkit.NoIndex)
	i2 := m.newTriangle(q, apex, s, farB, meshkit.NoIndex, meshkit.NoIndex)
	t1, t2 := m.arena.Get(i1), m.arena.Get(i2)
	t1.NB, t1.NC = meshkit.NoIndex, i2
	t2.NB, t2.NC = i1, meshkit.NoIndex

	replaceNeighborValue(m.arena.Get(farA), triIdx, i1)
	replaceNeighborValue(m.arena.Get(farB), triIdx, i2)

	p.witness, q.witness, apex.witness, s.witness = i1, i2, i1, i1
	stack := []int32{i1, i2}

	if nOpp != meshkit.NoIndex {
		m.insertOnEdgeOther(nOpp, p, q, s, &stack)
	}
	m.legalize(stack, s)
}

// insertOnEdgeOther splits the triangle on the other side of a shared
// edge the query point landed on exactly, mirroring insertOnEdge.
func (m *TriMesh) insertOnEdgeOther(triIdx int32, p, q, s *Site, stack *[]int32) {
	t := m.arena.Get(triIdx)
	apex := thirdVertex(t, p, q)
	farA := neighborOpposite(t, p)
	farB := neighborOpposite(t, q)
	m.arena.Free(triIdx)
	m.fireTriangle(meshkit.SimplexRemoved, triIdx)

	i1 := m.newTriangle(p, apex, s, farA, meshkit.NoIndex, meshkit.NoIndex)
	i2 := m.newTriangle(apex, q, s, farB, meshkit.NoIndex, meshkit.NoIndex)
	t1, t2 := m.arena.Get(i1), m.arena.Get(i2)
	t1.NB, t1.NC = meshkit.NoIndex, i2
	t2.NB, t2.NC = i1, meshkit.NoIndex

	replaceNeighborValue(m.arena.Get(farA), triIdx, i1)
	replaceNeighborValue(m.arena.Get(farB), triIdx, i2)
	apex.witness = i1

	*stack = append(*stack, i1, i2)
}

// hullEdge is one edge of the convex hull, in CCW order (walking A->B
// keeps the triangulated interior on the left), together with the
// interior triangle it bounds.
type hullEdge struct {
	a, b  *Site
	inner int32
}

// hullEdges scans every live triangle for a NoIndex neighbor and returns
// every hull edge. The triangulated region's boundary is always the
// convex hull, so this is exactly the polygon a point can be "outside" of.
func (m *TriMesh) hullEdges() []hullEdge {
	var edges []hullEdge
	m.arena.Each(func(idx int32) {
		t := m.arena.Get(idx)
		if t.NA == meshkit.NoIndex {
			edges = append(edges, hullEdge{t.B, t.C, idx})
		}
		if t.NB == meshkit.NoIndex {
			edges = append(edges, hullEdge{t.C, t.A, idx})
		}
		if t.NC == meshkit.NoIndex {
			edges = append(edges, hullEdge{t.A, t.B, idx})
		}
	})
	return edges
}

// insertOutside extends the hull by fanning s to every hull edge visible
// from it (spec §4.6: the Bowyer-Watson cavity degenerates to a hull fan
// when the new site lies outside every existing circumcircle).
func (m *TriMesh) insertOutside(s *Site) {
	var visible []hullEdge
	for _, e := range m.hullEdges() {
		if predicate.Orient2D(e.a.x, e.a.y, e.b.x, e.b.y, s.x, s.y) < 0 {
			visible = append(visible, e)
		}
	}

	// Chain the visible edges into the single arc a convex hull always
	// presents to an outside point: byStart[v.id] maps a vertex to the
	// edge beginning there.
	byStart := make(map[uint64]hullEdge, len(visible))
	isChainEnd := make(map[uint64]bool, len(visible))
	for _, e := range visible {
		byStart[e.a.id] = e
		isChainEnd[e.b.id] = true
	}
	var startEdge hullEdge
	for _, e := range visible {
		if !isChainEnd[e.a.id] {
			startEdge = e
			break
		}
	}

	var chain []int32
	e := startEdge
	for i := 0; i < len(visible); i++ {
		// e.a, e.b keep the old interior on their left, so (e.a, e.b, s)
		// is clockwise; store (b, a, s) to keep the new triangle CCW.
		idx := m.newTriangle(e.b, e.a, s, meshkit.NoIndex, meshkit.NoIndex, e.inner)
		innerT := m.arena.Get(e.inner)
		setNeighborOpposite(innerT, thirdVertex(innerT, e.a, e.b), idx)
		chain = append(chain, idx)
		next, ok := byStart[e.b.id]
		if !ok {
			break
		}
		e = next
	}

	// Each fan triangle's boundary edge runs the same direction as the
	// hull edge it replaces (B->A, i.e. the original e.a->e.b); stitching
	// consecutive triangles' shared apex spokes this way reproduces the
	// same prev/next wiring a direct chain walk would, via add-or-cancel
	// instead of index arithmetic.
	nodes := newFanNodes()
	for _, idx := range chain {
		t := m.arena.Get(idx)
		m.stitchFanBoundary(nodes, idx, t.B, t.A)
		t.A.witness, t.B.witness = idx, idx
	}
	s.witness = chain[0]
	m.legalize(chain, s)
}
