// File: delete.go
// Role: RemoveSite — removing an interior site retriangulates its link
// (the star-shaped-from-one-vertex boundary polyhedron of incident
// tets) by coning every link face that doesn't already touch the chosen
// vertex, mirroring trimesh/delete.go's polygon fan one dimension up;
// removing a hull site falls back to a full rebuild, the same
// simplification trimesh makes (see DESIGN.md).
package tetmesh

import (
	"github.com/dhale/delaunay/hashset"
	"github.com/dhale/delaunay/meshkit"
)

// RemoveSite deletes s from the mesh. Returns meshkit.ErrNotInMesh if s
// has no witness tet (never added, or already removed).
func (m *TetMesh) RemoveSite(s *Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !s.InMesh() {
		return meshkit.ErrNotInMesh
	}

	m.fireSite(meshkit.SiteWillBeRemoved, s)

	incident, onHull := m.starOf(s)
	if onHull {
		m.rebuildWithout(s)
	} else {
		m.retriangulateCavity(incident, s)
	}

	s.witness = meshkit.NoIndex
	m.unlinkSite(s)
	m.siteCount--
	m.props.DeleteSite(s.id)
	m.version++
	m.maintainSample()
	m.fireSite(meshkit.SiteRemoved, s)
	m.validateIfConfigured()
	return nil
}

// starOf gathers every tet incident to s by flooding out through the
// three neighbors that still share a face with s (the neighbor opposite
// s never does). onHull is true if any incident tet has a NoIndex
// neighbor: across a face containing s (s sits on the convex hull) or
// across the face opposite s (the link of s touches the hull).
func (m *TetMesh) starOf(s *Site) (incident map[int32]bool, onHull bool) {
	incident = map[int32]bool{}
	queue := []int32{s.witness}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if incident[idx] {
			continue
		}
		incident[idx] = true
		t := m.arena.Get(idx)
		if neighborOpposite(t, s) == meshkit.NoIndex {
			onHull = true
		}
		for _, v := range [4]*Site{t.A, t.B, t.C, t.D} {
			if v == s {
				continue
			}
			nb := neighborOpposite(t, v)
			if nb == meshkit.NoIndex {
				onHull = true
			}
			if nb != meshkit.NoIndex && !incident[nb] {
				queue = append(queue, nb)
			}
		}
	}
	return incident, onHull
}

// retriangulateCavity removes the tets incident to the just-deleted
// interior site s and cones the resulting link polyhedron from one of
// its own vertices (spec §9's gift-wrapping deletion, simplified here
// the same way trimesh's polygon fan is — see DESIGN.md).
func (m *TetMesh) retriangulateCavity(incident map[int32]bool, s *Site) {
	var boundary []boundaryFace
	for idx := range incident {
		t := m.arena.Get(idx)
		p, q, r := otherThree(t, s)
		boundary = append(boundary, boundaryFace{p: p, q: q, r: r, outer: neighborOpposite(t, s)})
	}
	for idx := range incident {
		m.arena.Free(idx)
		m.fireTet(meshkit.SimplexRemoved, idx)
	}
	if len(boundary) == 0 {
		return
	}

	v0 := boundary[0].p
	var touching, toFan []boundaryFace
	for _, f := range boundary {
		if f.p == v0 || f.q == v0 || f.r == v0 {
			touching = append(touching, f)
		} else {
			toFan = append(toFan, f)
		}
	}
	m.coneFromVertex(toFan, touching, v0)
}

// sideEntry is a side face shared either between two newly coned tets,
// or between a newly coned tet and a pre-existing face that already
// touched v0 (idx == meshkit.NoIndex marks the latter).
type sideEntry struct {
	idx      int32
	v        *Site
	extOuter int32
	extFace  [3]*Site
}

// coneFromVertex creates one new tet (v0, f) for every link face f that
// doesn't already touch v0, wiring each to its surviving outer neighbor,
// then stitches the new tets' side faces together — to each other, or,
// where a side face coincides with one of v0's pre-existing faces
// (touching), directly to that face's own outer neighbor.
func (m *TetMesh) coneFromVertex(toFan, touching []boundaryFace, v0 *Site) {
	if len(toFan) == 0 {
		return
	}
	newIdxs := make([]int32, len(toFan))
	for i, f := range toFan {
		idx := m.newTet(f.p, f.q, f.r, v0, meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex, f.outer)
		newIdxs[i] = idx
		if f.outer != meshkit.NoIndex {
			outerT := m.arena.Get(f.outer)
			v := fourthVertex(outerT, f.p, f.q, f.r)
			setNeighborOpposite(outerT, v, idx)
		}
		f.p.witness, f.q.witness, f.r.witness = idx, idx, idx
	}
	v0.witness = newIdxs[0]

	sides := hashset.NewFaceSet[sideEntry]()
	for _, f := range touching {
		sides.Add(f.p.id, f.q.id, f.r.id, sideEntry{idx: meshkit.NoIndex, extOuter: f.outer, extFace: [3]*Site{f.p, f.q, f.r}})
	}
	for i, f := range toFan {
		idx := newIdxs[i]
		resolve := func(a, b, c *Site, opposite *Site) {
			_, mate, hadMate := sides.Add(a.id, b.id, c.id, sideEntry{idx: idx, v: opposite})
			if !hadMate {
				return
			}
			if mate.idx == meshkit.NoIndex {
				if mate.extOuter != meshkit.NoIndex {
					outerT := m.arena.Get(mate.extOuter)
					v := fourthVertex(outerT, mate.extFace[0], mate.extFace[1], mate.extFace[2])
					setNeighborOpposite(outerT, v, idx)
				}
				setNeighborOpposite(m.arena.Get(idx), opposite, mate.extOuter)
			} else {
				setNeighborOpposite(m.arena.Get(idx), opposite, mate.idx)
				setNeighborOpposite(m.arena.Get(mate.idx), mate.v, idx)
			}
		}
		resolve(f.q, v0, f.r, f.p)
		resolve(f.p, f.r, v0, f.q)
		resolve(f.p, v0, f.q, f.r)
	}
}

// rebuildWithout discards the whole tetrahedralization and reinserts
// every other currently in-mesh site from scratch. Used only when the
// removed site sits on the convex hull, mirroring trimesh's own fallback.
func (m *TetMesh) rebuildWithout(dead *Site) {
	var survivors []*Site
	m.root2(func(s *Site) bool {
		if s != dead && s.InMesh() {
			survivors = append(survivors, s)
		}
		return true
	})

	m.arena = meshkit.NewArena[Tet](m.cfg.RecyclerCap)
	m.rootTet = meshkit.NoIndex
	m.pending = nil
	for _, s := range survivors {
		s.witness = meshkit.NoIndex
	}

	for _, s := range survivors {
		if m.rootTet == meshkit.NoIndex {
			m.pending = append(m.pending, s)
			m.tryBootstrap()
		} else {
			m.insertIntoMesh(s)
		}
	}
}

// root2 is Sites without the read lock, for use by callers that already
// hold m.mu for writing.
func (m *TetMesh) root2(f func(*Site) bool) {
	if m.root == nil {
		return
	}
	s := m.root
	for {
		if !f(s) {
			return
		}
		s = s.next
		if s == m.root {
			return
		}
	}
}
