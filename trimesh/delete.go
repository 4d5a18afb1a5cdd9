// File: delete.go
// Role: RemoveSite — removing an interior site retriangulates its link
// (the star-shaped boundary polygon of incident triangles) by fanning
// from one surviving neighbor and legalizing the new diagonals; removing
// a hull site falls back to a full rebuild (spec §9 "gift-wrapping
// deletion" is simplified here — see DESIGN.md for the tradeoff).
package trimesh

import (
	"github.com/dhale/delaunay/meshkit"
)

// RemoveSite deletes s from the mesh. Returns meshkit.ErrNotInMesh if s
// has no witness triangle (never added, or already removed).
func (m *TriMesh) RemoveSite(s *Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !s.InMesh() {
		return meshkit.ErrNotInMesh
	}

	m.fireSite(meshkit.SiteWillBeRemoved, s)

	ring, triRing, outer, closed := m.linkOf(s)
	if closed && len(ring) >= 3 {
		m.retriangulateHole(ring, triRing, outer)
	} else {
		m.rebuildWithout(s)
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

// linkOf walks the ring of triangles incident to s, returning the
// boundary polygon vertices, the incident triangle indices (parallel to
// the polygon's edges), and each edge's outward neighbor. closed is false
// if the walk reached the hull before closing (s is itself a hull site).
func (m *TriMesh) linkOf(s *Site) (ring []*Site, triRing []int32, outer []int32, closed bool) {
	first := s.witness
	cur := first
	for {
		t := m.arena.Get(cur)
		p, _ := otherTwo(t, s)
		ring = append(ring, p)
		triRing = append(triRing, cur)
		outer = append(outer, neighborOpposite(t, s))
		next := neighborOpposite(t, p)
		if next == meshkit.NoIndex {
			return ring, triRing, outer, false
		}
		cur = next
		if cur == first {
			return ring, triRing, outer, true
		}
		if len(ring) > m.arena.Len()+1 {
			return ring, triRing, outer, false
		}
	}
}

// retriangulateHole removes the incident triangles of a just-deleted
// interior site and fans the resulting star-shaped hole from ring[0].
func (m *TriMesh) retriangulateHole(ring []*Site, triRing, outer []int32) {
	k := len(ring)
	for _, idx := range triRing {
		m.arena.Free(idx)
		m.fireTriangle(meshkit.SimplexRemoved, idx)
	}
	if k == 3 {
		// Already a single triangle; nothing to legalize against itself.
		idx := m.newTriangle(ring[0], ring[1], ring[2], outer[1], outer[2], outer[0])
		replaceNeighborValue(m.arena.Get(outer[0]), triRing[0], idx)
		replaceNeighborValue(m.arena.Get(outer[1]), triRing[1], idx)
		replaceNeighborValue(m.arena.Get(outer[2]), triRing[2], idx)
		ring[0].witness, ring[1].witness, ring[2].witness = idx, idx, idx
		return
	}

	p0 := ring[0]
	fanCount := k - 2
	fanIdx := make([]int32, fanCount)
	for idx := 0; idx < fanCount; idx++ {
		i := idx + 1
		fanIdx[idx] = m.newTriangle(p0, ring[i], ring[(i+1)%k], meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex)
	}
	for idx := 0; idx < fanCount; idx++ {
		i := idx + 1
		t := m.arena.Get(fanIdx[idx])
		pi, pi1 := ring[i], ring[(i+1)%k]

		setNeighborOpposite(t, p0, outer[i])
		replaceNeighborValue(m.arena.Get(outer[i]), triRing[i], fanIdx[idx])

		if idx == 0 {
			setNeighborOpposite(t, pi1, outer[0])
			replaceNeighborValue(m.arena.Get(outer[0]), triRing[0], fanIdx[idx])
		} else {
			setNeighborOpposite(t, pi1, fanIdx[idx-1])
		}

		if idx == fanCount-1 {
			setNeighborOpposite(t, pi, outer[k-1])
			replaceNeighborValue(m.arena.Get(outer[k-1]), triRing[k-1], fanIdx[idx])
		} else {
			setNeighborOpposite(t, pi, fanIdx[idx+1])
		}

		p0.witness, pi.witness, pi1.witness = fanIdx[idx], fanIdx[idx], fanIdx[idx]
	}

	m.legalize(append([]int32{}, fanIdx...), p0)
}

// rebuildWithout discards the whole triangulation and reinserts every
// other currently in-mesh site from scratch. Used only when the removed
// site sits on the convex hull, where the star-shaped-polygon fan used
// for interior removal does not apply directly.
func (m *TriMesh) rebuildWithout(dead *Site) {
	var survivors []*Site
	m.root2(func(s *Site) bool {
		if s != dead && s.InMesh() {
			survivors = append(survivors, s)
		}
		return true
	})

	m.arena = meshkit.NewArena[Triangle](m.cfg.RecyclerCap)
	m.rootTriangle = meshkit.NoIndex
	m.pending = nil
	for _, s := range survivors {
		s.witness = meshkit.NoIndex
	}

	for _, s := range survivors {
		if m.rootTriangle == meshkit.NoIndex {
			m.pending = append(m.pending, s)
			m.tryBootstrap()
		} else {
			m.insertIntoMesh(s)
		}
	}
}

// root2 is Sites without the read lock, for use by callers that already
// hold m.mu for writing.
func (m *TriMesh) root2(f func(*Site) bool) {
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
