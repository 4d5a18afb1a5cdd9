// File: traversal.go
// Role: nabor queries (spec §4.7): the immediate ring of a site, and a
// bounded k-step BFS outward from it.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// Nabors returns every site directly connected to s by an edge of the
// triangulation (the 1-ring), or meshkit.ErrNotInMesh if s is not in the
// mesh.
func (m *TriMesh) Nabors(s *Site) ([]*Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !s.InMesh() {
		return nil, meshkit.ErrNotInMesh
	}
	ring, _, _, closed := m.linkOf(s)
	if !closed {
		// s sits on the hull; linkOf only walked one direction. Walk the
		// other direction from the starting triangle to pick up the rest
		// of the fan before giving up.
		ring = m.hullSiteRing(s)
	}
	return ring, nil
}

// hullSiteRing walks both directions around a hull site's incident
// triangles to recover its full nabor ring when linkOf's single-direction
// walk hits the hull boundary.
func (m *TriMesh) hullSiteRing(s *Site) []*Site {
	var fwd []*Site
	cur := s.witness
	for cur != meshkit.NoIndex {
		t := m.arena.Get(cur)
		p, q := otherTwo(t, s)
		fwd = append(fwd, p)
		cur = neighborOpposite(t, q)
	}
	t := m.arena.Get(s.witness)
	p, q := otherTwo(t, s)
	back := []*Site{q}
	cur = neighborOpposite(t, p)
	for cur != meshkit.NoIndex {
		tt := m.arena.Get(cur)
		pp, qq := otherTwo(tt, s)
		back = append(back, qq)
		cur = neighborOpposite(tt, pp)
	}
	return append(back, fwd...)
}

// KStepNabors returns every site reachable from s within k triangulation
// edges (a breadth-first frontier), including s's immediate ring at k=1.
// Returns meshkit.ErrStepTooLarge if k exceeds Config.StepMax.
func (m *TriMesh) KStepNabors(s *Site, k int) ([]*Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if k > m.cfg.StepMax {
		return nil, meshkit.ErrStepTooLarge
	}
	if !s.InMesh() {
		return nil, meshkit.ErrNotInMesh
	}

	seen := map[uint64]bool{s.id: true}
	frontier := []*Site{s}
	var all []*Site
	for step := 0; step < k; step++ {
		var next []*Site
		for _, f := range frontier {
			ring, _, _, closed := m.linkOf(f)
			if !closed {
				ring = m.hullSiteRing(f)
			}
			for _, n := range ring {
				if !seen[n.id] {
					seen[n.id] = true
					next = append(next, n)
					all = append(all, n)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return all, nil
}
