// File: traversal.go
// Role: nabor queries, mirroring trimesh/traversal.go: the immediate
// vertex-link of a site, and a bounded k-step BFS outward from it.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

// Nabors returns every site directly connected to s by an edge of the
// tetrahedralization, or meshkit.ErrNotInMesh if s is not in the mesh.
func (m *TetMesh) Nabors(s *Site) ([]*Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !s.InMesh() {
		return nil, meshkit.ErrNotInMesh
	}
	return m.naborsLocked(s), nil
}

func (m *TetMesh) naborsLocked(s *Site) []*Site {
	incident, _ := m.starOf(s)
	seen := map[uint64]bool{}
	var out []*Site
	for idx := range incident {
		t := m.arena.Get(idx)
		for _, v := range [4]*Site{t.A, t.B, t.C, t.D} {
			if v == s || seen[v.id] {
				continue
			}
			seen[v.id] = true
			out = append(out, v)
		}
	}
	return out
}

// KStepNabors returns every site reachable from s within k
// tetrahedralization edges (a breadth-first frontier), including s's
// immediate link at k=1. Returns meshkit.ErrStepTooLarge if k exceeds
// Config.StepMax.
func (m *TetMesh) KStepNabors(s *Site, k int) ([]*Site, error) {
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
			for _, n := range m.naborsLocked(f) {
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
