// File: iterators.go
// Role: enumeration over simplices, faces and hull facets, mirroring
// trimesh/iterators.go one dimension up.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

// Tets calls f for every live tet's arena index, stopping early is not
// supported by meshkit.Arena.Each, so f's return value is ignored beyond
// this call — kept callback-style to match Triangles' signature.
func (m *TetMesh) Tets(f func(idx int32) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.arena.Each(func(idx int32) {
		f(idx)
	})
}

// Tet returns a copy of the tet at idx, or false if idx is not a live tet.
func (m *TetMesh) Tet(idx int32) (Tet, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.arena.IsLive(idx) {
		return Tet{}, false
	}
	return *m.arena.Get(idx), true
}

// Faces calls f once per undirected triangular face of the
// tetrahedralization (each shared face visited exactly once, by only
// reporting it from the tet whose arena index is the smaller of the two
// incident indices, or unconditionally for hull faces).
func (m *TetMesh) Faces(f func(a, b, c *Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stop := false
	m.arena.Each(func(idx int32) {
		if stop {
			return
		}
		t := m.arena.Get(idx)
		report := func(a, b, c *Site, n int32) {
			if stop {
				return
			}
			if n == meshkit.NoIndex || idx < n {
				if !f(a, b, c) {
					stop = true
				}
			}
		}
		report(t.B, t.D, t.C, t.NA)
		report(t.A, t.C, t.D, t.NB)
		report(t.A, t.D, t.B, t.NC)
		report(t.A, t.B, t.C, t.ND)
	})
}

// HullFacets calls f once per convex-hull face, oriented so the
// tetrahedralized interior lies on the negative side (a.k.a. outward).
func (m *TetMesh) HullFacets(f func(a, b, c *Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, face := range m.hullFaces() {
		if !f(face.p, face.q, face.r) {
			return
		}
	}
}
