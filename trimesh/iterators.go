// File: iterators.go
// Role: enumeration over simplices, edges and hull facets (spec §6
// "iterators"), each a callback-style walk in the teacher's style rather
// than a channel or slice-returning API, to avoid allocating a full copy
// of potentially large meshes just to iterate them once.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// Triangles calls f for every live triangle's arena index, stopping early
// if f returns false.
func (m *TriMesh) Triangles(f func(idx int32) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stop := false
	m.arena.Each(func(idx int32) {
		if !stop && !f(idx) {
			stop = true
		}
	})
}

// Triangle returns a copy of the triangle at idx, or false if idx is not
// a live triangle.
func (m *TriMesh) Triangle(idx int32) (Triangle, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.arena.IsLive(idx) {
		return Triangle{}, false
	}
	return *m.arena.Get(idx), true
}

// Edges calls f once per undirected edge of the triangulation (each
// shared edge visited exactly once, by only reporting it from the
// triangle whose arena index is the smaller of the two incident indices,
// or unconditionally for hull edges).
func (m *TriMesh) Edges(f func(a, b *Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stop := false
	m.arena.Each(func(idx int32) {
		if stop {
			return
		}
		t := m.arena.Get(idx)
		report := func(a, b *Site, n int32) {
			if stop {
				return
			}
			if n == meshkit.NoIndex || idx < n {
				if !f(a, b) {
					stop = true
				}
			}
		}
		report(t.B, t.C, t.NA)
		report(t.C, t.A, t.NB)
		report(t.A, t.B, t.NC)
	})
}

// HullFacets calls f once per convex-hull edge, in CCW order (walking
// a->b keeps the triangulated interior on the left).
func (m *TriMesh) HullFacets(f func(a, b *Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.hullEdges() {
		if !f(e.a, e.b) {
			return
		}
	}
}
