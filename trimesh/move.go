// File: move.go
// Role: MoveSite (spec §4.6c "motion"), implemented as a remove followed
// by a re-insertion at the new coordinates under the same site identity
// and payload — simpler than, and topologically equivalent to, a
// specialized incremental relocation, at the cost of redoing the
// surrounding retriangulation even for a short hop.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// MoveSite relocates s to (x, y), preserving its ID and Payload. Returns
// meshkit.ErrNotInMesh if s is not currently in the mesh, or
// meshkit.ErrDuplicateSite if the destination collides with another
// in-mesh site.
func (m *TriMesh) MoveSite(s *Site, x, y float32) error {
	m.mu.Lock()
	if !s.InMesh() {
		m.mu.Unlock()
		return meshkit.ErrNotInMesh
	}
	m.mu.Unlock()

	if err := m.RemoveSite(s); err != nil {
		return err
	}

	px, py := perturbCoords(x, y)

	m.mu.Lock()
	if m.rootTriangle != meshkit.NoIndex {
		loc := m.locateLocked(px, py)
		if loc.Kind == LocateOnSite {
			m.mu.Unlock()
			m.reinsertAt(s)
			return meshkit.ErrDuplicateSite
		}
	}
	m.mu.Unlock()

	s.x, s.y = px, py
	s.origX, s.origY = x, y
	m.reinsertAt(s)
	return nil
}

// reinsertAt re-adds s (already perturbed, still holding its original ID
// and payload) to the mesh.
func (m *TriMesh) reinsertAt(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()

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
}
