// File: move.go
// Role: MoveSite, implemented as a remove followed by a re-insertion at
// the new coordinates under the same site identity and payload,
// mirroring trimesh/move.go.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

// MoveSite relocates s to (x, y, z), preserving its ID and Payload.
// Returns meshkit.ErrNotInMesh if s is not currently in the mesh, or
// meshkit.ErrDuplicateSite if the destination collides with another
// in-mesh site.
func (m *TetMesh) MoveSite(s *Site, x, y, z float32) error {
	m.mu.Lock()
	if !s.InMesh() {
		m.mu.Unlock()
		return meshkit.ErrNotInMesh
	}
	m.mu.Unlock()

	if err := m.RemoveSite(s); err != nil {
		return err
	}

	px, py, pz := perturbCoords(x, y, z)

	m.mu.Lock()
	if m.rootTet != meshkit.NoIndex {
		loc := m.locateLocked(px, py, pz)
		if loc.Kind == LocateOnSite {
			m.mu.Unlock()
			m.reinsertAt(s)
			return meshkit.ErrDuplicateSite
		}
	}
	m.mu.Unlock()

	s.x, s.y, s.z = px, py, pz
	s.origX, s.origY, s.origZ = x, y, z
	m.reinsertAt(s)
	return nil
}

// reinsertAt re-adds s (already perturbed, still holding its original ID
// and payload) to the mesh.
func (m *TetMesh) reinsertAt(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fireSite(meshkit.SiteWillBeAdded, s)
	m.linkSite(s)
	m.siteCount++

	if m.rootTet == meshkit.NoIndex {
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
