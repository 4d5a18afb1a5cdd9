// File: site.go
// Role: the circular site list, mirroring trimesh/site.go.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

func (m *TetMesh) linkSite(s *Site) {
	if m.root == nil {
		s.prev, s.next = s, s
		m.root = s
		return
	}
	tail := m.root.prev
	tail.next = s
	s.prev = tail
	s.next = m.root
	m.root.prev = s
}

func (m *TetMesh) unlinkSite(s *Site) {
	if s.next == s {
		m.root = nil
		s.prev, s.next = nil, nil
		return
	}
	s.prev.next = s.next
	s.next.prev = s.prev
	if m.root == s {
		m.root = s.next
	}
	s.prev, s.next = nil, nil
}

// Sites calls f for every site this mesh currently holds, stopping early
// if f returns false.
func (m *TetMesh) Sites(f func(*Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.eachSiteLocked(f)
}

// eachSiteLocked is Sites without taking the lock, for callers already
// holding m.mu.
func (m *TetMesh) eachSiteLocked(f func(*Site) bool) {
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

// Site returns the site whose ID matches id, or nil.
func (m *TetMesh) Site(id uint64) *Site {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var found *Site
	m.eachSiteLocked(func(s *Site) bool {
		if s.id == id {
			found = s
			return false
		}
		return true
	})
	return found
}

func (m *TetMesh) fireSite(kind meshkit.EventKind, s *Site) {
	m.listeners.Fire(Event{Kind: kind, Site: s, Tet: meshkit.NoIndex})
}

func (m *TetMesh) fireTet(kind meshkit.EventKind, idx int32) {
	m.listeners.Fire(Event{Kind: kind, Tet: idx})
}
