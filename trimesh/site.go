// File: site.go
// Role: the circular doubly linked list of every site this mesh has ever
// constructed (spec §4.4: "sites enumerate independently of simplex
// topology, via their own list"), plus the small helpers AddSite/
// RemoveSite/MoveSite share.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// linkSite splices s into the circular list, right after root (or as the
// sole element if the list is empty).
func (m *TriMesh) linkSite(s *Site) {
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

// unlinkSite removes s from the circular list. s must already be in it.
func (m *TriMesh) unlinkSite(s *Site) {
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

// Sites calls f for every site this mesh currently holds (in the mesh or
// not), in construction order, stopping early if f returns false.
func (m *TriMesh) Sites(f func(*Site) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
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

// Site returns the in-mesh site whose ID matches id, or nil if none does.
// This is a linear scan (spec does not require ID-indexed lookup beyond
// what callers get back from AddSite); callers expecting to look sites up
// repeatedly should keep their own *Site reference instead.
func (m *TriMesh) Site(id uint64) *Site {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.root == nil {
		return nil
	}
	s := m.root
	for {
		if s.id == id {
			return s
		}
		s = s.next
		if s == m.root {
			return nil
		}
	}
}

func (m *TriMesh) fireSite(kind meshkit.EventKind, s *Site) {
	m.listeners.Fire(Event{Kind: kind, Site: s, Triangle: meshkit.NoIndex})
}

func (m *TriMesh) fireTriangle(kind meshkit.EventKind, idx int32) {
	m.listeners.Fire(Event{Kind: kind, Triangle: idx})
}
