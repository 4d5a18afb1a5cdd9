// File: marks.go
// Role: the public Mark/Unmark surface over meshkit's lazy red/blue
// scheme (spec §6), kept separate for sites and simplices per spec's
// distinct clear_node_marks / clear_simplex_marks operations.
package trimesh

// MarkSiteRed marks s red.
func (m *TriMesh) MarkSiteRed(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.MarkRed(&s.mark)
}

// MarkSiteBlue marks s blue.
func (m *TriMesh) MarkSiteBlue(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.MarkBlue(&s.mark)
}

// UnmarkSite clears s's mark.
func (m *TriMesh) UnmarkSite(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.Unmark(&s.mark)
}

// IsSiteMarkedRed reports whether s is currently marked red.
func (m *TriMesh) IsSiteMarkedRed(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarkedRed(s.mark)
}

// IsSiteMarkedBlue reports whether s is currently marked blue.
func (m *TriMesh) IsSiteMarkedBlue(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarkedBlue(s.mark)
}

// IsSiteMarked reports whether s carries either mark.
func (m *TriMesh) IsSiteMarked(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarked(s.mark)
}

// ClearSiteMarks clears every site's red and blue marks in O(1); if the shared
// counter is near exhaustion a full sweep runs instead (spec §4.4).
func (m *TriMesh) ClearSiteMarks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if needsSweep := m.siteMark.ClearRed(); needsSweep {
		m.root2(func(s *Site) bool { s.mark = 0; return true })
		m.siteMark.Sweep()
	}
	if needsSweep := m.siteMark.ClearBlue(); needsSweep {
		m.root2(func(s *Site) bool { s.mark = 0; return true })
		m.siteMark.Sweep()
	}
}

// MarkSimplexRed marks the triangle at idx red.
func (m *TriMesh) MarkSimplexRed(idx int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.arena.Get(idx); t != nil {
		m.simplexMark.MarkRed(&t.mark)
	}
}

// MarkSimplexBlue marks the triangle at idx blue.
func (m *TriMesh) MarkSimplexBlue(idx int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.arena.Get(idx); t != nil {
		m.simplexMark.MarkBlue(&t.mark)
	}
}

// IsSimplexMarked reports whether the triangle at idx carries either mark.
func (m *TriMesh) IsSimplexMarked(idx int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t := m.arena.Get(idx)
	if t == nil {
		return false
	}
	return m.simplexMark.IsMarked(t.mark)
}

// ClearSimplexMarks clears every live triangle's marks in O(1), falling
// back to a full sweep on counter exhaustion.
func (m *TriMesh) ClearSimplexMarks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if needsSweep := m.simplexMark.ClearRed(); needsSweep {
		m.arena.Each(func(idx int32) { m.arena.Get(idx).mark = 0 })
		m.simplexMark.Sweep()
	}
	if needsSweep := m.simplexMark.ClearBlue(); needsSweep {
		m.arena.Each(func(idx int32) { m.arena.Get(idx).mark = 0 })
		m.simplexMark.Sweep()
	}
}
