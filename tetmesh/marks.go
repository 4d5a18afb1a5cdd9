// File: marks.go
// Role: the public Mark/Unmark surface over meshkit's lazy red/blue
// scheme, mirroring trimesh/marks.go for sites and tets.
package tetmesh

// MarkSiteRed marks s red.
func (m *TetMesh) MarkSiteRed(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.MarkRed(&s.mark)
}

// MarkSiteBlue marks s blue.
func (m *TetMesh) MarkSiteBlue(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.MarkBlue(&s.mark)
}

// UnmarkSite clears s's mark.
func (m *TetMesh) UnmarkSite(s *Site) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteMark.Unmark(&s.mark)
}

// IsSiteMarkedRed reports whether s is currently marked red.
func (m *TetMesh) IsSiteMarkedRed(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarkedRed(s.mark)
}

// IsSiteMarkedBlue reports whether s is currently marked blue.
func (m *TetMesh) IsSiteMarkedBlue(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarkedBlue(s.mark)
}

// IsSiteMarked reports whether s carries either mark.
func (m *TetMesh) IsSiteMarked(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteMark.IsMarked(s.mark)
}

// ClearSiteMarks clears every site's marks in O(1); if the shared
// counter is near exhaustion a full sweep runs instead.
func (m *TetMesh) ClearSiteMarks() {
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

// MarkSimplexRed marks the tet at idx red.
func (m *TetMesh) MarkSimplexRed(idx int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.arena.Get(idx); t != nil {
		m.tetMark.MarkRed(&t.mark)
	}
}

// MarkSimplexBlue marks the tet at idx blue.
func (m *TetMesh) MarkSimplexBlue(idx int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t := m.arena.Get(idx); t != nil {
		m.tetMark.MarkBlue(&t.mark)
	}
}

// IsSimplexMarked reports whether the tet at idx carries either mark.
func (m *TetMesh) IsSimplexMarked(idx int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t := m.arena.Get(idx)
	if t == nil {
		return false
	}
	return m.tetMark.IsMarked(t.mark)
}

// ClearSimplexMarks clears every live tet's marks in O(1), falling back
// to a full sweep on counter exhaustion.
func (m *TetMesh) ClearSimplexMarks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if needsSweep := m.tetMark.ClearRed(); needsSweep {
		m.arena.Each(func(idx int32) { m.arena.Get(idx).mark = 0 })
		m.tetMark.Sweep()
	}
	if needsSweep := m.tetMark.ClearBlue(); needsSweep {
		m.arena.Each(func(idx int32) { m.arena.Get(idx).mark = 0 })
		m.tetMark.Sweep()
	}
}
