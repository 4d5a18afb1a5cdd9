// File: outerbox.go
// Role: inner/outer tet classification against an optional bounding box,
// mirroring trimesh/outerbox.go one dimension up.
package tetmesh

type outerBox struct {
	minX, minY, minZ float64
	maxX, maxY, maxZ float64
	enabled          bool
}

// SetOuterBox defines the classification box without enabling it.
func (m *TetMesh) SetOuterBox(minX, minY, minZ, maxX, maxY, maxZ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outer = &outerBox{minX: minX, minY: minY, minZ: minZ, maxX: maxX, maxY: maxY, maxZ: maxZ}
	m.invalidateClassification()
}

// EnableOuterBox turns on inner/outer classification using the box set by
// SetOuterBox. A no-op if no box has been set.
func (m *TetMesh) EnableOuterBox() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outer == nil {
		return
	}
	m.outer.enabled = true
	m.invalidateClassification()
}

// DisableOuterBox turns classification back off; every tet then reports
// IsInnerTet == true.
func (m *TetMesh) DisableOuterBox() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outer != nil {
		m.outer.enabled = false
	}
	m.invalidateClassification()
}

func (m *TetMesh) invalidateClassification() {
	m.arena.Each(func(idx int32) {
		m.arena.Get(idx).classValid = false
	})
}

// IsInnerTet reports whether idx lies within the outer box (or true
// unconditionally if no box is enabled): a tet with any vertex outside
// the box is classified outer.
func (m *TetMesh) IsInnerTet(idx int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isInnerTetLocked(idx)
}

func (m *TetMesh) isInnerTetLocked(idx int32) bool {
	t := m.arena.Get(idx)
	if t == nil {
		return false
	}
	if m.outer == nil || !m.outer.enabled {
		return true
	}
	if t.classValid {
		return t.inner
	}
	t.inner = m.outer.contains(t.A) && m.outer.contains(t.B) && m.outer.contains(t.C) && m.outer.contains(t.D)
	t.classValid = true
	return t.inner
}

// IsInnerSite reports whether s lies within the enabled outer box.
func (m *TetMesh) IsInnerSite(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.outer == nil || !m.outer.enabled {
		return true
	}
	return m.outer.contains(s)
}

func (b *outerBox) contains(s *Site) bool {
	return s.x >= b.minX && s.x <= b.maxX &&
		s.y >= b.minY && s.y <= b.maxY &&
		s.z >= b.minZ && s.z <= b.maxZ
}

// innerSimplexCount counts live tets currently classified inner, used by
// validate(). Caller must already hold m.mu.
func (m *TetMesh) innerSimplexCount() int {
	n := 0
	m.arena.Each(func(idx int32) {
		if m.isInnerTetLocked(idx) {
			n++
		}
	})
	return n
}
