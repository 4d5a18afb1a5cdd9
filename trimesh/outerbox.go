// File: outerbox.go
// Role: inner/outer triangle classification against an optional bounding
// box (spec §4.8 "outer-box classification" — used to tell real geometry
// apart from triangles only needed to keep the hull convex, e.g. a
// padding frame added around a point cloud before triangulating it).
package trimesh

type outerBox struct {
	minX, minY, maxX, maxY float64
	enabled                bool
}

// SetOuterBox defines the classification box without enabling it.
func (m *TriMesh) SetOuterBox(minX, minY, maxX, maxY float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outer = &outerBox{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
	m.invalidateClassification()
}

// EnableOuterBox turns on inner/outer classification using the box set by
// SetOuterBox. A no-op if no box has been set.
func (m *TriMesh) EnableOuterBox() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outer == nil {
		return
	}
	m.outer.enabled = true
	m.invalidateClassification()
}

// DisableOuterBox turns classification back off; every triangle then
// reports IsInnerTriangle == true.
func (m *TriMesh) DisableOuterBox() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outer != nil {
		m.outer.enabled = false
	}
	m.invalidateClassification()
}

func (m *TriMesh) invalidateClassification() {
	m.arena.Each(func(idx int32) {
		m.arena.Get(idx).classValid = false
	})
}

// IsInnerTriangle reports whether triIdx lies within the outer box (or
// true unconditionally if no box is enabled): a triangle with any vertex
// outside the box is classified outer.
func (m *TriMesh) IsInnerTriangle(triIdx int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isInnerTriangleLocked(triIdx)
}

func (m *TriMesh) isInnerTriangleLocked(triIdx int32) bool {
	t := m.arena.Get(triIdx)
	if t == nil {
		return false
	}
	if m.outer == nil || !m.outer.enabled {
		return true
	}
	if t.classValid {
		return t.inner
	}
	t.inner = m.outer.contains(t.A) && m.outer.contains(t.B) && m.outer.contains(t.C)
	t.classValid = true
	return t.inner
}

// IsInnerSite reports whether s lies within the enabled outer box.
func (m *TriMesh) IsInnerSite(s *Site) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.outer == nil || !m.outer.enabled {
		return true
	}
	return m.outer.contains(s)
}

func (b *outerBox) contains(s *Site) bool {
	return s.x >= b.minX && s.x <= b.maxX && s.y >= b.minY && s.y <= b.maxY
}

// innerSimplexCount counts live triangles currently classified inner,
// used by validate(). Caller must already hold m.mu.
func (m *TriMesh) innerSimplexCount() int {
	n := 0
	m.arena.Each(func(idx int32) {
		if m.isInnerTriangleLocked(idx) {
			n++
		}
	})
	return n
}
