// File: properties.go
// Role: the public property-map surface over meshkit.PropertyDirectory
// (spec §6 get_node_property_map / has_node_property_map /
// node_property_map_names).
package trimesh

// PropertyMap returns the named property map, creating it if it does not
// already exist.
func (m *TriMesh) PropertyMap(name string) *PropertyHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &PropertyHandle{mesh: m, pm: m.props.GetOrCreate(name)}
}

// HasPropertyMap reports whether name has ever been created.
func (m *TriMesh) HasPropertyMap(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.props.Has(name)
}

// PropertyMapNames returns every created property map's name, sorted.
func (m *TriMesh) PropertyMapNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.props.Names()
}

// PropertyHandle is a thin, mesh-lock-aware wrapper over
// meshkit.PropertyMap so callers never reach for the mesh's internal
// mutex themselves.
type PropertyHandle struct {
	mesh *TriMesh
	pm   interface {
		Name() string
		Get(uint64) (interface{}, bool)
		Put(uint64, interface{})
		Delete(uint64)
	}
}

// Name returns the property map's name.
func (h *PropertyHandle) Name() string { return h.pm.Name() }

// Get returns the value stored for s, if any.
func (h *PropertyHandle) Get(s *Site) (interface{}, bool) {
	h.mesh.mu.RLock()
	defer h.mesh.mu.RUnlock()
	return h.pm.Get(s.id)
}

// Put stores value for s.
func (h *PropertyHandle) Put(s *Site, value interface{}) {
	h.mesh.mu.Lock()
	defer h.mesh.mu.Unlock()
	h.pm.Put(s.id, value)
}

// Delete removes s's value.
func (h *PropertyHandle) Delete(s *Site) {
	h.mesh.mu.Lock()
	defer h.mesh.mu.Unlock()
	h.pm.Delete(s.id)
}
