// File: property.go
// Role: property-map storage for spec §6 get_node_property_map /
// has_node_property_map / node_property_map_names.
//
// Per spec §9 ("property-map 'dynamic' per-node object slots"), the
// teacher's source appends a value slot to each node as maps are
// created; this module rewrites that as a single directory of
// identity-keyed maps instead, keyed by each site's stable sequence
// number rather than a per-site inline array.
package meshkit

import "sort"

// PropertyMap is a single named property attached to sites, keyed by
// their stable sequence identifier (spec §9's "stable per-site
// identifier").
type PropertyMap struct {
	name   string
	values map[uint64]interface{}
}

// Name returns the property map's registered name.
func (p *PropertyMap) Name() string { return p.name }

// Get returns the value stored for siteID, or nil, false if unset.
func (p *PropertyMap) Get(siteID uint64) (interface{}, bool) {
	v, ok := p.values[siteID]
	return v, ok
}

// Put stores value for siteID.
func (p *PropertyMap) Put(siteID uint64, value interface{}) {
	p.values[siteID] = value
}

// Delete removes siteID's value, e.g. when a site leaves the mesh.
func (p *PropertyMap) Delete(siteID uint64) {
	delete(p.values, siteID)
}

// PropertyDirectory is the per-mesh collection of named PropertyMaps.
type PropertyDirectory struct {
	maps map[string]*PropertyMap
}

// NewPropertyDirectory returns an empty directory.
func NewPropertyDirectory() *PropertyDirectory {
	return &PropertyDirectory{maps: make(map[string]*PropertyMap)}
}

// GetOrCreate returns the named map, creating it (create-on-miss, per
// spec §6) if it does not already exist.
func (d *PropertyDirectory) GetOrCreate(name string) *PropertyMap {
	if m, ok := d.maps[name]; ok {
		return m
	}
	m := &PropertyMap{name: name, values: make(map[uint64]interface{})}
	d.maps[name] = m
	return m
}

// Has reports whether name has been created.
func (d *PropertyDirectory) Has(name string) bool {
	_, ok := d.maps[name]
	return ok
}

// Names returns every registered map's name, sorted for deterministic
// enumeration (mirrors core.Vertices()'s documented sorted-ID contract).
func (d *PropertyDirectory) Names() []string {
	names := make([]string, 0, len(d.maps))
	for n := range d.maps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DeleteSite removes siteID from every registered map, used when a site
// leaves the mesh for good (as opposed to a transient remove-then-re-add
// during MoveSite, where callers choose whether to preserve values).
func (d *PropertyDirectory) DeleteSite(siteID uint64) {
	for _, m := range d.maps {
		m.Delete(siteID)
	}
}
