// File: new.go
// Role: constructor and functional options, in the teacher's
// core.NewGraph(opts ...GraphOption) style.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// Option configures a TriMesh at construction time.
type Option = meshkit.Option

// WithRecyclerCap overrides the idle free-list cap for recycled triangles.
func WithRecyclerCap(cap int) Option { return meshkit.WithRecyclerCap(cap) }

// WithSampleConstant2D overrides the jump-and-walk sample-set constant k.
func WithSampleConstant2D(k float64) Option { return meshkit.WithSampleConstant2D(k) }

// WithStepMax overrides the k-step nabor traversal ceiling.
func WithStepMax(stepMax int) Option { return meshkit.WithStepMax(stepMax) }

// WithDebugValidate enables validate() after every mutation.
func WithDebugValidate() Option { return meshkit.WithDebugValidate() }

// New returns an empty 2D Delaunay mesh.
func New(opts ...Option) *TriMesh {
	cfg := meshkit.NewConfig(opts...)
	return &TriMesh{
		cfg:          cfg,
		arena:        meshkit.NewArena[Triangle](cfg.RecyclerCap),
		simplexMark:  meshkit.NewMarkState(),
		siteMark:     meshkit.NewMarkState(),
		rootTriangle: meshkit.NoIndex,
		listeners:    meshkit.NewListeners[Event](),
		props:        meshkit.NewPropertyDirectory(),
	}
}

// Len returns the number of sites currently in the mesh.
func (m *TriMesh) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteCount
}

// Version returns the mutation counter, bumped once per successful
// AddSite/RemoveSite/MoveSite (spec §6 "version()").
func (m *TriMesh) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// OnEvent registers fn to be called for every listener event and returns a
// token accepted by RemoveListener.
func (m *TriMesh) OnEvent(fn func(Event)) (token [16]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.listeners.Register(fn)
	return id
}

// RemoveListener unregisters a callback previously returned by OnEvent.
func (m *TriMesh) RemoveListener(token [16]byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners.Unregister(token)
}

// Listener is the interface-based alternative to OnEvent's plain callback,
// for callers that want to register a stateful object (or, in tests, a
// mock) rather than a closure.
type Listener = meshkit.Listener[Event]

// AddListener registers l and returns a token RemoveListener accepts.
func (m *TriMesh) AddListener(l Listener) (token [16]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners.RegisterListener(l)
}
