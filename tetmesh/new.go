// File: new.go
// Role: constructor and functional options, mirroring trimesh/new.go.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

// Option configures a TetMesh at construction time.
type Option = meshkit.Option

// WithRecyclerCap overrides the idle free-list cap for recycled tets.
func WithRecyclerCap(cap int) Option { return meshkit.WithRecyclerCap(cap) }

// WithSampleConstant3D overrides the jump-and-walk sample-set constant k.
func WithSampleConstant3D(k float64) Option { return meshkit.WithSampleConstant3D(k) }

// WithStepMax overrides the k-step nabor traversal ceiling.
func WithStepMax(stepMax int) Option { return meshkit.WithStepMax(stepMax) }

// WithDebugValidate enables validate() after every mutation.
func WithDebugValidate() Option { return meshkit.WithDebugValidate() }

// New returns an empty 3D Delaunay mesh.
func New(opts ...Option) *TetMesh {
	cfg := meshkit.NewConfig(opts...)
	return &TetMesh{
		cfg:       cfg,
		arena:     meshkit.NewArena[Tet](cfg.RecyclerCap),
		tetMark:   meshkit.NewMarkState(),
		siteMark:  meshkit.NewMarkState(),
		rootTet:   meshkit.NoIndex,
		listeners: meshkit.NewListeners[Event](),
		props:     meshkit.NewPropertyDirectory(),
	}
}

// Len returns the number of sites currently in the mesh.
func (m *TetMesh) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.siteCount
}

// Version returns the mutation counter.
func (m *TetMesh) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// OnEvent registers fn to be called for every listener event.
func (m *TetMesh) OnEvent(fn func(Event)) [16]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners.Register(fn)
}

// RemoveListener unregisters a callback previously returned by OnEvent.
func (m *TetMesh) RemoveListener(token [16]byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners.Unregister(token)
}

// Listener is the interface-based alternative to OnEvent's plain callback,
// for callers that want to register a stateful object (or, in tests, a
// mock) rather than a closure.
type Listener = meshkit.Listener[Event]

// AddListener registers l and returns a token RemoveListener accepts.
func (m *TetMesh) AddListener(l Listener) (token [16]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners.RegisterListener(l)
}
