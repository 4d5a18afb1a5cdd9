// File: types.go
// Role: Site, Tet, PointLocation and the TetMesh struct — the 3D data
// model mirroring trimesh/types.go.
package tetmesh

import (
	"sync"

	"github.com/dhale/delaunay/meshkit"
)

// Site is a 3D point with an opaque user payload.
type Site struct {
	id      uint64
	x, y, z float64
	origX   float32
	origY   float32
	origZ   float32
	Payload interface{}

	mark    int64
	witness int32

	prev, next *Site
	sampled    bool
}

// ID returns the site's stable allocation-time identity.
func (s *Site) ID() uint64 { return s.id }

// X returns the perturbed double stored for this site's first coordinate.
func (s *Site) X() float64 { return s.x }

// Y returns the perturbed double stored for this site's second coordinate.
func (s *Site) Y() float64 { return s.y }

// Z returns the perturbed double stored for this site's third coordinate.
func (s *Site) Z() float64 { return s.z }

// InMesh reports whether the site currently has a live witness tet.
func (s *Site) InMesh() bool { return s.witness != meshkit.NoIndex }

// NewSite constructs a site at (x, y, z) with the given payload,
// perturbing its coordinates once, up front (spec §4.3).
func NewSite(x, y, z float32, payload interface{}) *Site {
	px, py, pz := perturbCoords(x, y, z)
	return &Site{x: px, y: py, z: pz, origX: x, origY: y, origZ: z, Payload: payload, witness: meshkit.NoIndex}
}

// Tet is a 3D simplex: sites A, B, C, D ordered so Orient3D(A,B,C,D) > 0,
// and neighbors NA..ND opposite each site.
type Tet struct {
	A, B, C, D     *Site
	NA, NB, NC, ND int32

	mark int64

	classValid bool
	inner      bool
}

// Sites returns the tet's four sites in their stored order.
func (t *Tet) Sites() (a, b, c, d *Site) { return t.A, t.B, t.C, t.D }

// PointLocationKind classifies the result of Locate.
type PointLocationKind int

const (
	LocateOnSite PointLocationKind = iota
	LocateOnFace
	LocateInside
	LocateOutside
)

// PointLocation is the result of Locate.
type PointLocation struct {
	Kind PointLocationKind
	Tet  int32
	Site *Site

	// FaceA, FaceB, FaceC are set for LocateOutside: the hull face (in
	// the triangle's own CCW-from-outside order) the query is beyond.
	FaceA, FaceB, FaceC *Site
}

// EventKind re-exports meshkit.EventKind.
type EventKind = meshkit.EventKind

// Event is the payload fired to listeners registered with OnEvent.
type Event struct {
	Kind EventKind
	Site *Site
	Tet  int32
}

// TetMesh is the 3D incremental Delaunay mesh.
type TetMesh struct {
	mu sync.RWMutex

	cfg meshkit.Config

	arena    *meshkit.Arena[Tet]
	tetMark  meshkit.MarkState
	siteMark meshkit.MarkState

	seq       meshkit.SequenceCounter
	root      *Site
	siteCount int

	rootTet int32
	pending []*Site
	sample  []*Site

	version uint64

	listeners *meshkit.Listeners[Event]
	props     *meshkit.PropertyDirectory

	outer *outerBox
}
