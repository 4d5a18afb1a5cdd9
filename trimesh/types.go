// File: types.go
// Role: Site, Triangle, Edge, PointLocation and the TriMesh struct itself
// — the 2D data model from spec §3.
package trimesh

import (
	"sync"

	"github.com/dhale/delaunay/meshkit"
)

// Site is a 2D point with an opaque user payload, tracked by the mesh
// while it is in-mesh (spec §3 "Site (Node)").
type Site struct {
	id      uint64
	x, y    float64 // perturbed doubles actually stored/tested
	origX   float32
	origY   float32
	Payload interface{}

	mark    int64
	witness int32 // arena index of a triangle referencing this site, meshkit.NoIndex if not in mesh

	prev, next *Site // circular doubly linked list of ALL sites created by this mesh
	sampled    bool
}

// ID returns the site's stable allocation-time identity, usable wherever
// spec §9's "stable per-site identifier" open question is referenced
// (hashset keys, listener correlation).
func (s *Site) ID() uint64 { return s.id }

// X returns the perturbed double the mesh stores for this site's first
// coordinate.
func (s *Site) X() float64 { return s.x }

// Y returns the perturbed double the mesh stores for this site's second
// coordinate.
func (s *Site) Y() float64 { return s.y }

// InMesh reports whether the site currently has a live witness triangle.
func (s *Site) InMesh() bool { return s.witness != meshkit.NoIndex }

// NewSite constructs a site at (x, y) with the given payload. Coordinates
// are perturbed once, here, at construction — per spec §4.3 perturbation
// happens exactly once while the site is not in a mesh.
func NewSite(x, y float32, payload interface{}) *Site {
	px, py := perturbCoords(x, y)
	return &Site{x: px, y: py, origX: x, origY: y, Payload: payload, witness: meshkit.NoIndex}
}

// Triangle is a 2D simplex: sites A, B, C in CCW order, and neighbors
// NA, NB, NC opposite each site (spec §3 "Simplex").
type Triangle struct {
	A, B, C *Site
	NA, NB, NC int32 // arena indices, meshkit.NoIndex if on the hull

	mark int64

	ccValid  bool
	ccx, ccy float64
	ccr      float64

	classValid bool
	inner      bool

	qualityValid bool
	quality      float64
}

// Sites returns the triangle's three sites in CCW order.
func (t *Triangle) Sites() (a, b, c *Site) { return t.A, t.B, t.C }

// Edge is a value-object descriptor: the two endpoint sites plus a
// cached adjacent triangle used as a search hint (spec §4.4: "Edges and
// faces are value objects").
type Edge struct {
	A, B *Site
	hint int32
}

// PointLocationKind classifies the result of Locate.
type PointLocationKind int

const (
	// LocateOnSite means the query landed exactly on an existing site.
	LocateOnSite PointLocationKind = iota
	// LocateOnEdge means the query landed exactly on a triangle edge.
	LocateOnEdge
	// LocateInside means the query is strictly inside a triangle.
	LocateInside
	// LocateOutside means the query is outside the convex hull.
	LocateOutside
)

// PointLocation is the result of Locate: the classification plus a
// witness triangle and, for LocateOnSite, the matched site.
type PointLocation struct {
	Kind     PointLocationKind
	Triangle int32 // arena index; meshkit.NoIndex if the mesh has no triangle yet
	Site     *Site // set only for LocateOnSite

	// EdgeA, EdgeB are set for LocateOutside: the hull edge (in CCW
	// order as stored by Triangle) that the query point is beyond.
	EdgeA, EdgeB *Site
}

// TriMesh is the 2D incremental Delaunay mesh.
type TriMesh struct {
	mu sync.RWMutex

	cfg meshkit.Config

	arena       *meshkit.Arena[Triangle]
	simplexMark meshkit.MarkState
	siteMark    meshkit.MarkState

	seq       meshkit.SequenceCounter
	root      *Site
	siteCount int

	rootTriangle int32

	// pending holds sites added before three non-collinear sites exist to
	// seed the first triangle (spec §4.6: "the first three non-degenerate
	// sites bootstrap the mesh").
	pending []*Site

	sample []*Site

	version uint64

	listeners *meshkit.Listeners[Event]
	props     *meshkit.PropertyDirectory

	outer *outerBox
}

// EventKind re-exports meshkit.EventKind for callers that only import
// trimesh.
type EventKind = meshkit.EventKind

// Event is the payload fired to listeners registered with OnEvent.
type Event struct {
	Kind     EventKind
	Site     *Site
	Triangle int32
}
