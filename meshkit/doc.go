// Package meshkit provides the dimension-independent mesh primitives
// shared by trimesh (2D) and tetmesh (3D): arena-indexed storage with
// O(1) recycling (spec §4.4 "mesh primitives, marking, recycling"), the
// lazy red/blue mark scheme, the site linked-list/property-map/listener
// surface that spec §6 exposes externally, and the small tunable
// Config the two mesh engines share.
//
// Arena indexing (rather than the teacher's *Vertex/*Edge pointer style)
// is the one place this module deliberately departs from the teacher's
// literal representation — spec §9 calls it out explicitly ("cyclic
// simplex graph -> arena+index") because Go has no safe way to express
// the source's mutually-referencing heap objects without either GC
// pressure on every recycle or unsafe pointer games. The teacher's
// actual convention (stable integer/string handles into a map, as
// core.Graph does for vertices/edges by ID) is generalized here to a
// typed, slice-backed arena indexed by int32.
package meshkit
