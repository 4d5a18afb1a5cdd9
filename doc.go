// Package delaunay is an incremental Delaunay triangulation engine for 2D
// and 3D point sets.
//
// The engine is split across subpackages:
//
//	predicate/  — adaptive-precision orientation and in-circle/in-sphere tests
//	expansion/  — the error-free-transform arithmetic predicate builds on
//	perturb/    — deterministic coordinate perturbation for general position
//	meshkit/    — arena-indexed mesh primitives shared by both dimensions
//	hashset/    — open-addressing edge/face/node sets used by insert/delete
//	trimesh/    — the 2D incremental Delaunay engine
//	tetmesh/    — the 3D incremental Delaunay engine
//
// trimesh and tetmesh each expose AddSite/RemoveSite/MoveSite, Locate,
// nabor queries, iteration over simplices/edges/faces and the hull,
// red/blue marking, property maps, listeners, and Snapshot/Restore.
// See acceptance/ for the end-to-end scenarios both engines satisfy.
package delaunay
