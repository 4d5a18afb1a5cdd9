// Package trimesh implements the 2D incremental Delaunay triangulation
// engine: dynamic insertion, deletion and motion of sites over a triangle
// mesh that maintains the empty-circumcircle property at all times
// (spec §1–§9, 2D half).
//
// trimesh is the structural simplification of tetmesh (spec §1: "the 2D
// engine is a structural simplification of the same algorithm"); both
// share predicate, expansion, perturb, meshkit and hashset.
//
// Construction follows the teacher's functional-option style
// (core.NewGraph(opts ...GraphOption)):
//
//	m := trimesh.New(trimesh.WithDebugValidate())
//	m.AddSite(0, 0, nil)
//	m.AddSite(1, 0, nil)
//	m.AddSite(0, 1, nil)
//
// All mutating methods serialize on one internal sync.RWMutex (spec §5:
// single-writer, cooperative; readers may run concurrently with other
// readers but never with an active writer) — the teacher's muVert/
// muEdgeAdj split collapses to one lock here because a trimesh mutation
// always touches sites and simplices together, unlike the teacher's
// graph where vertex-only and edge-only operations are genuinely
// independent.
package trimesh
