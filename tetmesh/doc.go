// Package tetmesh implements the 3D incremental Delaunay tetrahedralization
// engine: dynamic insertion, deletion and motion of sites over a
// tetrahedral mesh that maintains the empty-circumsphere property at all
// times (spec §1-§9, 3D half).
//
// tetmesh is the full-dimensional counterpart of trimesh (spec §1: "the 2D
// engine is a structural simplification of the same algorithm"); both
// share predicate, expansion, perturb, meshkit and hashset. Where trimesh
// legalizes one Lawson flip at a time, tetmesh builds the Bowyer-Watson
// cavity directly: the hashset.FaceSet component exists specifically for
// this module's add-or-cancel boundary-face bookkeeping (see
// hashset/faceset.go).
//
// Construction follows the same functional-option style as trimesh:
//
//	m := tetmesh.New(tetmesh.WithDebugValidate())
//	m.AddSite(0, 0, 0, nil)
//	m.AddSite(1, 0, 0, nil)
//	m.AddSite(0, 1, 0, nil)
//	m.AddSite(0, 0, 1, nil)
//
// All mutating methods serialize on one internal sync.RWMutex, for the
// same reason given in trimesh's package doc.
package tetmesh
