// File: cavity.go
// Role: shared 2D cavity-filling bookkeeping (spec §4.9 "Node set (2D):
// keys are single sites plus a pairing scheme used during 2D cavity
// filling"). insertInside, insertOutside and retriangulateHole all create
// a one-apex fan of triangles around a shared ring of boundary sites; this
// is the single place that stitches each pair of fan triangles meeting at
// a boundary site into reciprocal neighbors.
package trimesh

import "github.com/dhale/delaunay/hashset"

// fanSide is the payload registered per boundary-site arrival/departure:
// which triangle claimed it, and which of that triangle's own sites is
// opposite the spoke slot to fill in once the matching side shows up.
type fanSide struct {
	idx   int32
	other *Site
}

// newFanNodes returns the NodeSet backing one fan-stitching pass. Callers
// create one per insertion/deletion and discard it once the fan is built.
func newFanNodes() *hashset.NodeSet[fanSide] {
	return hashset.NewNodeSet[fanSide]()
}

// stitchFanBoundary registers triangle idx's directed boundary edge
// start->end (the two ring sites of a one-apex fan triangle, walked in
// the same direction the ring/hull chain itself is walked). The first
// fan triangle to reach a given ring site pends; when the triangle on the
// other side of that site arrives, nodes' add-or-cancel semantics pop the
// pending entry and the two triangles are wired together across their
// shared apex spoke.
func (m *TriMesh) stitchFanBoundary(nodes *hashset.NodeSet[fanSide], idx int32, start, end *Site) {
	m.stitchFanSpoke(nodes, start, false, fanSide{idx: idx, other: end})
	m.stitchFanSpoke(nodes, end, true, fanSide{idx: idx, other: start})
}

func (m *TriMesh) stitchFanSpoke(nodes *hashset.NodeSet[fanSide], v *Site, arrives bool, self fanSide) {
	_, mate, hadMate := nodes.Add(v.id, arrives, self)
	if !hadMate {
		return
	}
	setNeighborOpposite(m.arena.Get(self.idx), self.other, mate.idx)
	setNeighborOpposite(m.arena.Get(mate.idx), mate.other, self.idx)
}
