// File: topology.go
// Role: low-level neighbor-pointer bookkeeping shared by insert.go and
// delete.go — identity-based, so callers never need to know which of
// NA/NB/NC a given vertex occupies.
package trimesh

import "github.com/dhale/delaunay/meshkit"

// newTriangle allocates and fills an arena slot for triangle (a, b, c)
// with the given neighbors opposite each vertex, and fires SimplexAdded.
func (m *TriMesh) newTriangle(a, b, c *Site, na, nb, nc int32) int32 {
	idx := m.arena.Alloc()
	t := m.arena.Get(idx)
	t.A, t.B, t.C = a, b, c
	t.NA, t.NB, t.NC = na, nb, nc
	m.fireTriangle(meshkit.SimplexAdded, idx)
	return idx
}

// neighborOpposite returns t's neighbor across the edge opposite v.
// v must be one of t.A, t.B, t.C.
func neighborOpposite(t *Triangle, v *Site) int32 {
	switch v {
	case t.A:
		return t.NA
	case t.B:
		return t.NB
	default:
		return t.NC
	}
}

// setNeighborOpposite sets t's neighbor across the edge opposite v.
func setNeighborOpposite(t *Triangle, v *Site, idx int32) {
	switch v {
	case t.A:
		t.NA = idx
	case t.B:
		t.NB = idx
	default:
		t.NC = idx
	}
}

// otherTwo returns t's two vertices other than v, in the order that makes
// (v, p, q) a CCW rotation of t's stored (A, B, C) order.
func otherTwo(t *Triangle, v *Site) (p, q *Site) {
	switch v {
	case t.A:
		return t.B, t.C
	case t.B:
		return t.C, t.A
	default:
		return t.A, t.B
	}
}

// thirdVertex returns the vertex of t that is neither p nor q.
func thirdVertex(t *Triangle, p, q *Site) *Site {
	switch {
	case t.A != p && t.A != q:
		return t.A
	case t.B != p && t.B != q:
		return t.B
	default:
		return t.C
	}
}

// replaceNeighborValue scans t's three neighbor fields and replaces the
// one equal to oldIdx with newIdx. A no-op if oldIdx is meshkit.NoIndex.
func replaceNeighborValue(t *Triangle, oldIdx, newIdx int32) {
	if oldIdx == meshkit.NoIndex || t == nil {
		return
	}
	switch oldIdx {
	case t.NA:
		t.NA = newIdx
	case t.NB:
		t.NB = newIdx
	case t.NC:
		t.NC = newIdx
	}
}
