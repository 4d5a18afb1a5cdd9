// File: topology.go
// Role: identity-based neighbor bookkeeping for 4-vertex tets, mirroring
// trimesh/topology.go.
package tetmesh

import "github.com/dhale/delaunay/meshkit"

func neighborOpposite(t *Tet, v *Site) int32 {
	switch v {
	case t.A:
		return t.NA
	case t.B:
		return t.NB
	case t.C:
		return t.NC
	default:
		return t.ND
	}
}

func setNeighborOpposite(t *Tet, v *Site, idx int32) {
	switch v {
	case t.A:
		t.NA = idx
	case t.B:
		t.NB = idx
	case t.C:
		t.NC = idx
	default:
		t.ND = idx
	}
}

// otherThree returns t's three vertices other than v, in face order such
// that Orient3D(p, q, r, v) > 0 (i.e. (p, q, r) is the face opposite v,
// wound so v is "below" it).
func otherThree(t *Tet, v *Site) (p, q, r *Site) {
	// Orient3D is antisymmetric under any transposition of its points and
	// invariant under even permutations (it is a signed-volume
	// determinant), so the face opposite v that keeps Orient3D(p,q,r,v) >
	// 0 is not simply "the other three in storage order" — each case
	// below is the even permutation of (A,B,C,D) with v moved last.
	switch v {
	case t.A:
		return t.B, t.D, t.C
	case t.B:
		return t.A, t.C, t.D
	case t.C:
		return t.A, t.D, t.B
	default:
		return t.A, t.B, t.C
	}
}

// fourthVertex returns the vertex of t that is none of p, q, r.
func fourthVertex(t *Tet, p, q, r *Site) *Site {
	for _, v := range [4]*Site{t.A, t.B, t.C, t.D} {
		if v != p && v != q && v != r {
			return v
		}
	}
	return nil
}

func replaceNeighborValue(t *Tet, oldIdx, newIdx int32) {
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
	case t.ND:
		t.ND = newIdx
	}
}

// newTet allocates and fills an arena slot for tet (a, b, c, d), assumed
// already correctly oriented (Orient3D(a,b,c,d) > 0), with the given
// neighbors opposite each vertex.
func (m *TetMesh) newTet(a, b, c, d *Site, na, nb, nc, nd int32) int32 {
	idx := m.arena.Alloc()
	t := m.arena.Get(idx)
	t.A, t.B, t.C, t.D = a, b, c, d
	t.NA, t.NB, t.NC, t.ND = na, nb, nc, nd
	m.fireTet(meshkit.SimplexAdded, idx)
	return idx
}
