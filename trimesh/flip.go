// File: flip.go
// Role: Lawson's incremental flip algorithm, the part of insert.go that
// actually restores the empty-circumcircle invariant after a split or
// hull fan (spec §4.6 step "retriangulate the cavity boundary").
package trimesh

import (
	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// legalize drains a stack of triangles known to contain s, testing each
// one's edge opposite s against InCircle and flipping whenever the
// neighbor across that edge is not yet Delaunay-legal with respect to s.
// A flip reuses both triangles' arena slots and pushes the two results
// back onto the stack, so the process always terminates (each flip
// strictly increases the minimum angle of the affected quad, per the
// standard Lawson-flip termination argument).
func (m *TriMesh) legalize(stack []int32, s *Site) {
	for len(stack) > 0 {
		triIdx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t := m.arena.Get(triIdx)
		if t == nil || !m.arena.IsLive(triIdx) {
			continue
		}
		if t.A != s && t.B != s && t.C != s {
			continue
		}
		p, q := otherTwo(t, s)
		neighborIdx := neighborOpposite(t, s)
		if neighborIdx == meshkit.NoIndex {
			continue
		}
		nt := m.arena.Get(neighborIdx)
		if predicate.InCircle(nt.A.x, nt.A.y, nt.B.x, nt.B.y, nt.C.x, nt.C.y, s.x, s.y) > 0 {
			n1, n2 := m.flipEdge(triIdx, neighborIdx, s, p, q)
			stack = append(stack, n1, n2)
		}
	}
}

// flipEdge replaces the shared edge (p, q) of triangles at triIdx (s, p,
// q) and neighborIdx (q, p, r) with the edge (s, r), reusing both arena
// slots for the two resulting triangles (s, p, r) and (r, q, s).
func (m *TriMesh) flipEdge(triIdx, neighborIdx int32, s, p, q *Site) (int32, int32) {
	t := m.arena.Get(triIdx)
	nt := m.arena.Get(neighborIdx)
	r := thirdVertex(nt, p, q)

	tOppQ := neighborOpposite(t, q)
	tOppP := neighborOpposite(t, p)
	ntOppQ := neighborOpposite(nt, q)
	ntOppP := neighborOpposite(nt, p)

	m.fireTriangle(meshkit.SimplexRemoved, triIdx)
	m.fireTriangle(meshkit.SimplexRemoved, neighborIdx)

	// newT1 = (s, p, r) at triIdx: opposite s = ntOppQ, opposite p =
	// newT2 (the new diagonal), opposite r = tOppQ.
	t.A, t.B, t.C = s, p, r
	t.NA, t.NB, t.NC = ntOppQ, neighborIdx, tOppQ

	// newT2 = (r, q, s) at neighborIdx: opposite r = tOppP, opposite q =
	// newT1, opposite s = ntOppP.
	nt.A, nt.B, nt.C = r, q, s
	nt.NA, nt.NB, nt.NC = tOppP, triIdx, ntOppP

	replaceNeighborValue(m.arena.Get(tOppP), triIdx, neighborIdx)
	replaceNeighborValue(m.arena.Get(ntOppQ), neighborIdx, triIdx)

	p.witness = triIdx
	q.witness = neighborIdx
	r.witness = triIdx
	s.witness = triIdx

	m.fireTriangle(meshkit.SimplexAdded, triIdx)
	m.fireTriangle(meshkit.SimplexAdded, neighborIdx)
	return triIdx, neighborIdx
}
