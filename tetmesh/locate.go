// File: locate.go
// Role: jump-and-walk point location in 3D, mirroring trimesh/locate.go:
// pick the closest of a small random sample of in-mesh sites, then walk
// from its witness tet to the query point using Orient3D against each
// of the tet's four faces to decide which face to cross.
package tetmesh

import (
	"math"
	"math/rand"

	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// maintainSample rebuilds the jump-and-walk sample set to roughly
// ceil(k * N^(1/3)) in-mesh sites per spec §4.5's 3D variant, picked
// uniformly at random from the live site list.
func (m *TetMesh) maintainSample() {
	n := m.siteCount
	if n == 0 {
		m.sample = nil
		return
	}
	k := m.cfg.SampleConstant3D
	size := int(math.Ceil(k * math.Cbrt(float64(n))))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}

	all := make([]*Site, 0, n)
	m.eachSiteLocked(func(s *Site) bool {
		if s.InMesh() {
			all = append(all, s)
		}
		return true
	})
	if len(all) == 0 {
		m.sample = nil
		return
	}
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if size > len(all) {
		size = len(all)
	}
	m.sample = append(m.sample[:0], all[:size]...)
}

// closestSample returns the sample site nearest (x, y, z) by straight-line
// distance, as the jump-and-walk starting point.
func (m *TetMesh) closestSample(x, y, z float64) *Site {
	var best *Site
	bestD := math.Inf(1)
	for _, s := range m.sample {
		dx, dy, dz := s.x-x, s.y-y, s.z-z
		d := dx*dx + dy*dy + dz*dz
		if d < bestD {
			bestD, best = d, s
		}
	}
	return best
}

// Locate classifies (x, y, z) against the current tetrahedralization by
// walking from a jump-and-walk start point. Callers pass already-
// perturbed doubles; AddSite/MoveSite perturb their float32 input before
// calling Locate.
func (m *TetMesh) Locate(x, y, z float64) PointLocation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locateLocked(x, y, z)
}

func (m *TetMesh) locateLocked(x, y, z float64) PointLocation {
	if m.rootTet == meshkit.NoIndex {
		return PointLocation{Kind: LocateOutside, Tet: meshkit.NoIndex}
	}

	start := m.closestSample(x, y, z)
	var cur int32
	if start != nil && m.arena.IsLive(start.witness) {
		cur = start.witness
	} else {
		cur = m.rootTet
	}

	maxSteps := m.arena.Len() + 1
	for step := 0; step < maxSteps; step++ {
		t := m.arena.Get(cur)
		if t == nil {
			return PointLocation{Kind: LocateOutside, Tet: meshkit.NoIndex}
		}

		// oX is the orientation of the face opposite vertex X, evaluated
		// against the query point; negative means the query has crossed
		// that face (otherThree's ordering keeps "inside" positive).
		oa := predicate.Orient3D(t.B.x, t.B.y, t.B.z, t.D.x, t.D.y, t.D.z, t.C.x, t.C.y, t.C.z, x, y, z)
		ob := predicate.Orient3D(t.A.x, t.A.y, t.A.z, t.C.x, t.C.y, t.C.z, t.D.x, t.D.y, t.D.z, x, y, z)
		oc := predicate.Orient3D(t.A.x, t.A.y, t.A.z, t.D.x, t.D.y, t.D.z, t.B.x, t.B.y, t.B.z, x, y, z)
		od := predicate.Orient3D(t.A.x, t.A.y, t.A.z, t.B.x, t.B.y, t.B.z, t.C.x, t.C.y, t.C.z, x, y, z)

		switch {
		case oa < 0 && t.NA != meshkit.NoIndex:
			cur = t.NA
			continue
		case ob < 0 && t.NB != meshkit.NoIndex:
			cur = t.NB
			continue
		case oc < 0 && t.NC != meshkit.NoIndex:
			cur = t.NC
			continue
		case od < 0 && t.ND != meshkit.NoIndex:
			cur = t.ND
			continue
		}

		if site := m.onVertex(t, x, y, z); site != nil {
			return PointLocation{Kind: LocateOnSite, Tet: cur, Site: site}
		}

		switch {
		case oa < 0 && t.NA == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Tet: cur, FaceA: t.B, FaceB: t.D, FaceC: t.C}
		case ob < 0 && t.NB == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Tet: cur, FaceA: t.A, FaceB: t.C, FaceC: t.D}
		case oc < 0 && t.NC == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Tet: cur, FaceA: t.A, FaceB: t.D, FaceC: t.B}
		case od < 0 && t.ND == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Tet: cur, FaceA: t.A, FaceB: t.B, FaceC: t.C}
		}
		if oa == 0 || ob == 0 || oc == 0 || od == 0 {
			return PointLocation{Kind: LocateOnFace, Tet: cur}
		}
		return PointLocation{Kind: LocateInside, Tet: cur}
	}
	return PointLocation{Kind: LocateOutside, Tet: meshkit.NoIndex}
}

func (m *TetMesh) onVertex(t *Tet, x, y, z float64) *Site {
	switch {
	case t.A.x == x && t.A.y == y && t.A.z == z:
		return t.A
	case t.B.x == x && t.B.y == y && t.B.z == z:
		return t.B
	case t.C.x == x && t.C.y == y && t.C.z == z:
		return t.C
	case t.D.x == x && t.D.y == y && t.D.z == z:
		return t.D
	default:
		return nil
	}
}
