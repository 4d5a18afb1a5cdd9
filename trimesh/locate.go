// File: locate.go
// Role: jump-and-walk point location (spec §4.5 "Spatial locate"): pick
// the closest of a small random sample of in-mesh sites, then walk the
// straight line from its witness triangle to the query point using
// Orient2D to decide which edge to cross.
package trimesh

import (
	"math"
	"math/rand"

	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// maintainSample rebuilds the jump-and-walk sample set to roughly
// ceil(k * N^(1/2)) in-mesh sites (spec §4.5), picked uniformly at
// random from the live site list. Called after every successful
// AddSite/RemoveSite, since the sample references *Site pointers whose
// witness may have gone stale.
func (m *TriMesh) maintainSample() {
	n := m.siteCount
	if n == 0 {
		m.sample = nil
		return
	}
	k := m.cfg.SampleConstant2D
	size := int(math.Ceil(k * math.Sqrt(float64(n))))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}

	all := make([]*Site, 0, n)
	m.root2(func(s *Site) bool {
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

// closestSample returns the sample site nearest (x, y) by straight-line
// distance, as the jump-and-walk starting point.
func (m *TriMesh) closestSample(x, y float64) *Site {
	var best *Site
	bestD := math.Inf(1)
	for _, s := range m.sample {
		dx, dy := s.x-x, s.y-y
		d := dx*dx + dy*dy
		if d < bestD {
			bestD, best = d, s
		}
	}
	return best
}

// Locate classifies (x, y) against the current triangulation by walking
// from a jump-and-walk start point (spec §4.5). Callers pass already-
// perturbed doubles; AddSite/MoveSite perturb their float32 input before
// calling Locate.
func (m *TriMesh) Locate(x, y float64) PointLocation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locateLocked(x, y)
}

func (m *TriMesh) locateLocked(x, y float64) PointLocation {
	if m.rootTriangle == meshkit.NoIndex {
		return PointLocation{Kind: LocateOutside, Triangle: meshkit.NoIndex}
	}

	start := m.closestSample(x, y)
	var cur int32
	if start != nil && m.arena.IsLive(start.witness) {
		cur = start.witness
	} else {
		cur = m.rootTriangle
	}

	// Walk at most Len() triangles; the mesh is planar-connected so this
	// always terminates well before that bound in practice.
	maxSteps := m.arena.Len() + 1
	for step := 0; step < maxSteps; step++ {
		t := m.arena.Get(cur)
		if t == nil {
			return PointLocation{Kind: LocateOutside, Triangle: meshkit.NoIndex}
		}
		oa := predicate.Orient2D(t.B.x, t.B.y, t.C.x, t.C.y, x, y)
		ob := predicate.Orient2D(t.C.x, t.C.y, t.A.x, t.A.y, x, y)
		oc := predicate.Orient2D(t.A.x, t.A.y, t.B.x, t.B.y, x, y)

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
		}

		if site := m.onVertex(t, x, y); site != nil {
			return PointLocation{Kind: LocateOnSite, Triangle: cur, Site: site}
		}

		// A negative orientation against an edge with no neighbor means
		// the query is beyond the hull across exactly that edge.
		switch {
		case oa < 0 && t.NA == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Triangle: cur, EdgeA: t.B, EdgeB: t.C}
		case ob < 0 && t.NB == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Triangle: cur, EdgeA: t.C, EdgeB: t.A}
		case oc < 0 && t.NC == meshkit.NoIndex:
			return PointLocation{Kind: LocateOutside, Triangle: cur, EdgeA: t.A, EdgeB: t.B}
		}
		if oa == 0 || ob == 0 || oc == 0 {
			return PointLocation{Kind: LocateOnEdge, Triangle: cur}
		}
		return PointLocation{Kind: LocateInside, Triangle: cur}
	}
	return PointLocation{Kind: LocateOutside, Triangle: meshkit.NoIndex}
}

func (m *TriMesh) onVertex(t *Triangle, x, y float64) *Site {
	switch {
	case t.A.x == x && t.A.y == y:
		return t.A
	case t.B.x == x && t.B.y == y:
		return t.B
	case t.C.x == x && t.C.y == y:
		return t.C
	default:
		return nil
	}
}
