// File: insert.go
// Role: AddSite and the incremental-insertion core (spec §4.6 "Bowyer-
// Watson cavity construction"), built the literal way in 3D: flood-fill
// every tet whose circumsphere contains the new site (predicate.InSphere),
// collect the cavity's boundary faces with a hashset.FaceSet's add-or-
// cancel semantics (spec §4.9), free the cavity, and fan new tets from
// the site to each boundary face. Unlike trimesh's flip-based insertion,
// this already produces the Delaunay tetrahedralization directly — a 3D
// bistellar flip is considerably harder to get right than a 2D edge
// flip, and the cavity construction sidesteps needing one at all (see
// DESIGN.md).
package tetmesh

import (
	"github.com/dhale/delaunay/hashset"
	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// AddSite inserts a new site at (x, y, z) with the given payload and
// returns it. Returns meshkit.ErrDuplicateSite if (x, y, z) perturbs to
// exactly an existing in-mesh site's coordinates.
func (m *TetMesh) AddSite(x, y, z float32, payload interface{}) (*Site, error) {
	s := NewSite(x, y, z, payload)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rootTet != meshkit.NoIndex {
		loc := m.locateLocked(s.x, s.y, s.z)
		if loc.Kind == LocateOnSite {
			return nil, meshkit.ErrDuplicateSite
		}
	} else {
		for _, p := range m.pending {
			if p.x == s.x && p.y == s.y && p.z == s.z {
				return nil, meshkit.ErrDuplicateSite
			}
		}
	}

	s.id = m.seq.Next()
	m.fireSite(meshkit.SiteWillBeAdded, s)

	m.linkSite(s)
	m.siteCount++

	if m.rootTet == meshkit.NoIndex {
		m.pending = append(m.pending, s)
		m.tryBootstrap()
	} else {
		m.insertIntoMesh(s)
	}

	m.version++
	m.maintainSample()
	m.fireSite(meshkit.SiteAdded, s)
	m.validateIfConfigured()
	return s, nil
}

// tryBootstrap scans m.pending for four non-coplanar sites and, if found,
// builds the first tet and folds every other pending site into the mesh
// via the normal insertion path.
func (m *TetMesh) tryBootstrap() {
	if len(m.pending) < 4 {
		return
	}
	for i := 0; i < len(m.pending)-3; i++ {
		for j := i + 1; j < len(m.pending)-2; j++ {
			for k := j + 1; k < len(m.pending)-1; k++ {
				for l := k + 1; l < len(m.pending); l++ {
					a, b, c, d := m.pending[i], m.pending[j], m.pending[k], m.pending[l]
					o := predicate.Orient3D(a.x, a.y, a.z, b.x, b.y, b.z, c.x, c.y, c.z, d.x, d.y, d.z)
					if o == 0 {
						continue
					}
					if o < 0 {
						c, d = d, c
					}
					rest := make([]*Site, 0, len(m.pending)-4)
					for idx, p := range m.pending {
						if idx != i && idx != j && idx != k && idx != l {
							rest = append(rest, p)
						}
					}
					m.pending = nil
					m.seedTet(a, b, c, d)
					for _, p := range rest {
						m.insertIntoMesh(p)
					}
					return
				}
			}
		}
	}
}

// seedTet creates the mesh's first tet from four sites already known to
// be positively oriented and non-coplanar.
func (m *TetMesh) seedTet(a, b, c, d *Site) {
	idx := m.arena.Alloc()
	t := m.arena.Get(idx)
	t.A, t.B, t.C, t.D = a, b, c, d
	t.NA, t.NB, t.NC, t.ND = meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex
	a.witness, b.witness, c.witness, d.witness = idx, idx, idx, idx
	m.rootTet = idx
	m.fireTet(meshkit.SimplexAdded, idx)
}

// insertIntoMesh adds s to a mesh that already has at least one tet.
func (m *TetMesh) insertIntoMesh(s *Site) {
	loc := m.locateLocked(s.x, s.y, s.z)
	switch loc.Kind {
	case LocateInside, LocateOnFace:
		m.cavityInsert(loc.Tet, s)
	case LocateOutside:
		m.insertOutside(s)
	}
}

// boundaryFace is one face of a Bowyer-Watson cavity, in the orientation
// that keeps Orient3D(p, q, r, <removed apex>) > 0 — the same orientation
// the new tet (p, q, r, s) needs. outer is the tet bordering this face
// from outside the cavity (meshkit.NoIndex if the face was already on
// the hull).
type boundaryFace struct {
	p, q, r *Site
	outer   int32
}

// cavityInsert performs the literal Bowyer-Watson step: flood-fill the
// cavity of tets whose circumsphere contains s starting from seed,
// harvest its boundary with a FaceSet, then fan s to every boundary face.
func (m *TetMesh) cavityInsert(seed int32, s *Site) {
	visited := map[int32]bool{}
	inCavity := map[int32]bool{}
	queue := []int32{seed}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if visited[idx] {
			continue
		}
		visited[idx] = true
		t := m.arena.Get(idx)
		if t == nil {
			continue
		}
		v := predicate.InSphere(t.A.x, t.A.y, t.A.z, t.B.x, t.B.y, t.B.z, t.C.x, t.C.y, t.C.z, t.D.x, t.D.y, t.D.z, s.x, s.y, s.z)
		if v <= 0 {
			continue
		}
		inCavity[idx] = true
		for _, nb := range [4]int32{t.NA, t.NB, t.NC, t.ND} {
			if nb != meshkit.NoIndex && !visited[nb] {
				queue = append(queue, nb)
			}
		}
	}
	if len(inCavity) == 0 {
		inCavity[seed] = true
	}

	// Every face of every cavity tet gets added once per adjacent cavity
	// tet: a face shared by two cavity tets is added twice, in opposite
	// windings, and FaceSet's add-or-cancel semantics (spec §4.9) removes
	// both, leaving only the faces that border the surviving mesh.
	faces := hashset.NewFaceSet[boundaryFace]()
	for idx := range inCavity {
		t := m.arena.Get(idx)
		for _, v := range [4]*Site{t.A, t.B, t.C, t.D} {
			p, q, r := otherThree(t, v)
			outer := neighborOpposite(t, v)
			faces.Add(p.id, q.id, r.id, boundaryFace{p: p, q: q, r: r, outer: outer})
		}
	}

	for idx := range inCavity {
		m.arena.Free(idx)
		m.fireTet(meshkit.SimplexRemoved, idx)
	}

	var boundary []boundaryFace
	faces.Each(func(a, b, c uint64, v boundaryFace) { boundary = append(boundary, v) })
	m.fanFromBoundary(boundary, s)
}

// hullFaces scans every live tet for a NoIndex neighbor and returns every
// hull face, each tagged with the interior tet it bounds.
func (m *TetMesh) hullFaces() []boundaryFace {
	var out []boundaryFace
	m.arena.Each(func(idx int32) {
		t := m.arena.Get(idx)
		for _, v := range [4]*Site{t.A, t.B, t.C, t.D} {
			if neighborOpposite(t, v) == meshkit.NoIndex {
				p, q, r := otherThree(t, v)
				out = append(out, boundaryFace{p: p, q: q, r: r, outer: idx})
			}
		}
	})
	return out
}

// insertOutside extends the hull by fanning s to every hull face visible
// from it — the 3D analogue of trimesh's hull-edge fan, and itself a
// degenerate Bowyer-Watson cavity with an empty interior (no tet is
// freed; the surviving interior tets simply gain a new neighbor).
func (m *TetMesh) insertOutside(s *Site) {
	var visible []boundaryFace
	for _, f := range m.hullFaces() {
		if predicate.Orient3D(f.p.x, f.p.y, f.p.z, f.q.x, f.q.y, f.q.z, f.r.x, f.r.y, f.r.z, s.x, s.y, s.z) < 0 {
			// Orient3D(p, q, r, s) < 0 here, so the face is listed as
			// (q, p, r) to make the new tet (q, p, r, s) positively oriented.
			visible = append(visible, boundaryFace{p: f.q, q: f.p, r: f.r, outer: f.outer})
		}
	}
	m.fanFromBoundary(visible, s)
}

// fanFromBoundary allocates one new tet (f.p, f.q, f.r, s) per boundary
// face, wires each to its surviving outer neighbor (if any), then stitches
// the new tets to each other along their three shared side faces using a
// second FaceSet pass.
func (m *TetMesh) fanFromBoundary(faces []boundaryFace, s *Site) {
	if len(faces) == 0 {
		return
	}
	newIdxs := make([]int32, len(faces))
	for i, f := range faces {
		idx := m.newTet(f.p, f.q, f.r, s, meshkit.NoIndex, meshkit.NoIndex, meshkit.NoIndex, f.outer)
		newIdxs[i] = idx
		if f.outer != meshkit.NoIndex {
			outerT := m.arena.Get(f.outer)
			v := fourthVertex(outerT, f.p, f.q, f.r)
			setNeighborOpposite(outerT, v, idx)
		}
		f.p.witness, f.q.witness, f.r.witness = idx, idx, idx
	}
	s.witness = newIdxs[0]

	type sideRef struct {
		idx int32
		v   *Site
	}
	sides := hashset.NewFaceSet[sideRef]()
	stitch := func(a, b, c *Site, idx int32, opposite *Site) {
		_, mate, hadMate := sides.Add(a.id, b.id, c.id, sideRef{idx: idx, v: opposite})
		if hadMate {
			setNeighborOpposite(m.arena.Get(idx), opposite, mate.idx)
			setNeighborOpposite(m.arena.Get(mate.idx), mate.v, idx)
		}
	}
	for i, f := range faces {
		idx := newIdxs[i]
		// Side faces of (p, q, r, s) opposite p, q, r respectively, in
		// the orientation the even-permutation rule from topology.go's
		// otherThree gives for a tet ordered (p, q, r, s).
		stitch(f.q, s, f.r, idx, f.p)
		stitch(f.p, f.r, s, idx, f.q)
		stitch(f.p, s, f.q, idx, f.r)
	}
}
