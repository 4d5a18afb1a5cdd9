// File: validate.go
// Role: validate() — the debug-gated invariant checker, mirroring
// trimesh/validate.go. Run automatically after every mutation when
// Config.DebugValidate is set.
package tetmesh

import (
	"github.com/pkg/errors"

	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// Validate walks every live tet and checks neighbor symmetry, positive
// orientation, and the empty-circumsphere property against every other
// site in the mesh. Returns meshkit.ErrCorrupt (wrapped with the specific
// violation) on the first problem found.
func (m *TetMesh) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.validateLocked()
}

func (m *TetMesh) validateLocked() error {
	var sites []*Site
	m.root2(func(s *Site) bool { sites = append(sites, s); return true })

	var failure error
	m.arena.Each(func(idx int32) {
		if failure != nil {
			return
		}
		t := m.arena.Get(idx)

		if predicate.Orient3D(t.A.x, t.A.y, t.A.z, t.B.x, t.B.y, t.B.z, t.C.x, t.C.y, t.C.z, t.D.x, t.D.y, t.D.z) <= 0 {
			failure = errors.Wrapf(meshkit.ErrCorrupt, "tet %d is not positively oriented", idx)
			return
		}

		for _, pair := range []struct {
			n       int32
			a, b, c *Site
		}{
			{t.NA, t.B, t.D, t.C},
			{t.NB, t.A, t.C, t.D},
			{t.NC, t.A, t.D, t.B},
			{t.ND, t.A, t.B, t.C},
		} {
			if pair.n == meshkit.NoIndex {
				continue
			}
			if !m.arena.IsLive(pair.n) {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "tet %d references freed neighbor %d", idx, pair.n)
				return
			}
			nt := m.arena.Get(pair.n)
			back := neighborOpposite(nt, fourthVertex(nt, pair.a, pair.b, pair.c))
			if back != idx {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "neighbor link %d<->%d is not symmetric", idx, pair.n)
				return
			}
		}

		for _, s := range sites {
			if s == t.A || s == t.B || s == t.C || s == t.D || !s.InMesh() {
				continue
			}
			v := predicate.InSphere(t.A.x, t.A.y, t.A.z, t.B.x, t.B.y, t.B.z, t.C.x, t.C.y, t.C.z, t.D.x, t.D.y, t.D.z, s.x, s.y, s.z)
			if v > 0 {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "site %d violates empty-circumsphere of tet %d", s.id, idx)
				return
			}
		}
	})
	return failure
}

// validateIfConfigured runs Validate (already under m.mu) when
// Config.DebugValidate is set, panicking on the first violation — there
// is no recovery path for a corrupted mesh.
func (m *TetMesh) validateIfConfigured() {
	if !m.cfg.DebugValidate {
		return
	}
	if err := m.validateLocked(); err != nil {
		panic(err)
	}
}
