// File: validate.go
// Role: validate() — the debug-gated invariant checker (spec §7, §9
// "keep validate() behind a compile-time or build-config switch"). Run
// automatically after every mutation when Config.DebugValidate is set.
package trimesh

import (
	"github.com/pkg/errors"

	"github.com/dhale/delaunay/meshkit"
	"github.com/dhale/delaunay/predicate"
)

// Validate walks every live triangle and checks neighbor symmetry, CCW
// orientation, and the empty-circumcircle property against every other
// site in the mesh. Returns meshkit.ErrCorrupt (wrapped with the specific
// violation) on the first problem found.
func (m *TriMesh) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.validateLocked()
}

func (m *TriMesh) validateLocked() error {
	var sites []*Site
	m.root2(func(s *Site) bool { sites = append(sites, s); return true })

	var failure error
	m.arena.Each(func(idx int32) {
		if failure != nil {
			return
		}
		t := m.arena.Get(idx)

		if predicate.Orient2D(t.A.x, t.A.y, t.B.x, t.B.y, t.C.x, t.C.y) <= 0 {
			failure = errors.Wrapf(meshkit.ErrCorrupt, "triangle %d is not strictly CCW", idx)
			return
		}

		for _, pair := range []struct {
			n    int32
			a, b *Site
		}{{t.NA, t.B, t.C}, {t.NB, t.C, t.A}, {t.NC, t.A, t.B}} {
			if pair.n == meshkit.NoIndex {
				continue
			}
			nt := m.arena.Get(pair.n)
			if !m.arena.IsLive(pair.n) {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "triangle %d references freed neighbor %d", idx, pair.n)
				return
			}
			back := neighborOpposite(nt, thirdVertex(nt, pair.a, pair.b))
			if back != idx {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "neighbor link %d<->%d is not symmetric", idx, pair.n)
				return
			}
		}

		for _, s := range sites {
			if s == t.A || s == t.B || s == t.C || !s.InMesh() {
				continue
			}
			if predicate.InCircle(t.A.x, t.A.y, t.B.x, t.B.y, t.C.x, t.C.y, s.x, s.y) > 0 {
				failure = errors.Wrapf(meshkit.ErrCorrupt, "site %d violates empty-circumcircle of triangle %d", s.id, idx)
				return
			}
		}
	})
	return failure
}

// validateIfConfigured runs Validate (already under m.mu) when
// Config.DebugValidate is set, panicking on the first violation — per
// spec §7 there is no recovery path for a corrupted mesh.
func (m *TriMesh) validateIfConfigured() {
	if !m.cfg.DebugValidate {
		return
	}
	if err := m.validateLocked(); err != nil {
		panic(err)
	}
}
