// File: circumcenter.go
// Role: non-adaptive circumcenter formulas. Per spec §4.2 these are
// deliberately NOT run through the adaptive two-stage scheme: callers
// only ever use their coordinates for cached display/quality geometry,
// never to make a topology decision, so a plain closed-form evaluation is
// both correct enough and far cheaper than an exact derivation.
//
// A general linear-system solver (the teacher's matrix/ops LU/QR
// decompositions) was considered for these and rejected: every system
// here is a fixed 3x3 (CenterCircle2D / CenterCircle3D) or effectively a
// fixed 3-equation system via Cramer's rule (CenterSphere3D), so a direct
// closed form is both simpler and allocation-free compared to driving a
// general n x n decomposition through the teacher's core.Graph-coupled
// matrix package for a size it was never specialized for.
package predicate

import "math"

// CenterCircle2D returns the circumcenter and circumradius of the
// triangle a, b, c in the plane.
func CenterCircle2D(ax, ay, bx, by, cx, cy float64) (cx0, cy0, r float64) {
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return ax, ay, 0
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	r = math.Hypot(ux-ax, uy-ay)
	return ux, uy, r
}

// CenterCircle3D returns the circumcenter of the triangle a, b, c
// embedded in 3D (their own plane), found by projecting onto an
// orthonormal basis of that plane, solving the 2D circumcenter there,
// then lifting back to 3D.
func CenterCircle3D(ax, ay, az, bx, by, bz, cx, cy, cz float64) (cx0, cy0, cz0, r float64) {
	// Basis: e1 along a->b, e2 = normal x e1 (in-plane, orthogonal to e1).
	abx, aby, abz := bx-ax, by-ay, bz-az
	acx, acy, acz := cx-ax, cy-ay, cz-az

	e1x, e1y, e1z := normalize3(abx, aby, abz)
	nx, ny, nz := cross3(abx, aby, abz, acx, acy, acz)
	e2x, e2y, e2z := normalize3(cross3(nx, ny, nz, e1x, e1y, e1z))

	// 2D coordinates of a (origin), b, c in the (e1, e2) basis.
	bx2 := dot3(abx, aby, abz, e1x, e1y, e1z)
	by2 := dot3(abx, aby, abz, e2x, e2y, e2z)
	cx2 := dot3(acx, acy, acz, e1x, e1y, e1z)
	cy2 := dot3(acx, acy, acz, e2x, e2y, e2z)

	ux, uy, rad := CenterCircle2D(0, 0, bx2, by2, cx2, cy2)

	return ax + ux*e1x + uy*e2x, ay + ux*e1y + uy*e2y, az + ux*e1z + uy*e2z, rad
}

// CenterSphere3D returns the circumcenter and circumradius of the
// tetrahedron a, b, c, d, solved via Cramer's rule against the three
// perpendicular-bisector-plane equations (translated so a is the origin).
func CenterSphere3D(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz float64) (ux, uy, uz, r float64) {
	bxr, byr, bzr := bx-ax, by-ay, bz-az
	cxr, cyr, czr := cx-ax, cy-ay, cz-az
	dxr, dyr, dzr := dx-ax, dy-ay, dz-az

	bl := bxr*bxr + byr*byr + bzr*bzr
	cl := cxr*cxr + cyr*cyr + czr*czr
	dl := dxr*dxr + dyr*dyr + dzr*dzr

	det := bxr*(cyr*dzr-czr*dyr) - byr*(cxr*dzr-czr*dxr) + bzr*(cxr*dyr-cyr*dxr)
	if det == 0 {
		return ax, ay, az, 0
	}

	px := bl*(cyr*dzr-czr*dyr) - byr*(cl*dzr-czr*dl) + bzr*(cl*dyr-cyr*dl)
	py := bxr*(cl*dzr-czr*dl) - bl*(cxr*dzr-czr*dxr) + bzr*(cxr*dl-cl*dxr)
	pz := bxr*(cyr*dl-cl*dyr) - byr*(cxr*dl-cl*dxr) + bl*(cxr*dyr-cyr*dxr)

	ux = px / (2 * det)
	uy = py / (2 * det)
	uz = pz / (2 * det)
	r = math.Sqrt(ux*ux + uy*uy + uz*uz)
	return ax + ux, ay + uy, az + uz, r
}

func cross3(ax, ay, az, bx, by, bz float64) (float64, float64, float64) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

func dot3(ax, ay, az, bx, by, bz float64) float64 {
	return ax*bx + ay*by + az*bz
}

func normalize3(x, y, z float64) (float64, float64, float64) {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return 0, 0, 0
	}
	return x / n, y / n, z / n
}
