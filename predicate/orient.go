// File: orient.go
// Role: orient2d and orient3d, the left-of-line / left-of-plane sign
// tests every other predicate and both mesh engines build on.
package predicate

import "math"

// Orient2D returns a value whose sign is positive iff c lies to the left
// of the directed line a->b (equivalently: a, b, c are in counter-
// clockwise order), negative if to the right, and exactly zero iff a, b,
// c are exactly collinear. The magnitude is a rough area estimate, not a
// certified quantity — only the sign is a contract.
func Orient2D(ax, ay, bx, by, cx, cy float64) float64 {
	detLeft := (ay - cy) * (bx - cx)
	detRight := (ax - cx) * (by - cy)
	det := detRight - detLeft

	var permanent float64
	permanent = (absf(ay-cy)*absf(bx-cx) + absf(ax-cx)*absf(by-cy))
	errBound := epsOrient2D * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return orient2DExact(ax, ay, bx, by, cx, cy)
}

func orient2DExact(ax, ay, bx, by, cx, cy float64) float64 {
	m := [][][]float64{
		{diffExpansion(ax, cx), diffExpansion(ay, cy)},
		{diffExpansion(bx, cx), diffExpansion(by, cy)},
	}
	return expansionSign(detN(m))
}

// Orient3D returns a value whose sign is positive iff d lies below the
// plane through a, b, c, oriented so that a, b, c appear counter-
// clockwise when viewed from above that plane (i.e. from the side
// opposite d) — equivalently, positive means (a,b,c,d) is a
// positively-oriented tetrahedron. Zero iff the four points are exactly
// coplanar.
func Orient3D(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz float64) float64 {
	adx, ady, adz := ax-dx, ay-dy, az-dz
	bdx, bdy, bdz := bx-dx, by-dy, bz-dz
	cdx, cdy, cdz := cx-dx, cy-dy, cz-dz

	det := adx*(bdy*cdz-bdz*cdy) -
		ady*(bdx*cdz-bdz*cdx) +
		adz*(bdx*cdy-bdy*cdx)

	permanent := (absf(bdy*cdz) + absf(bdz*cdy)) * absf(adx)
	permanent += (absf(bdx*cdz) + absf(bdz*cdx)) * absf(ady)
	permanent += (absf(bdx*cdy) + absf(bdy*cdx)) * absf(adz)
	errBound := epsOrient3D * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return orient3DExact(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz)
}

func orient3DExact(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz float64) float64 {
	m := [][][]float64{
		{diffExpansion(ax, dx), diffExpansion(ay, dy), diffExpansion(az, dz)},
		{diffExpansion(bx, dx), diffExpansion(by, dy), diffExpansion(bz, dz)},
		{diffExpansion(cx, dx), diffExpansion(cy, dy), diffExpansion(cz, dz)},
	}
	return expansionSign(detN(m))
}

// expansionSign returns the most-significant component of an expansion,
// whose sign equals the sign of the exact value it represents. A zero
// component (including -0) is returned as a plain 0 for callers that
// compare against 0.
func expansionSign(e []float64) float64 {
	v := 0.0
	if len(e) > 0 {
		v = e[len(e)-1]
	}
	if v == 0 {
		return 0
	}
	return math.Copysign(1, v) * absf(v)
}
