// File: incircle.go
// Role: incircle(a,b,c,d) — positive iff d lies strictly inside the circle
// through a, b, c (assumed counter-clockwise). Reduces to the classical
// 3x3 determinant with a lifted (paraboloid) third column, after
// translating the frame so d is the origin.
package predicate

// InCircle returns a value whose sign is positive iff d lies inside the
// circumcircle of a, b, c (given a, b, c counter-clockwise), negative if
// outside, zero iff exactly cocircular.
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	adx, ady := ax-dx, ay-dy
	bdx, bdy := bx-dx, by-dy
	cdx, cdy := cx-dx, cy-dy

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-bdy*cdx) -
		blift*(adx*cdy-ady*cdx) +
		clift*(adx*bdy-ady*bdx)

	permanent := (absf(bdx*cdy) + absf(bdy*cdx)) * alift
	permanent += (absf(adx*cdy) + absf(ady*cdx)) * blift
	permanent += (absf(adx*bdy) + absf(ady*bdx)) * clift
	errBound := epsInCircle * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return inCircleExact(ax, ay, bx, by, cx, cy, dx, dy)
}

func inCircleExact(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	adx := diffExpansion(ax, dx)
	ady := diffExpansion(ay, dy)
	bdx := diffExpansion(bx, dx)
	bdy := diffExpansion(by, dy)
	cdx := diffExpansion(cx, dx)
	cdy := diffExpansion(cy, dy)

	alift := addExpansions(mulExpansions(adx, adx), mulExpansions(ady, ady))
	blift := addExpansions(mulExpansions(bdx, bdx), mulExpansions(bdy, bdy))
	clift := addExpansions(mulExpansions(cdx, cdx), mulExpansions(cdy, cdy))

	m := [][][]float64{
		{adx, ady, alift},
		{bdx, bdy, blift},
		{cdx, cdy, clift},
	}
	return expansionSign(detN(m))
}
