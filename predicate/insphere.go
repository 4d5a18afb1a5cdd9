// File: insphere.go
// Role: insphere(a,b,c,d,e) — positive iff e lies strictly inside the
// sphere through a, b, c, d (given orient3d(a,b,c,d) > 0). Reduces to a
// 4x4 determinant with a lifted fourth column after translating the
// frame so e is the origin.
package predicate

// InSphere returns a value whose sign is positive iff e lies inside the
// circumsphere of a, b, c, d, negative if outside, zero iff exactly
// cospherical.
func InSphere(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz, ex, ey, ez float64) float64 {
	aex, aey, aez := ax-ex, ay-ey, az-ez
	bex, bey, bez := bx-ex, by-ey, bz-ez
	cex, cey, cez := cx-ex, cy-ey, cz-ez
	dex, dey, dez := dx-ex, dy-ey, dz-ez

	alift := aex*aex + aey*aey + aez*aez
	blift := bex*bex + bey*bey + bez*bez
	clift := cex*cex + cey*cey + cez*cez
	dlift := dex*dex + dey*dey + dez*dez

	det := fourByFourFloat(
		aex, aey, aez, alift,
		bex, bey, bez, blift,
		cex, cey, cez, clift,
		dex, dey, dez, dlift,
	)

	permanent := (absf(bex*cey*dez) + absf(bez*cey*dex) + absf(bey*cez*dex) +
		absf(bex*cez*dey) + absf(bez*cex*dey) + absf(bey*cex*dez)) * absf(alift)
	permanent += (absf(aex*cey*dez) + absf(aez*cey*dex) + absf(aey*cez*dex) +
		absf(aex*cez*dey) + absf(aez*cex*dey) + absf(aey*cex*dez)) * absf(blift)
	permanent += (absf(aex*bey*dez) + absf(aez*bey*dex) + absf(aey*bez*dex) +
		absf(aex*bez*dey) + absf(aez*bex*dey) + absf(aey*bex*dez)) * absf(clift)
	permanent += (absf(aex*bey*cez) + absf(aez*bey*cex) + absf(aey*bez*cex) +
		absf(aex*bez*cey) + absf(aez*bex*cey) + absf(aey*bex*cez)) * absf(dlift)

	errBound := epsInSphere * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return inSphereExact(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz, ex, ey, ez)
}

// fourByFourFloat evaluates the insphere 4x4 determinant by direct
// cofactor expansion in plain float64 arithmetic (the fast stage).
func fourByFourFloat(
	aex, aey, aez, alift,
	bex, bey, bez, blift,
	cex, cey, cez, clift,
	dex, dey, dez, dlift float64,
) float64 {
	ab := aex*bey - bex*aey
	bc := bex*cey - cex*bey
	cd := cex*dey - dex*cey
	da := dex*aey - aex*dey
	ac := aex*cey - cex*aey
	bd := bex*dey - dex*bey

	abc := aez*bc - bez*ac + cez*ab
	bcd := bez*cd - cez*bd + dez*bc
	cda := cez*da + dez*ac + aez*cd
	dab := dez*ab + aez*bd + bez*da

	return dlift*abc - clift*dab + blift*cda - alift*bcd
}

func inSphereExact(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz, ex, ey, ez float64) float64 {
	aex := diffExpansion(ax, ex)
	aey := diffExpansion(ay, ey)
	aez := diffExpansion(az, ez)
	bex := diffExpansion(bx, ex)
	bey := diffExpansion(by, ey)
	bez := diffExpansion(bz, ez)
	cex := diffExpansion(cx, ex)
	cey := diffExpansion(cy, ey)
	cez := diffExpansion(cz, ez)
	dex := diffExpansion(dx, ex)
	dey := diffExpansion(dy, ey)
	dez := diffExpansion(dz, ez)

	alift := sumOfSquares(aex, aey, aez)
	blift := sumOfSquares(bex, bey, bez)
	clift := sumOfSquares(cex, cey, cez)
	dlift := sumOfSquares(dex, dey, dez)

	m := [][][]float64{
		{aex, aey, aez, alift},
		{bex, bey, bez, blift},
		{cex, cey, cez, clift},
		{dex, dey, dez, dlift},
	}
	return expansionSign(detN(m))
}

func sumOfSquares(x, y, z []float64) []float64 {
	return addExpansions(addExpansions(mulExpansions(x, x), mulExpansions(y, y)), mulExpansions(z, z))
}
