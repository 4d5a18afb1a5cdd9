// File: inorthosphere.go
// Role: inOrthoSphere(a,b,c,d,e) — the weighted generalization of InSphere
// used by a regular (power-weighted) triangulation: each site carries a
// scalar weight, and the lifted column is the power distance
// (dx^2+dy^2+dz^2) - (w_point - w_e) instead of the plain sum of squares.
// With all weights equal this reduces exactly to InSphere.
package predicate

// WeightedSite is a 3D site plus the scalar weight inOrthoSphere needs.
type WeightedSite struct {
	X, Y, Z float64
	W       float64
}

// InOrthoSphere returns a value whose sign is positive iff e lies inside
// the orthogonal (power-weighted) sphere through a, b, c, d.
func InOrthoSphere(a, b, c, d, e WeightedSite) float64 {
	aex, aey, aez := a.X-e.X, a.Y-e.Y, a.Z-e.Z
	bex, bey, bez := b.X-e.X, b.Y-e.Y, b.Z-e.Z
	cex, cey, cez := c.X-e.X, c.Y-e.Y, c.Z-e.Z
	dex, dey, dez := d.X-e.X, d.Y-e.Y, d.Z-e.Z

	alift := aex*aex + aey*aey + aez*aez - (a.W - e.W)
	blift := bex*bex + bey*bey + bez*bez - (b.W - e.W)
	clift := cex*cex + cey*cey + cez*cez - (c.W - e.W)
	dlift := dex*dex + dey*dey + dez*dez - (d.W - e.W)

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
	// The weight terms contribute an additional, weight-scale-dependent
	// roundoff; fold in a conservative extra margin proportional to the
	// largest weight difference so the certification stays sound even
	// when weights are large relative to the coordinate spread.
	maxWeightSpan := absf(a.W-e.W) + absf(b.W-e.W) + absf(c.W-e.W) + absf(d.W-e.W)
	permanent += maxWeightSpan * (absf(aex*bey*cez) + absf(bex*cey*dez) + absf(cex*dey*aez) + absf(dex*aey*bez))

	errBound := epsInOrthoSphere * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return inOrthoSphereExact(a, b, c, d, e)
}

func inOrthoSphereExact(a, b, c, d, e WeightedSite) float64 {
	aex := diffExpansion(a.X, e.X)
	aey := diffExpansion(a.Y, e.Y)
	aez := diffExpansion(a.Z, e.Z)
	bex := diffExpansion(b.X, e.X)
	bey := diffExpansion(b.Y, e.Y)
	bez := diffExpansion(b.Z, e.Z)
	cex := diffExpansion(c.X, e.X)
	cey := diffExpansion(c.Y, e.Y)
	cez := diffExpansion(c.Z, e.Z)
	dex := diffExpansion(d.X, e.X)
	dey := diffExpansion(d.Y, e.Y)
	dez := diffExpansion(d.Z, e.Z)

	alift := subExpansions(sumOfSquares(aex, aey, aez), liftExpansion(a.W-e.W))
	blift := subExpansions(sumOfSquares(bex, bey, bez), liftExpansion(b.W-e.W))
	clift := subExpansions(sumOfSquares(cex, cey, cez), liftExpansion(c.W-e.W))
	dlift := subExpansions(sumOfSquares(dex, dey, dez), liftExpansion(d.W-e.W))

	m := [][][]float64{
		{aex, aey, aez, alift},
		{bex, bey, bez, blift},
		{cex, cey, cez, clift},
		{dex, dey, dez, dlift},
	}
	return expansionSign(detN(m))
}
