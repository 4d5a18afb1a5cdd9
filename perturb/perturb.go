package perturb

import "math"

// epsFloat32 is the float32 ulp of 1, 2^-23: iterative halving stops at
// the smallest power of two for which 1+eps != 1 in float32 arithmetic.
// Computed once at package init so the perturbation contract
// (spec §4.3, §9 "global mutable state") is fixed for the process lifetime.
var epsFloat32 = computeEpsFloat32()

func computeEpsFloat32() float32 {
	var eps float32 = 1
	for float32(1)+eps/2 != 1 {
		eps /= 2
	}
	return eps
}

// companionCoeff holds the fixed, distinct-per-axis linear-combination
// coefficients used to build each axis's companion value from the OTHER
// coordinates. Chosen once and for all, as spec §4.3 requires; the exact
// values only need to be irrational-looking enough that companions for
// distinct axes of the same site essentially never collide bit-for-bit.
var companionCoeff = [3][3]float32{
	// row i gives the coefficients applied to (x, y, z) when building the
	// companion for axis i; the diagonal entry is always 0 (axis i's own
	// coordinate never feeds its own companion).
	{0, 0.618034, 0.381966},  // companion(x) = 0.618034*y + 0.381966*z
	{0.707107, 0, 0.292893},  // companion(y) = 0.707107*x + 0.292893*z
	{0.267949, 0.732051, 0},  // companion(z) = 0.267949*x + 0.732051*y
}

// reverseBits32 reverses the bit order of a 32-bit word.
func reverseBits32(v uint32) uint32 {
	v = (v>>1)&0x55555555 | (v&0x55555555)<<1
	v = (v>>2)&0x33333333 | (v&0x33333333)<<2
	v = (v>>4)&0x0F0F0F0F | (v&0x0F0F0F0F)<<4
	v = (v>>8)&0x00FF00FF | (v&0x00FF00FF)<<8
	v = v>>16 | v<<16
	return v
}

// perturbAxis applies the spec §4.3 algorithm to a single coordinate x
// given its companion value (a fixed linear combination of the site's
// OTHER coordinates), returning the perturbed float64.
func perturbAxis(x float32, companion float32) float64 {
	if x == 0 {
		// A literal zero coordinate has no room to carry a sub-ULP
		// perturbation while still rounding back to 0 in float32 (the
		// smallest representable magnitude other than 0 is already far
		// coarser than the 0.1*eps_f relative nudge this function applies
		// everywhere else). Resolved per spec §9 "open questions" policy
		// (decide and record, don't guess silently): zero stays exactly
		// zero; duplicate detection for an all-zero axis falls back to
		// the other, nonzero axes of the same site.
		return 0
	}

	j := reverseBits32(math.Float32bits(companion)) >> 1 // fold into [0, 2^31)
	factor := 1.0 + (float64(j)/float64(uint32(1)<<31))*0.1*float64(epsFloat32)
	xp := float64(x) * factor

	if float32(xp) != x {
		// The perturbation must be invisible at float32 precision; a
		// mismatch means the companion/scale constants were chosen badly
		// for this magnitude and is a programmer error, not user input.
		panic("perturb: perturbed coordinate does not round-trip to the original float32")
	}
	return xp
}

// Point2 perturbs a 2D site's (x, y) into the doubles the mesh stores.
// Each axis's companion is the OTHER coordinate, scaled by its row-0/row-1
// coefficient against a zero third component.
func Point2(x, y float32) (px, py float64) {
	cx := companionCoeff[0][1] * y
	cy := companionCoeff[1][0] * x
	return perturbAxis(x, cx), perturbAxis(y, cy)
}

// Point3 perturbs a 3D site's (x, y, z) into the doubles the mesh stores.
func Point3(x, y, z float32) (px, py, pz float64) {
	cx := companionCoeff[0][1]*y + companionCoeff[0][2]*z
	cy := companionCoeff[1][0]*x + companionCoeff[1][2]*z
	cz := companionCoeff[2][0]*x + companionCoeff[2][1]*y
	return perturbAxis(x, cx), perturbAxis(y, cy), perturbAxis(z, cz)
}
