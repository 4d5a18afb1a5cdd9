// File: eft.go
// Role: Error-free transforms (EFTs) for binary64 addition, subtraction and
// multiplication — component A of the predicate engine.
//
// Build note:
//   - Every routine here must be compiled with strict IEEE binary64
//     semantics and round-to-nearest-even: no contraction into FMA, no
//     reassociation, no promotion to extended/single precision. The Go
//     compiler's floating-point model already guarantees this (the spec
//     forbids FMA fusion and Go never fuses float64 arithmetic implicitly),
//     so no special build tags are required — this comment documents the
//     invariant the rest of the package depends on.
//
// Determinism:
//   - Every function is a pure, allocation-free transform of its inputs.
package expansion

// splitterBits is p/2 rounded up for p=53, i.e. ceil(53/2) = 27, giving the
// splitter constant 2^27+1 used by Split.
const splitterBits = 27

// splitter = 2^ceil(p/2)+1 with p=53 (binary64 significand width including
// the implicit bit). This is the constant described in spec §4.1.
const splitter = float64(int64(1)<<splitterBits) + 1

// TwoSum computes x = fl(a+b) and the exact roundoff y such that a+b = x+y.
// No ordering precondition on |a| vs |b|. This is the classical
// Knuth/Dekker two-sum EFT.
func TwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// TwoSumFast computes the same result as TwoSum under the precondition
// |a| >= |b|. It is cheaper (no aVirtual/aRoundoff term) but gives
// undefined y if the precondition is violated by the caller.
func TwoSumFast(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	y = b - bVirtual
	return x, y
}

// TwoDiff computes x = fl(a-b) and the exact roundoff y such that
// a-b = x+y. Implemented as TwoSum(a, -b) unrolled to avoid the negation
// rounding no-op but keep the derivation visible.
func TwoDiff(a, b float64) (x, y float64) {
	x = a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// Split decomposes a into a high part and low part, each representable
// with at most 26 significant bits, such that a = hi+lo exactly. Used to
// make TwoProduct free of double-rounding on platforms without native FMA.
func Split(a float64) (hi, lo float64) {
	c := splitter * a
	aBig := c - a
	hi = c - aBig
	lo = a - hi
	return hi, lo
}

// TwoProduct computes x = fl(a*b) and the exact roundoff y such that
// a*b = x+y.
func TwoProduct(a, b float64) (x, y float64) {
	x = a * b
	aHi, aLo := Split(a)
	bHi, bLo := Split(b)
	err1 := x - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	y = aLo*bLo - err3
	return x, y
}

// TwoProductPreSplit is TwoProduct specialized for callers that already
// hold b's Split decomposition (bHi, bLo), avoiding a redundant Split(b).
func TwoProductPreSplit(a, b, bHi, bLo float64) (x, y float64) {
	x = a * b
	aHi, aLo := Split(a)
	err1 := x - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	y = aLo*bLo - err3
	return x, y
}

// TwoTwoProduct multiplies two two-component expansions (a1,a0) and
// (b1,b0), representing the values a1+a0 and b1+b0, into a nonoverlapping
// expansion of at most 8 components (least significant first; exact
// zero components are dropped by the merges). It is built from
// four TwoProduct calls merged with ExpansionSumZeroElimFast rather than
// Shewchuk's hand-unrolled macro: mathematically equivalent, and it reuses
// the linear-time expansion merge that component A needs anyway.
func TwoTwoProduct(a1, a0, b1, b0 float64) []float64 {
	p00x, p00y := TwoProduct(a0, b0)
	p01x, p01y := TwoProduct(a0, b1)
	p10x, p10y := TwoProduct(a1, b0)
	p11x, p11y := TwoProduct(a1, b1)

	acc := []float64{p00y, p00x}
	acc = ExpansionSumZeroElimFast(acc, []float64{p01y, p01x})
	acc = ExpansionSumZeroElimFast(acc, []float64{p10y, p10x})
	acc = ExpansionSumZeroElimFast(acc, []float64{p11y, p11x})
	return acc
}
