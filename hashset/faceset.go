// File: faceset.go
// Role: the oriented-triangle set the 3D cavity builder uses (spec
// §4.9: "Face set (3D): keys are ordered triples of sites forming an
// oriented tri; the mate is any of the three cyclic rotations of the
// reverse").
package hashset

// FaceKey is an ordered triple of stable site identities, always stored
// in its canonical rotation (the one starting with the smallest
// identity) so that the three cyclic rotations of a given winding all
// hash and compare equal.
type FaceKey struct {
	A, B, C uint64
}

// canonicalFace rotates (a, b, c) so the smallest identity comes first,
// preserving winding order.
func canonicalFace(a, b, c uint64) FaceKey {
	switch {
	case a <= b && a <= c:
		return FaceKey{a, b, c}
	case b <= a && b <= c:
		return FaceKey{b, c, a}
	default:
		return FaceKey{c, a, b}
	}
}

func faceHash(k FaceKey, shift uint) uint64 {
	h := (k.A*hashMultiplier + 1) ^ (k.B*hashMultiplier*hashMultiplier + 7) ^ (k.C*hashMultiplier*hashMultiplier*hashMultiplier + 13)
	return h >> shift
}

// faceMate returns the canonical form of the reverse-oriented triangle
// (A, C, B) — any of its three cyclic rotations represents the same
// reversed face, and canonicalFace already normalizes to the same key.
func faceMate(k FaceKey) FaceKey {
	return canonicalFace(k.A, k.C, k.B)
}

// FaceSet is an add-or-cancel set of oriented triangles with payload V.
type FaceSet[V any] struct {
	t *table[FaceKey, V]
}

// NewFaceSet returns an empty FaceSet.
func NewFaceSet[V any]() *FaceSet[V] {
	return &FaceSet[V]{t: newTable[FaceKey, V](faceHash, faceMate)}
}

// Add inserts the oriented face (a, b, c); if its reverse-oriented mate
// is already present, the mate is removed instead and returned.
func (s *FaceSet[V]) Add(a, b, c uint64, value V) (inserted bool, mateValue V, hadMate bool) {
	return s.t.Add(canonicalFace(a, b, c), value)
}

// Get returns the value stored for face (a, b, c) in any of its
// equivalent windings/rotations.
func (s *FaceSet[V]) Get(a, b, c uint64) (V, bool) { return s.t.Get(canonicalFace(a, b, c)) }

// Remove deletes face (a, b, c).
func (s *FaceSet[V]) Remove(a, b, c uint64) bool { return s.t.Remove(canonicalFace(a, b, c)) }

// Len returns the number of faces currently stored.
func (s *FaceSet[V]) Len() int { return s.t.Len() }

// Each calls f for every stored (a, b, c, value), in the set's canonical
// (smallest-identity-first) rotation.
func (s *FaceSet[V]) Each(f func(a, b, c uint64, value V)) {
	s.t.Each(func(k FaceKey, v V) { f(k.A, k.B, k.C, v) })
}
