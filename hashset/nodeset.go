// File: nodeset.go
// Role: the 2D cavity-filling pairing set (spec §4.9: "Node set (2D):
// keys are single sites plus a pairing scheme used during 2D cavity
// filling").
//
// During 2D cavity retriangulation (spec §4.6 step 5), two freshly
// created triangles that both touch the new apex site also share exactly
// one boundary-polygon vertex. NodeSet registers the first triangle that
// reaches a given boundary vertex on a given side of the polygon; when
// the second one arrives on the matching side, the two are linked as
// neighbors and the pending entry is canceled — the 2D analogue of
// FaceSet's mate cancellation, but keyed on a single site plus a side
// tag rather than an oriented tuple.
package hashset

// NodeKey is a boundary-polygon site paired with a side tag distinguishing
// the two new triangles that can claim it (the one whose fan sweeps into
// the vertex, and the one whose fan sweeps out of it).
type NodeKey struct {
	Site uint64
	Side bool
}

func nodeHash(k NodeKey, shift uint) uint64 {
	side := uint64(0)
	if k.Side {
		side = 1
	}
	h := (k.Site*hashMultiplier + 1) ^ (side*hashMultiplier*hashMultiplier + 7)
	return h >> shift
}

// nodeMate flips the side tag: the pairing partner for (site, side) is
// (site, !side).
func nodeMate(k NodeKey) NodeKey { return NodeKey{Site: k.Site, Side: !k.Side} }

// NodeSet is an add-or-cancel set of (site, side) pairings with payload V.
type NodeSet[V any] struct {
	t *table[NodeKey, V]
}

// NewNodeSet returns an empty NodeSet.
func NewNodeSet[V any]() *NodeSet[V] {
	return &NodeSet[V]{t: newTable[NodeKey, V](nodeHash, nodeMate)}
}

// Add inserts (site, side, value); if the opposite side is already
// pending for site, it is removed instead and returned.
func (s *NodeSet[V]) Add(site uint64, side bool, value V) (inserted bool, mateValue V, hadMate bool) {
	return s.t.Add(NodeKey{Site: site, Side: side}, value)
}

// Len returns the number of pending pairings.
func (s *NodeSet[V]) Len() int { return s.t.Len() }

// Each calls f for every pending (site, side, value).
func (s *NodeSet[V]) Each(f func(site uint64, side bool, value V)) {
	s.t.Each(func(k NodeKey, v V) { f(k.Site, k.Side, v) })
}
