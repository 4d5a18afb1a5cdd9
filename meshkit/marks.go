// File: marks.go
// Role: the lazy red/blue mark scheme (spec §4.4, §9 "lazy global
// marks"). Clearing is O(1) (bump a counter); only counter exhaustion
// forces the O(n) sweep, which itself carries a shadow mark to survive
// the cyclic simplex graph.
package meshkit

import "math"

// MarkState is the mesh-wide red/blue counter pair. Simplices and sites
// each hold an int64 "mark" field (not owned by this type — callers pass
// it by pointer) that this type sets and tests against the current
// red/blue value.
type MarkState struct {
	red  int64
	blue int64
}

// NewMarkState returns a MarkState starting both colors away from the
// zero value every unmarked mark field naturally has, so a freshly
// allocated (or recycled-and-zeroed) slot reads as unmarked.
func NewMarkState() MarkState {
	return MarkState{red: 1, blue: -1}
}

// MarkRed sets *mark to the current red value.
func (m *MarkState) MarkRed(mark *int64) { *mark = m.red }

// MarkBlue sets *mark to the current blue value.
func (m *MarkState) MarkBlue(mark *int64) { *mark = m.blue }

// Unmark clears *mark to a value that can never equal a live red or blue.
func (m *MarkState) Unmark(mark *int64) { *mark = 0 }

// IsMarkedRed reports whether mark equals the current red value.
func (m *MarkState) IsMarkedRed(mark int64) bool { return mark == m.red }

// IsMarkedBlue reports whether mark equals the current blue value.
func (m *MarkState) IsMarkedBlue(mark int64) bool { return mark == m.blue }

// IsMarked reports whether mark is red or blue.
func (m *MarkState) IsMarked(mark int64) bool { return mark == m.red || mark == m.blue }

// sweepThreshold is how close to the int64 range edge triggers a full
// sweep-and-reset instead of another O(1) bump, leaving ample headroom.
const sweepThreshold = math.MaxInt64 - 4

// ClearRed invalidates every prior red mark in O(1) by bumping the red
// counter. needsSweep reports true if the counter is about to overflow
// and the caller must run a full sweep (see Sweep) before continuing.
func (m *MarkState) ClearRed() (needsSweep bool) {
	m.red++
	return m.red >= sweepThreshold
}

// ClearBlue invalidates every prior blue mark in O(1) by decrementing the
// blue counter (red and blue walk away from each other so they can never
// collide at 0, which Unmark reserves for "never marked").
func (m *MarkState) ClearBlue() (needsSweep bool) {
	m.blue--
	return m.blue <= -sweepThreshold
}

// Sweep resets the counters to their initial values; the caller must
// first walk every mark field reachable in the mesh (a depth-first sweep
// using its own shadow mark to detect cycles, per spec §4.4) and set each
// one to 0 so no stale red/blue value is left referring to the old
// counters. This is the only non-O(1) path in the mark scheme.
func (m *MarkState) Sweep() {
	*m = NewMarkState()
}
