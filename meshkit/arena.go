// File: arena.go
// Role: generic arena-indexed storage with a capped recycler (spec §4.4,
// §9 "cyclic simplex graph -> arena+index").
package meshkit

// NoIndex is the sentinel meaning "no neighbor" / "no slot" everywhere an
// arena-indexed handle is used.
const NoIndex int32 = -1

// Arena is a growable, slice-backed store of T, addressed by stable int32
// indices. Destroyed slots are tracked on a capped free-list and
// preferentially resurrected on the next Alloc, which is what makes
// simplex recycling O(1) and avoids churning the allocator on
// insert/delete-heavy workloads.
type Arena[T any] struct {
	items    []T
	live     []bool
	freeList []int32
	cap      int
}

// NewArena returns an empty arena whose idle free-list never grows past
// freeListCap entries (spec: "bounded free-list (cap 256)").
func NewArena[T any](freeListCap int) *Arena[T] {
	return &Arena[T]{cap: freeListCap}
}

// Alloc returns the index of a slot holding the zero value of T,
// preferring a recycled slot over growing the backing slice.
func (a *Arena[T]) Alloc() int32 {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		var zero T
		a.items[idx] = zero
		a.live[idx] = true
		return idx
	}
	a.items = append(a.items, *new(T))
	a.live = append(a.live, true)
	return int32(len(a.items) - 1)
}

// Free releases idx back to the arena. If the idle free-list is already
// at capacity the slot is simply marked dead and its storage abandoned
// (spec §4.4: the cap bounds the free-list, not the backing storage).
func (a *Arena[T]) Free(idx int32) {
	if idx == NoIndex || !a.live[idx] {
		return
	}
	a.live[idx] = false
	var zero T
	a.items[idx] = zero
	if len(a.freeList) < a.cap {
		a.freeList = append(a.freeList, idx)
	}
}

// Get returns a pointer to the slot at idx. The caller must not hold it
// across any call that might Free or Alloc (recycling reinitializes the
// slot in place) — spec §3 "Lifecycle": contents are undefined to any
// reference held across destruction.
func (a *Arena[T]) Get(idx int32) *T {
	if idx == NoIndex {
		return nil
	}
	return &a.items[idx]
}

// IsLive reports whether idx currently refers to a live (non-freed) slot.
func (a *Arena[T]) IsLive(idx int32) bool {
	return idx != NoIndex && int(idx) < len(a.live) && a.live[idx]
}

// Len returns the number of slots ever allocated, live or freed — the
// capacity needed to iterate indices 0..Len()-1 and skip dead ones with
// IsLive.
func (a *Arena[T]) Len() int { return len(a.items) }

// LiveCount returns the number of currently live slots.
func (a *Arena[T]) LiveCount() int {
	n := 0
	for _, v := range a.live {
		if v {
			n++
		}
	}
	return n
}

// Each calls f for every live slot's index, in index order.
func (a *Arena[T]) Each(f func(idx int32)) {
	for i, v := range a.live {
		if v {
			f(int32(i))
		}
	}
}
