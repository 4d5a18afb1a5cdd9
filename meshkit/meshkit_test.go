package meshkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhale/delaunay/meshkit"
)

func TestArenaRecyclesBeforeGrowing(t *testing.T) {
	require := require.New(t)
	a := meshkit.NewArena[int](256)
	i0 := a.Alloc()
	i1 := a.Alloc()
	a.Free(i0)
	i2 := a.Alloc()
	require.Equal(i0, i2, "Alloc must resurrect the freed slot instead of growing")
	require.Equal(2, a.Len())
	require.True(a.IsLive(i1))
	require.True(a.IsLive(i2))
}

func TestArenaFreeListCap(t *testing.T) {
	require := require.New(t)
	a := meshkit.NewArena[int](1)
	idxs := make([]int32, 3)
	for i := range idxs {
		idxs[i] = a.Alloc()
	}
	for _, idx := range idxs {
		a.Free(idx)
	}
	// Only one slot can come back from the free list; Alloc after that
	// must grow instead of resurrecting a second dead slot.
	r0 := a.Alloc()
	r1 := a.Alloc()
	require.NotEqual(r0, r1)
}

func TestMarkStateLazyClear(t *testing.T) {
	require := require.New(t)
	ms := meshkit.NewMarkState()
	var mark int64
	require.False(ms.IsMarked(mark))
	ms.MarkRed(&mark)
	require.True(ms.IsMarkedRed(mark))
	ms.ClearRed()
	require.False(ms.IsMarkedRed(mark), "clearing red must invalidate all prior red marks in O(1)")
}

func TestPropertyDirectoryCreateOnMiss(t *testing.T) {
	require := require.New(t)
	dir := meshkit.NewPropertyDirectory()
	require.False(dir.Has("color"))
	pm := dir.GetOrCreate("color")
	require.True(dir.Has("color"))
	pm.Put(1, "red")
	v, ok := pm.Get(1)
	require.True(ok)
	require.Equal("red", v)
	require.Equal([]string{"color"}, dir.Names())
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	require := require.New(t)
	l := meshkit.NewListeners[int]()
	var order []int
	l.Register(func(e int) { order = append(order, e*10) })
	id2 := l.Register(func(e int) { order = append(order, e*20) })
	l.Fire(1)
	require.Equal([]int{10, 20}, order)

	l.Unregister(id2)
	order = nil
	l.Fire(2)
	require.Equal([]int{20}, order)
}
