package hashset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhale/delaunay/hashset"
)

func TestEdgeSetAddOrCancel(t *testing.T) {
	require := require.New(t)
	s := hashset.NewEdgeSet[int]()
	inserted, _, hadMate := s.Add(1, 2, 100)
	require.True(inserted)
	require.False(hadMate)
	require.Equal(1, s.Len())

	// Adding the reverse-oriented edge cancels the original.
	inserted, mateValue, hadMate := s.Add(2, 1, 200)
	require.False(inserted)
	require.True(hadMate)
	require.Equal(100, mateValue)
	require.Equal(0, s.Len())
}

func TestFaceSetCancelsAnyRotationOfTheReverse(t *testing.T) {
	require := require.New(t)
	s := hashset.NewFaceSet[string]()
	s.Add(1, 2, 3, "front")
	// (3,1,2) reversed is (3,2,1), a cyclic rotation of (1,2,3) reversed... check cancellation via (1,3,2)
	inserted, mate, hadMate := s.Add(1, 3, 2, "back")
	require.False(inserted)
	require.True(hadMate)
	require.Equal("front", mate)
	require.Equal(0, s.Len())
}

func TestFaceSetSameWindingDoesNotCancel(t *testing.T) {
	require := require.New(t)
	s := hashset.NewFaceSet[int]()
	s.Add(1, 2, 3, 1)
	// (2,3,1) is a rotation of the SAME winding, should just overwrite/coexist as same key.
	inserted, _, hadMate := s.Add(2, 3, 1, 2)
	require.True(inserted)
	require.False(hadMate)
	require.Equal(1, s.Len())
}

func TestEdgeSetResizes(t *testing.T) {
	require := require.New(t)
	s := hashset.NewEdgeSet[int]()
	for i := uint64(0); i < 1000; i++ {
		s.Add(i, i+100000, int(i))
	}
	require.Equal(1000, s.Len())
	for i := uint64(0); i < 1000; i++ {
		v, ok := s.Get(i, i+100000)
		require.True(ok)
		require.Equal(int(i), v)
	}
}

func TestNodeSetPairing(t *testing.T) {
	require := require.New(t)
	s := hashset.NewNodeSet[string]()
	inserted, _, hadMate := s.Add(7, false, "tri-A")
	require.True(inserted)
	require.False(hadMate)
	inserted, mate, hadMate := s.Add(7, true, "tri-B")
	require.False(inserted)
	require.True(hadMate)
	require.Equal("tri-A", mate)
}
