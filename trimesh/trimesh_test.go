package trimesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhale/delaunay/trimesh"
)

func TestAddSiteSquareProducesTwoTriangles(t *testing.T) {
	require := require.New(t)
	m := trimesh.New(trimesh.WithDebugValidate())

	_, err := m.AddSite(0, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(1, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(1, 1, nil)
	require.NoError(err)
	_, err = m.AddSite(0, 1, nil)
	require.NoError(err)

	require.Equal(4, m.Len())
	count := 0
	m.Triangles(func(idx int32) bool { count++; return true })
	require.Equal(2, count)
	require.NoError(m.Validate())
}

func TestAddSiteRejectsDuplicateCoordinates(t *testing.T) {
	require := require.New(t)
	m := trimesh.New()
	_, err := m.AddSite(0, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(1, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(0, 1, nil)
	require.NoError(err)

	_, err = m.AddSite(0, 0, nil)
	require.Error(err)
}

func TestAddThenRemoveRestoresTriangleCount(t *testing.T) {
	require := require.New(t)
	m := trimesh.New(trimesh.WithDebugValidate())

	_, err := m.AddSite(0, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(4, 0, nil)
	require.NoError(err)
	_, err = m.AddSite(4, 4, nil)
	require.NoError(err)
	_, err = m.AddSite(0, 4, nil)
	require.NoError(err)

	before := 0
	m.Triangles(func(idx int32) bool { before++; return true })

	center, err := m.AddSite(2, 2, nil)
	require.NoError(err)
	require.NoError(m.RemoveSite(center))

	after := 0
	m.Triangles(func(idx int32) bool { after++; return true })
	require.Equal(before, after)
	require.NoError(m.Validate())
}

func TestLocateClassifiesOutsideHull(t *testing.T) {
	require := require.New(t)
	m := trimesh.New()
	_, _ = m.AddSite(0, 0, nil)
	_, _ = m.AddSite(1, 0, nil)
	_, _ = m.AddSite(0, 1, nil)

	loc := m.Locate(10, 10)
	require.Equal(trimesh.LocateOutside, loc.Kind)
}

func TestNaborsOfInteriorSite(t *testing.T) {
	require := require.New(t)
	m := trimesh.New(trimesh.WithDebugValidate())
	_, _ = m.AddSite(0, 0, nil)
	_, _ = m.AddSite(4, 0, nil)
	_, _ = m.AddSite(4, 4, nil)
	_, _ = m.AddSite(0, 4, nil)
	center, _ := m.AddSite(2, 2, nil)

	nabors, err := m.Nabors(center)
	require.NoError(err)
	require.Len(nabors, 4)
}

func TestSnapshotRoundTripsTriangleCount(t *testing.T) {
	require := require.New(t)
	m := trimesh.New()
	_, _ = m.AddSite(0, 0, nil)
	_, _ = m.AddSite(3, 0, nil)
	_, _ = m.AddSite(3, 3, nil)
	_, _ = m.AddSite(0, 3, nil)

	blob, err := m.Snapshot()
	require.NoError(err)

	m2 := trimesh.New()
	require.NoError(m2.Restore(blob))
	require.Equal(m2.Len(), m.Len())

	n1, n2 := 0, 0
	m.Triangles(func(idx int32) bool { n1++; return true })
	m2.Triangles(func(idx int32) bool { n2++; return true })
	require.Equal(n1, n2)
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	require := require.New(t)
	m := trimesh.New()
	var order []int
	m.OnEvent(func(e trimesh.Event) { order = append(order, 1) })
	m.OnEvent(func(e trimesh.Event) { order = append(order, 2) })

	_, err := m.AddSite(0, 0, nil)
	require.NoError(err)

	require.Greater(len(order), 0)
	require.Equal(1, order[0])
}
