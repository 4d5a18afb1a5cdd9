package perturb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhale/delaunay/perturb"
)

func TestPoint2RoundTrips(t *testing.T) {
	require := require.New(t)
	for _, pair := range [][2]float32{{1, 2}, {-3.5, 0.25}, {100, -100}, {0, 0}} {
		px, py := perturb.Point2(pair[0], pair[1])
		require.Equal(pair[0], float32(px), "x must round-trip")
		require.Equal(pair[1], float32(py), "y must round-trip")
	}
}

func TestPoint3RoundTrips(t *testing.T) {
	require := require.New(t)
	for _, triple := range [][3]float32{{1, 2, 3}, {-1, -2, -3}, {0, 5, 0}} {
		px, py, pz := perturb.Point3(triple[0], triple[1], triple[2])
		require.Equal(triple[0], float32(px))
		require.Equal(triple[1], float32(py))
		require.Equal(triple[2], float32(pz))
	}
}

func TestPoint2DistinctSitesPerturbDifferently(t *testing.T) {
	require := require.New(t)
	_, y1 := perturb.Point2(1, 4)
	_, y2 := perturb.Point2(2, 4)
	require.NotEqual(y1, y2, "distinct companions should usually yield distinct perturbations")
}
