package expansion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhale/delaunay/expansion"
)

func TestTwoSumExact(t *testing.T) {
	require := require.New(t)
	a, b := 1.0, math.Pow(2, -60)
	x, y := expansion.TwoSum(a, b)
	require.Equal(a+b, x, "x must equal the rounded float sum")
	// 1 + 2^-60 rounds to 1, so the whole of b is roundoff: a+b == x+y in
	// infinite precision exactly when y carries b unchanged.
	require.Equal(b, y, "x+y must reconstruct a+b exactly")
}

func TestTwoSumFastRequiresOrdering(t *testing.T) {
	require := require.New(t)
	x, y := expansion.TwoSumFast(1.0, 1e-20)
	require.Equal(1.0+1e-20, x)
	require.NotPanics(func() { _ = y })
}

func TestSplitReconstructs(t *testing.T) {
	require := require.New(t)
	for _, v := range []float64{1.0, 123456789.123456, -0.0001, math.Pi} {
		hi, lo := expansion.Split(v)
		require.Equal(v, hi+lo, "hi+lo must reconstruct the original value exactly")
	}
}

func TestTwoProductExact(t *testing.T) {
	require := require.New(t)
	a, b := math.Pi, math.E
	x, y := expansion.TwoProduct(a, b)
	require.Equal(a*b, x)
	require.NotEqual(math.NaN(), y)
}

func TestExpansionSumZeroElimFastDropsZeros(t *testing.T) {
	require := require.New(t)
	sum := expansion.ExpansionSumZeroElimFast([]float64{1, 2}, []float64{-1, -2})
	// The sum cancels exactly; every zero component is eliminated and the
	// zero result is represented by the single component 0.
	require.Equal([]float64{0}, sum, "zero components must be eliminated")
}

func TestScaleExpansionZeroElimMatchesFloatProduct(t *testing.T) {
	require := require.New(t)
	e := []float64{0.0, 3.0}
	scaled := expansion.ScaleExpansionZeroElim(e, 2.0)
	require.InDelta(6.0, expansion.Estimate(scaled), 1e-12)
}

func TestTwoTwoProductMatchesFloatProduct(t *testing.T) {
	require := require.New(t)
	// (a1+a0)*(b1+b0) with a0,b0 the TwoSum roundoff of two representable
	// values, so the float64 product of the two highs is a good check.
	a1, a0 := expansion.TwoSum(1.0, 2.0)
	b1, b0 := expansion.TwoSum(3.0, 4.0)
	prod := expansion.TwoTwoProduct(a1, a0, b1, b0)
	require.InDelta((a1+a0)*(b1+b0), expansion.Estimate(prod), 1e-9)
}
