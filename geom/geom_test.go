package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorComponents(t *testing.T) {
	v := V(1, 2, 3)
	require.Equal(t, 1.0, v.X)
	require.Equal(t, 2.0, v.Y)
	require.Equal(t, 3.0, v.Z)
	for axis := 0; axis < Axes; axis++ {
		require.Equal(t, float64(axis+1), v.At(axis))
	}
	require.Panics(t, func() { v.At(Axes) })
	require.Panics(t, func() { v.At(-1) })
}

func TestVectorArithmetic(t *testing.T) {
	v := V(1, 2, 3)
	w := V(4, -2, 0.5)
	require.Equal(t, V(5, 0, 3.5), v.Add(w))
	require.Equal(t, V(-3, 4, 2.5), v.Sub(w))
	require.Equal(t, V(1, -2, 0.5), v.Min(w))
	require.Equal(t, V(4, 2, 3), v.Max(w))
}

func TestVectorCompare(t *testing.T) {
	require.True(t, V(1, 2, 3).Equal(V(1, 2, 3)))
	require.False(t, V(1, 2, 3).Equal(V(1, 2, 3.0001)))
	require.True(t, V(1, 2, 3).EqualWithEpsilon(V(1.0001, 2, 3), 0.001))
	require.False(t, V(1, 2, 3).EqualWithEpsilon(V(1.01, 2, 3), 0.001))
	require.True(t, V(0, 0, 0).LessEq(V(0, 1, 2)))
	require.False(t, V(0, 2, 0).LessEq(V(1, 1, 1)))
}

func TestVectorFiniteness(t *testing.T) {
	require.True(t, V(0, -1e300, 42).IsFinite())
	require.False(t, V(math.NaN(), 0, 0).IsFinite())
	require.False(t, V(0, math.Inf(1), 0).IsFinite())
	require.False(t, V(0, 0, math.Inf(-1)).IsFinite())
}
