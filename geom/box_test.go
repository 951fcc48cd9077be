package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mkbox(t *testing.T, min, max Vector) Box {
	t.Helper()
	b, err := New(min, max)
	require.NoError(t, err)
	require.False(t, b.IsEmpty())
	return b
}

func TestNewBox(t *testing.T) {
	b := mkbox(t, V(0, 0, 0), V(1, 2, 3))
	require.Equal(t, V(0, 0, 0), b.Min())
	require.Equal(t, V(1, 2, 3), b.Max())
	require.Equal(t, 6.0, b.Volume())
}

func TestNewBoxRejectsNonFinite(t *testing.T) {
	_, err := New(V(math.NaN(), 0, 0), V(1, 1, 1))
	require.ErrorIs(t, err, ErrNonFinite)
	_, err = New(V(0, 0, 0), V(1, math.Inf(1), 1))
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestNewBoxInvertedCornersAreEmpty(t *testing.T) {
	b, err := New(V(1, 0, 0), V(0, 1, 1))
	require.NoError(t, err)
	require.True(t, b.IsEmpty())
	require.Equal(t, 0.0, b.Volume())
}

func TestFromCenter(t *testing.T) {
	b, err := FromCenter(V(1, 1, 1), V(0.5, 0.5, 0.5))
	require.NoError(t, err)
	require.True(t, b.Equal(mkbox(t, V(0.5, 0.5, 0.5), V(1.5, 1.5, 1.5))))
	b, err = FromCenter(V(0, 0, 0), V(-1, 1, 1))
	require.NoError(t, err)
	require.True(t, b.IsEmpty())
}

func TestEmptyBoxSemantics(t *testing.T) {
	e := Empty()
	b := mkbox(t, V(0, 0, 0), V(1, 1, 1))
	require.True(t, e.IsEmpty())
	require.True(t, e.Equal(Empty()))
	require.False(t, e.Equal(b))
	require.True(t, b.Union(e).Equal(b))
	require.True(t, e.Union(b).Equal(b))
	require.False(t, e.Contains(b))
	require.False(t, b.Contains(e))
	require.False(t, e.Overlaps(b))
	require.False(t, e.ContainsPoint(V(0, 0, 0)))
}

func TestBoxUnion(t *testing.T) {
	a := mkbox(t, V(0, 0, 0), V(1, 1, 1))
	b := mkbox(t, V(2, -1, 0.5), V(3, 0.5, 2))
	u := a.Union(b)
	require.True(t, u.Equal(mkbox(t, V(0, -1, 0), V(3, 1, 2))))
	require.True(t, u.Contains(a))
	require.True(t, u.Contains(b))
}

func TestBoxContains(t *testing.T) {
	outer := mkbox(t, V(0, 0, 0), V(10, 10, 10))
	inner := mkbox(t, V(2, 2, 2), V(3, 3, 3))
	edge := mkbox(t, V(0, 0, 0), V(10, 10, 10))
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
	require.True(t, outer.Contains(edge)) // faces included
	require.True(t, outer.Contains(outer))
}

func TestBoxOverlaps(t *testing.T) {
	a := mkbox(t, V(0, 0, 0), V(2, 2, 2))
	b := mkbox(t, V(1, 1, 1), V(3, 3, 3))
	apart := mkbox(t, V(5, 5, 5), V(6, 6, 6))
	touching := mkbox(t, V(2, 0, 0), V(3, 2, 2))
	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(a))
	require.False(t, a.Overlaps(apart))
	require.True(t, a.Overlaps(touching)) // shared face counts
}

func TestBoxContainsPoint(t *testing.T) {
	b := mkbox(t, V(0, 0, 0), V(1, 1, 1))
	require.True(t, b.ContainsPoint(V(0.5, 0.5, 0.5)))
	require.True(t, b.ContainsPoint(V(1, 1, 1))) // corner counts
	require.False(t, b.ContainsPoint(V(1.5, 0.5, 0.5)))
}

func TestDegenerateBoxVolume(t *testing.T) {
	flat := mkbox(t, V(0, 0, 0), V(1, 1, 0))
	require.Equal(t, 0.0, flat.Volume())
	require.True(t, flat.Overlaps(flat))
	require.True(t, flat.Contains(flat))
}
