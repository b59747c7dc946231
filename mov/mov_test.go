package mov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malvaren/gentree/mov"
)

// TestDominance_Floats covers the generalized algorithm over 3-axis values.
func TestDominance_Floats(t *testing.T) {
	cases := []struct {
		name string
		u, v mov.Floats
		want int
	}{
		{"equal", mov.Floats{1, 2, 3}, mov.Floats{1, 2, 3}, 0},
		{"u dominates on one axis", mov.Floats{1, 2, 4}, mov.Floats{1, 2, 3}, 1},
		{"u dominates on all axes", mov.Floats{2, 3, 4}, mov.Floats{1, 2, 3}, 1},
		{"v dominates", mov.Floats{1, 2, 3}, mov.Floats{1, 3, 3}, -1},
		{"incomparable", mov.Floats{2, 1, 3}, mov.Floats{1, 2, 3}, 0},
		{"incomparable late", mov.Floats{1, 1, 9}, mov.Floats{1, 2, 3}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mov.Dominance(tc.u, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// Antisymmetry on every case.
			rev, err := mov.Dominance(tc.v, tc.u)
			require.NoError(t, err)
			assert.Equal(t, -tc.want, rev, "dominance(v,u) must be -dominance(u,v)")
		})
	}
}

// TestDominance_Reflexive verifies dominance(u,u) == 0.
func TestDominance_Reflexive(t *testing.T) {
	for _, u := range []mov.Floats{
		{0},
		{1, 2},
		{3, 3, 3},
		{math.Inf(1), math.Inf(-1), math.NaN()},
	} {
		got, err := mov.Dominance(u, u)
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

// TestDominance_DimensionMismatch rejects values of different size.
func TestDominance_DimensionMismatch(t *testing.T) {
	_, err := mov.Dominance(mov.Floats{1, 2}, mov.Floats{1, 2, 3})
	assert.ErrorIs(t, err, mov.ErrDimensionMismatch)

	_, err = mov.Floats{1, 2, 3}.Compare(mov.Floats{1}, 2)
	assert.ErrorIs(t, err, mov.ErrDimensionMismatch)
}

// TestFloats_CompareBounds covers the axis range sentinel.
func TestFloats_CompareBounds(t *testing.T) {
	f := mov.Floats{1, 2}
	for _, axis := range []int{-1, 2, 7} {
		_, err := f.Compare(mov.Floats{1, 2}, axis)
		assert.ErrorIs(t, err, mov.ErrAxisOutOfRange, "axis %d", axis)
	}
	c, err := f.Compare(mov.Floats{0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestDominance_NaNTotalOrder pins the cmp.Compare NaN semantics: NaN is
// below every other value and equal to itself, so results stay
// antisymmetric with NaN coordinates.
func TestDominance_NaNTotalOrder(t *testing.T) {
	nan := math.NaN()
	u := mov.Floats{nan, 1}
	v := mov.Floats{0, 1}

	d, err := mov.Dominance(u, v)
	require.NoError(t, err)
	assert.Equal(t, -1, d, "NaN orders below 0")

	rev, err := mov.Dominance(v, u)
	require.NoError(t, err)
	assert.Equal(t, 1, rev)
}
