package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mandala/coloring"
	"github.com/katalvlaran/mandala/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadrants builds a 5×5 grid of four quadrant regions separated by a
// plus-shaped framework region 4, the classic stained-glass topology:
//
//	0 0 4 1 1
//	0 0 4 1 1
//	4 4 4 4 4
//	2 2 4 3 3
//	2 2 4 3 3
func quadrants(t *testing.T) (*grid.Grid, grid.Adjacency, *grid.Stats) {
	t.Helper()
	g, err := grid.FromRows([][]int32{
		{0, 0, 4, 1, 1},
		{0, 0, 4, 1, 1},
		{4, 4, 4, 4, 4},
		{2, 2, 4, 3, 3},
		{2, 2, 4, 3, 3},
	})
	require.NoError(t, err)

	adj, err := grid.BuildAdjacency(g, 5)
	require.NoError(t, err)
	runs, err := grid.Runs(g, 5)
	require.NoError(t, err)
	return g, adj, grid.ComputeStats(runs)
}

// TestGreedy_LowestUnusedIndex pins the deterministic index choice on
// a path graph: 0-1-2 colors as 0,1,0.
func TestGreedy_LowestUnusedIndex(t *testing.T) {
	g, err := grid.FromRows([][]int32{{0, 1, 2}})
	require.NoError(t, err)
	adj, err := grid.BuildAdjacency(g, 3)
	require.NoError(t, err)

	colors := coloring.Greedy(adj, 4, nil)

	assert.Equal(t, []int{0, 1, 0}, colors)
}

// TestGreedy_ProperWhenPaletteSuffices verifies the standard greedy
// guarantee: with numColors ≥ maxDegree+1 no adjacent pair shares a
// color.
func TestGreedy_ProperWhenPaletteSuffices(t *testing.T) {
	_, adj, _ := quadrants(t)

	colors := coloring.Greedy(adj, adj.MaxDegree()+1, nil)

	require.Len(t, colors, 5)
	for u := int32(0); u < 5; u++ {
		assert.GreaterOrEqual(t, colors[u], 0)
		assert.Less(t, colors[u], adj.MaxDegree()+1)
		for _, v := range adj.Neighbors(u) {
			assert.NotEqual(t, colors[u], colors[v], "regions %d and %d are adjacent", u, v)
		}
	}
}

// TestGreedy_FallbackStaysInRange forces the random fallback with a
// one-color palette on an adjacent pair; the result must still be a
// valid palette index.
func TestGreedy_FallbackStaysInRange(t *testing.T) {
	g, err := grid.FromRows([][]int32{{0, 1}})
	require.NoError(t, err)
	adj, err := grid.BuildAdjacency(g, 2)
	require.NoError(t, err)

	colors := coloring.Greedy(adj, 1, rand.New(rand.NewSource(7)))

	assert.Equal(t, []int{0, 0}, colors, "with one color the fallback can only pick 0")
}

// TestSymmetric_CounterpartsShareColor checks that rotational twins
// landing in the same polar bin receive one shared color, and that all
// indices stay in range. Regions 1 and 2 sit at radius 2 from the
// 6×6 center (3,3), at angles 0 and π/2; with four symmetry slices
// both fold to angle 0 and share a bin. Region 3 sits exactly on the
// center (the center carve-out) and region 0 is the surrounding
// background (border and lead at once).
func TestSymmetric_CounterpartsShareColor(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 3, 0, 1},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 2, 0, 0},
	})
	require.NoError(t, err)
	adj, err := grid.BuildAdjacency(g, 4)
	require.NoError(t, err)
	runs, err := grid.Runs(g, 4)
	require.NoError(t, err)
	st := grid.ComputeStats(runs)

	colors := coloring.Symmetric(g, adj, st, 4, 4)

	require.Len(t, colors, 4)
	for _, c := range colors {
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 4)
	}
	assert.Equal(t, colors[1], colors[2], "rotational counterparts share a color")
}

// TestSymmetric_Deterministic runs the variant twice and expects
// identical output; the walk order is value-sorted, never map-ordered.
func TestSymmetric_Deterministic(t *testing.T) {
	g, adj, st := quadrants(t)

	a := coloring.Symmetric(g, adj, st, 5, 4)
	b := coloring.Symmetric(g, adj, st, 5, 4)

	assert.Equal(t, a, b)
}

// TestNonPlayable_BorderAndLead verifies the exclusion list: the
// region at corner (0,0) plus the framework region adjacent to more
// than half of all others.
func TestNonPlayable_BorderAndLead(t *testing.T) {
	g, adj, _ := quadrants(t)

	np := coloring.NonPlayable(g, adj)

	assert.Equal(t, []int32{0, 4}, np, "border region 0 and lead region 4")
}

// TestNonPlayable_NoLead keeps only the border when no region clears
// the >50% adjacency bar.
func TestNonPlayable_NoLead(t *testing.T) {
	// A 1×6 strip of six regions: every degree ≤ 2, n-1 = 5.
	g, err := grid.FromRows([][]int32{{0, 1, 2, 3, 4, 5}})
	require.NoError(t, err)
	adj, err := grid.BuildAdjacency(g, 6)
	require.NoError(t, err)

	np := coloring.NonPlayable(g, adj)

	assert.Equal(t, []int32{0}, np)
}
