package grid_test

import (
	"testing"

	"github.com/katalvlaran/mandala/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRuns_SplitsRows verifies run-length extraction over a grid with
// interleaved regions:
//
//	0 0 1 1
//	1 1 1 0
func TestRuns_SplitsRows(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 1, 1},
		{1, 1, 1, 0},
	})
	require.NoError(t, err)

	runs, err := grid.Runs(g, 2)
	require.NoError(t, err)

	assert.Equal(t, []grid.Span{{Y: 0, X0: 0, X1: 2}, {Y: 1, X0: 3, X1: 4}}, runs[0])
	assert.Equal(t, []grid.Span{{Y: 0, X0: 2, X1: 4}, {Y: 1, X0: 0, X1: 3}}, runs[1])
}

// TestRuns_RejectsOutOfRangeIDs ensures non-canonical IDs error.
func TestRuns_RejectsOutOfRangeIDs(t *testing.T) {
	g, err := grid.FromRows([][]int32{{0, 3}})
	require.NoError(t, err)

	_, err = grid.Runs(g, 2)
	assert.ErrorIs(t, err, grid.ErrIDOutOfRange)
}

// TestComputeStats_AreaConservation checks that region areas sum to the
// pixel count and that bbox/centroid match hand-computed values.
func TestComputeStats_AreaConservation(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 1},
		{0, 1, 1},
		{2, 2, 2},
	})
	require.NoError(t, err)

	runs, err := grid.Runs(g, 3)
	require.NoError(t, err)
	st := grid.ComputeStats(runs)

	total := 0
	for _, a := range st.Area {
		total += a
	}
	assert.Equal(t, g.Width*g.Height, total, "every pixel belongs to exactly one region")

	assert.Equal(t, grid.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, st.BBox[0])
	assert.Equal(t, grid.Rect{MinX: 0, MinY: 2, MaxX: 2, MaxY: 2}, st.BBox[2])

	// Region 2 occupies the full bottom row: centroid at (1, 2).
	assert.InDelta(t, 1.0, st.Centroid[2].X, 1e-9)
	assert.InDelta(t, 2.0, st.Centroid[2].Y, 1e-9)
}

// TestComputeStats_EmptyRegion tolerates a region with no runs
// (transient pre-cleanup state) by reporting zero stats.
func TestComputeStats_EmptyRegion(t *testing.T) {
	st := grid.ComputeStats([][]grid.Span{nil, {{Y: 0, X0: 0, X1: 2}}})
	assert.Equal(t, 0, st.Area[0])
	assert.Equal(t, 2, st.Area[1])
}
