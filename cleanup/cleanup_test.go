package cleanup_test

import (
	"testing"

	"github.com/katalvlaran/mandala/cleanup"
	"github.com/katalvlaran/mandala/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeTiny_AbsorbsIntoSoleNeighbor verifies that a 3-pixel region
// fully surrounded by a single neighbor is absorbed by it.
func TestMergeTiny_AbsorbsIntoSoleNeighbor(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{7, 7, 7, 7, 7},
		{7, 3, 3, 3, 7},
		{7, 7, 7, 7, 7},
	})
	require.NoError(t, err)

	cleanup.MergeTiny(g, 5)

	for _, id := range g.Cells {
		assert.Equal(t, int32(7), id, "every pixel of the tiny region becomes 7")
	}
}

// TestMergeTiny_TiesBreakTowardSmallerID checks the deterministic
// tie-break when several neighbors touch a tiny region with equal
// pixel counts. Region 9 (1 pixel) has one neighbor pixel each from
// regions 0, 2 and 5.
func TestMergeTiny_TiesBreakTowardSmallerID(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{2, 2, 9, 5, 5},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	cleanup.MergeTiny(g, 2)

	assert.Equal(t, int32(0), g.At(2, 0), "equal counts resolve to the smallest ID")
}

// TestMergeTiny_CountsNeighborPixelsOnce ensures a neighbor pixel
// touching the tiny region on multiple sides contributes one vote, not
// one per contact edge. Region 8 is a plus shape whose diagonal
// pockets hold region-1 pixels with two contacts each; counting
// contacts would hand the merge to 1 (7 contacts vs 5), while counting
// pixels yields a 4-4 tie that resolves to region 0.
func TestMergeTiny_CountsNeighborPixelsOnce(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{1, 1, 0, 1, 1},
		{0, 1, 8, 1, 0},
		{0, 8, 8, 8, 0},
		{0, 1, 8, 0, 0},
		{0, 0, 1, 0, 0},
	})
	require.NoError(t, err)

	cleanup.MergeTiny(g, 6)

	assert.Equal(t, int32(0), g.At(2, 2), "pixel votes, not contact votes, decide the merge")
}

// TestMergeTiny_SingleRegionUnchanged leaves a grid made of one region
// alone even when it is below the threshold.
func TestMergeTiny_SingleRegionUnchanged(t *testing.T) {
	g, err := grid.FromRows([][]int32{{4, 4}})
	require.NoError(t, err)

	cleanup.MergeTiny(g, 100)

	assert.Equal(t, []int32{4, 4}, g.Cells)
}

// TestSmoothBoundaries_NoMajorityNoChange verifies that a pattern
// where no pixel reaches a 5-of-9 majority for a foreign value passes
// through the filter untouched. The three-color diagonal stripes keep
// every neighborhood, including the edge-replicated ones, below the
// threshold (or at a self-vote, which is a no-op).
func TestSmoothBoundaries_NoMajorityNoChange(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 1, 2, 0},
		{1, 2, 0, 1},
		{2, 0, 1, 2},
		{0, 1, 2, 0},
	})
	require.NoError(t, err)
	want := g.Clone()

	cleanup.SmoothBoundaries(g, 1)

	assert.Equal(t, want.Cells, g.Cells, "no foreign value holds a 5-of-9 majority")
}

// TestSmoothBoundaries_FillsSinglePixelIntrusion rounds off a lone
// pixel jutting into another region.
func TestSmoothBoundaries_FillsSinglePixelIntrusion(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	cleanup.SmoothBoundaries(g, 1)

	assert.Equal(t, int32(0), g.At(1, 1), "8 of 9 votes flip the intrusion")
}

// TestSmoothBoundaries_InteriorUntouched verifies that pixels whose
// orthogonal neighbors all agree are never revisited, so large solid
// blocks survive any number of passes.
func TestSmoothBoundaries_InteriorUntouched(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 1, 1, 1},
	})
	require.NoError(t, err)
	want := g.Clone()

	cleanup.SmoothBoundaries(g, 3)

	assert.Equal(t, want.Cells, g.Cells, "a straight boundary is already smooth")
}

// TestRemapContiguous_AscendingOrder relabels sparse IDs to 0..N-1
// keeping the original value order.
func TestRemapContiguous_AscendingOrder(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{10, 10, 3},
		{99, 3, 3},
	})
	require.NoError(t, err)

	n := cleanup.RemapContiguous(g)

	assert.Equal(t, 3, n)
	assert.Equal(t, []int32{1, 1, 0, 2, 0, 0}, g.Cells, "3→0, 10→1, 99→2")
}

// TestCleanup_CanonicalOutput runs the full pipeline and asserts the
// canonical postconditions: contiguous IDs, no sub-threshold survivors,
// and full pixel coverage.
func TestCleanup_CanonicalOutput(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{5, 5, 5, 5, 5, 5},
		{5, 9, 5, 5, 2, 5},
		{5, 5, 5, 5, 2, 5},
		{3, 3, 3, 3, 3, 3},
		{3, 3, 3, 7, 3, 3},
		{3, 3, 3, 3, 3, 3},
	})
	require.NoError(t, err)

	n := cleanup.Cleanup(g, cleanup.Options{MinArea: 3, SmoothIterations: 2})
	require.Greater(t, n, 0)

	areas := g.Areas()
	assert.Len(t, areas, n, "IDs are contiguous 0..N-1")
	total := 0
	for id, a := range areas {
		assert.GreaterOrEqual(t, id, int32(0))
		assert.Less(t, int(id), n)
		assert.GreaterOrEqual(t, a, 3, "no surviving region below MinArea")
		total += a
	}
	assert.Equal(t, g.Width*g.Height, total, "pixels are conserved")
}

// TestCleanup_Idempotent verifies that a second run over an already
// canonical grid changes nothing.
func TestCleanup_Idempotent(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 1, 1, 1},
	})
	require.NoError(t, err)
	want := g.Clone()

	n := cleanup.Cleanup(g, cleanup.Options{MinArea: 4, SmoothIterations: 2})

	assert.Equal(t, 2, n)
	assert.Equal(t, want.Cells, g.Cells)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := cleanup.DefaultOptions()
	assert.Equal(t, 20, opts.MinArea)
	assert.Equal(t, 2, opts.SmoothIterations)
}
