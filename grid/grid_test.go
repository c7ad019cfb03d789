package grid_test

import (
	"testing"

	"github.com/katalvlaran/mandala/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsBadDimensions ensures non-positive dimensions error.
func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := grid.New(0, 4)
	assert.ErrorIs(t, err, grid.ErrBadDimensions, "zero width must error")

	_, err = grid.New(4, -1)
	assert.ErrorIs(t, err, grid.ErrBadDimensions, "negative height must error")
}

// TestFromRows_Validation ensures FromRows rejects empty and jagged input.
func TestFromRows_Validation(t *testing.T) {
	_, err := grid.FromRows(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "nil input must error")

	_, err = grid.FromRows([][]int32{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular, "jagged input must error")
}

// TestFromRows_DeepCopies verifies the Grid owns its storage.
func TestFromRows_DeepCopies(t *testing.T) {
	rows := [][]int32{{1, 2}, {3, 4}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, int32(1), g.At(0, 0), "mutating the source must not affect the grid")
}

// TestGrid_Accessors exercises Index/At/Set/InBounds on a small grid.
func TestGrid_Accessors(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	g.Set(2, 1, 7)
	assert.Equal(t, int32(7), g.At(2, 1))
	assert.Equal(t, 5, g.Index(2, 1), "row-major index")
	assert.True(t, g.InBounds(2, 1))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 2))
}

// TestGrid_DistinctIDsAndAreas checks ascending distinct IDs and
// per-ID pixel tallies.
func TestGrid_DistinctIDsAndAreas(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{5, 5, 2},
		{2, 5, 9},
	})
	require.NoError(t, err)

	assert.Equal(t, []int32{2, 5, 9}, g.DistinctIDs())
	assert.Equal(t, map[int32]int{2: 2, 5: 3, 9: 1}, g.Areas())
	assert.Equal(t, int32(9), g.MaxID())
}

// TestClipToCircle_AllocatesBorderID verifies that a negative borderID
// allocates MaxID+1 and that corners land in the border region while
// the center does not.
func TestClipToCircle_AllocatesBorderID(t *testing.T) {
	g, err := grid.New(16, 16)
	require.NoError(t, err)

	border := g.ClipToCircle(-1)
	assert.Equal(t, int32(1), border, "all-zero grid allocates border 0+1")
	assert.Equal(t, border, g.At(0, 0), "corner lies outside the disc")
	assert.Equal(t, border, g.At(15, 15), "corner lies outside the disc")
	assert.Equal(t, int32(0), g.At(8, 8), "center stays untouched")
}

// TestClipToCircle_ExplicitBorderID verifies a caller-supplied sentinel
// is used verbatim.
func TestClipToCircle_ExplicitBorderID(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)

	border := g.ClipToCircle(42)
	assert.Equal(t, int32(42), border)
	assert.Equal(t, int32(42), g.At(0, 0))
}
