package palette_test

import (
	"testing"

	"github.com/katalvlaran/mandala/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_PrefixAndBounds returns prefixes of curated palettes and
// clamps oversized requests to the table length.
func TestGet_PrefixAndBounds(t *testing.T) {
	colors, err := palette.Get("Classic", 3)
	require.NoError(t, err)
	assert.Equal(t, []palette.Color{
		{231, 76, 60}, {46, 204, 113}, {52, 152, 219},
	}, colors)

	colors, err = palette.Get("Jewel", 100)
	require.NoError(t, err)
	assert.Len(t, colors, palette.Size)
}

// TestGet_UnknownName yields the sentinel error.
func TestGet_UnknownName(t *testing.T) {
	_, err := palette.Get("Vaporwave", 6)
	assert.ErrorIs(t, err, palette.ErrUnknownPalette)
}

// TestNames_CoversCuratedTables ensures every listed name resolves.
func TestNames_CoversCuratedTables(t *testing.T) {
	ns := palette.Names()
	require.Len(t, ns, 10)
	for _, n := range ns {
		colors, err := palette.Get(n, palette.Size)
		require.NoError(t, err, n)
		assert.Len(t, colors, palette.Size, n)
	}
}

// TestGenerate_PrefixOfDefault keeps small requests on the default
// table verbatim.
func TestGenerate_PrefixOfDefault(t *testing.T) {
	colors := palette.Generate(5)
	assert.Equal(t, palette.Default[:5], colors)
}

// TestGenerate_SynthesizedVariants pins the first synthesized color:
// round one lightens the default red by 1.3 with clamping.
func TestGenerate_SynthesizedVariants(t *testing.T) {
	colors := palette.Generate(13)
	require.Len(t, colors, 13)
	assert.Equal(t, palette.Color{255, 98, 78}, colors[12])
}

// TestGenerate_ArbitraryLength always returns exactly numColors.
func TestGenerate_ArbitraryLength(t *testing.T) {
	assert.Len(t, palette.Generate(0), 0)
	assert.Len(t, palette.Generate(40), 40)
}
