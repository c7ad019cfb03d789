package imgconv_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/mandala/imgconv"
	"github.com/katalvlaran/mandala/palette"
	"github.com/katalvlaran/mandala/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatImage fills a w×h image with one color.
func flatImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 255
	}
	return img
}

// twoTone builds a 64×64 image, red on the left half and blue on the
// right.
func twoTone() *image.NRGBA {
	img := flatImage(64, 64, color.NRGBA{R: 200, G: 30, B: 30})
	for y := 0; y < 64; y++ {
		for x := 32; x < 64; x++ {
			i := (y*64 + x) * 4
			img.Pix[i] = 30
			img.Pix[i+2] = 200
		}
	}
	return img
}

// twoToneOpts disables the blur and the subdivision so the pipeline
// output is exactly predictable.
func twoToneOpts() imgconv.Options {
	opts := imgconv.DefaultOptions()
	opts.MaxEdge = 64
	opts.NumColors = 6
	opts.BlurRadius = 0
	opts.TargetRegions = 2
	return opts
}

// TestConvert_TwoToneImage checks the quantize → label → cleanup path
// on an image with two exactly known colors.
func TestConvert_TwoToneImage(t *testing.T) {
	res, err := imgconv.Convert(twoTone(), twoToneOpts())
	require.NoError(t, err)

	assert.Equal(t, 64, res.Grid.Width)
	assert.Equal(t, 64, res.Grid.Height)
	assert.Equal(t, 2, res.NumRegions)
	require.Len(t, res.Palette, 2, "two distinct colors yield two palette entries")
	require.Len(t, res.RegionColor, 2)
	assert.NotEqual(t, res.RegionColor[0], res.RegionColor[1])

	// The region under (0,0) is the red half; its assigned palette
	// entry must be the exact red of the source.
	left := res.Grid.At(0, 0)
	assert.Equal(t, palette.Color{200, 30, 30}, res.Palette[res.RegionColor[left]])

	right := res.Grid.At(63, 0)
	assert.Equal(t, palette.Color{30, 30, 200}, res.Palette[res.RegionColor[right]])
}

// TestConvert_SubdivisionSplitsFlatImage feeds a single-color image,
// which labels as one giant region, and expects the subdivision pass
// to break it up toward the target.
func TestConvert_SubdivisionSplitsFlatImage(t *testing.T) {
	opts := imgconv.DefaultOptions()
	opts.MaxEdge = 64
	opts.NumColors = 6
	opts.BlurRadius = 0
	opts.TargetRegions = 8
	opts.Seed = 5

	img := flatImage(64, 64, color.NRGBA{R: 120, G: 120, B: 120})
	res, err := imgconv.Convert(img, opts)
	require.NoError(t, err)

	require.Len(t, res.Palette, 1)
	assert.Greater(t, res.NumRegions, 1, "subdivision must split the flat region")
	for rid, ci := range res.RegionColor {
		assert.Equal(t, 0, ci, "region %d", rid)
	}

	// Same seed, same split.
	again, err := imgconv.Convert(img, opts)
	require.NoError(t, err)
	assert.Equal(t, res.Grid.Cells, again.Grid.Cells)
}

// TestConvert_QuantizeKeepsEqualColorsTogether uses an uneven color
// split (24 red columns, 40 blue) so the pixel-count median falls
// inside the blue run. The cut must move to the color boundary:
// identical pixels in one palette entry, no duplicate entries, and no
// phantom region border along the median line.
func TestConvert_QuantizeKeepsEqualColorsTogether(t *testing.T) {
	img := flatImage(64, 64, color.NRGBA{R: 200, G: 30, B: 30})
	for y := 0; y < 64; y++ {
		for x := 24; x < 64; x++ {
			i := (y*64 + x) * 4
			img.Pix[i] = 30
			img.Pix[i+2] = 200
		}
	}

	res, err := imgconv.Convert(img, twoToneOpts())
	require.NoError(t, err)

	require.Len(t, res.Palette, 2)
	assert.NotEqual(t, res.Palette[0], res.Palette[1])
	assert.Equal(t, 2, res.NumRegions)

	left := res.Grid.At(0, 0)
	assert.Equal(t, palette.Color{200, 30, 30}, res.Palette[res.RegionColor[left]])
	right := res.Grid.At(63, 63)
	assert.Equal(t, palette.Color{30, 30, 200}, res.Palette[res.RegionColor[right]])
}

// TestConvert_SubdivisionSkipsModestRegions checks that subdivision
// only touches oversized regions: with target 3 the 1536-pixel red
// strip stays below the 1.5× cutoff (2048) and must survive intact
// while the 2560-pixel blue strip is split.
func TestConvert_SubdivisionSkipsModestRegions(t *testing.T) {
	img := flatImage(64, 64, color.NRGBA{R: 200, G: 30, B: 30})
	for y := 0; y < 64; y++ {
		for x := 24; x < 64; x++ {
			i := (y*64 + x) * 4
			img.Pix[i] = 30
			img.Pix[i+2] = 200
		}
	}

	opts := twoToneOpts()
	opts.TargetRegions = 3
	opts.Seed = 11

	res, err := imgconv.Convert(img, opts)
	require.NoError(t, err)

	// Every red pixel still belongs to one region.
	left := res.Grid.At(0, 0)
	count := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 24; x++ {
			if res.Grid.At(x, y) == left {
				count++
			}
		}
	}
	assert.Equal(t, 24*64, count, "modest region must not be re-labeled")
	assert.GreaterOrEqual(t, res.NumRegions, 2)
}

// TestConvert_ResizesLongestEdge pins the aspect-preserving resize.
func TestConvert_ResizesLongestEdge(t *testing.T) {
	opts := imgconv.DefaultOptions()
	opts.MaxEdge = 64
	opts.TargetRegions = 2

	img := flatImage(100, 50, color.NRGBA{R: 10, G: 200, B: 10})
	res, err := imgconv.Convert(img, opts)
	require.NoError(t, err)

	assert.Equal(t, 64, res.Grid.Width)
	assert.Equal(t, 32, res.Grid.Height)
}

// TestConvert_Validation covers the option sentinels.
func TestConvert_Validation(t *testing.T) {
	img := flatImage(8, 8, color.NRGBA{})

	opts := imgconv.DefaultOptions()
	opts.NumColors = 7
	_, err := imgconv.Convert(img, opts)
	assert.ErrorIs(t, err, imgconv.ErrBadColorCount)

	opts = imgconv.DefaultOptions()
	opts.MaxEdge = 0
	_, err = imgconv.Convert(img, opts)
	assert.ErrorIs(t, err, imgconv.ErrBadMaxEdge)

	_, err = imgconv.Convert(image.NewNRGBA(image.Rect(0, 0, 0, 0)), imgconv.DefaultOptions())
	assert.ErrorIs(t, err, imgconv.ErrEmptyImage)
}

// TestResult_DocumentAndRoundTrip exports a converted image and loads
// it back through the standard puzzle loader.
func TestResult_DocumentAndRoundTrip(t *testing.T) {
	res, err := imgconv.Convert(twoTone(), twoToneOpts())
	require.NoError(t, err)

	doc := res.Document("photo.png")
	assert.Equal(t, puzzle.FormatVersion, doc.Version)
	assert.Empty(t, doc.NonPlayable)
	assert.Equal(t, "image", doc.Generator.Name)
	assert.Equal(t, "photo.png", doc.Generator.Params["source"])
	for i, e := range doc.Palette {
		assert.Equal(t, i+1, e.Number)
	}

	dir := t.TempDir()
	require.NoError(t, res.WriteDir(dir, "photo.png"))

	loaded, err := puzzle.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, res.NumRegions, loaded.NumRegions)
	assert.Equal(t, res.Grid.Cells, loaded.Grid.Cells)
	assert.Equal(t, res.RegionColor, loaded.RegionColor)
	assert.Empty(t, loaded.NonPlayable)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := imgconv.DefaultOptions()
	assert.Equal(t, 768, opts.MaxEdge)
	assert.Equal(t, 12, opts.NumColors)
	assert.Equal(t, 20, opts.MinArea)
	assert.Equal(t, 1.0, opts.BlurRadius)
	assert.Equal(t, 300, opts.TargetRegions)
	assert.Equal(t, int64(0), opts.Seed)
}
