package puzzle

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/mandala/grid"
)

// EncodePNG writes g as an opaque RGB raster with each region ID
// packed little-endian across the channels: id = r + (g<<8) + (b<<16).
// IDs above 2^24-1 do not round-trip and are rejected upstream by the
// canonical-grid contract (cleanup caps IDs at the region count).
func EncodePNG(w io.Writer, g *grid.Grid) error {
	if g == nil || len(g.Cells) == 0 {
		return ErrNilPuzzle
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := uint32(g.At(x, y))
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(id & 0xff),
				G: uint8(id >> 8 & 0xff),
				B: uint8(id >> 16 & 0xff),
				A: 0xff,
			})
		}
	}
	return png.Encode(w, img)
}

// DecodePNG reads a region ID raster produced by EncodePNG. Any PNG
// color model is accepted; channels are interpreted after conversion
// to 8-bit RGB.
func DecodePNG(r io.Reader) (*grid.Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("puzzle: decode raster: %w", err)
	}

	bounds := img.Bounds()
	g, err := grid.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, int32(c.R)|int32(c.G)<<8|int32(c.B)<<16)
		}
	}
	return g, nil
}
