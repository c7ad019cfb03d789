package imgconv

import (
	"errors"

	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/palette"
)

// Sentinel errors for image conversion.
var (
	// ErrBadColorCount indicates an unsupported palette size.
	ErrBadColorCount = errors.New("imgconv: num colors must be 6, 8, 12, 16 or 24")
	// ErrBadMaxEdge indicates a non-positive target edge length.
	ErrBadMaxEdge = errors.New("imgconv: max edge must be positive")
	// ErrEmptyImage indicates a source image with no pixels.
	ErrEmptyImage = errors.New("imgconv: source image has no pixels")
)

// Default conversion parameters.
const (
	// DefaultMaxEdge is the target length of the longest image edge.
	DefaultMaxEdge = 768
	// DefaultNumColors is the default palette size.
	DefaultNumColors = 12
	// DefaultMinArea is the cleanup threshold for photo-derived regions.
	DefaultMinArea = 20
	// DefaultBlurRadius is the pre-quantization Gaussian sigma.
	DefaultBlurRadius = 1.0
	// DefaultTargetRegions is the region count subdivision aims for.
	DefaultTargetRegions = 300
)

// Options configures Convert.
type Options struct {
	// MaxEdge is the length the longest edge is resized to.
	MaxEdge int
	// NumColors is the palette size: one of 6, 8, 12, 16 or 24.
	NumColors int
	// MinArea is the minimum surviving region size in pixels.
	MinArea int
	// BlurRadius is the Gaussian sigma applied before quantization;
	// zero skips the blur.
	BlurRadius float64
	// TargetRegions triggers subdivision of oversized regions while the
	// region count stays below it.
	TargetRegions int
	// Seed drives the subdivision seed placement. Zero selects the
	// fixed default stream.
	Seed int64
}

// DefaultOptions returns the conversion defaults.
func DefaultOptions() Options {
	return Options{
		MaxEdge:       DefaultMaxEdge,
		NumColors:     DefaultNumColors,
		MinArea:       DefaultMinArea,
		BlurRadius:    DefaultBlurRadius,
		TargetRegions: DefaultTargetRegions,
	}
}

func (o Options) validate() error {
	if o.MaxEdge < 1 {
		return ErrBadMaxEdge
	}
	switch o.NumColors {
	case 6, 8, 12, 16, 24:
		return nil
	default:
		return ErrBadColorCount
	}
}

// Result is a converted image: a canonical region grid plus the
// quantized palette and the per-region palette assignment.
type Result struct {
	// Grid holds canonical region IDs 0..NumRegions-1.
	Grid *grid.Grid
	// NumRegions is the final region count.
	NumRegions int
	// Palette holds the quantized colors; it may be shorter than
	// Options.NumColors when the image has fewer distinct colors.
	Palette []palette.Color
	// RegionColor maps region ID to an index into Palette.
	RegionColor []int
}
