// Package grid defines the core types and sentinel errors for the
// RegionGrid intermediate representation.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrIDOutOfRange indicates a region ID outside [0, N) in a context
	// that requires canonical (0..N-1) IDs.
	ErrIDOutOfRange = errors.New("grid: region IDs must be canonical 0..N-1")
)

// Grid is a Width×Height region-ID raster stored row-major:
// Cells[y*Width+x] is the region ID of pixel (x,y). Generators write
// into it, cleanup mutates it in place, and once canonical it is
// treated as frozen by every downstream consumer.
type Grid struct {
	Width, Height int
	Cells         []int32
}

// Span is a run of same-region pixels on one row: x ∈ [X0, X1).
type Span struct {
	Y, X0, X1 int
}

// Rect is an inclusive pixel bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Point is a pixel-space coordinate; centroids are pixel-weighted means.
type Point struct {
	X, Y float64
}

// Stats holds the per-region statistics derived from run-length spans.
// All three slices are indexed by region ID.
type Stats struct {
	Area     []int
	BBox     []Rect
	Centroid []Point
}

// Adjacency maps region ID → set of distinct neighboring region IDs.
// It is symmetric, irreflexive, and never mutated after construction.
type Adjacency []map[int32]struct{}
