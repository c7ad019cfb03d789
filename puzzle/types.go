package puzzle

import (
	"errors"

	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/palette"
)

// Sentinel errors for document construction and loading.
var (
	// ErrNilPuzzle is returned when a nil or grid-less puzzle is exported.
	ErrNilPuzzle = errors.New("puzzle: nil puzzle or missing grid")
	// ErrBadRegionCount is returned when NumRegions does not match the
	// grid's ID range.
	ErrBadRegionCount = errors.New("puzzle: region count does not match grid")
	// ErrBadColorCount is returned for a non-positive palette size.
	ErrBadColorCount = errors.New("puzzle: number of colors must be positive")
	// ErrBadDocument is returned when a loaded puzzle.json fails basic
	// shape validation.
	ErrBadDocument = errors.New("puzzle: malformed puzzle document")
)

// Artifact file names inside a puzzle directory.
const (
	DocumentFile = "puzzle.json"
	RasterFile   = "region_ids.png"
)

// FormatVersion is the version stamped into exported documents.
const FormatVersion = 1

// Puzzle is a generated puzzle before export: the canonical region
// grid plus the metadata needed to reproduce it.
type Puzzle struct {
	Grid       *grid.Grid
	NumRegions int
	Generator  string
	Params     map[string]any
}

// PaletteEntry pairs a palette color with its display number.
type PaletteEntry struct {
	Color  [3]int `json:"color"`
	Number int    `json:"number"`
}

// GeneratorInfo records which generator produced a puzzle and with
// which parameters, for byte-identical regeneration.
type GeneratorInfo struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// Document is the serialized form written to puzzle.json.
type Document struct {
	Version     int            `json:"version"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Palette     []PaletteEntry `json:"palette"`
	RegionColor []int          `json:"region_color"`
	NonPlayable []int32        `json:"non_playable"`
	Generator   GeneratorInfo  `json:"generator"`
}

// Loaded is a puzzle read back from disk with the runtime structures a
// renderer needs precomputed.
type Loaded struct {
	Grid        *grid.Grid
	NumRegions  int
	Palette     []palette.Color
	Numbers     []int
	RegionColor []int
	NonPlayable []int32
	Runs        [][]grid.Span
	Stats       *grid.Stats
	Adjacency   grid.Adjacency

	// Filled tracks interactive fill state. The border region is
	// pre-filled: its centroid falls at the image center due to corner
	// symmetry and would otherwise render a stray number there.
	Filled []bool
}
