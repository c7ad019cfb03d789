package mandala

import (
	"errors"

	"github.com/katalvlaran/mandala/puzzle"
)

// Sentinel errors for preset and parameter resolution.
var (
	// ErrUnknownPreset is returned by NewGenerator for unknown names.
	ErrUnknownPreset = errors.New("mandala: unknown generator preset")
	// ErrUnknownTiling is returned by ParseTilingType for values other
	// than square, hexagon, or triangle.
	ErrUnknownTiling = errors.New("mandala: unknown tiling type")
)

// Params are the knobs shared by all generators. Out-of-range values
// beyond simple defaults are the caller's responsibility; generators
// fail only on dimensions the grid itself rejects. YAML tags let CLI
// preset files use the same snake_case names the exported documents
// record.
type Params struct {
	// Width and Height of the puzzle in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// NumColors is the palette size recorded for export.
	NumColors int `yaml:"num_colors"`
	// Seed makes generation reproducible. Zero selects the fixed
	// default stream and is itself reproducible.
	Seed int64 `yaml:"seed"`
	// SymmetrySlices is the rotational fold count, at least 1.
	SymmetrySlices int `yaml:"symmetry_slices"`
}

// DefaultParams returns the shared defaults: 512×512, 6 colors,
// 8 symmetry slices.
func DefaultParams() Params {
	return Params{Width: 512, Height: 512, NumColors: 6, SymmetrySlices: 8}
}

// Generator produces one puzzle per call. Implementations are cheap to
// construct; a fresh value per generation keeps RNG streams isolated.
type Generator interface {
	// Name returns the preset identifier recorded in exported documents.
	Name() string
	// Generate runs the full pipeline and returns a canonical puzzle.
	Generate() (*puzzle.Puzzle, error)
}
