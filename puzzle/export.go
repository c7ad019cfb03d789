package puzzle

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/katalvlaran/mandala/coloring"
	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/palette"
)

// ExportOptions controls document construction.
type ExportOptions struct {
	// NumColors is the palette size; region colors are indices below it.
	NumColors int
	// Palette overrides the synthesized default palette when non-nil.
	// Shorter palettes are extended with synthesized colors so every
	// region color stays addressable.
	Palette []palette.Color
	// Symmetric selects the structure-aware coloring variant instead of
	// the plain greedy one.
	Symmetric bool
	// SymmetrySlices is the rotational fold count used by the symmetric
	// variant (ignored otherwise).
	SymmetrySlices int
	// Seed drives the greedy variant's conflict fallback. Zero selects
	// the fixed default stream.
	Seed int64
}

// BuildDocument assembles the serializable document for p: it colors
// the regions, detects the non-playable border and lead regions, and
// numbers the palette 1..NumColors. The returned document always has
// exactly p.NumRegions region_color entries, each below NumColors.
func BuildDocument(p *Puzzle, opts ExportOptions) (*Document, error) {
	if p == nil || p.Grid == nil || len(p.Grid.Cells) == 0 {
		return nil, ErrNilPuzzle
	}
	if opts.NumColors < 1 {
		return nil, ErrBadColorCount
	}
	if want := int(p.Grid.MaxID()) + 1; p.NumRegions != want {
		return nil, fmt.Errorf("%w: have %d, grid says %d", ErrBadRegionCount, p.NumRegions, want)
	}

	adj, err := grid.BuildAdjacency(p.Grid, p.NumRegions)
	if err != nil {
		return nil, err
	}

	var colors []int
	if opts.Symmetric {
		runs, err := grid.Runs(p.Grid, p.NumRegions)
		if err != nil {
			return nil, err
		}
		st := grid.ComputeStats(runs)
		colors = coloring.Symmetric(p.Grid, adj, st, opts.NumColors, opts.SymmetrySlices)
	} else {
		seed := opts.Seed
		if seed == 0 {
			seed = 1
		}
		colors = coloring.Greedy(adj, opts.NumColors, rand.New(rand.NewSource(seed)))
	}

	pal := make([]palette.Color, 0, opts.NumColors)
	pal = append(pal, opts.Palette...)
	if len(pal) < opts.NumColors {
		pal = append(pal, palette.Generate(opts.NumColors)[len(pal):]...)
	}
	entries := make([]PaletteEntry, opts.NumColors)
	for i := 0; i < opts.NumColors; i++ {
		entries[i] = PaletteEntry{
			Color:  [3]int{int(pal[i][0]), int(pal[i][1]), int(pal[i][2])},
			Number: i + 1,
		}
	}

	return &Document{
		Version:     FormatVersion,
		Width:       p.Grid.Width,
		Height:      p.Grid.Height,
		Palette:     entries,
		RegionColor: colors,
		NonPlayable: coloring.NonPlayable(p.Grid, adj),
		Generator:   GeneratorInfo{Name: p.Generator, Params: p.Params},
	}, nil
}

// WriteDir exports p into dir, creating it if needed, as the standard
// puzzle.json + region_ids.png pair.
func WriteDir(dir string, p *Puzzle, opts ExportOptions) error {
	doc, err := BuildDocument(p, opts)
	if err != nil {
		return err
	}
	return WriteArtifacts(dir, doc, p.Grid)
}

// WriteArtifacts writes an already-assembled document and its raster
// into dir. Callers that color regions themselves (the image
// converter) use this directly; WriteDir is the common path.
func WriteArtifacts(dir string, doc *Document, g *grid.Grid) error {
	if doc == nil || g == nil || len(g.Cells) == 0 {
		return ErrNilPuzzle
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("puzzle: create output dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("puzzle: marshal document: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DocumentFile), data, 0o644); err != nil {
		return fmt.Errorf("puzzle: write %s: %w", DocumentFile, err)
	}

	f, err := os.Create(filepath.Join(dir, RasterFile))
	if err != nil {
		return fmt.Errorf("puzzle: create %s: %w", RasterFile, err)
	}
	if err := EncodePNG(f, g); err != nil {
		f.Close()
		return fmt.Errorf("puzzle: write %s: %w", RasterFile, err)
	}
	return f.Close()
}
