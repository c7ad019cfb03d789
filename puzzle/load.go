package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/palette"
)

// Load reads a puzzle directory (puzzle.json + region_ids.png) and
// builds the runtime structures. Raster IDs are remapped to 0..N-1 in
// ascending order; region_color and non_playable entries are carried
// across the remap (stale IDs are dropped). The border region is
// pre-filled.
func Load(dir string) (*Loaded, error) {
	data, err := os.ReadFile(filepath.Join(dir, DocumentFile))
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", DocumentFile, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("puzzle: parse %s: %w", DocumentFile, err)
	}
	if doc.Width <= 0 || doc.Height <= 0 || len(doc.Palette) == 0 {
		return nil, ErrBadDocument
	}

	f, err := os.Open(filepath.Join(dir, RasterFile))
	if err != nil {
		return nil, fmt.Errorf("puzzle: open %s: %w", RasterFile, err)
	}
	g, err := DecodePNG(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	// Remap to contiguous IDs, keeping the old→new mapping so the
	// document's per-region arrays can follow.
	oldIDs := g.DistinctIDs()
	mapping := make(map[int32]int32, len(oldIDs))
	for newID, oldID := range oldIDs {
		mapping[oldID] = int32(newID)
	}
	for i, id := range g.Cells {
		g.Cells[i] = mapping[id]
	}
	numRegions := len(oldIDs)

	regionColor := make([]int, numRegions)
	for oldID, newID := range mapping {
		if int(oldID) < len(doc.RegionColor) {
			regionColor[newID] = doc.RegionColor[oldID]
		}
	}

	nonPlayable := make([]int32, 0, len(doc.NonPlayable))
	for _, oldID := range doc.NonPlayable {
		if newID, ok := mapping[oldID]; ok {
			nonPlayable = append(nonPlayable, newID)
		}
	}

	pal := make([]palette.Color, len(doc.Palette))
	numbers := make([]int, len(doc.Palette))
	for i, e := range doc.Palette {
		pal[i] = palette.Color{uint8(e.Color[0]), uint8(e.Color[1]), uint8(e.Color[2])}
		numbers[i] = e.Number
	}

	runs, err := grid.Runs(g, numRegions)
	if err != nil {
		return nil, err
	}
	adj, err := grid.BuildAdjacency(g, numRegions)
	if err != nil {
		return nil, err
	}

	loaded := &Loaded{
		Grid:        g,
		NumRegions:  numRegions,
		Palette:     pal,
		Numbers:     numbers,
		RegionColor: regionColor,
		NonPlayable: nonPlayable,
		Runs:        runs,
		Stats:       grid.ComputeStats(runs),
		Adjacency:   adj,
		Filled:      make([]bool, numRegions),
	}
	loaded.Filled[g.At(0, 0)] = true
	return loaded, nil
}
