// Package puzzle defines the generated-puzzle model and its on-disk
// contract.
//
// A puzzle directory holds exactly two artifacts:
//
//   - region_ids.png: the region ID raster, each pixel packed as
//     id = r + (g<<8) + (b<<16) into an opaque RGB image.
//   - puzzle.json: version, dimensions, palette (color + display
//     number), region_color (index = region ID, value = palette
//     index), non_playable (border and lead regions excluded from
//     interactive filling) and the generator name/params for
//     reproducibility.
//
// This pair is the only contract the rendering layer depends on.
// BuildDocument guarantees region_color has exactly NumRegions entries
// and every value is below the palette length.
//
// Load reads a directory back, remaps raster IDs to a contiguous
// 0..N-1 range and precomputes the runtime structures (runs, stats,
// adjacency) a renderer needs.
//
// Errors: the sentinel errors in types.go wrap every failure mode that
// is not a propagated I/O or codec error.
package puzzle
