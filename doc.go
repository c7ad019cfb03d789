// Package mandala is a deterministic paint-by-numbers puzzle factory:
// procedural mandala generators, region cleanup, adjacency analysis,
// and palette coloring; everything between a parameter set and the
// puzzle.json + region_ids.png pair a renderer consumes.
//
// 🚀 What is mandala?
//
//	A pure-Go pipeline that brings together:
//		• Pattern generators: Voronoi cells, polar harmonics, regular
//		  tilings with polar warp, stained glass with lead outlines
//		• Region cleanup: tiny-region merging, majority-vote boundary
//		  smoothing, contiguous ID canonicalization
//		• Adjacency: 4-connected region neighbor graphs
//		• Coloring: greedy and symmetry-aware palette assignment
//		• Export: the JSON + RGB-packed-PNG puzzle contract
//		• Image conversion: photo → quantized, subdivided puzzle
//
// ✨ Why choose mandala?
//
//   - Deterministic – same seed + params ⇒ byte-identical puzzles
//   - Self-contained core – the algorithmic packages have no I/O
//   - Extensible – every stage is a plain function over a RegionGrid
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/     — RegionGrid, run-length stats, adjacency graphs
//	cleanup/  — merge → smooth → re-merge → remap fixpoint pipeline
//	coloring/ — greedy and structure-aware region coloring
//	mandala/  — the four pattern generators and their presets
//	palette/  — curated 24-color tables and palette synthesis
//	puzzle/   — export/load of the puzzle.json + region_ids.png pair
//	imgconv/  — image-to-puzzle quantization and subdivision
//
// Dive into the per-package doc.go files for algorithms, options,
// complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/mandala
package mandala
