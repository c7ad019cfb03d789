// Package mandala generates paint-by-numbers mandala puzzles.
//
// What:
//
//   - VoronoiMandala: organic cell mandalas from radially symmetric
//     seed points, optional Lloyd relaxation.
//   - PolarHarmonics: petals, rings and spokes from polar-coordinate
//     harmonics folded by the symmetry slice count.
//   - GeometricTiling: square/hexagon/triangle tilings, optional polar
//     warp and multi-layer overlay.
//   - StainedGlass: Voronoi panes separated by a thick lead outline
//     relabeled as its own region.
//
// Every generator runs the same tail: clip to the inscribed circle
// (pixels outside become one border region) and the cleanup pipeline
// (merge tiny, smooth, re-merge, remap), then returns a puzzle.Puzzle
// whose grid carries contiguous IDs 0..NumRegions-1.
//
// Determinism: identical Params (including Seed) produce a
// byte-identical grid. Seed 0 selects a fixed default stream, so the
// zero value is still reproducible. A Generator owns its RNG for the
// duration of one Generate call; run concurrent generations on
// separate Generator values.
//
// Complexity: the dominant cost is the O(pixels × points) brute-force
// Voronoi scan and the O(pixels) cleanup passes.
package mandala
