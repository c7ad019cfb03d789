// Package imgconv converts an arbitrary raster image into a
// paint-by-numbers puzzle.
//
// What:
//
//	The pipeline mirrors the generated-mandala one but starts from
//	pixels instead of geometry:
//
//	  1. resize the longest edge to MaxEdge (Catmull-Rom resampling)
//	  2. soften with a Gaussian blur so quantization follows shapes
//	     rather than noise
//	  3. median-cut quantize to NumColors palette colors
//	  4. label 4-connected same-color components into region IDs
//	  5. cleanup (merge tiny, smooth, remap), same as the generators
//	  6. when the region count falls short of TargetRegions, split
//	     oversized regions with seeded nearest-point subdivision and
//	     clean up again
//	  7. map every final region to the palette entry nearest its mean
//	     quantized color
//
// Why:
//
//	Photo-derived puzzles have no symmetry and no border disc, so they
//	skip the structure-aware coloring entirely: the image itself
//	dictates the colors, and every region is playable.
//
// Determinism: the same image bytes, options, and seed reproduce the
// exact same grid and palette. Seed 0 selects a fixed default stream.
//
// Errors: ErrBadColorCount, ErrBadMaxEdge, ErrEmptyImage, plus wrapped
// I/O and decode errors from ConvertFile.
//
// Complexity: O(W×H × NumColors) dominated by quantization and
// labeling; subdivision adds O(area × seeds) per split region.
package imgconv
