// Package grid provides the RegionGrid, the 2D array of integer region
// identifiers every generation and cleanup stage operates on, together
// with the derived read-only structures the rest of the pipeline needs.
//
// What:
//
//   - Grid wraps a Width×Height row-major array of region IDs.
//   - ClipToCircle force-assigns pixels outside the mandala disc to a
//     border region.
//   - Runs / ComputeStats produce run-length spans, pixel areas,
//     bounding boxes, and pixel-weighted centroids per region.
//   - BuildAdjacency builds the symmetric 4-connected neighbor sets.
//
// Why:
//
//   - One shared intermediate representation keeps the generators,
//     cleanup passes, coloring, and export boundary decoupled.
//   - Runs back both fast fill rendering and O(area) statistics.
//
// Complexity:
//
//   - ClipToCircle:   O(W×H).
//   - Runs:           O(W×H).
//   - ComputeStats:   O(total runs).
//   - BuildAdjacency: O(W×H) pixel-pair scans.
//
// Invariants:
//
//   - Before cleanup, IDs may be sparse and may repeat across
//     disconnected pixel components.
//   - After cleanup, IDs are exactly 0..N-1 (see package cleanup).
//   - Adjacency is symmetric and irreflexive: b ∈ adj[a] ⟺ a ∈ adj[b],
//     and no region neighbors itself.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrEmptyGrid: input 2D slice has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrIDOutOfRange: a cell carries a region ID outside [0, N) where
//     a canonical grid is required.
package grid
