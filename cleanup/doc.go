// Package cleanup turns a raw generator grid into the canonical
// RegionGrid every downstream consumer depends on.
//
// What:
//
//   - MergeTiny reassigns every region smaller than MinArea to its most
//     frequent 4-connected neighbor.
//   - SmoothBoundaries runs a conservative majority-vote mode filter
//     over boundary pixels (reassign only on a ≥5-of-9 majority), which
//     rounds off single-pixel jags without eroding thin structures
//     such as 1–2px stained-glass lead lines.
//   - RemapContiguous relabels the surviving IDs to 0..N-1 in ascending
//     order of their original value.
//   - Cleanup orchestrates the fixed pipeline:
//     merge → smooth → re-merge → remap. It is re-entrant; callers may
//     run it again after subdividing an image-derived grid.
//
// Why:
//
//   - Generators produce sparse, fragment-ridden ID maps; renderers and
//     the persisted format require contiguous IDs and fillable areas.
//
// Complexity:
//
//   - MergeTiny:         O(T×W×H) for T sub-threshold regions.
//   - SmoothBoundaries:  O(I×W×H) for I iterations (early exit when no
//     boundary pixels remain).
//   - RemapContiguous:   O(W×H + K log K).
//
// Failure policy: these passes never fail. Worst case a region is
// absorbed entirely and the final count simply decreases; a tiny region
// with no neighbors at all (single-color grid) is left unchanged.
package cleanup
