// Package coloring assigns a palette index to every region of a
// canonical RegionGrid.
//
// What:
//
//   - Greedy walks regions in ID order and picks the lowest palette
//     index unused by already-colored neighbors, falling back to a
//     uniformly random color when neighbors exhaust the palette.
//   - Symmetric groups regions by their quantized polar position
//     (radius, angle folded into one symmetry wedge) so rotational
//     counterparts share a color, then colors the groups radially with
//     a rotating cursor.
//   - NonPlayable reports the regions excluded from interactive
//     filling: the border region and any lead/framework region.
//
// Why:
//
//   - Mandala-style puzzles look wrong when rotational twins differ in
//     color; the symmetric variant trades strict properness for a
//     visually cyclic palette flow.
//
// Guarantees and non-guarantees:
//
//   - Every returned index lies in [0, numColors).
//   - Greedy is a proper coloring whenever numColors exceeds the
//     maximum adjacency degree. Beyond that bound, and always for
//     Symmetric, adjacent regions may legitimately share a color. The
//     fallback is deliberate; a puzzle must stay exportable even when
//     the graph is not numColors-colorable.
//
// Complexity: O(V + E) for Greedy, O(V log V + E) for Symmetric, with
// V regions and E adjacency pairs.
package coloring
