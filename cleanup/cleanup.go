package cleanup

import "github.com/katalvlaran/mandala/grid"

// Default pipeline parameters.
const (
	// DefaultMinArea is the minimum pixel count a region must keep to
	// survive the merge passes.
	DefaultMinArea = 20
	// DefaultSmoothIterations is the number of mode-filter passes.
	DefaultSmoothIterations = 2
	// smoothMajority is the vote threshold (out of 9) required to
	// reassign a boundary pixel. 5 of 9 is the strict majority that
	// keeps thin lead lines intact.
	smoothMajority = 5
)

// Options configures the Cleanup pipeline.
type Options struct {
	// MinArea is the minimum region pixel count; smaller regions are
	// merged into their most frequent neighbor.
	MinArea int
	// SmoothIterations is the number of boundary-smoothing passes.
	SmoothIterations int
}

// DefaultOptions returns the pipeline defaults: MinArea=20, two
// smoothing passes.
func DefaultOptions() Options {
	return Options{MinArea: DefaultMinArea, SmoothIterations: DefaultSmoothIterations}
}

// Cleanup runs the fixed pipeline in place (merge tiny regions, smooth
// boundaries, re-merge fragments created by smoothing, remap to
// contiguous IDs) and returns the final region count N; grid IDs are
// then exactly 0..N-1.
func Cleanup(g *grid.Grid, opts Options) int {
	MergeTiny(g, opts.MinArea)
	SmoothBoundaries(g, opts.SmoothIterations)
	MergeTiny(g, opts.MinArea)
	return RemapContiguous(g)
}

// MergeTiny reassigns, in ascending ID order, every region whose pixel
// count is below minArea to the region ID most frequent among its
// 4-connected neighbor pixels (each neighbor pixel tallied once).
// Ties break toward the smaller ID. A tiny region with no neighbors is
// left unchanged.
func MergeTiny(g *grid.Grid, minArea int) {
	areas := g.Areas()
	tiny := make([]int32, 0)
	for _, id := range g.DistinctIDs() {
		if areas[id] < minArea {
			tiny = append(tiny, id)
		}
	}

	w, h := g.Width, g.Height
	mask := make([]bool, w*h)
	counted := make([]bool, w*h)

	for _, tid := range tiny {
		// The grid mutates as regions merge, so membership is
		// recomputed per tiny region.
		any := false
		for i, id := range g.Cells {
			mask[i] = id == tid
			counted[i] = false
			if mask[i] {
				any = true
			}
		}
		if !any {
			continue // already absorbed by an earlier merge
		}

		counts := make(map[int32]int)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !mask[y*w+x] {
					continue
				}
				tallyNeighbor(g, mask, counted, counts, x-1, y)
				tallyNeighbor(g, mask, counted, counts, x+1, y)
				tallyNeighbor(g, mask, counted, counts, x, y-1)
				tallyNeighbor(g, mask, counted, counts, x, y+1)
			}
		}
		if len(counts) == 0 {
			continue // degenerate: the whole grid is one region
		}

		best := int32(-1)
		bestCount := -1
		for id, c := range counts {
			if c > bestCount || (c == bestCount && id < best) {
				best, bestCount = id, c
			}
		}
		for i := range g.Cells {
			if mask[i] {
				g.Cells[i] = best
			}
		}
	}
}

// tallyNeighbor counts the region ID at (x,y) once if the pixel is in
// bounds, outside the tiny region's mask, and not yet counted.
func tallyNeighbor(g *grid.Grid, mask, counted []bool, counts map[int32]int, x, y int) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	i := y*g.Width + x
	if mask[i] || counted[i] {
		return
	}
	counted[i] = true
	counts[g.Cells[i]]++
}

// SmoothBoundaries applies up to iterations passes of the majority-vote
// mode filter. Each pass reads from a snapshot of the previous pass
// (double-buffered; no read-after-write races within a pass), visits
// only boundary pixels (any orthogonal neighbor differs,
// edge-replicated at borders), and reassigns the center to the most
// frequent value of its 3×3 neighborhood only when that value holds at
// least 5 of the 9 positions. Stops early once no boundary pixels
// remain.
func SmoothBoundaries(g *grid.Grid, iterations int) {
	w, h := g.Width, g.Height
	prev := make([]int32, w*h)

	for iter := 0; iter < iterations; iter++ {
		copy(prev, g.Cells)

		at := func(x, y int) int32 {
			// Edge-replicate out-of-range coordinates.
			if x < 0 {
				x = 0
			} else if x >= w {
				x = w - 1
			}
			if y < 0 {
				y = 0
			} else if y >= h {
				y = h - 1
			}
			return prev[y*w+x]
		}

		anyBoundary := false
		var vals [9]int32
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				center := prev[y*w+x]
				if at(x, y-1) == center && at(x, y+1) == center &&
					at(x-1, y) == center && at(x+1, y) == center {
					continue
				}
				anyBoundary = true

				k := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						vals[k] = at(x+dx, y+dy)
						k++
					}
				}
				// First position holding the maximum vote count wins,
				// keeping the result independent of map iteration.
				bestPos, bestCount := 0, 0
				for j := 0; j < 9; j++ {
					c := 0
					for m := 0; m < 9; m++ {
						if vals[m] == vals[j] {
							c++
						}
					}
					if c > bestCount {
						bestPos, bestCount = j, c
					}
				}
				if bestCount >= smoothMajority {
					g.Cells[y*w+x] = vals[bestPos]
				}
			}
		}
		if !anyBoundary {
			break
		}
	}
}

// RemapContiguous relabels every distinct ID present to 0..N-1 in
// ascending order of original ID value and returns N. The ordering is
// deterministic by construction (value-based, not frequency-based).
func RemapContiguous(g *grid.Grid) int {
	ids := g.DistinctIDs()
	mapping := make(map[int32]int32, len(ids))
	for newID, oldID := range ids {
		mapping[oldID] = int32(newID)
	}
	for i, id := range g.Cells {
		g.Cells[i] = mapping[id]
	}
	return len(ids)
}
