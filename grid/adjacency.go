package grid

import "sort"

// BuildAdjacency scans all horizontal and all vertical 4-adjacent pixel
// pairs; every pair carrying different region IDs adds both directions
// to the neighbor sets. Loops are sized to avoid out-of-range access
// rather than clamping. The grid must be canonical with
// numRegions = N; a cell outside [0, numRegions) yields ErrIDOutOfRange.
// Complexity: O(W×H) time, O(total adjacent pairs) memory.
func BuildAdjacency(g *Grid, numRegions int) (Adjacency, error) {
	adj := make(Adjacency, numRegions)
	for i := range adj {
		adj[i] = make(map[int32]struct{})
	}
	link := func(a, b int32) error {
		if a < 0 || int(a) >= numRegions || b < 0 || int(b) >= numRegions {
			return ErrIDOutOfRange
		}
		adj[a][b] = struct{}{}
		adj[b][a] = struct{}{}
		return nil
	}
	// Horizontal pairs.
	for y := 0; y < g.Height; y++ {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := 0; x < g.Width-1; x++ {
			if row[x] != row[x+1] {
				if err := link(row[x], row[x+1]); err != nil {
					return nil, err
				}
			}
		}
	}
	// Vertical pairs.
	for y := 0; y < g.Height-1; y++ {
		upper := g.Cells[y*g.Width : (y+1)*g.Width]
		lower := g.Cells[(y+1)*g.Width : (y+2)*g.Width]
		for x := 0; x < g.Width; x++ {
			if upper[x] != lower[x] {
				if err := link(upper[x], lower[x]); err != nil {
					return nil, err
				}
			}
		}
	}
	return adj, nil
}

// Degree returns the number of distinct neighbors of region id.
// Complexity: O(1).
func (a Adjacency) Degree(id int32) int { return len(a[id]) }

// Adjacent reports whether regions u and v share a 4-connected border.
// Complexity: O(1).
func (a Adjacency) Adjacent(u, v int32) bool {
	_, ok := a[u][v]
	return ok
}

// Neighbors returns the neighbor IDs of region id in ascending order.
// The slice is freshly allocated on every call.
// Complexity: O(d log d) for degree d.
func (a Adjacency) Neighbors(id int32) []int32 {
	out := make([]int32, 0, len(a[id]))
	for n := range a[id] {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MaxDegree returns the largest neighbor-set size across all regions.
// Complexity: O(N).
func (a Adjacency) MaxDegree() int {
	maxDeg := 0
	for _, set := range a {
		if len(set) > maxDeg {
			maxDeg = len(set)
		}
	}
	return maxDeg
}
