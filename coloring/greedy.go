package coloring

import (
	"math/rand"

	"github.com/katalvlaran/mandala/grid"
)

// Greedy colors regions in ascending ID order. Each region receives
// the lowest palette index not used by an already-colored neighbor.
// When neighbors cover the whole palette the region gets a uniformly
// random color from rng (best effort; see the package doc). A nil rng
// falls back to a fixed deterministic stream.
//
// The result has one entry per region and every value is in
// [0, numColors). If numColors ≥ MaxDegree()+1 the coloring is proper.
//
// Complexity: O(V + E).
func Greedy(adj grid.Adjacency, numColors int, rng *rand.Rand) []int {
	if numColors < 1 {
		numColors = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	colors := make([]int, len(adj))
	for i := range colors {
		colors[i] = -1
	}

	used := make([]bool, numColors)
	for id := range adj {
		for c := range used {
			used[c] = false
		}
		for nb := range adj[id] {
			if c := colors[nb]; c >= 0 {
				used[c] = true
			}
		}

		assigned := -1
		for c := 0; c < numColors; c++ {
			if !used[c] {
				assigned = c
				break
			}
		}
		if assigned < 0 {
			assigned = rng.Intn(numColors)
		}
		colors[id] = assigned
	}
	return colors
}
