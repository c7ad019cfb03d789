package imgconv

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/palette"
)

// labelComponents turns the per-pixel palette indices into region IDs:
// every 4-connected run of same-color pixels becomes one region.
// Colors are processed in palette order and components in row-major
// scan order, so IDs are sequential and deterministic.
func labelComponents(indexed []int, w, h, numColors int) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.Cells {
		g.Cells[i] = -1
	}

	var next int32
	queue := make([]int, 0, w*h/4)
	for color := 0; color < numColors; color++ {
		for start := 0; start < w*h; start++ {
			if indexed[start] != color || g.Cells[start] != -1 {
				continue
			}
			id := next
			next++

			queue = append(queue[:0], start)
			g.Cells[start] = id
			for len(queue) > 0 {
				i := queue[0]
				queue = queue[1:]
				x, y := i%w, i/w

				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					j := ny*w + nx
					if g.Cells[j] == -1 && indexed[j] == color {
						g.Cells[j] = id
						queue = append(queue, j)
					}
				}
			}
		}
	}
	return g, nil
}

// subdivide splits every region whose area exceeds 1.5× the target
// average into roughly area/target pieces: that many seed pixels are
// drawn from the region without replacement and every region pixel
// joins its nearest seed. The first piece keeps the original ID, the
// rest get fresh IDs past the current maximum. Region shapes outside
// the split region never change.
func subdivide(g *grid.Grid, numRegions, targetRegions int, rng *rand.Rand) {
	total := g.Width * g.Height
	targetArea := float64(total) / float64(targetRegions)
	areas := g.Areas()
	nextID := int32(numRegions)

	for rid := int32(0); rid < int32(numRegions); rid++ {
		area := areas[rid]
		if float64(area) <= targetArea*1.5 {
			continue
		}

		coords := make([]int, 0, area)
		for i, id := range g.Cells {
			if id == rid {
				coords = append(coords, i)
			}
		}

		splits := max(2, int(math.Round(float64(area)/targetArea)))
		if splits > len(coords) {
			splits = len(coords)
		}

		perm := rng.Perm(len(coords))
		seeds := make([][2]float64, splits)
		ids := make([]int32, splits)
		ids[0] = rid
		for k := 0; k < splits; k++ {
			i := coords[perm[k]]
			seeds[k] = [2]float64{float64(i % g.Width), float64(i / g.Width)}
			if k > 0 {
				ids[k] = nextID
				nextID++
			}
		}

		for _, i := range coords {
			x, y := float64(i%g.Width), float64(i/g.Width)
			best, bestDist := 0, math.Inf(1)
			for k, s := range seeds {
				dx, dy := x-s[0], y-s[1]
				if d := dx*dx + dy*dy; d < bestDist {
					best, bestDist = k, d
				}
			}
			g.Cells[i] = ids[best]
		}
	}
}

// regionColors assigns each final region the palette index nearest its
// mean quantized color (squared RGB distance, lowest index on ties).
func regionColors(g *grid.Grid, numRegions int, indexed []int, pal []palette.Color) []int {
	sums := make([][3]float64, numRegions)
	counts := make([]float64, numRegions)
	for i, id := range g.Cells {
		c := pal[indexed[i]]
		sums[id][0] += float64(c[0])
		sums[id][1] += float64(c[1])
		sums[id][2] += float64(c[2])
		counts[id]++
	}

	out := make([]int, numRegions)
	for rid := 0; rid < numRegions; rid++ {
		mr := sums[rid][0] / counts[rid]
		mg := sums[rid][1] / counts[rid]
		mb := sums[rid][2] / counts[rid]

		best, bestDist := 0, math.Inf(1)
		for pi, c := range pal {
			dr := mr - float64(c[0])
			dg := mg - float64(c[1])
			db := mb - float64(c[2])
			if d := dr*dr + dg*dg + db*db; d < bestDist {
				best, bestDist = pi, d
			}
		}
		out[rid] = best
	}
	return out
}
