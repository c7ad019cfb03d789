package mandala

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mandala/grid"
)

// point is a seed-point position in pixel coordinates.
type point struct {
	x, y float64
}

// symmetricPoints draws perWedge random points inside one symmetry
// wedge and rotate-copies them to every slice, appending the center
// point last. The radial coordinate is drawn uniform, raised to
// exponent (values below 1 bias points toward the rim) and scaled by
// scale·radius to keep points inside the edge.
//
// Complexity: O(slices × perWedge).
func symmetricPoints(rng *rand.Rand, cx, cy, radius float64, slices, perWedge int, exponent, scale float64) []point {
	if slices < 1 {
		slices = 1
	}
	wedge := 2 * math.Pi / float64(slices)

	wedgePoints := make([]point, 0, perWedge)
	for i := 0; i < perWedge; i++ {
		angle := rng.Float64() * wedge
		r := math.Pow(rng.Float64(), exponent) * radius * scale
		wedgePoints = append(wedgePoints, point{
			x: r * math.Cos(angle),
			y: r * math.Sin(angle),
		})
	}

	points := make([]point, 0, slices*perWedge+1)
	for i := 0; i < slices; i++ {
		rot := float64(i) * wedge
		cosA, sinA := math.Cos(rot), math.Sin(rot)
		for _, p := range wedgePoints {
			points = append(points, point{
				x: p.x*cosA - p.y*sinA + cx,
				y: p.x*sinA + p.y*cosA + cy,
			})
		}
	}
	return append(points, point{x: cx, y: cy})
}

// randomPoints draws count points without symmetry, same radial bias
// as symmetricPoints, center point appended last.
func randomPoints(rng *rand.Rand, cx, cy, radius float64, count int, exponent, scale float64) []point {
	points := make([]point, 0, count+1)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		r := math.Pow(rng.Float64(), exponent) * radius * scale
		points = append(points, point{
			x: r*math.Cos(angle) + cx,
			y: r*math.Sin(angle) + cy,
		})
	}
	return append(points, point{x: cx, y: cy})
}

// computeVoronoi assigns every pixel to its nearest seed point by
// squared distance. Ties keep the lower point index (strict-less
// comparison), which makes the scan deterministic.
//
// Complexity: O(W × H × len(points)).
func computeVoronoi(points []point, width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	minDist := make([]float64, width*height)
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}
	for i, p := range points {
		id := int32(i)
		for y := 0; y < height; y++ {
			dy := float64(y) - p.y
			for x := 0; x < width; x++ {
				dx := float64(x) - p.x
				d := dx*dx + dy*dy
				if idx := y*width + x; d < minDist[idx] {
					minDist[idx] = d
					g.Cells[idx] = id
				}
			}
		}
	}
	return g, nil
}

// lloydRelax moves every seed point to the centroid of its Voronoi
// cell, clamped to 95% of the radius. Points with an empty cell stay
// put.
//
// Complexity: O(W × H + len(points)).
func lloydRelax(g *grid.Grid, points []point, cx, cy, radius float64) []point {
	n := len(points)
	area := make([]int, n)
	sumX := make([]float64, n)
	sumY := make([]float64, n)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.At(x, y)
			area[id]++
			sumX[id] += float64(x)
			sumY[id] += float64(y)
		}
	}

	limit := radius * 0.95
	out := make([]point, n)
	for i := 0; i < n; i++ {
		if area[i] == 0 {
			out[i] = points[i]
			continue
		}
		nx := sumX[i] / float64(area[i])
		ny := sumY[i] / float64(area[i])

		dx, dy := nx-cx, ny-cy
		if dist := math.Hypot(dx, dy); dist > limit {
			s := limit / dist
			nx = cx + dx*s
			ny = cy + dy*s
		}
		out[i] = point{x: nx, y: ny}
	}
	return out
}
