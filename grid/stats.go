package grid

// Runs builds run-length spans per region: runs[id] lists every
// maximal horizontal run of pixels carrying that ID, top-to-bottom,
// left-to-right. The grid must be canonical with numRegions = N;
// a cell outside [0, numRegions) yields ErrIDOutOfRange.
// Complexity: O(W×H) time, O(total runs) memory.
func Runs(g *Grid, numRegions int) ([][]Span, error) {
	runs := make([][]Span, numRegions)
	for y := 0; y < g.Height; y++ {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		x := 0
		for x < g.Width {
			id := row[x]
			if id < 0 || int(id) >= numRegions {
				return nil, ErrIDOutOfRange
			}
			x0 := x
			for x < g.Width && row[x] == id {
				x++
			}
			runs[id] = append(runs[id], Span{Y: y, X0: x0, X1: x})
		}
	}
	return runs, nil
}

// ComputeStats derives area, bounding box, and centroid per region from
// run-length spans. Regions with no runs get zero stats (transient
// state only; no area-zero region survives cleanup).
// Complexity: O(total runs).
func ComputeStats(runs [][]Span) *Stats {
	n := len(runs)
	st := &Stats{
		Area:     make([]int, n),
		BBox:     make([]Rect, n),
		Centroid: make([]Point, n),
	}
	for id := 0; id < n; id++ {
		spans := runs[id]
		if len(spans) == 0 {
			continue
		}
		area := 0
		sumX, sumY := 0.0, 0.0
		box := Rect{MinX: spans[0].X0, MinY: spans[0].Y, MaxX: spans[0].X1 - 1, MaxY: spans[0].Y}
		for _, s := range spans {
			length := s.X1 - s.X0
			area += length
			// Sum of x over the run collapses to midpoint × length.
			sumX += float64(s.X0+s.X1-1) / 2 * float64(length)
			sumY += float64(s.Y) * float64(length)
			if s.X0 < box.MinX {
				box.MinX = s.X0
			}
			if s.X1-1 > box.MaxX {
				box.MaxX = s.X1 - 1
			}
			if s.Y < box.MinY {
				box.MinY = s.Y
			}
			if s.Y > box.MaxY {
				box.MaxY = s.Y
			}
		}
		st.Area[id] = area
		st.BBox[id] = box
		st.Centroid[id] = Point{X: sumX / float64(area), Y: sumY / float64(area)}
	}
	return st
}
