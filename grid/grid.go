package grid

import "sort"

// New constructs a zero-filled Grid of the given dimensions.
// Returns ErrBadDimensions when either dimension is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int32, width*height),
	}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure the Grid owns its storage.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromRows(rows [][]int32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, Cells: make([]int32, w*h)}
	for y := 0; y < h; y++ {
		copy(g.Cells[y*w:(y+1)*w], rows[y])
	}
	return g, nil
}

// Index maps (x,y) to the row-major cell index y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// At returns the region ID at (x,y). No bounds checking.
// Complexity: O(1).
func (g *Grid) At(x, y int) int32 { return g.Cells[y*g.Width+x] }

// Set assigns the region ID at (x,y). No bounds checking.
// Complexity: O(1).
func (g *Grid) Set(x, y int, id int32) { g.Cells[y*g.Width+x] = id }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]int32, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// MaxID returns the largest region ID present in the grid.
// Complexity: O(W×H).
func (g *Grid) MaxID() int32 {
	maxID := g.Cells[0]
	for _, id := range g.Cells {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// DistinctIDs returns every region ID present, in ascending order.
// Complexity: O(W×H + K log K) for K distinct IDs.
func (g *Grid) DistinctIDs() []int32 {
	seen := make(map[int32]struct{})
	for _, id := range g.Cells {
		seen[id] = struct{}{}
	}
	ids := make([]int32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Areas tallies the pixel count of every region ID present.
// Complexity: O(W×H).
func (g *Grid) Areas() map[int32]int {
	areas := make(map[int32]int)
	for _, id := range g.Cells {
		areas[id]++
	}
	return areas
}

// ClipToCircle force-assigns every pixel outside the inscribed mandala
// disc (radius min(W,H)/2 - 1 around the grid center) to a border
// region. A non-negative borderID is used verbatim; a negative one
// allocates MaxID()+1. The border ID actually used is returned.
// Complexity: O(W×H).
func (g *Grid) ClipToCircle(borderID int32) int32 {
	cx := float64(g.Width) / 2
	cy := float64(g.Height) / 2
	radius := float64(min(g.Width, g.Height))/2 - 1
	r2 := radius * radius

	id := borderID
	if id < 0 {
		id = g.MaxID() + 1
	}
	for y := 0; y < g.Height; y++ {
		dy := float64(y) - cy
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := 0; x < g.Width; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy > r2 {
				row[x] = id
			}
		}
	}
	return id
}
