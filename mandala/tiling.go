package mandala

import (
	"math"
	"sort"

	"github.com/katalvlaran/mandala/cleanup"
	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/puzzle"
)

// tilingMinArea is the cleanup threshold for this preset.
const tilingMinArea = 20

// TilingType selects the base tiling pattern.
type TilingType string

// Supported tilings.
const (
	TilingSquare   TilingType = "square"
	TilingHexagon  TilingType = "hexagon"
	TilingTriangle TilingType = "triangle"
)

// ParseTilingType resolves a tiling name, rejecting unknown values
// with ErrUnknownTiling.
func ParseTilingType(s string) (TilingType, error) {
	switch TilingType(s) {
	case TilingSquare, TilingHexagon, TilingTriangle:
		return TilingType(s), nil
	default:
		return "", ErrUnknownTiling
	}
}

// TilingParams configures the Geometric Tiling preset.
type TilingParams struct {
	Params `yaml:",inline"`
	// Tiling is the base pattern.
	Tiling TilingType `yaml:"tiling_type"`
	// CellSize is the tile size in pixels.
	CellSize int `yaml:"cell_size"`
	// WarpStrength bends the tiling radially (0-0.5); 0 disables.
	WarpStrength float64 `yaml:"warp_strength"`
	// LayerCount overlays this many offset tiling layers; regions form
	// wherever layers intersect.
	LayerCount int `yaml:"layer_count"`
}

// DefaultTilingParams returns the preset defaults.
func DefaultTilingParams() TilingParams {
	return TilingParams{
		Params:     DefaultParams(),
		Tiling:     TilingHexagon,
		CellSize:   32,
		LayerCount: 1,
	}
}

// GeometricTiling generates crisp mosaic mandalas from regular
// tilings clipped to a circle, optionally polar-warped and overlaid.
type GeometricTiling struct {
	p TilingParams
}

// NewGeometricTiling returns a generator for p.
func NewGeometricTiling(p TilingParams) *GeometricTiling {
	return &GeometricTiling{p: p}
}

// Name implements Generator.
func (t *GeometricTiling) Name() string { return "geometric_tiling" }

// Generate implements Generator.
func (t *GeometricTiling) Generate() (*puzzle.Puzzle, error) {
	width, height := t.p.Width, t.p.Height

	g, err := t.baseTiling(width, height)
	if err != nil {
		return nil, err
	}
	if t.p.WarpStrength > 0 {
		t.polarWarp(g)
	}
	if t.p.LayerCount > 1 {
		if err := t.overlayLayers(g); err != nil {
			return nil, err
		}
	}

	g.ClipToCircle(-1)
	n := cleanup.Cleanup(g, cleanup.Options{
		MinArea:          tilingMinArea,
		SmoothIterations: cleanup.DefaultSmoothIterations,
	})

	return &puzzle.Puzzle{
		Grid:       g,
		NumRegions: n,
		Generator:  t.Name(),
		Params: map[string]any{
			"seed":            t.p.Seed,
			"symmetry_slices": t.p.SymmetrySlices,
			"tiling_type":     string(t.p.Tiling),
			"cell_size":       t.p.CellSize,
			"warp_strength":   t.p.WarpStrength,
			"layer_count":     t.p.LayerCount,
		},
	}, nil
}

// baseTiling builds the selected tiling at the given size. Unknown
// types fall back to the square tiling, mirroring the lenient enum
// handling of the presets.
func (t *GeometricTiling) baseTiling(width, height int) (*grid.Grid, error) {
	switch t.p.Tiling {
	case TilingHexagon:
		return t.hexagonTiling(width, height)
	case TilingTriangle:
		return t.triangleTiling(width, height)
	default:
		return t.squareTiling(width, height)
	}
}

// squareTiling: plain CellSize × CellSize checks.
func (t *GeometricTiling) squareTiling(width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	cell := t.p.CellSize
	cols := (width + cell - 1) / cell
	for y := 0; y < height; y++ {
		rowBase := int32(y / cell * cols)
		for x := 0; x < width; x++ {
			g.Set(x, y, rowBase+int32(x/cell))
		}
	}
	return g, nil
}

// hexagonTiling: brick-layout hexagon approximation with every odd row
// shifted half a cell.
func (t *GeometricTiling) hexagonTiling(width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	cell := t.p.CellSize
	hexHeight := int(float64(cell) * math.Sqrt(3) / 2)
	rowOffset := float64(cell) * 0.5
	cols := (width+cell)/cell + 1

	for y := 0; y < height; y++ {
		row := y / hexHeight
		offset := 0.0
		if row%2 == 1 {
			offset = rowOffset
		}
		base := int32(row * cols)
		for x := 0; x < width; x++ {
			col := int32((float64(x) - offset) / float64(cell))
			g.Set(x, y, base+col)
		}
	}
	return g, nil
}

// triangleTiling: alternating up/down triangles on a half-cell
// parallelogram lattice.
func (t *GeometricTiling) triangleTiling(width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	cell := t.p.CellSize
	halfWidth := float64(cell) / 2
	triHeight := int(float64(cell) * math.Sqrt(3) / 2)
	cols := (width*2)/cell + 2

	for y := 0; y < height; y++ {
		row := y / triHeight
		localY := float64(y - row*triHeight)
		for x := 0; x < width; x++ {
			col := int(float64(x) / halfWidth)
			localX := float64(x) - float64(col)*halfWidth

			id := int32(row*cols*2 + col*2)
			if localX/halfWidth+localY/float64(triHeight) >= 1 {
				id++
			}
			g.Set(x, y, id)
		}
	}
	return g, nil
}

// polarWarp resamples the grid through a radially modulated gather:
// each output pixel reads the source pixel at radius
// r·(1 + strength·sin(θ·slices)), clamped to bounds.
func (t *GeometricTiling) polarWarp(g *grid.Grid) {
	src := g.Clone()
	cx, cy := float64(g.Width)/2, float64(g.Height)/2
	strength := t.p.WarpStrength
	slices := float64(t.p.SymmetrySlices)

	for y := 0; y < g.Height; y++ {
		dy := float64(y) - cy
		for x := 0; x < g.Width; x++ {
			dx := float64(x) - cx
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dy, dx)
			warped := r * (1 + strength*math.Sin(theta*slices))

			sx := int(warped*math.Cos(theta) + cx)
			sy := int(warped*math.Sin(theta) + cy)
			if sx < 0 {
				sx = 0
			} else if sx >= g.Width {
				sx = g.Width - 1
			}
			if sy < 0 {
				sy = 0
			} else if sy >= g.Height {
				sy = g.Height - 1
			}
			g.Set(x, y, src.At(sx, sy))
		}
	}
}

// overlayLayers intersects the base tiling with LayerCount-1 offset
// copies; every distinct combination of per-layer cells becomes its
// own region. The combination runs in int64 to survive the ID
// products, then remaps to compact int32 IDs.
func (t *GeometricTiling) overlayLayers(g *grid.Grid) error {
	width, height := g.Width, g.Height
	cell := t.p.CellSize

	combined := make([]int64, len(g.Cells))
	for i, id := range g.Cells {
		combined[i] = int64(id)
	}
	maxID := int64(g.MaxID()) + 1

	for layer := 1; layer < t.p.LayerCount; layer++ {
		offsetX := cell / 2 * layer
		offsetY := cell / 3 * layer

		big, err := t.baseTiling(width+offsetX, height+offsetY)
		if err != nil {
			return err
		}

		// Crop to the original size and lift past the current ID range.
		var layerMax int64
		layerIDs := make([]int64, len(combined))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := int64(big.At(x+offsetX, y+offsetY)) + maxID
				layerIDs[y*width+x] = v
				if v > layerMax {
					layerMax = v
				}
			}
		}
		maxID = layerMax + 1

		for i := range combined {
			combined[i] = combined[i]*maxID + layerIDs[i]
		}
	}

	// Remap the sparse combined IDs back into the int32 grid.
	seen := make(map[int64]struct{})
	for _, v := range combined {
		seen[v] = struct{}{}
	}
	distinct := make([]int64, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	mapping := make(map[int64]int32, len(distinct))
	for i, v := range distinct {
		mapping[v] = int32(i)
	}
	for i, v := range combined {
		g.Cells[i] = mapping[v]
	}
	return nil
}
