package mandala

import (
	"github.com/katalvlaran/mandala/cleanup"
	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/puzzle"
)

// glassMinArea is the cleanup threshold for this preset; small enough
// to keep narrow panes between thick lead lines.
const glassMinArea = 15

// GlassParams configures the Stained Glass preset.
type GlassParams struct {
	Params `yaml:",inline"`
	// PointCount is the total number of glass cells.
	PointCount int `yaml:"point_count"`
	// OutlineThickness is the lead line width in pixels.
	OutlineThickness int `yaml:"outline_thickness"`
	// EdgeDetailBoost biases cells toward the rim (0-1).
	EdgeDetailBoost float64 `yaml:"edge_detail_boost"`
	// UseSymmetry rotates the cells around the center; false scatters
	// them freely.
	UseSymmetry bool `yaml:"use_symmetry"`
}

// DefaultGlassParams returns the preset defaults.
func DefaultGlassParams() GlassParams {
	return GlassParams{
		Params:           DefaultParams(),
		PointCount:       25,
		OutlineThickness: 4,
		EdgeDetailBoost:  0.5,
		UseSymmetry:      true,
	}
}

// StainedGlass generates bold stained-glass patterns: Voronoi panes
// separated by a thick lead outline relabeled as one dedicated region.
type StainedGlass struct {
	p GlassParams
}

// NewStainedGlass returns a generator for p.
func NewStainedGlass(p GlassParams) *StainedGlass {
	return &StainedGlass{p: p}
}

// Name implements Generator.
func (s *StainedGlass) Name() string { return "stained_glass" }

// Generate implements Generator.
func (s *StainedGlass) Generate() (*puzzle.Puzzle, error) {
	width, height := s.p.Width, s.p.Height
	cx, cy := float64(width)/2, float64(height)/2
	radius := float64(min(width, height))/2 - 2

	rng := rngFromSeed(s.p.Seed)
	exponent := 1 - s.p.EdgeDetailBoost*0.7

	var points []point
	if s.p.UseSymmetry {
		perWedge := s.p.PointCount / max(1, s.p.SymmetrySlices)
		if perWedge < 1 {
			perWedge = 1
		}
		points = symmetricPoints(rng, cx, cy, radius, s.p.SymmetrySlices, perWedge, exponent, 0.9)
	} else {
		points = randomPoints(rng, cx, cy, radius, s.p.PointCount, exponent, 0.9)
	}

	g, err := computeVoronoi(points, width, height)
	if err != nil {
		return nil, err
	}
	addLeadOutlines(g, s.p.OutlineThickness)

	g.ClipToCircle(-1)
	n := cleanup.Cleanup(g, cleanup.Options{
		MinArea:          glassMinArea,
		SmoothIterations: cleanup.DefaultSmoothIterations,
	})

	return &puzzle.Puzzle{
		Grid:       g,
		NumRegions: n,
		Generator:  s.Name(),
		Params: map[string]any{
			"seed":              s.p.Seed,
			"symmetry_slices":   s.p.SymmetrySlices,
			"point_count":       s.p.PointCount,
			"outline_thickness": s.p.OutlineThickness,
			"edge_detail_boost": s.p.EdgeDetailBoost,
			"use_symmetry":      s.p.UseSymmetry,
		},
	}, nil
}

// addLeadOutlines marks every pixel 4-adjacent to a differently
// labeled pixel as boundary, dilates the boundary thickness-1 times
// (a pixel joins if any 4-neighbor already is boundary), and relabels
// all boundary pixels to one new lead region at maxID+1.
func addLeadOutlines(g *grid.Grid, thickness int) {
	w, h := g.Width, g.Height
	boundary := make([]bool, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			if g.At(x, y) != g.At(x+1, y) {
				boundary[y*w+x] = true
				boundary[y*w+x+1] = true
			}
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if g.At(x, y) != g.At(x, y+1) {
				boundary[y*w+x] = true
				boundary[(y+1)*w+x] = true
			}
		}
	}

	dilated := make([]bool, w*h)
	for i := 1; i < thickness; i++ {
		copy(dilated, boundary)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if boundary[y*w+x] {
					continue
				}
				if (x > 0 && boundary[y*w+x-1]) || (x < w-1 && boundary[y*w+x+1]) ||
					(y > 0 && boundary[(y-1)*w+x]) || (y < h-1 && boundary[(y+1)*w+x]) {
					dilated[y*w+x] = true
				}
			}
		}
		boundary, dilated = dilated, boundary
	}

	leadID := g.MaxID() + 1
	for i, b := range boundary {
		if b {
			g.Cells[i] = leadID
		}
	}
}
