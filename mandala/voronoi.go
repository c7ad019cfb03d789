package mandala

import (
	"github.com/katalvlaran/mandala/cleanup"
	"github.com/katalvlaran/mandala/puzzle"
)

// voronoiMinArea is the cleanup threshold for this preset; organic
// cells merge a little more aggressively than the other patterns.
const voronoiMinArea = 30

// VoronoiParams configures the Voronoi Mandala preset.
type VoronoiParams struct {
	Params `yaml:",inline"`
	// PointCount is the number of seed points per symmetry wedge.
	PointCount int `yaml:"point_count"`
	// RadialBias pushes points toward the rim: 0 uniform, 1 strongly
	// edge-biased.
	RadialBias float64 `yaml:"radial_bias"`
	// RelaxIters is the number of Lloyd relaxation passes (0-3 are
	// sensible; more only rounds cells further).
	RelaxIters int `yaml:"relax_iters"`
}

// DefaultVoronoiParams returns the preset defaults.
func DefaultVoronoiParams() VoronoiParams {
	return VoronoiParams{
		Params:     DefaultParams(),
		PointCount: 30,
		RadialBias: 0.5,
		RelaxIters: 1,
	}
}

// VoronoiMandala generates organic cell mandalas: seed points are
// drawn in one wedge, rotate-copied around the center, every pixel is
// assigned to its nearest point, and Lloyd relaxation optionally
// rounds the cells.
type VoronoiMandala struct {
	p VoronoiParams
}

// NewVoronoiMandala returns a generator for p.
func NewVoronoiMandala(p VoronoiParams) *VoronoiMandala {
	return &VoronoiMandala{p: p}
}

// Name implements Generator.
func (v *VoronoiMandala) Name() string { return "voronoi_mandala" }

// Generate implements Generator.
func (v *VoronoiMandala) Generate() (*puzzle.Puzzle, error) {
	width, height := v.p.Width, v.p.Height
	cx, cy := float64(width)/2, float64(height)/2
	radius := float64(min(width, height))/2 - 2

	rng := rngFromSeed(v.p.Seed)
	exponent := 1 - v.p.RadialBias*0.8
	points := symmetricPoints(rng, cx, cy, radius, v.p.SymmetrySlices, v.p.PointCount, exponent, 0.95)

	for i := 0; i < v.p.RelaxIters; i++ {
		g, err := computeVoronoi(points, width, height)
		if err != nil {
			return nil, err
		}
		points = lloydRelax(g, points, cx, cy, radius)
	}

	g, err := computeVoronoi(points, width, height)
	if err != nil {
		return nil, err
	}
	g.ClipToCircle(-1)
	n := cleanup.Cleanup(g, cleanup.Options{
		MinArea:          voronoiMinArea,
		SmoothIterations: cleanup.DefaultSmoothIterations,
	})

	return &puzzle.Puzzle{
		Grid:       g,
		NumRegions: n,
		Generator:  v.Name(),
		Params: map[string]any{
			"seed":            v.p.Seed,
			"symmetry_slices": v.p.SymmetrySlices,
			"point_count":     v.p.PointCount,
			"radial_bias":     v.p.RadialBias,
			"relax_iters":     v.p.RelaxIters,
		},
	}, nil
}
