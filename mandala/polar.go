package mandala

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mandala/cleanup"
	"github.com/katalvlaran/mandala/grid"
	"github.com/katalvlaran/mandala/puzzle"
)

// polarMinArea is the cleanup threshold for this preset.
const polarMinArea = 25

// PolarParams configures the Polar Harmonics preset.
type PolarParams struct {
	Params `yaml:",inline"`
	// RingCount is the number of concentric ring boundaries.
	RingCount int `yaml:"ring_count"`
	// PetalFreq is the petal frequency; 0 falls back to SymmetrySlices.
	PetalFreq int `yaml:"petal_freq"`
	// PetalDepth is how deep petals cut into rings (0-1).
	PetalDepth float64 `yaml:"petal_depth"`
	// SpokeCount is the number of radial spokes; 0 falls back to
	// SymmetrySlices.
	SpokeCount int `yaml:"spoke_count"`
	// SpokeWidth is the spoke half-profile as a fraction of π radians.
	SpokeWidth float64 `yaml:"spoke_width"`
	// Jitter adds a small per-pixel random wobble to ring boundaries
	// (0-0.1).
	Jitter float64 `yaml:"jitter"`
}

// DefaultPolarParams returns the preset defaults.
func DefaultPolarParams() PolarParams {
	return PolarParams{
		Params:     DefaultParams(),
		RingCount:  5,
		PetalDepth: 0.3,
		SpokeWidth: 0.02,
	}
}

// PolarHarmonics generates classic mandala patterns: ring boundaries
// modulated by petal sinusoids, radial spokes, and angular slice
// subdivision, all expressed in polar coordinates around the center.
type PolarHarmonics struct {
	p PolarParams
}

// NewPolarHarmonics returns a generator for p.
func NewPolarHarmonics(p PolarParams) *PolarHarmonics {
	return &PolarHarmonics{p: p}
}

// Name implements Generator.
func (g *PolarHarmonics) Name() string { return "polar_harmonics" }

// Generate implements Generator.
func (g *PolarHarmonics) Generate() (*puzzle.Puzzle, error) {
	width, height := g.p.Width, g.p.Height
	out, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	radius := float64(min(width, height))/2 - 2
	rng := rngFromSeed(g.p.Seed)

	maxRing := g.computeRings(out, radius, rng)
	g.applySpokes(out, radius, maxRing)
	g.subdivideBySlices(out)

	out.ClipToCircle(-1)
	n := cleanup.Cleanup(out, cleanup.Options{
		MinArea:          polarMinArea,
		SmoothIterations: cleanup.DefaultSmoothIterations,
	})

	return &puzzle.Puzzle{
		Grid:       out,
		NumRegions: n,
		Generator:  g.Name(),
		Params: map[string]any{
			"seed":            g.p.Seed,
			"symmetry_slices": g.p.SymmetrySlices,
			"ring_count":      g.p.RingCount,
			"petal_freq":      g.p.PetalFreq,
			"petal_depth":     g.p.PetalDepth,
			"spoke_count":     g.p.SpokeCount,
			"spoke_width":     g.p.SpokeWidth,
		},
	}, nil
}

// computeRings assigns each pixel the highest ring index whose
// (petal-modulated, optionally jittered) boundary still contains it;
// pixels outside every boundary stay 0. Returns the maximum ring index
// present.
func (g *PolarHarmonics) computeRings(out *grid.Grid, radius float64, rng *rand.Rand) int32 {
	ringCount := g.p.RingCount
	petalFreq := g.p.PetalFreq
	if petalFreq == 0 {
		petalFreq = g.p.SymmetrySlices
	}
	depth := g.p.PetalDepth
	jitter := g.p.Jitter
	cx, cy := float64(out.Width)/2, float64(out.Height)/2

	var maxRing int32
	for y := 0; y < out.Height; y++ {
		dy := float64(y) - cy
		for x := 0; x < out.Width; x++ {
			dx := float64(x) - cx
			rNorm := math.Hypot(dx, dy) / radius
			theta := math.Atan2(dy, dx)

			id := int32(0)
			for ring := 0; ring < ringCount; ring++ {
				boundary := float64(ring+1) / float64(ringCount)
				if petalFreq > 0 && depth > 0 {
					phase := 0.0
					if ring%2 == 1 {
						phase = math.Pi
					}
					boundary += depth / float64(ringCount) * math.Sin(float64(petalFreq)*theta+phase)
				}
				if jitter > 0 {
					boundary += (rng.Float64()*2*jitter - jitter) / float64(ringCount)
				}
				if rNorm <= boundary {
					id = int32(ring)
				}
			}
			out.Set(x, y, id)
			if id > maxRing {
				maxRing = id
			}
		}
	}
	return maxRing
}

// applySpokes offsets every pixel inside a spoke by maxRing+1 so the
// spokes split the rings into separate regions. The center disc
// (rNorm ≤ 0.1) is left intact.
func (g *PolarHarmonics) applySpokes(out *grid.Grid, radius float64, maxRing int32) {
	count := g.p.SpokeCount
	if count == 0 {
		count = g.p.SymmetrySlices
	}
	if count <= 0 {
		return
	}

	spokeAngle := 2 * math.Pi / float64(count)
	halfWidth := g.p.SpokeWidth * math.Pi
	cx, cy := float64(out.Width)/2, float64(out.Height)/2
	offset := maxRing + 1

	for y := 0; y < out.Height; y++ {
		dy := float64(y) - cy
		for x := 0; x < out.Width; x++ {
			dx := float64(x) - cx
			if math.Hypot(dx, dy)/radius <= 0.1 {
				continue
			}
			theta := math.Atan2(dy, dx)
			m := math.Mod(theta+math.Pi, spokeAngle)
			if m < halfWidth || m > spokeAngle-halfWidth {
				out.Set(x, y, out.At(x, y)+offset)
			}
		}
	}
}

// subdivideBySlices combines each pixel's base ID with its angular
// slice index, giving every slice its own copy of the ring/spoke
// regions. A single slice leaves the grid untouched.
func (g *PolarHarmonics) subdivideBySlices(out *grid.Grid) {
	slices := g.p.SymmetrySlices
	if slices <= 1 {
		return
	}

	maxBase := out.MaxID() + 1
	sliceAngle := 2 * math.Pi / float64(slices)
	cx, cy := float64(out.Width)/2, float64(out.Height)/2

	for y := 0; y < out.Height; y++ {
		dy := float64(y) - cy
		for x := 0; x < out.Width; x++ {
			dx := float64(x) - cx
			theta := math.Atan2(dy, dx)
			sliceID := int32(math.Floor((theta + math.Pi) / sliceAngle))
			if sliceID < 0 {
				sliceID = 0
			} else if sliceID >= int32(slices) {
				sliceID = int32(slices) - 1
			}
			out.Set(x, y, out.At(x, y)+sliceID*maxBase)
		}
	}
}
