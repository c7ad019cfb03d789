package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mandala/mandala"
	"github.com/katalvlaran/mandala/palette"
	"github.com/katalvlaran/mandala/puzzle"
)

var (
	genOut        string
	genPreset     string
	genPresetFile string
	genPalette    string
	genWidth      int
	genHeight     int
	genColors     int
	genSeed       int64
	genSymmetry   int
	genGreedy     bool

	// Preset-specific knobs; only flags the user actually set override
	// the preset (or preset-file) values.
	genPoints     int
	genRadialBias float64
	genRelax      int
	genRings      int
	genPetalFreq  int
	genPetalDepth float64
	genSpokes     int
	genSpokeWidth float64
	genJitter     float64
	genTiling     string
	genCellSize   int
	genWarp       float64
	genLayers     int
	genOutline    int
	genEdgeBoost  float64
	genScatter    bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen <preset>",
		Short: "Generate a mandala puzzle",
		Long: `Generate a paint-by-numbers mandala puzzle and export it as
puzzle.json + region_ids.png.

Presets:
  voronoi_mandala   organic cells from symmetric Voronoi seeds
  polar_harmonics   rings, petals and spokes in polar coordinates
  geometric_tiling  square/hexagon/triangle mosaics, warp and layers
  stained_glass     Voronoi panes behind a thick lead outline

Examples:
  mandala gen voronoi_mandala --seed 7 -o out/voronoi
  mandala gen polar_harmonics --rings 7 --petal-depth 0.4
  mandala gen geometric_tiling --tiling triangle --cell-size 24
  mandala gen stained_glass --config glass.yaml --palette Jewel`,
		Args: cobra.ExactArgs(1),
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&genOut, "out", "o", "puzzle", "Output directory")
	genCmd.Flags().StringVar(&genPresetFile, "config", "", "YAML file with preset parameters")
	genCmd.Flags().StringVar(&genPalette, "palette", "", "Curated palette name (see 'mandala presets')")
	genCmd.Flags().IntVar(&genWidth, "width", 512, "Puzzle width in pixels")
	genCmd.Flags().IntVar(&genHeight, "height", 512, "Puzzle height in pixels")
	genCmd.Flags().IntVarP(&genColors, "colors", "c", 6, "Palette size")
	genCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "RNG seed; 0 selects the fixed default stream")
	genCmd.Flags().IntVar(&genSymmetry, "symmetry", 8, "Rotational symmetry slices")
	genCmd.Flags().BoolVar(&genGreedy, "greedy-coloring", false, "Plain greedy coloring instead of the symmetry-aware one")

	genCmd.Flags().IntVar(&genPoints, "points", 0, "Seed point count (voronoi_mandala, stained_glass)")
	genCmd.Flags().Float64Var(&genRadialBias, "radial-bias", 0, "Edge bias for seed points, 0-1 (voronoi_mandala)")
	genCmd.Flags().IntVar(&genRelax, "relax", 0, "Lloyd relaxation passes (voronoi_mandala)")
	genCmd.Flags().IntVar(&genRings, "rings", 0, "Concentric ring count (polar_harmonics)")
	genCmd.Flags().IntVar(&genPetalFreq, "petal-freq", 0, "Petal frequency, 0 follows symmetry (polar_harmonics)")
	genCmd.Flags().Float64Var(&genPetalDepth, "petal-depth", 0, "Petal modulation depth, 0-1 (polar_harmonics)")
	genCmd.Flags().IntVar(&genSpokes, "spokes", 0, "Radial spoke count, 0 follows symmetry (polar_harmonics)")
	genCmd.Flags().Float64Var(&genSpokeWidth, "spoke-width", 0, "Spoke width fraction (polar_harmonics)")
	genCmd.Flags().Float64Var(&genJitter, "jitter", 0, "Ring boundary jitter, 0-0.1 (polar_harmonics)")
	genCmd.Flags().StringVar(&genTiling, "tiling", "", "Base tiling: square, hexagon or triangle (geometric_tiling)")
	genCmd.Flags().IntVar(&genCellSize, "cell-size", 0, "Tile size in pixels (geometric_tiling)")
	genCmd.Flags().Float64Var(&genWarp, "warp", 0, "Radial warp strength, 0-0.5 (geometric_tiling)")
	genCmd.Flags().IntVar(&genLayers, "layers", 0, "Overlaid tiling layers (geometric_tiling)")
	genCmd.Flags().IntVar(&genOutline, "outline", 0, "Lead outline thickness in pixels (stained_glass)")
	genCmd.Flags().Float64Var(&genEdgeBoost, "edge-boost", 0, "Edge detail boost, 0-1 (stained_glass)")
	genCmd.Flags().BoolVar(&genScatter, "scatter", false, "Scatter glass cells instead of rotating them (stained_glass)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	genPreset = args[0]

	gen, base, err := buildGenerator(cmd, genPreset)
	if err != nil {
		return err
	}

	var pal []palette.Color
	if genPalette != "" {
		if pal, err = palette.Get(genPalette, base.NumColors); err != nil {
			return fmt.Errorf("%w: %q", err, genPalette)
		}
	}

	start := time.Now()
	p, err := gen.Generate()
	if err != nil {
		return err
	}
	logger.Info("generated",
		zap.String("preset", genPreset),
		zap.Int64("seed", base.Seed),
		zap.Int("regions", p.NumRegions),
		zap.Duration("took", time.Since(start)))

	err = puzzle.WriteDir(genOut, p, puzzle.ExportOptions{
		NumColors:      base.NumColors,
		Palette:        pal,
		Symmetric:      !genGreedy,
		SymmetrySlices: base.SymmetrySlices,
		Seed:           base.Seed,
	})
	if err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ %s\n", genOut)
	fmt.Fprintf(cmd.OutOrStdout(), "  preset %s  seed %d  %dx%d  %d regions  %d colors\n",
		genPreset, base.Seed, p.Grid.Width, p.Grid.Height, p.NumRegions, base.NumColors)
	return nil
}

// buildGenerator resolves the preset parameters with the precedence
// defaults < preset file < explicit flags, and returns the generator
// together with its resolved shared params.
func buildGenerator(cmd *cobra.Command, preset string) (mandala.Generator, mandala.Params, error) {
	base := mandala.Params{
		Width:          genWidth,
		Height:         genHeight,
		NumColors:      genColors,
		Seed:           genSeed,
		SymmetrySlices: genSymmetry,
	}
	flags := cmd.Flags()

	switch preset {
	case mandala.PresetVoronoiMandala:
		p := mandala.DefaultVoronoiParams()
		if err := loadPresetFile(&p); err != nil {
			return nil, base, err
		}
		applyBase(flags, &p.Params, &base)
		if flags.Changed("points") {
			p.PointCount = genPoints
		}
		if flags.Changed("radial-bias") {
			p.RadialBias = genRadialBias
		}
		if flags.Changed("relax") {
			p.RelaxIters = genRelax
		}
		return mandala.NewVoronoiMandala(p), p.Params, nil

	case mandala.PresetPolarHarmonics:
		p := mandala.DefaultPolarParams()
		if err := loadPresetFile(&p); err != nil {
			return nil, base, err
		}
		applyBase(flags, &p.Params, &base)
		if flags.Changed("rings") {
			p.RingCount = genRings
		}
		if flags.Changed("petal-freq") {
			p.PetalFreq = genPetalFreq
		}
		if flags.Changed("petal-depth") {
			p.PetalDepth = genPetalDepth
		}
		if flags.Changed("spokes") {
			p.SpokeCount = genSpokes
		}
		if flags.Changed("spoke-width") {
			p.SpokeWidth = genSpokeWidth
		}
		if flags.Changed("jitter") {
			p.Jitter = genJitter
		}
		return mandala.NewPolarHarmonics(p), p.Params, nil

	case mandala.PresetGeometricTiling:
		p := mandala.DefaultTilingParams()
		if err := loadPresetFile(&p); err != nil {
			return nil, base, err
		}
		applyBase(flags, &p.Params, &base)
		if flags.Changed("tiling") {
			tt, err := mandala.ParseTilingType(genTiling)
			if err != nil {
				return nil, base, fmt.Errorf("%w: %q", err, genTiling)
			}
			p.Tiling = tt
		}
		if flags.Changed("cell-size") {
			p.CellSize = genCellSize
		}
		if flags.Changed("warp") {
			p.WarpStrength = genWarp
		}
		if flags.Changed("layers") {
			p.LayerCount = genLayers
		}
		return mandala.NewGeometricTiling(p), p.Params, nil

	case mandala.PresetStainedGlass:
		p := mandala.DefaultGlassParams()
		if err := loadPresetFile(&p); err != nil {
			return nil, base, err
		}
		applyBase(flags, &p.Params, &base)
		if flags.Changed("points") {
			p.PointCount = genPoints
		}
		if flags.Changed("outline") {
			p.OutlineThickness = genOutline
		}
		if flags.Changed("edge-boost") {
			p.EdgeDetailBoost = genEdgeBoost
		}
		if flags.Changed("scatter") {
			p.UseSymmetry = !genScatter
		}
		return mandala.NewStainedGlass(p), p.Params, nil

	default:
		return nil, base, fmt.Errorf("%w: %q (try one of %v)",
			mandala.ErrUnknownPreset, preset, mandala.Presets())
	}
}

// applyBase copies the shared flags the user actually set over the
// preset-file/default values, then reflects the result back so export
// sees the same params the generator does.
func applyBase(flags *pflag.FlagSet, p *mandala.Params, base *mandala.Params) {
	if flags.Changed("width") {
		p.Width = base.Width
	}
	if flags.Changed("height") {
		p.Height = base.Height
	}
	if flags.Changed("colors") {
		p.NumColors = base.NumColors
	}
	if flags.Changed("seed") {
		p.Seed = base.Seed
	}
	if flags.Changed("symmetry") {
		p.SymmetrySlices = base.SymmetrySlices
	}
	*base = *p
}

func loadPresetFile(v any) error {
	if genPresetFile == "" {
		return nil
	}
	data, err := os.ReadFile(genPresetFile)
	if err != nil {
		return fmt.Errorf("read preset file: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse preset file %s: %w", genPresetFile, err)
	}
	return nil
}
