package mandala

// Preset names accepted by NewGenerator and recorded in exported
// documents.
const (
	PresetVoronoiMandala  = "voronoi_mandala"
	PresetPolarHarmonics  = "polar_harmonics"
	PresetGeometricTiling = "geometric_tiling"
	PresetStainedGlass    = "stained_glass"
)

// Presets lists the preset names in presentation order.
func Presets() []string {
	return []string{
		PresetVoronoiMandala,
		PresetPolarHarmonics,
		PresetGeometricTiling,
		PresetStainedGlass,
	}
}

// NewGenerator builds the named preset with its default knobs, the
// shared base parameters replaced by base. Callers needing
// preset-specific knobs construct the concrete params directly.
func NewGenerator(name string, base Params) (Generator, error) {
	switch name {
	case PresetVoronoiMandala:
		p := DefaultVoronoiParams()
		p.Params = base
		return NewVoronoiMandala(p), nil
	case PresetPolarHarmonics:
		p := DefaultPolarParams()
		p.Params = base
		return NewPolarHarmonics(p), nil
	case PresetGeometricTiling:
		p := DefaultTilingParams()
		p.Params = base
		return NewGeometricTiling(p), nil
	case PresetStainedGlass:
		p := DefaultGlassParams()
		p.Params = base
		return NewStainedGlass(p), nil
	default:
		return nil, ErrUnknownPreset
	}
}
