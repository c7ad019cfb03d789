package palette

import "errors"

// ErrUnknownPalette is returned by Get for names outside Names().
var ErrUnknownPalette = errors.New("palette: unknown palette name")

// Color is an RGB triple with 8-bit channels.
type Color [3]uint8

// Size is the length of every curated palette.
const Size = 24

// Default is the 12-color vibrant palette used when no curated palette
// is requested.
var Default = []Color{
	{231, 76, 60},   // red
	{46, 204, 113},  // green
	{52, 152, 219},  // blue
	{241, 196, 15},  // yellow
	{155, 89, 182},  // purple
	{230, 126, 34},  // orange
	{26, 188, 156},  // teal
	{236, 240, 241}, // light gray
	{52, 73, 94},    // dark blue-gray
	{231, 130, 132}, // light red
	{125, 206, 160}, // light green
	{133, 193, 233}, // light blue
}

// names keeps the curated palettes in their presentation order.
var names = []string{
	"Classic", "Pastel", "Jewel", "Earth", "Ocean",
	"Sunset", "Berry", "Autumn", "Neon", "Stained Glass",
}

var curated = map[string][]Color{
	"Classic": {
		{231, 76, 60}, {46, 204, 113}, {52, 152, 219}, {241, 196, 15},
		{155, 89, 182}, {230, 126, 34}, {26, 188, 156}, {236, 240, 241},
		{52, 73, 94}, {231, 130, 132}, {125, 206, 160}, {133, 193, 233},
		{249, 231, 159}, {195, 155, 211}, {245, 176, 65}, {115, 198, 182},
		{169, 50, 38}, {30, 132, 73}, {36, 113, 163}, {183, 149, 11},
		{118, 68, 138}, {175, 96, 26}, {17, 122, 101}, {86, 101, 115},
	},
	"Pastel": {
		{255, 179, 186}, {186, 255, 201}, {186, 225, 255}, {255, 255, 186},
		{218, 186, 255}, {255, 223, 186}, {186, 255, 255}, {255, 186, 255},
		{224, 187, 228}, {149, 225, 211}, {255, 204, 153}, {167, 199, 231},
		{255, 214, 214}, {214, 255, 214}, {214, 214, 255}, {255, 245, 200},
		{240, 200, 210}, {200, 235, 210}, {200, 215, 240}, {245, 225, 200},
		{230, 210, 240}, {210, 240, 230}, {250, 220, 230}, {220, 230, 210},
	},
	"Jewel": {
		{15, 82, 186}, {80, 200, 120}, {224, 17, 95}, {153, 102, 204},
		{255, 191, 0}, {0, 168, 164}, {220, 20, 60}, {0, 71, 171},
		{0, 163, 108}, {200, 16, 46}, {72, 61, 139}, {218, 165, 32},
		{0, 139, 139}, {199, 21, 133}, {75, 83, 32}, {178, 34, 34},
		{25, 25, 112}, {34, 139, 34}, {148, 103, 189}, {184, 134, 11},
		{0, 128, 128}, {139, 0, 0}, {65, 105, 225}, {46, 125, 50},
	},
	"Earth": {
		{183, 110, 63}, {107, 142, 35}, {194, 154, 108}, {76, 70, 50},
		{210, 180, 140}, {139, 90, 43}, {85, 107, 47}, {205, 133, 63},
		{160, 82, 45}, {188, 170, 132}, {143, 151, 121}, {101, 67, 33},
		{222, 184, 135}, {128, 128, 0}, {210, 105, 30}, {189, 183, 164},
		{170, 130, 80}, {119, 136, 89}, {150, 113, 80}, {200, 160, 110},
		{90, 80, 60}, {165, 148, 120}, {180, 120, 70}, {130, 140, 100},
	},
	"Ocean": {
		{0, 119, 190}, {0, 180, 171}, {127, 199, 175}, {255, 127, 80},
		{237, 201, 175}, {0, 77, 113}, {32, 178, 170}, {70, 130, 180},
		{176, 224, 230}, {244, 164, 96}, {0, 139, 139}, {95, 158, 160},
		{100, 149, 237}, {72, 209, 204}, {240, 230, 210}, {0, 105, 148},
		{64, 224, 208}, {30, 60, 90}, {135, 206, 235}, {255, 160, 122},
		{0, 150, 136}, {173, 216, 230}, {188, 143, 143}, {47, 79, 79},
	},
	"Sunset": {
		{255, 94, 77}, {255, 154, 0}, {255, 200, 87}, {180, 62, 109},
		{93, 39, 93}, {255, 127, 80}, {255, 69, 0}, {255, 165, 0},
		{219, 68, 55}, {200, 100, 140}, {128, 0, 64}, {255, 218, 150},
		{230, 57, 70}, {255, 183, 77}, {160, 50, 90}, {100, 30, 60},
		{255, 110, 64}, {240, 147, 43}, {200, 80, 100}, {70, 20, 50},
		{255, 140, 105}, {235, 180, 100}, {170, 40, 80}, {255, 200, 150},
	},
	"Berry": {
		{142, 36, 170}, {216, 27, 96}, {136, 14, 79}, {106, 27, 154},
		{255, 64, 129}, {81, 45, 168}, {170, 0, 85}, {186, 104, 200},
		{244, 143, 177}, {103, 58, 183}, {200, 60, 120}, {74, 20, 140},
		{233, 30, 99}, {156, 39, 176}, {255, 128, 171}, {69, 39, 160},
		{173, 20, 87}, {149, 117, 205}, {240, 98, 146}, {48, 18, 84},
		{197, 17, 98}, {126, 87, 194}, {255, 105, 135}, {94, 53, 177},
	},
	"Autumn": {
		{204, 85, 0}, {218, 165, 32}, {128, 0, 0}, {107, 142, 35},
		{210, 105, 30}, {189, 183, 107}, {178, 34, 34}, {184, 134, 11},
		{160, 82, 45}, {85, 107, 47}, {205, 92, 0}, {139, 69, 19},
		{244, 164, 96}, {154, 120, 58}, {165, 42, 42}, {143, 151, 121},
		{230, 145, 56}, {120, 80, 40}, {180, 140, 60}, {100, 50, 30},
		{215, 125, 45}, {160, 130, 70}, {145, 60, 30}, {170, 160, 110},
	},
	"Neon": {
		{255, 0, 255}, {0, 255, 0}, {0, 255, 255}, {255, 255, 0},
		{255, 0, 128}, {0, 128, 255}, {255, 128, 0}, {128, 0, 255},
		{0, 255, 128}, {255, 0, 64}, {64, 255, 0}, {0, 64, 255},
		{255, 64, 255}, {64, 255, 255}, {255, 255, 64}, {255, 64, 128},
		{128, 255, 0}, {0, 255, 192}, {255, 128, 128}, {192, 0, 255},
		{0, 192, 255}, {255, 192, 0}, {128, 255, 128}, {255, 128, 255},
	},
	"Stained Glass": {
		{0, 51, 160}, {180, 0, 30}, {0, 128, 58}, {245, 190, 0},
		{100, 0, 120}, {0, 140, 150}, {200, 60, 0}, {20, 20, 80},
		{0, 100, 30}, {160, 0, 60}, {60, 80, 170}, {220, 150, 0},
		{80, 0, 80}, {0, 110, 110}, {230, 100, 50}, {140, 30, 50},
		{30, 70, 130}, {50, 130, 50}, {200, 180, 50}, {90, 30, 100},
		{0, 90, 90}, {170, 50, 20}, {80, 120, 200}, {120, 160, 40},
	},
}

// Names returns the curated palette names in presentation order. The
// returned slice is a fresh copy.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Get returns the first numColors colors of the named curated palette
// (fewer when numColors exceeds Size). Unknown names yield
// ErrUnknownPalette.
func Get(name string, numColors int) ([]Color, error) {
	colors, ok := curated[name]
	if !ok {
		return nil, ErrUnknownPalette
	}
	if numColors > len(colors) {
		numColors = len(colors)
	}
	if numColors < 0 {
		numColors = 0
	}
	out := make([]Color, numColors)
	copy(out, colors[:numColors])
	return out, nil
}

// Generate returns a palette of exactly numColors colors. Up to twelve
// colors it is a prefix of Default; beyond that, variants of the
// default colors are appended in rounds, alternating a 1.3 lighten and
// a 0.7 darken factor per round, channels clamped to [0, 255].
func Generate(numColors int) []Color {
	if numColors < 0 {
		numColors = 0
	}
	out := make([]Color, 0, numColors)
	out = append(out, Default...)
	for len(out) < numColors {
		base := Default[len(out)%len(Default)]
		factor := 0.7
		if (len(out)/len(Default))%2 == 1 {
			factor = 1.3
		}
		var c Color
		for i := 0; i < 3; i++ {
			v := int(float64(base[i]) * factor)
			if v > 255 {
				v = 255
			}
			if v < 0 {
				v = 0
			}
			c[i] = uint8(v)
		}
		out = append(out, c)
	}
	return out[:numColors]
}
