package imgconv

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/mandala/cleanup"
)

// defaultRNGSeed replaces a zero seed so Seed==0 still reproduces.
const defaultRNGSeed int64 = 1

// ConvertFile decodes the image at path (PNG, JPEG or GIF) and runs
// Convert on it.
func ConvertFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgconv: open source: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgconv: decode source: %w", err)
	}
	return Convert(src, opts)
}

// Convert runs the full image-to-puzzle pipeline on src. See the
// package documentation for the stage list.
func Convert(src image.Image, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if src.Bounds().Dx() == 0 || src.Bounds().Dy() == 0 {
		return nil, ErrEmptyImage
	}

	img := resize(src, opts.MaxEdge)
	gaussianBlur(img, opts.BlurRadius)

	pal, indexed := quantize(img, opts.NumColors)
	w, h := img.Rect.Dx(), img.Rect.Dy()

	g, err := labelComponents(indexed, w, h, len(pal))
	if err != nil {
		return nil, err
	}

	cleanOpts := cleanup.Options{
		MinArea:          opts.MinArea,
		SmoothIterations: cleanup.DefaultSmoothIterations,
	}
	n := cleanup.Cleanup(g, cleanOpts)

	if opts.TargetRegions > n {
		seed := opts.Seed
		if seed == 0 {
			seed = defaultRNGSeed
		}
		subdivide(g, n, opts.TargetRegions, rand.New(rand.NewSource(seed)))
		n = cleanup.Cleanup(g, cleanOpts)
	}

	return &Result{
		Grid:        g,
		NumRegions:  n,
		Palette:     pal,
		RegionColor: regionColors(g, n, indexed, pal),
	}, nil
}

// resize scales src so its longest edge equals maxEdge, preserving
// aspect ratio, using Catmull-Rom resampling.
func resize(src image.Image, maxEdge int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	scale := float64(maxEdge) / float64(max(w, h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// gaussianBlur applies a separable Gaussian with the given sigma to
// the RGB channels in place, replicating edge pixels. Sigma <= 0 is a
// no-op.
func gaussianBlur(img *image.NRGBA, sigma float64) {
	if sigma <= 0 {
		return
	}
	half := max(1, int(math.Ceil(sigma*3)))
	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	src := make([]float64, w*h)
	tmp := make([]float64, w*h)

	for ch := 0; ch < 3; ch++ {
		for i := 0; i < w*h; i++ {
			src[i] = float64(img.Pix[i*4+ch])
		}
		// Horizontal pass.
		for y := 0; y < h; y++ {
			row := src[y*w : (y+1)*w]
			out := tmp[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				acc := 0.0
				for k := -half; k <= half; k++ {
					sx := min(max(x+k, 0), w-1)
					acc += row[sx] * kernel[k+half]
				}
				out[x] = acc
			}
		}
		// Vertical pass.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				acc := 0.0
				for k := -half; k <= half; k++ {
					sy := min(max(y+k, 0), h-1)
					acc += tmp[sy*w+x] * kernel[k+half]
				}
				img.Pix[(y*w+x)*4+ch] = uint8(math.Round(min(max(acc, 0), 255)))
			}
		}
	}
}
