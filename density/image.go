package density

import (
	"errors"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/poissondisk/geom"
)

// ErrEmptyImage indicates a nil image or one without pixels.
var ErrEmptyImage = errors.New("density: image has no pixels")

// Defaults for ImageOptions.
const (
	DefaultDivisor = 200.0
	DefaultGamma   = 2.7
)

// ImageOptions controls how pixel brightness becomes density.
//
// density = min(1, (gray/Divisor)^Gamma), gray on the 0..255 scale. With the
// defaults, dark areas get dense points and everything brighter than gray 200
// gets the sparsest spacing.
type ImageOptions struct {
	Divisor float64 // gray level mapped to 1 before the exponent; ≤0 ⇒ 200
	Gamma   float64 // exponent; ≤0 ⇒ 2.7
	Width   int     // resample to this width first (aspect kept); 0 keeps the size
}

// DefaultImageOptions returns Divisor 200, Gamma 2.7 and no resampling.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Divisor: DefaultDivisor, Gamma: DefaultGamma}
}

// Luminance returns the weighted gray level 0.21R + 0.72G + 0.07B of c on the
// 0..255 scale, ignoring alpha.
func Luminance(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return luminance(n)
}

func luminance(n color.NRGBA) float64 {
	return 0.21*float64(n.R) + 0.72*float64(n.G) + 0.07*float64(n.B)
}

// ImageField is a density field sampled from an image. Lookups use the
// nearest pixel, clamped to the image, so any point of the sampling box
// [0, w] × [0, h] is valid.
type ImageField struct {
	w, h    int
	density []float64
	colors  []color.NRGBA
}

// NewImageField precomputes the density of every pixel of img.
//
// Complexity: O(w·h), plus the resampling cost when opts.Width is set.
func NewImageField(img image.Image, opts ImageOptions) (*ImageField, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if opts.Divisor <= 0 {
		opts.Divisor = DefaultDivisor
	}
	if opts.Gamma <= 0 {
		opts.Gamma = DefaultGamma
	}
	if opts.Width > 0 && opts.Width != img.Bounds().Dx() {
		img = resample(img, opts.Width)
	}

	b := img.Bounds()
	f := &ImageField{
		w:       b.Dx(),
		h:       b.Dy(),
		density: make([]float64, b.Dx()*b.Dy()),
		colors:  make([]color.NRGBA, b.Dx()*b.Dy()),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			f.colors[i] = c
			f.density[i] = math.Min(1, math.Pow(luminance(c)/opts.Divisor, opts.Gamma))
			i++
		}
	}
	return f, nil
}

// resample scales src to width pixels wide, keeping its aspect ratio.
func resample(src image.Image, width int) image.Image {
	sb := src.Bounds()
	height := max(1, int(math.Round(float64(sb.Dy())*float64(width)/float64(sb.Dx()))))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// Size returns the field size in pixels.
func (f *ImageField) Size() (w, h int) { return f.w, f.h }

// Shape returns the sampler shape {w, h}.
func (f *ImageField) Shape() []float64 { return []float64{float64(f.w), float64(f.h)} }

// Density returns the density of the pixel nearest to p. Its method value
// satisfies sampler.DensityFunc.
func (f *ImageField) Density(p geom.Point) float64 { return f.density[f.index(p)] }

// Color returns the colour of the pixel nearest to p.
func (f *ImageField) Color(p geom.Point) color.NRGBA { return f.colors[f.index(p)] }

func (f *ImageField) index(p geom.Point) int {
	x := clampInt(int(math.Round(p[0])), f.w-1)
	y := clampInt(int(math.Round(p[1])), f.h-1)
	return y*f.w + x
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
