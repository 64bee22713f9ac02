package density

import (
	"fmt"
	"image"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/poissondisk/rng"
)

// NoiseOptions configures a NoiseField.
type NoiseOptions struct {
	Range   float64 // feature size in world units; ≤0 ⇒ 1
	Octaves int     // number of summed layers; ≤0 ⇒ 4
	Falloff float64 // amplitude factor per octave; ≤0 ⇒ 0.5
}

// DefaultNoiseOptions returns Range 1, 4 octaves and falloff 0.5.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{Range: 1, Octaves: 4, Falloff: 0.5}
}

// NoiseField is fractal 2-D simplex noise normalised to [0, 1].
//
// Octave i has amplitude 0.5·Falloff^i and frequency 2^i; the sum is divided
// by the total amplitude. A random offset decorrelates fields sharing a seed.
type NoiseField struct {
	noise      opensimplex.Noise
	xOff, yOff float64
	scale      float64
	octaves    int
	falloff    float64
	norm       float64
}

// NewNoiseField builds a field from seed. The coordinate offsets are drawn
// from src.
func NewNoiseField(seed int64, src rng.Source, opts NoiseOptions) *NoiseField {
	def := DefaultNoiseOptions()
	if opts.Range <= 0 {
		opts.Range = def.Range
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Falloff <= 0 {
		opts.Falloff = def.Falloff
	}

	n := &NoiseField{
		noise:   opensimplex.NewNormalized(seed),
		xOff:    src.Float64(),
		yOff:    src.Float64(),
		scale:   opts.Range,
		octaves: opts.Octaves,
		falloff: opts.Falloff,
	}
	amp := 0.5
	for i := 0; i < n.octaves; i++ {
		n.norm += amp
		amp *= n.falloff
	}
	return n
}

// Eval returns the noise value at (x, y), in [0, 1].
func (n *NoiseField) Eval(x, y float64) float64 {
	x = (x + n.xOff) / n.scale
	y = (y + n.yOff) / n.scale

	var sum float64
	amp, freq := 0.5, 1.0
	for i := 0; i < n.octaves; i++ {
		sum += amp * n.noise.Eval2(x*freq, y*freq)
		amp *= n.falloff
		freq *= 2
	}
	// The normalised simplex range is empirical; clamp the rare overshoot.
	return math.Min(1, math.Max(0, sum/n.norm))
}

// NoiseImage renders a single-octave noise field as a w×h grayscale image
// whose pixel (x, y) is 255 − ⌊255·v⌋ for v = Eval(x·freq, y·freq), so
// high noise values come out dark. Fed to NewImageField it stipples the noise
// pattern. Returns ErrEmptyImage when w or h is not positive.
//
// Complexity: O(w·h).
func NoiseImage(w, h int, freq float64, seed int64, src rng.Source) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d×%d noise image", ErrEmptyImage, w, h)
	}
	field := NewNoiseField(seed, src, NoiseOptions{Range: 1, Octaves: 1})
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := field.Eval(float64(x)*freq, float64(y)*freq)
			img.Pix[y*img.Stride+x] = 255 - uint8(math.Floor(255*v))
		}
	}
	return img, nil
}
