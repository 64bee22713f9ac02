package density

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/poissondisk/extent"
	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/rng"
	"github.com/katalvlaran/poissondisk/sampler"
)

// ErrBadRadius indicates a negative radius or maxRadius < minRadius.
var ErrBadRadius = errors.New("density: radii must satisfy 0 ≤ minRadius ≤ maxRadius")

// CircleSpacing is the minimum distance between circle centres placed by
// GenerateCircles.
const CircleSpacing = 0.1

// warpDecay shrinks the warp displacement after every warp step.
const warpDecay = 0.9

// Circle is a disc carrying a constant density value.
type Circle struct {
	Center  geom.Point
	Radius  float64
	Density float64
}

// Contains reports whether p lies strictly inside the disc.
func (c Circle) Contains(p geom.Point) bool {
	return math.Hypot(c.Center[0]-p[0], c.Center[1]-p[1]) < c.Radius
}

// GenerateCircles Poisson-fills ext with centres at least CircleSpacing apart
// and gives each a radius uniform in [minRadius, maxRadius) and a density u³,
// which favours low values.
func GenerateCircles(ext extent.Extent, minRadius, maxRadius float64, src rng.Source) ([]Circle, error) {
	if !(minRadius >= 0 && maxRadius >= minRadius) {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrBadRadius, minRadius, maxRadius)
	}
	w, err := extent.New(ext, sampler.Config{MinDistance: CircleSpacing, Rand: src})
	if err != nil {
		return nil, fmt.Errorf("density: circles: %w", err)
	}

	centers := w.Fill()
	out := make([]Circle, len(centers))
	for i, c := range centers {
		r := minRadius + (maxRadius-minRadius)*src.Float64()
		u := src.Float64()
		out[i] = Circle{Center: c, Radius: r, Density: u * u * u}
	}
	return out, nil
}

// Terrain is a domain-warped circle map. A query point is displaced Warps
// times by two noise fields, each step scaled by 0.9 relative to the last,
// and the density of the first circle containing the result is returned, or
// 1 when none does.
type Terrain struct {
	XNoise, YNoise       *NoiseField
	WarpSizeX, WarpSizeY float64
	Warps                int
	Circles              []Circle
}

// RandomTerrain builds a randomised terrain over ext:
// noise range 0.5 with 10 octaves, warp sizes in [0.1, 1), 1 to 10 warps, and
// circles with radii in [0.25, 0.5).
func RandomTerrain(ext extent.Extent, seed int64, src rng.Source) (*Terrain, error) {
	opts := NoiseOptions{Range: 0.5, Octaves: 10, Falloff: 0.5}
	t := &Terrain{
		XNoise: NewNoiseField(rng.DeriveSeed(seed, 1), src, opts),
		YNoise: NewNoiseField(rng.DeriveSeed(seed, 2), src, opts),
	}

	circles, err := GenerateCircles(ext, 0.25, 0.5, src)
	if err != nil {
		return nil, err
	}
	t.Circles = circles
	t.WarpSizeX = 0.1 + 0.9*src.Float64()
	t.WarpSizeY = 0.1 + 0.9*src.Float64()
	t.Warps = 1 + int(10*src.Float64())
	return t, nil
}

// Warp returns p displaced by the configured warp steps.
func (t *Terrain) Warp(p geom.Point) geom.Point {
	x, y := p[0], p[1]
	scale := 1.0
	for i := 0; i < t.Warps; i++ {
		dx := -1 + 2*t.XNoise.Eval(x, y)
		dy := -1 + 2*t.YNoise.Eval(x, y)
		x += scale * t.WarpSizeX * dx
		y += scale * t.WarpSizeY * dy
		scale *= warpDecay
	}
	return geom.Pt(x, y)
}

// Density returns the terrain value at p in [0, 1]. Its method value
// satisfies sampler.DensityFunc.
func (t *Terrain) Density(p geom.Point) float64 {
	q := t.Warp(p)
	for _, c := range t.Circles {
		if c.Contains(q) {
			return c.Density
		}
	}
	return 1
}

// DotLevel quantises a density value into a drawing level:
// floor(cbrt(d)·strength). Level 0 marks the densest areas.
func DotLevel(d, strength float64) int {
	return int(math.Floor(math.Cbrt(d) * strength))
}
