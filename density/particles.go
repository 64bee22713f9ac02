package density

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/sampler"
)

// Particle is a sampled point in pixel space with the colour beneath it.
type Particle struct {
	Point geom.Point
	Color color.NRGBA
}

// DefaultParticleConfig returns the image-stippling configuration: spacing
// from minDistance up to 10 pixels and 10 tries per active point.
func DefaultParticleConfig(minDistance float64) sampler.Config {
	return sampler.Config{
		MinDistance: minDistance,
		MaxDistance: 10,
		MaxTries:    10,
	}
}

// Particles fills the image box with a variable-density point set driven by
// field and returns every point with its pixel colour. cfg.Shape and
// cfg.Density are overwritten.
func Particles(field *ImageField, cfg sampler.Config) ([]Particle, error) {
	cfg.Shape = field.Shape()
	cfg.Density = field.Density
	cfg.Variant = sampler.Variable

	s, err := sampler.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("density: particles: %w", err)
	}
	pts := s.Fill()
	out := make([]Particle, len(pts))
	for i, p := range pts {
		out[i] = Particle{Point: p, Color: field.Color(p)}
	}
	return out, nil
}
