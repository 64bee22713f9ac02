package extent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/sampler"
)

// Wrapper runs a 2-D sampler over an arbitrary world rectangle. Points go in
// and come out in world coordinates; the inner sampler works in the local box
// [0, Width) × [0, Height).
type Wrapper struct {
	ext    Extent
	origin geom.Point
	s      *sampler.Sampler
}

// New builds a Wrapper over ext and seeds it with one random point.
//
// cfg.Shape is ignored and replaced by ext.Shape(). When cfg.Density is set it
// is called with world coordinates. Errors are ErrInvalidExtent or the
// sampler's configuration errors.
func New(ext Extent, cfg sampler.Config) (*Wrapper, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}

	w := &Wrapper{ext: ext, origin: ext.Origin()}
	cfg.Shape = ext.Shape()
	if field := cfg.Density; field != nil {
		cfg.Density = func(p geom.Point) float64 { return field(w.Transform(p)) }
	}

	s, err := sampler.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("extent: %w", err)
	}
	w.s = s
	w.s.AddRandomPoint()
	return w, nil
}

// Transform maps a local point to world coordinates. Results that round onto
// the far edge are pulled back inside the half-open rectangle.
func (w *Wrapper) Transform(p geom.Point) geom.Point {
	q := p.Translate(w.origin)
	if q[0] >= w.ext.XMax {
		q[0] = math.Nextafter(w.ext.XMax, w.ext.XMin)
	}
	if q[1] >= w.ext.YMax {
		q[1] = math.Nextafter(w.ext.YMax, w.ext.YMin)
	}
	return q
}

// InverseTransform maps a world point to local coordinates.
func (w *Wrapper) InverseTransform(p geom.Point) geom.Point {
	return geom.Pt(p[0]-w.origin[0], p[1]-w.origin[1])
}

// Extent returns the world rectangle.
func (w *Wrapper) Extent() Extent { return w.ext }

// Sampler exposes the inner sampler, which works in local coordinates.
func (w *Wrapper) Sampler() *sampler.Sampler { return w.s }

// AddPoint inserts a world point without a distance check. It reports false
// for points of the wrong dimension or outside the closed rectangle.
func (w *Wrapper) AddPoint(p geom.Point) (geom.Point, bool) {
	if len(p) != 2 {
		return nil, false
	}
	q, ok := w.s.AddPoint(w.InverseTransform(p))
	if !ok {
		return nil, false
	}
	return w.Transform(q), true
}

// AddRandomPoint inserts a uniform random point and returns it in world coordinates.
func (w *Wrapper) AddRandomPoint() geom.Point { return w.Transform(w.s.AddRandomPoint()) }

// Next returns the next point in world coordinates, or (nil, false) when exhausted.
func (w *Wrapper) Next() (geom.Point, bool) {
	p, ok := w.s.Next()
	if !ok {
		return nil, false
	}
	return w.Transform(p), true
}

// NextN returns up to n new world points.
func (w *Wrapper) NextN(n int) []geom.Point {
	return w.transformAll(w.s.NextN(n))
}

// Fill runs the sampler to saturation and returns every point in world coordinates.
func (w *Wrapper) Fill() []geom.Point { return w.transformAll(w.s.Fill()) }

// Points returns every accepted point in world coordinates.
func (w *Wrapper) Points() []geom.Point { return w.transformAll(w.s.Points()) }

// LastDensity forwards to the inner sampler.
func (w *Wrapper) LastDensity() (float64, bool) { return w.s.LastDensity() }

// Reset clears the inner sampler and seeds a fresh random point, leaving the
// wrapper in the same state as after New.
func (w *Wrapper) Reset() {
	w.s.Reset()
	w.s.AddRandomPoint()
}

func (w *Wrapper) transformAll(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = w.Transform(p)
	}
	return out
}
