package sampler

import (
	"errors"
	"math"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/grid"
	"github.com/katalvlaran/poissondisk/neighborhood"
	"github.com/katalvlaran/poissondisk/rng"
)

// State is the coarse lifecycle of a Sampler.
type State int

const (
	// Empty means no point has been accepted yet.
	Empty State = iota
	// Growing means at least one point still has candidates left to try.
	Growing
	// Exhausted means every accepted point has been retired.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Growing:
		return "growing"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Sample pairs an accepted point with its cached density value.
type Sample struct {
	Point   geom.Point
	Density float64
}

// Sampler incrementally produces a Poisson-disk point set inside the box
// [0, Shape[0]) × … × [0, Shape[D-1]).
//
// Points are grown outwards from already accepted points (dart throwing around
// an active FIFO queue) and every candidate is checked against its neighbours
// in a uniform acceleration grid. A Sampler is not safe for concurrent use.
type Sampler struct {
	variant     Variant
	dim         int
	shape       []float64
	minDistance float64
	maxDistance float64
	minRadius   float64 // minDistance + epsilon
	deltaRadius float64 // max(0, maxDistance - minRadius)
	maxTries    int
	src         rng.Source
	table       []neighborhood.Offset
	layout      grid.Layout
	policy      policy

	points    []geom.Point
	active    []int
	current   int // arena index being expanded, -1 when none
	saturated bool
}

// New validates cfg and returns a Sampler with an empty point set.
// Every error matches ErrConfig and one of the specific configuration sentinels.
//
// Complexity: O(cells) for the grid allocation.
func New(cfg Config) (*Sampler, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		variant:     cfg.Variant,
		dim:         len(cfg.Shape),
		shape:       cfg.Shape,
		minDistance: cfg.MinDistance,
		maxDistance: cfg.MaxDistance,
		minRadius:   cfg.MinDistance + epsilon,
		maxTries:    cfg.MaxTries,
		src:         cfg.Rand,
		current:     -1,
	}
	s.deltaRadius = math.Max(0, s.maxDistance-s.minRadius)
	s.table = neighborhood.Table(s.dim)

	if cfg.Variant == Variable {
		s.policy = newVariablePolicy(s, cfg.Density, cfg.Bias)
	} else {
		s.policy = newFixedPolicy(s)
	}

	cell := s.policy.cellSize()
	s.layout, err = grid.NewLayout(s.shape, cell)
	if err != nil {
		if errors.Is(err, grid.ErrTooLarge) {
			return nil, configErrorf(ErrGridTooLarge, "%v", err)
		}
		return nil, configErrorf(ErrInvalidDistance, "%v", err)
	}
	s.policy.bind(s.layout)

	Logger().Debug("sampler: created",
		"variant", s.variant.String(),
		"dim", s.dim,
		"minDistance", s.minDistance,
		"maxDistance", s.maxDistance,
		"maxTries", s.maxTries,
		"cellSize", cell,
		"cells", s.layout.Len())
	return s, nil
}

// Variant reports the resolved density policy (never Auto).
func (s *Sampler) Variant() Variant { return s.variant }

// Dim returns the dimension D.
func (s *Sampler) Dim() int { return s.dim }

// Shape returns a copy of the domain extent.
func (s *Sampler) Shape() []float64 { return append([]float64(nil), s.shape...) }

// Len returns the number of accepted points.
func (s *Sampler) Len() int { return len(s.points) }

// State reports whether the sampler is empty, still growing, or exhausted.
func (s *Sampler) State() State {
	switch {
	case len(s.points) == 0:
		return Empty
	case s.current >= 0 || len(s.active) > 0:
		return Growing
	default:
		return Exhausted
	}
}

// AddRandomPoint inserts a uniformly drawn point without any distance check.
// It is used to seed the set; calling it on a non-empty set may break the
// minimum-distance guarantee for the new point.
func (s *Sampler) AddRandomPoint() geom.Point {
	p := make(geom.Point, s.dim)
	for i := range p {
		p[i] = s.src.Float64() * s.shape[i]
	}
	return s.admit(p)
}

// AddPoint inserts a caller-supplied point without any distance check.
// It returns (nil, false) when p has the wrong dimension or a coordinate lies
// outside [0, Shape[i]]. The stored point is a copy of p.
func (s *Sampler) AddPoint(p geom.Point) (geom.Point, bool) {
	if len(p) != s.dim {
		return nil, false
	}
	for i, v := range p {
		if !(v >= 0 && v <= s.shape[i]) {
			return nil, false
		}
	}
	return s.admit(p.Clone()), true
}

// Next produces one new point, or (nil, false) once the sampler is exhausted.
//
// The point being expanded survives across calls: a later call resumes
// generating candidates around it instead of dequeuing a new one. Each call
// gives the current point up to MaxTries fresh candidates.
func (s *Sampler) Next() (geom.Point, bool) {
	for s.current >= 0 || len(s.active) > 0 {
		if s.current < 0 {
			s.current = s.active[0]
			s.active = s.active[1:]
		}
		for try := 0; try < s.maxTries; try++ {
			if p, ok := s.candidate(); ok {
				return s.admit(p), true
			}
		}
		s.current = -1
	}

	if !s.saturated && len(s.points) > 0 {
		s.saturated = true
		Logger().Debug("sampler: saturated", "points", len(s.points))
	}
	return nil, false
}

// NextN calls Next up to n times and returns the points produced, stopping
// early at saturation.
func (s *Sampler) NextN(n int) []geom.Point {
	var out []geom.Point
	for ; n > 0; n-- {
		p, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// Fill seeds one random point if the set is empty, then calls Next until
// saturation. It returns every accepted point, in insertion order.
func (s *Sampler) Fill() []geom.Point {
	if len(s.points) == 0 {
		s.AddRandomPoint()
	}
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	return s.points
}

// Points returns all accepted points in insertion order. The returned slice
// must not be modified; it is never reused after Reset.
func (s *Sampler) Points() []geom.Point { return s.points }

// PointsWithDensity returns every point paired with its cached density.
// It returns ErrUnsupported on a fixed-density sampler.
func (s *Sampler) PointsWithDensity() ([]Sample, error) {
	if s.variant != Variable {
		return nil, ErrUnsupported
	}
	out := make([]Sample, len(s.points))
	for i, p := range s.points {
		d, _ := s.policy.density(i)
		out[i] = Sample{Point: p, Density: d}
	}
	return out, nil
}

// LastDensity returns the cached density of the most recently accepted point.
// ok is false on a fixed-density sampler or when no point exists.
func (s *Sampler) LastDensity() (float64, bool) {
	return s.policy.density(len(s.points) - 1)
}

// Reset returns the sampler to Empty. The configuration, random source and
// grid allocation are kept; slices returned by Points before Reset stay valid.
func (s *Sampler) Reset() {
	s.policy.reset()
	s.points = nil
	s.active = nil
	s.current = -1
	s.saturated = false
	Logger().Debug("sampler: reset")
}

// admit appends p to the arena and the active queue and registers it.
func (s *Sampler) admit(p geom.Point) geom.Point {
	idx := len(s.points)
	s.points = append(s.points, p)
	s.active = append(s.active, idx)
	s.policy.admit(p, idx)
	s.saturated = false
	return p
}

// candidate proposes one point around the current point. It reports false when
// the proposal leaves the domain or violates the separation rule.
func (s *Sampler) candidate() (geom.Point, bool) {
	base := s.points[s.current]
	r := s.policy.radius(s.current)
	c := geom.RandomDirection(s.dim, s.src)
	for i := range c {
		v := base[i] + c[i]*r
		if v < 0 || v >= s.shape[i] {
			return nil, false
		}
		c[i] = v
	}
	if s.policy.collides(c) {
		return nil, false
	}
	return c, true
}
