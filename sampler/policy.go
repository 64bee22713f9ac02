package sampler

import (
	"math"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/grid"
)

// policy is the capability set separating the fixed- and variable-density
// variants. The shared control flow in Sampler only talks to this interface.
type policy interface {
	// cellSize returns the acceleration-grid cell edge for this variant.
	cellSize() float64
	// bind attaches the grid built from cellSize.
	bind(l grid.Layout)
	// radius returns the candidate distance around the point at arena index base.
	radius(base int) float64
	// collides reports whether candidate is too close to a registered point.
	collides(candidate geom.Point) bool
	// admit registers the point stored at arena index idx.
	admit(p geom.Point, idx int)
	// density returns the cached density of arena index idx, if the variant keeps one.
	density(idx int) (float64, bool)
	reset()
}

// fixedPolicy enforces a constant MinDistance. Its cells have edge
// MinDistance/√D, so no two accepted points can share a cell and the pruned
// neighbourhood table covers every possible violation.
type fixedPolicy struct {
	s     *Sampler
	grid  *grid.Single
	sqMin float64
}

func newFixedPolicy(s *Sampler) *fixedPolicy {
	return &fixedPolicy{s: s, sqMin: s.minDistance * s.minDistance}
}

func (f *fixedPolicy) cellSize() float64 {
	return f.s.minDistance / math.Sqrt(float64(f.s.dim))
}

func (f *fixedPolicy) bind(l grid.Layout) { f.grid = grid.NewSingle(l) }

func (f *fixedPolicy) radius(int) float64 {
	return f.s.minRadius + f.s.deltaRadius*f.s.src.Float64()
}

func (f *fixedPolicy) collides(candidate geom.Point) bool {
	for idx := range f.grid.Query(candidate, f.s.table) {
		if geom.SquaredDistance(candidate, f.s.points[idx]) < f.sqMin {
			return true
		}
	}
	return false
}

func (f *fixedPolicy) admit(p geom.Point, idx int) { f.grid.Register(p, idx) }

func (f *fixedPolicy) density(int) (float64, bool) { return 0, false }

func (f *fixedPolicy) reset() { f.grid.Reset() }

// variablePolicy derives the required separation of each pair from the
// density values of both points. Cells have edge MaxDistance/√D so the widest
// separation is still covered by the neighbourhood table, at the price of
// several points per cell.
type variablePolicy struct {
	s         *Sampler
	grid      *grid.Multi
	field     DensityFunc
	bias      float64
	densities []float64

	// Density of the last candidate tested by collides, reused by admit.
	candidate        geom.Point
	candidateDensity float64
}

func newVariablePolicy(s *Sampler, field DensityFunc, bias float64) *variablePolicy {
	return &variablePolicy{s: s, field: field, bias: bias}
}

func (v *variablePolicy) cellSize() float64 {
	return v.s.maxDistance / math.Sqrt(float64(v.s.dim))
}

func (v *variablePolicy) bind(l grid.Layout) { v.grid = grid.NewMulti(l) }

// radius biases the proposal by the current point's density only; the
// candidate's own density is unknown until it has a position. collides is the
// actual gate and mixes both.
func (v *variablePolicy) radius(base int) float64 {
	d := v.densities[base]
	return v.s.minRadius + v.s.deltaRadius*(d+(1-d)*v.bias)
}

func (v *variablePolicy) collides(candidate geom.Point) bool {
	pd := v.eval(candidate)
	v.candidate, v.candidateDensity = candidate, pd

	for idx := range v.grid.Query(candidate, v.s.table) {
		qd := v.densities[idx]
		lo, hi := min(pd, qd), max(pd, qd)
		mix := lo + (hi-lo)*v.bias
		if geom.Distance(candidate, v.s.points[idx]) < v.s.minDistance+v.s.deltaRadius*mix {
			return true
		}
	}
	return false
}

func (v *variablePolicy) admit(p geom.Point, idx int) {
	var d float64
	if v.candidate != nil && len(p) > 0 && &p[0] == &v.candidate[0] {
		d = v.candidateDensity
	} else {
		d = v.eval(p)
	}
	v.candidate = nil
	v.densities = append(v.densities, d)
	v.grid.Register(p, idx)
}

func (v *variablePolicy) density(idx int) (float64, bool) {
	if idx < 0 || idx >= len(v.densities) {
		return 0, false
	}
	return v.densities[idx], true
}

func (v *variablePolicy) reset() {
	v.grid.Reset()
	v.densities = v.densities[:0]
	v.candidate = nil
}

// eval calls the density field and clamps the result into [0, 1].
func (v *variablePolicy) eval(p geom.Point) float64 {
	d := v.field(p)
	switch {
	case d > 1:
		return 1
	case d >= 0:
		return d
	default: // negative or NaN
		return 0
	}
}
