package extent

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/poissondisk/geom"
)

// ErrInvalidExtent indicates bounds that are not finite or have zero or negative size.
var ErrInvalidExtent = errors.New("extent: bounds must be finite with XMin < XMax and YMin < YMax")

// Extent is an axis-aligned rectangle [XMin, XMax) × [YMin, YMax) in world units.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax-XMin.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns YMax-YMin.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Shape returns the sampler shape {Width, Height}.
func (e Extent) Shape() []float64 { return []float64{e.Width(), e.Height()} }

// Origin returns the lower corner {XMin, YMin}.
func (e Extent) Origin() geom.Point { return geom.Pt(e.XMin, e.YMin) }

// Validate returns ErrInvalidExtent (wrapped with the offending bounds) when e
// cannot host a sampler.
func (e Extent) Validate() error {
	for _, v := range [...]float64{e.XMin, e.XMax, e.YMin, e.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidExtent, e)
		}
	}
	if !(e.Width() > 0) || !(e.Height() > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidExtent, e)
	}
	return nil
}

// Contains reports whether p lies in the half-open rectangle.
func (e Extent) Contains(p geom.Point) bool {
	return len(p) == 2 &&
		p[0] >= e.XMin && p[0] < e.XMax &&
		p[1] >= e.YMin && p[1] < e.YMax
}

// Inset shrinks every side by margin times the shorter side. A margin of 0.05
// leaves a 5% border.
func (e Extent) Inset(margin float64) Extent {
	d := margin * math.Min(e.Width(), e.Height())
	return Extent{
		XMin: e.XMin + d,
		XMax: e.XMax - d,
		YMin: e.YMin + d,
		YMax: e.YMax - d,
	}
}

// Centered returns the extent of width w and height h centred on the origin.
func Centered(w, h float64) Extent {
	return Extent{XMin: -w / 2, XMax: w / 2, YMin: -h / 2, YMax: h / 2}
}

func (e Extent) String() string {
	return fmt.Sprintf("[%g, %g) × [%g, %g)", e.XMin, e.XMax, e.YMin, e.YMax)
}
