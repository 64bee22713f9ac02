package sampler

import (
	"math"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/rng"
)

// Defaults applied by New to zero-valued Config fields.
const (
	// DefaultMaxTries is the number of candidates tried around an active point.
	DefaultMaxTries = 30
	// DefaultMaxDistanceFactor scales MinDistance into the default MaxDistance.
	DefaultMaxDistanceFactor = 2.0
)

// epsilon is added to the minimum candidate radius so that rounding never
// lands a candidate exactly on the minimum-distance boundary.
const epsilon = 2e-14

// DensityFunc maps a point to a value in [0, 1] that controls local spacing:
// 0 asks for MinDistance, 1 for MaxDistance. Values outside [0, 1] (and NaN,
// treated as 0) are clamped when cached.
type DensityFunc func(p geom.Point) float64

// Variant selects the density policy.
type Variant int

const (
	// Auto selects Variable when a density field is present, Fixed otherwise.
	Auto Variant = iota
	// Fixed keeps a constant MinDistance separation and single-occupancy cells.
	Fixed
	// Variable derives separation from a density field and uses list cells.
	Variable
)

func (v Variant) String() string {
	switch v {
	case Auto:
		return "auto"
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// Config configures a Sampler.
//
// Fields:
//   - Shape       — domain extent per axis; D = len(Shape). Points satisfy 0 ≤ p[i] < Shape[i].
//   - MinDistance — minimum separation between any two points (> 0).
//   - MaxDistance — upper candidate radius; 0 means 2×MinDistance.
//   - MaxTries    — candidates tried around an active point before retiring it; 0 means 30.
//   - Density     — optional density field; presence selects the variable variant under Auto.
//   - Bias        — variable only: 0 lets the tighter of two points win, 1 the looser.
//   - Rand        — random source; nil means rng.FromSeed(0).
//   - Variant     — Auto, or an explicit Fixed/Variable that must agree with Density.
//
// Example:
//
//	cfg := sampler.DefaultConfig([]float64{100, 100}, 4)
//	cfg.Rand = rng.FromSeed(42)
//	s, err := sampler.New(cfg)
type Config struct {
	Shape       []float64
	MinDistance float64
	MaxDistance float64
	MaxTries    int
	Density     DensityFunc
	Bias        float64
	Rand        rng.Source
	Variant     Variant
}

// DefaultConfig returns a fixed-density Config for shape and minDistance with
// every other field at its documented default.
func DefaultConfig(shape []float64, minDistance float64) Config {
	return Config{
		Shape:       shape,
		MinDistance: minDistance,
		MaxDistance: DefaultMaxDistanceFactor * minDistance,
		MaxTries:    DefaultMaxTries,
	}
}

// resolve validates cfg and returns it with defaults applied.
// Validation order: shape, distances, tries, bias, variant/density agreement.
func (cfg Config) resolve() (Config, error) {
	if len(cfg.Shape) == 0 {
		return cfg, configErrorf(ErrInvalidShape, "no axes")
	}
	for i, v := range cfg.Shape {
		if !(v > 0) || math.IsInf(v, 0) {
			return cfg, configErrorf(ErrInvalidShape, "shape[%d]=%v", i, v)
		}
	}
	if !(cfg.MinDistance > 0) || math.IsInf(cfg.MinDistance, 0) {
		return cfg, configErrorf(ErrInvalidDistance, "MinDistance=%v", cfg.MinDistance)
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = DefaultMaxDistanceFactor * cfg.MinDistance
	}
	if !(cfg.MaxDistance >= cfg.MinDistance) || math.IsInf(cfg.MaxDistance, 0) {
		return cfg, configErrorf(ErrInvalidDistance, "MaxDistance=%v < MinDistance=%v", cfg.MaxDistance, cfg.MinDistance)
	}
	if cfg.MaxTries < 0 {
		return cfg, configErrorf(ErrInvalidTries, "MaxTries=%d", cfg.MaxTries)
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = DefaultMaxTries
	}
	if !(cfg.Bias >= 0 && cfg.Bias <= 1) {
		return cfg, configErrorf(ErrInvalidBias, "Bias=%v", cfg.Bias)
	}
	switch cfg.Variant {
	case Auto:
		if cfg.Density != nil {
			cfg.Variant = Variable
		} else {
			cfg.Variant = Fixed
		}
	case Fixed:
		if cfg.Density != nil {
			return cfg, configErrorf(ErrDensityForbidden, "")
		}
	case Variable:
		if cfg.Density == nil {
			return cfg, configErrorf(ErrDensityRequired, "")
		}
	default:
		return cfg, configErrorf(ErrInvalidVariant, "%d", int(cfg.Variant))
	}
	if cfg.Rand == nil {
		cfg.Rand = rng.FromSeed(0)
	}
	cfg.Shape = append([]float64(nil), cfg.Shape...)
	return cfg, nil
}
