package nnstats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/poissondisk/geom"
)

// ErrTooFewPoints indicates fewer than two points; nearest neighbours are undefined.
var ErrTooFewPoints = errors.New("nnstats: at least two points are required")

// Summary describes the nearest-neighbour distance distribution of a point set.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P05    float64
	Median float64
	P95    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.4g p05=%.4g median=%.4g mean=%.4g±%.3g p95=%.4g max=%.4g",
		s.Count, s.Min, s.P05, s.Median, s.Mean, s.StdDev, s.P95, s.Max)
}

// NearestDistances returns, for every point, the euclidean distance to its
// closest other point. All points must share one dimension.
//
// Complexity: O(n log n) expected.
func NearestDistances(pts []geom.Point) ([]float64, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}

	kp := make(kdtree.Points, len(pts))
	for i, p := range pts {
		kp[i] = kdtree.Point(p)
	}
	tree := kdtree.New(kp, false)

	out := make([]float64, len(pts))
	for i, p := range pts {
		// NearestSet leaves the keeper sorted by ascending distance, and the
		// query point itself (distance 0) is one of the two kept entries.
		k := kdtree.NewNKeeper(2)
		tree.NearestSet(k, kdtree.Point(p))
		out[i] = math.Sqrt(k.Heap[len(k.Heap)-1].Dist)
	}
	return out, nil
}

// Summarize computes the nearest-neighbour Summary of pts.
func Summarize(pts []geom.Point) (Summary, error) {
	d, err := NearestDistances(pts)
	if err != nil {
		return Summary{}, err
	}
	return SummarizeDistances(d), nil
}

// SummarizeDistances summarises precomputed distances. d must hold at least
// two values; it is not modified.
func SummarizeDistances(d []float64) Summary {
	sorted := slices.Clone(d)
	slices.Sort(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	return Summary{
		Count:  len(sorted),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   mean,
		StdDev: std,
		P05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
