package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/poissondisk/rng"
)

// Point is an ordered tuple of D coordinates.
type Point []float64

// Pt returns the point with the given coordinates.
func Pt(coords ...float64) Point {
	return Point(coords)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that shares no storage with it.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Translate returns p+offset. Both points must have the same dimension.
func (p Point) Translate(offset Point) Point {
	q := make(Point, len(p))
	for i := range p {
		q[i] = p[i] + offset[i]
	}
	return q
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// SquaredDistance returns the squared euclidean distance between two points
// of equal dimension.
//
// Complexity: O(D).
func SquaredDistance(a, b Point) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Distance returns the euclidean distance between two points of equal dimension.
//
// Complexity: O(D).
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// RandomDirection returns a unit vector drawn uniformly from the (dim-1)-sphere.
//
// For dim==2 a single angle in [0, 2π) is drawn; every other dimension goes
// through SampleSphere.
func RandomDirection(dim int, src rng.Source) Point {
	if dim == 2 {
		y, x := math.Sincos(src.Float64() * 2 * math.Pi)
		return Point{x, y}
	}
	return SampleSphere(dim, src)
}

// SampleSphere draws a uniform unit vector in dim dimensions by normalising
// dim standard Gaussian components (Box–Muller, two components per pair of draws).
func SampleSphere(dim int, src rng.Source) Point {
	v := make(Point, dim)
	pairs := dim / 2 * 2

	for {
		var r2 float64
		for i := 0; i < pairs; i += 2 {
			// 1-u lies in (0, 1], keeping the logarithm finite.
			rr := -2 * math.Log(1-src.Float64())
			r := math.Sqrt(rr)
			s, c := math.Sincos(2 * math.Pi * src.Float64())
			r2 += rr
			v[i] = r * c
			v[i+1] = r * s
		}
		if dim%2 == 1 {
			x := math.Sqrt(-2*math.Log(1-src.Float64())) * math.Cos(2*math.Pi*src.Float64())
			v[dim-1] = x
			r2 += x * x
		}
		if r2 > 0 {
			h := 1 / math.Sqrt(r2)
			for i := range v {
				v[i] *= h
			}
			return v
		}
	}
}
