package neighborhood

import (
	"slices"
	"sync"
)

// Offset is a relative grid-cell position, one integer per axis.
type Offset []int

// SquaredNorm returns the squared euclidean length of o.
func (o Offset) SquaredNorm() int {
	n := 0
	for _, v := range o {
		n += v * v
	}
	return n
}

// Moore enumerates the Moore neighbourhood of Chebyshev radius r in dim
// dimensions: every offset with all components in [-r, r], except the origin.
// The result has (2r+1)^dim - 1 entries; axis 0 varies fastest.
//
// Complexity: O(dim·(2r+1)^dim).
func Moore(r, dim int) []Offset {
	if r < 1 || dim < 1 {
		return nil
	}
	size := 2*r + 1
	total := 1
	for i := 0; i < dim; i++ {
		total *= size
	}
	center := (total - 1) / 2

	out := make([]Offset, 0, total-1)
	for index := 0; index < total; index++ {
		if index == center {
			continue
		}
		o := make(Offset, dim)
		rest := index
		for d := 0; d < dim; d++ {
			o[d] = rest%size - r
			rest /= size
		}
		out = append(out, o)
	}
	return out
}

// build computes the neighbourhood table for dim dimensions.
// Cells whose closest possible point is at squared distance ≥ dim cell-units
// from the origin cell are dropped: with a cell edge of radius/√dim they can
// never hold a point closer than the radius.
func build(dim int) []Offset {
	moore := Moore(2, dim)
	table := make([]Offset, 0, len(moore)+1)
	for _, o := range moore {
		gap := 0
		for _, v := range o {
			if v < 0 {
				v = -v
			}
			if v > 1 {
				gap += (v - 1) * (v - 1)
			}
		}
		if gap < dim {
			table = append(table, o)
		}
	}
	table = append(table, make(Offset, dim))

	// Closest cells first, so a violating neighbour is usually found early.
	slices.SortStableFunc(table, func(a, b Offset) int {
		return a.SquaredNorm() - b.SquaredNorm()
	})
	return table
}

var (
	cacheMu sync.Mutex
	cache   = map[int][]Offset{}
)

// Table returns the cached neighbourhood for dim dimensions, ordered by
// ascending distance from the origin cell and starting with the origin itself.
//
// The table is computed once per dimension and shared by every caller: it
// must be treated as read-only. Table is safe for concurrent use.
//
// Complexity: O(dim·5^dim) on first use, O(1) afterwards.
func Table(dim int) []Offset {
	if dim < 1 {
		return nil
	}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if t, ok := cache[dim]; ok {
		return t
	}
	t := build(dim)
	cache[dim] = t
	return t
}
