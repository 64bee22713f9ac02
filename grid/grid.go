package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/neighborhood"
)

// NewLayout builds the cell layout covering extent with cells of edge cellSize.
// Each axis gets ceil(extent[i]/cellSize) cells.
// Returns ErrEmptyExtent, ErrBadCellSize or ErrTooLarge.
// Complexity: O(D).
func NewLayout(extent []float64, cellSize float64) (Layout, error) {
	if len(extent) == 0 {
		return Layout{}, ErrEmptyExtent
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return Layout{}, fmt.Errorf("cell size %v: %w", cellSize, ErrBadCellSize)
	}
	dim := len(extent)
	shape := make([]int, dim)
	for i, e := range extent {
		if !(e > 0) || math.IsInf(e, 0) {
			return Layout{}, fmt.Errorf("axis %d length %v: %w", i, e, ErrEmptyExtent)
		}
		n := math.Ceil(e / cellSize)
		if n > MaxCells {
			return Layout{}, fmt.Errorf("axis %d needs %.0f cells: %w", i, n, ErrTooLarge)
		}
		shape[i] = int(n)
	}
	// Row-major: the last axis is contiguous.
	stride := make([]int, dim)
	total := 1
	for d := dim - 1; d >= 0; d-- {
		stride[d] = total
		if total > MaxCells/shape[d] {
			return Layout{}, fmt.Errorf("%d axes: %w", dim, ErrTooLarge)
		}
		total *= shape[d]
	}
	return Layout{Shape: shape, Stride: stride, CellSize: cellSize, cells: total}, nil
}

// Len returns the total number of cells.
func (l Layout) Len() int { return l.cells }

// Dim returns the number of axes.
func (l Layout) Dim() int { return len(l.Shape) }

// InBounds reports whether the cell coordinate lies within the grid.
// Complexity: O(D).
func (l Layout) InBounds(cell []int) bool {
	if len(cell) != len(l.Shape) {
		return false
	}
	for d, c := range cell {
		if c < 0 || c >= l.Shape[d] {
			return false
		}
	}
	return true
}

// axisCell returns the cell coordinate of value v along axis d, clamped to the
// grid so that points lying exactly on the far boundary map onto the last cell.
func (l Layout) axisCell(v float64, d int) int {
	c := int(math.Floor(v / l.CellSize))
	if c < 0 {
		return 0
	}
	if c >= l.Shape[d] {
		return l.Shape[d] - 1
	}
	return c
}

// Cell returns the cell coordinate containing p.
// Complexity: O(D).
func (l Layout) Cell(p geom.Point) []int {
	cell := make([]int, len(l.Shape))
	for d := range cell {
		cell[d] = l.axisCell(p[d], d)
	}
	return cell
}

// Index returns the row-major index of the cell containing p.
// Complexity: O(D).
func (l Layout) Index(p geom.Point) int {
	idx := 0
	for d, s := range l.Stride {
		idx += l.axisCell(p[d], d) * s
	}
	return idx
}

// Neighbors yields the row-major index of every in-bounds cell reached by
// applying offsets to the cell containing p, in offsets order. Offsets that
// leave the grid are skipped, so boundary cells have fewer neighbours.
// Complexity: O(len(offsets)·D).
func (l Layout) Neighbors(p geom.Point, offsets []neighborhood.Offset) iter.Seq[int] {
	return func(yield func(int) bool) {
		base := l.Cell(p)
		cell := make([]int, len(base))
		for _, o := range offsets {
			for d := range cell {
				cell[d] = base[d] + o[d]
			}
			if !l.InBounds(cell) {
				continue
			}
			idx := 0
			for d, s := range l.Stride {
				idx += cell[d] * s
			}
			if !yield(idx) {
				return
			}
		}
	}
}

// NewSingle allocates an empty single-occupancy grid over l.
// Complexity: O(cells).
func NewSingle(l Layout) *Single {
	return &Single{Layout: l, data: make([]uint32, l.cells)}
}

// Register stores index as the occupant of the cell containing p.
// Complexity: O(D).
func (g *Single) Register(p geom.Point, index int) {
	g.data[g.Index(p)] = uint32(index) + 1
}

// At returns the occupant of the cell at row-major index cell.
// Complexity: O(1).
func (g *Single) At(cell int) (int, bool) {
	v := g.data[cell]
	if v == 0 {
		return 0, false
	}
	return int(v - 1), true
}

// Query yields the indices registered in the neighbouring cells of p.
// Complexity: O(len(offsets)·D).
func (g *Single) Query(p geom.Point, offsets []neighborhood.Offset) iter.Seq[int] {
	return func(yield func(int) bool) {
		for cell := range g.Neighbors(p, offsets) {
			if idx, ok := g.At(cell); ok && !yield(idx) {
				return
			}
		}
	}
}

// Reset empties every cell, keeping the allocation.
// Complexity: O(cells).
func (g *Single) Reset() {
	clear(g.data)
}

// NewMulti allocates an empty multi-occupancy grid over l.
// Complexity: O(cells).
func NewMulti(l Layout) *Multi {
	return &Multi{Layout: l, data: make([][]int, l.cells)}
}

// Register appends index to the cell containing p.
// Complexity: amortised O(D).
func (g *Multi) Register(p geom.Point, index int) {
	cell := g.Index(p)
	g.data[cell] = append(g.data[cell], index)
}

// At returns the indices registered in the cell at row-major index cell.
// The returned slice is owned by the grid.
// Complexity: O(1).
func (g *Multi) At(cell int) []int {
	return g.data[cell]
}

// Query yields the indices registered in the neighbouring cells of p, cell
// by cell in offsets order and in registration order within a cell.
// Complexity: O(len(offsets)·D + k) for k yielded indices.
func (g *Multi) Query(p geom.Point, offsets []neighborhood.Offset) iter.Seq[int] {
	return func(yield func(int) bool) {
		for cell := range g.Neighbors(p, offsets) {
			for _, idx := range g.At(cell) {
				if !yield(idx) {
					return
				}
			}
		}
	}
}

// Reset empties every cell, keeping per-cell capacity.
// Complexity: O(cells).
func (g *Multi) Reset() {
	for i := range g.data {
		g.data[i] = g.data[i][:0]
	}
}
