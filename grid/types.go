package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyExtent indicates the extent has no axes or a non-positive axis length.
	ErrEmptyExtent = errors.New("grid: extent must have at least one positive axis")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("grid: cell size must be positive and finite")
	// ErrTooLarge indicates the cell count exceeds MaxCells.
	ErrTooLarge = errors.New("grid: too many cells")
)

// MaxCells bounds the number of cells a single grid may allocate.
const MaxCells = 1 << 28

// Layout describes a D-dimensional array of equal cubic cells laid over
// [0, extent[0]) × … × [0, extent[D-1]). It is immutable once built.
// Shape[i] is the number of cells along axis i; Stride holds the row-major
// multipliers used to flatten a cell coordinate (the last axis is contiguous).
type Layout struct {
	Shape    []int
	Stride   []int
	CellSize float64
	cells    int
}

// Single is an acceleration grid where each cell references at most one
// point. Registering into an occupied cell overwrites it, which is only
// sound when the cell size guarantees single occupancy.
type Single struct {
	Layout
	data []uint32 // arena index + 1; 0 marks an empty cell
}

// Multi is an acceleration grid where each cell holds a list of point
// references.
type Multi struct {
	Layout
	data [][]int
}
