// Package grid lays a D-dimensional array of equal cells over a sample
// domain and maps points to the cells that reference them.
//
// What:
//
//   - Layout: per-axis cell counts, row-major strides, point → cell index,
//     and neighbour-cell iteration over a neighborhood.Table.
//   - Single: at most one point reference per cell (fixed-density sampling).
//   - Multi: a list of point references per cell (variable-density sampling).
//
// Grids store arena indices, never points: the caller owns the point slice
// and indices stay valid as it grows.
//
// Complexity:
//
//   - NewLayout: O(D). NewSingle / NewMulti / Reset: O(cells).
//   - Register: O(D). Query: O(|table|·D) plus the yielded references.
//
// Errors:
//
//   - ErrEmptyExtent: no axes, or an axis length that is not positive.
//   - ErrBadCellSize: cell size not positive and finite.
//   - ErrTooLarge: more than MaxCells cells.
package grid
