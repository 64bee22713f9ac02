// Package neighborhood precomputes the relative grid cells a Poisson-disk
// sampler must inspect around a candidate point.
//
// What:
//
//   - Moore(r, D): the full Chebyshev-radius-r neighbourhood, origin excluded.
//   - Table(D): radius-2 Moore neighbourhood, pruned to the cells that can
//     hold a point within one radius, origin included, sorted closest first.
//
// Complexity:
//
//   - Table: O(D·5^D) once per dimension, then O(1). Sizes are 3, 21 and 117
//     entries for D = 1, 2, 3.
//
// Table results are memoised process-wide and shared; never modify them.
package neighborhood
