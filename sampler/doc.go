// Package sampler generates Poisson-disk point sets in D-dimensional boxes.
//
// What:
//
//	A Sampler grows a set of points in [0, Shape[0]) × … × [0, Shape[D-1])
//	so that no two points are closer than a required separation, while new
//	points stay close to existing ones and the set fills the domain densely.
//	Generation is incremental (Next, NextN) or one-shot (Fill).
//
// Variants:
//
//   - Fixed: constant separation MinDistance. Candidates are drawn at radius
//     uniform in [MinDistance, MaxDistance] around the current point.
//   - Variable: a DensityFunc maps each point to d ∈ [0, 1]; separation grows
//     from MinDistance (d=0) to MaxDistance (d=1). For a pair of points with
//     densities lo ≤ hi the required separation is
//     MinDistance + (MaxDistance-MinDistance)·(lo + (hi-lo)·Bias).
//
// Algorithm:
//
//  1. Seed with AddRandomPoint or AddPoint (no distance check).
//  2. Dequeue the oldest active point, unless one is already being expanded.
//  3. Try up to MaxTries candidates at a random direction and radius. Reject
//     candidates outside the domain and those violating the separation rule
//     against neighbours found through the acceleration grid.
//  4. Accept the first valid candidate (it becomes active), or retire the
//     current point and continue with the next active one.
//  5. With no active point left the sampler is exhausted.
//
// Determinism:
//
//	All randomness comes from Config.Rand. Same seed and config ⇒ identical
//	output. A nil Rand means rng.FromSeed(0).
//
// Complexity:
//
//   - New: O(cells) to allocate the grid.
//   - Next: O(MaxTries · |table| · k · D) where |table| is 3, 21, 117 for
//     D = 1, 2, 3 and k is the occupancy per cell (≤ 1 for Fixed).
//   - Fill: O(N) calls to Next for N produced points.
//
// Errors:
//
//   - New returns errors matching ErrConfig plus a specific sentinel
//     (ErrInvalidShape, ErrInvalidDistance, ErrInvalidTries, ErrInvalidBias,
//     ErrDensityRequired, ErrDensityForbidden, ErrInvalidVariant, ErrGridTooLarge).
//   - PointsWithDensity returns ErrUnsupported on a fixed-density sampler.
//   - AddPoint and Next never fail; they report (nil, false).
//
// Concurrency:
//
//	A Sampler is single-threaded. Build one per goroutine, each with its own
//	rng stream (see rng.Streams).
package sampler
