// Package extent places 2-D Poisson-disk sampling in world coordinates.
//
// What:
//
//   - Extent: a half-open rectangle [XMin, XMax) × [YMin, YMax) with margin
//     insetting and validation.
//   - Wrapper: a sampler.Sampler running over Extent. Points and density
//     queries are translated by (XMin, YMin); New seeds one random point.
//   - PixelMapper: world ↔ pixel coordinates for a canvas, with optional y
//     flip and an adjustable visible width or height.
//
// Errors:
//
//   - ErrInvalidExtent: non-finite bounds or a non-positive width or height.
//   - Configuration errors from package sampler are returned wrapped.
package extent
