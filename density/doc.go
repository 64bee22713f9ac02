// Package density provides ready-made density fields for variable-density
// sampling.
//
// What:
//
//   - ImageField: density from image brightness, (gray/200)^2.7 clamped to
//     [0, 1], with nearest-pixel lookup and optional CatmullRom resampling.
//     Particles runs a full stippling pass and returns coloured points.
//   - NoiseField: normalised fractal simplex noise. NoiseImage renders one
//     octave of it as an inverted grayscale map for ImageField.
//   - Terrain: a domain-warped map of random circles, each carrying its own
//     density; points outside every circle get density 1.
//   - DotLevel: quantises densities into drawing levels.
//
// Every field exposes a Density method whose method value satisfies
// sampler.DensityFunc.
//
// Errors:
//
//   - ErrEmptyImage: NewImageField was given a nil or empty image, or
//     NoiseImage a non-positive size.
//   - ErrBadRadius: GenerateCircles was given an invalid radius range.
package density
