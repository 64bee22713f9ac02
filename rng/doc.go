// Package rng provides the random-source capability injected into samplers.
//
// What:
//
//   - Source: anything with Float64() in [0, 1). *math/rand.Rand fits.
//   - Func: adapts a closure (e.g. a test sequence) to Source.
//   - FromSeed / Derive / Streams: deterministic construction of streams,
//     including independent per-worker streams for parallel sampling.
//
// Why:
//
//	Samplers are stateful and single-threaded. Reproducible point sets need
//	an explicit, seedable stream per sampler rather than a global source.
//
// Streams:
//
//	Streams(seed, n) gives run i a generator that depends only on (seed, i),
//	so adding runs never changes earlier ones. Derive(src, id) splits a side
//	stream off a running generator, e.g. to build a density field without
//	shifting the sampler's own draws. A *rand.Rand belongs to one goroutine.
package rng
