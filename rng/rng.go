package rng

import "math/rand"

// Source yields uniformly distributed values in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Func adapts a plain function to Source.
type Func func() float64

// Float64 calls f.
func (f Func) Float64() float64 { return f() }

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer, so neighbouring stream ids give unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(splitMix64(uint64(parent) ^ (stream + golden64)))
}

// golden64 is the SplitMix64 increment, 2^64 divided by the golden ratio.
const golden64 = 0x9e3779b97f4a7c15

// splitMix64 advances state z by one SplitMix64 step and returns the output.
func splitMix64(z uint64) uint64 {
	z += golden64
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Derive creates an independent deterministic stream from base and a stream id.
// If base==nil, defaultSeed is the parent. Otherwise base.Int63() is consumed once,
// so deriving the same stream id twice from one base yields different children.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Streams returns n independent streams derived from seed, one per worker.
// Stream i depends only on (seed, i), never on n.
//
// Complexity: O(n).
func Streams(seed int64, n int) []*rand.Rand {
	if n <= 0 {
		return nil
	}
	if seed == 0 {
		seed = defaultSeed
	}
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(DeriveSeed(seed, uint64(i))))
	}
	return out
}
