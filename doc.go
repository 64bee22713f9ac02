// Package poissondisk is a grid-accelerated Poisson-disk sampler for
// D-dimensional boxes, with fixed or density-driven spacing.
//
// 🚀 What is poissondisk?
//
//	A small, deterministic library that grows well-spaced point sets:
//		• Fixed density: every pair at least MinDistance apart
//		• Variable density: spacing follows a caller-supplied field in [0, 1]
//		• Incremental: Next / NextN for per-frame generation, Fill for one shot
//		• Any dimension: uniform grid + precomputed neighbour tables
//		• Reproducible: every random draw comes from an injected source
//
// ✨ Why choose poissondisk?
//
//   - Pure Go: no cgo
//   - Explicit state: arena indices, a FIFO queue and a resumable cursor
//   - Ready-made fields: image brightness, fractal noise, warped terrain
//
// Under the hood, everything is organized in subpackages:
//
//	sampler/      — Sampler, Config, density policies, errors, logging
//	grid/         — cell layout, single- and multi-occupancy grids
//	neighborhood/ — pruned Moore offset tables per dimension
//	geom/         — Point, distances, random unit directions
//	rng/          — deterministic sources and per-worker streams
//	extent/       — world-rectangle wrapper and pixel mapping
//	density/      — image, noise and terrain density fields
//	nnstats/      — nearest-neighbour spacing statistics
//	cmd/pdsample  — command-line generator (CSV / JSON)
//
// Quick example:
//
//	cfg := sampler.DefaultConfig([]float64{100, 100}, 4)
//	cfg.Rand = rng.FromSeed(42)
//	s, err := sampler.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	points := s.Fill()
package poissondisk
