// Package sampler_test holds runnable examples for the sampler package.
// Outputs avoid printing coordinates so they stay stable across platforms.
package sampler_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/rng"
	"github.com/katalvlaran/poissondisk/sampler"
)

// ExampleSampler_Fill fills a domain that only has room for the seed point.
func ExampleSampler_Fill() {
	cfg := sampler.DefaultConfig([]float64{1, 1}, 2)
	cfg.Rand = rng.FromSeed(42)

	s, err := sampler.New(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.State())
	pts := s.Fill()
	fmt.Println(len(pts), s.State())
	// Output:
	// empty
	// 1 exhausted
}

// ExampleSampler_AddPoint shows soft rejection of malformed points.
func ExampleSampler_AddPoint() {
	s, _ := sampler.New(sampler.DefaultConfig([]float64{10, 10}, 1))

	_, ok := s.AddPoint(geom.Pt(-1, 5))
	fmt.Println("outside:", ok)
	_, ok = s.AddPoint(geom.Pt(5, 5, 5))
	fmt.Println("wrong dimension:", ok)
	p, ok := s.AddPoint(geom.Pt(5, 5))
	fmt.Println("accepted:", ok, p)
	// Output:
	// outside: false
	// wrong dimension: false
	// accepted: true (5, 5)
}

// ExampleNew_variable builds a variable-density sampler and shows how
// configuration errors are classified.
func ExampleNew_variable() {
	_, err := sampler.New(sampler.Config{
		Shape:       []float64{100, 100},
		MinDistance: 1,
		Variant:     sampler.Variable,
	})
	fmt.Println(errors.Is(err, sampler.ErrConfig), errors.Is(err, sampler.ErrDensityRequired))

	s, err := sampler.New(sampler.Config{
		Shape:       []float64{100, 100},
		MinDistance: 1,
		MaxDistance: 4,
		Density:     func(p geom.Point) float64 { return p[0] / 100 },
		Rand:        rng.FromSeed(7),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s.AddPoint(geom.Pt(50, 50))
	d, ok := s.LastDensity()
	fmt.Println(s.Variant(), d, ok)
	// Output:
	// true true
	// variable 0.5 true
}
