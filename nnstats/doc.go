// Package nnstats measures the spacing of a point set through its
// nearest-neighbour distances, using a k-d tree for the queries.
//
// It is the quality check for sampler output: a fixed-density fill has every
// distance in [MinDistance, MaxDistance], and a variable-density fill shows
// its spread between the two.
package nnstats
