// Package geom holds the D-dimensional point type and the few geometric
// helpers the sampler needs: squared and euclidean distance, and uniform
// direction sampling on the unit sphere.
package geom
