package grid_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/grid"
	"github.com/katalvlaran/poissondisk/neighborhood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Layout
//----------------------------------------------------------------------------//

// TestNewLayout_Errors verifies that NewLayout rejects degenerate inputs.
func TestNewLayout_Errors(t *testing.T) {
	cases := []struct {
		name   string
		extent []float64
		cell   float64
		err    error
	}{
		{"NoAxes", nil, 1, grid.ErrEmptyExtent},
		{"ZeroAxis", []float64{10, 0}, 1, grid.ErrEmptyExtent},
		{"NaNAxis", []float64{math.NaN()}, 1, grid.ErrEmptyExtent},
		{"ZeroCell", []float64{10}, 0, grid.ErrBadCellSize},
		{"InfCell", []float64{10}, math.Inf(1), grid.ErrBadCellSize},
		{"Huge", []float64{1e6, 1e6, 1e6}, 0.01, grid.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewLayout(tc.extent, tc.cell)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewLayout(%v, %v) error = %v; want %v", tc.extent, tc.cell, err, tc.err)
			}
		})
	}
}

// TestLayout_ShapeStride checks ceil cell counts and row-major strides.
func TestLayout_ShapeStride(t *testing.T) {
	l, err := grid.NewLayout([]float64{10, 4.5, 3}, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3, 2}, l.Shape)
	assert.Equal(t, []int{6, 2, 1}, l.Stride)
	assert.Equal(t, 42, l.Len())
	assert.Equal(t, 3, l.Dim())
}

// TestLayout_Index checks Index/Cell agree and boundary clamping.
func TestLayout_Index(t *testing.T) {
	l, err := grid.NewLayout([]float64{10, 10}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2*5+1, l.Index(geom.Pt(5.1, 3.9)))
	assert.Equal(t, []int{2, 1}, l.Cell(geom.Pt(5.1, 3.9)))

	// A coordinate equal to the extent maps onto the last cell.
	assert.Equal(t, []int{4, 4}, l.Cell(geom.Pt(10, 10)))
	assert.Equal(t, l.Len()-1, l.Index(geom.Pt(10, 10)))
	assert.Equal(t, 0, l.Index(geom.Pt(-0.0, 0)))
}

// TestLayout_InBounds checks InBounds on a 3×2 layout.
func TestLayout_InBounds(t *testing.T) {
	l, err := grid.NewLayout([]float64{3, 2}, 1)
	require.NoError(t, err)

	for _, c := range [][]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, l.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range [][]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}, {1}} {
		assert.False(t, l.InBounds(c), "InBounds(%v)", c)
	}
}

// TestLayout_NeighborsClipped checks that corner cells see fewer neighbours.
func TestLayout_NeighborsClipped(t *testing.T) {
	l, err := grid.NewLayout([]float64{10, 10}, 1)
	require.NoError(t, err)
	table := neighborhood.Table(2)

	center := slices.Collect(l.Neighbors(geom.Pt(5.5, 5.5), table))
	corner := slices.Collect(l.Neighbors(geom.Pt(0.5, 0.5), table))
	assert.Len(t, center, len(table))
	assert.Less(t, len(corner), len(center))
	assert.Equal(t, l.Index(geom.Pt(5.5, 5.5)), center[0], "origin offset comes first")

	// Early termination must be honoured.
	n := 0
	for range l.Neighbors(geom.Pt(5.5, 5.5), table) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

//----------------------------------------------------------------------------//
// Single / Multi
//----------------------------------------------------------------------------//

// TestSingle_RegisterQuery checks storage, overwrite and reset.
func TestSingle_RegisterQuery(t *testing.T) {
	l, err := grid.NewLayout([]float64{10, 10}, 1)
	require.NoError(t, err)
	g := grid.NewSingle(l)
	table := neighborhood.Table(2)

	_, ok := g.At(l.Index(geom.Pt(3.5, 3.5)))
	assert.False(t, ok, "fresh grid must be empty")

	g.Register(geom.Pt(3.5, 3.5), 0)
	g.Register(geom.Pt(4.5, 3.5), 1)
	g.Register(geom.Pt(9.5, 9.5), 2)

	got, ok := g.At(l.Index(geom.Pt(3.2, 3.7)))
	require.True(t, ok)
	assert.Equal(t, 0, got)

	near := slices.Collect(g.Query(geom.Pt(3.6, 3.6), table))
	assert.Equal(t, []int{0, 1}, near, "closest cell first, far cell excluded")

	g.Register(geom.Pt(3.1, 3.1), 7)
	got, _ = g.At(l.Index(geom.Pt(3.5, 3.5)))
	assert.Equal(t, 7, got, "register overwrites")

	g.Reset()
	assert.Empty(t, slices.Collect(g.Query(geom.Pt(3.6, 3.6), table)))
}

// TestMulti_RegisterQuery checks list cells keep every reference in order.
func TestMulti_RegisterQuery(t *testing.T) {
	l, err := grid.NewLayout([]float64{4, 4, 4}, 2)
	require.NoError(t, err)
	g := grid.NewMulti(l)
	table := neighborhood.Table(3)

	g.Register(geom.Pt(0.1, 0.1, 0.1), 0)
	g.Register(geom.Pt(0.2, 0.3, 0.4), 1)
	g.Register(geom.Pt(3.9, 3.9, 3.9), 2)

	assert.Equal(t, []int{0, 1}, g.At(l.Index(geom.Pt(1, 1, 1))))
	assert.ElementsMatch(t, []int{0, 1, 2}, slices.Collect(g.Query(geom.Pt(1, 1, 1), table)))

	g.Reset()
	assert.Empty(t, g.At(l.Index(geom.Pt(1, 1, 1))))
	assert.Empty(t, slices.Collect(g.Query(geom.Pt(1, 1, 1), table)))
}
