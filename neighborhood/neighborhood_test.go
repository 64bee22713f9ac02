package neighborhood_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/poissondisk/neighborhood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoore_Size verifies (2r+1)^D - 1 entries and the exclusion of the origin.
func TestMoore_Size(t *testing.T) {
	cases := []struct {
		r, dim, want int
	}{
		{1, 1, 2},
		{1, 2, 8},
		{2, 2, 24},
		{2, 3, 124},
	}
	for _, tc := range cases {
		got := neighborhood.Moore(tc.r, tc.dim)
		assert.Len(t, got, tc.want, "Moore(%d,%d)", tc.r, tc.dim)
		for _, o := range got {
			assert.NotZero(t, o.SquaredNorm(), "origin must be excluded")
		}
	}
	assert.Nil(t, neighborhood.Moore(0, 2))
	assert.Nil(t, neighborhood.Moore(1, 0))
}

// TestMoore_Order checks axis 0 varies fastest.
func TestMoore_Order(t *testing.T) {
	got := neighborhood.Moore(1, 2)
	want := []neighborhood.Offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	assert.Equal(t, want, got)
}

// TestTable_Sizes checks the pruned sizes for D = 1..3.
func TestTable_Sizes(t *testing.T) {
	assert.Len(t, neighborhood.Table(1), 3)
	assert.Len(t, neighborhood.Table(2), 21)
	assert.Len(t, neighborhood.Table(3), 117)
	assert.Nil(t, neighborhood.Table(0))
}

// TestTable_Sorted checks the origin comes first and norms never decrease.
func TestTable_Sorted(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		table := neighborhood.Table(dim)
		require.NotEmpty(t, table)
		assert.Zero(t, table[0].SquaredNorm(), "dim=%d: first entry must be the origin", dim)
		for i := 1; i < len(table); i++ {
			assert.LessOrEqual(t, table[i-1].SquaredNorm(), table[i].SquaredNorm(), "dim=%d index=%d", dim, i)
		}
	}
	assert.Equal(t, []neighborhood.Offset{{0}, {-1}, {1}}, neighborhood.Table(1))
}

// TestTable_NoCorners checks that diagonal radius-2 corners are pruned in 2-D.
func TestTable_NoCorners(t *testing.T) {
	for _, o := range neighborhood.Table(2) {
		corner := (o[0] == 2 || o[0] == -2) && (o[1] == 2 || o[1] == -2)
		assert.False(t, corner, "corner %v must be pruned", o)
	}
}

// TestTable_Cached checks every caller shares the same backing table.
func TestTable_Cached(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([][]neighborhood.Offset, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = neighborhood.Table(3)
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(tables); i++ {
		assert.Same(t, &tables[0][0], &tables[i][0])
	}
}
