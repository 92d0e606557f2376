package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convchain/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromCells_DimensionMismatch checks the flat-buffer constructor's length validation.
func TestFromCells_DimensionMismatch(t *testing.T) {
	_, err := grid.FromCells(make([]bool, 5), 2, 3)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.FromCells(nil, 0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.FromCells(make([]bool, 6), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
}

// TestDimensions_Overflow checks that a product wrapping around int is rejected
// instead of yielding a grid without cells.
func TestDimensions_Overflow(t *testing.T) {
	side := math.MaxInt/2 + 1 // side² wraps to 0

	_, err := grid.FromCells(nil, side, side)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.FromCells(nil, math.MaxInt, 2)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.New(side, side)
	assert.ErrorIs(t, err, grid.ErrTooLarge)
}

// TestFromCells_DeepCopy ensures the caller's buffer is not aliased.
func TestFromCells_DeepCopy(t *testing.T) {
	buf := []bool{true, false, false, true}
	g, err := grid.FromCells(buf, 2, 2)
	require.NoError(t, err)

	buf[1] = true
	assert.False(t, g.At(1, 0), "grid must not observe later writes to the source buffer")
}

//----------------------------------------------------------------------------//
// Toroidal Access Tests
//----------------------------------------------------------------------------//

// TestAt_Wraps verifies that coordinates wrap on both axes for any sign.
func TestAt_Wraps(t *testing.T) {
	g, err := grid.Parse(
		"#..",
		"..#",
	)
	require.NoError(t, err)

	assert.True(t, g.At(0, 0))
	assert.True(t, g.At(3, 0), "x wraps forward")
	assert.True(t, g.At(-1, 1), "x wraps backward")
	assert.True(t, g.At(2, -1), "y wraps backward")
	assert.True(t, g.At(-3, 4), "both wrap")
	assert.False(t, g.At(-1, 0))
	assert.Equal(t, g.Index(2, 1), g.Index(-1, -1))
}

// TestInBounds checks InBounds on a 3×2 grid, which ignores wrapping.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestCoordinate_RoundTrip checks Index and Coordinate are inverse on in-bounds cells.
func TestCoordinate_RoundTrip(t *testing.T) {
	g, err := grid.New(5, 3)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		assert.Equal(t, i, g.Index(x, y))
	}
}

// TestSetFlipCloneEqual covers the mutation helpers and deep copy semantics.
func TestSetFlipCloneEqual(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	g.Set(-1, -1, true) // wraps to (1,1)
	assert.True(t, g.At(1, 1))
	assert.Equal(t, 1, g.Count())

	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Flip(0)
	assert.False(t, g.Equal(c), "clone must not share storage")
	assert.False(t, g.At(0, 0))
	assert.Equal(t, "..\n.#\n", g.String())
}
