package grid

import (
	"fmt"
	"math"
	"strings"
)

// New returns a Width×Height grid with every cell false.
// Returns ErrEmptyGrid if either dimension is not positive and ErrTooLarge
// if width×height overflows int.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if overflows(width, height) {
		return nil, ErrTooLarge
	}

	return &Grid{Width: width, Height: height, cells: make([]bool, width*height)}, nil
}

// FromCells builds a grid from a flat row-major buffer. The buffer is
// deep-copied so later changes by the caller do not leak into the grid.
// Returns ErrEmptyGrid for non-positive dimensions and ErrDimensionMismatch
// if len(cells) != width*height.
// Complexity: O(W×H).
func FromCells(cells []bool, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if overflows(width, height) || len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %d×%d", ErrDimensionMismatch, len(cells), width, height)
	}
	g := &Grid{Width: width, Height: height, cells: make([]bool, len(cells))}
	copy(g.cells, cells)

	return g, nil
}

// overflows reports whether width×height exceeds math.MaxInt.
// Both arguments must be positive.
func overflows(width, height int) bool {
	return width > math.MaxInt/height
}

// FromRows builds a grid from a non-empty rectangular 2D slice, rows[y][x].
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, cells: make([]bool, 0, w*h)}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Parse builds a grid from text rows: '#', '1', 'X' and 'x' are true, any
// other rune is false. Handy for tests and small exemplars.
func Parse(rows ...string) (*Grid, error) {
	bits := make([][]bool, len(rows))
	for y, row := range rows {
		rs := []rune(row)
		bits[y] = make([]bool, len(rs))
		for x, r := range rs {
			bits[y][x] = r == '#' || r == '1' || r == 'X' || r == 'x'
		}
	}

	return FromRows(bits)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies inside the grid without wrapping.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index after toroidal wrap.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return wrap(y, g.Height)*g.Width + wrap(x, g.Width)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the cell at (x,y), wrapping both coordinates.
func (g *Grid) At(x, y int) bool {
	return g.cells[g.Index(x, y)]
}

// Set stores v at (x,y), wrapping both coordinates.
func (g *Grid) Set(x, y int, v bool) {
	g.cells[g.Index(x, y)] = v
}

// Flip negates the cell at row-major index idx.
func (g *Grid) Flip(idx int) {
	g.cells[idx] = !g.cells[idx]
}

// Cells returns the backing row-major buffer. It is a view, not a copy:
// only the owner of the grid should write through it.
func (g *Grid) Cells() []bool { return g.cells }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// String renders the grid one row per line, '#' for true and '.' for false.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// wrap reduces v into [0,n) for any sign of v.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
