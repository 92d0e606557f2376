package pattern

import (
	"strings"

	"github.com/katalvlaran/convchain/grid"
)

// Variants is the number of symmetry variants per window: 4 rotations × reflection.
const Variants = 8

// Pattern is a square size×size window of booleans in row-major order.
// Patterns are immutable once built.
type Pattern struct {
	size  int
	cells []bool
}

// New builds a size×size pattern whose cell (x,y) is fn(x,y).
// Complexity: O(size²).
func New(size int, fn func(x, y int) bool) *Pattern {
	p := &Pattern{size: size, cells: make([]bool, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p.cells[y*size+x] = fn(x, y)
		}
	}

	return p
}

// Extract cuts the size×size window anchored at (x,y) from g: window cell
// (i,j) is g.At(x+i, y+j). Coordinates wrap, so any anchor is valid.
// Complexity: O(size²).
func Extract(g *grid.Grid, x, y, size int) *Pattern {
	return New(size, func(i, j int) bool { return g.At(x+i, y+j) })
}

// FromIndex decodes index into a size×size pattern using the bit k = y·size+x convention.
// Complexity: O(size²).
func FromIndex(index, size int) *Pattern {
	return New(size, func(x, y int) bool { return index&(1<<(y*size+x)) != 0 })
}

// Size returns the side length.
func (p *Pattern) Size() int { return p.size }

// At returns cell (x,y). Coordinates must lie in [0,size).
func (p *Pattern) At(x, y int) bool { return p.cells[y*p.size+x] }

// Cells returns a copy of the row-major contents.
func (p *Pattern) Cells() []bool {
	out := make([]bool, len(p.cells))
	copy(out, p.cells)

	return out
}

// Rotated returns p rotated by 90°: new(x,y) = old(size-1-y, x).
func (p *Pattern) Rotated() *Pattern {
	return &Pattern{size: p.size, cells: rotateCells(p.cells, p.size)}
}

// Reflected returns p mirrored horizontally: new(x,y) = old(size-1-x, y).
func (p *Pattern) Reflected() *Pattern {
	return &Pattern{size: p.size, cells: reflectCells(p.cells, p.size)}
}

// Symmetries returns the eight dihedral variants of p, identity first.
func (p *Pattern) Symmetries() [Variants]*Pattern {
	var ps [Variants]*Pattern
	ps[0] = p
	ps[1] = ps[0].Rotated()
	ps[2] = ps[1].Rotated()
	ps[3] = ps[2].Rotated()
	ps[4] = ps[0].Reflected()
	ps[5] = ps[1].Reflected()
	ps[6] = ps[2].Reflected()
	ps[7] = ps[3].Reflected()

	return ps
}

// Index encodes p as an integer: bit y·size+x is set when cell (x,y) is true.
// Complexity: O(size²).
func (p *Pattern) Index() int {
	idx := 0
	for k, c := range p.cells {
		if c {
			idx |= 1 << k
		}
	}

	return idx
}

// Equal reports whether p and q have the same size and contents.
func (p *Pattern) Equal(q *Pattern) bool {
	if p.size != q.size {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != q.cells[i] {
			return false
		}
	}

	return true
}

// String renders the pattern one row per line, '#' for true and '.' for false.
func (p *Pattern) String() string {
	var sb strings.Builder
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			if p.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rotateCells and reflectCells are shared by Pattern and SymmetryTables so that both
// agree on the transform definitions.
func rotateCells[T any](cells []T, size int) []T {
	out := make([]T, len(cells))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[y*size+x] = cells[x*size+(size-1-y)]
		}
	}

	return out
}

func reflectCells[T any](cells []T, size int) []T {
	out := make([]T, len(cells))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[y*size+x] = cells[y*size+(size-1-x)]
		}
	}

	return out
}
