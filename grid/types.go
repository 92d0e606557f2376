package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates a cell buffer whose length is not width×height.
	ErrDimensionMismatch = errors.New("grid: cell count does not match width×height")

	// ErrTooLarge indicates dimensions whose cell count overflows int.
	ErrTooLarge = errors.New("grid: width×height overflows")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Grid is a toroidal boolean grid. Cells are stored row-major; cell (x,y)
// lives at index y*Width + x. Every accessor wraps its coordinates, so no
// coordinate is ever out of bounds.
//
// A Grid is not safe for concurrent mutation. The synthesizer owns its field
// exclusively; exemplars are treated as read-only once built.
type Grid struct {
	Width, Height int
	cells         []bool
}

// offsets returns the neighbor offsets for conn.
func offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
