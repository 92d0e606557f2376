// Package grid provides the toroidal boolean grid shared by the exemplar and
// the synthesized field.
//
// What:
//
//   - Grid stores Width×Height booleans in row-major order.
//   - Coordinates wrap modulo the dimension on both axes, so the grid is
//     topologically a torus: At(-1, 0) is the last cell of row 0.
//   - Components finds contiguous regions of equal-valued cells, following
//     the wrap as well.
//
// Why:
//
//   - Texture synthesis samples square windows that cross the border; wrapping
//     removes every boundary special case from the sampler.
//
// Complexity:
//
//   - At, Set, Index, Coordinate: O(1).
//   - FromCells, FromRows, Clone, Equal, Count: O(W×H).
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive, or no rows were given.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: cell count differs from width×height.
package grid
