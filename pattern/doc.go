// Package pattern implements the neighborhood codec used by the texture
// synthesizer: square windows cut from a toroidal grid, their eight
// symmetry variants, and the integer index that keys the weight table.
//
// Window anchor:
//
//	Extract(g, x, y, n) covers cells (x+i, y+j) for i, j in [0, n). The
//	window extends from (x, y) in the positive direction; it is not centered.
//
// Index:
//
//	Cell (x, y) of a window is bit k = y·n + x, contributing 2^k when true.
//	FromIndex decodes with the same convention, so FromIndex(p.Index(), n)
//	reproduces p bit for bit.
//
// Symmetries:
//
//	Rotated maps new(x, y) = old(n-1-y, x); Reflected maps new(x, y) =
//	old(n-1-x, y). Symmetries returns, in order,
//
//	  p, rot(p), rot²(p), rot³(p), refl(p), refl(rot(p)), refl(rot²(p)), refl(rot³(p))
//
//	Duplicates are expected when p is itself symmetric.
//
// SymmetryTables and Permute apply the same eight transforms directly to an
// index, without building Pattern values; the weight table build relies on it.
package pattern
