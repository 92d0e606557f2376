package pattern

// SymmetryTables returns, for each of the eight variants in Symmetries order,
// the source cell of every destination cell: variant cell d equals original
// cell tables[v][d].
// Complexity: O(size²) time and memory.
func SymmetryTables(size int) [Variants][]int {
	id := make([]int, size*size)
	for i := range id {
		id[i] = i
	}

	var ts [Variants][]int
	ts[0] = id
	ts[1] = rotateCells(ts[0], size)
	ts[2] = rotateCells(ts[1], size)
	ts[3] = rotateCells(ts[2], size)
	ts[4] = reflectCells(ts[0], size)
	ts[5] = reflectCells(ts[1], size)
	ts[6] = reflectCells(ts[2], size)
	ts[7] = reflectCells(ts[3], size)

	return ts
}

// Permute returns the index of the variant described by table, given the
// index of the original window.
// Complexity: O(len(table)).
func Permute(index int, table []int) int {
	out := 0
	for d, s := range table {
		if index&(1<<s) != 0 {
			out |= 1 << d
		}
	}

	return out
}
