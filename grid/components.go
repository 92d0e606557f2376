package grid

// Components finds all contiguous regions of cells equal to value, according
// to conn connectivity. Neighbors wrap around the borders, so a region that
// touches the right edge continues on the left edge.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(value bool, conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	offs := offsets(conn)

	for i0, c := range g.cells {
		if c != value || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offs {
				vi := g.Index(ux+d[0], uy+d[1])
				if seen[vi] || g.cells[vi] != value {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
