package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/convchain/grid"
)

// BenchmarkComponents measures Components on a random 512×512 binary grid.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	cells := make([]bool, n*n)
	for i := range cells {
		cells[i] = rng.Intn(2) == 1
	}
	g, err := grid.FromCells(cells, n, n)
	if err != nil {
		b.Fatalf("setup FromCells failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(true, grid.Conn4)
	}
}
