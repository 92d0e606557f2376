package convchain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convchain/convchain"
	"github.com/katalvlaran/convchain/grid"
	"github.com/katalvlaran/convchain/pattern"
)

const (
	// seedDet is the fixed seed used across tests.
	seedDet = int64(42)

	// epsLog is the tolerance on log-ratios between the incremental and brute-force paths.
	epsLog = 1e-9
)

// checkerExemplar is the 4×4 exemplar of the original benchmarks.
func checkerExemplar(t testing.TB) *grid.Grid {
	g, err := grid.Parse(
		"####",
		"#...",
		"#.#.",
		"#...",
	)
	require.NoError(t, err)

	return g
}

// bruteWeights rebuilds the table by materializing every window and all
// of its symmetry variants.
func bruteWeights(ex *grid.Grid, n int, floor float64) []float64 {
	w := make([]float64, 1<<(n*n))
	for y := 0; y < ex.Height; y++ {
		for x := 0; x < ex.Width; x++ {
			for _, v := range pattern.Extract(ex, x, y, n).Symmetries() {
				w[v.Index()] += 1.0
			}
		}
	}
	for k := range w {
		if w[k] <= 0 {
			w[k] = floor
		}
	}

	return w
}

// logEnergy sums log weights over every window of the field. The field
// energy is the product of all window weights; logs avoid underflow.
func logEnergy(field *grid.Grid, t *convchain.WeightTable) float64 {
	n := t.ReceptorSize()
	e := 0.0
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			e += math.Log(t.At(pattern.Extract(field, x, y, n).Index()))
		}
	}

	return e
}

// bruteLogRatio flips cell r, measures the whole-field energy change and
// flips it back. It is the slow reference for the engine's incremental ratio.
func bruteLogRatio(field *grid.Grid, t *convchain.WeightTable, r int) float64 {
	before := logEnergy(field, t)
	field.Flip(r)
	after := logEnergy(field, t)
	field.Flip(r)

	return after - before
}
