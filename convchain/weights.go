package convchain

import (
	"github.com/katalvlaran/convchain/grid"
	"github.com/katalvlaran/convchain/pattern"
)

// MaxReceptorSize bounds the window side: the table holds 2^(n²) entries,
// so n=5 already needs 2^25 weights.
const MaxReceptorSize = 5

// WeightTable maps a window index (see package pattern) to a strictly
// positive weight. It is immutable once built.
type WeightTable struct {
	receptor int
	floor    float64
	weights  []float64
}

// BuildWeightTable scans every exemplar position, wraps the anchored
// receptorSize×receptorSize window around the borders, and adds 1 to the
// entry of each of its eight symmetry variants. Entries left at zero are
// raised to the floor (DefaultFloor unless WithFloor is given).
//
// Returns ErrNilExemplar or ErrReceptorSize (both wrap ErrInvalidConfig).
//
// Complexity: O(W·H·n²) time, O(2^(n²)) memory.
func BuildWeightTable(exemplar *grid.Grid, receptorSize int, opts ...Option) (*WeightTable, error) {
	if exemplar == nil {
		return nil, ErrNilExemplar
	}
	if receptorSize < 1 || receptorSize > MaxReceptorSize ||
		receptorSize > exemplar.Width || receptorSize > exemplar.Height {
		return nil, ErrReceptorSize
	}
	c := newConfig(opts)

	return buildWeights(exemplar, receptorSize, c.floor), nil
}

// buildWeights slides the window along each exemplar row, keeping one bit
// row per window line: moving one column right shifts every row by one bit
// and pulls in the new column, so each cell is read once per row pass.
func buildWeights(ex *grid.Grid, n int, floor float64) *WeightTable {
	t := &WeightTable{
		receptor: n,
		floor:    floor,
		weights:  make([]float64, 1<<(n*n)),
	}
	tables := pattern.SymmetryTables(n)
	rows := make([]int, n)
	high := n - 1

	for y := 0; y < ex.Height; y++ {
		for j := 0; j < n; j++ {
			rows[j] = 0
			for i := 0; i < n; i++ {
				if ex.At(i, y+j) {
					rows[j] |= 1 << i
				}
			}
		}
		for x := 0; x < ex.Width; x++ {
			if x > 0 {
				for j := 0; j < n; j++ {
					rows[j] >>= 1
					if ex.At(x+high, y+j) {
						rows[j] |= 1 << high
					}
				}
			}
			idx := 0
			for j, r := range rows {
				idx |= r << (j * n)
			}
			for v := range tables {
				t.weights[pattern.Permute(idx, tables[v])] += 1.0
			}
		}
	}

	for k, w := range t.weights {
		if w <= 0 {
			t.weights[k] = floor
		}
	}

	return t
}

// ReceptorSize returns the window side n.
func (t *WeightTable) ReceptorSize() int { return t.receptor }

// Floor returns the weight given to unobserved patterns.
func (t *WeightTable) Floor() float64 { return t.floor }

// Len returns the number of entries, 2^(n²).
func (t *WeightTable) Len() int { return len(t.weights) }

// At returns the weight of window index k.
func (t *WeightTable) At(k int) float64 { return t.weights[k] }

// Weights returns a copy of all entries, indexed by window index.
func (t *WeightTable) Weights() []float64 {
	out := make([]float64, len(t.weights))
	copy(out, t.weights)

	return out
}
