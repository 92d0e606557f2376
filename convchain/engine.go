package convchain

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/convchain/grid"
)

// Engine synthesizes a square toroidal field whose local statistics follow
// an exemplar, by Metropolis sampling over single-cell flips.
//
// An Engine is single-threaded: it owns its field, weight table and
// generator exclusively. Independent engines may run in parallel freely.
type Engine struct {
	receptor int
	size     int
	temp     float64
	invTemp  float64

	field   *grid.Grid
	weights *WeightTable
	rng     *rand.Rand
	stats   Stats

	// patch holds the (2n-1)² cells around the trial cell.
	patch []bool
}

// New validates the configuration, builds the weight table from exemplar
// and fills an outputSize×outputSize field with uniform random cells.
// The exemplar is only read during New; the engine keeps no reference to it.
//
// Errors (all wrap ErrInvalidConfig):
//   - ErrNilExemplar: exemplar is nil.
//   - ErrOutputSize: outputSize ≤ 0.
//   - ErrTemperature: temperature ≤ 0, NaN or infinite.
//   - ErrReceptorSize: receptorSize outside [1, min(MaxReceptorSize, outputSize, W, H)].
func New(exemplar *grid.Grid, outputSize, receptorSize int, temperature float64, opts ...Option) (*Engine, error) {
	if exemplar == nil {
		return nil, ErrNilExemplar
	}
	if outputSize <= 0 {
		return nil, ErrOutputSize
	}
	if !(temperature > 0) || math.IsInf(temperature, 1) {
		return nil, ErrTemperature
	}
	if receptorSize < 1 || receptorSize > MaxReceptorSize || receptorSize > outputSize ||
		receptorSize > exemplar.Width || receptorSize > exemplar.Height {
		return nil, ErrReceptorSize
	}

	c := newConfig(opts)
	field, err := grid.New(outputSize, outputSize)
	if err != nil {
		return nil, err
	}
	cells := field.Cells()
	for i := range cells {
		cells[i] = c.rng.Intn(2) == 1
	}

	invTemp := 1.0
	if temperature != 1 {
		invTemp = 1 / temperature
	}
	span := 2*receptorSize - 1

	return &Engine{
		receptor: receptorSize,
		size:     outputSize,
		temp:     temperature,
		invTemp:  invTemp,
		field:    field,
		weights:  buildWeights(exemplar, receptorSize, c.floor),
		rng:      c.rng,
		patch:    make([]bool, span*span),
	}, nil
}

// Process runs iterations sweeps of outputSize² trials each and returns the
// field. Each trial picks a cell uniformly at random (with replacement) and
// flips it with the Metropolis acceptance probability. Non-positive
// iterations perform no trials.
//
// The returned grid is the engine's own field: read it, do not write it.
// Complexity: O(iterations · outputSize² · n⁴).
func (e *Engine) Process(iterations int) *grid.Grid {
	if iterations <= 0 {
		return e.field
	}
	cells := e.field.Cells()
	total := len(cells)
	trials := iterations * total

	for t := 0; t < trials; t++ {
		r := e.rng.Intn(total)
		q := e.ratio(r)
		e.stats.Trials++

		// Metropolis: q ≥ 1 is always accepted.
		if q >= 1 {
			cells[r] = !cells[r]
			e.stats.Flips++
			e.stats.Uphill++
			continue
		}
		if acceptance(q, e.invTemp) > e.rng.Float64() {
			cells[r] = !cells[r]
			e.stats.Flips++
		}
	}
	e.stats.Sweeps += int64(iterations)

	return e.field
}

// ratio returns Π weight[after]/weight[before] over the n² windows covering
// cell r, where "after" is the window index with r negated. The field is
// not modified.
//
// The window anchored at (rx-dx, ry-dy), dx, dy ∈ [0,n), holds r at bit
// dy·n+dx, so its post-flip index is the pre-flip index with that bit
// toggled. Every covering window lies inside the (2n-1)² patch centered
// on r, which is read from the field once per trial.
func (e *Engine) ratio(r int) float64 {
	n, s := e.receptor, e.size
	span := 2*n - 1
	cells := e.field.Cells()
	rx, ry := r%s, r/s

	for j := 0; j < span; j++ {
		row := torus(ry-n+1+j, s) * s
		for i := 0; i < span; i++ {
			e.patch[j*span+i] = cells[row+torus(rx-n+1+i, s)]
		}
	}

	w := e.weights.weights
	q := 1.0
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			origin := (n-1-dy)*span + (n - 1 - dx)
			idx := 0
			for j := 0; j < n; j++ {
				base := origin + j*span
				for i := 0; i < n; i++ {
					if e.patch[base+i] {
						idx |= 1 << (j*n + i)
					}
				}
			}
			bit := 1 << (dy*n + dx)
			q *= w[idx^bit] / w[idx]
		}
	}

	return q
}

// acceptance maps a ratio q < 1 to the flip probability q^(1/T).
// The exponent is skipped when 1/T == 1.
func acceptance(q, invTemp float64) float64 {
	if invTemp != 1 {
		return math.Pow(q, invTemp)
	}

	return q
}

// torus wraps v into [0,s). v must lie in (-s, 2s).
func torus(v, s int) int {
	if v < 0 {
		return v + s
	}
	if v >= s {
		return v - s
	}

	return v
}

// Field returns the current field (read-only view, see Process).
func (e *Engine) Field() *grid.Grid { return e.field }

// Weights returns the weight table built from the exemplar.
func (e *Engine) Weights() *WeightTable { return e.weights }

// Stats returns the counters accumulated over every Process call.
func (e *Engine) Stats() Stats { return e.stats }

// ReceptorSize returns the window side n.
func (e *Engine) ReceptorSize() int { return e.receptor }

// OutputSize returns the field side length.
func (e *Engine) OutputSize() int { return e.size }

// Temperature returns the configured temperature.
func (e *Engine) Temperature() float64 { return e.temp }
