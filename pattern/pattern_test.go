package pattern_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convchain/grid"
	"github.com/katalvlaran/convchain/pattern"
)

// diagonal is the 4×4 anti-diagonal fixture: cell (x,y) is set when (x+y)%4 == 0.
func diagonal() *pattern.Pattern {
	return pattern.New(4, func(x, y int) bool { return (x+y)%4 == 0 })
}

// randomPattern draws a size×size pattern from rng.
func randomPattern(rng *rand.Rand, size int) *pattern.Pattern {
	return pattern.New(size, func(_, _ int) bool { return rng.Intn(2) == 1 })
}

func TestNew_RowMajor(t *testing.T) {
	assert.Equal(t, []bool{
		true, false, false, false,
		false, false, false, true,
		false, false, true, false,
		false, true, false, false,
	}, diagonal().Cells())
}

func TestRotated(t *testing.T) {
	assert.Equal(t, []bool{
		false, true, false, false,
		false, false, true, false,
		false, false, false, true,
		true, false, false, false,
	}, diagonal().Rotated().Cells())
}

func TestReflected(t *testing.T) {
	assert.Equal(t, []bool{
		false, false, false, true,
		true, false, false, false,
		false, true, false, false,
		false, false, true, false,
	}, diagonal().Reflected().Cells())
}

// TestRotated_FourTimesIsIdentity checks rot⁴ = id on random patterns of several sizes.
func TestRotated_FourTimesIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for size := 1; size <= 5; size++ {
		for i := 0; i < 20; i++ {
			p := randomPattern(rng, size)
			got := p.Rotated().Rotated().Rotated().Rotated()
			require.True(t, p.Equal(got), "size=%d\n%s\n%s", size, p, got)
		}
	}
}

// TestReflected_TwiceIsIdentity checks refl² = id on random patterns.
func TestReflected_TwiceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for size := 1; size <= 5; size++ {
		for i := 0; i < 20; i++ {
			p := randomPattern(rng, size)
			require.True(t, p.Equal(p.Reflected().Reflected()), "size=%d\n%s", size, p)
		}
	}
}

// TestIndex_RoundTrip decodes every index of small sizes and re-encodes it.
// A round trip over the full range also proves Index is injective.
func TestIndex_RoundTrip(t *testing.T) {
	for size := 1; size <= 3; size++ {
		n := 1 << (size * size)
		for k := 0; k < n; k++ {
			p := pattern.FromIndex(k, size)
			require.Equal(t, k, p.Index(), "size=%d", size)
			require.True(t, p.Equal(pattern.FromIndex(p.Index(), size)))
		}
	}
}

// TestIndex_BitOrder pins bit k = y·size+x.
func TestIndex_BitOrder(t *testing.T) {
	p := pattern.New(3, func(x, y int) bool { return x == 2 && y == 1 })
	assert.Equal(t, 1<<5, p.Index())

	q := pattern.FromIndex(1, 2)
	assert.True(t, q.At(0, 0))
	assert.False(t, q.At(1, 1))
}

// TestExtract_AnchorAndWrap verifies the positive-direction anchor and toroidal reads.
func TestExtract_AnchorAndWrap(t *testing.T) {
	g, err := grid.Parse(
		"#..",
		".#.",
		"..#",
	)
	require.NoError(t, err)

	p := pattern.Extract(g, 0, 0, 2)
	assert.Equal(t, []bool{true, false, false, true}, p.Cells())

	// Anchored at (2,2): covers (2,2),(0,2),(2,0),(0,0) after wrap.
	w := pattern.Extract(g, 2, 2, 2)
	assert.Equal(t, []bool{true, false, false, true}, w.Cells())

	// Negative anchors wrap as well.
	assert.True(t, w.Equal(pattern.Extract(g, -1, -1, 2)))
}

// TestSymmetries_Order checks the variant layout and the expected duplicates
// of a fully symmetric pattern.
func TestSymmetries_Order(t *testing.T) {
	p := diagonal()
	vs := p.Symmetries()

	assert.Same(t, p, vs[0])
	assert.True(t, vs[1].Equal(p.Rotated()))
	assert.True(t, vs[6].Equal(p.Rotated().Rotated().Reflected()))

	full := pattern.New(3, func(_, _ int) bool { return true })
	for _, v := range full.Symmetries() {
		assert.Equal(t, full.Index(), v.Index())
	}
}

// TestPermute_MatchesSymmetries compares index-level transforms with the
// pattern-level ones for every 3×3 pattern.
func TestPermute_MatchesSymmetries(t *testing.T) {
	for size := 1; size <= 3; size++ {
		tables := pattern.SymmetryTables(size)
		for k := 0; k < 1<<(size*size); k++ {
			vs := pattern.FromIndex(k, size).Symmetries()
			for v := 0; v < pattern.Variants; v++ {
				require.Equal(t, vs[v].Index(), pattern.Permute(k, tables[v]), "size=%d k=%d variant=%d", size, k, v)
			}
		}
	}
}
