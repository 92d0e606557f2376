package convchain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/convchain/convchain"
)

// TestDeriveRNG_Deterministic checks that derivation from equal parents is reproducible.
func TestDeriveRNG_Deterministic(t *testing.T) {
	a := convchain.DeriveRNG(rand.New(rand.NewSource(seedDet)), 3)
	b := convchain.DeriveRNG(rand.New(rand.NewSource(seedDet)), 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}

	n1 := convchain.DeriveRNG(nil, 1)
	n2 := convchain.DeriveRNG(nil, 1)
	assert.Equal(t, n1.Int63(), n2.Int63(), "nil base uses the default parent")
}

// TestDeriveSeed_Streams checks neighboring streams and parents get distinct seeds.
func TestDeriveSeed_Streams(t *testing.T) {
	seen := make(map[int64]bool)
	for parent := int64(0); parent < 4; parent++ {
		for stream := uint64(0); stream < 64; stream++ {
			s := convchain.DeriveSeed(parent, stream)
			assert.False(t, seen[s], "collision at parent=%d stream=%d", parent, stream)
			seen[s] = true
		}
	}
}

// TestDeriveSeed_NeighboringParents checks that adjacent base seeds do not
// reproduce each other's streams.
func TestDeriveSeed_NeighboringParents(t *testing.T) {
	assert.NotEqual(t, convchain.DeriveSeed(0, 2), convchain.DeriveSeed(1, 1))
	assert.NotEqual(t, convchain.DeriveSeed(0, 1), convchain.DeriveSeed(1, 2))

	seen := make(map[int64]bool)
	for parent := int64(-8); parent < 8; parent++ {
		for stream := uint64(0); stream < 256; stream++ {
			seen[convchain.DeriveSeed(parent, stream)] = true
		}
	}
	assert.Len(t, seen, 16*256)
}
