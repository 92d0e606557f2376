package convchain

import "math/rand"

// DefaultFloor is the weight given to neighborhood patterns never seen in the exemplar.
const DefaultFloor = 0.1

// Option customizes BuildWeightTable and New.
// Option constructors validate and panic on meaningless inputs; the
// algorithms themselves never panic on a valid configuration.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	floor float64
}

// WithSeed seeds a private generator for the engine. Seed 0 maps to a fixed
// default seed, so runs are reproducible unless WithRand says otherwise.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand hands the engine an explicit generator. The engine becomes its
// only user: *rand.Rand is not safe for concurrent use.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("convchain: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithFloor sets the weight assigned to table entries with no observations.
// Panics if floor is not > 0: a zero weight would make ratios undefined.
func WithFloor(floor float64) Option {
	if !(floor > 0) {
		panic("convchain: WithFloor(floor<=0)")
	}
	return func(c *config) {
		c.floor = floor
	}
}

func newConfig(opts []Option) config {
	c := config{floor: DefaultFloor}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}
