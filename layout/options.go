package layout

import (
	"math/rand"
	"time"
)

// Option configures the random source used by Generate and Build.
// Options are applied in order; the last one wins.
type Option func(*config)

// config holds the resolved random source policy.
type config struct {
	rng    *rand.Rand
	seed   int64
	seeded bool
}

// WithSeed seeds a fresh *rand.Rand. Identical seeds with identical Params
// produce identical grids.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed = seed
		c.seeded = true
	}
}

// WithRand supplies a caller-owned random source. The generator consumes
// draws from it; the caller decides its seed and must not share it across
// goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
		c.seeded = false
	}
}

// newConfig applies opts. Without any option the source is seeded from the
// clock and the seed is kept so the board can be replayed.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		WithSeed(time.Now().UnixNano())(&cfg)
	}
	return cfg
}
