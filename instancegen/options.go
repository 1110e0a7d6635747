package instancegen

import "math/rand"

// config holds the mutable state every generator builds an Instance from.
// Unexported, mutated only through Option (mirrors lvlath/builder's
// builderConfig/BuilderOption split).
type config struct {
	numVehicles int
	costFn      CostFn
	rng         *rand.Rand
	depot       [2]float64
}

func defaultConfig() config {
	return config{numVehicles: 1, costFn: EuclideanCostFn}
}

// Option customizes a generator's config before an Instance is built.
type Option func(*config)

// WithVehicles sets the fleet size every generated vehicle starts/ends at
// the depot under. Panics on n <= 0 (option constructors validate and
// panic; generators themselves only ever return sentinel errors).
func WithVehicles(n int) Option {
	if n <= 0 {
		panic("instancegen: WithVehicles requires n >= 1")
	}
	return func(c *config) { c.numVehicles = n }
}

// WithCostFn overrides the arc-cost model. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("instancegen: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}

// WithSeed seeds a deterministic RNG for stochastic generators
// (RandomUniform's jitter draws, cost functions that read rng).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDepot overrides the depot coordinate (default: the origin).
func WithDepot(x, y float64) Option {
	return func(c *config) { c.depot = [2]float64{x, y} }
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
