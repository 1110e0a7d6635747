package instancegen

import (
	"math/rand"

	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/internal/costmat"
	"github.com/arcrouting/vrproute/routing"
	"github.com/arcrouting/vrproute/transit"
)

// defaultRandSeed substitutes for a caller-omitted WithSeed, the same
// seed-fallback idiom package search's rngFromSeed uses, so an instance
// built with no explicit seed is still reproducible across runs.
const defaultRandSeed int64 = 88172645463325252

// Instance is a fully-wired VRP scenario: node coordinates (index 0 is
// always the depot, every vehicle's start and end), the indexmanager and
// transit.Registry a routing.Model needs, and the dense costmat.Matrix
// backing the registered arc-cost callback.
type Instance struct {
	Coords      [][2]float64
	NumVehicles int
	Manager     *indexmanager.Manager
	Registry    *transit.Registry
	CostID      transit.ID
	Matrix      *costmat.Matrix
}

// NewModel builds an open (not-yet-closed) routing.Model over inst, with
// every vehicle's arc cost evaluator set to inst.CostID. Callers add
// dimensions/disjunctions/pickup-delivery pairs before calling CloseModel.
func (inst *Instance) NewModel() *routing.Model {
	m := routing.NewModel(inst.Manager, inst.Registry)
	m.SetArcCostEvaluatorOfAllVehicles(inst.CostID)
	return m
}

// Grid builds a rows*cols set of customer coordinates laid out on an
// integer grid, plus one depot node, adapted from
// lvlath/builder.Grid(rows,cols)'s row-major vertex enumeration ("r,c"
// coordinate IDs there become literal (r,c) float64 positions here).
func Grid(rows, cols int, opts ...Option) (*Instance, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrTooFewVertices
	}
	c := applyOptions(opts)

	coords := make([][2]float64, 0, rows*cols+1)
	coords = append(coords, c.depot)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			coords = append(coords, [2]float64{float64(r), float64(col)})
		}
	}
	return buildInstance(coords, c)
}

// RandomUniform samples n customer coordinates on an integer lattice of
// the given scale, each displaced by an independent jitter draw included
// with probability p. Adapted from lvlath/builder.RandomSparse(n,p)'s
// deterministic-rng-required contract; a VRP cost matrix is always dense
// (every index pair needs an arc cost, unlike RandomSparse's
// independently-included edges), so the probabilistic-inclusion model
// doesn't carry over onto which arcs exist — only onto which coordinates
// get jittered off the lattice, keeping p and the rng-required discipline
// meaningful here too.
func RandomUniform(n int, scale float64, p float64, opts ...Option) (*Instance, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	c := applyOptions(opts)
	rng := c.rng
	if rng == nil {
		if p > 0 && p < 1 {
			return nil, ErrNeedRandSource
		}
		rng = rand.New(rand.NewSource(defaultRandSeed))
	}

	coords := make([][2]float64, 0, n+1)
	coords = append(coords, c.depot)
	for i := 0; i < n; i++ {
		x, y := float64(i%int(scale)), float64(i/int(scale))
		if rng.Float64() < p {
			x += rng.Float64()
			y += rng.Float64()
		}
		coords = append(coords, [2]float64{x, y})
	}
	c.rng = rng
	return buildInstance(coords, c)
}

func buildInstance(coords [][2]float64, c config) (*Instance, error) {
	if c.numVehicles < 1 {
		return nil, ErrTooFewVehicles
	}
	n := len(coords)
	starts := make([]int, c.numVehicles)
	ends := make([]int, c.numVehicles)
	// every vehicle starts and ends at the depot, node 0
	for v := range starts {
		starts[v] = 0
		ends[v] = 0
	}
	mgr, err := indexmanager.NewManager(n, c.numVehicles, starts, ends)
	if err != nil {
		return nil, err
	}

	costFn := resolveCostFn(c.costFn)
	matrix, err := costmat.FromFunc(n, func(i, j int) int64 {
		if i == j {
			return 0
		}
		return costFn(coords[i], coords[j], c.rng)
	})
	if err != nil {
		return nil, err
	}

	reg := transit.NewRegistry()
	id := reg.RegisterBinary(matrix.Evaluator())

	return &Instance{
		Coords:      coords,
		NumVehicles: c.numVehicles,
		Manager:     mgr,
		Registry:    reg,
		CostID:      id,
		Matrix:      matrix,
	}, nil
}
