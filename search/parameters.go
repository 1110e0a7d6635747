package search

import (
	"time"

	"go.uber.org/zap"
)

// FirstSolutionStrategy selects the initial-solution builder (spec.md
// §4.6).
type FirstSolutionStrategy int

const (
	AutomaticFirstSolution FirstSolutionStrategy = iota
	GlobalCheapestInsertion
	LocalCheapestInsertion
	CheapestAddition
	SavingsSequential
	SavingsParallel
	Christofides
)

func (s FirstSolutionStrategy) String() string {
	switch s {
	case AutomaticFirstSolution:
		return "AUTOMATIC"
	case GlobalCheapestInsertion:
		return "GLOBAL_CHEAPEST_INSERTION"
	case LocalCheapestInsertion:
		return "LOCAL_CHEAPEST_INSERTION"
	case CheapestAddition:
		return "CHEAPEST_ADDITION"
	case SavingsSequential:
		return "SAVINGS_SEQUENTIAL"
	case SavingsParallel:
		return "SAVINGS_PARALLEL"
	case Christofides:
		return "CHRISTOFIDES"
	default:
		return "UNKNOWN"
	}
}

// Metaheuristic selects the local-search escape policy (spec.md §4.9).
type Metaheuristic int

const (
	MetaheuristicNone Metaheuristic = iota
	GuidedLocalSearch
	SimulatedAnnealing
	TabuSearch
	ObjectiveTabu
)

func (mh Metaheuristic) String() string {
	switch mh {
	case MetaheuristicNone:
		return "NONE"
	case GuidedLocalSearch:
		return "GUIDED_LOCAL_SEARCH"
	case SimulatedAnnealing:
		return "SIMULATED_ANNEALING"
	case TabuSearch:
		return "TABU_SEARCH"
	case ObjectiveTabu:
		return "OBJECTIVE_TABU"
	default:
		return "UNKNOWN"
	}
}

// Parameters configures one Solve call.
type Parameters struct {
	FirstSolution FirstSolutionStrategy
	Metaheuristic Metaheuristic

	// NeighborsRatio restricts local search's Or-opt relocation to
	// destinations next to the cheapest fraction of each moved index's
	// neighbors (0 disables restriction). The first-solution builders,
	// GlobalCheapestInsertion and Savings included, do not read it.
	NeighborsRatio float64

	// RoutingNoLNS / RoutingNoTSP disable the corresponding neighborhood
	// families during local search (spec.md §4.9).
	RoutingNoLNS bool
	RoutingNoTSP bool

	Limit SearchLimit

	// Seed makes local search deterministic given identical Parameters
	// and Model (spec.md §8 "Determinism").
	Seed int64

	// Logger receives phase-transition, limit-trip, and infeasibility
	// diagnostics; nil is treated as zap.NewNop(). The hot path (operator
	// scans, filter evaluation) stays silent regardless.
	Logger *zap.Logger
}

// SearchLimit bounds one Solve call (spec.md §4.9 "Limits").
type SearchLimit struct {
	Time              time.Duration
	ImprovingSolutions int
	Branches          int
	Failures          int
}

// DefaultParameters returns the strategy the Model falls back to when the
// caller does not pick one explicitly.
func DefaultParameters() Parameters {
	return Parameters{
		FirstSolution: GlobalCheapestInsertion,
		Metaheuristic: MetaheuristicNone,
		Limit:         SearchLimit{Time: 30 * time.Second, Branches: 1_000_000, Failures: 1_000_000},
		// Logger is left nil: Orchestrator treats nil as zap.NewNop(), and
		// routing.Model.CloseModelWithParameters substitutes the model's
		// logger (see routing.Model.SetLogger) only in the copy of the
		// parameters it keeps, not in those later passed to Solve.
	}
}
