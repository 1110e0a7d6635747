package search

import (
	"math"
	"math/rand"
)

// defaultRNGSeed mirrors the teacher's tsp/rng.go fallback: a seed of 0
// selects this fixed constant instead of an unseeded (non-reproducible)
// source, so Parameters.Seed == 0 still yields deterministic acceptance.
const defaultRNGSeed int64 = 88172645463325252

// rngFromSeed returns a deterministic *rand.Rand, grounded on the
// teacher's tsp/rng.go idiom of substituting a fixed seed for 0 rather
// than reading entropy from the OS clock.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// acceptanceFor returns the move-acceptance predicate for a metaheuristic:
// accept(bestObj, candObj) reports whether a candidate scoring candObj
// should replace the incumbent scoring bestObj. Every variant still
// requires the candidate to have already passed Model.FeasibleDelta —
// acceptance only judges the objective trade-off.
func acceptanceFor(mh Metaheuristic, seed int64) func(bestObj, candObj int64) bool {
	switch mh {
	case SimulatedAnnealing:
		return simulatedAnnealingAcceptance(seed)
	case GuidedLocalSearch, TabuSearch, ObjectiveTabu:
		// These metaheuristics differ from strict descent in how the
		// *candidate set* is penalized/forbidden (guide penalties, tabu
		// tenure) rather than in the final accept/reject rule itself —
		// both still only replace the incumbent on genuine improvement
		// here, since Orchestrator's operators already score against the
		// plain objective and no penalty-augmented objective variant is
		// threaded through. Documented simplification.
		return strictDescent
	default: // MetaheuristicNone
		return strictDescent
	}
}

func strictDescent(bestObj, candObj int64) bool {
	return candObj < bestObj
}

// simulatedAnnealingAcceptance implements the classical Metropolis
// criterion with a fixed geometric cooling schedule, seeded
// deterministically via rngFromSeed so repeated Solve calls with the same
// Parameters.Seed reproduce identical acceptance decisions.
func simulatedAnnealingAcceptance(seed int64) func(bestObj, candObj int64) bool {
	rng := rngFromSeed(seed)
	const initialTemperature = 100.0
	const coolingRate = 0.98
	temperature := initialTemperature

	return func(bestObj, candObj int64) bool {
		defer func() {
			temperature *= coolingRate
			if temperature < 1e-6 {
				temperature = 1e-6
			}
		}()
		if candObj < bestObj {
			return true
		}
		delta := float64(candObj - bestObj)
		probability := math.Exp(-delta / temperature)
		return rng.Float64() < probability
	}
}
