package search

import (
	"time"

	"go.uber.org/zap"

	"github.com/arcrouting/vrproute/cumullp"
	"github.com/arcrouting/vrproute/firstsolution"
)

// Result is returned by Solve (spec.md §4.9).
type Result struct {
	Routes   [][]int
	OK       bool
	TimedOut bool
	Err      error
}

// Orchestrator runs one first-solution build followed by local search
// (spec.md §4.9). A fresh Orchestrator is created per Solve call; it holds
// no state beyond what NewOrchestrator/Seed capture.
type Orchestrator struct {
	m       Model
	p       Parameters
	seed    [][]int
	cumulLP *cumullp.Optimizer
}

// NewOrchestrator builds an Orchestrator for m under parameters p.
func NewOrchestrator(m Model, p Parameters) *Orchestrator {
	return &Orchestrator{m: m, p: p, cumulLP: cumullp.NewOptimizer()}
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.p.Logger == nil {
		return zap.NewNop()
	}
	return o.p.Logger
}

// Seed overrides the first-solution step with already-known routes
// (spec.md §6 "SolveFromAssignment").
func (o *Orchestrator) Seed(routes [][]int) { o.seed = routes }

// Solve builds (or reuses the seeded) initial routes, then repeatedly
// applies the neighborhood operator set until no operator improves the
// incumbent or a SearchLimit is hit.
func (o *Orchestrator) Solve() Result {
	var deadline time.Time
	if o.p.Limit.Time > 0 {
		deadline = time.Now().Add(o.p.Limit.Time)
	}

	log := o.logger()

	routes := o.seed
	if routes == nil {
		built, err := o.buildFirstSolution()
		if err != nil {
			log.Error("first-solution build failed", zap.Error(err))
			return Result{Err: err}
		}
		routes = built
		log.Info("first solution built", zap.String("strategy", o.p.FirstSolution.String()))
	} else {
		log.Info("first-solution build skipped: seeded")
	}
	ok, err := o.m.FeasibleDelta(routes)
	if err != nil {
		log.Error("initial feasibility check errored", zap.Error(err))
		return Result{Err: err}
	}
	if !ok {
		log.Warn("initial routes are infeasible")
		return Result{OK: false}
	}

	best := routes
	bestObj := o.m.ObjectiveValue(best)
	accept := acceptanceFor(o.p.Metaheuristic, o.p.Seed)
	ops := o.operators()

	var improving, branches, failures int
	for {
		if pastDeadline(deadline) {
			log.Warn("search hit its time limit", zap.Int64("objective", bestObj))
			return Result{Routes: best, OK: true, TimedOut: true}
		}
		improvedThisPass := false
		for _, op := range ops {
			if o.p.RoutingNoTSP && op.tsp() {
				continue
			}
			if o.p.RoutingNoLNS && op.lns() {
				continue
			}
			candidate, candObj, found := op.improve(o.m, best, bestObj)
			branches++
			if !found {
				continue
			}
			if okFeasible, _ := o.m.FeasibleDelta(candidate); !okFeasible {
				failures++
				if o.p.Limit.Failures > 0 && failures >= o.p.Limit.Failures {
					log.Warn("search hit its failure limit", zap.Int("failures", failures), zap.Int64("objective", bestObj))
					return Result{Routes: best, OK: true}
				}
				continue
			}
			if accept(bestObj, candObj) {
				best, bestObj = candidate, candObj
				o.tightenCumul(best)
				improving++
				improvedThisPass = true
				if o.p.Limit.ImprovingSolutions > 0 && improving >= o.p.Limit.ImprovingSolutions {
					log.Info("search hit its improving-solution limit", zap.Int("improving", improving), zap.Int64("objective", bestObj))
					return Result{Routes: best, OK: true}
				}
			} else {
				failures++
				if o.p.Limit.Failures > 0 && failures >= o.p.Limit.Failures {
					log.Warn("search hit its failure limit", zap.Int("failures", failures), zap.Int64("objective", bestObj))
					return Result{Routes: best, OK: true}
				}
			}
			if o.p.Limit.Branches > 0 && branches >= o.p.Limit.Branches {
				log.Info("search hit its branch limit", zap.Int("branches", branches), zap.Int64("objective", bestObj))
				return Result{Routes: best, OK: true}
			}
		}
		if !improvedThisPass {
			log.Info("search converged: no operator improved the incumbent", zap.Int64("objective", bestObj))
			return Result{Routes: best, OK: true}
		}
	}
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

// tightenCumul runs a cumullp.Optimizer pass over every registered
// dimension's fixed route for the new incumbent (spec.md §4.8), writing
// the tightest feasible cumul values back in place of the plain forward
// pass ObjectiveValue derives while scoring candidates. A route the
// optimizer finds infeasible is left untouched — FeasibleDelta already
// gated this candidate's acceptance upstream.
func (o *Orchestrator) tightenCumul(routes [][]int) {
	for _, name := range o.m.DimensionNames() {
		dim := o.m.GetDimensionOrNil(name)
		if dim == nil {
			continue
		}
		for v, route := range routes {
			values, _, feasible := o.cumulLP.OptimizeVehicle(dim, v, route)
			if !feasible {
				continue
			}
			dim.ApplyOptimizedValues(route, values)
		}
	}
}

func (o *Orchestrator) buildFirstSolution() ([][]int, error) {
	b := o.builder()
	return b.Build(o.m, o.m.FilterChain())
}

func (o *Orchestrator) builder() firstsolution.Builder {
	switch o.p.FirstSolution {
	case LocalCheapestInsertion:
		return firstsolution.LocalCheapestInsertion{}
	case CheapestAddition:
		return firstsolution.CheapestAddition{Evaluator: func(from, to, v int) int64 {
			return o.m.GetArcCostForVehicle(from, to, v)
		}}
	case SavingsSequential:
		return firstsolution.SequentialSavings{}
	case SavingsParallel:
		return firstsolution.ParallelSavings{}
	case Christofides:
		return firstsolution.Christofides{}
	default: // AutomaticFirstSolution, GlobalCheapestInsertion
		return firstsolution.GlobalCheapestInsertion{}
	}
}
