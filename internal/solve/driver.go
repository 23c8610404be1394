// Package solve orchestrates the seed -> hard-forced -> hard-hinted ->
// soft-relaxed phase sequence against a cpsat.Solver, the way the
// teacher's integrated_scheduler.go sequenced its coloring and
// room-assignment passes.
package solve

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"classtable/internal/candidates"
	"classtable/internal/cpsat"
	"classtable/internal/dataset"
	"classtable/internal/metrics"
	"classtable/internal/seed"
)

// Phase names used as metric labels and log fields.
const (
	PhaseSeed       = "seed"
	PhaseSeedForced = "seed_forced"
	PhaseHardHinted = "hard_hinted"
	PhaseSoft       = "soft"
)

// Outcome reports which phase produced the final assignment.
type Outcome struct {
	Assignment map[string]dataset.DaySlot
	Relaxed    bool
}

// Options bounds each phase's time limit and worker count.
type Options struct {
	HardSolverTime time.Duration
	SoftSolverTime time.Duration
	SeedForcedTime time.Duration
	SearchWorkers  int32
}

// ErrSoftInfeasible is returned when no solution exists even with the
// soft constraints relaxed. It is always fatal to the caller.
var ErrSoftInfeasible = errors.New("timetable infeasible even after relaxing soft constraints")

// Run drives the full phase sequence for ds using solver. It returns
// ErrSoftInfeasible when the soft phase itself cannot find a solution,
// or an input-infeasibility error if a session has no candidate
// day/slot at all.
func Run(ds *dataset.Dataset, solver cpsat.Solver, opts Options, log *zap.Logger, reg *metrics.Registry) (Outcome, error) {
	cand := candidates.ForAll(ds)
	for _, s := range ds.Sessions {
		if len(cand[s.UID]) == 0 {
			return Outcome{}, errors.New("input infeasible: session " + s.UID + " has no candidate day/slot")
		}
	}

	seedAssignment := timedSeed(ds, log, reg)

	solveOpts := cpsat.SolveOptions{Workers: opts.SearchWorkers}

	if seedAssignment != nil {
		solveOpts.TimeLimitSeconds = opts.SeedForcedTime.Seconds()
		outcome := timedSolve(solver, ds, cand, cpsat.BuildOptions{Seed: cpsat.Seed(seedAssignment), ForceSeed: true}, solveOpts, PhaseSeedForced, log, reg)
		if outcome.Feasible {
			recordOutcome(reg, "hard")
			return Outcome{Assignment: outcome.Assignment, Relaxed: false}, nil
		}
	}

	solveOpts.TimeLimitSeconds = opts.HardSolverTime.Seconds()
	hardBuild := cpsat.BuildOptions{}
	if seedAssignment != nil {
		hardBuild.Seed = cpsat.Seed(seedAssignment)
	}
	outcome := timedSolve(solver, ds, cand, hardBuild, solveOpts, PhaseHardHinted, log, reg)
	if outcome.Feasible {
		recordOutcome(reg, "hard")
		return Outcome{Assignment: outcome.Assignment, Relaxed: false}, nil
	}

	log.Warn("hard phase infeasible, falling through to soft phase")

	solveOpts.TimeLimitSeconds = opts.SoftSolverTime.Seconds()
	softBuild := cpsat.BuildOptions{Relax: true}
	if seedAssignment != nil {
		softBuild.Seed = cpsat.Seed(seedAssignment)
	}
	outcome = timedSolve(solver, ds, cand, softBuild, solveOpts, PhaseSoft, log, reg)
	if !outcome.Feasible {
		recordOutcome(reg, "infeasible")
		return Outcome{}, ErrSoftInfeasible
	}

	recordOutcome(reg, "soft")
	return Outcome{Assignment: outcome.Assignment, Relaxed: true}, nil
}

func timedSeed(ds *dataset.Dataset, log *zap.Logger, reg *metrics.Registry) map[string]dataset.DaySlot {
	start := time.Now()
	result := seed.Build(ds)
	observe(reg, PhaseSeed, time.Since(start))
	if result == nil {
		log.Warn("greedy seed failed, proceeding without a hint")
	} else {
		log.Info("greedy seed succeeded", zap.Int("sessions", len(result)))
	}
	return result
}

func timedSolve(solver cpsat.Solver, ds *dataset.Dataset, cand map[string][]dataset.DaySlot, build cpsat.BuildOptions, opts cpsat.SolveOptions, phase string, log *zap.Logger, reg *metrics.Registry) cpsat.Outcome {
	start := time.Now()
	outcome, err := solver.Solve(ds, cand, build, opts)
	observe(reg, phase, time.Since(start))
	if err != nil {
		log.Error("solve phase errored", zap.String("phase", phase), zap.Error(err))
		return cpsat.Outcome{}
	}
	log.Info("solve phase complete", zap.String("phase", phase), zap.Bool("feasible", outcome.Feasible))
	return outcome
}

func observe(reg *metrics.Registry, phase string, d time.Duration) {
	if reg == nil {
		return
	}
	reg.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func recordOutcome(reg *metrics.Registry, outcome string) {
	if reg == nil {
		return
	}
	reg.SolveOutcomes.WithLabelValues(outcome).Inc()
}
