package cpsat

import "classtable/internal/dataset"

// Soft-constraint weights, preserved from the source system's
// objective shape (see design notes: these are heuristic, not derived).
const (
	WeightStudentSlot    = 1000
	WeightStudentSubject = 700
	WeightStudentLoad    = 500
)

// Seed is a tentative full assignment (from the greedy seeder) used to
// hint or force the CP solver.
type Seed map[string]dataset.DaySlot

// BuildOptions controls how the model is constructed.
type BuildOptions struct {
	// Relax turns the three student-level constraints from hard into
	// soft-with-slack, minimizing weighted slack in the objective.
	Relax bool
	// Seed, if non-nil, hints every variable whose session has a
	// seeded target.
	Seed Seed
	// ForceSeed additionally pins every seeded variable with an
	// equality constraint instead of a mere hint.
	ForceSeed bool
}

// SolveOptions bounds one solve attempt.
type SolveOptions struct {
	TimeLimitSeconds float64
	Workers          int32
}

// Outcome is the result of one solve attempt.
type Outcome struct {
	// Feasible is true iff the solver returned OPTIMAL or FEASIBLE.
	Feasible bool
	// Assignment maps session uid to its chosen (day, slot). Only
	// meaningful when Feasible is true.
	Assignment map[string]dataset.DaySlot
	// ObjectiveValue is the minimized weighted slack total; zero for
	// a hard (non-relaxed) solve.
	ObjectiveValue float64
}

// Solver builds and solves one CP model. The production implementation
// (ORToolsSolver) wraps google/or-tools' CP-SAT backend; tests use a
// fake to exercise the Solve Driver's phase/fallback logic without a
// real solver dependency.
type Solver interface {
	Solve(ds *dataset.Dataset, candidates map[string][]dataset.DaySlot, build BuildOptions, solve SolveOptions) (Outcome, error)
}
