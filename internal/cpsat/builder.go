package cpsat

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	satpb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	"classtable/internal/dataset"
)

// ORToolsSolver builds and solves the model with the CP-SAT backend.
// It is the only file in this package that imports the solver SDK —
// everything else (bucket grouping, phase orchestration) stays plain
// Go so it can be unit-tested without a CP-SAT dependency.
type ORToolsSolver struct{}

type penalty struct {
	slack  cpmodel.IntVar
	weight int64
}

// Solve constructs the CP model described in the design (one boolean
// per feasible session/day/slot, exactly-one-per-session, hard
// teacher/capacity constraints, soft-or-hard student constraints
// depending on build.Relax) and solves it within solve.TimeLimitSeconds
// using solve.Workers parallel search workers.
func (ORToolsSolver) Solve(ds *dataset.Dataset, cand map[string][]dataset.DaySlot, build BuildOptions, opts SolveOptions) (Outcome, error) {
	buckets := BuildBuckets(ds, cand)

	model := cpmodel.NewCpModelBuilder()
	vars := make([]cpmodel.BoolVar, len(buckets.Vars))
	for i := range buckets.Vars {
		vars[i] = model.NewBoolVar()
	}

	for _, session := range ds.Sessions {
		idxs := buckets.SessionVars[session.UID]
		if len(idxs) == 0 {
			return Outcome{}, fmt.Errorf("no feasible day/slot for session %s", session.UID)
		}
		model.AddEquality(sumOf(vars, idxs), cpmodel.NewConstant(1))
	}

	var penalties []penalty

	addUpperBound := func(idxs []int, limit int64, weight int64, hard bool) {
		if len(idxs) == 0 {
			return
		}
		expr := sumOf(vars, idxs)
		if hard || !build.Relax || int64(len(idxs)) <= limit {
			model.AddLessOrEqual(expr, cpmodel.NewConstant(limit))
			return
		}
		slack := model.NewIntVarFromDomain(cpmodel.NewDomain(0, int64(len(idxs))-limit))
		rhs := cpmodel.NewConstant(limit)
		rhs.Add(slack)
		model.AddLessOrEqual(expr, rhs) // sum(x) <= limit + slack
		penalties = append(penalties, penalty{slack: slack, weight: weight})
	}

	// Teacher non-overlap and per-slot capacity are always hard.
	for _, key := range buckets.TeacherDaySlot.order {
		addUpperBound(buckets.TeacherDaySlot.items[key], 1, 0, true)
	}
	for _, key := range buckets.DaySlotCapacity.order {
		addUpperBound(buckets.DaySlotCapacity.items[key], dataset.MaxTracks, 0, true)
	}

	// Student-level constraints are hard unless relaxed.
	for _, key := range buckets.StudentDaySlot.order {
		addUpperBound(buckets.StudentDaySlot.items[key], 1, WeightStudentSlot, false)
	}
	for _, key := range buckets.StudentDaySubject.order {
		addUpperBound(buckets.StudentDaySubject.items[key], 1, WeightStudentSubject, false)
	}
	for _, key := range buckets.StudentDayLoad.order {
		addUpperBound(buckets.StudentDayLoad.items[key], 3, WeightStudentLoad, false)
	}

	if build.Seed != nil {
		applyHints(model, vars, buckets.Vars, build.Seed)
	}
	if build.Seed != nil && build.ForceSeed {
		forceSeed(model, vars, buckets.Vars, build.Seed)
	}

	if build.Relax {
		objective := cpmodel.NewConstant(0)
		for _, p := range penalties {
			objective.AddTerm(p.slack, p.weight)
		}
		model.Minimize(objective)
	}

	m, err := model.Model()
	if err != nil {
		return Outcome{}, fmt.Errorf("instantiating CP model: %w", err)
	}

	params := &satpb.SatParameters{
		MaxTimeInSeconds: proto.Float64(opts.TimeLimitSeconds),
		NumSearchWorkers: proto.Int32(opts.Workers),
	}
	response, err := cpmodel.SolveCpModelWithParameters(m, params)
	if err != nil {
		return Outcome{}, fmt.Errorf("solving CP model: %w", err)
	}

	status := response.GetStatus()
	if status != cmpb.CpSolverStatus_OPTIMAL && status != cmpb.CpSolverStatus_FEASIBLE {
		return Outcome{Feasible: false}, nil
	}

	assignment := make(map[string]dataset.DaySlot, len(ds.Sessions))
	for i, key := range buckets.Vars {
		if cpmodel.SolutionBooleanValue(response, vars[i]) {
			assignment[key.UID] = dataset.DaySlot{Day: key.Day, Slot: key.Slot}
		}
	}

	return Outcome{
		Feasible:       true,
		Assignment:     assignment,
		ObjectiveValue: response.GetObjectiveValue(),
	}, nil
}

func sumOf(vars []cpmodel.BoolVar, idxs []int) *cpmodel.LinearExpr {
	expr := cpmodel.NewConstant(0)
	for _, i := range idxs {
		expr.Add(vars[i])
	}
	return expr
}

func applyHints(model *cpmodel.Builder, vars []cpmodel.BoolVar, keys []VarKey, seed Seed) {
	for i, key := range keys {
		target, ok := seed[key.UID]
		if !ok {
			continue
		}
		if target.Day == key.Day && target.Slot == key.Slot {
			model.AddHint(vars[i], 1)
		} else {
			model.AddHint(vars[i], 0)
		}
	}
}

func forceSeed(model *cpmodel.Builder, vars []cpmodel.BoolVar, keys []VarKey, seed Seed) {
	for i, key := range keys {
		target, ok := seed[key.UID]
		if !ok {
			continue
		}
		expr := cpmodel.NewConstant(0)
		expr.Add(vars[i])
		if target.Day == key.Day && target.Slot == key.Slot {
			model.AddEquality(expr, cpmodel.NewConstant(1))
		} else {
			model.AddEquality(expr, cpmodel.NewConstant(0))
		}
	}
}
