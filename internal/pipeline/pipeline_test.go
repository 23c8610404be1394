package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"classtable/internal/candidates"
	"classtable/internal/config"
	"classtable/internal/cpsat"
	"classtable/internal/dataset"
)

// fakeSolver returns a fixed outcome regardless of the model it is
// asked to build, letting pipeline tests run without a real CP-SAT
// backend.
type fakeSolver struct {
	outcome cpsat.Outcome
}

func (f fakeSolver) Solve(ds *dataset.Dataset, cand map[string][]dataset.DaySlot, build cpsat.BuildOptions, opts cpsat.SolveOptions) (cpsat.Outcome, error) {
	return f.outcome, nil
}

// placeWithinCapacity puts every session at its first candidate (day,
// slot) that still has a free track and where its teacher is not yet
// busy. Student rules are ignored: the fake solver only needs an
// assignment that canonicalization accepts.
func placeWithinCapacity(ds *dataset.Dataset) map[string]dataset.DaySlot {
	assignment := make(map[string]dataset.DaySlot, len(ds.Sessions))
	occupancy := make(map[dataset.DaySlot]int)
	teacherBusy := make(map[string]bool)
	for _, s := range ds.Sessions {
		for _, c := range candidates.For(ds, s) {
			key := s.Teacher + "|" + string(c.Day) + "|" + c.Slot.String()
			if occupancy[c] < dataset.MaxTracks && !teacherBusy[key] {
				assignment[s.UID] = c
				occupancy[c]++
				teacherBusy[key] = true
				break
			}
		}
	}
	return assignment
}

func TestRunWithSolverBuildsAHardPayload(t *testing.T) {
	cfg := config.Config{SearchWorkers: 1}
	fixture := dataset.Fixture()

	assignment := placeWithinCapacity(fixture)
	require.Len(t, assignment, len(fixture.Sessions), "every fixture session is expected to get a placement")

	solver := fakeSolver{outcome: cpsat.Outcome{Feasible: true, Assignment: assignment}}

	result, err := RunWithSolver(cfg, solver, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.False(t, result.Relaxed)
	assert.Equal(t, "timetable", result.Filename)
	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Payload.Entries, len(fixture.Sessions))
	assert.Equal(t, fixture.Teachers, result.Payload.Teachers)
}

func TestRunWithSolverFallsThroughToSoftInfeasibleError(t *testing.T) {
	cfg := config.Config{SearchWorkers: 1}
	solver := fakeSolver{outcome: cpsat.Outcome{Feasible: false}}

	_, err := RunWithSolver(cfg, solver, zap.NewNop(), nil)
	require.Error(t, err)
}
