// Package pipeline wires dataset loading through solving,
// canonicalization and payload construction into the single call every
// cmd entrypoint shares.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"classtable/internal/canon"
	"classtable/internal/config"
	"classtable/internal/cpsat"
	"classtable/internal/dataset"
	"classtable/internal/metrics"
	"classtable/internal/output"
	"classtable/internal/solve"
)

// Result is everything a cmd entrypoint needs after one end-to-end run.
type Result struct {
	RunID    string
	Dataset  *dataset.Dataset
	Entries  []canon.Entry
	Payload  output.Payload
	Relaxed  bool
	Filename string
}

// Run loads the dataset (from cfg.DatasetPath if set, else the
// compiled-in fixture), solves it with the real CP-SAT backend,
// canonicalizes the result, and builds the output payload. It does not
// write any files — callers decide whether and where to persist the
// result.
func Run(cfg config.Config, log *zap.Logger, reg *metrics.Registry) (Result, error) {
	return RunWithSolver(cfg, cpsat.ORToolsSolver{}, log, reg)
}

// RunWithSolver is Run with the CP-SAT backend injected, so tests can
// substitute a fake solver without linking the real one.
//
// Every call is tagged with a fresh run id, attached to every log line
// the pipeline emits, so overlapping runs (e.g. cmd/server restarted
// while an old process is still draining) can be told apart in logs.
func RunWithSolver(cfg config.Config, solver cpsat.Solver, log *zap.Logger, reg *metrics.Registry) (Result, error) {
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	ds, err := loadDataset(cfg, log)
	if err != nil {
		return Result{}, err
	}

	opts := solve.Options{
		HardSolverTime: cfg.HardSolverTime,
		SoftSolverTime: cfg.SoftSolverTime,
		SeedForcedTime: cfg.SeedForcedTime,
		SearchWorkers:  cfg.SearchWorkers,
	}

	outcome, err := solve.Run(ds, solver, opts, log, reg)
	if err != nil {
		return Result{}, err
	}

	entries, err := canon.Canonicalize(ds, outcome.Assignment)
	if err != nil {
		return Result{}, fmt.Errorf("post-solve invariant breach: %w", err)
	}

	slots := make([]int, len(dataset.Slots))
	for i, s := range dataset.Slots {
		slots[i] = int(s)
	}
	days := make([]string, len(ds.Days))
	for i, d := range ds.Days {
		days[i] = string(d)
	}

	payload := output.BuildPayload(days, slots, ds.Teachers, ds.Students, entries)

	filename := output.HardFilename
	if outcome.Relaxed {
		filename = output.SoftFilename
	}

	return Result{
		RunID:    runID,
		Dataset:  ds,
		Entries:  entries,
		Payload:  payload,
		Relaxed:  outcome.Relaxed,
		Filename: filename,
	}, nil
}

func loadDataset(cfg config.Config, log *zap.Logger) (*dataset.Dataset, error) {
	if cfg.DatasetPath == "" {
		log.Info("using compiled-in dataset fixture")
		return dataset.Fixture(), nil
	}
	log.Info("loading dataset from file", zap.String("path", cfg.DatasetPath))
	return dataset.Load(cfg.DatasetPath)
}
