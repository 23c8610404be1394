package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsMatchDesignNotes(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, 5e9, float64(cfg.HardSolverTime))
	assert.Equal(t, 15e9, float64(cfg.SoftSolverTime))
	assert.Equal(t, 5e9, float64(cfg.SeedForcedTime))
	assert.EqualValues(t, 8, cfg.SearchWorkers)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("TIMETABLE_SEARCH_WORKERS", "4")
	t.Setenv("TIMETABLE_DATASET_PATH", "/tmp/roster.json")

	cfg := Load()

	assert.EqualValues(t, 4, cfg.SearchWorkers)
	assert.Equal(t, "/tmp/roster.json", cfg.DatasetPath)
}
