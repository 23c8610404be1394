// Package config loads runtime configuration for the timetable
// service: solver time limits, worker count, and the HTTP port, bound
// from environment variables (and an optional .env file) the way
// noah-isme-sma-adp-api bootstraps its own service configuration.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every tunable the solve pipeline and HTTP front read at
// startup. Values never change after Load returns.
type Config struct {
	// HardSolverTime bounds the hard (feasibility-only) phase.
	HardSolverTime time.Duration
	// SoftSolverTime bounds the soft (relaxed, weighted) phase.
	SoftSolverTime time.Duration
	// SeedForcedTime bounds the seed-forced attempt. Fixed at 5s in
	// the design regardless of HardSolverTime — see design notes.
	SeedForcedTime time.Duration
	// SearchWorkers is the number of parallel search workers passed
	// to the CP-SAT backend for every phase.
	SearchWorkers int32
	// DatasetPath, if non-empty, loads the dataset from this JSON
	// file instead of the compiled-in fixture.
	DatasetPath string
	// HTTPAddr is the address cmd/server binds to.
	HTTPAddr string
}

// defaults mirrors spec.md §4.4 and §9: 5s hard, 15s soft, 5s
// seed-forced, 8 workers.
func defaults() Config {
	return Config{
		HardSolverTime: 5 * time.Second,
		SoftSolverTime: 15 * time.Second,
		SeedForcedTime: 5 * time.Second,
		SearchWorkers:  8,
		HTTPAddr:       ":8080",
	}
}

// Load reads configuration from a TIMETABLE_-prefixed environment and
// an optional .env file in the working directory, falling back to the
// spec's defaults for anything unset. A missing .env file is not an
// error — it simply means every value comes from the environment or
// the defaults.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := defaults()

	if v.IsSet("hard_solver_time_seconds") {
		cfg.HardSolverTime = time.Duration(v.GetFloat64("hard_solver_time_seconds") * float64(time.Second))
	}
	if v.IsSet("soft_solver_time_seconds") {
		cfg.SoftSolverTime = time.Duration(v.GetFloat64("soft_solver_time_seconds") * float64(time.Second))
	}
	if v.IsSet("search_workers") {
		cfg.SearchWorkers = int32(v.GetInt("search_workers"))
	}
	if v.IsSet("dataset_path") {
		cfg.DatasetPath = v.GetString("dataset_path")
	}
	if v.IsSet("http_addr") {
		cfg.HTTPAddr = v.GetString("http_addr")
	}

	return cfg
}
