// Command timetable runs the solve pipeline once and writes the
// resulting JSON and CSV files to the working directory.
package main

import (
	"os"

	"go.uber.org/zap"

	"classtable/internal/config"
	"classtable/internal/logging"
	"classtable/internal/metrics"
	"classtable/internal/output"
	"classtable/internal/pipeline"
)

func main() {
	cfg := config.Load()
	log := logging.New(false)
	defer log.Sync()

	reg := metrics.NewRegistry(nil)

	log.Info("starting solve", zap.String("dataset_path", cfg.DatasetPath))
	result, err := pipeline.Run(cfg, log, reg)
	if err != nil {
		log.Fatal("solve failed", zap.Error(err))
	}

	if err := output.WriteJSON(".", result.Payload); err != nil {
		log.Fatal("writing json output", zap.Error(err))
	}
	if err := output.WriteCSV(".", result.Filename, result.Payload); err != nil {
		log.Fatal("writing csv output", zap.Error(err))
	}

	log.Info("solve complete",
		zap.Bool("relaxed", result.Relaxed),
		zap.Int("entries", len(result.Entries)),
		zap.String("csv_file", result.Filename+".csv"),
	)
	os.Exit(0)
}
