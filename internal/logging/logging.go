// Package logging builds the structured logger every cmd entrypoint
// shares, replacing the teacher's ad-hoc console prints with zap's
// leveled, field-based logging.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger with an ISO8601 timestamp and,
// when dev is true, a human-readable console encoder instead of JSON.
func New(dev bool) *zap.Logger {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		// Build only fails on a malformed config; ours is static, so
		// this is unreachable in practice but must still be handled.
		panic(err)
	}
	return logger
}
