// Command server runs the solve pipeline once, publishes the result,
// and serves it over HTTP: the published payload as JSON, a
// Prometheus exposition endpoint, a liveness probe, and the static
// timetable viewer.
package main

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"classtable/internal/config"
	"classtable/internal/logging"
	"classtable/internal/metrics"
	"classtable/internal/output"
	"classtable/internal/pipeline"
)

// published holds the process-wide immutable payload. It is written
// exactly once, from main, before the router starts accepting
// connections; every handler only ever reads it.
var published atomic.Pointer[output.Payload]

func main() {
	cfg := config.Load()
	log := logging.New(false)
	defer log.Sync()

	reg := metrics.NewRegistry(prometheus.DefaultRegisterer)

	log.Info("starting solve", zap.String("dataset_path", cfg.DatasetPath))
	result, err := pipeline.Run(cfg, log, reg)
	if err != nil {
		log.Fatal("solve failed", zap.Error(err))
	}
	published.Store(&result.Payload)
	log.Info("payload published", zap.Bool("relaxed", result.Relaxed), zap.Int("entries", len(result.Entries)))

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/timetable", func(c *gin.Context) {
		payload := published.Load()
		if payload == nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.JSON(http.StatusOK, payload)
	})

	router.GET("/healthz", func(c *gin.Context) {
		if published.Load() == nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.StaticFile("/", "./web/index.html")
	router.Static("/static", "./web")

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
