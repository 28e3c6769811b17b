package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/aisolutions-bi/dashboard-backend/api/routes"
	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/aisolutions-bi/dashboard-backend/pkg/config"
	"github.com/aisolutions-bi/dashboard-backend/pkg/logger"
	"github.com/aisolutions-bi/dashboard-backend/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "dashboard-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "dashboard-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	requestMetrics := metrics.NewRequestMetrics(registry)
	datasetMetrics := metrics.NewDatasetMetrics(registry)

	var source dataset.Source
	if cfg.Dataset.IsSQLite() {
		source = &dataset.SQLiteSource{Path: cfg.Dataset.Path, Table: cfg.Dataset.Table}
	} else {
		source = &dataset.CSVSource{Path: cfg.Dataset.Path}
	}
	loader := dataset.NewLoader(source)

	// Read the event log up front so a bad path or malformed file fails the
	// deploy instead of every request.
	start := time.Now()
	table, err := loader.Load(context.Background())
	if err != nil {
		datasetMetrics.IncFailure()
		logg.Error(context.Background(), "failed to load event table", err)
		os.Exit(1)
	}
	datasetMetrics.ObserveLoad(table.Len(), time.Since(start))

	ctx := logg.WithFields(context.Background(), map[string]any{
		"source": cfg.Dataset.Source,
		"path":   cfg.Dataset.Path,
		"rows":   table.Len(),
	})
	logg.Info(ctx, "event table loaded")

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting dashboard api server")

	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
		Handler: routes.New(routes.Deps{
			Logger:    logg,
			Config:    cfg,
			Service:   dashboard.NewService(loader),
			Readiness: loader,
			Registry:  registry,
			Requests:  requestMetrics,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "dashboard api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
