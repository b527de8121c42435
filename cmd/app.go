package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"cac-insights/internal/adapter/csvfile"
	"cac-insights/internal/adapter/postgres"
	"cac-insights/internal/adapter/usecase"
	"cac-insights/internal/config"
	"cac-insights/internal/config/configs"
	"cac-insights/internal/content"
	"cac-insights/internal/core/port"
	"cac-insights/internal/db"
	"cac-insights/internal/telemetry"
)

// loadConfig reads configuration and builds the logger from it.
func loadConfig(c *cli.Context) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openRepository returns the dataset repository selected by cfg and a
// cleanup function releasing its resources.
func openRepository(ctx context.Context, cfg config.Config) (port.DatasetRepository, func(), error) {
	switch cfg.Dataset.Source {
	case configs.SourcePostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewDatasetRepository(pool, cfg.Psql), pool.Close, nil
	default:
		return csvfile.NewRepository(cfg.Dataset), func() {}, nil
	}
}

// newUseCase wires the dashboard use case for cfg.
func newUseCase(cfg config.Config, repo port.DatasetRepository, reg prometheus.Registerer) (*usecase.DashboardUseCase, error) {
	recs, err := content.LoadRecommendations(cfg.Dashboard.RecommendationsFile, cfg.Dashboard.Recommendations)
	if err != nil {
		return nil, err
	}
	return usecase.NewDashboardUseCase(repo, usecase.Settings{
		Dashboard:       cfg.Dashboard,
		Source:          cfg.Dataset.Source,
		Recommendations: recs,
		Metrics:         telemetry.NewSnapshotMetrics(reg),
	}), nil
}
