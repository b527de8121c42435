package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"cac-insights/internal/db"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or upgrade the Postgres dataset tables",
		Action: func(c *cli.Context) error {
			cfg, logger, err := loadConfig(c)
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migration error: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Generate a simulated dataset into Postgres or the CSV paths",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Value: 90, Usage: "Days of campaign spend per channel"},
			&cli.IntFlag{Name: "visitors", Value: 1000, Usage: "Number of scored visitors"},
			&cli.Int64Flag{Name: "seed", Value: 42, Usage: "Random seed"},
			&cli.BoolFlag{Name: "csv", Usage: "Write DATASET_*_PATH CSV files instead of Postgres tables"},
		},
		Action: runSeed,
	}
}

func runSeed(c *cli.Context) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -c.Int("days"))
	sim := db.Simulate(c.Int64("seed"), start, c.Int("days"), c.Int("visitors"))

	if c.Bool("csv") {
		if err = db.ExportCSV(sim, cfg.Dataset.CampaignsPath, cfg.Dataset.PredictionsPath); err != nil {
			return err
		}
		logger.Info("simulated dataset written",
			slog.String("campaigns", cfg.Dataset.CampaignsPath),
			slog.String("predictions", cfg.Dataset.PredictionsPath))
		return nil
	}

	pool, err := db.NewPostgresPool(c.Context, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()
	if err = db.Seed(c.Context, pool, cfg.Psql, sim); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("simulated dataset seeded",
		slog.Int("campaigns", len(sim.Campaigns)),
		slog.Int("predictions", len(sim.Predictions)))
	return nil
}
