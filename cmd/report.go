package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"cac-insights/internal/adapter/report"
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Compute the dashboard once and print it as Markdown or JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   report.FormatMarkdown,
				Usage:   "Output format (markdown, json)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "campaigns",
				Usage: "Campaigns CSV path, overriding DATASET_CAMPAIGNS_PATH",
			},
			&cli.StringFlag{
				Name:  "predictions",
				Usage: "Predictions CSV path, overriding DATASET_PREDICTIONS_PATH",
			},
		},
		Action: runReport,
	}
}

func runReport(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	if p := c.String("campaigns"); p != "" {
		cfg.Dataset.CampaignsPath = p
	}
	if p := c.String("predictions"); p != "" {
		cfg.Dataset.PredictionsPath = p
	}

	repo, closeRepo, err := openRepository(c.Context, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := newUseCase(cfg, repo, nil)
	if err != nil {
		return err
	}
	d, err := svc.Snapshot(c.Context)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
	}
	return report.Write(out, d, c.String("format"))
}
