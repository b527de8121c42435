package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

// main is the entry point of cac-insights. Configuration comes from the
// environment (and optional .env files); the subcommands serve the
// dashboard, print a report, or manage the Postgres dataset tables.
func main() {
	app := &cli.App{
		Name:    "cac-insights",
		Usage:   "Customer acquisition cost dashboard over campaign and prediction datasets",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   "dotenv files loaded before the environment is parsed",
				EnvVars: []string{"CAC_ENV_FILES"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			reportCommand(),
			migrateCommand(),
			seedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
