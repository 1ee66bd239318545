package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpggio/stravafeed/internal/app"
	"github.com/rpggio/stravafeed/internal/config"
	"github.com/rpggio/stravafeed/internal/console"
	"github.com/rpggio/stravafeed/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "activities",
		Short:        "Download and print your most recent Strava activities",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				cfg.Console.Limit = limit
			}
			return run(cmd, cfg)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", config.Default().Console.Limit, "number of activities to download (1-200)")

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()

	logger, logCloser, err := logging.New(cfg.Log, out)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return console.NewRunner(a.Feed, out, logger).Run(cmd.Context(), cfg.Console.Limit)
}
