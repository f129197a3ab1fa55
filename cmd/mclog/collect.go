package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/mclog/mclog-go/internal/collector"
	"github.com/mclog/mclog-go/internal/config"
	"github.com/mclog/mclog-go/internal/reporting"
	"github.com/mclog/mclog-go/internal/storage"
)

var (
	// collect flags
	collectOnce bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the collection loop: log events and stat snapshots to Postgres",
	Long: `Run the collector: tail the server log, classify new lines into events,
snapshot the per-player stat files, and store everything in Postgres.

The log read position is persisted between runs, so restarting the
collector never re-ingests or skips lines.

Configuration comes from the YAML file given with --config and from
MC_* environment variables (MC_SERVER_DIR, MC_POSTGRES_DSN, ...);
environment variables take precedence.

Examples:
  # Run the loop (default interval: 2m)
  MC_POSTGRES_DSN=postgres://mclog@localhost/mclog mclog collect

  # Single cycle, e.g. from cron
  mclog collect --once

  # With a config file
  mclog collect --config /etc/mclog.yaml`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().BoolVar(&collectOnce, "once", false,
		"Run a single collection cycle and exit")
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.PostgresDSN == "" {
		return fmt.Errorf("no Postgres DSN configured (set MC_POSTGRES_DSN or postgres_dsn in the config file)")
	}
	// Fail fast on a missing server install instead of silently collecting
	// nothing from the conventional paths.
	if err := cfg.ValidateServerDir(); err != nil {
		return err
	}

	flush, err := reporting.Init(cfg.SentryDSN)
	if err != nil {
		return fmt.Errorf("initializing error reporting: %w", err)
	}
	defer flush()

	logger.Info("connecting to database")
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	migrator := storage.NewMigrator(db, logger.With("component", "migrator"))
	if err := migrator.Migrate(ctx, cfg.DBSchema); err != nil {
		return err
	}

	sink := storage.NewPostgresSink(db, cfg.DBSchema)
	c := collector.New(cfg, sink, logger)
	defer c.Close()

	if collectOnce {
		_, err := c.CollectOnce(ctx)
		return err
	}

	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
