package main

import (
	"context"
	"database/sql"
	"time"

	"provenance/config"
	"provenance/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	timeout time.Duration
}

// migrateFunc is one goose operation against the record store.
type migrateFunc func(ctx context.Context, db *sql.DB) error

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the record store schema",
		Long: `Apply, roll back or inspect the embedded SQL migrations.

The connection is read from config/config.yaml and POSTGRES_* environment overrides.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "abort when the operation takes longer")

	cmd.AddCommand(newMigrateCommand(opts, "up", "Apply every pending migration", migrations.Up))
	cmd.AddCommand(newMigrateCommand(opts, "down", "Roll back the most recent migration", migrations.Down))
	cmd.AddCommand(newMigrateCommand(opts, "status", "Print the applied state of every migration", migrations.Status))

	return cmd
}

func newMigrateCommand(opts *rootOptions, use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(ctx, db); err != nil {
				return err
			}

			cmd.Printf("migrate %s: done\n", use)

			return nil
		},
	}
}

func openDB() (*sql.DB, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return nil, errors.New("postgres is not configured")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, nil
}
