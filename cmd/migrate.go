package main

import (
	"context"
	"database/sql"
	"fmt"

	root "estate"
	"estate/internal/config"
	"estate/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations up to version, or to
// the latest one when version is zero.
func migrateSchema(db *sql.DB, version int64) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if version > 0 {
		if err := goose.UpTo(db, "migrations", version); err != nil {
			return fmt.Errorf("could not migrate schema to version %d: %w", version, err)
		}

		return nil
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	return nil
}

// migrateQueue brings the river job tables to their latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the listing
// schema and the job queue tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			version, _ := cmd.Flags().GetInt64("version")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB) //nolint: forcetypeassert

			if err := migrateSchema(db, version); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}

	cmd.Flags().Int64("version", 0, "Schema version to migrate to (latest when 0)")

	return cmd
}
