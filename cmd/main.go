// Command estate runs the listing API and its maintenance tasks. The
// --config flag is read before any subcommand runs.
package main

import (
	"context"
	"fmt"
	"os"

	"estate/internal/config"
	"estate/pkg/logger"
	"estate/pkg/sessionstore/redis"
	"estate/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres opens storage or exits. The returned func closes it.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis opens the session store or exits. The returned func closes it.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Store, func()) {
	store, err := redis.New(ctx, redis.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing redis client...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func main() {
	ctx := context.Background()

	// Subcommands hold on to cfg and only read it once it is loaded below.
	cfg := new(config.Config)
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "estate",
		Short:         "Property listings with per-session quotas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err //nolint: wrapcheck
			}
			*cfg = *loaded
			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "config file path")

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		seedCommand(cfg),
		JWTCommand(cfg),
	)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
