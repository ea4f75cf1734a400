package main

import (
	"os"

	"estate/internal/catalog"
	"estate/internal/config"
	"estate/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that loads a JSON catalog of
// properties and agents into the database.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads a property and agent catalog",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			path, _ := cmd.Flags().GetString("file")

			f, err := os.Open(path)
			if err != nil {
				logger.Fatal(ctx, "could not open catalog", zap.String("path", path), zap.Error(err))
			}
			defer f.Close()

			c, err := catalog.Load(f)
			if err != nil {
				logger.Fatal(ctx, "could not decode catalog", zap.String("path", path), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := catalog.Store(ctx, strg, c); err != nil {
				logger.Fatal(ctx, "could not store catalog", zap.Error(err))
			}
			logger.Info(ctx, "catalog stored",
				zap.Int("properties", len(c.Properties)),
				zap.Int("agents", len(c.Agents)))
		},
	}

	cmd.Flags().StringP("file", "f", "", "Catalog JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
