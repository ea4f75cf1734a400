package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"estate/internal/account"
	"estate/internal/admin"
	"estate/internal/agent"
	"estate/internal/api"
	"estate/internal/api/handler/v1handler"
	"estate/internal/config"
	"estate/internal/entitlement"
	"estate/internal/listing"
	"estate/internal/worker"
	"estate/pkg/authtoken"
	"estate/pkg/identity"
	"estate/pkg/identity/local"
	"estate/pkg/logger"
	"estate/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			quotas := entitlement.NewQuotaTable(cfg)
			if err := quotas.Validate(); err != nil {
				logger.Fatal(ctx, "invalid quota configuration", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)
			ins, err := metrics.NewInstruments(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create instruments", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			sessions, closeSessions := getRedis(ctx, cfg)
			defer closeSessions()

			signer, err := authtoken.NewSignerFromConfig(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}

			provider := local.New(strg, local.NewOptions(cfg))
			accounts := account.New(provider, sessions, strg, signer, quotas, ins)
			listings := listing.New(strg, sessions, quotas, ins, listing.NewOptions(cfg))

			// blocks and role changes end or rewrite live sessions
			unsubscribe := provider.Subscribe(func(ctx context.Context, change identity.Change) {
				if err := accounts.Apply(ctx, change); err != nil {
					logger.Error(ctx, "could not apply identity change",
						zap.Stringer("userId", change.UserID), zap.Error(err))
				}
			})
			defer unsubscribe()

			riverClient, err := worker.Start(ctx, strg.Pool, listings, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, v1handler.Deps{
				Accounts: accounts,
				Listings: listings,
				Agents:   agent.New(strg, sessions),
				Admin:    admin.New(strg, provider),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
