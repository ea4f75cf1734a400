package main

import (
	"fmt"

	"estate/internal/account"
	"estate/internal/config"
	"estate/internal/entitlement"
	"estate/pkg/authtoken"
	"estate/pkg/domain"
	"estate/pkg/identity/local"
	"estate/pkg/logger"
	"estate/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that opens a session for an
// existing user and prints its bearer token. The session lives in redis like
// any other, so the token is accepted by the API until it expires or the
// session ends.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Opens a session for given user ID and prints its token",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			subject, _ := cmd.Flags().GetString("subject")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(ctx, "invalid user ID", zap.String("subject", subject), zap.Error(err))
			}

			signer, err := authtoken.NewSignerFromConfig(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			sessions, closeSessions := getRedis(ctx, cfg)
			defer closeSessions()

			provider := local.New(strg, local.NewOptions(cfg))
			user, err := provider.User(ctx, userID)
			if err != nil {
				logger.Fatal(ctx, "could not get user", zap.Error(err))
			}

			accounts := account.New(provider, sessions, strg, signer,
				entitlement.NewQuotaTable(cfg), metrics.NoopInstruments())
			res, err := accounts.OpenSession(ctx, *user)
			if err != nil {
				logger.Fatal(ctx, "could not open session", zap.Error(err))
			}

			fmt.Println(res.Token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID to open the session for")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
