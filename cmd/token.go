package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/pkg/logger"
)

// tokenCommand constructs the 'token' subcommand that mints a signed token
// pair for a given actor ID using the configured secrets. Useful for local
// API exploration without going through the login flow.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates an access/refresh token pair for a given actor ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")

			tokens := auth.NewTokenManager(auth.NewOptions(cfg))
			pair, err := tokens.IssuePair(subject, email, name)
			if err != nil {
				logger.Fatal(context.Background(), "could not issue token pair", zap.Error(err))
			}

			fmt.Println("access: " + pair.AccessToken)   //nolint: forbidigo
			fmt.Println("refresh: " + pair.RefreshToken) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "Token subject (employer or job seeker ID)")
	cmd.Flags().String("email", "", "Email claim of the access token")
	cmd.Flags().String("name", "", "Name claim of the access token")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
