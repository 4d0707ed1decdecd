package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/winterarc/tracker/internal/config"
	"github.com/winterarc/tracker/internal/service"
)

func TokenCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.AuthEnabled() {
				return errors.New("AUTH_JWT_SECRET is not set, tokens are not verified")
			}

			auth := service.NewAuthService(cfg.AuthJWTSecret, cfg.AuthJWTIssuer, cfg.AuthJWTExpiry)
			token, err := auth.IssueToken(userID, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id placed in the sub claim")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
