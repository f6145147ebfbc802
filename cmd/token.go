// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/authentication"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtain bearer tokens for calling the API",
}

// tokenIssueCmd mints a credentials session token signed with JWT_SECRET.
var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a credentials login session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, _ := cmd.Flags().GetString("jwt-secret")
		if secret == "" {
			secret = os.Getenv("JWT_SECRET")
		}
		if secret == "" {
			return fmt.Errorf("no signing secret, use --jwt-secret or set JWT_SECRET")
		}

		subject, _ := cmd.Flags().GetString("subject")
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		lifetime, _ := cmd.Flags().GetDuration("lifetime")

		issuer := authentication.NewCredentialsVerifier(
			secret,
			lifetime,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor("token"),
			logging.NewNoopLogger(),
		)

		token, expiresAt, err := issuer.IssueToken(cmd.Context(), &types.Principal{
			ID:        subject,
			Email:     email,
			Name:      name,
			LoginType: types.LoginTypeCredentials,
		})
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"token":     token,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		})
	},
}

// tokenClientCredentialsCmd fetches an access token from the identity provider.
var tokenClientCredentialsCmd = &cobra.Command{
	Use:   "client-credentials",
	Short: "Get an access token using Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover issuer: %w", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		cmd.Println(token.AccessToken)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().String("jwt-secret", "", "Signing secret, defaults to $JWT_SECRET")
	tokenIssueCmd.Flags().String("subject", "", "Identity id carried in the sub claim")
	tokenIssueCmd.Flags().String("email", "", "Email of the session owner")
	tokenIssueCmd.Flags().String("name", "", "Display name of the session owner")
	tokenIssueCmd.Flags().Duration("lifetime", time.Hour, "Session lifetime")
	_ = tokenIssueCmd.MarkFlagRequired("subject")
	_ = tokenIssueCmd.MarkFlagRequired("email")

	tokenClientCredentialsCmd.Flags().String("client-id", "", "Client ID")
	tokenClientCredentialsCmd.Flags().String("client-secret", "", "Client Secret")
	tokenClientCredentialsCmd.Flags().String("token-url", "", "Token URL")
	tokenClientCredentialsCmd.Flags().String("issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenClientCredentialsCmd.Flags().StringSlice("scopes", []string{}, "Scopes (comma-separated)")
	_ = tokenClientCredentialsCmd.MarkFlagRequired("client-id")
	_ = tokenClientCredentialsCmd.MarkFlagRequired("client-secret")

	tokenCmd.AddCommand(tokenIssueCmd, tokenClientCredentialsCmd)
	rootCmd.AddCommand(tokenCmd)
}
