// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Tenant utilities",
}

var tenantHashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Convert tenant ids to and from the x-tenant-id header format",
}

var tenantHashEncodeCmd = &cobra.Command{
	Use:   "encode [id]",
	Short: "Encode a numeric tenant id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hasher, err := hasherFromFlags(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 0 {
			return fmt.Errorf("invalid tenant id: %q", args[0])
		}

		hash, err := hasher.Encode(id)
		if err != nil {
			return fmt.Errorf("failed to encode tenant id: %w", err)
		}

		cmd.Println(hash)
		return nil
	},
}

var tenantHashDecodeCmd = &cobra.Command{
	Use:   "decode [hash]",
	Short: "Decode an x-tenant-id header value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hasher, err := hasherFromFlags(cmd)
		if err != nil {
			return err
		}

		id, err := hasher.Decode(args[0])
		if err != nil {
			return fmt.Errorf("failed to decode tenant hash: %w", err)
		}

		cmd.Println(id)
		return nil
	},
}

var tenantInviteCmd = &cobra.Command{
	Use:   "invite [email]",
	Short: "Invite a member to the tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := clientFromFlags(cmd).Invite(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to invite member: %w", err)
		}

		printInvitations(inv)
		return nil
	},
}

var tenantInvitationCmd = &cobra.Command{
	Use:   "invitation [id]",
	Short: "Show a tenant invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := clientFromFlags(cmd).Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get invitation: %w", err)
		}

		printInvitations(inv)
		return nil
	},
}

var tenantUninviteCmd = &cobra.Command{
	Use:   "uninvite [email]",
	Short: "Remove the invitations sent to an email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := clientFromFlags(cmd).Remove(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove invitation: %w", err)
		}

		cmd.Printf("Invitations deleted: %d\n", resp.Deleted)
		if resp.Revoked {
			cmd.Println("Tenant membership revoked")
		}
		return nil
	},
}

func hasherFromFlags(cmd *cobra.Command) (*requestctx.Hasher, error) {
	salt, _ := cmd.Flags().GetString("salt")
	minLength, _ := cmd.Flags().GetInt("min-length")

	return requestctx.NewHasher(salt, minLength)
}

func clientFromFlags(cmd *cobra.Command) *invitationsClient {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	token, _ := cmd.Flags().GetString("token")
	loginType, _ := cmd.Flags().GetString("login-type")
	tenantHash, _ := cmd.Flags().GetString("tenant")

	return newInvitationsClient(endpoint, token, loginType, tenantHash)
}

func printInvitations(invitations ...*tenant.InvitationResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tVERIFIED\tEXPIRES AT")
	for _, inv := range invitations {
		fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", inv.ID, inv.Email, inv.Verified, inv.ExpiresAt.Format(time.RFC3339))
	}
	w.Flush()
}

func init() {
	tenantHashCmd.PersistentFlags().String("salt", "tenant", "hashids salt, must match TENANT_HASH_SALT")
	tenantHashCmd.PersistentFlags().Int("min-length", 8, "hashids minimum length, must match TENANT_HASH_MIN_LENGTH")
	tenantHashCmd.AddCommand(tenantHashEncodeCmd, tenantHashDecodeCmd)

	for _, c := range []*cobra.Command{tenantInviteCmd, tenantInvitationCmd, tenantUninviteCmd} {
		c.Flags().String("endpoint", "http://localhost:8080", "API base URL including the route prefix")
		c.Flags().String("token", "", "Bearer token of a tenant owner")
		c.Flags().String("login-type", string(types.LoginTypeCredentials), "Login type of the bearer token")
		c.Flags().String("tenant", "", "x-tenant-id header value")
		_ = c.MarkFlagRequired("token")
		_ = c.MarkFlagRequired("tenant")
	}

	tenantCmd.AddCommand(tenantHashCmd, tenantInviteCmd, tenantInvitationCmd, tenantUninviteCmd)
	rootCmd.AddCommand(tenantCmd)
}
