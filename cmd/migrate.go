// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/migrations"
)

const formatJSON = "json"

// migrateCmd applies the embedded schema migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run the embedded database migrations. The DSN defaults to the DSN environment variable.`,
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid command: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down accepts a target version, got %q", args)
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	target := int64(-1)
	if len(args) > 1 {
		target, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return fmt.Errorf("no DSN provided, use --dsn or set DSN")
	}

	format, _ := cmd.Flags().GetString("format")

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == formatJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return writeResults(out, format, results)
	case "down":
		results, err := migrateDown(ctx, provider, target)
		if err != nil {
			return err
		}
		return writeResults(out, format, results)
	case "status":
		return migrationStatus(ctx, provider, format, out)
	case "check":
		return migrationCheck(ctx, provider, format, out)
	}

	return nil
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	return db, nil
}

// migrateDown rolls back one migration, or every migration above target.
func migrateDown(ctx context.Context, provider *goose.Provider, target int64) ([]*goose.MigrationResult, error) {
	if target >= 0 {
		return provider.DownTo(ctx, target)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return nil, err
	}

	return []*goose.MigrationResult{result}, nil
}

func writeResults(out io.Writer, format string, results []*goose.MigrationResult) error {
	if format != formatJSON {
		for _, r := range results {
			fmt.Fprintln(out, r.String())
		}
		return nil
	}

	if results == nil {
		results = []*goose.MigrationResult{}
	}

	return json.NewEncoder(out).Encode(map[string]any{"applied": results})
}

func migrationStatus(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintln(out, "    Applied At                  Migration")
	fmt.Fprintln(out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

// migrationCheck fails when migrations are pending, deploy pipelines gate on it.
func migrationCheck(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	status := "ok"
	if pending {
		status = "pending"
	}

	if format == formatJSON {
		if err := json.NewEncoder(out).Encode(map[string]any{"status": status, "version": current}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "database at version %d, status %s\n", current, status)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}
