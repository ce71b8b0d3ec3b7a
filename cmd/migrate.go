// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/tcpfleet/agent-platform/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status] [version]",
	Short: "Run database migrations",
	Long:  `Run database migrations`,
	Args:  validateMigrateArgs(),
	Run:   runMigrate(),
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	_ = migrateCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateCmd)
}

func validateMigrateArgs() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}

		if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
			return err
		}

		switch args[0] {
		case "up", "down", "status":
		default:
			return fmt.Errorf("invalid first argument: %q", args[0])
		}

		// A target version is only meaningful for "down".
		if len(args) == 2 {
			if args[0] != "down" {
				return fmt.Errorf("invalid argument combination: %q", args)
			}
			if version, err := strconv.Atoi(args[1]); err != nil || version < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}

		return nil
	}
}

func runMigrate() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := -1
		if len(args) > 1 {
			version, _ = strconv.Atoi(args[1])
		}

		dsn, _ := cmd.Flags().GetString("dsn")

		if err := migrate(cmd.Context(), cmd, dsn, command, version); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	}
}

func migrate(ctx context.Context, cmd *cobra.Command, dsn, command string, version int) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			cmd.Printf("applied %s\n", r.Source.Path)
		}
	case "down":
		if version == -1 {
			result, err := provider.Down(ctx)
			if err != nil {
				return err
			}
			cmd.Printf("reverted %s\n", result.Source.Path)
			return nil
		}
		results, err := provider.DownTo(ctx, int64(version))
		if err != nil {
			return err
		}
		for _, r := range results {
			cmd.Printf("reverted %s\n", r.Source.Path)
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		cmd.Println("    Applied At                  Migration")
		cmd.Println("    =======================================")
		for _, s := range statuses {
			appliedAt := "Pending"
			if s.State == goose.StateApplied {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			cmd.Printf("    %-24s -- %s\n", appliedAt, s.Source.Path)
		}
	}

	return nil
}
