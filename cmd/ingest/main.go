// Command ingest is the Squadtrack maintenance and bulk-import CLI.
//
// Usage:
//
//	squadtrack-ingest import --file snapshots.json
//	squadtrack-ingest migrate
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/squadtrack/squadtrack/internal/config"
	"github.com/squadtrack/squadtrack/internal/db"
	"github.com/squadtrack/squadtrack/internal/ingest"
	"github.com/squadtrack/squadtrack/internal/schema"
	"github.com/squadtrack/squadtrack/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "squadtrack-ingest",
		Short: "Squadtrack maintenance and bulk-import CLI",
	}

	root.AddCommand(importCmd())
	root.AddCommand(migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON snapshot file into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			return runWithDB(func(ctx context.Context, cfg *config.Config, database *db.DB) error {
				start := time.Now()
				result := ingest.ImportFile(ctx, store.New(database.DB), file, logger)
				logger.Info("Import finished",
					"file", file,
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("import error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON array of snapshot entries")
	return cmd
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and apply the additive column migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			// runWithDB already applies the schema; this command exists so
			// the migration can be run on its own, ahead of a deploy.
			return runWithDB(func(ctx context.Context, cfg *config.Config, database *db.DB) error {
				logger.Info("Schema ready", "path", cfg.DatabasePath)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithDB handles config loading, store opening, schema, and context
// cancellation.
func runWithDB(fn func(ctx context.Context, cfg *config.Config, database *db.DB) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	if err := schema.Apply(ctx, database.DB); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return fn(ctx, cfg, database)
}
