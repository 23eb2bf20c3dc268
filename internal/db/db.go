// Package db opens the sqlite store file and owns the connection pool
// settings and health checking.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/squadtrack/squadtrack/internal/config"
)

// DB wraps sql.DB with application-specific helpers.
type DB struct {
	*sql.DB
}

// New opens and validates the store file. Every request checks a scoped
// connection out of this pool and returns it when done; there is no
// process-wide handle outside the pool.
func New(ctx context.Context, cfg *config.Config) (*DB, error) {
	dsn := filepath.Clean(cfg.DatabasePath) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// Verify connectivity
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: sqlDB}, nil
}

// HealthCheck runs a trivial query to verify the store is reachable.
func (d *DB) HealthCheck(ctx context.Context) error {
	var n int
	return d.QueryRowContext(ctx, "SELECT 1").Scan(&n)
}
