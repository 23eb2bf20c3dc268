// Package schema ensures the players and player_stats tables exist and
// performs the one additive column migration the service has ever needed.
// It runs once at controlled startup, before the router binds; a failure
// here is fatal to the process.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

// The foreign key on player_stats is declarative only: stores in the wild
// predate it and enforcement is left off.
const createTables = `
CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	name TEXT,
	specialties TEXT
);

CREATE TABLE IF NOT EXISTS player_stats (
	player_id TEXT,
	tsi TEXT,
	salary TEXT,
	fitness TEXT,
	form TEXT,
	skills TEXT,
	date TEXT,
	age TEXT,
	FOREIGN KEY (player_id) REFERENCES players(id)
);
`

// Apply creates both tables if absent and backfills the age column on
// player_stats tables created before it existed. Idempotent.
func Apply(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTables); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	if err := ensureAgeColumn(ctx, db); err != nil {
		return fmt.Errorf("ensure age column: %w", err)
	}
	return nil
}

// ensureAgeColumn adds player_stats.age in place, preserving existing rows.
func ensureAgeColumn(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info(player_stats)")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if name == "age" {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, "ALTER TABLE player_stats ADD COLUMN age TEXT")
	return err
}
