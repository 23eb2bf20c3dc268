// Package store persists players and their append-only weekly snapshots.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/squadtrack/squadtrack/internal/config"
	"github.com/squadtrack/squadtrack/internal/dates"
)

// Player is the static roster entry, one row per external identity.
// Identity is supplied by the caller and never generated here.
type Player struct {
	ID          string
	Name        string
	Specialties string
}

// Snapshot is one weekly stats row. SortableDate must be in YYYY-MM-DD form.
type Snapshot struct {
	PlayerID     string
	TSI          string
	Salary       string
	Fitness      string
	Form         string
	Skills       map[string]interface{}
	SortableDate string
	Age          string
}

// Row is a snapshot joined with its player, shaped for the list response.
// Date is in DD/MM/YYYY form.
type Row struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Specialties string                 `json:"specialties"`
	Age         string                 `json:"age"`
	TSI         string                 `json:"TSI"`
	Salary      string                 `json:"salary"`
	Fitness     string                 `json:"fitness"`
	Form        string                 `json:"form"`
	Skills      map[string]interface{} `json:"skills"`
	Date        string                 `json:"date"`
}

// Filter narrows ListSnapshots. Zero values mean no filter; SortableDate
// must already be converted from the wire form.
type Filter struct {
	PlayerID     string
	SortableDate string
}

// Store runs roster queries against the sqlite file.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveSnapshot upserts the player's static info and appends a new stats row
// in a single transaction. The upsert overwrites name and specialties only;
// identity is immutable. Stats rows are never updated, even for a repeated
// identity and date; history only grows.
func (s *Store) SaveSnapshot(ctx context.Context, p Player, snap Snapshot) error {
	skills, err := json.Marshal(snap.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO `+config.PlayersTable+` (id, name, specialties)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			specialties = excluded.specialties`,
		p.ID, p.Name, p.Specialties,
	); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO `+config.PlayerStatsTable+` (player_id, tsi, salary, fitness, form, skills, date, age)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.PlayerID, snap.TSI, snap.Salary, snap.Fitness, snap.Form,
		string(skills), snap.SortableDate, snap.Age,
	); err != nil {
		return fmt.Errorf("append snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListSnapshots returns snapshots joined with player info, newest first.
// Ties on equal dates fall back to storage order, which is unspecified.
func (s *Store) ListSnapshots(ctx context.Context, f Filter) ([]Row, error) {
	query := `
		SELECT p.id, p.name, p.specialties,
		       s.age, s.tsi, s.salary, s.fitness, s.form, s.skills, s.date
		FROM ` + config.PlayerStatsTable + ` s
		JOIN ` + config.PlayersTable + ` p ON p.id = s.player_id`

	var (
		where []string
		args  []interface{}
	)
	if f.PlayerID != "" {
		where = append(where, "p.id = ?")
		args = append(args, f.PlayerID)
	}
	if f.SortableDate != "" {
		where = append(where, "s.date = ?")
		args = append(args, f.SortableDate)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY s.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty result serializes as [].
	result := make([]Row, 0)
	for rows.Next() {
		var (
			row    Row
			skills string
			stored string
			age    sql.NullString
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.Specialties,
			&age, &row.TSI, &row.Salary, &row.Fitness, &row.Form,
			&skills, &stored); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		row.Age = age.String
		if err := json.Unmarshal([]byte(skills), &row.Skills); err != nil {
			return nil, fmt.Errorf("decode skills for player %s: %w", row.ID, err)
		}
		// Values predating the sortable form are served as stored.
		if display, err := dates.ToDisplay(stored); err == nil {
			row.Date = display
		} else {
			row.Date = stored
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
