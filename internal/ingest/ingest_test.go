package ingest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/squadtrack/squadtrack/internal/schema"
	"github.com/squadtrack/squadtrack/internal/store"
)

const snapshotFile = `[
	{
		"player_id": "101",
		"name": "Importable One",
		"age": "23",
		"TSI": "7100",
		"salary": "2600",
		"specialties": "Head",
		"form": "7",
		"fitness": "8",
		"skills": {"passing": "10"},
		"date": "19/02/2024"
	},
	{
		"player_id": "102",
		"name": "Importable Two",
		"age": "29",
		"TSI": "15400",
		"salary": "5400",
		"specialties": "Powerful",
		"form": "6",
		"fitness": "7",
		"skills": {"defending": "13"},
		"date": "not-a-date"
	},
	{
		"name": "No Identity",
		"age": "20",
		"TSI": "100",
		"salary": "50",
		"specialties": "None",
		"form": "5",
		"fitness": "5",
		"skills": {}
	}
]`

func TestImportFile(t *testing.T) {
	st, sqlDB := openTestStore(t)

	path := filepath.Join(t.TempDir(), "snapshots.json")
	if err := os.WriteFile(path, []byte(snapshotFile), 0o644); err != nil {
		t.Fatalf("write snapshot file: %v", err)
	}

	result := ImportFile(context.Background(), st, path, discardLogger())

	if result.SnapshotsSaved != 2 {
		t.Fatalf("snapshots saved = %d, want 2; errors: %v", result.SnapshotsSaved, result.Errors)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error for the missing identity, got %v", result.Errors)
	}
	if result.Summary() != "snapshots=2 errors=1" {
		t.Fatalf("summary = %q", result.Summary())
	}

	// The bad date on entry two falls back to today, so the row still lands.
	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM player_stats WHERE player_id = '102'").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 snapshot for player 102, got %d", count)
	}

	rows, err := st.ListSnapshots(context.Background(), store.Filter{PlayerID: "101"})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(rows) != 1 || rows[0].Date != "19/02/2024" {
		t.Fatalf("unexpected rows for player 101: %+v", rows)
	}
}

func TestImportFileMissing(t *testing.T) {
	st, _ := openTestStore(t)

	result := ImportFile(context.Background(), st, filepath.Join(t.TempDir(), "absent.json"), discardLogger())
	if result.SnapshotsSaved != 0 || len(result.Errors) != 1 {
		t.Fatalf("expected a single read error, got %+v", result)
	}
}

func TestImportFileMalformed(t *testing.T) {
	st, _ := openTestStore(t)

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	result := ImportFile(context.Background(), st, path, discardLogger())
	if result.SnapshotsSaved != 0 || len(result.Errors) != 1 {
		t.Fatalf("expected a single parse error, got %+v", result)
	}
}

func openTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	if err := schema.Apply(context.Background(), sqlDB); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return store.New(sqlDB), sqlDB
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
