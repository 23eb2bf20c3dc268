package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/squadtrack/squadtrack/internal/schema"
)

func TestSaveSnapshotRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	skills := map[string]interface{}{"playmaking": "12", "scoring": "9"}
	err := st.SaveSnapshot(ctx,
		Player{ID: "4411", Name: "Jan Kovacs", Specialties: "Technical"},
		Snapshot{
			PlayerID: "4411", TSI: "18250", Salary: "9800", Fitness: "8",
			Form: "7", Skills: skills, SortableDate: "2024-03-04", Age: "24",
		})
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	rows, err := st.ListSnapshots(ctx, Filter{})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.ID != "4411" || row.Name != "Jan Kovacs" || row.Specialties != "Technical" {
		t.Fatalf("player fields mismatch: %+v", row)
	}
	if row.TSI != "18250" || row.Salary != "9800" || row.Fitness != "8" || row.Form != "7" || row.Age != "24" {
		t.Fatalf("stats fields mismatch: %+v", row)
	}
	if !reflect.DeepEqual(row.Skills, skills) {
		t.Fatalf("skills did not round-trip: %+v", row.Skills)
	}
	if row.Date != "04/03/2024" {
		t.Fatalf("date = %q, want 04/03/2024", row.Date)
	}
}

func TestSaveSnapshotOverwritesPlayerKeepsHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"First Name", "Latest Name"} {
		err := st.SaveSnapshot(ctx,
			Player{ID: "77", Name: name, Specialties: "Quick"},
			Snapshot{
				PlayerID: "77", TSI: "100", Salary: "50", Fitness: "5",
				Form: "5", Skills: map[string]interface{}{}, SortableDate: "2024-01-01", Age: "19",
			})
		if err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
	}

	rows, err := st.ListSnapshots(ctx, Filter{PlayerID: "77"})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Name != "Latest Name" {
			t.Fatalf("expected upserted name on every row, got %q", row.Name)
		}
	}

	var players int
	if err := st.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&players); err != nil {
		t.Fatalf("count players: %v", err)
	}
	if players != 1 {
		t.Fatalf("expected a single player row, got %d", players)
	}
}

func TestListSnapshotsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	saveTestSnapshot(t, st, "1", "2024-01-08")
	saveTestSnapshot(t, st, "1", "2024-01-15")
	saveTestSnapshot(t, st, "2", "2024-01-08")

	rows, err := st.ListSnapshots(ctx, Filter{PlayerID: "1"})
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("player filter: expected 2 rows, got %d", len(rows))
	}

	rows, err = st.ListSnapshots(ctx, Filter{SortableDate: "2024-01-08"})
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("date filter: expected 2 rows, got %d", len(rows))
	}

	rows, err = st.ListSnapshots(ctx, Filter{PlayerID: "2", SortableDate: "2024-01-08"})
	if err != nil {
		t.Fatalf("list by player and date: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "2" {
		t.Fatalf("combined filter: unexpected rows %+v", rows)
	}

	rows, err = st.ListSnapshots(ctx, Filter{PlayerID: "nobody"})
	if err != nil {
		t.Fatalf("list with no matches: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	st := openTestStore(t)

	// Insert out of order; the query must sort by date descending.
	for _, date := range []string{"2024-02-05", "2024-03-04", "2024-01-01", "2024-02-26"} {
		saveTestSnapshot(t, st, "9", date)
	}

	rows, err := st.ListSnapshots(context.Background(), Filter{PlayerID: "9"})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}

	want := []string{"04/03/2024", "26/02/2024", "05/02/2024", "01/01/2024"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, row := range rows {
		if row.Date != want[i] {
			t.Fatalf("row %d date = %q, want %q", i, row.Date, want[i])
		}
	}
}

func saveTestSnapshot(t *testing.T, st *Store, playerID, sortableDate string) {
	t.Helper()
	err := st.SaveSnapshot(context.Background(),
		Player{ID: playerID, Name: "Player " + playerID, Specialties: "None"},
		Snapshot{
			PlayerID: playerID, TSI: "1000", Salary: "500", Fitness: "6",
			Form: "6", Skills: map[string]interface{}{"defending": "8"},
			SortableDate: sortableDate, Age: "21",
		})
	if err != nil {
		t.Fatalf("save snapshot for %s: %v", playerID, err)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	if err := schema.Apply(context.Background(), db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return New(db)
}
