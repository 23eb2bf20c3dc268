// Package ingest bulk-loads snapshot files through the same save path the
// API uses.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/squadtrack/squadtrack/internal/dates"
	"github.com/squadtrack/squadtrack/internal/store"
)

// Entry is one record of a snapshot file: the save payload plus the player
// identity the API takes from the URL path.
type Entry struct {
	PlayerID    string                 `json:"player_id"`
	Name        string                 `json:"name"`
	Age         string                 `json:"age"`
	TSI         string                 `json:"TSI"`
	Salary      string                 `json:"salary"`
	Specialties string                 `json:"specialties"`
	Form        string                 `json:"form"`
	Fitness     string                 `json:"fitness"`
	Skills      map[string]interface{} `json:"skills"`
	Date        string                 `json:"date"`
}

// Result tracks counts and errors from an import run.
type Result struct {
	SnapshotsSaved int
	Errors         []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the import.
func (r *Result) Summary() string {
	return fmt.Sprintf("snapshots=%d errors=%d", r.SnapshotsSaved, len(r.Errors))
}

// ImportFile loads a JSON array of entries and saves each one. Per-entry
// failures are collected, not fatal. Dates fall back to today exactly like
// the API save path, and every entry appends a new history row.
func ImportFile(ctx context.Context, st *store.Store, path string, logger *slog.Logger) Result {
	var result Result

	data, err := os.ReadFile(path)
	if err != nil {
		result.AddErrorf("read %s: %v", path, err)
		return result
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		result.AddErrorf("parse %s: %v", path, err)
		return result
	}

	for i, e := range entries {
		if e.PlayerID == "" {
			result.AddErrorf("entry %d: player_id is required", i)
			continue
		}

		sortable, err := dates.ToSortable(e.Date)
		if err != nil {
			sortable = dates.TodaySortable()
		}

		err = st.SaveSnapshot(ctx,
			store.Player{ID: e.PlayerID, Name: e.Name, Specialties: e.Specialties},
			store.Snapshot{
				PlayerID:     e.PlayerID,
				TSI:          e.TSI,
				Salary:       e.Salary,
				Fitness:      e.Fitness,
				Form:         e.Form,
				Skills:       e.Skills,
				SortableDate: sortable,
				Age:          e.Age,
			})
		if err != nil {
			result.AddErrorf("entry %d (%s): %v", i, e.PlayerID, err)
			continue
		}
		result.SnapshotsSaved++
		logger.Debug("imported snapshot", "player_id", e.PlayerID, "date", sortable)
	}

	return result
}
