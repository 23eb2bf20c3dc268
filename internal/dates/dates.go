// Package dates converts between the wire date format (DD/MM/YYYY) and the
// sortable form (YYYY-MM-DD) stored in the stats table.
package dates

import "time"

const (
	// DisplayLayout is the day-first format spoken on the wire.
	DisplayLayout = "02/01/2006"
	// SortableLayout is the year-first form stored so ORDER BY sorts chronologically.
	SortableLayout = "2006-01-02"
)

// ToSortable parses a DD/MM/YYYY value and returns it in sortable form.
func ToSortable(display string) (string, error) {
	t, err := time.Parse(DisplayLayout, display)
	if err != nil {
		return "", err
	}
	return t.Format(SortableLayout), nil
}

// ToDisplay converts a stored sortable date back to DD/MM/YYYY.
func ToDisplay(sortable string) (string, error) {
	t, err := time.Parse(SortableLayout, sortable)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayLayout), nil
}

// TodaySortable returns the current date in sortable form.
func TodaySortable() string {
	return time.Now().Format(SortableLayout)
}
