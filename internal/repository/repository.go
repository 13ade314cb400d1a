package repository

import (
	"context"
	"database/sql"
	"time"
)

// dbtx is satisfied by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// DailyCount is the number of translations recorded on one calendar day.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayRange returns [midnight, next midnight) for day in day's location.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := StartOfDay(day)
	return start, start.AddDate(0, 0, 1)
}

// CountByDay buckets timestamps into calendar days in loc. Input must be sorted
// newest first; the result keeps that order.
func CountByDay(times []time.Time, loc *time.Location) []DailyCount {
	if loc == nil {
		loc = time.Local
	}
	var history []DailyCount
	for _, t := range times {
		date := t.In(loc).Format(time.DateOnly)
		if n := len(history); n > 0 && history[n-1].Date == date {
			history[n-1].Count++
			continue
		}
		history = append(history, DailyCount{Date: date, Count: 1})
	}
	return history
}
