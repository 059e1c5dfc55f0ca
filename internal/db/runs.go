package db

import (
	"database/sql"
	"fmt"
)

// Run is one recorded harness invocation. Passed/Total are meaningful
// for verify runs, DurationMillis for profile runs.
type Run struct {
	Mode           string
	TestPath       string
	Passed         int
	Total          int
	DurationMillis float64
	CreatedAt      string
}

func RecordRun(sqlDB *sql.DB, run Run) error {
	_, err := sqlDB.Exec(
		`INSERT INTO runs (mode, test_path, passed, total, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		run.Mode, run.TestPath, run.Passed, run.Total, run.DurationMillis,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func RecentRuns(sqlDB *sql.DB, limit int) ([]Run, error) {
	rows, err := sqlDB.Query(
		`SELECT mode, test_path, passed, total, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Mode, &r.TestPath, &r.Passed, &r.Total, &r.DurationMillis, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
