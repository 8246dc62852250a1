/*
Package sqlite provides a SQLite-backed workforce snapshot source.

PURPOSE:
  Implements workforce.ScheduleSource and workforce.UpdateSource on top
  of SQLite, for deployments where the snapshot documents are staged in
  a database by an external loader instead of shipped as JSON files.
  The same patterns apply to PostgreSQL - only minor dialect differences.

KEY TABLES:
  snapshot_ranges:   One row per dataset with its inclusive date range
  schedule_entries:  Baseline assignments, one row per (date, employee)
  staff_updates:     Update log; the id column preserves log order,
                     which the applier depends on

READ PATH:
  Schedule()/Updates() read the whole dataset on every call. A missing
  snapshot_ranges row means the dataset was never staged
  (ErrSnapshotMissing); rows that fail date parsing surface as
  ErrSnapshotParse. No partial snapshots are returned.

WRITE PATH:
  ImportSchedule/ImportUpdates replace the staged dataset atomically
  inside a transaction. They exist for the loader and for tests; the
  engine itself never writes.

WAL MODE:
  Opened with WAL so concurrent readers do not block the single writer.

SEE ALSO:
  - workforce/engine.go: Source interface definitions
  - store/jsonfile: Document-backed snapshot source
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/workforce-engine/workforce"
)

const (
	datasetSchedule = "schedule"
	datasetUpdates  = "updates"
)

// Store reads and stages workforce snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at the given path and migrates
// the schema. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot_ranges (
		dataset TEXT PRIMARY KEY,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedule_entries (
		date TEXT NOT NULL,
		employee_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		shift TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		PRIMARY KEY (date, employee_id)
	);

	CREATE TABLE IF NOT EXISTS staff_updates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		employee_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		update_type TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		updated_by TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_entries_date ON schedule_entries(date);
	CREATE INDEX IF NOT EXISTS idx_staff_updates_date ON staff_updates(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// READ PATH - Snapshot source implementation
// =============================================================================

// Schedule loads the staged schedule snapshot.
func (s *Store) Schedule(ctx context.Context) (*workforce.ScheduleSnapshot, error) {
	dateRange, err := s.loadRange(ctx, datasetSchedule)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, employee_id, name, role, shift, status
		FROM schedule_entries ORDER BY rowid`)
	if err != nil {
		return nil, &workforce.SnapshotError{Source: "sqlite schedule_entries", Err: err}
	}
	defer rows.Close()

	snapshot := &workforce.ScheduleSnapshot{DateRange: dateRange}
	for rows.Next() {
		var entry workforce.ScheduleEntry
		var date string
		if err := rows.Scan(&date, &entry.EmployeeID, &entry.Name, &entry.Role, &entry.Shift, &entry.Status); err != nil {
			return nil, &workforce.SnapshotError{Source: "sqlite schedule_entries", Err: err}
		}
		if entry.Date, err = parseStoredDate("schedule_entries.date", date); err != nil {
			return nil, err
		}
		snapshot.Entries = append(snapshot.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &workforce.SnapshotError{Source: "sqlite schedule_entries", Err: err}
	}
	return snapshot, nil
}

// Updates loads the staged update snapshot in log order.
func (s *Store) Updates(ctx context.Context) (*workforce.UpdateSnapshot, error) {
	dateRange, err := s.loadRange(ctx, datasetUpdates)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, employee_id, name, update_type, details, updated_by, timestamp
		FROM staff_updates ORDER BY id`)
	if err != nil {
		return nil, &workforce.SnapshotError{Source: "sqlite staff_updates", Err: err}
	}
	defer rows.Close()

	snapshot := &workforce.UpdateSnapshot{DateRange: dateRange}
	for rows.Next() {
		var record workforce.UpdateRecord
		var date, timestamp string
		if err := rows.Scan(&date, &record.EmployeeID, &record.Name, &record.UpdateType,
			&record.Details, &record.UpdatedBy, &timestamp); err != nil {
			return nil, &workforce.SnapshotError{Source: "sqlite staff_updates", Err: err}
		}
		if record.Date, err = parseStoredDate("staff_updates.date", date); err != nil {
			return nil, err
		}
		if record.Timestamp, err = time.Parse(time.RFC3339, timestamp); err != nil {
			return nil, &workforce.SnapshotError{
				Source: "sqlite staff_updates",
				Err:    fmt.Errorf("%w: bad timestamp %q: %v", workforce.ErrSnapshotParse, timestamp, err),
			}
		}
		snapshot.Updates = append(snapshot.Updates, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &workforce.SnapshotError{Source: "sqlite staff_updates", Err: err}
	}
	return snapshot, nil
}

func (s *Store) loadRange(ctx context.Context, dataset string) (workforce.DateRange, error) {
	var start, end string
	err := s.db.QueryRowContext(ctx,
		`SELECT start_date, end_date FROM snapshot_ranges WHERE dataset = ?`, dataset).
		Scan(&start, &end)
	if err == sql.ErrNoRows {
		return workforce.DateRange{}, &workforce.SnapshotError{
			Source: "sqlite " + dataset,
			Err:    workforce.ErrSnapshotMissing,
		}
	}
	if err != nil {
		return workforce.DateRange{}, &workforce.SnapshotError{Source: "sqlite " + dataset, Err: err}
	}

	startDate, err := parseStoredDate(dataset+".start_date", start)
	if err != nil {
		return workforce.DateRange{}, err
	}
	endDate, err := parseStoredDate(dataset+".end_date", end)
	if err != nil {
		return workforce.DateRange{}, err
	}
	return workforce.DateRange{Start: startDate, End: endDate}, nil
}

func parseStoredDate(column, value string) (workforce.Date, error) {
	date, err := workforce.ParseDate(value)
	if err != nil {
		return workforce.Date{}, &workforce.SnapshotError{
			Source: "sqlite " + column,
			Err:    fmt.Errorf("%w: bad date %q: %v", workforce.ErrSnapshotParse, value, err),
		}
	}
	return date, nil
}

// =============================================================================
// WRITE PATH - Staging for the external loader and tests
// =============================================================================

// ImportSchedule replaces the staged schedule dataset atomically.
func (s *Store) ImportSchedule(ctx context.Context, snapshot *workforce.ScheduleSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_entries`); err != nil {
		return err
	}
	if err := saveRange(ctx, tx, datasetSchedule, snapshot.DateRange); err != nil {
		return err
	}
	for _, entry := range snapshot.Entries {
		status := entry.Status
		if status == "" {
			status = workforce.StatusActive
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_entries (date, employee_id, name, role, shift, status)
			VALUES (?, ?, ?, ?, ?, ?)`,
			entry.Date.String(), entry.EmployeeID, entry.Name, entry.Role, entry.Shift, status)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportUpdates replaces the staged update dataset atomically,
// preserving the record order of the snapshot.
func (s *Store) ImportUpdates(ctx context.Context, snapshot *workforce.UpdateSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM staff_updates`); err != nil {
		return err
	}
	if err := saveRange(ctx, tx, datasetUpdates, snapshot.DateRange); err != nil {
		return err
	}
	for _, record := range snapshot.Updates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO staff_updates (date, employee_id, name, update_type, details, updated_by, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			record.Date.String(), record.EmployeeID, record.Name, record.UpdateType,
			record.Details, record.UpdatedBy, record.Timestamp.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func saveRange(ctx context.Context, tx *sql.Tx, dataset string, dateRange workforce.DateRange) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_ranges (dataset, start_date, end_date)
		VALUES (?, ?, ?)
		ON CONFLICT(dataset) DO UPDATE SET start_date = excluded.start_date, end_date = excluded.end_date`,
		dataset, dateRange.Start.String(), dateRange.End.String())
	return err
}
