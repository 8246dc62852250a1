/*
Package jsonfile loads workforce snapshots from JSON documents on disk.

PURPOSE:
  Implements workforce.ScheduleSource and workforce.UpdateSource over the
  persisted input format: one JSON document for the baseline schedule and
  one for the staffing update log. Loading is strict - malformed JSON,
  unparseable dates, or missing required fields fail the whole load with
  a workforce.ErrSnapshotParse error, never a partial snapshot.

CACHING:
  Schedule() and Updates() parse each file once per process lifetime and
  serve the cached snapshot afterwards (memoized on first call, safe for
  concurrent readers). Caching is an optimization, not part of the
  contract: LoadSchedule and LoadUpdates always hit the disk, and tests
  use them to observe fresh reads. Refresh/invalidation is an external
  reload concern, not handled here.

ERRORS:
  Absent file      workforce.ErrSnapshotMissing
  Invalid content  workforce.ErrSnapshotParse
  Both are wrapped in *workforce.SnapshotError carrying the file path.

SEE ALSO:
  - workforce/engine.go: Source interface definitions
  - store/sqlite: Database-backed snapshot source
*/
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/warp/workforce-engine/workforce"
)

// Store reads the two snapshot documents from fixed paths.
type Store struct {
	schedulePath string
	updatesPath  string

	scheduleOnce sync.Once
	schedule     *workforce.ScheduleSnapshot
	scheduleErr  error

	updatesOnce sync.Once
	updates     *workforce.UpdateSnapshot
	updatesErr  error
}

func New(schedulePath, updatesPath string) *Store {
	return &Store{schedulePath: schedulePath, updatesPath: updatesPath}
}

// Schedule returns the schedule snapshot, parsing the file on first call.
func (s *Store) Schedule(ctx context.Context) (*workforce.ScheduleSnapshot, error) {
	s.scheduleOnce.Do(func() {
		s.schedule, s.scheduleErr = s.LoadSchedule(ctx)
	})
	return s.schedule, s.scheduleErr
}

// Updates returns the update snapshot, parsing the file on first call.
func (s *Store) Updates(ctx context.Context) (*workforce.UpdateSnapshot, error) {
	s.updatesOnce.Do(func() {
		s.updates, s.updatesErr = s.LoadUpdates(ctx)
	})
	return s.updates, s.updatesErr
}

// LoadSchedule reads and validates the schedule document, bypassing the
// cache. This is the fresh-read path.
func (s *Store) LoadSchedule(_ context.Context) (*workforce.ScheduleSnapshot, error) {
	data, err := readSnapshotFile(s.schedulePath)
	if err != nil {
		return nil, err
	}
	var snapshot workforce.ScheduleSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, parseError(s.schedulePath, err)
	}
	if err := validateSchedule(&snapshot); err != nil {
		return nil, parseError(s.schedulePath, err)
	}
	return &snapshot, nil
}

// LoadUpdates reads and validates the update document, bypassing the cache.
func (s *Store) LoadUpdates(_ context.Context) (*workforce.UpdateSnapshot, error) {
	data, err := readSnapshotFile(s.updatesPath)
	if err != nil {
		return nil, err
	}
	var snapshot workforce.UpdateSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, parseError(s.updatesPath, err)
	}
	if err := validateUpdates(&snapshot); err != nil {
		return nil, parseError(s.updatesPath, err)
	}
	return &snapshot, nil
}

func readSnapshotFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &workforce.SnapshotError{Source: path, Err: workforce.ErrSnapshotMissing}
	}
	if err != nil {
		return nil, &workforce.SnapshotError{Source: path, Err: err}
	}
	return data, nil
}

func parseError(path string, err error) error {
	return &workforce.SnapshotError{
		Source: path,
		Err:    fmt.Errorf("%w: %v", workforce.ErrSnapshotParse, err),
	}
}

// validateSchedule enforces required fields. Status is the one optional
// field; it defaults to Active.
func validateSchedule(snapshot *workforce.ScheduleSnapshot) error {
	if err := snapshot.DateRange.Validate(); err != nil {
		return err
	}
	for i := range snapshot.Entries {
		entry := &snapshot.Entries[i]
		if entry.Date.IsZero() {
			return fmt.Errorf("staff_schedule[%d]: missing date", i)
		}
		if entry.EmployeeID == 0 {
			return fmt.Errorf("staff_schedule[%d]: missing employee_id", i)
		}
		if entry.Name == "" || entry.Role == "" || entry.Shift == "" {
			return fmt.Errorf("staff_schedule[%d]: missing name, role or shift", i)
		}
		if entry.Status == "" {
			entry.Status = workforce.StatusActive
		}
	}
	return nil
}

func validateUpdates(snapshot *workforce.UpdateSnapshot) error {
	if err := snapshot.DateRange.Validate(); err != nil {
		return err
	}
	for i, record := range snapshot.Updates {
		if record.Date.IsZero() {
			return fmt.Errorf("staff_updates[%d]: missing date", i)
		}
		if record.EmployeeID == 0 {
			return fmt.Errorf("staff_updates[%d]: missing employee_id", i)
		}
		if record.UpdateType == "" {
			return fmt.Errorf("staff_updates[%d]: missing update_type", i)
		}
		if record.UpdatedBy == "" {
			return fmt.Errorf("staff_updates[%d]: missing updated_by", i)
		}
		if record.Timestamp.IsZero() {
			return fmt.Errorf("staff_updates[%d]: missing timestamp", i)
		}
	}
	return nil
}
