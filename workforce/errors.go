/*
errors.go - Centralized error types for the coverage engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Transport layers map these to status codes via the classification
  helpers instead of matching on concrete types.

ERROR CATEGORIES:
  1. Not-found errors  - No data matches a date or filter set
  2. Snapshot errors   - Backing dataset missing or malformed
  3. Filter errors     - Caller-supplied filter value cannot be parsed

NOT AN ERROR:
  An unrecognized update type is a silent no-op during the merge, not an
  error. This permissive-ingestion policy is intentional.

SEE ALSO:
  - engine.go: Raises not-found and filter errors
  - store/jsonfile: Raises snapshot errors
*/
package workforce

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNoData is returned when a query matches no workforce records.
	ErrNoData = errors.New("no matching workforce data")

	// ErrSnapshotMissing is returned when a backing dataset is absent.
	ErrSnapshotMissing = errors.New("snapshot not found")

	// ErrSnapshotParse is returned when a backing dataset is present but
	// structurally invalid (malformed JSON, bad dates, missing fields).
	ErrSnapshotParse = errors.New("malformed snapshot")

	// ErrInvalidFilter is returned when a caller-supplied filter value
	// cannot be parsed (e.g. a date filter that is not a calendar date).
	ErrInvalidFilter = errors.New("invalid filter value")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NoStaffError reports that no schedule entries exist for a date.
type NoStaffError struct {
	Date Date
}

func (e *NoStaffError) Error() string {
	return fmt.Sprintf("no staffing records found for %s", e.Date)
}

func (e *NoStaffError) Unwrap() error { return ErrNoData }

// NoUpdatesError reports that no update records exist for a date.
type NoUpdatesError struct {
	Date Date
}

func (e *NoUpdatesError) Error() string {
	return fmt.Sprintf("no staffing updates found for %s", e.Date)
}

func (e *NoUpdatesError) Unwrap() error { return ErrNoData }

// NoInsightsError reports that a coverage query produced zero insights.
// It carries the attempted filters for diagnosability; per the fallback
// policy this only happens when the dataset itself is empty.
type NoInsightsError struct {
	DateFilter  string
	RoleFilter  string
	ShiftFilter string
}

func (e *NoInsightsError) Error() string {
	return fmt.Sprintf("no staffing insights available (date=%q role=%q shift=%q)",
		e.DateFilter, e.RoleFilter, e.ShiftFilter)
}

func (e *NoInsightsError) Unwrap() error { return ErrNoData }

// FilterError reports an unparseable filter value.
type FilterError struct {
	Field string
	Value string
	Err   error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid %s filter %q: %v", e.Field, e.Value, e.Err)
}

func (e *FilterError) Unwrap() error { return ErrInvalidFilter }

// SnapshotError reports a snapshot that could not be loaded or parsed.
type SnapshotError struct {
	Source string // which dataset (e.g. file path, table name)
	Err    error  // ErrSnapshotMissing, ErrSnapshotParse, or an I/O error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Source, e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates missing data rather
// than a malfunction.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoData) || errors.Is(err, ErrSnapshotMissing)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}
