/*
Package workforce provides the core coverage reconciliation engine.

PURPOSE:
  This package contains the domain types and algorithms for merging a
  baseline staffing schedule with out-of-band staffing updates (absences,
  shift changes, role changes, new hires, extensions) into an adjusted
  staffing view, and for deriving per-(date, shift, role) coverage deltas,
  risk classifications, and recommendations.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date: A calendar day (used as part of merge and coverage keys)
  - ScheduleEntry: One employee assignment for one day
  - UpdateRecord: One out-of-band staffing change
  - CoverageKey: The (date, shift, role) aggregation grain
  - StaffingInsight / CoverageReport: Derived output artifacts

DESIGN PRINCIPLES:
  1. Immutability: Snapshots are loaded once and never mutated; the
     applier works on defensive copies (copy-on-write per entry)
  2. Determinism: Insights are sorted by coverage key so two runs over
     the same inputs produce identical reports
  3. Precision: The report summary uses decimal.Decimal for the coverage
     rate to avoid floating-point drift
  4. Leniency: Unrecognized update types are accepted and ignored

SEE ALSO:
  - apply.go: Update merge semantics
  - aggregate.go: Baseline/available counting
  - insight.go: Risk classification and report assembly
  - engine.go: Query facade over snapshot sources
*/
package workforce

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Calendar day (no time-of-day, no zone)
// =============================================================================

// Date is a civil calendar date. It is comparable, so it can be used
// directly inside map keys, unlike time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string { return d.Time().Format(dateLayout) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal
// to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// =============================================================================
// DATE RANGE - Inclusive interval covered by a snapshot
// =============================================================================

type DateRange struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// Validate checks that the range is well formed (start <= end).
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("date_range is missing start_date or end_date")
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("date_range end %s before start %s", r.End, r.Start)
	}
	return nil
}

// =============================================================================
// SCHEDULE - Baseline staffing assignments
// =============================================================================

// Common status values. Status is free text; anything not Unavailable or
// Transferred counts as available during aggregation.
const (
	StatusActive      = "Active"
	StatusUnavailable = "Unavailable"
	StatusTransferred = "Transferred"
)

// ScheduleEntry is one employee assignment for one day. Within a single
// snapshot, (Date, EmployeeID) identifies the entry - it is the merge key
// the applier uses to match updates against the baseline.
type ScheduleEntry struct {
	Date       Date   `json:"date"`
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Shift      string `json:"shift"`
	Status     string `json:"status"`
}

// ScheduleSnapshot is the full baseline schedule dataset. Treated as
// immutable once loaded.
type ScheduleSnapshot struct {
	DateRange DateRange       `json:"date_range"`
	Entries   []ScheduleEntry `json:"staff_schedule"`
}

// =============================================================================
// UPDATES - Out-of-band staffing changes
// =============================================================================

// Recognized update types. Matching is case-insensitive; "new hire" is
// matched exactly, the rest by containment. Anything else is a no-op.
const (
	UpdateNewHire        = "new hire"
	UpdateAbsence        = "absence"
	UpdateShiftChange    = "shift change"
	UpdateShiftExtension = "shift extension"
	UpdateRoleChange     = "role change"
)

// UpdateRecord is one staffing change keyed to (Date, EmployeeID).
type UpdateRecord struct {
	Date       Date      `json:"date"`
	EmployeeID int       `json:"employee_id"`
	Name       string    `json:"name"`
	UpdateType string    `json:"update_type"`
	Details    string    `json:"details"`
	UpdatedBy  string    `json:"updated_by"`
	Timestamp  time.Time `json:"timestamp"`
}

// UpdateSnapshot is the full staffing update log. Record order matters:
// the applier processes records in this order, later records override
// earlier ones for the same key.
type UpdateSnapshot struct {
	DateRange DateRange      `json:"date_range"`
	Updates   []UpdateRecord `json:"staff_updates"`
}

// =============================================================================
// COVERAGE - Derived aggregation output
// =============================================================================

// CoverageKey is the aggregation grain. Multiple entries map to one key.
type CoverageKey struct {
	Date  Date
	Shift string
	Role  string
}

// Compare orders keys by date, then shift, then role (byte-wise).
func (k CoverageKey) Compare(other CoverageKey) int {
	if c := k.Date.Compare(other.Date); c != 0 {
		return c
	}
	if k.Shift != other.Shift {
		if k.Shift < other.Shift {
			return -1
		}
		return 1
	}
	if k.Role != other.Role {
		if k.Role < other.Role {
			return -1
		}
		return 1
	}
	return 0
}

type RiskLevel string

const (
	RiskStable   RiskLevel = "stable"
	RiskMonitor  RiskLevel = "monitor"
	RiskCritical RiskLevel = "critical"
)

// StaffingInsight is the per-key coverage verdict. Recomputed on every
// query, never persisted.
type StaffingInsight struct {
	Date           Date      `json:"date"`
	Shift          string    `json:"shift"`
	Role           string    `json:"role"`
	Scheduled      int       `json:"scheduled"`
	Available      int       `json:"available"`
	Delta          int       `json:"delta"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
}

func (i StaffingInsight) Key() CoverageKey {
	return CoverageKey{Date: i.Date, Shift: i.Shift, Role: i.Role}
}

// ReportMetadata echoes the requested filters back to the caller along
// with the final insight count, so callers can detect when the
// empty-filter fallback kicked in.
type ReportMetadata struct {
	DateFilter    string `json:"date_filter,omitempty"`
	RoleFilter    string `json:"role_filter,omitempty"`
	ShiftFilter   string `json:"shift_filter,omitempty"`
	TotalInsights int    `json:"total_insights"`
}

// ReportSummary rolls the insight list up into headline numbers.
type ReportSummary struct {
	TotalScheduled int             `json:"total_scheduled"`
	TotalAvailable int             `json:"total_available"`
	Stable         int             `json:"stable"`
	Monitor        int             `json:"monitor"`
	Critical       int             `json:"critical"`
	CoverageRate   decimal.Decimal `json:"coverage_rate"`
}

// CoverageReport is the full output artifact.
type CoverageReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	DateRange   DateRange         `json:"date_range"`
	Insights    []StaffingInsight `json:"insights"`
	Metadata    ReportMetadata    `json:"metadata"`
	Summary     ReportSummary     `json:"summary"`
}
