/*
engine.go - Query facade over the workforce snapshot sources

PURPOSE:
  Exposes the engine's query operations to transport layers. The engine
  itself is stateless: every call reads the two immutable snapshots from
  its sources, transforms in memory, and returns a fresh result. There
  are no locks and no shared mutable state, so concurrent callers are
  safe by construction. Caching, if any, lives inside the sources.

OPERATIONS:
  Schedule       Full baseline schedule snapshot
  Updates        Full staffing update log
  DailyStaff     Baseline entries for one date (NotFound when empty)
  DailyUpdates   Update records for one date (NotFound when empty)
  Coverage       Merged coverage report with optional filters

FILTERING:
  Filters AND together; role and shift match exactly but
  case-insensitively. If the filtered subset is empty the FULL insight
  list is returned instead - callers detect this through the metadata
  echo (requested filters + final count). NotFound fires only when the
  dataset itself yields zero insights.

SEE ALSO:
  - apply.go, aggregate.go, insight.go: The derivation pipeline
  - store/: Snapshot source implementations
*/
package workforce

import (
	"context"
	"strings"
	"time"
)

// ScheduleSource loads the baseline schedule snapshot. Implementations
// may cache process-wide but must fail with ErrSnapshotMissing /
// ErrSnapshotParse per the load contract.
type ScheduleSource interface {
	Schedule(ctx context.Context) (*ScheduleSnapshot, error)
}

// UpdateSource loads the staffing update log snapshot.
type UpdateSource interface {
	Updates(ctx context.Context) (*UpdateSnapshot, error)
}

// CoverageQuery carries the optional coverage filters. Zero values mean
// "no filter". Date is the raw caller-supplied string; parsing it is
// part of the query so the engine can reject bad values uniformly.
type CoverageQuery struct {
	Date  string
	Role  string
	Shift string
}

// Engine answers workforce queries over a schedule source and an update
// source. Safe for concurrent use.
type Engine struct {
	schedules ScheduleSource
	updates   UpdateSource
	now       func() time.Time
}

func NewEngine(schedules ScheduleSource, updates UpdateSource) *Engine {
	return &Engine{
		schedules: schedules,
		updates:   updates,
		now:       time.Now,
	}
}

// Schedule returns the baseline schedule snapshot.
func (e *Engine) Schedule(ctx context.Context) (*ScheduleSnapshot, error) {
	return e.schedules.Schedule(ctx)
}

// Updates returns the staffing update snapshot.
func (e *Engine) Updates(ctx context.Context) (*UpdateSnapshot, error) {
	return e.updates.Updates(ctx)
}

// DailyStaff returns the baseline entries scheduled for the given date.
func (e *Engine) DailyStaff(ctx context.Context, date Date) ([]ScheduleEntry, error) {
	snapshot, err := e.schedules.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	var entries []ScheduleEntry
	for _, entry := range snapshot.Entries {
		if entry.Date == date {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil, &NoStaffError{Date: date}
	}
	return entries, nil
}

// DailyUpdates returns the update records logged for the given date.
func (e *Engine) DailyUpdates(ctx context.Context, date Date) ([]UpdateRecord, error) {
	snapshot, err := e.updates.Updates(ctx)
	if err != nil {
		return nil, err
	}
	var records []UpdateRecord
	for _, record := range snapshot.Updates {
		if record.Date == date {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		return nil, &NoUpdatesError{Date: date}
	}
	return records, nil
}

// Coverage merges the baseline schedule with the update log and returns
// the derived coverage report, optionally filtered.
func (e *Engine) Coverage(ctx context.Context, query CoverageQuery) (*CoverageReport, error) {
	schedule, err := e.schedules.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	updates, err := e.updates.Updates(ctx)
	if err != nil {
		return nil, err
	}

	adjusted := ApplyUpdates(schedule, updates)
	insights := BuildInsights(BaselineCounts(schedule.Entries), AvailableCounts(adjusted))

	var dateFilter *Date
	if query.Date != "" {
		parsed, err := ParseDate(query.Date)
		if err != nil {
			return nil, &FilterError{Field: "date", Value: query.Date, Err: err}
		}
		dateFilter = &parsed
	}

	filtered := filterInsights(insights, dateFilter, query.Role, query.Shift)
	if len(filtered) == 0 {
		// Fallback: an empty match returns the full unfiltered list.
		// The metadata echo lets callers notice this happened.
		filtered = insights
	}
	if len(filtered) == 0 {
		return nil, &NoInsightsError{
			DateFilter:  query.Date,
			RoleFilter:  query.Role,
			ShiftFilter: query.Shift,
		}
	}

	metadata := ReportMetadata{
		RoleFilter:    query.Role,
		ShiftFilter:   query.Shift,
		TotalInsights: len(filtered),
	}
	if dateFilter != nil {
		metadata.DateFilter = dateFilter.String()
	}

	return &CoverageReport{
		GeneratedAt: e.now(),
		DateRange:   schedule.DateRange,
		Insights:    filtered,
		Metadata:    metadata,
		Summary:     Summarize(filtered),
	}, nil
}

// filterInsights applies the supplied filters with AND semantics,
// producing a derived view without touching the input slice.
func filterInsights(insights []StaffingInsight, date *Date, role, shift string) []StaffingInsight {
	var filtered []StaffingInsight
	for _, insight := range insights {
		if date != nil && insight.Date != *date {
			continue
		}
		if role != "" && !strings.EqualFold(insight.Role, role) {
			continue
		}
		if shift != "" && !strings.EqualFold(insight.Shift, shift) {
			continue
		}
		filtered = append(filtered, insight)
	}
	return filtered
}
