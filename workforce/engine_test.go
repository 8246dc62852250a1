package workforce_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/workforce-engine/store"
	"github.com/warp/workforce-engine/workforce"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestEngine(t *testing.T, schedule *workforce.ScheduleSnapshot, updates *workforce.UpdateSnapshot) *workforce.Engine {
	t.Helper()
	mem := store.NewMemory()
	mem.SetSchedule(schedule)
	mem.SetUpdates(updates)
	return workforce.NewEngine(mem, mem)
}

// =============================================================================
// DAILY QUERIES
// =============================================================================

func TestDailyStaff_ReturnsEntriesForDate(t *testing.T) {
	sep20 := workforce.NewDate(2025, time.September, 20)
	engine := newTestEngine(t,
		snapshotWith(
			baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning"),
			baselineEntry(sep20, 2, "Beto", "Stocker", "Evening"),
			baselineEntry(sep19(), 3, "Caro", "Stocker", "Morning"),
		),
		updatesWith(),
	)

	entries, err := engine.DailyStaff(context.Background(), sep19())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].EmployeeID)
	assert.Equal(t, 3, entries[1].EmployeeID)
}

func TestDailyStaff_NoMatch_NotFound(t *testing.T) {
	engine := newTestEngine(t,
		snapshotWith(baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning")),
		updatesWith(),
	)

	_, err := engine.DailyStaff(context.Background(), workforce.NewDate(2030, time.January, 1))

	require.Error(t, err)
	assert.True(t, workforce.IsNotFound(err))
	var noStaff *workforce.NoStaffError
	require.ErrorAs(t, err, &noStaff)
	assert.Equal(t, "2030-01-01", noStaff.Date.String())
}

func TestDailyUpdates_NoMatch_NotFound(t *testing.T) {
	engine := newTestEngine(t,
		snapshotWith(),
		updatesWith(update(sep19(), 1, "Ana", "Absence", "")),
	)

	records, err := engine.DailyUpdates(context.Background(), sep19())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = engine.DailyUpdates(context.Background(), workforce.NewDate(2030, time.January, 1))
	assert.True(t, workforce.IsNotFound(err))
}

// =============================================================================
// COVERAGE REPORT
// =============================================================================

func TestCoverage_EndToEnd_AbsenceCreatesMonitorInsight(t *testing.T) {
	// GIVEN: One baseline entry and one absence for it
	// WHEN: Computing coverage
	// THEN: scheduled=1, available=0, delta=-1, risk=monitor, and the
	//       monitor recommendation names the role and shift

	engine := newTestEngine(t,
		snapshotWith(baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning")),
		updatesWith(update(sep19(), 1, "Ana", "absence", "")),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{})
	require.NoError(t, err)
	require.Len(t, report.Insights, 1)

	insight := report.Insights[0]
	assert.Equal(t, sep19(), insight.Date)
	assert.Equal(t, "Morning", insight.Shift)
	assert.Equal(t, "Cashier", insight.Role)
	assert.Equal(t, 1, insight.Scheduled)
	assert.Equal(t, 0, insight.Available)
	assert.Equal(t, -1, insight.Delta)
	assert.Equal(t, workforce.RiskMonitor, insight.RiskLevel)
	assert.Equal(t,
		"Consider reallocating staff to cover the Cashier role during the Morning shift.",
		insight.Recommendation)

	assert.Equal(t, 1, report.Metadata.TotalInsights)
	assert.Equal(t, report.DateRange, workforce.DateRange{
		Start: workforce.NewDate(2025, time.September, 15),
		End:   workforce.NewDate(2025, time.September, 21),
	})
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestCoverage_EmptyUpdateLog_AllStable(t *testing.T) {
	// GIVEN: Any baseline and an empty update log
	// WHEN: Computing coverage
	// THEN: Every insight has delta 0 and risk stable

	engine := newTestEngine(t,
		snapshotWith(
			baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning"),
			baselineEntry(sep19(), 2, "Beto", "Stocker", "Evening"),
			baselineEntry(sep19(), 3, "Caro", "Cashier", "Morning"),
		),
		updatesWith(),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{})
	require.NoError(t, err)

	for _, insight := range report.Insights {
		assert.Equal(t, insight.Scheduled, insight.Available, "key %+v", insight.Key())
		assert.Equal(t, 0, insight.Delta)
		assert.Equal(t, workforce.RiskStable, insight.RiskLevel)
	}
}

func TestCoverage_NewHireOnUnscheduledKey_Surfaces(t *testing.T) {
	// GIVEN: A new hire on a (date, shift, role) combination that has no
	//        baseline presence
	// WHEN: Computing coverage
	// THEN: The key surfaces with scheduled=0, available=1, delta=+1

	engine := newTestEngine(t,
		snapshotWith(),
		updatesWith(update(sep19(), 7, "Caro", "New Hire", "Joined as Barista, assigned to Evening shift")),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{})
	require.NoError(t, err)
	require.Len(t, report.Insights, 1)

	insight := report.Insights[0]
	assert.Equal(t, "Barista", insight.Role)
	assert.Equal(t, "Evening", insight.Shift)
	assert.Equal(t, 0, insight.Scheduled)
	assert.Equal(t, 1, insight.Available)
	assert.Equal(t, 1, insight.Delta)
	assert.Equal(t, workforce.RiskStable, insight.RiskLevel)
}

func TestCoverage_Filters_AndSemantics_CaseInsensitive(t *testing.T) {
	engine := newTestEngine(t,
		snapshotWith(
			baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning"),
			baselineEntry(sep19(), 2, "Beto", "Cashier", "Evening"),
			baselineEntry(sep19(), 3, "Caro", "Stocker", "Morning"),
		),
		updatesWith(),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{
		Role:  "cashier",
		Shift: "MORNING",
	})
	require.NoError(t, err)
	require.Len(t, report.Insights, 1)
	assert.Equal(t, "Cashier", report.Insights[0].Role)
	assert.Equal(t, "Morning", report.Insights[0].Shift)

	assert.Equal(t, "cashier", report.Metadata.RoleFilter)
	assert.Equal(t, "MORNING", report.Metadata.ShiftFilter)
	assert.Equal(t, 1, report.Metadata.TotalInsights)
}

func TestCoverage_DateFilter(t *testing.T) {
	sep20 := workforce.NewDate(2025, time.September, 20)
	engine := newTestEngine(t,
		snapshotWith(
			baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning"),
			baselineEntry(sep20, 2, "Beto", "Cashier", "Morning"),
		),
		updatesWith(),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{Date: "2025-09-20"})
	require.NoError(t, err)
	require.Len(t, report.Insights, 1)
	assert.Equal(t, sep20, report.Insights[0].Date)
	assert.Equal(t, "2025-09-20", report.Metadata.DateFilter)
}

func TestCoverage_FiltersMatchNothing_FallsBackToFullList(t *testing.T) {
	// GIVEN: Filters that match no insight
	// WHEN: Computing coverage
	// THEN: The FULL insight list comes back, and the metadata still
	//       echoes the requested filters with the final count

	engine := newTestEngine(t,
		snapshotWith(
			baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning"),
			baselineEntry(sep19(), 2, "Beto", "Stocker", "Evening"),
		),
		updatesWith(),
	)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{Role: "Astronaut"})
	require.NoError(t, err)
	assert.Len(t, report.Insights, 2)
	assert.Equal(t, "Astronaut", report.Metadata.RoleFilter)
	assert.Equal(t, 2, report.Metadata.TotalInsights)
}

func TestCoverage_InvalidDateFilter_InvalidArgument(t *testing.T) {
	engine := newTestEngine(t,
		snapshotWith(baselineEntry(sep19(), 1, "Ana", "Cashier", "Morning")),
		updatesWith(),
	)

	_, err := engine.Coverage(context.Background(), workforce.CoverageQuery{Date: "not-a-date"})

	require.Error(t, err)
	assert.True(t, workforce.IsClientError(err))
	assert.ErrorIs(t, err, workforce.ErrInvalidFilter)

	var filterErr *workforce.FilterError
	require.ErrorAs(t, err, &filterErr)
	assert.Equal(t, "not-a-date", filterErr.Value)
}

func TestCoverage_EmptyDataset_NotFound(t *testing.T) {
	// GIVEN: Empty schedule and update snapshots
	// WHEN: Computing coverage with filters
	// THEN: NotFound carrying the attempted filter values

	engine := newTestEngine(t, snapshotWith(), updatesWith())

	_, err := engine.Coverage(context.Background(), workforce.CoverageQuery{Role: "Cashier"})

	require.Error(t, err)
	assert.True(t, workforce.IsNotFound(err))

	var noInsights *workforce.NoInsightsError
	require.ErrorAs(t, err, &noInsights)
	assert.Equal(t, "Cashier", noInsights.RoleFilter)
}

func TestCoverage_MissingSnapshot_SurfacesLoadError(t *testing.T) {
	// GIVEN: A store with no schedule dataset
	// WHEN: Computing coverage
	// THEN: The load error surfaces unchanged, no partial report

	mem := store.NewMemory()
	mem.SetUpdates(updatesWith())
	engine := workforce.NewEngine(mem, mem)

	report, err := engine.Coverage(context.Background(), workforce.CoverageQuery{})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, workforce.ErrSnapshotMissing)
}
