package workforce_test

import (
	"testing"
	"time"

	"github.com/warp/workforce-engine/workforce"
)

// =============================================================================
// RISK CLASSIFICATION
// =============================================================================

func TestRiskFor(t *testing.T) {
	tests := []struct {
		delta int
		want  workforce.RiskLevel
	}{
		{delta: 3, want: workforce.RiskStable},
		{delta: 0, want: workforce.RiskStable},
		{delta: -1, want: workforce.RiskMonitor},
		{delta: -2, want: workforce.RiskCritical},
		{delta: -5, want: workforce.RiskCritical},
	}
	for _, tt := range tests {
		if got := workforce.RiskFor(tt.delta); got != tt.want {
			t.Errorf("RiskFor(%d) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestRecommendationFor(t *testing.T) {
	if got := workforce.RecommendationFor(0, "Cashier", "Morning"); got != "Adequate coverage available for the requested shift." {
		t.Errorf("stable recommendation = %q", got)
	}

	want := "Consider reallocating staff to cover the Cashier role during the Morning shift."
	if got := workforce.RecommendationFor(-1, "Cashier", "Morning"); got != want {
		t.Errorf("monitor recommendation = %q, want %q", got, want)
	}

	want = "Add at least 5 additional Stocker team member(s) for the Evening shift."
	if got := workforce.RecommendationFor(-5, "Stocker", "Evening"); got != want {
		t.Errorf("critical recommendation = %q, want %q", got, want)
	}
}

// =============================================================================
// INSIGHT ASSEMBLY
// =============================================================================

func TestBuildInsights_UnionOfKeys(t *testing.T) {
	// GIVEN: A key only in baseline and a key only in available
	// WHEN: Building insights
	// THEN: Both surface, with the missing side defaulting to 0

	d := workforce.NewDate(2025, time.September, 19)
	onlyBaseline := workforce.CoverageKey{Date: d, Shift: "Morning", Role: "Cashier"}
	onlyAvailable := workforce.CoverageKey{Date: d, Shift: "Night", Role: "Guard"}

	insights := workforce.BuildInsights(
		map[workforce.CoverageKey]int{onlyBaseline: 2},
		map[workforce.CoverageKey]int{onlyAvailable: 1},
	)

	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}

	first := insights[0]
	if first.Key() != onlyBaseline || first.Scheduled != 2 || first.Available != 0 || first.Delta != -2 {
		t.Errorf("baseline-only insight wrong: %+v", first)
	}
	if first.RiskLevel != workforce.RiskCritical {
		t.Errorf("risk = %q, want critical", first.RiskLevel)
	}

	second := insights[1]
	if second.Key() != onlyAvailable || second.Scheduled != 0 || second.Available != 1 || second.Delta != 1 {
		t.Errorf("available-only insight wrong: %+v", second)
	}
}

func TestBuildInsights_SortedByKey(t *testing.T) {
	// GIVEN: Keys across two dates, shifts, and roles
	// WHEN: Building insights
	// THEN: Output is ordered by date, then shift, then role

	d1 := workforce.NewDate(2025, time.September, 19)
	d2 := workforce.NewDate(2025, time.September, 20)
	baseline := map[workforce.CoverageKey]int{
		{Date: d2, Shift: "Evening", Role: "Cashier"}: 1,
		{Date: d1, Shift: "Morning", Role: "Stocker"}: 1,
		{Date: d1, Shift: "Morning", Role: "Cashier"}: 1,
		{Date: d1, Shift: "Evening", Role: "Cashier"}: 1,
	}

	insights := workforce.BuildInsights(baseline, nil)

	wantOrder := []workforce.CoverageKey{
		{Date: d1, Shift: "Evening", Role: "Cashier"},
		{Date: d1, Shift: "Morning", Role: "Cashier"},
		{Date: d1, Shift: "Morning", Role: "Stocker"},
		{Date: d2, Shift: "Evening", Role: "Cashier"},
	}
	for i, want := range wantOrder {
		if insights[i].Key() != want {
			t.Errorf("insight %d key = %+v, want %+v", i, insights[i].Key(), want)
		}
	}
}

func TestSummarize(t *testing.T) {
	d := workforce.NewDate(2025, time.September, 19)
	insights := workforce.BuildInsights(
		map[workforce.CoverageKey]int{
			{Date: d, Shift: "Morning", Role: "Cashier"}: 2,
			{Date: d, Shift: "Evening", Role: "Cashier"}: 2,
		},
		map[workforce.CoverageKey]int{
			{Date: d, Shift: "Morning", Role: "Cashier"}: 2,
			{Date: d, Shift: "Evening", Role: "Cashier"}: 1,
		},
	)

	summary := workforce.Summarize(insights)

	if summary.TotalScheduled != 4 || summary.TotalAvailable != 3 {
		t.Errorf("totals = %d/%d, want 4/3", summary.TotalScheduled, summary.TotalAvailable)
	}
	if summary.Stable != 1 || summary.Monitor != 1 || summary.Critical != 0 {
		t.Errorf("tallies = %d/%d/%d, want 1/1/0", summary.Stable, summary.Monitor, summary.Critical)
	}
	if got := summary.CoverageRate.String(); got != "75" {
		t.Errorf("coverage rate = %s, want 75", got)
	}
}

func TestSummarize_NothingScheduled_FullyCovered(t *testing.T) {
	summary := workforce.Summarize(nil)
	if got := summary.CoverageRate.String(); got != "100" {
		t.Errorf("coverage rate = %s, want 100", got)
	}
}
