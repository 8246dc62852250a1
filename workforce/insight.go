/*
insight.go - Risk classification, recommendations, and report assembly

PURPOSE:
  Turns the baseline/available count maps into the ordered insight list
  and headline summary. Risk is a pure function of the delta; the
  recommendation templates are fixed text keyed off the same thresholds.

RISK THRESHOLDS:
  delta >= 0   stable
  delta == -1  monitor
  delta <= -2  critical
*/
package workforce

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RiskFor classifies a coverage delta.
func RiskFor(delta int) RiskLevel {
	switch {
	case delta >= 0:
		return RiskStable
	case delta <= -2:
		return RiskCritical
	default:
		return RiskMonitor
	}
}

// RecommendationFor returns the fixed recommendation text for a delta.
func RecommendationFor(delta int, role, shift string) string {
	switch {
	case delta >= 0:
		return "Adequate coverage available for the requested shift."
	case delta == -1:
		return fmt.Sprintf("Consider reallocating staff to cover the %s role during the %s shift.", role, shift)
	default:
		shortfall := -delta
		return fmt.Sprintf("Add at least %d additional %s team member(s) for the %s shift.", shortfall, role, shift)
	}
}

// BuildInsights derives one insight per key in the union of the two
// count maps, sorted ascending by coverage key. A key present on only
// one side defaults the other side to zero, so a new hire on a
// combination absent from the baseline still surfaces (and vice versa).
func BuildInsights(baseline, available map[CoverageKey]int) []StaffingInsight {
	union := make(map[CoverageKey]struct{}, len(baseline)+len(available))
	for key := range baseline {
		union[key] = struct{}{}
	}
	for key := range available {
		union[key] = struct{}{}
	}

	keys := make([]CoverageKey, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	insights := make([]StaffingInsight, 0, len(keys))
	for _, key := range keys {
		scheduled := baseline[key]
		avail := available[key]
		delta := avail - scheduled
		insights = append(insights, StaffingInsight{
			Date:           key.Date,
			Shift:          key.Shift,
			Role:           key.Role,
			Scheduled:      scheduled,
			Available:      avail,
			Delta:          delta,
			RiskLevel:      RiskFor(delta),
			Recommendation: RecommendationFor(delta, key.Role, key.Shift),
		})
	}
	return insights
}

// Summarize rolls the insight list up into headline numbers. The
// coverage rate is available/scheduled as a percentage with one decimal
// place; a report with nothing scheduled counts as fully covered.
func Summarize(insights []StaffingInsight) ReportSummary {
	summary := ReportSummary{}
	for _, insight := range insights {
		summary.TotalScheduled += insight.Scheduled
		summary.TotalAvailable += insight.Available
		switch insight.RiskLevel {
		case RiskStable:
			summary.Stable++
		case RiskMonitor:
			summary.Monitor++
		case RiskCritical:
			summary.Critical++
		}
	}
	if summary.TotalScheduled == 0 {
		summary.CoverageRate = decimal.NewFromInt(100)
		return summary
	}
	summary.CoverageRate = decimal.NewFromInt(int64(summary.TotalAvailable)).
		Div(decimal.NewFromInt(int64(summary.TotalScheduled))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return summary
}
