/*
aggregate.go - Coverage counting over entry collections

Two independent counting passes grouped by (date, shift, role):
baseline counts ignore status entirely; available counts skip entries
whose status is Unavailable or Transferred (case-insensitive). Any other
status, including custom free-text ones, counts as available.
*/
package workforce

import "strings"

// BaselineCounts counts every entry in the original schedule, grouped
// by coverage key. Status is not considered.
func BaselineCounts(entries []ScheduleEntry) map[CoverageKey]int {
	counts := make(map[CoverageKey]int)
	for _, entry := range entries {
		counts[keyOf(entry)]++
	}
	return counts
}

// AvailableCounts counts entries in the adjusted collection that are
// still able to work their assignment.
func AvailableCounts(entries []ScheduleEntry) map[CoverageKey]int {
	counts := make(map[CoverageKey]int)
	for _, entry := range entries {
		if !isAvailable(entry.Status) {
			continue
		}
		counts[keyOf(entry)]++
	}
	return counts
}

func keyOf(entry ScheduleEntry) CoverageKey {
	return CoverageKey{Date: entry.Date, Shift: entry.Shift, Role: entry.Role}
}

// isAvailable implements the normalized status comparison in one place
// so the unavailable-status vocabulary cannot drift between callers.
func isAvailable(status string) bool {
	switch strings.ToLower(status) {
	case "unavailable", "transferred":
		return false
	default:
		return true
	}
}
