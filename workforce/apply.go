/*
apply.go - Merge staffing updates onto the baseline schedule

PURPOSE:
  Produces the adjusted assignment list: a copy of the baseline schedule
  with every update record applied in log order. The baseline snapshot
  is never mutated; every adjusted entry is an owned copy.

UPDATE SEMANTICS (matched case-insensitively):
  "new hire"        Synthesize a fresh Active entry at the key, even if
                    one already exists (overwrite). Role and shift come
                    from the details text, with "Associate"/"Morning"
                    defaults.
  "absence"         Existing entry -> status Unavailable. No entry -> no-op.
  "shift change"    Existing entry -> new shift if extractable, else keep.
  "shift extension" Existing entry -> shift "Full Day", no text parsing.
  "role change"     Existing entry -> new role if extractable, else
                    status Transferred (unparseable role changes are
                    treated as a transfer, not dropped).
  anything else     No-op. Permissive ingestion: unrecognized update
                    types are accepted and ignored.

ORDERING:
  Records are applied in the snapshot's given order. Later records for
  the same (date, employee) override earlier ones within the pass; there
  is no sorting or deduplication by timestamp. The output preserves
  baseline order with new-hire keys appended, though downstream
  aggregation re-groups by coverage key anyway.
*/
package workforce

import "strings"

// mergeKey identifies one employee-day. At most one adjusted entry
// exists per key.
type mergeKey struct {
	Date       Date
	EmployeeID int
}

// ApplyUpdates merges the update log onto the baseline schedule and
// returns the adjusted entry list. Inputs are not modified.
func ApplyUpdates(schedule *ScheduleSnapshot, updates *UpdateSnapshot) []ScheduleEntry {
	adjusted := make(map[mergeKey]*ScheduleEntry, len(schedule.Entries))
	order := make([]mergeKey, 0, len(schedule.Entries))

	for _, entry := range schedule.Entries {
		key := mergeKey{Date: entry.Date, EmployeeID: entry.EmployeeID}
		copied := entry
		if _, seen := adjusted[key]; !seen {
			order = append(order, key)
		}
		adjusted[key] = &copied
	}

	for _, update := range updates.Updates {
		key := mergeKey{Date: update.Date, EmployeeID: update.EmployeeID}
		lowered := strings.ToLower(update.UpdateType)

		if lowered == UpdateNewHire {
			if _, seen := adjusted[key]; !seen {
				order = append(order, key)
			}
			adjusted[key] = newHireEntry(update)
			continue
		}

		entry, ok := adjusted[key]
		if !ok {
			continue
		}

		switch {
		case strings.Contains(lowered, UpdateAbsence):
			entry.Status = StatusUnavailable
		case strings.Contains(lowered, UpdateShiftChange):
			if shift, ok := ExtractShift(update.Details); ok {
				entry.Shift = shift
			}
		case strings.Contains(lowered, UpdateShiftExtension):
			entry.Shift = "Full Day"
		case strings.Contains(lowered, UpdateRoleChange):
			if role, ok := ExtractRole(update.Details); ok {
				entry.Role = role
			} else {
				entry.Status = StatusTransferred
			}
		}
	}

	result := make([]ScheduleEntry, 0, len(adjusted))
	for _, key := range order {
		result = append(result, *adjusted[key])
	}
	return result
}

// newHireEntry synthesizes a schedule entry from a new-hire update.
func newHireEntry(update UpdateRecord) *ScheduleEntry {
	role, ok := ExtractRole(update.Details)
	if !ok {
		role = "Associate"
	}
	shift, ok := ExtractShift(update.Details)
	if !ok {
		shift = "Morning"
	}
	return &ScheduleEntry{
		Date:       update.Date,
		EmployeeID: update.EmployeeID,
		Name:       update.Name,
		Role:       role,
		Shift:      shift,
		Status:     StatusActive,
	}
}
