/*
extract.go - Heuristic role/shift extraction from update detail text

PURPOSE:
  Update records carry free-text details ("Promoted to Shift Supervisor
  due to restructuring", "Reassigned from Morning to Evening shift").
  These helpers pull role and shift values out of that text with
  deliberately simple string matching so the applier stays branch-clear
  and the heuristics are unit-testable in isolation.

RULES:
  - Scanning happens on the lower-cased details string
  - A marker match takes the text after the first marker occurrence
  - Fragments are truncated at the first comma and the first " due",
    whichever comes first; shift fragments also drop a trailing
    " shift" word ("to Evening shift" means the Evening shift)
  - The result is trimmed and title-cased; an empty fragment counts
    as no extraction

These heuristics are intentionally fragile; they mirror how the update
log is actually written, not a grammar.
*/
package workforce

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var shiftMarkers = []string{" to ", " assigned to "}
var roleMarkers = []string{"promoted to", "joined as"}

// ExtractShift scans details for a shift assignment. Markers are tried
// in order; "full day" anywhere in the text is a fallback match.
func ExtractShift(details string) (string, bool) {
	lowered := strings.ToLower(details)
	for _, marker := range shiftMarkers {
		if i := strings.Index(lowered, marker); i >= 0 {
			frag := clipFragment(lowered[i+len(marker):], " shift")
			return titled(frag)
		}
	}
	if strings.Contains(lowered, "full day") {
		return "Full Day", true
	}
	return "", false
}

// ExtractRole scans details for a role assignment.
func ExtractRole(details string) (string, bool) {
	lowered := strings.ToLower(details)
	for _, marker := range roleMarkers {
		if i := strings.Index(lowered, marker); i >= 0 {
			frag := clipFragment(lowered[i+len(marker):])
			return titled(frag)
		}
	}
	return "", false
}

// clipFragment truncates at the first comma, the first " due", and any
// extra stop words supplied by the caller, then trims.
func clipFragment(s string, stops ...string) string {
	stops = append(stops, " due", ",")
	for _, stop := range stops {
		if i := strings.Index(s, stop); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// titled title-cases a non-empty fragment. Empty fragments count as no
// extraction.
func titled(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return cases.Title(language.Und).String(s), true
}
