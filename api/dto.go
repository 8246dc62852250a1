/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures returned to clients. These types decouple
  the internal domain model from the external API contract: dates and
  timestamps are rendered as strings, and the decimal coverage rate is
  rendered as its plain string form.

NAMING CONVENTION:
  - *DTO: Response types returned to clients

VALIDATION:
  Query parameters are validated in handlers, not here. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Builds these from workforce types
*/
package api

import (
	"time"

	"github.com/warp/workforce-engine/workforce"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthDTO is the liveness payload: can we read the schedule dataset.
type HealthDTO struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

type DateRangeDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ScheduleEntryDTO struct {
	Date       string `json:"date"`
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Shift      string `json:"shift"`
	Status     string `json:"status"`
}

type ScheduleSnapshotDTO struct {
	DateRange     DateRangeDTO       `json:"date_range"`
	StaffSchedule []ScheduleEntryDTO `json:"staff_schedule"`
}

type UpdateRecordDTO struct {
	Date       string `json:"date"`
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	UpdateType string `json:"update_type"`
	Details    string `json:"details"`
	UpdatedBy  string `json:"updated_by"`
	Timestamp  string `json:"timestamp"`
}

type UpdateSnapshotDTO struct {
	DateRange    DateRangeDTO      `json:"date_range"`
	StaffUpdates []UpdateRecordDTO `json:"staff_updates"`
}

type StaffingInsightDTO struct {
	Date           string `json:"date"`
	Shift          string `json:"shift"`
	Role           string `json:"role"`
	Scheduled      int    `json:"scheduled"`
	Available      int    `json:"available"`
	Delta          int    `json:"delta"`
	RiskLevel      string `json:"risk_level"`
	Recommendation string `json:"recommendation"`
}

type ReportMetadataDTO struct {
	DateFilter    string `json:"date_filter,omitempty"`
	RoleFilter    string `json:"role_filter,omitempty"`
	ShiftFilter   string `json:"shift_filter,omitempty"`
	TotalInsights int    `json:"total_insights"`
}

type ReportSummaryDTO struct {
	TotalScheduled int    `json:"total_scheduled"`
	TotalAvailable int    `json:"total_available"`
	Stable         int    `json:"stable"`
	Monitor        int    `json:"monitor"`
	Critical       int    `json:"critical"`
	CoverageRate   string `json:"coverage_rate"`
}

type CoverageReportDTO struct {
	GeneratedAt string               `json:"generated_at"`
	DateRange   DateRangeDTO         `json:"date_range"`
	Insights    []StaffingInsightDTO `json:"insights"`
	Metadata    ReportMetadataDTO    `json:"metadata"`
	Summary     ReportSummaryDTO     `json:"summary"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toDateRangeDTO(r workforce.DateRange) DateRangeDTO {
	return DateRangeDTO{StartDate: r.Start.String(), EndDate: r.End.String()}
}

func toScheduleEntryDTO(e workforce.ScheduleEntry) ScheduleEntryDTO {
	return ScheduleEntryDTO{
		Date:       e.Date.String(),
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Role:       e.Role,
		Shift:      e.Shift,
		Status:     e.Status,
	}
}

func toScheduleSnapshotDTO(s *workforce.ScheduleSnapshot) ScheduleSnapshotDTO {
	entries := make([]ScheduleEntryDTO, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = toScheduleEntryDTO(e)
	}
	return ScheduleSnapshotDTO{DateRange: toDateRangeDTO(s.DateRange), StaffSchedule: entries}
}

func toUpdateRecordDTO(u workforce.UpdateRecord) UpdateRecordDTO {
	return UpdateRecordDTO{
		Date:       u.Date.String(),
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		UpdateType: u.UpdateType,
		Details:    u.Details,
		UpdatedBy:  u.UpdatedBy,
		Timestamp:  u.Timestamp.Format(time.RFC3339),
	}
}

func toUpdateSnapshotDTO(s *workforce.UpdateSnapshot) UpdateSnapshotDTO {
	updates := make([]UpdateRecordDTO, len(s.Updates))
	for i, u := range s.Updates {
		updates[i] = toUpdateRecordDTO(u)
	}
	return UpdateSnapshotDTO{DateRange: toDateRangeDTO(s.DateRange), StaffUpdates: updates}
}

func toCoverageReportDTO(r *workforce.CoverageReport) CoverageReportDTO {
	insights := make([]StaffingInsightDTO, len(r.Insights))
	for i, insight := range r.Insights {
		insights[i] = StaffingInsightDTO{
			Date:           insight.Date.String(),
			Shift:          insight.Shift,
			Role:           insight.Role,
			Scheduled:      insight.Scheduled,
			Available:      insight.Available,
			Delta:          insight.Delta,
			RiskLevel:      string(insight.RiskLevel),
			Recommendation: insight.Recommendation,
		}
	}
	return CoverageReportDTO{
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC3339),
		DateRange:   toDateRangeDTO(r.DateRange),
		Insights:    insights,
		Metadata: ReportMetadataDTO{
			DateFilter:    r.Metadata.DateFilter,
			RoleFilter:    r.Metadata.RoleFilter,
			ShiftFilter:   r.Metadata.ShiftFilter,
			TotalInsights: r.Metadata.TotalInsights,
		},
		Summary: ReportSummaryDTO{
			TotalScheduled: r.Summary.TotalScheduled,
			TotalAvailable: r.Summary.TotalAvailable,
			Stable:         r.Summary.Stable,
			Monitor:        r.Summary.Monitor,
			Critical:       r.Summary.Critical,
			CoverageRate:   r.Summary.CoverageRate.String(),
		},
	}
}
