/*
handlers.go - HTTP API handlers for the workforce coverage engine

PURPOSE:
  Exposes the coverage engine via REST. Handles HTTP request/response,
  JSON serialization, and delegates all semantics to the workforce
  package.

ENDPOINTS:
  GET /health                                   Liveness / readiness probe
  GET /api/workforce/schedule                   Baseline schedule snapshot
  GET /api/workforce/updates                    Staffing update snapshot
  GET /api/workforce/daily-staff?date=          Entries for one day
  GET /api/workforce/daily-staff-updates?date=  Updates for one day
  GET /api/workforce/coverage?date=&role=&shift= Coverage report

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Unparseable date parameter or filter
  - 404: No data for the requested date, or dataset missing/empty
  - 500: Snapshot parse failures and other internal errors
  The mapping goes through workforce.IsClientError / IsNotFound, so
  handlers never match on concrete error types.

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
  - workforce/engine.go: Query semantics
*/
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/warp/workforce-engine/workforce"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *workforce.Engine
	Log    *zap.Logger
}

// NewHandler creates a new handler around the engine. A nil logger
// falls back to zap.NewNop.
func NewHandler(engine *workforce.Engine, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Engine: engine, Log: log}
}

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// Health verifies that the schedule dataset is readable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Engine.Schedule(r.Context())
	if err != nil {
		h.writeEngineError(w, "Schedule dataset unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok", Records: len(snapshot.Entries)})
}

// =============================================================================
// WORKFORCE HANDLERS
// =============================================================================

// GetSchedule returns the complete baseline schedule snapshot.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Engine.Schedule(r.Context())
	if err != nil {
		h.writeEngineError(w, "Failed to load schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleSnapshotDTO(snapshot))
}

// GetUpdates returns the full staffing update snapshot.
func (h *Handler) GetUpdates(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Engine.Updates(r.Context())
	if err != nil {
		h.writeEngineError(w, "Failed to load updates", err)
		return
	}
	writeJSON(w, http.StatusOK, toUpdateSnapshotDTO(snapshot))
}

// GetDailyStaff returns the employees scheduled for one date.
func (h *Handler) GetDailyStaff(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	entries, err := h.Engine.DailyStaff(r.Context(), date)
	if err != nil {
		h.writeEngineError(w, "Failed to get daily staff", err)
		return
	}

	dtos := make([]ScheduleEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = toScheduleEntryDTO(entry)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetDailyStaffUpdates returns the updates recorded for one date.
func (h *Handler) GetDailyStaffUpdates(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	records, err := h.Engine.DailyUpdates(r.Context(), date)
	if err != nil {
		h.writeEngineError(w, "Failed to get daily staff updates", err)
		return
	}

	dtos := make([]UpdateRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = toUpdateRecordDTO(record)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCoverage merges schedule and updates into the coverage report.
func (h *Handler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	query := workforce.CoverageQuery{
		Date:  r.URL.Query().Get("date"),
		Role:  r.URL.Query().Get("role"),
		Shift: r.URL.Query().Get("shift"),
	}

	report, err := h.Engine.Coverage(r.Context(), query)
	if err != nil {
		h.writeEngineError(w, "Failed to compute coverage", err)
		return
	}
	writeJSON(w, http.StatusOK, toCoverageReportDTO(report))
}

// =============================================================================
// HELPERS
// =============================================================================

// dateParam parses the mandatory ?date= query parameter. On failure it
// writes the 400 response and returns ok=false.
func (h *Handler) dateParam(w http.ResponseWriter, r *http.Request) (workforce.Date, bool) {
	raw := r.URL.Query().Get("date")
	date, err := workforce.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date parameter (use YYYY-MM-DD)", err)
		return workforce.Date{}, false
	}
	return date, true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, message string, err error) {
	switch {
	case workforce.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	case workforce.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	default:
		h.Log.Error(message, zap.Error(err))
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
