/*
handlers.go - HTTP API handlers for the attendance engine

PURPOSE:
  Exposes the attendance engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the attendance package.

ENDPOINTS:
  Records:
    POST   /api/records/validate   Validate every record
    POST   /api/records/dedupe     Collapse duplicate records

  Classification:
    POST   /api/classify           Classify one date
    POST   /api/daily-hours        One record's footprint on one date
    POST   /api/calendar           Classify every day of a range, with totals
    POST   /api/aggregate          Billing-cycle totals only
    POST   /api/export             Calendar and totals as an XLSX download

    Every range endpoint deduplicates records first, so /api/aggregate and
    the summary of /api/calendar agree for the same body.

  Cache:
    DELETE /api/cache              Drop memoized classifications

  Scenarios:
    GET    /api/scenarios               List demo record sets
    POST   /api/scenarios/{id}/calendar Calendar of a demo record set

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Engine: cached classification facade
  - Logger: request-scoped failures are logged here
  - validate: struct-tag checks on request envelopes

REQUEST FLOW:
  1. Decode JSON body (size-limited)
  2. Validate the envelope
  3. Call the engine
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, envelope validation, bad record data
  - 404: Unknown scenario
  - 500: Internal errors

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo record sets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/report"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 4 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Engine   *attendance.Engine
	Logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a new handler. A nil logger is replaced by a no-op one.
func NewHandler(engine *attendance.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		Engine:   engine,
		Logger:   logger,
		validate: v,
	}
}

// =============================================================================
// RECORD HANDLERS
// =============================================================================

// ValidateRecords checks every record and reports each result in input order.
func (h *Handler) ValidateRecords(w http.ResponseWriter, r *http.Request) {
	var req RecordsRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp := ValidateResponse{AllValid: true, Results: make([]ValidationDTO, len(req.Records))}
	for i, dto := range req.Records {
		res := attendance.Validate(dto.toRecord())
		resp.Results[i] = ValidationDTO{Index: i, IsValid: res.IsValid, Errors: res.Errors}
		if resp.Results[i].Errors == nil {
			resp.Results[i].Errors = []string{}
		}
		if !res.IsValid {
			resp.AllValid = false
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// DedupeRecords keeps the latest record per (customer, employee, date).
func (h *Handler) DedupeRecords(w http.ResponseWriter, r *http.Request) {
	var req RecordsRequest
	if !h.decode(w, r, &req) {
		return
	}
	deduped := attendance.Dedupe(toRecords(req.Records))
	writeJSON(w, http.StatusOK, RecordsResponse{Records: toRecordDTOs(deduped)})
}

// =============================================================================
// CLASSIFICATION HANDLERS
// =============================================================================

func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.Engine.Classify(req.Date, toRecords(req.Records))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClassificationDTO(req.Date, res))
}

func (h *Handler) DailyHours(w http.ResponseWriter, r *http.Request) {
	var req DailyHoursRequest
	if !h.decode(w, r, &req) {
		return
	}
	hours, err := attendance.DailyHours(req.Record.toRecord(), req.Date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DailyHoursResponse{Date: req.Date, Hours: hours})
}

func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	var req RangeRequest
	if !h.decode(w, r, &req) {
		return
	}
	cal, sum, err := h.Engine.Report(toRecords(req.Records), req.RangeStart, req.RangeEnd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCalendarResponse(cal, sum))
}

// Aggregate returns the cycle totals without the per-day calendar.
func (h *Handler) Aggregate(w http.ResponseWriter, r *http.Request) {
	var req RangeRequest
	if !h.decode(w, r, &req) {
		return
	}
	records := attendance.Dedupe(toRecords(req.Records))
	sum, err := attendance.Aggregate(records, req.RangeStart, req.RangeEnd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(sum))
}

// Export streams the calendar as a workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req RangeRequest
	if !h.decode(w, r, &req) {
		return
	}
	cal, sum, err := h.Engine.Report(toRecords(req.Records), req.RangeStart, req.RangeEnd)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(cal.Range)))
	if err := report.WriteCalendarXLSX(w, cal, sum); err != nil {
		// Headers are already out; all we can do is log.
		h.Logger.Error("export failed", zap.String("range", cal.Range.String()), zap.Error(err))
	}
}

// =============================================================================
// CACHE HANDLERS
// =============================================================================

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.Engine.ClearCache()
	h.Logger.Info("classification cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.toDTO()
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ScenarioCalendar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := findScenario(id)
	if !ok {
		writeError(w, http.StatusNotFound, "scenario not found", fmt.Errorf("unknown scenario %q", id))
		return
	}
	cal, sum, err := h.Engine.Report(s.Records, s.RangeStart, s.RangeEnd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCalendarResponse(cal, sum))
}

// =============================================================================
// HELPERS
// =============================================================================

func toCalendarResponse(cal *attendance.Calendar, sum attendance.Summary) CalendarResponse {
	resp := CalendarResponse{
		Days:    make([]DayDTO, len(cal.Days)),
		Counts:  make(map[string]int),
		Summary: toSummaryDTO(sum),
	}
	for i, d := range cal.Days {
		resp.Days[i] = toDayDTO(d)
	}
	for c, n := range cal.Counts() {
		resp.Counts[string(c)] = n
	}
	return resp
}

// decode reads a JSON body into v and checks its validate tags. On failure it
// writes the 400 response and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: fields})
			return false
		}
		writeError(w, http.StatusBadRequest, "validation failed", err)
		return false
	}
	return true
}

// fail maps an engine error to a status. Bad input is the client's problem;
// anything else is logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if attendance.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "invalid records", err)
		return
	}
	h.Logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error", err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
