/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's model from the external API contract. Field names follow the
  frontend's camelCase record shape.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Struct tags (go-playground/validator) only check the request envelope.
  Record contents are checked by attendance.Validate so the client gets
  the engine's own messages.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// RECORDS
// =============================================================================

// RecordDTO is one attendance record on the wire.
type RecordDTO struct {
	Date       string     `json:"date"`
	Type       string     `json:"type"`
	StartTime  string     `json:"startTime,omitempty"`
	EndTime    string     `json:"endTime,omitempty"`
	DaysOffset int        `json:"daysOffset"`
	Hours      int        `json:"hours,omitempty"`
	Minutes    int        `json:"minutes,omitempty"`
	CustomerID string     `json:"customerId,omitempty"`
	EmployeeID string     `json:"employeeId,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

func (d RecordDTO) toRecord() attendance.Record {
	r := attendance.Record{
		Date:       d.Date,
		Type:       attendance.Category(d.Type),
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		DaysOffset: d.DaysOffset,
		Hours:      d.Hours,
		Minutes:    d.Minutes,
		CustomerID: d.CustomerID,
		EmployeeID: d.EmployeeID,
	}
	if d.UpdatedAt != nil {
		r.UpdatedAt = *d.UpdatedAt
	}
	if d.CreatedAt != nil {
		r.CreatedAt = *d.CreatedAt
	}
	return r
}

func toRecordDTO(r attendance.Record) RecordDTO {
	d := RecordDTO{
		Date:       r.Date,
		Type:       string(r.Type),
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		DaysOffset: r.DaysOffset,
		Hours:      r.Hours,
		Minutes:    r.Minutes,
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
	}
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		d.UpdatedAt = &t
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt
		d.CreatedAt = &t
	}
	return d
}

func toRecords(dtos []RecordDTO) []attendance.Record {
	records := make([]attendance.Record, len(dtos))
	for i, d := range dtos {
		records[i] = d.toRecord()
	}
	return records
}

func toRecordDTOs(records []attendance.Record) []RecordDTO {
	dtos := make([]RecordDTO, len(records))
	for i, r := range records {
		dtos[i] = toRecordDTO(r)
	}
	return dtos
}

// =============================================================================
// REQUESTS
// =============================================================================

// RecordsRequest carries a record set.
type RecordsRequest struct {
	Records []RecordDTO `json:"records" validate:"max=5000"`
}

// ClassifyRequest classifies one date.
type ClassifyRequest struct {
	Date    string      `json:"date" validate:"required"`
	Records []RecordDTO `json:"records" validate:"max=5000"`
}

// DailyHoursRequest asks for one record's footprint on one date.
type DailyHoursRequest struct {
	Date   string    `json:"date" validate:"required"`
	Record RecordDTO `json:"record"`
}

// RangeRequest covers a billing cycle.
type RangeRequest struct {
	RangeStart string      `json:"rangeStart" validate:"required"`
	RangeEnd   string      `json:"rangeEnd" validate:"required"`
	Records    []RecordDTO `json:"records" validate:"max=5000"`
}

// =============================================================================
// RESPONSES
// =============================================================================

type ValidationDTO struct {
	Index   int      `json:"index"`
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type ValidateResponse struct {
	AllValid bool            `json:"allValid"`
	Results  []ValidationDTO `json:"results"`
}

type RecordsResponse struct {
	Records []RecordDTO `json:"records"`
}

type ClassificationDTO struct {
	Date   string     `json:"date"`
	Type   string     `json:"type"`
	Label  string     `json:"label"`
	Rule   string     `json:"rule,omitempty"`
	Source *RecordDTO `json:"source,omitempty"`
}

func toClassificationDTO(date string, res attendance.ClassificationResult) ClassificationDTO {
	dto := ClassificationDTO{
		Date:  date,
		Type:  string(res.Type),
		Label: res.Label,
		Rule:  res.Rule,
	}
	if res.Source != nil {
		src := toRecordDTO(*res.Source)
		dto.Source = &src
	}
	return dto
}

type DailyHoursResponse struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

type DayDTO struct {
	ClassificationDTO
	Weekday         string           `json:"weekday"`
	NonWorkHours    decimal.Decimal  `json:"nonWorkHours"`
	OvertimeHours   decimal.Decimal  `json:"overtimeHours"`
	ActualWorkHours *decimal.Decimal `json:"actualWorkHours,omitempty"`
}

func toDayDTO(d attendance.Day) DayDTO {
	dto := DayDTO{
		ClassificationDTO: toClassificationDTO(d.Date.String(), d.Result),
		Weekday:           d.Date.Weekday().String(),
		NonWorkHours:      attendance.MinutesToHours(d.NonWorkMinutes),
		OvertimeHours:     attendance.MinutesToHours(d.OvertimeMinutes),
	}
	if d.Result.IsNormal() {
		hours := d.ActualWorkHours()
		dto.ActualWorkHours = &hours
	}
	return dto
}

type SummaryDTO struct {
	RangeStart   string          `json:"rangeStart"`
	RangeEnd     string          `json:"rangeEnd"`
	ValidDays    int             `json:"validDays"`
	WorkDays     decimal.Decimal `json:"workDays"`
	LeaveDays    decimal.Decimal `json:"leaveDays"`
	OvertimeDays decimal.Decimal `json:"overtimeDays"`
}

func toSummaryDTO(s attendance.Summary) SummaryDTO {
	return SummaryDTO{
		RangeStart:   s.Range.Start.String(),
		RangeEnd:     s.Range.End.String(),
		ValidDays:    s.ValidDays,
		WorkDays:     s.WorkDays,
		LeaveDays:    s.LeaveDays,
		OvertimeDays: s.OvertimeDays,
	}
}

type CalendarResponse struct {
	Days    []DayDTO       `json:"days"`
	Counts  map[string]int `json:"counts"`
	Summary SummaryDTO     `json:"summary"`
}

// ScenarioDTO describes a built-in demo record set.
type ScenarioDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	RangeStart  string      `json:"rangeStart"`
	RangeEnd    string      `json:"rangeEnd"`
	Records     []RecordDTO `json:"records"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
