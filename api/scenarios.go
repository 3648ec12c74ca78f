/*
scenarios.go - Built-in demo record sets

PURPOSE:
  Provides small record sets that show the classification rules end to end.
  Each scenario carries the range it is meant to be viewed over, so the
  frontend can render it without any input.

SCENARIOS:
  1. overnight-leave:  24h leave starting in the morning
  2. afternoon-rest:   Overnight rest starting after noon
  3. multi-day-leave:  Three-day leave with middle days
  4. duplicate-edit:   Same day recorded twice, later edit wins
  5. border-trip:      Short out_of_beijing trip
*/
package api

import (
	"time"

	"github.com/warp/attendance-engine/attendance"
)

// Scenario is a named record set with its viewing range.
type Scenario struct {
	ID          string
	Name        string
	Description string
	RangeStart  string
	RangeEnd    string
	Records     []attendance.Record
}

func (s Scenario) toDTO() ScenarioDTO {
	return ScenarioDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		RangeStart:  s.RangeStart,
		RangeEnd:    s.RangeEnd,
		Records:     toRecordDTOs(s.Records),
	}
}

func demoRecord(date string, typ attendance.Category, start, end string, offset int) attendance.Record {
	return attendance.Record{
		Date:       date,
		Type:       typ,
		StartTime:  start,
		EndTime:    end,
		DaysOffset: offset,
		CustomerID: "demo",
		EmployeeID: "E001",
	}
}

func stamped(r attendance.Record, updated time.Time) attendance.Record {
	r.UpdatedAt = updated
	return r
}

var scenarios = []Scenario{
	{
		ID:          "overnight-leave",
		Name:        "Overnight Leave",
		Description: "Leave from 09:00 to 09:00 the next day. Only the first day shows leave; the next morning is normal.",
		RangeStart:  "2024-03-01",
		RangeEnd:    "2024-03-07",
		Records: []attendance.Record{
			demoRecord("2024-03-03", attendance.CategoryLeave, "09:00", "09:00", 1),
		},
	},
	{
		ID:          "afternoon-rest",
		Name:        "Afternoon Rest",
		Description: "Rest from 13:00 to 18:00 the next day. The start day stays normal and the end day shows rest.",
		RangeStart:  "2024-03-01",
		RangeEnd:    "2024-03-07",
		Records: []attendance.Record{
			demoRecord("2024-03-03", attendance.CategoryRest, "13:00", "18:00", 1),
		},
	},
	{
		ID:          "multi-day-leave",
		Name:        "Multi-day Leave",
		Description: "Leave spanning three nights. Start and middle days show leave; the last morning is normal.",
		RangeStart:  "2024-03-01",
		RangeEnd:    "2024-03-07",
		Records: []attendance.Record{
			demoRecord("2024-03-03", attendance.CategoryLeave, "09:00", "09:00", 3),
		},
	},
	{
		ID:          "duplicate-edit",
		Name:        "Duplicate Edit",
		Description: "The same day entered twice. The later edit (rest) replaces the earlier leave.",
		RangeStart:  "2024-03-01",
		RangeEnd:    "2024-03-07",
		Records: []attendance.Record{
			stamped(demoRecord("2024-03-04", attendance.CategoryLeave, "09:00", "18:00", 0),
				time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)),
			stamped(demoRecord("2024-03-04", attendance.CategoryRest, "08:30", "17:30", 0),
				time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)),
		},
	},
	{
		ID:          "border-trip",
		Name:        "Border Trip",
		Description: "A short afternoon out_of_beijing trip into the next morning. Both days show the trip.",
		RangeStart:  "2024-03-01",
		RangeEnd:    "2024-03-07",
		Records: []attendance.Record{
			demoRecord("2024-03-05", attendance.CategoryOutOfBeijing, "15:00", "10:00", 1),
		},
	},
}

func findScenario(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
