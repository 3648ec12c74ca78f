/*
Package attendance provides the attendance classification engine.

PURPOSE:
  Decides, for every calendar day of a billing cycle, which attendance
  category applies to an employee given a set of possibly day-spanning,
  possibly overlapping attendance records. Everything that renders a
  calendar or a monthly report is a consumer of this package's output.

KEY CONCEPTS IN THIS FILE (types.go):
  - Category: closed set of attendance kinds (rest, leave, overtime, ...)
  - Record: one employee-submitted attendance interval
  - ClassificationResult: the category a single date displays

PIPELINE:
  raw records -> Dedupe -> Classify (per date) -> Aggregate

DESIGN PRINCIPLES:
  1. Purity: every operation is a function of its explicit inputs
  2. Wall-clock: dates and times are naive local values, no time zones
  3. Minutes inside, decimals outside: durations are integer minutes until
     they are exposed as hours or days
  4. Precedence as data: classification rules are an ordered table

USAGE:
  engine := attendance.NewEngine(attendance.WithCache(cache.NewMemory(0)))
  result, err := engine.Classify("2024-03-04", records)

SEE ALSO:
  - clock.go: HH:MM parsing and elapsed time
  - rules.go: the classification rule table
  - engine.go: cached facade used by the HTTP layer
*/
package attendance

import "time"

// =============================================================================
// CATEGORY - What a day displays
// =============================================================================

type Category string

const (
	CategoryNormal       Category = "normal" // never stored, the absence of a record
	CategoryRest         Category = "rest"
	CategoryLeave        Category = "leave"
	CategoryOvertime     Category = "overtime"
	CategoryOutOfBeijing Category = "out_of_beijing"
	CategoryOutOfCountry Category = "out_of_country"
	CategoryPaidLeave    Category = "paid_leave"
	CategoryOnboarding   Category = "onboarding"
	CategoryOffboarding  Category = "offboarding"
)

var categoryLabels = map[Category]string{
	CategoryNormal:       "出勤",
	CategoryRest:         "休息",
	CategoryLeave:        "请假",
	CategoryOvertime:     "加班",
	CategoryOutOfBeijing: "出京",
	CategoryOutOfCountry: "出境",
	CategoryPaidLeave:    "带薪假",
	CategoryOnboarding:   "入职",
	CategoryOffboarding:  "离职",
}

// Label returns the display label. Unknown categories get the normal label.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryNormal]
}

// IsKnown reports whether c is one of the built-in categories.
func (c Category) IsKnown() bool {
	_, ok := categoryLabels[c]
	return ok
}

// IsBorderCrossing reports whether c is a travel category that always shows
// on the start and end day of its record.
func (c Category) IsBorderCrossing() bool {
	return c == CategoryOutOfBeijing || c == CategoryOutOfCountry
}

// IsNonWork reports whether c reduces the work days of a cycle.
func (c Category) IsNonWork() bool {
	return c == CategoryRest || c == CategoryLeave
}

// Categories returns the built-in categories in display order.
func Categories() []Category {
	return []Category{
		CategoryNormal, CategoryRest, CategoryLeave, CategoryOvertime,
		CategoryOutOfBeijing, CategoryOutOfCountry, CategoryPaidLeave,
		CategoryOnboarding, CategoryOffboarding,
	}
}

// =============================================================================
// RECORD - One submitted attendance interval
// =============================================================================

// Record spans from Date to Date+DaysOffset inclusive.
//
// StartTime and EndTime are HH:MM. An empty StartTime means 00:00 and an empty
// EndTime means 24:00, the end of its day. Hours and Minutes are the declared
// duration, trusted only for single-day records.
type Record struct {
	Date       string
	Type       Category
	StartTime  string
	EndTime    string
	DaysOffset int
	Hours      int
	Minutes    int

	// Identity, used only by Dedupe
	CustomerID string
	EmployeeID string

	// Ordering, used only by Dedupe
	UpdatedAt time.Time
	CreatedAt time.Time
}

// hasDeclaredDuration reports whether Hours/Minutes were filled in.
func (r Record) hasDeclaredDuration() bool {
	return r.Hours != 0 || r.Minutes != 0
}

// orderingTime is UpdatedAt, else CreatedAt, else the zero time.
func (r Record) orderingTime() time.Time {
	if !r.UpdatedAt.IsZero() {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// =============================================================================
// CLASSIFICATION RESULT - Computed on demand, never persisted
// =============================================================================

// ClassificationResult is the category one date displays. Source is the
// caller's own copy of the deciding record; it is nil for normal days.
type ClassificationResult struct {
	Type   Category
	Source *Record
	Label  string
	Rule   string // name of the rule row that decided, empty for normal
}

// IsNormal reports whether no record claimed the day.
func (r ClassificationResult) IsNormal() bool {
	return r.Source == nil
}

func normalResult() ClassificationResult {
	return ClassificationResult{Type: CategoryNormal, Label: CategoryNormal.Label()}
}
