package attendance

import (
	"regexp"
	"time"
)

// =============================================================================
// DATE - A calendar day, no time of day, no zone
// =============================================================================

const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar day held as UTC midnight. The zero Date is invalid.
type Date struct {
	t time.Time
}

// ParseDate parses YYYY-MM-DD, rejecting impossible days such as 2023-02-29.
func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, &FormatError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &FormatError{Field: "date", Value: s, Reason: "not a calendar day"}
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// At returns the wall-clock instant minutes after midnight of d. 1440 is
// midnight of the following day.
func (d Date) At(minutes int) time.Time { return d.t.Add(time.Duration(minutes) * time.Minute) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) String() string        { return d.t.Format(DateLayout) }

// ordinal counts days since 1970-01-01. Used as a map key.
func (d Date) ordinal() int64 { return d.t.Unix() / 86400 }

// DaysBetween returns to-from in whole days.
func DaysBetween(from, to Date) int { return int(to.ordinal() - from.ordinal()) }

// =============================================================================
// DATE RANGE - Inclusive [Start, End]
// =============================================================================

type DateRange struct {
	Start Date
	End   Date
}

// ParseRange parses both ends and rejects an end before the start.
func ParseRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	if e.Before(s) {
		return DateRange{}, &RangeError{Field: "range", Value: DaysBetween(s, e), Reason: "end before start"}
	}
	return DateRange{Start: s, End: e}, nil
}

// MonthRange is the billing cycle covering a calendar month.
func MonthRange(year int, month time.Month) DateRange {
	start := NewDate(year, month, 1)
	return DateRange{Start: start, End: NewDate(year, month+1, 1).AddDays(-1)}
}

func (r DateRange) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Len is the number of days in the range.
func (r DateRange) Len() int { return DaysBetween(r.Start, r.End) + 1 }

func (r DateRange) Days() []Date {
	days := make([]Date, 0, r.Len())
	for current := r.Start; current.BeforeOrEqual(r.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}
