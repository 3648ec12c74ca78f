package attendance

import (
	"errors"
	"fmt"
)

// ValidationResult lists every problem found in a record.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate checks a record's structure without stopping at the first
// problem, so a form can show all of them. It never mutates r.
func Validate(r Record) ValidationResult {
	var problems []string
	add := func(err error) { problems = append(problems, err.Error()) }

	var (
		startMinutes, endMinutes int
		timesOK                  = true
	)

	if r.Date == "" {
		problems = append(problems, "date is required")
	} else if _, err := ParseDate(r.Date); err != nil {
		add(err)
	}

	if r.StartTime != "" {
		m, err := parseClock("startTime", r.StartTime, StartOfDay)
		switch {
		case err != nil:
			add(err)
			timesOK = false
		case m == MinutesPerDay:
			problems = append(problems, fmt.Sprintf("invalid startTime %q: 24:00 is only valid as an end time", r.StartTime))
			timesOK = false
		default:
			startMinutes = m
		}
	}
	if r.EndTime != "" {
		m, err := parseClock("endTime", r.EndTime, EndOfDay)
		if err != nil {
			add(err)
			timesOK = false
		} else {
			endMinutes = m
		}
	} else {
		endMinutes = MinutesPerDay
	}

	if r.DaysOffset < 0 || r.DaysOffset > MaxDaysOffset {
		add(&RangeError{Field: "daysOffset", Value: r.DaysOffset, Reason: "must be within [0, 365]"})
	}
	if r.Hours < 0 {
		add(&RangeError{Field: "hours", Value: r.Hours, Reason: "must be >= 0"})
	}
	if r.Minutes < 0 || r.Minutes >= MinutesPerHour {
		add(&RangeError{Field: "minutes", Value: r.Minutes, Reason: "must be within [0, 60)"})
	}
	if timesOK && r.DaysOffset == 0 && !r.hasDeclaredDuration() && endMinutes < startMinutes {
		add(&RangeError{Field: "duration", Value: endMinutes - startMinutes, Reason: "end before start"})
	}

	return ValidationResult{IsValid: len(problems) == 0, Errors: problems}
}

// ValidateAll validates each record and joins every problem into one error,
// nil when all records are valid.
func ValidateAll(records []Record) error {
	var errs []error
	for i, r := range records {
		res := Validate(r)
		for _, msg := range res.Errors {
			errs = append(errs, fmt.Errorf("record %d: %s", i, msg))
		}
	}
	return errors.Join(errs...)
}
