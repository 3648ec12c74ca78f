package attendance

import (
	"regexp"
	"strconv"
)

// =============================================================================
// CLOCK - HH:MM wall-clock times as minute offsets
// =============================================================================

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	// NoonMinutes splits a day for the noon rule. 12:00 itself is afternoon.
	NoonMinutes = 12 * MinutesPerHour

	// EndOfDay is the end-time sentinel for "until midnight of the same day".
	EndOfDay   = "24:00"
	StartOfDay = "00:00"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-4]):[0-5][0-9]$`)

// ToMinutes parses HH:MM into minutes after midnight. "24:00" yields 1440;
// any other 24:xx is malformed.
func ToMinutes(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, &FormatError{Field: "time", Value: s, Reason: "expected HH:MM"}
	}
	// The pattern guarantees exactly one colon and two minute digits.
	hh, mm := s[:len(s)-3], s[len(s)-2:]
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h == 24 && m != 0 {
		return 0, &FormatError{Field: "time", Value: s, Reason: "24:xx is only valid as 24:00"}
	}
	return h*MinutesPerHour + m, nil
}

// ElapsedMinutes returns the minutes between startDate+startTime and
// startDate+endDaysOffset+endTime. An end of 24:00 is midnight of the day
// after its own. A start after the end is a RangeError; callers encode any
// overnight wrap in endDaysOffset.
func ElapsedMinutes(startDate, startTime string, endDaysOffset int, endTime string) (int, error) {
	day, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	if endDaysOffset < 0 {
		return 0, &RangeError{Field: "daysOffset", Value: endDaysOffset, Reason: "must be >= 0"}
	}
	start, err := ToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ToMinutes(endTime)
	if err != nil {
		return 0, err
	}
	elapsed := elapsedBetween(day, start, endDaysOffset, end)
	if elapsed < 0 {
		return 0, &RangeError{Field: "duration", Value: elapsed, Reason: "end before start"}
	}
	return elapsed, nil
}

func elapsedBetween(day Date, start, endDaysOffset, end int) int {
	from := day.At(start)
	to := day.AddDays(endDaysOffset).At(end)
	return int(to.Sub(from).Minutes())
}
