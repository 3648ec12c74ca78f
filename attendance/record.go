package attendance

// MaxDaysOffset bounds how far a single record may span.
const MaxDaysOffset = 365

// span is a Record with its date and times parsed once. Everything past the
// public entry points works on spans.
type span struct {
	index        int
	record       Record
	start        Date
	end          Date
	startMinutes int
	endMinutes   int
}

// parseClock parses value as HH:MM, substituting fallback when empty, and
// names the record field in any error.
func parseClock(field, value, fallback string) (int, error) {
	if value == "" {
		value = fallback
	}
	m, err := ToMinutes(value)
	if err != nil {
		if fe, ok := err.(*FormatError); ok {
			fe.Field = field
		}
		return 0, err
	}
	return m, nil
}

// checkRecord returns the first structural problem in r, or the parsed span.
// Validate reports the same problems, all at once.
func checkRecord(r Record) (span, error) {
	start, err := ParseDate(r.Date)
	if err != nil {
		return span{}, err
	}
	if r.DaysOffset < 0 || r.DaysOffset > MaxDaysOffset {
		return span{}, &RangeError{Field: "daysOffset", Value: r.DaysOffset, Reason: "must be within [0, 365]"}
	}
	startMinutes, err := parseClock("startTime", r.StartTime, StartOfDay)
	if err != nil {
		return span{}, err
	}
	if startMinutes == MinutesPerDay {
		return span{}, &FormatError{Field: "startTime", Value: r.StartTime, Reason: "24:00 is only valid as an end time"}
	}
	endMinutes, err := parseClock("endTime", r.EndTime, EndOfDay)
	if err != nil {
		return span{}, err
	}
	if r.Hours < 0 {
		return span{}, &RangeError{Field: "hours", Value: r.Hours, Reason: "must be >= 0"}
	}
	if r.Minutes < 0 || r.Minutes >= MinutesPerHour {
		return span{}, &RangeError{Field: "minutes", Value: r.Minutes, Reason: "must be within [0, 60)"}
	}
	if r.DaysOffset == 0 && !r.hasDeclaredDuration() && endMinutes < startMinutes {
		return span{}, &RangeError{Field: "duration", Value: endMinutes - startMinutes, Reason: "end before start"}
	}
	return span{
		record:       r,
		start:        start,
		end:          start.AddDays(r.DaysOffset),
		startMinutes: startMinutes,
		endMinutes:   endMinutes,
	}, nil
}

func prepare(index int, r Record) (span, error) {
	s, err := checkRecord(r)
	if err != nil {
		return span{}, &PreconditionError{Index: index, Date: r.Date, Err: err}
	}
	s.index = index
	return s, nil
}

func prepareAll(records []Record) ([]span, error) {
	spans := make([]span, 0, len(records))
	for i, r := range records {
		s, err := prepare(i, r)
		if err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}

// startsAfterNoon reports whether the record begins at or after 12:00.
func (s span) startsAfterNoon() bool {
	return s.startMinutes >= NoonMinutes
}

// declaredMinutes is the duration of a single-day record: Hours/Minutes when
// declared, otherwise the time fields.
func (s span) declaredMinutes() int {
	if s.record.hasDeclaredDuration() {
		return s.record.Hours*MinutesPerHour + s.record.Minutes
	}
	return s.endMinutes - s.startMinutes
}

// elapsedMinutes is the wall-clock length of the whole record.
func (s span) elapsedMinutes() int {
	return elapsedBetween(s.start, s.startMinutes, s.record.DaysOffset, s.endMinutes)
}
