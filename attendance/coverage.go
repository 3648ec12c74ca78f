package attendance

// Position locates a date relative to a record.
type Position int

const (
	PositionNone   Position = iota // date not covered
	PositionStart                  // first day, also the only day of a single-day record
	PositionMiddle                 // strictly between first and last day
	PositionEnd                    // last day of a multi-day record
)

func (p Position) String() string {
	switch p {
	case PositionStart:
		return "start"
	case PositionMiddle:
		return "middle"
	case PositionEnd:
		return "end"
	default:
		return "none"
	}
}

// IsCovered reports whether date lies in [record.Date, record.Date+DaysOffset].
func IsCovered(date string, record Record) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	s, err := prepare(0, record)
	if err != nil {
		return false, err
	}
	return s.covers(d), nil
}

// PositionOf locates date within record.
func PositionOf(date string, record Record) (Position, error) {
	d, err := ParseDate(date)
	if err != nil {
		return PositionNone, err
	}
	s, err := prepare(0, record)
	if err != nil {
		return PositionNone, err
	}
	return s.position(d), nil
}

func (s span) covers(d Date) bool {
	return d.AfterOrEqual(s.start) && d.BeforeOrEqual(s.end)
}

func (s span) position(d Date) Position {
	switch {
	case !s.covers(d):
		return PositionNone
	case d.Equal(s.start):
		return PositionStart
	case d.Equal(s.end):
		return PositionEnd
	default:
		return PositionMiddle
	}
}
