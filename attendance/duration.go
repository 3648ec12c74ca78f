package attendance

import "github.com/shopspring/decimal"

// =============================================================================
// DAILY DURATION - A record's footprint on one day
// =============================================================================

var (
	minutesPerHour = decimal.NewFromInt(MinutesPerHour)
	minutesPerDay  = decimal.NewFromInt(MinutesPerDay)
)

// DailyDuration is the part of a record that falls on one date.
type DailyDuration struct {
	Minutes int
}

func (d DailyDuration) Hours() decimal.Decimal { return MinutesToHours(d.Minutes) }
func (d DailyDuration) Days() decimal.Decimal  { return MinutesToDays(d.Minutes) }

func MinutesToHours(m int) decimal.Decimal { return decimal.NewFromInt(int64(m)).Div(minutesPerHour) }
func MinutesToDays(m int) decimal.Decimal  { return decimal.NewFromInt(int64(m)).Div(minutesPerDay) }

// DailyHours returns how many hours of record apply to date, in [0, 24].
// A date the record does not cover yields zero.
func DailyHours(record Record, date string) (decimal.Decimal, error) {
	dd, err := Daily(record, date)
	if err != nil {
		return decimal.Zero, err
	}
	return dd.Hours(), nil
}

// Daily is DailyHours in minutes.
func Daily(record Record, date string) (DailyDuration, error) {
	d, err := ParseDate(date)
	if err != nil {
		return DailyDuration{}, err
	}
	s, err := prepare(0, record)
	if err != nil {
		return DailyDuration{}, err
	}
	return DailyDuration{Minutes: s.dailyMinutes(d)}, nil
}

// dailyMinutes computes each day of a multi-day record from the time fields
// alone; the declared Hours/Minutes only count for single-day records.
func (s span) dailyMinutes(d Date) int {
	switch s.position(d) {
	case PositionStart:
		if s.record.DaysOffset == 0 {
			return s.declaredMinutes()
		}
		return MinutesPerDay - s.startMinutes
	case PositionEnd:
		return s.endMinutes
	case PositionMiddle:
		return MinutesPerDay
	default:
		return 0
	}
}
