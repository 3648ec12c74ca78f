package attendance

import "github.com/shopspring/decimal"

// =============================================================================
// AGGREGATION - Cycle totals for reporting
// =============================================================================

// Summary is the roll-up of a date range.
//
//	WorkDays = ValidDays - LeaveDays - OvertimeDays
//
// LeaveDays sums rest and leave footprints, OvertimeDays sums overtime
// footprints, both in units of 24h. Every other category counts as
// attendance.
type Summary struct {
	Range        DateRange
	ValidDays    int
	WorkDays     decimal.Decimal
	LeaveDays    decimal.Decimal
	OvertimeDays decimal.Decimal

	LeaveMinutes    int
	OvertimeMinutes int
}

// dayTotals are the footprints on one day that feed the work-hours formula.
type dayTotals struct {
	nonWorkMinutes  int
	overtimeMinutes int
}

func totalsFor(d Date, spans []span) dayTotals {
	var t dayTotals
	for _, s := range spans {
		switch {
		case s.record.Type.IsNonWork():
			t.nonWorkMinutes += s.dailyMinutes(d)
		case s.record.Type == CategoryOvertime:
			t.overtimeMinutes += s.dailyMinutes(d)
		}
	}
	return t
}

// actualWorkMinutes is 24h - rest/leave + overtime, never below zero.
func (t dayTotals) actualWorkMinutes() int {
	m := MinutesPerDay - t.nonWorkMinutes + t.overtimeMinutes
	if m < 0 {
		return 0
	}
	return m
}

// Aggregate rolls records up over [rangeStart, rangeEnd]. Only the part of
// each record inside the range counts.
func Aggregate(records []Record, rangeStart, rangeEnd string) (Summary, error) {
	rng, err := ParseRange(rangeStart, rangeEnd)
	if err != nil {
		return Summary{}, err
	}
	ix, err := NewIndex(records)
	if err != nil {
		return Summary{}, err
	}
	return aggregateIndex(ix, rng), nil
}

func aggregateIndex(ix *Index, rng DateRange) Summary {
	sum := Summary{Range: rng, ValidDays: rng.Len()}
	for _, d := range rng.Days() {
		t := totalsFor(d, ix.covering(d))
		sum.LeaveMinutes += t.nonWorkMinutes
		sum.OvertimeMinutes += t.overtimeMinutes
	}
	sum.LeaveDays = MinutesToDays(sum.LeaveMinutes)
	sum.OvertimeDays = MinutesToDays(sum.OvertimeMinutes)
	sum.WorkDays = decimal.NewFromInt(int64(sum.ValidDays)).Sub(sum.LeaveDays).Sub(sum.OvertimeDays)
	return sum
}
