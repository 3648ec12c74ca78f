package attendance_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/attendance-engine/attendance"
)

func TestDailyHours_SingleDayUsesDeclaredDuration(t *testing.T) {
	// GIVEN: Single-day records with a declared duration
	// THEN: The footprint is exactly the declared duration
	tests := []struct {
		hours, minutes int
		want           string
	}{
		{8, 0, "8"},
		{4, 30, "4.5"},
		{0, 45, "0.75"},
		{24, 0, "24"},
	}
	for _, tt := range tests {
		r := attendance.Record{Date: "2024-03-03", Type: attendance.CategoryLeave, Hours: tt.hours, Minutes: tt.minutes}
		got, err := attendance.DailyHours(r, "2024-03-03")
		require.NoError(t, err)
		assertDecimal(t, tt.want, got)
	}
}

func TestDailyHours_SingleDayDeclaredWinsOverTimes(t *testing.T) {
	r := rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 0)
	r.Hours = 8

	got, err := attendance.DailyHours(r, "2024-03-03")
	require.NoError(t, err)
	assertDecimal(t, "8", got)
}

func TestDailyHours_SingleDayFromTimes(t *testing.T) {
	got, err := attendance.DailyHours(rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:30", 0), "2024-03-03")
	require.NoError(t, err)
	assertDecimal(t, "9.5", got)

	got, err = attendance.DailyHours(rec("2024-03-03", attendance.CategoryRest, "", "", 0), "2024-03-03")
	require.NoError(t, err)
	assertDecimal(t, "24", got, "no times means the whole day")
}

func TestDailyHours_MultiDayFootprints(t *testing.T) {
	r := rec("2024-03-03", attendance.CategoryLeave, "09:00", "24:00", 3)

	want := map[string]string{
		"2024-03-02": "0",
		"2024-03-03": "15", // 24 - 9
		"2024-03-04": "24",
		"2024-03-05": "24",
		"2024-03-06": "24", // 24:00 end
		"2024-03-07": "0",
	}
	for date, hours := range want {
		got, err := attendance.DailyHours(r, date)
		require.NoError(t, err)
		assertDecimal(t, hours, got, date)
	}
}

func TestDailyHours_MultiDayIgnoresDeclaredTotal(t *testing.T) {
	r := rec("2024-03-03", attendance.CategoryLeave, "13:00", "18:00", 1)
	r.Hours = 3

	start, err := attendance.DailyHours(r, "2024-03-03")
	require.NoError(t, err)
	end, err := attendance.DailyHours(r, "2024-03-04")
	require.NoError(t, err)

	assertDecimal(t, "11", start)
	assertDecimal(t, "18", end)
}

func TestDaily_FootprintSumEqualsElapsed(t *testing.T) {
	// start + end + 24*(n-1) == elapsed for every time-defined multi-day record
	times := []string{"00:00", "00:01", "08:45", "11:59", "12:00", "12:01", "17:30", "23:59"}
	ends := append(append([]string{}, times...), "24:00")

	for n := 1; n <= 4; n++ {
		for _, start := range times {
			for _, end := range ends {
				name := fmt.Sprintf("n=%d %s-%s", n, start, end)
				r := rec("2024-02-27", attendance.CategoryLeave, start, end, n)
				first := attendance.MustParseDate(r.Date)

				s, err := attendance.Daily(r, first.String())
				require.NoError(t, err, name)
				e, err := attendance.Daily(r, first.AddDays(n).String())
				require.NoError(t, err, name)

				elapsed, err := attendance.ElapsedMinutes(r.Date, start, n, end)
				require.NoError(t, err, name)
				assert.Equal(t, elapsed, s.Minutes+e.Minutes+attendance.MinutesPerDay*(n-1), name)
			}
		}
	}
}

func TestDailyHours_MalformedRecord(t *testing.T) {
	_, err := attendance.DailyHours(rec("2024-03-03", attendance.CategoryLeave, "9.00", "18:00", 1), "2024-03-03")
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrPrecondition)

	var fe *attendance.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "startTime", fe.Field)
}
