package attendance_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/attendance-engine/attendance"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-13-01", true},
		{"2024-3-1", true},
		{"20240301", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := attendance.ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, attendance.ErrFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, d.String())
		})
	}
}

func TestDate_AddDaysCrossesMonthAndYear(t *testing.T) {
	d := attendance.MustParseDate("2023-12-31")

	assert.Equal(t, "2024-01-01", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", attendance.MustParseDate("2024-02-28").AddDays(2).String())
	assert.Equal(t, 366, attendance.DaysBetween(attendance.MustParseDate("2024-01-01"), attendance.MustParseDate("2025-01-01")))
}

func TestParseRange(t *testing.T) {
	rng, err := attendance.ParseRange("2024-03-01", "2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, 7, rng.Len())
	assert.Len(t, rng.Days(), 7)
	assert.True(t, rng.Contains(attendance.MustParseDate("2024-03-07")))
	assert.False(t, rng.Contains(attendance.MustParseDate("2024-03-08")))

	single, err := attendance.ParseRange("2024-03-01", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, single.Len())

	_, err = attendance.ParseRange("2024-03-07", "2024-03-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attendance.ErrRange))
}

func TestDateRange(t *testing.T) {
	rng, err := attendance.ParseRange("2024-02-27", "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 5, rng.Len())

	days := rng.Days()
	require.Len(t, days, 5)
	assert.Equal(t, "2024-02-29", days[2].String())
	assert.True(t, rng.Contains(attendance.MustParseDate("2024-03-01")))
	assert.False(t, rng.Contains(attendance.MustParseDate("2024-03-03")))

	_, err = attendance.ParseRange("2024-03-02", "2024-03-01")
	assert.ErrorIs(t, err, attendance.ErrRange)

	feb := attendance.MonthRange(2023, 2)
	assert.Equal(t, "2023-02-28", feb.End.String())
	assert.Equal(t, 28, feb.Len())
}

func TestMonthRange(t *testing.T) {
	feb := attendance.MonthRange(2024, time.February)
	assert.Equal(t, "[2024-02-01, 2024-02-29]", feb.String())

	dec := attendance.MonthRange(2024, time.December)
	assert.Equal(t, 31, dec.Len())
}
