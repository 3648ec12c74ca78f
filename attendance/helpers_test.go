package attendance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func rec(date string, typ attendance.Category, start, end string, offset int) attendance.Record {
	return attendance.Record{
		Date:       date,
		Type:       typ,
		StartTime:  start,
		EndTime:    end,
		DaysOffset: offset,
		CustomerID: "cust-1",
		EmployeeID: "emp-1",
	}
}

func classify(t *testing.T, date string, records ...attendance.Record) attendance.ClassificationResult {
	t.Helper()
	res, err := attendance.Classify(date, records)
	require.NoError(t, err)
	return res
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}
