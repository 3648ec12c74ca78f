package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/attendance-engine/attendance"
)

func TestValidate_ValidRecords(t *testing.T) {
	valid := []attendance.Record{
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 0),
		rec("2024-02-29", attendance.CategoryRest, "13:00", "24:00", 0),
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "09:00", 365),
		{Date: "2024-03-03", Type: attendance.CategoryOvertime, Hours: 2, Minutes: 30},
		{Date: "2024-03-03", Type: attendance.CategoryRest},
	}
	for _, r := range valid {
		res := attendance.Validate(r)
		assert.True(t, res.IsValid, "%+v: %v", r, res.Errors)
		assert.Empty(t, res.Errors)
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	// GIVEN: A record broken in five independent ways
	r := attendance.Record{
		Date:       "2023-02-29",
		Type:       attendance.CategoryLeave,
		StartTime:  "25:00",
		EndTime:    "24:15",
		DaysOffset: 366,
		Hours:      -1,
		Minutes:    60,
	}

	// WHEN: Validating
	res := attendance.Validate(r)

	// THEN: Every problem is reported, not just the first
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 6)
	assert.Contains(t, res.Errors[0], "date")
	assert.Contains(t, res.Errors[1], "startTime")
	assert.Contains(t, res.Errors[2], "endTime")
	assert.Contains(t, res.Errors[3], "daysOffset")
	assert.Contains(t, res.Errors[4], "hours")
	assert.Contains(t, res.Errors[5], "minutes")
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		record attendance.Record
		want   string
	}{
		{"missing date", attendance.Record{Type: attendance.CategoryRest}, "date is required"},
		{"not a leap year", rec("2100-02-29", attendance.CategoryRest, "", "", 0), "date"},
		{"start sentinel", rec("2024-03-03", attendance.CategoryRest, "24:00", "24:00", 0), "only valid as an end time"},
		{"negative offset", rec("2024-03-03", attendance.CategoryRest, "09:00", "10:00", -1), "daysOffset"},
		{"single day backwards", rec("2024-03-03", attendance.CategoryRest, "18:00", "09:00", 0), "end before start"},
		{"negative minutes", attendance.Record{Date: "2024-03-03", Type: attendance.CategoryRest, Minutes: -5}, "minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := attendance.Validate(tt.record)
			assert.False(t, res.IsValid)
			require.NotEmpty(t, res.Errors)
			assert.Contains(t, res.Errors[0], tt.want)
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	r := rec("2024-03-03", attendance.CategoryRest, "", "", 0)
	before := r
	attendance.Validate(r)
	assert.Equal(t, before, r)
}

func TestValidate_AgreesWithEngine(t *testing.T) {
	// Anything Validate accepts, the engine accepts; anything it rejects,
	// the engine rejects with a precondition error.
	records := []attendance.Record{
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 0),
		rec("2024-03-03", attendance.CategoryLeave, "24:00", "18:00", 1),
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "24:30", 1),
		rec("2024-13-03", attendance.CategoryLeave, "09:00", "18:00", 1),
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 400),
		rec("2024-03-03", attendance.CategoryLeave, "19:00", "18:00", 0),
	}
	for _, r := range records {
		res := attendance.Validate(r)
		_, err := attendance.Classify("2024-03-03", []attendance.Record{r})
		if res.IsValid {
			assert.NoError(t, err, "%+v", r)
		} else {
			assert.ErrorIs(t, err, attendance.ErrPrecondition, "%+v", r)
		}
	}
}

func TestValidateAll(t *testing.T) {
	assert.NoError(t, attendance.ValidateAll([]attendance.Record{
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 0),
	}))

	err := attendance.ValidateAll([]attendance.Record{
		rec("2024-03-03", attendance.CategoryLeave, "09:00", "18:00", 0),
		rec("2024-03-33", attendance.CategoryLeave, "09:00", "18:00", 0),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}
