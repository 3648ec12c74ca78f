// Package report renders classified calendars for download.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warp/attendance-engine/attendance"
)

const (
	DaySheet     = "考勤"
	SummarySheet = "汇总"
)

var weekdayNames = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// WriteCalendarXLSX writes one row per day to DaySheet and the cycle totals
// to SummarySheet.
//
// Day columns: 日期 | 星期 | 类别 | 显示 | 实际工时. Actual work hours are only
// filled for normal days.
func WriteCalendarXLSX(w io.Writer, cal *attendance.Calendar, sum attendance.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(DaySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(DaySheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	if err := f.SetSheetRow(DaySheet, "A1", &[]any{"日期", "星期", "类别", "显示", "实际工时"}); err != nil {
		return err
	}
	for i, day := range cal.Days {
		row := []any{
			day.Date.String(),
			weekdayNames[day.Date.Weekday()],
			string(day.Result.Type),
			day.Result.Label,
		}
		if day.Result.IsNormal() {
			row = append(row, day.ActualWorkHours().InexactFloat64())
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DaySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(DaySheet, "A", "A", 12); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]any{
		{"区间", sum.Range.String()},
		{"应出勤天数", sum.ValidDays},
		{"出勤天数", sum.WorkDays.InexactFloat64()},
		{"请假/休息天数", sum.LeaveDays.InexactFloat64()},
		{"加班天数", sum.OvertimeDays.InexactFloat64()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Filename suggests a download name for a cycle.
func Filename(rng attendance.DateRange) string {
	return fmt.Sprintf("attendance_%s_%s.xlsx", rng.Start, rng.End)
}
