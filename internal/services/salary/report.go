// internal/services/salary/report.go
package salary

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Salary"

// WriteXLSX выгружает отчёт таблицей: строка на смену плюс итог.
func (r *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	headers := []string{"Date", "Start", "End", "Hours", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, line := range r.Lines {
		start := time.UnixMilli(line.Shift.StartTime)
		end := time.UnixMilli(line.Shift.EndTime)
		values := []any{
			start.Format("02/01/2006"),
			start.Format("15:04"),
			end.Format("15:04"),
			line.Hours,
			line.Amount,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(reportSheet, fmt.Sprintf("E%d", row), r.Total); err != nil {
		return err
	}

	return f.Write(w)
}
