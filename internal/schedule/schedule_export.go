package schedule

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Escala"

// RenderXLSX writes a schedule grid as a spreadsheet: one row per
// employee, one column per day of the month, cells carrying the short
// day labels.
func RenderXLSX(grid ScheduleGridResponse) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetCellValue(exportSheet, "A1", "Funcionário"); err != nil {
		return nil, "", err
	}
	for day := 1; day <= grid.DaysInMonth; day++ {
		cell, err := excelize.CoordinatesToCellName(day+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, cell, day); err != nil {
			return nil, "", err
		}
	}

	for i, row := range grid.Rows {
		nameCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, nameCell, row.EmployeeName); err != nil {
			return nil, "", err
		}

		// Days can be sparse when an employee produced no entries for
		// part of the month; index by day number, not position.
		for _, cellData := range row.Days {
			cell, err := excelize.CoordinatesToCellName(cellData.Day+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(exportSheet, cell, cellData.Label); err != nil {
				return nil, "", err
			}
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 32); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("escala_%04d_%02d.xlsx", grid.Month.Year, grid.Month.Month)
	return buf, filename, nil
}
