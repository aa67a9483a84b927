package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/LianHaeming/workoutplanner/models"
)

const sheetName = "Week plan"

// XLSX renders s as a one-sheet workbook: a header row, then one row per
// entry in day order, and a "Rest day" row for each empty day.
func XLSX(s models.Schedule) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "G", 9)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range headers {
		f.SetCellValue(sheetName, cell(i, 1), h)
	}
	f.SetCellStyle(sheetName, cell(0, 1), cell(len(headers)-1, 1), headerStyle)

	row := 2
	for _, day := range models.Days {
		entries := s[day]
		if len(entries) == 0 {
			f.SetCellValue(sheetName, cell(0, row), string(day))
			f.SetCellValue(sheetName, cell(1, row), models.CountLabel(0))
			row++
			continue
		}
		for _, e := range entries {
			values := []any{string(day), e.Name, e.Category, e.Sets, e.Reps, e.Duration, doneMark(e.Completed)}
			for col, v := range values {
				f.SetCellValue(sheetName, cell(col, row), v)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cell converts a zero-based column and one-based row to "A1" notation.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
