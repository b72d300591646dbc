package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"joinery/internal/service"
)

const planSheet = "Production plan"

// PlanWorkbook renders week views into a printable workbook: one block
// of rows per week, a capacity summary line followed by a line per
// process chunk. The buffer is ready to stream as an .xlsx response.
func PlanWorkbook(views []service.WeekView) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(planSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	_ = f.SetColWidth(planSheet, "A", "A", 16)
	_ = f.SetColWidth(planSheet, "B", "B", 32)
	_ = f.SetColWidth(planSheet, "C", "C", 20)
	_ = f.SetColWidth(planSheet, "D", "F", 12)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E2F3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, "", err
	}

	setRow := func(row int, values ...any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(planSheet, cell, v)
		}
	}

	setRow(1, "Week commencing", "Project", "Process", "Week share", "Hours", "Capacity / Demand / Free")
	_ = f.SetCellStyle(planSheet, "A1", "F1", headerStyle)

	row := 2
	for _, view := range views {
		setRow(row,
			view.Load.WeekStart.Format("2006-01-02"),
			"", "", "", "",
			fmt.Sprintf("%.0f / %.1f / %.1f", view.Load.Capacity, view.Load.Demand, view.Load.Free),
		)
		if view.Load.Overbooked {
			cell, _ := excelize.CoordinatesToCellName(6, row)
			_ = f.SetCellValue(planSheet, cell, fmt.Sprintf("%.0f / %.1f / %.1f OVERBOOKED", view.Load.Capacity, view.Load.Demand, view.Load.Free))
		}
		row++

		for _, cells := range view.Projects {
			for _, chunk := range cells.Chunks {
				setRow(row,
					"",
					cells.Project.Name,
					chunk.Name,
					fmt.Sprintf("%.0f%%", chunk.ProportionOfWeek*100),
					chunk.Hours,
					"",
				)
				row++
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	filename := "production-plan.xlsx"
	if len(views) > 0 {
		filename = fmt.Sprintf("production-plan-%s.xlsx", views[0].Load.WeekStart.Format("2006-01-02"))
	}
	return buf, filename, nil
}
