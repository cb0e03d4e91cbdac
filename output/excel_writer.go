package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct {
	// SheetName renames the default sheet when set.
	SheetName string
}

func (w *ExcelWriter) Write(path string, table Table) error {
	if path == StdoutPath {
		return fmt.Errorf("excel output needs a file path")
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if w.SheetName != "" && w.SheetName != sheet {
		if err := file.SetSheetName(sheet, w.SheetName); err != nil {
			return fmt.Errorf("rename excel sheet: %w", err)
		}
		sheet = w.SheetName
	}

	for col, header := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, values := range table.Rows {
		row := i + 2
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
