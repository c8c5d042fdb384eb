package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Java Parse Results"
	columnWidth = 30
)

// WriteExcel writes the blocks to a single-sheet workbook: header in A1, one
// block per row below it, fixed column width and wrap-text on every cell.
func WriteExcel(path string, blocks []string) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), sheetName); err != nil {
		return err
	}

	if err := wb.SetCellValue(sheetName, "A1", Header); err != nil {
		return err
	}
	row := 2
	for _, block := range blocks {
		cell := fmt.Sprintf("A%d", row)
		if err := wb.SetCellValue(sheetName, cell, Sanitize(block)); err != nil {
			return err
		}
		row++
	}

	if err := wb.SetColWidth(sheetName, "A", "A", columnWidth); err != nil {
		return err
	}
	wrap, err := wb.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}
	if err := wb.SetCellStyle(sheetName, "A1", fmt.Sprintf("A%d", row-1), wrap); err != nil {
		return err
	}

	return wb.SaveAs(path)
}
