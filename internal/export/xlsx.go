package export

import (
	"fmt"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX exports the atlas placements as a spreadsheet manifest.
// The file round-trips through the manifest importer: the Name, Width,
// and Height columns match the headers the importer recognizes.
func WriteXLSX(path string, layout model.AtlasLayout) error {
	if len(layout.Placements) == 0 {
		return fmt.Errorf("no placed sprites to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Placements"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Width", "Height", "X", "Y"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range layout.Placements {
		values := []interface{}{p.Sprite.Name, p.Width, p.Height, p.X, p.Y}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
