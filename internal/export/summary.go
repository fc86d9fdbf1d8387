package export

import (
	"fmt"

	"github.com/naggie/turbojigsaw/internal/model"
	"github.com/xuri/excelize/v2"
)

// summaryHeaders are the cut-list columns, one row per placement.
var summaryHeaders = []string{
	"Bed", "Part", "Width (mm)", "Height (mm)", "X (mm)", "Y (mm)", "Rotated",
}

// WriteSummary writes an XLSX cut list: every placement as a row, plus a
// per-bed efficiency block at the bottom.
func WriteSummary(path string, result model.PackResult) error {
	if len(result.Beds) == 0 {
		return fmt.Errorf("no beds to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Beds"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	row := 2
	for bedIdx, bed := range result.Beds {
		for _, p := range bed.Placements {
			values := []interface{}{
				bedIdx + 1, p.PartName, p.Width, p.Height, p.X, p.Y, p.Rotated,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	// Efficiency block, separated by a blank row
	row++
	for _, bed := range result.Beds {
		values := []interface{}{
			bed.Name,
			fmt.Sprintf("%d part(s)", len(bed.Placements)),
			fmt.Sprintf("%.1f%% used", bed.Efficiency()),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	return f.SaveAs(path)
}
