package export

import (
	"io"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/errors"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Added Vehicles"

func writeXLSX(w io.Writer, records []*entity.AddedVehicleRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "close workbook")
		}
	}()

	// rename the default sheet rather than adding a second one
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return errors.Wrap(err, "name sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.WithStack(err)
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetCellValue(sheetName, cell, col.Label); err != nil {
			return errors.Wrap(err, "write header")
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return errors.Wrap(err, "style header")
		}
		if err := f.SetColWidth(sheetName, colName, colName, col.Width); err != nil {
			return errors.Wrap(err, "size column")
		}
	}

	for rowIdx, r := range records {
		values := make([]any, len(columns))
		for i, col := range columns {
			values[i] = col.Value(r)
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.Wrap(err, "write row")
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "freeze header")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}
