package export

import (
	"github.com/xuri/excelize/v2"
)

const sheetName = "Reporte"

// XLSX renders the report as a single-sheet spreadsheet with the same
// columns and subtotal as the PDF.
func (r Report) XLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := setRow(f, 1, []interface{}{"Reporte de Trabajos"}); err != nil {
		return nil, err
	}
	if err := setRow(f, 2, []interface{}{
		"Proveedor:", r.Filters.providerLabel(),
		"Tipo de PA:", r.Filters.categoryLabel(),
		"Mes:", r.Filters.monthLabel(),
		"Año:", r.Filters.Year,
	}); err != nil {
		return nil, err
	}

	headerRow := make([]interface{}, len(columns))
	for i, col := range columns {
		headerRow[i] = col
	}
	if err := setRow(f, 4, headerRow); err != nil {
		return nil, err
	}

	for i, row := range r.Rows {
		cells := []interface{}{
			i + 1,
			row.ClientName,
			row.Course,
			row.RegisteredAt,
			row.DeliveredAt,
			row.Price,
			row.Provider,
			row.Category,
			row.Period,
		}
		if err := setRow(f, 5+i, cells); err != nil {
			return nil, err
		}
	}

	totalRow := 5 + len(r.Rows) + 1
	if err := setRow(f, totalRow, []interface{}{"Total:", r.Subtotal}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// ContentType maps a report format to its MIME type.
func ContentType(format string) string {
	if format == "xlsx" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}
