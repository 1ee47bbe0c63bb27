package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

var pdfColumnWidths = []float64{30, 120, 120, 80, 80, 70, 100, 60, 80}

// PDF renders the report as a landscape A4 document: a header block naming
// the active filters, the job table, and the subtotal bottom-right.
func (r Report) PDF() ([]byte, error) {
	pdf := fpdf.New("L", "pt", "A4", "")
	// Core fonts are cp1252; translate so accented names render.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(44, 62, 80)
	pdf.Cell(0, 26, tr("Reporte de Trabajos"))
	pdf.Ln(30)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(54, 79, 107)
	pdf.Cell(260, 16, tr("Proveedor: "+r.Filters.providerLabel()))
	pdf.Cell(260, 16, tr("Tipo de PA: "+r.Filters.categoryLabel()))
	pdf.Ln(18)
	pdf.Cell(260, 16, tr("Mes: "+r.Filters.monthLabel()))
	if r.Filters.Year != 0 {
		pdf.Cell(260, 16, tr("Año: "+strconv.Itoa(r.Filters.Year)))
	}
	pdf.Ln(26)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(54, 79, 107)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(pdfColumnWidths[i], 18, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 62, 80)
	for i, row := range r.Rows {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(230, 236, 245)
		} else {
			pdf.SetFillColor(245, 247, 250)
		}
		cells := []string{
			strconv.Itoa(i + 1),
			row.ClientName,
			row.Course,
			row.RegisteredAt,
			row.DeliveredAt,
			formatPrice(row.Price),
			row.Provider,
			row.Category,
			row.Period,
		}
		for k, cell := range cells {
			pdf.CellFormat(pdfColumnWidths[k], 16, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 20, "Total: "+formatPrice(r.Subtotal), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatPrice(p float64) string {
	return fmt.Sprintf("S/ %.2f", p)
}
