// Package export renders the filtered, ordered job subset as downloadable
// report files (PDF and XLSX).
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/ghrc19/Hed-System/listing"
)

// Filters describes the criteria that produced the exported subset; the
// values are printed on the report header.
type Filters struct {
	Provider string
	Category string
	Month    string
	Year     int
}

// Report is the flat tabular structure handed to the PDF/XLSX writers.
// Subtotal sums the price of every exported row regardless of state; this is
// intentionally not the dashboard revenue figure, which only counts
// Terminado jobs.
type Report struct {
	Filters  Filters
	Rows     []listing.Job
	Subtotal float64
}

func NewReport(rows []listing.Job, filters Filters) Report {
	r := Report{Filters: filters, Rows: rows}
	for _, row := range rows {
		r.Subtotal += row.Price
	}
	return r
}

var columns = []string{
	"N°", "Cliente", "Curso", "Fecha Registro", "Fecha Entrega",
	"Precio", "Proveedor", "Tipo PA", "Periodo",
}

// FileName builds the download name: <provider>_<YYYY-MM-DD>.<ext>, with an
// unfiltered provider rendered as TodosLosProveedores and whitespace in
// provider names replaced by underscores.
func FileName(provider, ext string, now time.Time) string {
	name := "TodosLosProveedores"
	if provider != "" && provider != listing.All {
		name = strings.Join(strings.Fields(provider), "_")
	}
	return name + "_" + now.Format("2006-01-02") + "." + ext
}

func (f Filters) providerLabel() string {
	if f.Provider == "" || f.Provider == listing.All {
		return "Todos los proveedores"
	}
	return f.Provider
}

func (f Filters) categoryLabel() string {
	if f.Category == "" || f.Category == listing.All {
		return "Todos los tipos"
	}
	return f.Category
}

var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func (f Filters) monthLabel() string {
	if f.Month == "" || f.Month == listing.All {
		return listing.All
	}
	idx, err := strconv.Atoi(f.Month)
	if err != nil || idx < 0 || idx >= len(monthNames) {
		return listing.All
	}
	return monthNames[idx]
}
