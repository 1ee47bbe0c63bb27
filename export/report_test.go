package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghrc19/Hed-System/listing"
)

func TestFileName(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		provider string
		ext      string
		want     string
	}{
		{"no provider filter", "", "pdf", "TodosLosProveedores_2025-06-15.pdf"},
		{"all sentinel", "Todos", "xlsx", "TodosLosProveedores_2025-06-15.xlsx"},
		{"single provider", "Carlos", "pdf", "Carlos_2025-06-15.pdf"},
		{"whitespace replaced", "María  Elena Ruiz", "pdf", "María_Elena_Ruiz_2025-06-15.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.provider, tt.ext, now))
		})
	}
}

func TestSubtotalSumsEveryRowRegardlessOfState(t *testing.T) {
	rows := []listing.Job{
		{Status: "Terminado", Price: 80},
		{Status: "Pendiente", Price: 50},
		{Status: "Cancelado", Price: 30},
	}
	r := NewReport(rows, Filters{})
	// Not the dashboard revenue figure: cancelled and pending rows count too.
	assert.Equal(t, 160.0, r.Subtotal)
}

func TestPDFRendersNonEmptyDocument(t *testing.T) {
	r := NewReport([]listing.Job{
		{ClientName: "Ana", Course: "Redes", RegisteredAt: "2025-06-01", Price: 50, Status: "Pendiente", Category: "PA-01"},
	}, Filters{Provider: "Carlos", Month: "5", Year: 2025})

	data, err := r.PDF()
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestXLSXRendersNonEmptyDocument(t *testing.T) {
	r := NewReport([]listing.Job{
		{ClientName: "Ana", Course: "Redes", RegisteredAt: "2025-06-01", Price: 50, Status: "Pendiente", Category: "PA-01"},
	}, Filters{})

	data, err := r.XLSX()
	require.NoError(t, err)
	// XLSX files are zip archives.
	require.True(t, len(data) > 4)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Junio", Filters{Month: "5"}.monthLabel())
	assert.Equal(t, "Todos", Filters{Month: ""}.monthLabel())
	assert.Equal(t, "Todos", Filters{Month: "Todos"}.monthLabel())
	assert.Equal(t, "Todos", Filters{Month: "99"}.monthLabel())
}
