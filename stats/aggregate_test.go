package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghrc19/Hed-System/listing"
)

func TestSummarizeRevenueCountsCompletedOnly(t *testing.T) {
	jobs := []listing.Job{
		{Status: "Terminado", Price: 80},
		{Status: "Pendiente", Price: 50},
		{Status: "Cancelado", Price: 999},
		{Status: "Terminado", Price: 20},
	}
	s := Summarize(jobs)
	assert.Equal(t, 100.0, s.Revenue)
}

func TestSummarizeCounts(t *testing.T) {
	jobs := []listing.Job{
		{Status: "Pendiente"},
		{Status: "Pendiente"},
		{Status: "Terminado"},
		{Status: "Cancelado"},
	}
	s := Summarize(jobs)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Completed)
}

func TestSummarizeByStatusIsZeroFilled(t *testing.T) {
	s := Summarize([]listing.Job{{Status: "Pendiente"}})
	assert.Equal(t, map[string]int{
		"Pendiente": 1,
		"Terminado": 0,
		"Cancelado": 0,
	}, s.ByStatus)
}

func TestSummarizeByCategoryOmitsAbsentCodes(t *testing.T) {
	jobs := []listing.Job{
		{Category: "PA-01", Status: "Pendiente"},
		{Category: "PA-01", Status: "Terminado"},
		{Category: "EF", Status: "Cancelado"},
	}
	s := Summarize(jobs)
	assert.Equal(t, map[string]int{"PA-01": 2, "EF": 1}, s.ByCategory)
	assert.NotContains(t, s.ByCategory, "PA-02")
}

func TestSummarizeEmptySubset(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.Revenue)
	assert.Empty(t, s.ByCategory)
}

func TestSummarizeEndToEndScenario(t *testing.T) {
	jobs := []listing.Job{
		{ClientName: "Ana", Category: "PA-01", Status: "Pendiente", Price: 50, RegisteredAt: "2025-06-01"},
		{ClientName: "Luis", Category: "PA-02", Status: "Terminado", Price: 80, RegisteredAt: "2025-06-10"},
	}
	s := Summarize(jobs)
	assert.Equal(t, 80.0, s.Revenue)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Completed)
}
