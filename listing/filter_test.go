package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []Job {
	return []Job{
		{ID: "1", ClientName: "Ana", Course: "Redes", Provider: "Carlos", Category: "PA-01", Period: "2025-I", RegisteredAt: "2025-06-01", Status: "Pendiente", Price: 50},
		{ID: "2", ClientName: "Luis", Course: "Base de Datos", Provider: "María", Category: "PA-02", Period: "2025-I", RegisteredAt: "2025-06-10", Status: "Terminado", Price: 80},
		{ID: "3", ClientName: "Pedro", Course: "Cálculo", Provider: "Carlos", Category: "EF", Period: "2025-II", RegisteredAt: "2025-07-15", Status: "Cancelado", Price: 30},
		{ID: "4", ClientName: "Rosa", Course: "Redes", Provider: "María", Category: "PA-01", Period: "2024-II", RegisteredAt: "2024-12-20", Status: "Pendiente", Price: 65},
	}
}

func TestFilterEmptyCriteriaMatchesEverything(t *testing.T) {
	jobs := sampleJobs()
	got := Filter(jobs, Criteria{})
	assert.Len(t, got, len(jobs))
}

func TestFilterCategoryEquality(t *testing.T) {
	got := Filter(sampleJobs(), Criteria{Category: "PA-01"})
	require.Len(t, got, 2)
	for _, j := range got {
		assert.Equal(t, "PA-01", j.Category)
	}
}

func TestFilterCategorySet(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		wantIDs    []string
	}{
		{"single code", []string{"EF"}, []string{"3"}},
		{"two codes", []string{"PA-01", "PA-02"}, []string{"1", "2", "4"}},
		{"all sentinel disables the set", []string{"Todos"}, []string{"1", "2", "3", "4"}},
		{"all sentinel wins even mixed", []string{"Todos", "EF"}, []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleJobs(), Criteria{Categories: tt.categories})
			ids := make([]string, 0, len(got))
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterSearchMatchesAnyOfThreeFields(t *testing.T) {
	jobs := sampleJobs()

	byClient := Filter(jobs, Criteria{Search: "ana"})
	require.Len(t, byClient, 1)
	assert.Equal(t, "Ana", byClient[0].ClientName)

	byCourse := Filter(jobs, Criteria{Search: "redes"})
	assert.Len(t, byCourse, 2)

	byProvider := Filter(jobs, Criteria{Search: "CARLOS"})
	assert.Len(t, byProvider, 2)
}

func TestFilterDateRangeNeedsBothBounds(t *testing.T) {
	jobs := sampleJobs()

	// A half-open range is ignored entirely.
	onlyEnd := Filter(jobs, Criteria{EndDate: "2025-06-01"})
	assert.Equal(t, Filter(jobs, Criteria{}), onlyEnd)

	onlyStart := Filter(jobs, Criteria{StartDate: "2025-06-01"})
	assert.Equal(t, Filter(jobs, Criteria{}), onlyStart)

	both := Filter(jobs, Criteria{StartDate: "2025-06-01", EndDate: "2025-06-30"})
	require.Len(t, both, 2)
	assert.Equal(t, "1", both[0].ID)
	assert.Equal(t, "2", both[1].ID)
}

func TestFilterDateRangeIsInclusive(t *testing.T) {
	got := Filter(sampleJobs(), Criteria{StartDate: "2025-06-01", EndDate: "2025-06-10"})
	require.Len(t, got, 2)
}

func TestFilterMonth(t *testing.T) {
	jobs := sampleJobs()

	june := Filter(jobs, Criteria{Month: "5"})
	assert.Len(t, june, 2)

	all := Filter(jobs, Criteria{Month: "Todos"})
	assert.Len(t, all, len(jobs))
}

func TestFilterYear(t *testing.T) {
	jobs := sampleJobs()

	y2025 := Filter(jobs, Criteria{Year: 2025})
	assert.Len(t, y2025, 3)

	y2024 := Filter(jobs, Criteria{Year: 2024})
	require.Len(t, y2024, 1)
	assert.Equal(t, "4", y2024[0].ID)
}

func TestFilterCriteriaComposeWithAnd(t *testing.T) {
	jobs := sampleJobs()
	criteria := Criteria{Category: "PA-01", Provider: "Carlos"}

	got := Filter(jobs, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Every excluded record fails at least one active criterion.
	included := map[string]bool{}
	for _, j := range got {
		included[j.ID] = true
		assert.True(t, criteria.Matches(j))
	}
	for _, j := range jobs {
		if !included[j.ID] {
			assert.False(t, criteria.Matches(j))
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	Filter(jobs, Criteria{Category: "EF"})
	assert.Equal(t, sampleJobs(), jobs)
}

func TestFilterEndToEndScenario(t *testing.T) {
	jobs := []Job{
		{ClientName: "Ana", Category: "PA-01", Status: "Pendiente", Price: 50, RegisteredAt: "2025-06-01"},
		{ClientName: "Luis", Category: "PA-02", Status: "Terminado", Price: 80, RegisteredAt: "2025-06-10"},
	}
	got := Filter(jobs, Criteria{Category: "PA-01"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].ClientName)
}
