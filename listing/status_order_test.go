package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByStatusGroupsByPriority(t *testing.T) {
	jobs := []Job{
		{ID: "1", Status: "Cancelado"},
		{ID: "2", Status: "Terminado"},
		{ID: "3", Status: "Pendiente"},
		{ID: "4", Status: "Terminado"},
		{ID: "5", Status: "Pendiente"},
	}
	got := SortByStatus(jobs)

	statuses := make([]string, len(got))
	for i, j := range got {
		statuses[i] = j.Status
	}
	assert.Equal(t, []string{"Pendiente", "Pendiente", "Terminado", "Terminado", "Cancelado"}, statuses)
}

func TestSortByStatusIsStable(t *testing.T) {
	jobs := []Job{
		{ID: "1", Status: "Pendiente"},
		{ID: "2", Status: "Pendiente"},
		{ID: "3", Status: "Pendiente"},
	}
	got := SortByStatus(jobs)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestSortByStatusUnknownStateSortsLast(t *testing.T) {
	jobs := []Job{
		{ID: "1", Status: "???"},
		{ID: "2", Status: "Cancelado"},
		{ID: "3", Status: "Pendiente"},
	}
	got := SortByStatus(jobs)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
}

func TestSortByStatusDoesNotMutateInput(t *testing.T) {
	jobs := []Job{{ID: "1", Status: "Cancelado"}, {ID: "2", Status: "Pendiente"}}
	SortByStatus(jobs)
	assert.Equal(t, "1", jobs[0].ID)
}
