package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNoFieldLeavesOrderUntouched(t *testing.T) {
	jobs := []Job{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	got := Sort(jobs, "", OrderAsc)
	assert.Equal(t, jobs, got)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	jobs := []Job{{ID: "1", Price: 9}, {ID: "2", Price: 1}}
	Sort(jobs, FieldPrice, OrderAsc)
	assert.Equal(t, "1", jobs[0].ID)
}

func TestSortNumericAwareSpanishCollation(t *testing.T) {
	jobs := []Job{
		{ClientName: "Item 10"},
		{ClientName: "Item 2"},
		{ClientName: "Item 1"},
	}
	got := Sort(jobs, FieldClient, OrderAsc)
	assert.Equal(t, "Item 1", got[0].ClientName)
	assert.Equal(t, "Item 2", got[1].ClientName)
	assert.Equal(t, "Item 10", got[2].ClientName)
}

func TestSortAccentInsensitive(t *testing.T) {
	jobs := []Job{
		{ClientName: "Óscar"},
		{ClientName: "Omar"},
		{ClientName: "Pablo"},
	}
	got := Sort(jobs, FieldClient, OrderAsc)
	// Ó collates with O, not after Z.
	assert.Equal(t, "Pablo", got[2].ClientName)
}

func TestSortPriceNumeric(t *testing.T) {
	jobs := []Job{{Price: 100}, {Price: 20}, {Price: 3}}

	asc := Sort(jobs, FieldPrice, OrderAsc)
	assert.Equal(t, []float64{3, 20, 100}, prices(asc))

	desc := Sort(jobs, FieldPrice, OrderDesc)
	assert.Equal(t, []float64{100, 20, 3}, prices(desc))
}

func prices(jobs []Job) []float64 {
	out := make([]float64, len(jobs))
	for i, j := range jobs {
		out[i] = j.Price
	}
	return out
}

func TestSortDatesLexicographically(t *testing.T) {
	jobs := []Job{
		{ID: "1", DeliveredAt: "2025-06-10"},
		{ID: "2", DeliveredAt: ""},
		{ID: "3", DeliveredAt: "2024-01-05"},
	}
	got := Sort(jobs, FieldDeliveredAt, OrderAsc)
	// Empty delivery date compares as the empty string and sorts first.
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
}

func TestSortIsIdempotent(t *testing.T) {
	jobs := []Job{
		{ID: "1", Course: "Redes", Price: 10},
		{ID: "2", Course: "Redes", Price: 20},
		{ID: "3", Course: "Cálculo", Price: 30},
	}
	once := Sort(jobs, FieldCourse, OrderAsc)
	twice := Sort(once, FieldCourse, OrderAsc)
	assert.Equal(t, once, twice)
}

func TestSortStableOnTies(t *testing.T) {
	jobs := []Job{
		{ID: "1", Course: "Redes"},
		{ID: "2", Course: "Redes"},
		{ID: "3", Course: "Redes"},
	}
	got := Sort(jobs, FieldCourse, OrderAsc)
	assert.Equal(t, []Job{{ID: "1", Course: "Redes"}, {ID: "2", Course: "Redes"}, {ID: "3", Course: "Redes"}}, got)
}

func TestSortDescReversesAsc(t *testing.T) {
	jobs := []Job{
		{RegisteredAt: "2025-03-01"},
		{RegisteredAt: "2025-01-01"},
		{RegisteredAt: "2025-02-01"},
	}
	asc := Sort(jobs, FieldRegisteredAt, OrderAsc)
	desc := Sort(jobs, FieldRegisteredAt, OrderDesc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortUnknownFieldIsNoOp(t *testing.T) {
	jobs := []Job{{ID: "z"}, {ID: "a"}}
	got := Sort(jobs, "nope", OrderAsc)
	assert.Equal(t, jobs, got)
}
