package listing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJobs(n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{ID: strconv.Itoa(i)}
	}
	return jobs
}

func TestPaginatorPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 50, 2},
		{101, 100, 2},
	}
	for _, tt := range tests {
		p := NewPaginator(tt.total, tt.size)
		assert.Equal(t, tt.want, p.PageCount(), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPaginatorConcatenatingPagesReconstructsSequence(t *testing.T) {
	jobs := makeJobs(25)
	p := NewPaginator(len(jobs), 10)

	var rebuilt []Job
	for page := 1; page <= p.PageCount(); page++ {
		p.SetPage(page)
		rebuilt = append(rebuilt, p.Slice(jobs)...)
	}
	assert.Equal(t, jobs, rebuilt)
}

func TestPaginatorLastPartialPage(t *testing.T) {
	jobs := makeJobs(25)
	p := NewPaginator(len(jobs), 10)

	require.Equal(t, 3, p.PageCount())
	p.SetPage(3)
	assert.Len(t, p.Slice(jobs), 5)
}

func TestPaginatorOutOfRangeNavigationIsNoOp(t *testing.T) {
	jobs := makeJobs(25)
	p := NewPaginator(len(jobs), 10)
	p.SetPage(2)

	p.SetPage(0)
	assert.Equal(t, 2, p.Current())

	p.SetPage(4)
	assert.Equal(t, 2, p.Current())

	p.SetPage(-1)
	assert.Equal(t, 2, p.Current())
}

func TestPaginatorSizeChangeResetsToFirstPage(t *testing.T) {
	p := NewPaginator(120, 10)
	p.SetPage(5)

	p.SetSize(50)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 50, p.Size())
}

func TestPaginatorInvalidSizeFallsBackToDefault(t *testing.T) {
	p := NewPaginator(30, 7)
	assert.Equal(t, DefaultPageSize, p.Size())
}

func TestPaginatorEmptySet(t *testing.T) {
	p := NewPaginator(0, 10)
	assert.Equal(t, 0, p.PageCount())
	assert.Empty(t, p.Slice(nil))
}
