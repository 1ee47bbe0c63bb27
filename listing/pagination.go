package listing

// Page sizes offered by the list view.
var PageSizes = []int{10, 50, 100}

const DefaultPageSize = 10

// Paginator slices an ordered sequence into fixed-size pages. Pages are
// 1-indexed. Out-of-range navigation requests are rejected, not clamped.
type Paginator struct {
	size    int
	current int
	total   int
}

// NewPaginator builds a paginator positioned on page 1. A size that is not
// one of PageSizes falls back to the default.
func NewPaginator(total, size int) *Paginator {
	if !validSize(size) {
		size = DefaultPageSize
	}
	return &Paginator{size: size, current: 1, total: total}
}

func validSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Paginator) Size() int    { return p.size }
func (p *Paginator) Current() int { return p.current }

// PageCount is ceil(total / size).
func (p *Paginator) PageCount() int {
	return (p.total + p.size - 1) / p.size
}

// SetPage navigates to page n. A request outside [1, PageCount] is a no-op.
func (p *Paginator) SetPage(n int) {
	if n < 1 || n > p.PageCount() {
		return
	}
	p.current = n
}

// SetSize changes the page size and resets the current page to 1.
func (p *Paginator) SetSize(size int) {
	if !validSize(size) {
		return
	}
	p.size = size
	p.current = 1
}

// Slice returns the current page of the ordered sequence.
func (p *Paginator) Slice(jobs []Job) []Job {
	start := (p.current - 1) * p.size
	if start >= len(jobs) {
		return []Job{}
	}
	end := start + p.size
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}
