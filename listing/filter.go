package listing

import (
	"strconv"
	"strings"
)

// All is the sentinel meaning "no constraint" for select-style criteria.
const All = "Todos"

// Criteria is one filter set. Every field is optional and an empty value
// imposes no constraint; active criteria compose with logical AND. Year is
// the exception: once non-zero it always applies (the dashboard pins it to
// the current year by default).
type Criteria struct {
	// Category is the single-value equality filter of the list view.
	Category string
	// Categories is the dashboard variant: membership in a set of codes.
	// An empty set or one containing All imposes no constraint.
	Categories []string
	Period     string
	Provider   string
	// Search matches case-insensitively against client name, course name
	// or provider name.
	Search string
	// StartDate/EndDate bound the registration date inclusively. The range
	// only applies when BOTH are set; a half-open range is ignored.
	StartDate string
	EndDate   string
	// Month is a calendar month index "0".."11"; "" or All means any month.
	Month string
	// Year must equal the registration year exactly when non-zero.
	Year int
}

// Matches reports whether the job satisfies every active criterion.
func (c Criteria) Matches(j Job) bool {
	if c.Category != "" && c.Category != All && j.Category != c.Category {
		return false
	}
	if len(c.Categories) > 0 && !containsAll(c.Categories) {
		found := false
		for _, cat := range c.Categories {
			if j.Category == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Period != "" && c.Period != All && j.Period != c.Period {
		return false
	}
	if c.Provider != "" && c.Provider != All && j.Provider != c.Provider {
		return false
	}
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(j.ClientName), term) &&
			!strings.Contains(strings.ToLower(j.Course), term) &&
			!strings.Contains(strings.ToLower(j.Provider), term) {
			return false
		}
	}
	if c.StartDate != "" && c.EndDate != "" {
		// Inclusive bounds. Zero-padded ISO dates compare correctly as strings.
		if j.RegisteredAt < c.StartDate || j.RegisteredAt > c.EndDate {
			return false
		}
	}
	if c.Month != "" && c.Month != All {
		idx, err := strconv.Atoi(c.Month)
		if err == nil && monthIndex(j.RegisteredAt) != idx {
			return false
		}
	}
	if c.Year != 0 && yearOf(j.RegisteredAt) != c.Year {
		return false
	}
	return true
}

// Filter derives the working subset without mutating the input.
func Filter(jobs []Job, c Criteria) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if c.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

func containsAll(categories []string) bool {
	for _, cat := range categories {
		if cat == All {
			return true
		}
	}
	return false
}

// monthIndex returns the 0-based month of an ISO date, or -1 when malformed.
func monthIndex(isoDate string) int {
	if len(isoDate) < 7 {
		return -1
	}
	m, err := strconv.Atoi(isoDate[5:7])
	if err != nil || m < 1 || m > 12 {
		return -1
	}
	return m - 1
}

// yearOf returns the year of an ISO date, or 0 when malformed.
func yearOf(isoDate string) int {
	if len(isoDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(isoDate[:4])
	if err != nil {
		return 0
	}
	return y
}
