// Package stats computes the dashboard aggregates over a filtered job subset.
// Everything here is derived state, recomputed from scratch on every request.
package stats

import (
	"github.com/ghrc19/Hed-System/entity"
	"github.com/ghrc19/Hed-System/listing"
)

// Summary holds the dashboard figures. Revenue counts only Terminado jobs;
// an export subtotal is a different number (it sums every exported row) and
// lives in the export package.
type Summary struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Revenue   float64 `json:"revenue"`
	// ByStatus always carries the three lifecycle states, zero-filled.
	ByStatus map[string]int `json:"by_status"`
	// ByCategory only carries codes present in the subset.
	ByCategory map[string]int `json:"by_category"`
}

func Summarize(jobs []listing.Job) Summary {
	s := Summary{
		Total: len(jobs),
		ByStatus: map[string]int{
			entity.StatusPending:   0,
			entity.StatusCompleted: 0,
			entity.StatusCancelled: 0,
		},
		ByCategory: map[string]int{},
	}

	for _, j := range jobs {
		s.ByStatus[j.Status]++
		if j.Category != "" {
			s.ByCategory[j.Category]++
		}
		switch j.Status {
		case entity.StatusCompleted:
			s.Completed++
			s.Revenue += j.Price
		case entity.StatusPending:
			s.Pending++
		}
	}

	return s
}
