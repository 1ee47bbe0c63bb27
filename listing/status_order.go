package listing

import (
	"sort"

	"github.com/ghrc19/Hed-System/entity"
)

// statusRank fixes the lifecycle priority used for the default ordering.
func statusRank(status string) int {
	switch status {
	case entity.StatusPending:
		return 1
	case entity.StatusCompleted:
		return 2
	case entity.StatusCancelled:
		return 3
	default:
		return 4
	}
}

// SortByStatus is the default ordering applied whenever no explicit sort is
// active: all Pendiente first, then Terminado, then Cancelado. Ties keep
// their prior relative order. The input is not mutated.
func SortByStatus(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	sort.SliceStable(out, func(i, k int) bool {
		return statusRank(out[i].Status) < statusRank(out[k].Status)
	})
	return out
}
