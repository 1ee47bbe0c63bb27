// Package listing implements the in-memory view pipeline over the job set:
// filter criteria, sort comparators, the status priority default ordering and
// pagination. It operates on flat views with catalog references already
// resolved to display names, so it never touches the database.
package listing

import "github.com/ghrc19/Hed-System/entity"

// Job is the read model the engines work on. A NULL catalog reference
// resolves to an empty name.
type Job struct {
	ID           string  `json:"id"`
	ClientName   string  `json:"client_name"`
	Course       string  `json:"course"`
	Provider     string  `json:"provider"`
	Period       string  `json:"period"`
	Category     string  `json:"category"`
	WorkMode     string  `json:"work_mode"`
	RegisteredAt string  `json:"registered_at"`
	DeliveredAt  string  `json:"delivered_at"`
	Price        float64 `json:"price"`
	URL          string  `json:"url"`
	Status       string  `json:"status"`
}

func FromEntity(e entity.Job) Job {
	j := Job{
		ID:           e.ID.String(),
		ClientName:   e.ClientName,
		Category:     e.Category,
		WorkMode:     e.WorkMode,
		RegisteredAt: e.RegisteredAt,
		DeliveredAt:  e.DeliveredAt,
		Price:        e.Price,
		URL:          e.URL,
		Status:       e.Status,
	}
	if e.Course != nil {
		j.Course = e.Course.Name
	}
	if e.Provider != nil {
		j.Provider = e.Provider.Name
	}
	if e.Period != nil {
		j.Period = e.Period.Name
	}
	return j
}

func FromEntities(es []entity.Job) []Job {
	jobs := make([]Job, 0, len(es))
	for _, e := range es {
		jobs = append(jobs, FromEntity(e))
	}
	return jobs
}
