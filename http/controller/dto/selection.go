package dto

// SelectionRequestDTO updates the session-scoped defaults for new jobs.
// Omitted fields keep their current value; empty strings clear one side.
type SelectionRequestDTO struct {
	PeriodID *string `json:"period_id" binding:"omitempty"`
	Category *string `json:"category" binding:"omitempty,oneof=PA-01 PA-02 PA-03 EF ES"`
}
