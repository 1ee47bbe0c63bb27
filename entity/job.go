package entity

import "github.com/google/uuid"

// Job states. Only these three are representable through the API.
const (
	StatusPending   = "Pendiente"
	StatusCancelled = "Cancelado"
	StatusCompleted = "Terminado"
)

// Category codes ("Tipo PA").
const (
	CategoryPA01 = "PA-01"
	CategoryPA02 = "PA-02"
	CategoryPA03 = "PA-03"
	CategoryEF   = "EF"
	CategoryES   = "ES"
)

// Work modes.
const (
	WorkModeIndividual = "Trabajo Individual"
	WorkModeGroup      = "Trabajo Grupal"
)

// DefaultClientName is used when a job is created without a client name.
const DefaultClientName = "Sin nombre"

// Job is one outsourced-assignment order. Catalog references are foreign keys
// resolved to display names at read time; deleting a catalog row sets the
// reference to NULL instead of leaving an orphaned name behind.
//
// Dates are zero-padded ISO-8601 strings (YYYY-MM-DD). The sort engine relies
// on lexicographic comparison of these values, so they are stored as text.
// An empty DeliveredAt means "not yet delivered".
type Job struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ClientName   string     `json:"client_name" gorm:"not null"`
	ProviderID   *uuid.UUID `json:"provider_id" gorm:"type:uuid;index"`
	Provider     *Provider  `json:"provider,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CourseID     *uuid.UUID `json:"course_id" gorm:"type:uuid;index"`
	Course       *Course    `json:"course,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	PeriodID     *uuid.UUID `json:"period_id" gorm:"type:uuid;index"`
	Period       *Period    `json:"period,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Category     string     `json:"category" gorm:"not null;index"`
	WorkMode     string     `json:"work_mode" gorm:"not null"`
	RegisteredAt string     `json:"registered_at" gorm:"not null;index"`
	DeliveredAt  string     `json:"delivered_at"`
	Price        float64    `json:"price" gorm:"not null;default:0"`
	URL          string     `json:"url"`
	Status       string     `json:"status" gorm:"not null;index"`
}

// ToggleStatus computes the next state for the toggle-completion operation.
// Terminado goes back to Pendiente and the delivery date is cleared; any other
// state goes to Terminado with today as the delivery date. Cancelado is never
// a destination of this operation, it is only reachable via a full edit.
func ToggleStatus(current, today string) (status, deliveredAt string) {
	if current == StatusCompleted {
		return StatusPending, ""
	}
	return StatusCompleted, today
}
